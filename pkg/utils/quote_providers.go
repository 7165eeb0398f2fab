package utils

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/tidwall/gjson"
	"luminous/internal/models/response_models"
)

const (
	DefaultQuotableURL  = "https://api.quotable.io/random?tags=wisdom,motivational,inspirational&minLength=50&maxLength=150"
	DefaultZenQuotesURL = "https://zenquotes.io/api/random"

	maxUpstreamBody = 64 << 10
)

// QuoteProvider is one external source of quotes.
type QuoteProvider interface {
	Name() string
	FetchQuote(ctx context.Context) (response_models.Quote, error)
}

// QuotableClient talks to the quotable.io random endpoint.
type QuotableClient struct {
	httpClient *http.Client
	url        string
}

func NewQuotableClient(httpClient *http.Client, url string) QuoteProvider {
	if url == "" {
		url = DefaultQuotableURL
	}
	return &QuotableClient{httpClient: httpClient, url: url}
}

func (q *QuotableClient) Name() string { return "quotable" }

func (q *QuotableClient) FetchQuote(ctx context.Context) (response_models.Quote, error) {
	body, err := fetchUpstream(ctx, q.httpClient, q.url)
	if err != nil {
		return response_models.Quote{}, err
	}

	// /random answers with an object, /quotes/random with a one element array.
	root := gjson.ParseBytes(body)
	if root.IsArray() {
		root = root.Get("0")
	}
	quote := response_models.Quote{
		Content: root.Get("content").String(),
		Author:  root.Get("author").String(),
		ID:      root.Get("_id").String(),
	}
	if quote.Content == "" || quote.Author == "" {
		return response_models.Quote{}, fmt.Errorf("quotable: incomplete payload: %w", ErrUpstreamUnavailable)
	}
	return quote, nil
}

// ZenQuotesClient talks to zenquotes.io.
type ZenQuotesClient struct {
	httpClient *http.Client
	url        string
}

func NewZenQuotesClient(httpClient *http.Client, url string) QuoteProvider {
	if url == "" {
		url = DefaultZenQuotesURL
	}
	return &ZenQuotesClient{httpClient: httpClient, url: url}
}

func (z *ZenQuotesClient) Name() string { return "zenquotes" }

func (z *ZenQuotesClient) FetchQuote(ctx context.Context) (response_models.Quote, error) {
	body, err := fetchUpstream(ctx, z.httpClient, z.url)
	if err != nil {
		return response_models.Quote{}, err
	}

	first := gjson.GetBytes(body, "0")
	quote := response_models.Quote{
		Content: first.Get("q").String(),
		Author:  first.Get("a").String(),
	}
	if quote.Content == "" || quote.Author == "" {
		return response_models.Quote{}, fmt.Errorf("zenquotes: incomplete payload: %w", ErrUpstreamUnavailable)
	}
	return quote, nil
}

func fetchUpstream(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", ErrUpstreamUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxUpstreamBody))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrUpstreamUnavailable, err)
	}
	return body, nil
}
