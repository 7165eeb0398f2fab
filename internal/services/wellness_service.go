package services

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"luminous/internal/config"
	"luminous/internal/models/response_models"
	mem "luminous/pkg/memcache"
	"luminous/pkg/metrics"
	"luminous/pkg/utils"
)

type WellnessServiceInterface interface {
	// DailyQuote and MindfulnessQuote never fail; upstream trouble ends in
	// local fallback content.
	DailyQuote(ctx context.Context) response_models.Quote
	MindfulnessQuote(ctx context.Context) response_models.Quote
	RecommendedSessions() []response_models.MeditationSession
	BreathingExercise() response_models.BreathingExercise
	DailyBundle(ctx context.Context) response_models.WellnessData
	MoodRecommendation(weather string) response_models.MoodRecommendation
}

// WellnessProviders are the external quote sources in preference order.
type WellnessProviders struct {
	Daily       utils.QuoteProvider
	Mindfulness utils.QuoteProvider
}

type WellnessService struct {
	clock     utils.Clock
	providers WellnessProviders
	pins      mem.ContentStore
	timeout   time.Duration
	metrics   *metrics.Metrics
	logger    *zap.Logger
	intn      func(n int) int
}

// NewWellnessService wires the aggregator. pins may be nil, which turns off
// daily quote pinning.
func NewWellnessService(
	cfg *config.Config,
	clock utils.Clock,
	providers WellnessProviders,
	pins mem.ContentStore,
	m *metrics.Metrics,
	logger *zap.Logger,
) WellnessServiceInterface {
	if !cfg.PinDailyQuote {
		pins = nil
	}
	return &WellnessService{
		clock:     clock,
		providers: providers,
		pins:      pins,
		timeout:   cfg.UpstreamTimeout,
		metrics:   m,
		logger:    logger,
		intn:      rand.Intn,
	}
}

type quoteStep struct {
	name  string
	fetch func(ctx context.Context) (response_models.Quote, error)
}

var errNotPinned = errors.New("no pinned quote")

// firstQuote tries steps in order and returns the first success. last must
// not fail.
func (w *WellnessService) firstQuote(ctx context.Context, steps []quoteStep, last func() response_models.Quote) response_models.Quote {
	for _, step := range steps {
		quote, err := step.fetch(ctx)
		if err == nil {
			return quote
		}
		if errors.Is(err, errNotPinned) {
			continue
		}
		w.logger.Warn("quote source failed, trying next", zap.String("provider", step.name), zap.Error(err))
		w.metrics.RecordUpstreamFailure(step.name)
	}
	return last()
}

func (w *WellnessService) DailyQuote(ctx context.Context) response_models.Quote {
	var steps []quoteStep
	if w.pins != nil {
		steps = append(steps, quoteStep{name: "pin", fetch: w.pinnedQuote})
	}
	steps = append(steps, quoteStep{name: w.providers.Daily.Name(), fetch: w.pinning(w.upstream(w.providers.Daily))})

	return w.firstQuote(ctx, steps, func() response_models.Quote {
		w.metrics.RecordFallback("daily_quote")
		return fallbackQuotes[w.intn(len(fallbackQuotes))]
	})
}

// MindfulnessQuote falls back to the whole daily quote chain, not to its own
// list.
func (w *WellnessService) MindfulnessQuote(ctx context.Context) response_models.Quote {
	steps := []quoteStep{{name: w.providers.Mindfulness.Name(), fetch: w.upstream(w.providers.Mindfulness)}}
	return w.firstQuote(ctx, steps, func() response_models.Quote {
		return w.DailyQuote(ctx)
	})
}

func (w *WellnessService) upstream(p utils.QuoteProvider) func(ctx context.Context) (response_models.Quote, error) {
	return func(ctx context.Context) (response_models.Quote, error) {
		ctx, cancel := context.WithTimeout(ctx, w.timeout)
		defer cancel()
		return p.FetchQuote(ctx)
	}
}

func (w *WellnessService) pinKey() (string, time.Duration) {
	now := w.clock.Now()
	_, end := utils.DayBounds(now)
	return "daily-quote:" + utils.FormatDay(now), end.Sub(now)
}

func (w *WellnessService) pinnedQuote(ctx context.Context) (response_models.Quote, error) {
	key, _ := w.pinKey()
	raw, ok, err := w.pins.Get(ctx, key)
	if err != nil {
		return response_models.Quote{}, err
	}
	if !ok {
		return response_models.Quote{}, errNotPinned
	}

	var quote response_models.Quote
	if err := json.Unmarshal(raw, &quote); err != nil {
		return response_models.Quote{}, err
	}
	return quote, nil
}

// pinning stores a successful upstream quote until the end of the local day.
// Fallback quotes never pass through here.
func (w *WellnessService) pinning(fetch func(ctx context.Context) (response_models.Quote, error)) func(ctx context.Context) (response_models.Quote, error) {
	if w.pins == nil {
		return fetch
	}
	return func(ctx context.Context) (response_models.Quote, error) {
		quote, err := fetch(ctx)
		if err != nil {
			return quote, err
		}
		key, ttl := w.pinKey()
		if raw, err := json.Marshal(quote); err == nil {
			if err := w.pins.Set(ctx, key, raw, ttl); err != nil {
				w.logger.Warn("pin daily quote failed", zap.Error(err))
			}
		}
		return quote, nil
	}
}

const recommendedSessionCount = 3

// RecommendedSessions returns a fresh random subset of the catalog per call.
func (w *WellnessService) RecommendedSessions() []response_models.MeditationSession {
	sessions := make([]response_models.MeditationSession, len(sessionCatalog))
	copy(sessions, sessionCatalog)
	for i := len(sessions) - 1; i > 0; i-- {
		j := w.intn(i + 1)
		sessions[i], sessions[j] = sessions[j], sessions[i]
	}
	return sessions[:recommendedSessionCount]
}

func (w *WellnessService) BreathingExercise() response_models.BreathingExercise {
	exercise := breathingCatalog[w.intn(len(breathingCatalog))]
	exercise.Instructions = append([]string(nil), exercise.Instructions...)
	return exercise
}

// DailyBundle fans out to the three producers. None of them can fail, so
// the join has nothing to reconcile.
func (w *WellnessService) DailyBundle(ctx context.Context) response_models.WellnessData {
	var data response_models.WellnessData
	var g errgroup.Group

	g.Go(func() error {
		data.DailyQuote = w.DailyQuote(ctx)
		return nil
	})
	g.Go(func() error {
		data.RecommendedSessions = w.RecommendedSessions()
		return nil
	})
	g.Go(func() error {
		data.BreathingExercise = w.BreathingExercise()
		return nil
	})
	_ = g.Wait()

	return data
}

func (w *WellnessService) MoodRecommendation(weather string) response_models.MoodRecommendation {
	key := strings.ToLower(strings.TrimSpace(weather))
	text, ok := weatherMoods[key]
	if !ok {
		text = defaultMood
	}
	return response_models.MoodRecommendation{Weather: key, Recommendation: text}
}
