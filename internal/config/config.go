package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"luminous/pkg/utils"
)

// MinSessionSecretLen is the shortest accepted HS256 key for identity tokens.
const MinSessionSecretLen = 32

type Config struct {
	Port        string
	GinMode     string
	LogLevel    string
	PostgresURL string
	Location    *time.Location

	SessionSecret    []byte
	SessionTTL       time.Duration
	SessionSweepSpec string
	SecureCookies    bool

	AdminUserIDs []string
	AdminEmails  []string

	QuotableURL     string
	ZenQuotesURL    string
	UpstreamTimeout time.Duration
	PinDailyQuote   bool
	RedisURL        string

	WellnessRateRPS   float64
	WellnessRateBurst int
}

// Load reads .env when present, then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from any key lookup, which keeps it testable.
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return def
	}

	cfg := &Config{
		Port:             get("PORT", "8080"),
		GinMode:          get("GIN_MODE", "release"),
		LogLevel:         get("LOG_LEVEL", "info"),
		PostgresURL:      get("POSTGRES_URL", ""),
		SessionSecret:    []byte(get("SESSION_SECRET", "")),
		SessionSweepSpec: get("SESSION_SWEEP_SPEC", "@every 1h"),
		AdminUserIDs:     splitList(get("ADMIN_USER_IDS", "")),
		AdminEmails:      splitList(strings.ToLower(get("ADMIN_EMAILS", ""))),
		QuotableURL:      get("QUOTABLE_URL", utils.DefaultQuotableURL),
		ZenQuotesURL:     get("ZENQUOTES_URL", utils.DefaultZenQuotesURL),
		RedisURL:         get("REDIS_URL", ""),
	}

	var errs []error

	if len(cfg.SessionSecret) < MinSessionSecretLen {
		errs = append(errs, fmt.Errorf("SESSION_SECRET: must be at least %d bytes", MinSessionSecretLen))
	}

	tz := get("APP_TIMEZONE", "")
	cfg.Location = time.Local
	if tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			errs = append(errs, fmt.Errorf("APP_TIMEZONE: %w", err))
		} else {
			cfg.Location = loc
		}
	}

	cfg.SessionTTL = parseDuration(get("SESSION_TTL", "168h"), "SESSION_TTL", &errs)
	cfg.UpstreamTimeout = parseDuration(get("UPSTREAM_TIMEOUT", "4s"), "UPSTREAM_TIMEOUT", &errs)
	cfg.PinDailyQuote = parseBool(get("WELLNESS_PIN_DAILY_QUOTE", "true"), "WELLNESS_PIN_DAILY_QUOTE", &errs)
	cfg.SecureCookies = parseBool(get("SECURE_COOKIES", "true"), "SECURE_COOKIES", &errs)

	rps, err := strconv.ParseFloat(get("WELLNESS_RATE_RPS", "5"), 64)
	if err != nil || rps <= 0 {
		errs = append(errs, fmt.Errorf("WELLNESS_RATE_RPS: must be a positive number"))
	}
	cfg.WellnessRateRPS = rps

	burst, err := strconv.Atoi(get("WELLNESS_RATE_BURST", "10"))
	if err != nil || burst <= 0 {
		errs = append(errs, fmt.Errorf("WELLNESS_RATE_BURST: must be a positive integer"))
	}
	cfg.WellnessRateBurst = burst

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return cfg, nil
}

// IsAdmin checks the configured allowlist by id or by email.
func (c *Config) IsAdmin(userID string, email *string) bool {
	for _, id := range c.AdminUserIDs {
		if id == userID {
			return true
		}
	}
	if email == nil {
		return false
	}
	normalized := strings.ToLower(strings.TrimSpace(*email))
	for _, e := range c.AdminEmails {
		if e == normalized {
			return true
		}
	}
	return false
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseDuration(raw, key string, errs *[]error) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		*errs = append(*errs, fmt.Errorf("%s: invalid duration %q", key, raw))
	}
	return d
}

func parseBool(raw, key string, errs *[]error) bool {
	b, err := strconv.ParseBool(raw)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: invalid boolean %q", key, raw))
	}
	return b
}
