package passimpay

import (
	"log/slog"
	"passimpay/metrics"
	"strings"
	"time"

	fastshot "github.com/opus-domini/fast-shot"
)

const (
	baseUrl        = "https://passimpay.io/api"
	defaultTimeout = 30 * time.Second
)

type Config struct {
	PlatformID string        `validate:"required"`
	SecretKey  string        `validate:"required"`
	BaseURL    string        `validate:"omitempty,url"`
	Timeout    time.Duration `validate:"gte=0"`
}

// Client talks to the Passimpay merchant API. Credentials are read-only after
// construction, so a Client is safe for concurrent use.
type Client struct {
	config     Config
	httpClient fastshot.ClientHttpMethods
	logger     *slog.Logger
	reporter   Reporter
	metrics    metrics.Recorder
}

// NewClient stores the config as given. Credentials are checked on every
// request, not here.
func NewClient(config *Config, opts ...Option) *Client {
	c := &Client{
		logger:  slog.Default(),
		metrics: metrics.NoopRecorder{},
	}
	if config != nil {
		c.config = *config
	}
	c.reporter = LogReporter(c.logger)
	for _, opt := range opts {
		opt(c)
	}
	if c.config.BaseURL == "" {
		c.config.BaseURL = baseUrl
	}
	c.config.BaseURL = strings.TrimRight(c.config.BaseURL, "/")
	if c.config.Timeout == 0 {
		c.config.Timeout = defaultTimeout
	}
	c.httpClient = setupHttpClient(c.config.BaseURL)
	return c
}
