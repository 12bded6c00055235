package passimpay

import (
	"log/slog"
	"passimpay/metrics"
	"time"
)

type Option func(*Client)

// WithLogger sets the logger for request diagnostics and for the default reporter.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l == nil {
			return
		}
		c.logger = l
		c.reporter = LogReporter(l)
	}
}

// WithReporter replaces the per-call report hook. A nil reporter disables reporting.
// Apply it after WithLogger, which resets the reporter to the logger's.
func WithReporter(r Reporter) Option {
	return func(c *Client) {
		c.reporter = r
	}
}

func WithMetrics(r metrics.Recorder) Option {
	return func(c *Client) {
		if r != nil {
			c.metrics = r
		}
	}
}

func WithTimeout(t time.Duration) Option {
	return func(c *Client) {
		c.config.Timeout = t
	}
}

func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.config.BaseURL = u
	}
}
