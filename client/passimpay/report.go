package passimpay

import (
	"log/slog"
)

// Report describes the outcome of one gateway call.
type Report struct {
	Operation string
	Summary   string
	Message   string
}

// Reporter is called once per completed gateway exchange, including ones
// where the gateway returned a message. It is not called for hard errors.
type Reporter func(Report)

func LogReporter(logger *slog.Logger) Reporter {
	return func(r Report) {
		if r.Message != "" {
			logger.Warn("[PassimpayClient] Gateway error", "operation", r.Operation, "message", r.Message)
			return
		}
		logger.Info("[PassimpayClient] "+r.Summary, "operation", r.Operation)
	}
}

func (p *Client) report(operation string, summary string, message string) {
	if p.reporter == nil {
		return
	}
	p.reporter(Report{Operation: operation, Summary: summary, Message: message})
}
