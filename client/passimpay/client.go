package passimpay

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"passimpay/client"
	"passimpay/signer"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	fastshot "github.com/opus-domini/fast-shot"
	"github.com/opus-domini/fast-shot/constant/mime"
)

const formContentType = "application/x-www-form-urlencoded"

var validate = validator.New(validator.WithRequiredStructEnabled())

// dispatch signs platform_id merged with extra and posts platform_id and hash
// to the endpoint. Only those two fields are sent; extra is used for the
// signature alone.
func (p *Client) dispatch(ctx context.Context, endpoint string, extra client.Params) (client.Fields, error) {
	if err := p.checkConfig(); err != nil {
		p.metrics.IncRequest(endpoint, "config_error")
		p.logger.Error("[PassimpayClient] Invalid configuration", "endpoint", endpoint, "error", err)
		return nil, err
	}

	payload := client.NewParams(client.Param{Key: "platform_id", Value: p.config.PlatformID}).Merge(extra)
	hash := p.sign(payload)

	form := url.Values{}
	form.Set("platform_id", p.config.PlatformID)
	form.Set("hash", hash)

	ctx, cancel := context.WithTimeout(ctx, p.config.Timeout)
	defer cancel()

	p.logger.Debug("[PassimpayClient] Sending request", "endpoint", endpoint, "payload", payload.Encode())
	start := time.Now()
	fastResp, err := p.httpClient.
		POST("/"+endpoint).
		Context().Set(ctx).
		Header().Add("Content-Type", formContentType).
		Body().AsString(form.Encode()).
		Send()
	p.metrics.ObserveLatency(endpoint, time.Since(start))
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			p.metrics.IncRequest(endpoint, "timeout")
			p.logger.Error("[PassimpayClient] Request timed out", "endpoint", endpoint, "timeout", p.config.Timeout)
			return nil, fmt.Errorf("%w: %s after %s: %w", ErrTimeout, endpoint, p.config.Timeout, err)
		}
		p.metrics.IncRequest(endpoint, "transport_error")
		p.logger.Error("[PassimpayClient] Request failed", "endpoint", endpoint, "error", err)
		return nil, fmt.Errorf("%w: %s: %w", ErrTransport, endpoint, err)
	}

	body, err := fastResp.Body().AsString()
	if err != nil {
		p.metrics.IncRequest(endpoint, "transport_error")
		p.logger.Error("[PassimpayClient] Failed to read response", "endpoint", endpoint, "error", err)
		return nil, fmt.Errorf("%w: %s: read body: %w", ErrTransport, endpoint, err)
	}
	if fastResp.Status().IsError() {
		p.metrics.IncRequest(endpoint, "transport_error")
		p.logger.Error("[PassimpayClient] Error status", "endpoint", endpoint, "body", body)
		return nil, fmt.Errorf("%w: %s: error status: %s", ErrTransport, endpoint, body)
	}

	fields, err := client.DecodeFields(strings.NewReader(body))
	if err != nil {
		p.metrics.IncRequest(endpoint, "decode_error")
		p.logger.Error("[PassimpayClient] Failed to decode response", "endpoint", endpoint, "error", err, "body", body)
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, endpoint, err)
	}

	if fields.Message() != "" {
		p.metrics.IncRequest(endpoint, "soft_error")
	} else {
		p.metrics.IncRequest(endpoint, "ok")
	}
	return fields, nil
}

func (p *Client) sign(payload client.Params) string {
	return signer.Sign([]byte(payload.Encode()), []byte(p.config.SecretKey))
}

func (p *Client) checkConfig() error {
	err := validate.Struct(p.config)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	problems := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		problems = append(problems, describeField(fe))
	}
	return fmt.Errorf("%w: %s", ErrConfiguration, strings.Join(problems, "; "))
}

func describeField(fe validator.FieldError) string {
	switch fe.Field() {
	case "PlatformID":
		return "platform id can not be empty"
	case "SecretKey":
		return "secret key can not be empty"
	case "BaseURL":
		return fmt.Sprintf("base url %q is not a valid url", fe.Value())
	case "Timeout":
		return "timeout can not be negative"
	default:
		return fe.Error()
	}
}

func setupHttpClient(baseUrl string) fastshot.ClientHttpMethods {
	return fastshot.NewClient(baseUrl).
		Header().AddAccept(mime.JSON).
		Build()
}
