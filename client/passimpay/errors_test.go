package passimpay

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// every operation of the client, bound to fixed arguments.
func allOperations(c *Client) map[string]func(context.Context) error {
	return map[string]func(context.Context) error{
		"balance": func(ctx context.Context) error {
			_, err := c.Balance(ctx)
			return err
		},
		"currencies": func(ctx context.Context) error {
			_, err := c.Currencies(ctx)
			return err
		},
		"createorder": func(ctx context.Context) error {
			_, err := c.CreateInvoice(ctx, "order-1", "10.0")
			return err
		},
		"orderstatus": func(ctx context.Context) error {
			_, err := c.InvoiceStatus(ctx, "order-1")
			return err
		},
		"getpaymentwallet": func(ctx context.Context) error {
			_, err := c.PaymentWallet(ctx, "order-1", "7")
			return err
		},
		"withdraw": func(ctx context.Context) error {
			_, err := c.Withdraw(ctx, "7", "addr", "1.5")
			return err
		},
		"transactionstatus": func(ctx context.Context) error {
			_, err := c.TransactionStatus(ctx, "0xabc")
			return err
		},
	}
}

func TestConfigurationErrorBeforeAnyRequest(t *testing.T) {
	cases := map[string]Config{
		"empty platform id": {PlatformID: "", SecretKey: testSecret},
		"empty secret key":  {PlatformID: testPlatformID, SecretKey: ""},
		"both empty":        {},
	}
	for name, cfg := range cases {
		t.Run(name, func(t *testing.T) {
			g := newMockGateway(t, map[string]string{})
			cfg.BaseURL = g.server.URL
			c := NewClient(&cfg, WithReporter(nil))

			for op, call := range allOperations(c) {
				err := call(context.Background())
				require.Error(t, err, op)
				assert.ErrorIs(t, err, ErrConfiguration, op)
				assert.NotErrorIs(t, err, ErrTransport, op)
			}
			assert.Equal(t, int32(0), g.calls.Load())
		})
	}
}

func TestConfigurationErrorMessages(t *testing.T) {
	c := NewClient(&Config{PlatformID: "1"}, WithReporter(nil))
	_, err := c.Balance(context.Background())
	require.ErrorIs(t, err, ErrConfiguration)
	assert.Contains(t, err.Error(), "secret key can not be empty")

	c = NewClient(&Config{SecretKey: "s"}, WithReporter(nil))
	_, err = c.Balance(context.Background())
	require.ErrorIs(t, err, ErrConfiguration)
	assert.Contains(t, err.Error(), "platform id can not be empty")

	c = NewClient(&Config{PlatformID: "1", SecretKey: "s", BaseURL: "not a url"}, WithReporter(nil))
	_, err = c.Balance(context.Background())
	require.ErrorIs(t, err, ErrConfiguration)

	c = NewClient(&Config{PlatformID: "1", SecretKey: "s"}, WithTimeout(-time.Second), WithReporter(nil))
	_, err = c.Balance(context.Background())
	require.ErrorIs(t, err, ErrConfiguration)
	assert.Contains(t, err.Error(), "timeout can not be negative")
}

func TestTransportErrorOnConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	var reports int
	c := NewClient(&Config{PlatformID: testPlatformID, SecretKey: testSecret, BaseURL: addr},
		WithReporter(func(Report) { reports++ }))

	for op, call := range allOperations(c) {
		err := call(context.Background())
		require.Error(t, err, op)
		assert.ErrorIs(t, err, ErrTransport, op)
		assert.NotErrorIs(t, err, ErrTimeout, op)
		assert.NotErrorIs(t, err, ErrDecode, op)
	}
	assert.Equal(t, 0, reports)
}

func TestTransportErrorOnErrorStatus(t *testing.T) {
	g := newMockGateway(t, map[string]string{"/balance": `{"message": "server exploded"}`})
	g.status = http.StatusInternalServerError
	c := newTestClient(g)

	rsp, err := c.Balance(context.Background())
	assert.Nil(t, rsp)
	require.ErrorIs(t, err, ErrTransport)
	assert.Contains(t, err.Error(), "server exploded")
}

func TestDecodeError(t *testing.T) {
	g := newMockGateway(t, map[string]string{
		"/balance":    `<html>bad gateway</html>`,
		"/currencies": `[1, 2, 3]`,
	})
	c := newTestClient(g)

	_, err := c.Balance(context.Background())
	assert.ErrorIs(t, err, ErrDecode)
	assert.NotErrorIs(t, err, ErrTransport)

	_, err = c.Currencies(context.Background())
	assert.ErrorIs(t, err, ErrDecode)
}

func TestTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	c := NewClient(&Config{PlatformID: testPlatformID, SecretKey: testSecret, BaseURL: srv.URL},
		WithTimeout(50*time.Millisecond), WithReporter(nil))

	_, err := c.Balance(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTimeout)
	assert.ErrorIs(t, err, ErrTransport)
}

func TestCanceledContextIsTransportError(t *testing.T) {
	g := newMockGateway(t, map[string]string{"/balance": `{"balance": 1}`})
	c := newTestClient(g)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Balance(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
	assert.NotErrorIs(t, err, ErrTimeout)
	assert.Equal(t, int32(0), g.calls.Load())
}
