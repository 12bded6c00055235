package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"passimpay/client/passimpay"
	"passimpay/metrics"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const usage = `usage: passimpay [flags] <command> [args]

commands:
  balance
  currencies
  invoice [order_id] <amount>
  invoice-status <order_id>
  wallet <order_id> <payment_id>
  withdraw <payment_id> <address_to> <amount>
  tx-status <tx_hash>
  demo

environment:
  PASSIMPAY_PLATFORM_ID, PASSIMPAY_SECRET_KEY, PASSIMPAY_BASE_URL (optional)

flags:
`

func main() {
	timeout := flag.Duration("timeout", 30*time.Second, "request timeout")
	baseURL := flag.String("base-url", "", "gateway base url override")
	withMetrics := flag.Bool("metrics", false, "log request metrics on exit")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	} else {
		slog.SetLogLoggerLevel(slog.LevelInfo)
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	platformID, ok := os.LookupEnv("PASSIMPAY_PLATFORM_ID")
	if !ok {
		slog.Error("[Passimpay] PASSIMPAY_PLATFORM_ID environment variable not found")
		os.Exit(1)
	}
	secretKey, ok := os.LookupEnv("PASSIMPAY_SECRET_KEY")
	if !ok {
		slog.Error("[Passimpay] PASSIMPAY_SECRET_KEY environment variable not found")
		os.Exit(1)
	}
	if *baseURL == "" {
		*baseURL = os.Getenv("PASSIMPAY_BASE_URL")
	}

	registry := prometheus.NewRegistry()
	opts := []passimpay.Option{
		passimpay.WithTimeout(*timeout),
		passimpay.WithReporter(newConsoleReporter(os.Stdout)),
	}
	if *baseURL != "" {
		opts = append(opts, passimpay.WithBaseURL(*baseURL))
	}
	if *withMetrics {
		opts = append(opts, passimpay.WithMetrics(metrics.NewPrometheusRecorder(registry)))
	}

	client := passimpay.NewClient(&passimpay.Config{
		PlatformID: platformID,
		SecretKey:  secretKey,
	}, opts...)

	err := run(context.Background(), client, flag.Arg(0), flag.Args()[1:])

	if *withMetrics {
		logMetrics(registry)
	}
	if err != nil {
		slog.Error("[Passimpay] Command failed", "command", flag.Arg(0), "error", err)
		os.Exit(1)
	}
}

func logMetrics(registry *prometheus.Registry) {
	families, err := registry.Gather()
	if err != nil {
		slog.Error("[Passimpay] Failed to gather metrics", "error", err)
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := make([]any, 0, len(m.GetLabel())*2)
			for _, lp := range m.GetLabel() {
				labels = append(labels, lp.GetName(), lp.GetValue())
			}
			switch {
			case m.GetCounter() != nil:
				slog.Info("[Passimpay] Metric "+mf.GetName(), append(labels, "value", m.GetCounter().GetValue())...)
			case m.GetHistogram() != nil:
				h := m.GetHistogram()
				slog.Info("[Passimpay] Metric "+mf.GetName(), append(labels, "count", h.GetSampleCount(), "sum", h.GetSampleSum())...)
			}
		}
	}
}
