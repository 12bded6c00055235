package metrics

import "time"

type Recorder interface {
	IncRequest(endpoint string, outcome string)
	ObserveLatency(endpoint string, duration time.Duration)
}

type NoopRecorder struct{}

func (NoopRecorder) IncRequest(string, string)            {}
func (NoopRecorder) ObserveLatency(string, time.Duration) {}
