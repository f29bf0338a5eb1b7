package services

import "time"

// MetricsRecorder receives operational signals from the treasury services.
type MetricsRecorder interface {
	ObserveOperation(operation string, errorKind string, elapsed time.Duration)
	ObserveLockWait(operation string, waited time.Duration)
	SetBalance(accountKey, currency string, balance float64)
}

// NopMetrics discards every signal.
type NopMetrics struct{}

func (NopMetrics) ObserveOperation(string, string, time.Duration) {}
func (NopMetrics) ObserveLockWait(string, time.Duration)          {}
func (NopMetrics) SetBalance(string, string, float64)             {}
