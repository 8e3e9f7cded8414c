package telemetry

import (
	"sync/atomic"
	"time"
)

// OpMetrics fasst Messwerte zu Queue-Operationen zusammen.
type OpMetrics struct {
	totalDuration atomic.Int64
	ops           atomic.Uint64
	failures      atomic.Uint64
}

var defaultOpMetrics OpMetrics

// DefaultOpMetrics liefert die globalen Metriken.
func DefaultOpMetrics() *OpMetrics {
	return &defaultOpMetrics
}

// TraceOp startet eine Messung und liefert eine Abschlussfunktion, die Dauer
// und Fehlerzustand meldet.
func TraceOp() func(ok bool) {
	start := time.Now()
	defaultOpMetrics.ops.Add(1)
	return func(ok bool) {
		elapsed := time.Since(start)
		defaultOpMetrics.totalDuration.Add(elapsed.Nanoseconds())
		if !ok {
			defaultOpMetrics.failures.Add(1)
		}
	}
}

// Snapshot gibt die gesammelten Werte zurück.
func (m *OpMetrics) Snapshot() (ops uint64, failures uint64, average time.Duration) {
	ops = m.ops.Load()
	failures = m.failures.Load()
	total := m.totalDuration.Load()
	if ops == 0 {
		return ops, failures, 0
	}
	average = time.Duration(total / int64(ops))
	return ops, failures, average
}

// Reset setzt alle Zähler zurück.
func (m *OpMetrics) Reset() {
	m.totalDuration.Store(0)
	m.ops.Store(0)
	m.failures.Store(0)
}
