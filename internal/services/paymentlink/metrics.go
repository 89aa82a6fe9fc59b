package paymentlink

import "time"

// NoopMetricsCollector is a no-op implementation of MetricsCollector
type NoopMetricsCollector struct{}

func (n *NoopMetricsCollector) RecordIssued(string, string, float64)    {}
func (n *NoopMetricsCollector) RecordProvisioned(string, time.Duration) {}
func (n *NoopMetricsCollector) RecordCacheHit(string)                   {}
func (n *NoopMetricsCollector) RecordCacheMiss(string)                  {}
func (n *NoopMetricsCollector) RecordError(string, string)              {}
