package metrics

import (
	"sync/atomic"
	"time"
)

type Collector struct {
	totalRequests   uint64
	errorRequests   uint64
	mutations       uint64
	inconsistencies uint64
	totalDurationMs uint64
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) Record(method string, status int, duration time.Duration) {
	atomic.AddUint64(&c.totalRequests, 1)
	if status >= 500 {
		atomic.AddUint64(&c.errorRequests, 1)
	}
	if method != "GET" && status < 400 {
		atomic.AddUint64(&c.mutations, 1)
	}
	atomic.AddUint64(&c.totalDurationMs, uint64(duration.Milliseconds()))
}

// RecordInconsistency counts reconciliations that left an aggregate and its
// record set out of sync, so operators can alert on a non-zero value.
func (c *Collector) RecordInconsistency() {
	atomic.AddUint64(&c.inconsistencies, 1)
}

func (c *Collector) Snapshot() map[string]any {
	total := atomic.LoadUint64(&c.totalRequests)
	totalMs := atomic.LoadUint64(&c.totalDurationMs)
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}
	return map[string]any{
		"requestsTotal":        total,
		"errorsTotal":          atomic.LoadUint64(&c.errorRequests),
		"mutationsTotal":       atomic.LoadUint64(&c.mutations),
		"inconsistenciesTotal": atomic.LoadUint64(&c.inconsistencies),
		"avgDurationMs":        avg,
		"totalDurationMs":      totalMs,
	}
}
