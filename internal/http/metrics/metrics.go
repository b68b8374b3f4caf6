package metrics

import (
	"sync"
	"time"
)

// Collector keeps in-process counters for the /metrics endpoint. It is
// safe for concurrent use by the request middleware and handlers.
type Collector struct {
	mu            sync.Mutex
	requestsTotal int64
	byStatus      map[int]int64
	errorsByCode  map[string]int64
	totalLatency  time.Duration
}

func NewCollector() *Collector {
	return &Collector{
		byStatus:     make(map[int]int64),
		errorsByCode: make(map[string]int64),
	}
}

func (c *Collector) ObserveRequest(status int, latency time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.requestsTotal++
	c.byStatus[status]++
	c.totalLatency += latency
}

func (c *Collector) ObserveError(code string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errorsByCode[code]++
}

type Snapshot struct {
	RequestsTotal    int64            `json:"requests_total"`
	RequestsByStatus map[int]int64    `json:"requests_by_status"`
	ErrorsByCode     map[string]int64 `json:"errors_by_code"`
	AvgLatencyMS     float64          `json:"avg_latency_ms"`
}

func (c *Collector) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	byStatus := make(map[int]int64, len(c.byStatus))
	for status, count := range c.byStatus {
		byStatus[status] = count
	}
	byCode := make(map[string]int64, len(c.errorsByCode))
	for code, count := range c.errorsByCode {
		byCode[code] = count
	}
	snap := Snapshot{
		RequestsTotal:    c.requestsTotal,
		RequestsByStatus: byStatus,
		ErrorsByCode:     byCode,
	}
	if c.requestsTotal > 0 {
		snap.AvgLatencyMS = float64(c.totalLatency.Milliseconds()) / float64(c.requestsTotal)
	}
	return snap
}
