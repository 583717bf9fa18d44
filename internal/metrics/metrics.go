package metrics

import (
	"sync"
	"time"
)

type Metrics struct {
	mu sync.RWMutex

	// Counters
	CandidatesProcessed int64
	BiographiesSkipped  int64
	FetchFailures       int64
	SeenFiltered        int64
	ObituariesResolved  int64
	DigestsSent         int64

	// Timings
	LastProcessingTime    time.Duration
	AverageProcessingTime time.Duration
	TotalProcessingTime   time.Duration
	ProcessingCount       int64

	// Status
	LastRunTime   time.Time
	LastErrorTime time.Time
	LastError     string
	IsHealthy     bool
}

var Global = &Metrics{IsHealthy: true}

func (m *Metrics) IncrementCandidatesProcessed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CandidatesProcessed++
}

func (m *Metrics) IncrementBiographiesSkipped() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.BiographiesSkipped++
}

func (m *Metrics) IncrementFetchFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FetchFailures++
}

func (m *Metrics) AddSeenFiltered(n int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SeenFiltered += n
}

func (m *Metrics) IncrementObituariesResolved() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ObituariesResolved++
}

func (m *Metrics) IncrementDigestsSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DigestsSent++
}

func (m *Metrics) RecordProcessingTime(duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.LastProcessingTime = duration
	m.TotalProcessingTime += duration
	m.ProcessingCount++

	if m.ProcessingCount > 0 {
		m.AverageProcessingTime = m.TotalProcessingTime / time.Duration(m.ProcessingCount)
	}
}

func (m *Metrics) SetLastRun() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastRunTime = time.Now()
	m.IsHealthy = true
}

func (m *Metrics) SetError(err string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastError = err
	m.LastErrorTime = time.Now()
	m.IsHealthy = false
}

func (m *Metrics) GetStats() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"candidates_processed":       m.CandidatesProcessed,
		"biographies_skipped":        m.BiographiesSkipped,
		"fetch_failures":             m.FetchFailures,
		"seen_filtered":              m.SeenFiltered,
		"obituaries_resolved":        m.ObituariesResolved,
		"digests_sent":               m.DigestsSent,
		"last_processing_time_ms":    m.LastProcessingTime.Milliseconds(),
		"average_processing_time_ms": m.AverageProcessingTime.Milliseconds(),
		"last_run_time":              m.LastRunTime.Format(time.RFC3339),
		"last_error_time":            m.LastErrorTime.Format(time.RFC3339),
		"last_error":                 m.LastError,
		"is_healthy":                 m.IsHealthy,
	}
}
