package service

import (
	"fmt"
	"sync"
	"time"
)

// SweepMetrics tracks statistics about sweep runs and archiving
type SweepMetrics struct {
	mu               sync.RWMutex
	StartTime        time.Time
	Duration         time.Duration
	SweepsRun        int
	CareersSimulated int
	CareersArchived  int
	RacesArchived    int
	Errors           int
}

// NewSweepMetrics creates a new metrics tracker
func NewSweepMetrics() *SweepMetrics {
	return &SweepMetrics{
		StartTime: time.Now(),
	}
}

// Reset resets all metrics
func (m *SweepMetrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.StartTime = time.Now()
	m.Duration = 0
	m.SweepsRun = 0
	m.CareersSimulated = 0
	m.CareersArchived = 0
	m.RacesArchived = 0
	m.Errors = 0
}

// RecordSweep increments the sweep count
func (m *SweepMetrics) RecordSweep(careers int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SweepsRun++
	m.CareersSimulated += careers
}

// RecordArchive increments archive counts
func (m *SweepMetrics) RecordArchive(races int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CareersArchived++
	m.RacesArchived += races
}

// RecordError increments the error count
func (m *SweepMetrics) RecordError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Errors++
}

// String returns a human-readable summary
func (m *SweepMetrics) String() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return fmt.Sprintf("sweeps=%d careers=%d archived=%d races=%d errors=%d duration=%v",
		m.SweepsRun, m.CareersSimulated, m.CareersArchived, m.RacesArchived, m.Errors, m.Duration)
}
