package httpapi

import (
	"sync"
	"time"

	"orgnet/internal/domain"
)

// Metrics collects runtime counters for /metrics. It implements
// application.PipelineObserver for the submission lifecycle; the HTTP layer
// feeds the query counters.
type Metrics struct {
	mu              sync.RWMutex
	startTime       time.Time
	queries         uint64
	queryErrors     uint64
	toolCalls       map[string]uint64
	submitted       uint64
	confirmed       uint64
	failed          uint64
	functionCalls   map[string]uint64
	failuresByKind  map[string]uint64
	lastConfirmWait time.Duration
	maxConfirmWait  time.Duration
}

func NewMetrics() *Metrics {
	return &Metrics{
		startTime:      time.Now(),
		toolCalls:      make(map[string]uint64),
		functionCalls:  make(map[string]uint64),
		failuresByKind: make(map[string]uint64),
	}
}

func (m *Metrics) IncQuery() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queries++
}

func (m *Metrics) IncQueryError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queryErrors++
}

func (m *Metrics) IncToolCall(tool string) {
	if tool == "" {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.toolCalls[tool]++
}

func (m *Metrics) OnSubmitted(function string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.submitted++
	if function != "" {
		m.functionCalls[function]++
	}
}

func (m *Metrics) OnConfirmed(function string, wait time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.confirmed++
	m.lastConfirmWait = wait
	if wait > m.maxConfirmWait {
		m.maxConfirmWait = wait
	}
}

func (m *Metrics) OnFailed(function string, kind domain.ErrorKind) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failed++
	if kind != "" {
		m.failuresByKind[string(kind)]++
	}
}

type Snapshot struct {
	StartTime       time.Time
	Queries         uint64
	QueryErrors     uint64
	ToolCalls       map[string]uint64
	Submitted       uint64
	Confirmed       uint64
	Failed          uint64
	FunctionCalls   map[string]uint64
	FailuresByKind  map[string]uint64
	LastConfirmWait time.Duration
	MaxConfirmWait  time.Duration
}

func (m *Metrics) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Snapshot{
		StartTime:       m.startTime,
		Queries:         m.queries,
		QueryErrors:     m.queryErrors,
		ToolCalls:       copyCounts(m.toolCalls),
		Submitted:       m.submitted,
		Confirmed:       m.confirmed,
		Failed:          m.failed,
		FunctionCalls:   copyCounts(m.functionCalls),
		FailuresByKind:  copyCounts(m.failuresByKind),
		LastConfirmWait: m.lastConfirmWait,
		MaxConfirmWait:  m.maxConfirmWait,
	}
}

func copyCounts(source map[string]uint64) map[string]uint64 {
	if len(source) == 0 {
		return nil
	}
	clone := make(map[string]uint64, len(source))
	for key, value := range source {
		clone[key] = value
	}
	return clone
}
