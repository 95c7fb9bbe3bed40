package llm

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// UsageEntry describes one recorded LLM request.
type UsageEntry struct {
	ID        string // request correlation ID
	SessionID string // empty outside a session (ask, llm check)
	Time      time.Time
	Model     string
	Purpose   string
	LatencyMs int64
	Usage     Usage
	CostUSD   float64 // 0 when the model has no known pricing
	Err       string  // empty on success
}

// UsageTotals aggregates a UsageLog.
type UsageTotals struct {
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
	CostUSD      float64
}

// UsageLog is an in-memory record of the LLM requests made by this
// process. Nothing is persisted; the log dies with the process.
type UsageLog struct {
	mu      sync.Mutex
	entries []UsageEntry
}

// NewUsageLog creates an empty usage log.
func NewUsageLog() *UsageLog {
	return &UsageLog{}
}

func (l *UsageLog) add(e UsageEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, e)
}

// Entries returns a copy of all recorded entries, oldest first.
func (l *UsageLog) Entries() []UsageEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]UsageEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Last returns the most recent entry, or a zero entry and false when
// nothing has been recorded.
func (l *UsageLog) Last() (UsageEntry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.entries) == 0 {
		return UsageEntry{}, false
	}
	return l.entries[len(l.entries)-1], true
}

// Totals aggregates all recorded entries.
func (l *UsageLog) Totals() UsageTotals {
	l.mu.Lock()
	defer l.mu.Unlock()

	var t UsageTotals
	for _, e := range l.entries {
		t.Requests++
		if e.Err != "" {
			t.Failures++
		}
		t.InputTokens += e.Usage.InputTokens
		t.OutputTokens += e.Usage.OutputTokens
		t.CostUSD += e.CostUSD
	}
	return t
}

// RecordingProvider is a decorator that records every LLM request in a
// UsageLog, tagged with a fresh correlation ID.
type RecordingProvider struct {
	inner Provider
	log   *UsageLog
}

// WithRecording wraps a Provider with usage recording.
func WithRecording(p Provider, log *UsageLog) Provider {
	return &RecordingProvider{inner: p, log: log}
}

func (r *RecordingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := r.inner.Generate(ctx, req)

	entry := UsageEntry{
		ID:        uuid.NewString(),
		SessionID: SessionIDFrom(ctx),
		Time:      start,
		Model:     r.inner.ModelID(),
		Purpose:   PurposeFrom(ctx),
		LatencyMs: time.Since(start).Milliseconds(),
	}

	if resp != nil {
		entry.Usage = resp.Usage
		entry.Model = resp.Model
		if cost := LookupCost(resp.Model); cost != nil {
			entry.CostUSD = cost.Cost(resp.Usage.InputTokens, resp.Usage.OutputTokens)
		}
	}

	if err != nil {
		entry.Err = err.Error()
	}

	r.log.add(entry)

	return resp, err
}

func (r *RecordingProvider) ModelID() string {
	return r.inner.ModelID()
}
