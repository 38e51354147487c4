package logging

import (
	"context"
	"sync"

	"github.com/alexisbeaulieu97/imagepick/internal/ports"
)

const defaultRecorderLimit = 1000

// Level names a recorded entry's severity.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Entry is one log call captured by a Recorder.
type Entry struct {
	Level   Level
	Message string
	Fields  map[string]interface{}

	ctx  context.Context
	args []interface{}
}

// Field returns the value recorded under key.
func (e Entry) Field(key string) (interface{}, bool) {
	v, ok := e.Fields[key]
	return v, ok
}

type recorderStore struct {
	mu      sync.Mutex
	limit   int
	entries []Entry
}

// Recorder implements ports.Logger by keeping entries in memory. The CLI uses
// it while settings are still loading and replays the entries once the real
// logger exists; tests use it to assert on diagnostics.
type Recorder struct {
	store  *recorderStore
	fields []interface{}
}

// NewRecorder creates a recorder keeping at most limit entries (defaults to 1000).
// The oldest entries are dropped first.
func NewRecorder(limit int) *Recorder {
	if limit <= 0 {
		limit = defaultRecorderLimit
	}
	return &Recorder{store: &recorderStore{limit: limit}}
}

// Debug implements ports.Logger.
func (r *Recorder) Debug(ctx context.Context, msg string, fields ...interface{}) {
	r.record(ctx, LevelDebug, msg, fields)
}

// Info implements ports.Logger.
func (r *Recorder) Info(ctx context.Context, msg string, fields ...interface{}) {
	r.record(ctx, LevelInfo, msg, fields)
}

// Warn implements ports.Logger.
func (r *Recorder) Warn(ctx context.Context, msg string, fields ...interface{}) {
	r.record(ctx, LevelWarn, msg, fields)
}

// Error implements ports.Logger.
func (r *Recorder) Error(ctx context.Context, msg string, fields ...interface{}) {
	r.record(ctx, LevelError, msg, fields)
}

// With returns a child recorder sharing the same store.
func (r *Recorder) With(fields ...interface{}) ports.Logger {
	return &Recorder{store: r.store, fields: MergeFields(r.fields, fields)}
}

// Entries returns a copy of everything recorded so far.
func (r *Recorder) Entries() []Entry {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := make([]Entry, len(r.store.entries))
	copy(out, r.store.entries)
	return out
}

// EntriesAt returns the recorded entries with the given level.
func (r *Recorder) EntriesAt(level Level) []Entry {
	var out []Entry
	for _, entry := range r.Entries() {
		if entry.Level == level {
			out = append(out, entry)
		}
	}
	return out
}

// Flush replays and clears the recorded entries through delegate, preserving order.
func (r *Recorder) Flush(delegate ports.Logger) {
	if delegate == nil {
		return
	}
	r.store.mu.Lock()
	entries := r.store.entries
	r.store.entries = nil
	r.store.mu.Unlock()

	for _, entry := range entries {
		switch entry.Level {
		case LevelDebug:
			delegate.Debug(entry.ctx, entry.Message, entry.args...)
		case LevelWarn:
			delegate.Warn(entry.ctx, entry.Message, entry.args...)
		case LevelError:
			delegate.Error(entry.ctx, entry.Message, entry.args...)
		default:
			delegate.Info(entry.ctx, entry.Message, entry.args...)
		}
	}
}

func (r *Recorder) record(ctx context.Context, level Level, msg string, fields []interface{}) {
	if r == nil || r.store == nil {
		return
	}
	args := MergeFields(r.fields, fields)
	values := make(map[string]interface{}, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		values[args[i].(string)] = args[i+1]
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	entry := Entry{Level: level, Message: msg, Fields: values, ctx: ctx, args: args}
	if len(s.entries) == s.limit {
		copy(s.entries, s.entries[1:])
		s.entries[len(s.entries)-1] = entry
		return
	}
	s.entries = append(s.entries, entry)
}

var _ ports.Logger = (*Recorder)(nil)
