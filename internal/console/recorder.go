package console

import (
	"fmt"
	"strings"
	"sync"
)

// Entry is one recorded line.
type Entry struct {
	Severity Severity
	Message  string
}

// Recorder is a Reporter that keeps lines in memory. Tests use it to assert
// on what a step reported.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

func (r *Recorder) record(s Severity, format string, args []any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{Severity: s, Message: fmt.Sprintf(format, args...)})
}

func (r *Recorder) Success(format string, args ...any) { r.record(SeveritySuccess, format, args) }
func (r *Recorder) Info(format string, args ...any)    { r.record(SeverityInfo, format, args) }
func (r *Recorder) Warn(format string, args ...any)    { r.record(SeverityWarning, format, args) }
func (r *Recorder) Error(format string, args ...any)   { r.record(SeverityError, format, args) }
func (r *Recorder) Fatal(format string, args ...any)   { r.record(SeverityFatal, format, args) }

// Entries returns a copy of every recorded line.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Messages returns the messages recorded at severity s.
func (r *Recorder) Messages(s Severity) []string {
	var out []string
	for _, e := range r.Entries() {
		if e.Severity == s {
			out = append(out, e.Message)
		}
	}
	return out
}

// Count returns how many lines were recorded at severity s.
func (r *Recorder) Count(s Severity) int {
	return len(r.Messages(s))
}

// Contains reports whether any line at severity s contains substr.
func (r *Recorder) Contains(s Severity, substr string) bool {
	for _, m := range r.Messages(s) {
		if strings.Contains(m, substr) {
			return true
		}
	}
	return false
}

// Discard drops every line.
type Discard struct{}

func (Discard) Success(string, ...any) {}
func (Discard) Info(string, ...any)    {}
func (Discard) Warn(string, ...any)    {}
func (Discard) Error(string, ...any)   {}
func (Discard) Fatal(string, ...any)   {}
