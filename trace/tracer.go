package trace

import (
	"io"
	"os"
	"path/filepath"

	"github.com/oarkflow/log"
)

// Tracer records line-level execution events for debugging
type Tracer struct {
	enabled bool
	filters []string
	logger  *log.Logger
}

// Global tracer instance
var globalTracer *Tracer

// New creates a tracer writing JSON records to writer.
// filters are glob patterns matched against statement keywords ("print",
// "if", "assign", ...); no filters traces everything.
func New(enabled bool, filters []string, writer io.Writer) *Tracer {
	if writer == nil {
		writer = os.Stderr
	}
	return &Tracer{
		enabled: enabled,
		filters: filters,
		logger: &log.Logger{
			Level:  log.DebugLevel,
			Writer: &log.IOWriter{Writer: writer},
		},
	}
}

// Init initializes the global tracer
func Init(enabled bool, filters []string, writer io.Writer) {
	globalTracer = New(enabled, filters, writer)
}

// Global returns the global tracer, or nil before Init
func Global() *Tracer {
	return globalTracer
}

// IsEnabled returns whether tracing is enabled
func IsEnabled() bool {
	if globalTracer == nil {
		return false
	}
	return globalTracer.enabled
}

// matchesFilter checks if a statement keyword matches any of the filter patterns
func (t *Tracer) matchesFilter(keyword string) bool {
	if len(t.filters) == 0 {
		return true // No filters = trace everything
	}

	for _, pattern := range t.filters {
		if matched, _ := filepath.Match(pattern, keyword); matched {
			return true
		}
	}
	return false
}

func (t *Tracer) active(keyword string) bool {
	return t != nil && t.enabled && t.matchesFilter(keyword)
}

// Exec logs a statement that is about to run
func (t *Tracer) Exec(line int, keyword, text string) {
	if !t.active(keyword) {
		return
	}
	t.logger.Debug().Int("line", line).Str("stmt", keyword).Str("text", text).Msg("[TRACE] EXEC")
}

// Skip logs a statement suppressed by the block state
func (t *Tracer) Skip(line int, keyword, text, state string) {
	if !t.active(keyword) {
		return
	}
	t.logger.Debug().Int("line", line).Str("stmt", keyword).Str("state", state).Str("text", text).Msg("[TRACE] SKIP")
}

// Branch logs a control line and the block state it produced
func (t *Tracer) Branch(line int, keyword, cond, state string) {
	if !t.active(keyword) {
		return
	}
	t.logger.Debug().Int("line", line).Str("stmt", keyword).Str("cond", cond).Str("state", state).Msg("[TRACE] BRANCH")
}

// NoOperator logs a condition that has no comparison operator and
// therefore evaluated to false
func (t *Tracer) NoOperator(line int, keyword, cond string) {
	if !t.active(keyword) {
		return
	}
	t.logger.Warn().Int("line", line).Str("stmt", keyword).Str("cond", cond).Msg("[TRACE] condition has no comparison operator")
}

// Exception logs a failed statement
func (t *Tracer) Exception(line int, keyword, text string, err error) {
	if !t.active(keyword) {
		return
	}
	t.logger.Error().Err(err).Int("line", line).Str("stmt", keyword).Str("text", text).Msg("[TRACE] EXCEPTION")
}
