// Package orcuslog is the warning sink format handlers report
// recoverable parse problems through: a malformed pivot cache item, an
// unsupported gnumeric filter value type, a style reference that
// resolves to nothing. None of these abort an import; they get
// reported here instead, the same commonlog-backed logging the
// language server in this module's ancestor used for its own
// diagnostics.
package orcuslog

import (
	"fmt"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

// Sink receives formatted warnings from a format handler. Calling
// Warnf on a nil Sink panics; Or maps nil to Discard, so a handler
// that passes its Sink through Or once can call it unconditionally.
type Sink interface {
	Warnf(format string, args ...any)
}

// logSink adapts a commonlog.Logger into a Sink.
type logSink struct {
	logger commonlog.Logger
}

// New returns a Sink that logs warnings under name via commonlog's
// simple backend. debug raises commonlog's process-wide level to debug
// so Debugf calls are emitted too; Debugf is not part of Sink and
// nothing in this module calls it. Warnf is unaffected by debug either
// way.
func New(name string, debug bool) Sink {
	if debug {
		commonlog.SetMaxLevel(commonlog.Debug)
	}
	return &logSink{logger: commonlog.GetLogger(name)}
}

func (s *logSink) Warnf(format string, args ...any) {
	s.logger.Warning(fmt.Sprintf(format, args...))
}

// Debugf logs a debug-level message, a no-op unless New was called
// with debug=true or the process otherwise raised commonlog's level.
func (s *logSink) Debugf(format string, args ...any) {
	s.logger.Debug(fmt.Sprintf(format, args...))
}

// Discard is the nil-safe default Sink: every format handler that
// accepts an optional orcuslog.Sink falls back to it so callers that
// don't care about warnings never need a nil check of their own.
var Discard Sink = discardSink{}

type discardSink struct{}

func (discardSink) Warnf(string, ...any) {}

// Or returns sink if non-nil, otherwise Discard; format handlers that
// take an optional Sink parameter call this once at the top of their
// entry point.
func Or(sink Sink) Sink {
	if sink == nil {
		return Discard
	}
	return sink
}
