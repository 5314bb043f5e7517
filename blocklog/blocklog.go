// Package blocklog provides the optional diagnostic logger the directory
// layer calls around structurally interesting events (block splits, trim
// compaction). The container performs no I/O on its own and logs nothing by
// default; a caller that wants visibility supplies a Logger via an option.
package blocklog

import "go.uber.org/zap"

// Logger is the diagnostic sink the directory reports to. Debugw mirrors
// zap.SugaredLogger's keys-and-values calling convention so a *zap.SugaredLogger
// satisfies it directly.
type Logger interface {
	Debugw(msg string, keysAndValues ...interface{})
}

type nop struct{}

func (nop) Debugw(string, ...interface{}) {}

// Nop returns a Logger that discards everything. It is the default logger
// for every container so the zero-configuration path never pays for logging
// it didn't ask for.
func Nop() Logger { return nop{} }

// NewZap wraps a *zap.Logger as a Logger, via its sugared form.
func NewZap(l *zap.Logger) Logger {
	return l.Sugar()
}
