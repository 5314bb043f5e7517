package blockdir

import (
	"errors"
	"fmt"
)

// Sentinel errors returned (wrapped) from construction. Both are
// InvalidArgument-class failures: the caller passed something the container
// can never make sense of, and construction fails fast rather than leaving a
// half-built container around. A hi-less-than-lo query interval is not among
// these: §4.3.1 specifies that case as the empty sequence, not an error, so
// ValuesBetween handles it directly rather than through this package.
var (
	ErrNilComparator        = errors.New("blockdir: comparator must not be nil")
	ErrInvalidBlockCapacity = errors.New("blockdir: block capacity must be >= 1")
)

// ConfigError wraps a sentinel with the offending parameter's value, the way
// the teacher's disk layers wrap os errors with fmt.Errorf("...: %w", ...).
type ConfigError struct {
	err error
	msg string
}

func (e *ConfigError) Error() string { return e.msg }
func (e *ConfigError) Unwrap() error { return e.err }

func newConfigError(sentinel error, format string, args ...interface{}) error {
	return &ConfigError{
		err: sentinel,
		msg: fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), sentinel).Error(),
	}
}
