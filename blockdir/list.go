package blockdir

import (
	"iter"

	"github.com/ravi-iyer/sortedblock/block"
	"github.com/ravi-iyer/sortedblock/blocklog"
)

// ListOption configures a List at construction.
type ListOption[T any] func(*listConfig[T])

type listConfig[T any] struct {
	log blocklog.Logger
}

// WithListLogger attaches a diagnostic logger the list reports split and
// trim events to. The default is blocklog.Nop().
func WithListLogger[T any](l blocklog.Logger) ListOption[T] {
	return func(c *listConfig[T]) { c.log = l }
}

// List is the "sorted block list" container: the simpler of the two
// variants, exposing TryAdd/Contains/Remove and range queries with no
// auxiliary membership filter.
type List[T any] struct {
	dir *directory[T]
}

// NewList constructs an empty List. directoryCapacityHint pre-reserves that
// many block slots; blockCapacity bounds the size of each block.
func NewList[T any](cmpOrder block.Comparator[T], directoryCapacityHint, blockCapacity int, opts ...ListOption[T]) (*List[T], error) {
	cfg := listConfig[T]{log: blocklog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	dir, err := newDirectory(cmpOrder, directoryCapacityHint, blockCapacity, cfg.log)
	if err != nil {
		return nil, err
	}

	return &List[T]{dir: dir}, nil
}

// TryAdd inserts v unless an element comparing equal under the ordering
// comparator is already present.
func (l *List[T]) TryAdd(v T) bool { return l.dir.TryAdd(v) }

// TryAddOrGetExisting behaves like TryAdd but also returns the stored value
// equal to v.
func (l *List[T]) TryAddOrGetExisting(v T) (bool, T) { return l.dir.TryAddOrGetExisting(v) }

// Contains reports whether v is present.
func (l *List[T]) Contains(v T) bool { return l.dir.Contains(v) }

// TryGetValue returns the stored value equal to v, if any.
func (l *List[T]) TryGetValue(v T) (T, bool) { return l.dir.TryGetValue(v) }

// Remove deletes v and reports whether it was present.
func (l *List[T]) Remove(v T) bool { return l.dir.Remove(v) }

// Count returns the number of stored elements.
func (l *List[T]) Count() int { return l.dir.Len() }

// BlockCount returns the number of blocks currently in the directory.
func (l *List[T]) BlockCount() int { return l.dir.BlockCount() }

// Enumerate yields every element in ascending order.
func (l *List[T]) Enumerate() iter.Seq[T] { return l.dir.Enumerate() }

// ValuesMatching yields every element e with cmpProbe(e, v) == 0.
func (l *List[T]) ValuesMatching(v T, cmpProbe block.Comparator[T]) iter.Seq[T] {
	return l.dir.ValuesMatching(v, cmpProbe)
}

// ValuesBetween yields every element in [lo, hi] under the ordering
// comparator.
func (l *List[T]) ValuesBetween(lo, hi T) iter.Seq[T] {
	return l.dir.ValuesBetween(lo, hi, l.dir.cmp)
}

// ValuesBetweenBy yields every element in [lo, hi] under cmpProbe.
func (l *List[T]) ValuesBetweenBy(lo, hi T, cmpProbe block.Comparator[T]) iter.Seq[T] {
	return l.dir.ValuesBetween(lo, hi, cmpProbe)
}

// Trim reduces residual over-allocation in the directory.
func (l *List[T]) Trim() { l.dir.Trim() }
