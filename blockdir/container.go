package blockdir

import (
	"iter"

	"github.com/ravi-iyer/sortedblock/block"
)

// Container is the shared contract implemented by both List and Set, so
// callers can depend on the ordering/membership/range semantics without
// committing to which variant backs them.
type Container[T any] interface {
	TryAdd(v T) bool
	TryAddOrGetExisting(v T) (inserted bool, existing T)
	Contains(v T) bool
	TryGetValue(v T) (T, bool)
	Remove(v T) bool
	Count() int
	Enumerate() iter.Seq[T]
	ValuesMatching(v T, cmpProbe block.Comparator[T]) iter.Seq[T]
	ValuesBetween(lo, hi T) iter.Seq[T]
	ValuesBetweenBy(lo, hi T, cmpProbe block.Comparator[T]) iter.Seq[T]
	Trim()
}

var (
	_ Container[int] = (*List[int])(nil)
	_ Container[int] = (*Set[int])(nil)
)
