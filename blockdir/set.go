package blockdir

import (
	"fmt"
	"iter"

	"github.com/bits-and-blooms/bloom/v3"

	"github.com/ravi-iyer/sortedblock/block"
	"github.com/ravi-iyer/sortedblock/blocklog"
)

const (
	defaultBloomExpected = 10_000
	defaultBloomFalsePos = 0.01
)

// SetOption configures a Set at construction.
type SetOption[T any] func(*setConfig[T])

type setConfig[T any] struct {
	log      blocklog.Logger
	keyBytes func(T) []byte
	fpRate   float64
}

// WithSetLogger attaches a diagnostic logger the set reports split and trim
// events to. The default is blocklog.Nop().
func WithSetLogger[T any](l blocklog.Logger) SetOption[T] {
	return func(c *setConfig[T]) { c.log = l }
}

// WithKeyBytes controls how the set's auxiliary bloom filter hashes a
// value. The default is fmt.Sprint(v) encoded as bytes, which is correct
// but allocates; callers on a hot insert path for a type with a cheap exact
// byte encoding should supply one.
func WithKeyBytes[T any](f func(T) []byte) SetOption[T] {
	return func(c *setConfig[T]) { c.keyBytes = f }
}

// WithBloomFalsePositiveRate overrides the target false-positive rate of the
// auxiliary filter (default 1%). Lower rates cost more memory per element.
func WithBloomFalsePositiveRate[T any](rate float64) SetOption[T] {
	return func(c *setConfig[T]) { c.fpRate = rate }
}

func defaultKeyBytes[T any](v T) []byte {
	return []byte(fmt.Sprint(v))
}

// Set is the "sorted block set" container: identical semantics to List,
// plus a bloom filter over present elements that short-circuits negative
// Contains queries before paying for the directory binary search. The
// filter is semantically redundant — Set produces identical results to List
// on the same inputs whether or not the filter is consulted.
type Set[T any] struct {
	dir      *directory[T]
	filter   *bloom.BloomFilter
	keyBytes func(T) []byte
	fpRate   float64
}

func newSet[T any](cmpOrder block.Comparator[T], dirCapacityHint, blockCapacity, bloomExpected int, opts ...SetOption[T]) (*Set[T], error) {
	cfg := setConfig[T]{
		log:      blocklog.Nop(),
		keyBytes: defaultKeyBytes[T],
		fpRate:   defaultBloomFalsePos,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	dir, err := newDirectory(cmpOrder, dirCapacityHint, blockCapacity, cfg.log)
	if err != nil {
		return nil, err
	}

	if bloomExpected <= 0 {
		bloomExpected = defaultBloomExpected
	}

	return &Set[T]{
		dir:      dir,
		filter:   bloom.NewWithEstimates(uint(bloomExpected), cfg.fpRate),
		keyBytes: cfg.keyBytes,
		fpRate:   cfg.fpRate,
	}, nil
}

// NewSet constructs an empty Set, sizing the directory and the auxiliary
// filter adaptively from a modest default expectation.
func NewSet[T any](cmpOrder block.Comparator[T], blockCapacity int, opts ...SetOption[T]) (*Set[T], error) {
	return newSet(cmpOrder, defaultDirectorySlack, blockCapacity, defaultBloomExpected, opts...)
}

// NewSetForExpected constructs an empty Set whose directory and filter are
// pre-sized from an expected total element count.
func NewSetForExpected[T any](cmpOrder block.Comparator[T], expectedTotal, blockCapacity int, opts ...SetOption[T]) (*Set[T], error) {
	return newSet(cmpOrder, dirCapacityForExpected(expectedTotal, blockCapacity), blockCapacity, expectedTotal, opts...)
}

// TryAdd inserts v unless an element comparing equal under the ordering
// comparator is already present.
func (s *Set[T]) TryAdd(v T) bool {
	inserted, _ := s.TryAddOrGetExisting(v)
	return inserted
}

// TryAddOrGetExisting behaves like TryAdd but also returns the stored value
// equal to v.
func (s *Set[T]) TryAddOrGetExisting(v T) (bool, T) {
	inserted, existing := s.dir.TryAddOrGetExisting(v)
	if inserted {
		s.filter.Add(s.keyBytes(v))
	}
	return inserted, existing
}

// Contains reports whether v is present. A negative filter hit short
// circuits without touching the directory; a positive hit always falls
// through to the real search, since the filter may have false positives but
// never false negatives.
func (s *Set[T]) Contains(v T) bool {
	if !s.filter.Test(s.keyBytes(v)) {
		return false
	}
	return s.dir.Contains(v)
}

// TryGetValue returns the stored value equal to v, if any.
func (s *Set[T]) TryGetValue(v T) (T, bool) {
	if !s.filter.Test(s.keyBytes(v)) {
		var zero T
		return zero, false
	}
	return s.dir.TryGetValue(v)
}

// Remove deletes v and reports whether it was present. The auxiliary filter
// is rebuilt wholesale from the surviving elements: a standard bloom filter
// cannot clear individual bits, and leaving v's bits set would only ever
// cost an extra false positive, never a false negative, but rebuilding keeps
// the filter's false-positive rate from drifting upward across many
// removals. Deletion performance beyond naive correctness is explicitly not
// a goal of this container.
func (s *Set[T]) Remove(v T) bool {
	removed := s.dir.Remove(v)
	if removed {
		s.rebuildFilter()
	}
	return removed
}

func (s *Set[T]) rebuildFilter() {
	fresh := bloom.NewWithEstimates(uint(max(s.dir.Len(), 1)), s.fpRate)
	for v := range s.dir.Enumerate() {
		fresh.Add(s.keyBytes(v))
	}
	s.filter = fresh
}

// Count returns the number of stored elements.
func (s *Set[T]) Count() int { return s.dir.Len() }

// BlockCount returns the number of blocks currently in the directory.
func (s *Set[T]) BlockCount() int { return s.dir.BlockCount() }

// Enumerate yields every element in ascending order.
func (s *Set[T]) Enumerate() iter.Seq[T] { return s.dir.Enumerate() }

// ValuesMatching yields every element e with cmpProbe(e, v) == 0.
func (s *Set[T]) ValuesMatching(v T, cmpProbe block.Comparator[T]) iter.Seq[T] {
	return s.dir.ValuesMatching(v, cmpProbe)
}

// ValuesBetween yields every element in [lo, hi] under the ordering
// comparator.
func (s *Set[T]) ValuesBetween(lo, hi T) iter.Seq[T] {
	return s.dir.ValuesBetween(lo, hi, s.dir.cmp)
}

// ValuesBetweenBy yields every element in [lo, hi] under cmpProbe.
func (s *Set[T]) ValuesBetweenBy(lo, hi T, cmpProbe block.Comparator[T]) iter.Seq[T] {
	return s.dir.ValuesBetween(lo, hi, cmpProbe)
}

// Trim reduces residual over-allocation in the directory.
func (s *Set[T]) Trim() { s.dir.Trim() }
