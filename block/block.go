// Package block implements the fixed-capacity sorted buffer that the
// directory layer builds its block list and block set containers on top of.
package block

// Comparator returns a negative number if a orders before b, zero if a and b
// are equal, and a positive number if a orders after b. Implementations must
// be a total order: transitive, antisymmetric, and consistent across calls.
type Comparator[T any] func(a, b T) int

// Block is a fixed-capacity ordered buffer of values. Elements at indices
// [0, Len()) are strictly ascending under the block's comparator. A Block
// never resizes its backing array; it only grows in place up to cap, or
// splits.
type Block[T any] struct {
	buf []T
	cap int
	cmp Comparator[T]
}

// New returns an empty block with room for capacity elements.
func New[T any](capacity int, cmp Comparator[T]) *Block[T] {
	return &Block[T]{
		buf: make([]T, 0, capacity),
		cap: capacity,
		cmp: cmp,
	}
}

// NewWith returns a block seeded with a single element, used to bootstrap a
// directory's first block.
func NewWith[T any](capacity int, cmp Comparator[T], v T) *Block[T] {
	b := New(capacity, cmp)
	b.buf = append(b.buf, v)
	return b
}

// Len returns the number of elements currently stored.
func (b *Block[T]) Len() int { return len(b.buf) }

// Cap returns the block's fixed maximum capacity.
func (b *Block[T]) Cap() int { return b.cap }

// Full reports whether the block has no remaining room.
func (b *Block[T]) Full() bool { return len(b.buf) >= b.cap }

// Min returns the smallest element. Panics if the block is empty.
func (b *Block[T]) Min() T { return b.buf[0] }

// Max returns the largest element. Panics if the block is empty.
func (b *Block[T]) Max() T { return b.buf[len(b.buf)-1] }

// At returns the element at index i.
func (b *Block[T]) At(i int) T { return b.buf[i] }

// Search performs a binary search for v. It returns the non-negative index of
// an exact match, or ^pos (the bitwise complement of the insertion position)
// on a miss, so that ^result yields the index at which v belongs.
func (b *Block[T]) Search(v T) int {
	lo, hi := 0, len(b.buf)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		switch c := b.cmp(b.buf[mid], v); {
		case c == 0:
			return mid
		case c < 0:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return ^lo
}

// TryAdd inserts v in sorted position and returns true, unless v is already
// present, in which case it returns false and leaves the block unchanged.
// The caller must ensure the block is not Full.
func (b *Block[T]) TryAdd(v T) bool {
	inserted, _ := b.TryAddOrGetExisting(v)
	return inserted
}

// TryAddOrGetExisting behaves like TryAdd, but on a duplicate also returns
// the stored value equal to v (useful when T carries identity beyond what
// the comparator orders on).
func (b *Block[T]) TryAddOrGetExisting(v T) (inserted bool, existing T) {
	idx := b.Search(v)
	if idx >= 0 {
		return false, b.buf[idx]
	}

	pos := ^idx
	b.buf = append(b.buf, v)
	copy(b.buf[pos+1:], b.buf[pos:len(b.buf)-1])
	b.buf[pos] = v

	return true, v
}

// RemoveAt deletes the element at index i, shifting the tail left by one.
func (b *Block[T]) RemoveAt(i int) {
	copy(b.buf[i:], b.buf[i+1:])
	b.buf = b.buf[:len(b.buf)-1]
}

// Split moves the upper half of the block into a newly allocated sibling of
// the same capacity and returns it. Both blocks are left non-empty, and
// self.Max() < sibling.Min() afterward.
func (b *Block[T]) Split() *Block[T] {
	mid := len(b.buf) / 2

	sibling := New(b.cap, b.cmp)
	sibling.buf = append(sibling.buf, b.buf[mid:]...)
	b.buf = b.buf[:mid]

	return sibling
}

// CompareAgainstValueList answers, for the directory's "list" binary search,
// where v falls relative to this block: negative means v is to the right of
// the block (v > max), positive means v < max (v is left of the block or
// strictly inside it), and zero means v lands exactly on the min or max
// boundary. It does not report "covers" for values strictly between min and
// max; the caller must still descend into the block to find those.
func (b *Block[T]) CompareAgainstValueList(v T) int {
	if c := b.cmp(b.Min(), v); c >= 0 {
		return c
	}
	return b.cmp(b.Max(), v)
}

// CompareAgainstValueSet answers the same three-way question as
// CompareAgainstValueList, but clamps the "v is inside the block" case to
// zero for every v in [min, max], so a directory binary search driven by
// this comparator lands directly on the covering block.
func (b *Block[T]) CompareAgainstValueSet(v T) int {
	if b.cmp(v, b.Min()) < 0 {
		return 1
	}
	if b.cmp(v, b.Max()) > 0 {
		return -1
	}
	return 0
}
