// Package blockdir implements the two-level "sorted block list"/"sorted
// block set" containers: an ordered sequence of block.Block instances,
// itself kept sorted by each block's minimum value, with insertion routed to
// the covering block and splits admitted in place.
package blockdir

import (
	"github.com/ravi-iyer/sortedblock/block"
	"github.com/ravi-iyer/sortedblock/blocklog"
)

const defaultDirectorySlack = 25

// directory is the shared engine behind List and Set. It owns every block
// and the element count; it has no notion of "list" vs "set" on its own —
// that distinction lives entirely in whether the owning container also
// maintains a bloom filter.
type directory[T any] struct {
	blocks   []*block.Block[T]
	blockCap int
	cmp      block.Comparator[T]
	n        int
	log      blocklog.Logger
}

func newDirectory[T any](cmp block.Comparator[T], dirCapacityHint, blockCap int, log blocklog.Logger) (*directory[T], error) {
	if cmp == nil {
		return nil, newConfigError(ErrNilComparator, "newDirectory")
	}
	if blockCap < 1 {
		return nil, newConfigError(ErrInvalidBlockCapacity, "newDirectory(blockCap=%d)", blockCap)
	}
	if log == nil {
		log = blocklog.Nop()
	}
	if dirCapacityHint < 0 {
		dirCapacityHint = 0
	}

	return &directory[T]{
		blocks:   make([]*block.Block[T], 0, dirCapacityHint),
		blockCap: blockCap,
		cmp:      cmp,
		log:      log,
	}, nil
}

// dirCapacityForExpected derives an initial directory reservation from an
// expected element total: ceil(expected/B) + a constant slack of spare
// block slots so a handful of splits don't immediately force a directory
// reallocation.
func dirCapacityForExpected(expectedTotal, blockCap int) int {
	if expectedTotal <= 0 || blockCap <= 0 {
		return defaultDirectorySlack
	}
	return (expectedTotal+blockCap-1)/blockCap + defaultDirectorySlack
}

func (d *directory[T]) Len() int { return d.n }

func (d *directory[T]) BlockCount() int { return len(d.blocks) }

// searchBlocks performs a binary search over the directory using each
// block's CompareAgainstValueSet as the per-element comparator. It returns
// the non-negative index of the covering block, or ^p where p is the
// position v would be inserted at (strictly between blocks[p-1] and
// blocks[p]).
func (d *directory[T]) searchBlocks(v T) int {
	lo, hi := 0, len(d.blocks)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		switch c := d.blocks[mid].CompareAgainstValueSet(v); {
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

// TryAdd inserts v if not already present. See §4.2.1.
func (d *directory[T]) TryAdd(v T) bool {
	inserted, _ := d.TryAddOrGetExisting(v)
	return inserted
}

// TryAddOrGetExisting inserts v if not already present and always returns
// the stored value equal to v (itself, on a fresh insert).
func (d *directory[T]) TryAddOrGetExisting(v T) (inserted bool, existing T) {
	if len(d.blocks) == 0 {
		d.blocks = append(d.blocks, block.NewWith(d.blockCap, d.cmp, v))
		d.n++
		return true, v
	}

	idx := d.searchBlocks(v)
	if idx >= 0 {
		return d.insertIntoBlock(idx, v)
	}

	// Strict-between case: v falls between blocks[p-1] and blocks[p] (or
	// before the first, or after the last). Prefer the left neighbor unless
	// v precedes every block, matching the "append to left neighbor if
	// room, else split" policy the design notes call out as one legal
	// resolution of the open neighbor-choice question.
	p := ^idx
	target := p - 1
	if p == 0 {
		target = 0
	}

	return d.insertIntoBlock(target, v)
}

// insertIntoBlock inserts v into d.blocks[idx], splitting first if the
// block is full, and returns whether a fresh element was added.
func (d *directory[T]) insertIntoBlock(idx int, v T) (inserted bool, existing T) {
	b := d.blocks[idx]

	if !b.Full() {
		inserted, existing = b.TryAddOrGetExisting(v)
		if inserted {
			d.n++
		}
		return inserted, existing
	}

	// Duplicate check before committing to a split: a full block may still
	// already contain v, in which case no structural change should happen.
	if i := b.Search(v); i >= 0 {
		return false, b.At(i)
	}

	// A block capacity of 1 is the pathological case called out in the
	// design notes: halving a single-element block can't produce two
	// non-empty halves, so there is no redistribution to do. The sibling is
	// seeded with v directly and b is left untouched; the only work is
	// picking which side of b the new sibling belongs on.
	if b.Cap() == 1 {
		sibling := block.NewWith(d.blockCap, d.cmp, v)
		d.insertSiblingAt(idx+1, sibling)
		if d.cmp(v, b.Min()) < 0 {
			d.blocks[idx], d.blocks[idx+1] = d.blocks[idx+1], d.blocks[idx]
		}
		d.log.Debugw("block split", "index", idx, "block_cap", 1)
		d.n++
		return true, v
	}

	sibling := b.Split()
	d.log.Debugw("block split", "index", idx, "left_len", b.Len(), "right_len", sibling.Len())
	d.insertSiblingAt(idx+1, sibling)

	target := b
	if d.cmp(v, sibling.Min()) >= 0 {
		target = sibling
	}

	inserted, existing = target.TryAddOrGetExisting(v)
	if inserted {
		d.n++
	}
	return inserted, existing
}

// insertSiblingAt splices sibling into the directory at position idx,
// shifting the tail right by one.
func (d *directory[T]) insertSiblingAt(idx int, sibling *block.Block[T]) {
	d.blocks = append(d.blocks, nil)
	copy(d.blocks[idx+1:], d.blocks[idx:len(d.blocks)-1])
	d.blocks[idx] = sibling
}

// Contains reports whether v is present.
func (d *directory[T]) Contains(v T) bool {
	_, ok := d.TryGetValue(v)
	return ok
}

// TryGetValue returns the stored value equal to v, if any.
func (d *directory[T]) TryGetValue(v T) (T, bool) {
	if len(d.blocks) == 0 {
		var zero T
		return zero, false
	}

	idx := d.searchBlocks(v)
	if idx < 0 {
		var zero T
		return zero, false
	}

	b := d.blocks[idx]
	i := b.Search(v)
	if i < 0 {
		var zero T
		return zero, false
	}
	return b.At(i), true
}

// Remove deletes v if present and reports whether it did.
func (d *directory[T]) Remove(v T) bool {
	if len(d.blocks) == 0 {
		return false
	}

	idx := d.searchBlocks(v)
	if idx < 0 {
		return false
	}

	b := d.blocks[idx]
	i := b.Search(v)
	if i < 0 {
		return false
	}

	b.RemoveAt(i)
	d.n--

	if b.Len() == 0 {
		d.blocks = append(d.blocks[:idx], d.blocks[idx+1:]...)
	}

	return true
}

// Trim reduces residual over-allocation in the directory's block slice. It
// has no observable semantic effect on subsequent operations.
func (d *directory[T]) Trim() {
	if cap(d.blocks) == len(d.blocks) {
		return
	}
	trimmed := make([]*block.Block[T], len(d.blocks))
	copy(trimmed, d.blocks)
	d.blocks = trimmed
	d.log.Debugw("trim", "blocks", len(d.blocks))
}
