package blockdir

import (
	"iter"

	"github.com/ravi-iyer/sortedblock/block"
)

// Enumerate yields every stored element in ascending order, iterating blocks
// in directory order and within each block by index order.
func (d *directory[T]) Enumerate() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, b := range d.blocks {
			for i := 0; i < b.Len(); i++ {
				if !yield(b.At(i)) {
					return
				}
			}
		}
	}
}

// firstBlockAtLeast returns the index of the first block whose max is not
// strictly less than v under cmpProbe, i.e. the first block that may still
// contain an element satisfying the query. It relies on cmpProbe being a
// consistent coarsening of the directory's ordering comparator: applied
// along the ascending sequence, cmpProbe(e, v) is non-decreasing, so the
// per-block max values are themselves non-decreasing across the directory.
func (d *directory[T]) firstBlockAtLeast(v T, cmpProbe block.Comparator[T]) int {
	lo, hi := 0, len(d.blocks)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if cmpProbe(d.blocks[mid].Max(), v) >= 0 {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

// firstIndexAtLeast returns the first index within b whose element is not
// strictly less than v under cmpProbe.
func firstIndexAtLeast[T any](b *block.Block[T], v T, cmpProbe block.Comparator[T]) int {
	lo, hi := 0, b.Len()
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if cmpProbe(b.At(mid), v) >= 0 {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

// ValuesMatching yields every stored element e with cmpProbe(e, v) == 0, in
// ascending order, stopping at the first non-match.
func (d *directory[T]) ValuesMatching(v T, cmpProbe block.Comparator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if len(d.blocks) == 0 {
			return
		}

		bi := d.firstBlockAtLeast(v, cmpProbe)
		for bi < len(d.blocks) {
			b := d.blocks[bi]
			i := firstIndexAtLeast(b, v, cmpProbe)

			for ; i < b.Len(); i++ {
				e := b.At(i)
				if cmpProbe(e, v) != 0 {
					return
				}
				if !yield(e) {
					return
				}
			}
			bi++
		}
	}
}

// ValuesBetween yields every stored element e with cmpProbe(e, lo) >= 0 and
// cmpProbe(e, hi) <= 0, in ascending order. If hi orders before lo under
// cmpProbe, the result is the empty sequence.
func (d *directory[T]) ValuesBetween(lo, hi T, cmpProbe block.Comparator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if len(d.blocks) == 0 || cmpProbe(hi, lo) < 0 {
			return
		}

		bi := d.firstBlockAtLeast(lo, cmpProbe)
		for bi < len(d.blocks) {
			b := d.blocks[bi]
			i := firstIndexAtLeast(b, lo, cmpProbe)

			for ; i < b.Len(); i++ {
				e := b.At(i)
				if cmpProbe(e, hi) > 0 {
					return
				}
				if !yield(e) {
					return
				}
			}
			bi++
		}
	}
}
