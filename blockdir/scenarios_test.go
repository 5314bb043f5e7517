package blockdir

import (
	"math/rand"
	"testing"
)

// TestScenarioRandomIntegers mirrors S1: integer comparator, a deterministic
// PRNG seeded at 42, and a values-between check over the resulting set.
func TestScenarioRandomIntegers(t *testing.T) {
	n := 1_000_000
	if testing.Short() {
		n = 50_000
	}

	l, err := NewList[int](intCmp, 0, 1000)
	if err != nil {
		t.Fatal(err)
	}

	r := rand.New(rand.NewSource(42))
	seen := map[int]bool{}
	for i := 0; i < n; i++ {
		v := r.Intn(n / 10)
		seen[v] = true
		l.TryAdd(v)
	}

	if l.Count() != len(seen) {
		t.Fatalf("count mismatch: got %d want %d distinct values", l.Count(), len(seen))
	}

	var want []int
	for v := range seen {
		want = append(want, v)
	}
	sortInts(want)

	var got []int
	for v := range l.Enumerate() {
		got = append(got, v)
	}
	if len(got) != len(want) {
		t.Fatalf("enumeration length mismatch: got %d want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("enumeration mismatch at %d: got %d want %d", i, got[i], want[i])
		}
	}

	var rangeWant []int
	for _, v := range want {
		if v >= 10 && v <= 77 {
			rangeWant = append(rangeWant, v)
		}
	}
	var rangeGot []int
	for v := range l.ValuesBetween(10, 77) {
		rangeGot = append(rangeGot, v)
	}
	if len(rangeGot) != len(rangeWant) {
		t.Fatalf("values_between(10,77) length mismatch: got %d want %d", len(rangeGot), len(rangeWant))
	}
	for i := range rangeWant {
		if rangeGot[i] != rangeWant[i] {
			t.Fatalf("values_between(10,77) mismatch at %d: got %d want %d", i, rangeGot[i], rangeWant[i])
		}
	}
}

func sortInts(a []int) {
	for i := 1; i < len(a); i++ {
		for j := i; j > 0 && a[j-1] > a[j]; j-- {
			a[j-1], a[j] = a[j], a[j-1]
		}
	}
}

// TestScenarioSmallBlockBoundarySplits mirrors S3: block capacity 7, 19
// distinct strings inserted in arbitrary order.
func TestScenarioSmallBlockBoundarySplits(t *testing.T) {
	sorted := []string{
		"apple", "banana", "cherry", "date", "elderberry", "fig", "grape",
		"honeydew", "kiwi", "lemon", "mango", "nectarine", "orange",
		"papaya", "quince", "raspberry", "strawberry", "tangerine", "ugli",
	}
	if len(sorted) != 19 {
		t.Fatalf("fixture error: want 19, have %d", len(sorted))
	}

	s, err := NewSet[string](ordinalStringCmp, 7)
	if err != nil {
		t.Fatal(err)
	}

	order := []int{12, 3, 17, 0, 9, 5, 14, 1, 18, 7, 2, 11, 16, 4, 8, 13, 6, 10, 15}
	for _, i := range order {
		if !s.TryAdd(sorted[i]) {
			t.Fatalf("expected insert of %q to succeed", sorted[i])
		}
	}

	var got []string
	for v := range s.Enumerate() {
		got = append(got, v)
	}
	if len(got) != len(sorted) {
		t.Fatalf("expected %d elements, got %d", len(sorted), len(got))
	}
	for i, want := range sorted {
		if got[i] != want {
			t.Fatalf("at %d: got %q want %q", i, got[i], want)
		}
	}

	if s.BlockCount() < 3 {
		t.Fatalf("expected >= 3 blocks, got %d", s.BlockCount())
	}
}

// TestScenarioMonotoneInsertAscending mirrors S5.
func TestScenarioMonotoneInsertAscending(t *testing.T) {
	n := 10_000_000
	blockCap := 10_000
	if testing.Short() {
		n = 200_000
		blockCap = 1_000
	}

	l, err := NewList[int](intCmp, 0, blockCap)
	if err != nil {
		t.Fatal(err)
	}

	for i := 1; i <= n; i++ {
		if !l.TryAdd(i) {
			t.Fatalf("unexpected duplicate at %d", i)
		}
	}

	if l.Count() != n {
		t.Fatalf("expected count %d, got %d", n, l.Count())
	}

	expect := 1
	for v := range l.Enumerate() {
		if v != expect {
			t.Fatalf("expected %d, got %d", expect, v)
		}
		expect++
	}
}

// TestScenarioMonotoneInsertDescending mirrors S6.
func TestScenarioMonotoneInsertDescending(t *testing.T) {
	n := 1_000_000
	blockCap := 1_000
	if testing.Short() {
		n = 200_000
		blockCap = 500
	}

	l, err := NewList[int](intCmp, 0, blockCap)
	if err != nil {
		t.Fatal(err)
	}

	for i := n; i >= 1; i-- {
		if !l.TryAdd(i) {
			t.Fatalf("unexpected duplicate at %d", i)
		}
	}

	if l.Count() != n {
		t.Fatalf("expected count %d, got %d", n, l.Count())
	}

	expect := 1
	for v := range l.Enumerate() {
		if v != expect {
			t.Fatalf("expected %d, got %d", expect, v)
		}
		expect++
	}
}
