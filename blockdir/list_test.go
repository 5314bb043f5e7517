package blockdir

import (
	"math/rand"
	"testing"
)

func TestListBasicLifecycle(t *testing.T) {
	l, err := NewList[int](intCmp, 0, 8)
	if err != nil {
		t.Fatal(err)
	}

	if !l.TryAdd(5) {
		t.Fatalf("expected insert to succeed")
	}
	if l.TryAdd(5) {
		t.Fatalf("expected duplicate insert to fail")
	}
	if !l.Contains(5) {
		t.Fatalf("expected 5 to be present")
	}
	if v, ok := l.TryGetValue(5); !ok || v != 5 {
		t.Fatalf("unexpected TryGetValue result: %v %v", v, ok)
	}
	if !l.Remove(5) {
		t.Fatalf("expected remove to succeed")
	}
	if l.Contains(5) {
		t.Fatalf("expected 5 to be gone after remove")
	}
	if l.Count() != 0 {
		t.Fatalf("expected count 0, got %d", l.Count())
	}
}

func TestListRejectsInvalidConfig(t *testing.T) {
	if _, err := NewList[int](nil, 0, 8); err == nil {
		t.Fatalf("expected error for nil comparator")
	}
	if _, err := NewList[int](intCmp, 0, -1); err == nil {
		t.Fatalf("expected error for negative block capacity")
	}
}

func TestListSmallBlockBoundarySplits(t *testing.T) {
	l, err := NewList[string](ordinalStringCmp, 0, 7)
	if err != nil {
		t.Fatal(err)
	}

	sorted := []string{
		"alfa", "bravo", "charlie", "delta", "echo", "foxtrot", "golf",
		"hotel", "india", "juliet", "kilo", "lima", "mike", "november",
		"oscar", "papa", "quebec", "romeo", "sierra",
	}
	if len(sorted) != 19 {
		t.Fatalf("test fixture error: want 19 strings, have %d", len(sorted))
	}

	r := rand.New(rand.NewSource(42))
	shuffled := append([]string(nil), sorted...)
	r.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	for _, s := range shuffled {
		if !l.TryAdd(s) {
			t.Fatalf("expected insert of %q to succeed", s)
		}
	}

	var got []string
	for v := range l.Enumerate() {
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

	if l.BlockCount() < 3 {
		t.Fatalf("expected at least 3 blocks at capacity 7 for 19 elements, got %d", l.BlockCount())
	}
}

func TestListValuesBetweenBy(t *testing.T) {
	l, err := NewList[int](intCmp, 0, 8)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 100; i++ {
		l.TryAdd(i)
	}

	var got []int
	for v := range l.ValuesBetweenBy(10, 77, intCmp) {
		got = append(got, v)
	}
	if len(got) != 68 {
		t.Fatalf("expected 68 values in [10,77], got %d", len(got))
	}
	if got[0] != 10 || got[len(got)-1] != 77 {
		t.Fatalf("unexpected bounds: first=%d last=%d", got[0], got[len(got)-1])
	}
}

func TestListTrimHasNoObservableEffect(t *testing.T) {
	l, err := NewList[int](intCmp, 1000, 8)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 50; i++ {
		l.TryAdd(i)
	}

	l.Trim()

	if l.Count() != 50 {
		t.Fatalf("expected count 50 after trim, got %d", l.Count())
	}
	for i := 0; i < 50; i++ {
		if !l.Contains(i) {
			t.Fatalf("expected %d to survive trim", i)
		}
	}
}
