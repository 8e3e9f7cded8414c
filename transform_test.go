package ringqueue

import "testing"

func fill(t *testing.T, values ...string) *Queue {
	t.Helper()
	q := New()
	for _, v := range values {
		if !q.InsertTail(v) {
			t.Fatalf("failed to insert %q", v)
		}
	}
	return q
}

func TestDeleteMiddleSixElements(t *testing.T) {
	q := fill(t, "A", "B", "C", "D", "E", "F")
	defer q.Free()

	if !q.DeleteMiddle() {
		t.Fatalf("expected delete-middle to succeed")
	}
	// Index 6/2 = 3, so exactly D goes.
	assertSnapshot(t, q, []string{"A", "B", "C", "E", "F"})
}

func TestDeleteMiddleOddLength(t *testing.T) {
	q := fill(t, "A", "B", "C", "D", "E")
	defer q.Free()

	if !q.DeleteMiddle() {
		t.Fatalf("expected delete-middle to succeed")
	}
	assertSnapshot(t, q, []string{"A", "B", "D", "E"})
}

func TestDeleteMiddleSingleElement(t *testing.T) {
	q := fill(t, "only")
	defer q.Free()

	if !q.DeleteMiddle() {
		t.Fatalf("expected delete-middle to succeed")
	}
	assertSnapshot(t, q, nil)
}

func TestDeleteMiddleEmptyFails(t *testing.T) {
	q := New()
	defer q.Free()

	if q.DeleteMiddle() {
		t.Fatalf("expected delete-middle on empty queue to fail")
	}
}

func TestDeleteDuplicatesRemovesWholeRuns(t *testing.T) {
	q := fill(t, "a", "a", "b", "c", "c", "c")
	defer q.Free()

	if !q.DeleteDuplicates() {
		t.Fatalf("expected delete-duplicates to succeed")
	}
	assertSnapshot(t, q, []string{"b"})
}

func TestDeleteDuplicatesAllEqual(t *testing.T) {
	q := fill(t, "x", "x", "x")
	defer q.Free()

	if !q.DeleteDuplicates() {
		t.Fatalf("expected delete-duplicates to succeed")
	}
	assertSnapshot(t, q, nil)
}

func TestDeleteDuplicatesDistinctInput(t *testing.T) {
	q := fill(t, "a", "b", "c")
	defer q.Free()

	if !q.DeleteDuplicates() {
		t.Fatalf("expected delete-duplicates to succeed")
	}
	assertSnapshot(t, q, []string{"a", "b", "c"})
}

func TestDeleteDuplicatesEmptyIsTriviallySuccessful(t *testing.T) {
	q := New()
	defer q.Free()

	if !q.DeleteDuplicates() {
		t.Fatalf("expected delete-duplicates on empty queue to succeed")
	}
}

func TestDeleteDuplicatesUsesConfiguredCompare(t *testing.T) {
	// Compare by first byte only, so "b1" and "b2" count as duplicates.
	q := NewWithOptions(Options{Compare: func(a, b string) int {
		return int(a[0]) - int(b[0])
	}})
	defer q.Free()

	for _, v := range []string{"a1", "b1", "b2", "c1"} {
		q.InsertTail(v)
	}
	if !q.DeleteDuplicates() {
		t.Fatalf("expected delete-duplicates to succeed")
	}
	assertSnapshot(t, q, []string{"a1", "c1"})
}

func TestSwapPairsOddLength(t *testing.T) {
	q := fill(t, "1", "2", "3", "4", "5")
	defer q.Free()

	q.SwapPairs()
	assertSnapshot(t, q, []string{"2", "1", "4", "3", "5"})
}

func TestSwapPairsEvenLength(t *testing.T) {
	q := fill(t, "1", "2", "3", "4")
	defer q.Free()

	q.SwapPairs()
	assertSnapshot(t, q, []string{"2", "1", "4", "3"})
}

func TestReverseIsInvolution(t *testing.T) {
	q := fill(t, "a", "b", "c", "d")
	defer q.Free()

	q.Reverse()
	assertSnapshot(t, q, []string{"d", "c", "b", "a"})

	q.Reverse()
	assertSnapshot(t, q, []string{"a", "b", "c", "d"})
}

func TestReverseKeepsDequeBehaviour(t *testing.T) {
	q := fill(t, "a", "b", "c")
	defer q.Free()

	q.Reverse()
	e := q.RemoveHead(nil)
	if e.Value() != "c" {
		t.Fatalf("expected head c after reverse, got %q", e.Value())
	}
	e.Release()

	e = q.RemoveTail(nil)
	if e.Value() != "a" {
		t.Fatalf("expected tail a after reverse, got %q", e.Value())
	}
	e.Release()
}

func TestSortAscending(t *testing.T) {
	q := fill(t, "pear", "apple", "orange", "banana")
	defer q.Free()

	q.Sort()
	assertSnapshot(t, q, []string{"apple", "banana", "orange", "pear"})
}

func TestSortStability(t *testing.T) {
	q := fill(t, "banana", "apple", "banana")
	defer q.Free()

	q.Sort()
	assertSnapshot(t, q, []string{"apple", "banana", "banana"})
}

func TestSortStabilityObservable(t *testing.T) {
	// Compare by first byte only, so origin order among equal keys is
	// observable through the distinct suffixes.
	q := NewWithOptions(Options{Compare: func(a, b string) int {
		return int(a[0]) - int(b[0])
	}})
	defer q.Free()

	for _, v := range []string{"b1", "a1", "b2", "a2", "b3"} {
		q.InsertTail(v)
	}
	q.Sort()
	assertSnapshot(t, q, []string{"a1", "a2", "b1", "b2", "b3"})
}

func TestSortIdempotent(t *testing.T) {
	q := fill(t, "a", "b", "c")
	defer q.Free()

	q.Sort()
	assertSnapshot(t, q, []string{"a", "b", "c"})
}

func TestSortSingleElement(t *testing.T) {
	q := fill(t, "solo")
	defer q.Free()

	q.Sort()
	assertSnapshot(t, q, []string{"solo"})
}

func TestSortThenDeleteDuplicates(t *testing.T) {
	q := fill(t, "c", "a", "b", "a", "c", "c")
	defer q.Free()

	q.Sort()
	assertSnapshot(t, q, []string{"a", "a", "b", "c", "c", "c"})

	if !q.DeleteDuplicates() {
		t.Fatalf("expected delete-duplicates to succeed")
	}
	assertSnapshot(t, q, []string{"b"})
}
