package ringqueue

import "github.com/timzifer/ring_queue/internal/list"

// DeleteMiddle unlinks and destroys the element at 0-based index n/2 of an
// n-element queue, located with a slow/fast runner walk. A single-element
// queue becomes empty. Reports false on an absent or empty queue.
func (q *Queue) DeleteMiddle() bool {
	if q == nil || q.ring == nil {
		return false
	}
	mid := q.ring.Middle()
	if mid == nil {
		return false
	}
	q.ring.Remove(mid)
	mid.Value = ""
	return true
}

// DeleteDuplicates removes every maximal run of two or more elements with
// equal payloads, keeping only payloads that were unique in the input. The
// queue must already be sorted ascending by the configured comparison; this
// precondition is not verified. Reports false only on an absent handle; an
// empty queue is trivially successful.
//
// Matched nodes are batched onto a scratch ring and destroyed in one sweep
// rather than released mid-traversal.
func (q *Queue) DeleteDuplicates() bool {
	if q == nil || q.ring == nil {
		return false
	}

	scratch := list.New[string]()
	root := q.ring.Sentinel()
	inRun := false
	for n := root.Next(); n != root; {
		next := n.Next()
		switch {
		case next != root && q.opts.Compare(n.Value, next.Value) == 0:
			inRun = true
			q.ring.Remove(n)
			scratch.PushBack(n)
		case inRun:
			// Last member of the run it opened.
			inRun = false
			q.ring.Remove(n)
			scratch.PushBack(n)
		}
		n = next
	}

	releaseAll(scratch)
	return true
}

// SwapPairs swaps each adjacent pair of elements by relinking; a trailing
// unpaired element stays in place. Silently no-ops on an absent or empty
// queue.
func (q *Queue) SwapPairs() {
	if q == nil || q.ring == nil {
		return
	}
	q.ring.SwapPairs()
}

// Reverse reverses the traversal order by exchanging every node's links.
// Silently no-ops on an absent or empty queue.
func (q *Queue) Reverse() {
	if q == nil || q.ring == nil {
		return
	}
	q.ring.Reverse()
}

// Sort orders the queue ascending by the configured comparison using a
// stable merge sort; elements with equal payloads keep their relative input
// order. Silently no-ops on an absent, empty or single-element queue.
func (q *Queue) Sort() {
	if q == nil || q.ring == nil {
		return
	}
	q.ring.Sort(q.opts.Compare)
}
