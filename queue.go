// Package ringqueue implements a double-ended string queue backed by a
// circular doubly-linked ring with a sentinel node. Removal detaches elements
// instead of destroying them: for every element exactly one of
// linked-in-ring, detached-and-caller-owned or released holds, and only
// insertion, removal and release transition between those states.
//
// The queue performs no internal locking. Callers sharing a queue across
// goroutines must serialise access themselves.
package ringqueue

import (
	"strings"

	"github.com/timzifer/ring_queue/internal/list"
)

// Element is a queue entry that has been detached from the ring. It
// exclusively owns its payload until Release is called.
type Element struct {
	node *list.Node[string]
}

// Value returns the element's payload.
func (e *Element) Value() string {
	return e.node.Value
}

// CopyValue copies up to len(buf)-1 payload bytes into buf and writes a 0
// byte after them, truncating when the payload does not fit. Callers
// supplying a buffer must size it to at least one byte. It returns the number
// of payload bytes copied.
func (e *Element) CopyValue(buf []byte) int {
	n := copy(buf[:len(buf)-1], e.node.Value)
	buf[n] = 0
	return n
}

// Release destroys a detached element: the payload is dropped and the handle
// poisoned so later use fails fast. Releasing an element that is still linked
// into a ring is undefined. Safe on a nil or already-released element.
func (e *Element) Release() {
	if e == nil || e.node == nil {
		return
	}
	e.node.Value = ""
	e.node = nil
}

// Queue is the ring reachable from a sentinel node. A nil *Queue is a valid
// absent handle: every method reports failure or no-ops instead of
// panicking. A queue that has been freed behaves like an absent handle.
type Queue struct {
	ring *list.List[string]
	opts Options
}

// New creates an empty queue with default options.
func New() *Queue {
	return NewWithOptions(defaultOptions())
}

// NewWithOptions creates an empty queue. A nil Compare falls back to
// byte-wise string comparison.
func NewWithOptions(opts Options) *Queue {
	if opts.Compare == nil {
		opts.Compare = strings.Compare
	}
	return &Queue{
		ring: list.New[string](),
		opts: opts,
	}
}

// Free tears the queue down, releasing every element still linked. It walks
// the ring exactly once and is safe on an absent handle and on an empty
// queue. The queue must not be used afterwards.
func (q *Queue) Free() {
	if q == nil || q.ring == nil {
		return
	}
	releaseAll(q.ring)
	q.ring = nil
}

// releaseAll unlinks and destroys every element of a ring.
func releaseAll(ring *list.List[string]) {
	root := ring.Sentinel()
	for n := root.Next(); n != root; {
		next := n.Next()
		ring.Remove(n)
		n.Value = ""
		n = next
	}
}

// InsertHead links a copy of s as the new first element. It reports false on
// an absent queue or when a configured MaxLen is reached; a failed insert
// leaves the queue untouched and retains nothing.
func (q *Queue) InsertHead(s string) bool {
	return q.insert(s, true)
}

// InsertTail links a copy of s as the new last element. Failure behaviour
// matches InsertHead.
func (q *Queue) InsertTail(s string) bool {
	return q.insert(s, false)
}

func (q *Queue) insert(s string, front bool) bool {
	if q == nil || q.ring == nil {
		return false
	}
	if q.opts.MaxLen > 0 && q.ring.Len() >= q.opts.MaxLen {
		return false
	}

	// Clone so the queue never retains the caller's backing array.
	n := &list.Node[string]{Value: strings.Clone(s)}
	if front {
		q.ring.PushFront(n)
	} else {
		q.ring.PushBack(n)
	}
	return true
}

// RemoveHead unlinks the first element and returns it detached. The element
// is not destroyed: the caller owns it until Release. If buf is non-nil the
// payload is copied into it with CopyValue semantics before returning.
// Returns nil on an absent or empty queue.
func (q *Queue) RemoveHead(buf []byte) *Element {
	return q.remove(true, buf)
}

// RemoveTail unlinks and returns the last element. Behaviour otherwise
// matches RemoveHead.
func (q *Queue) RemoveTail(buf []byte) *Element {
	return q.remove(false, buf)
}

func (q *Queue) remove(front bool, buf []byte) *Element {
	if q == nil || q.ring == nil {
		return nil
	}

	var n *list.Node[string]
	if front {
		n = q.ring.Front()
	} else {
		n = q.ring.Back()
	}
	if n == nil {
		return nil
	}

	q.ring.Remove(n)
	e := &Element{node: n}
	if buf != nil {
		e.CopyValue(buf)
	}
	return e
}

// Len returns the number of elements currently linked, 0 for an absent or
// empty queue. It traverses the full ring on every call; there is no cached
// counter to drift out of sync with the links.
func (q *Queue) Len() int {
	if q == nil || q.ring == nil {
		return 0
	}
	return q.ring.Len()
}

// Snapshot returns the payloads in traversal order for inspection and
// testing. Returns nil on an absent or empty queue.
func (q *Queue) Snapshot() []string {
	if q == nil || q.ring == nil || q.ring.Empty() {
		return nil
	}

	result := make([]string, 0, 8)
	root := q.ring.Sentinel()
	for n := root.Next(); n != root; n = n.Next() {
		result = append(result, n.Value)
	}
	return result
}
