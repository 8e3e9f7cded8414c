package list

// Middle returns the element at 0-based index n/2 of an n-element ring, found
// with a slow/fast runner walk: both runners start at the first element, fast
// advances two links per step and slow one; the walk stops when fast or its
// successor reaches the sentinel. Returns nil on an empty ring.
func (l *List[T]) Middle() *Node[T] {
	if l.Empty() {
		return nil
	}
	slow, fast := l.root.next, l.root.next
	for fast != &l.root && fast.next != &l.root {
		fast = fast.next.next
		slow = slow.next
	}
	return slow
}

// Reverse exchanges next and prev on every node and finally on the sentinel,
// so traversal order is exactly reversed. No nodes are allocated, released or
// copied.
func (l *List[T]) Reverse() {
	if l.Empty() {
		return
	}
	// After the swap a node's prev field holds its old successor, so
	// stepping via prev keeps walking forward through the original order.
	for n := l.root.next; n != &l.root; n = n.prev {
		n.next, n.prev = n.prev, n.next
	}
	l.root.next, l.root.prev = l.root.prev, l.root.next
}

// SwapPairs relinks each adjacent pair of elements, positions (0,1), (2,3)
// and so on. A trailing unpaired element stays in place. Purely structural:
// values are never touched.
func (l *List[T]) SwapPairs() {
	if l.Empty() {
		return
	}
	for n := l.root.next; n != &l.root && n.next != &l.root; n = n.next {
		// Moving n behind its successor swaps the pair; n's new
		// successor is then the first element of the next pair.
		l.move(n, n.next)
	}
}
