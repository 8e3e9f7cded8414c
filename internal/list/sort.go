package list

// Sort orders the ring ascending according to cmp using a stable top-down
// merge sort. The sentinel is detached for the duration of the sort and the
// ring treated as a nil-terminated singly-forward chain; a single pass
// afterwards restores the prev links and closes the ring again. Sorting
// rearranges the existing nodes only, so no allocation happens and detached
// node handles stay valid.
//
// cmp must be a total order. Elements that compare equal keep their relative
// input order because the merge always drains the left chain on ties.
func (l *List[T]) Sort(cmp func(a, b T) int) {
	if l.Empty() || l.root.next.next == &l.root {
		return
	}

	l.root.prev.next = nil
	l.root.next = mergeSort(l.root.next, cmp)

	tail := &l.root
	for ; tail.next != nil; tail = tail.next {
		tail.next.prev = tail
	}
	tail.next = &l.root
	l.root.prev = tail
}

func mergeSort[T any](head *Node[T], cmp func(a, b T) int) *Node[T] {
	if head.next == nil {
		return head
	}

	slow, fast := head, head.next
	for fast != nil && fast.next != nil {
		fast = fast.next.next
		slow = slow.next
	}
	mid := slow.next
	slow.next = nil

	return merge(mergeSort(head, cmp), mergeSort(mid, cmp), cmp)
}

func merge[T any](left, right *Node[T], cmp func(a, b T) int) *Node[T] {
	var head *Node[T]
	tail := &head
	for left != nil && right != nil {
		if cmp(left.Value, right.Value) <= 0 {
			*tail = left
			left = left.next
		} else {
			*tail = right
			right = right.next
		}
		tail = &(*tail).next
	}
	if left != nil {
		*tail = left
	} else {
		*tail = right
	}
	return head
}
