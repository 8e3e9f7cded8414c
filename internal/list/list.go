package list

// Node is a single position in a ring, carrying a value of type T. The zero
// value is an unlinked node.
type Node[T any] struct {
	next *Node[T]
	prev *Node[T]

	// Value is the payload carried by the node. The sentinel's Value is
	// never read.
	Value T
}

// Next returns the node following n in the ring.
func (n *Node[T]) Next() *Node[T] { return n.next }

// Prev returns the node preceding n in the ring.
func (n *Node[T]) Prev() *Node[T] { return n.prev }

// List anchors a ring on a sentinel node. Reaching the sentinel during a
// traversal means every element has been visited exactly once.
type List[T any] struct {
	root Node[T]
}

// New returns an initialised empty list.
func New[T any]() *List[T] {
	l := &List[T]{}
	l.Init()
	return l
}

// Init establishes the empty-ring invariant: the sentinel points at itself
// in both directions. Any nodes previously linked are abandoned.
func (l *List[T]) Init() {
	l.root.next = &l.root
	l.root.prev = &l.root
}

func (l *List[T]) lazyInit() {
	if l.root.next == nil {
		l.Init()
	}
}

// Sentinel returns the ring's anchor node.
func (l *List[T]) Sentinel() *Node[T] {
	l.lazyInit()
	return &l.root
}

// Empty reports whether the ring holds no elements.
func (l *List[T]) Empty() bool {
	return l.root.next == nil || l.root.next == &l.root
}

// Len counts the elements in the ring. It walks the full ring on every call;
// the list deliberately carries no cached counter that could drift.
func (l *List[T]) Len() int {
	if l.Empty() {
		return 0
	}
	count := 0
	for n := l.root.next; n != &l.root; n = n.next {
		count++
	}
	return count
}

// Front returns the first element, or nil if the ring is empty.
func (l *List[T]) Front() *Node[T] {
	if l.Empty() {
		return nil
	}
	return l.root.next
}

// Back returns the last element, or nil if the ring is empty.
func (l *List[T]) Back() *Node[T] {
	if l.Empty() {
		return nil
	}
	return l.root.prev
}

// insert links n between at and at.next.
func (l *List[T]) insert(n, at *Node[T]) {
	n.prev = at
	n.next = at.next
	n.prev.next = n
	n.next.prev = n
}

// PushFront links n as the new first element.
func (l *List[T]) PushFront(n *Node[T]) {
	l.lazyInit()
	l.insert(n, &l.root)
}

// PushBack links n as the new last element.
func (l *List[T]) PushBack(n *Node[T]) {
	l.lazyInit()
	l.insert(n, l.root.prev)
}

// Remove unlinks n from the ring and poisons its links. The node itself is
// not destroyed; it can be inspected or pushed onto another ring afterwards.
// n must currently be linked into this ring.
func (l *List[T]) Remove(n *Node[T]) {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.next = nil
	n.prev = nil
}

// move unlinks n and relinks it immediately after at. Both nodes must be
// linked, possibly in different rings.
func (l *List[T]) move(n, at *Node[T]) {
	n.prev.next = n.next
	n.next.prev = n.prev
	l.insert(n, at)
}
