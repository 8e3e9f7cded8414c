// Package list implements the link layer of the queue: a circular
// doubly-linked ring anchored on a sentinel node that is never a data
// element. An empty ring is the sentinel pointing at itself in both
// directions.
//
// The package separates structural concerns from payload concerns. Nodes are
// positions in a ring that happen to carry a value; the ring never owns a
// node in the release sense. Unlinking a node detaches it without destroying
// it, so callers can hand detached nodes around or splice them into another
// ring.
//
// Whole-ring algorithms (middle lookup, reversal, pairwise swap, stable merge
// sort) live here as well, because they are pure pointer surgery over the
// ring and need no knowledge of what the values mean. Ordering is injected as
// a comparison function where an algorithm needs one.
//
// Nothing in this package locks. Callers that share a ring across goroutines
// must serialise access themselves.
package list
