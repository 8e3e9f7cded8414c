package ringqueue

import "strings"

// Options configures a queue at construction time.
type Options struct {
	// MaxLen bounds the number of elements the queue may hold; an insert
	// against a full queue reports failure. A non-positive value means the
	// queue can grow without bound.
	MaxLen int

	// Compare orders payloads for Sort and DeleteDuplicates. It must be a
	// total order returning a negative, zero or positive result. When nil,
	// byte-wise string comparison is used.
	Compare func(a, b string) int
}

func defaultOptions() Options {
	return Options{
		Compare: strings.Compare,
	}
}
