package squeeze

import "sync"

// matcherPool recycles Matcher instances across non-overlapping blocks,
// grounded on the teacher's sliding_window_pool.go. Each call that takes a
// pooled matcher owns it exclusively until it returns it — no state is
// shared across concurrent callers (spec.md §5).
var matcherPool = sync.Pool{
	New: func() any {
		return NewMatcher()
	},
}

// AcquireMatcher returns a matcher from the pool, reset and ready for
// Warmup on a new input.
func AcquireMatcher() *Matcher {
	m := matcherPool.Get().(*Matcher)
	m.Reset()
	return m
}

// ReleaseMatcher returns a matcher to the pool for reuse.
func ReleaseMatcher(m *Matcher) {
	if m == nil {
		return
	}
	matcherPool.Put(m)
}
