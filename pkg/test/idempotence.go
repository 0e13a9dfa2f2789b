package test

import (
	"testing"
)

// AssertIdempotent runs fn twice and fails if only the second run fails,
// which means fn depends on state left behind by the first run.
func AssertIdempotent(t *testing.T, fn func(*testing.T)) {
	t.Helper()
	for run := 0; run < 2; run++ {
		fn(t)
		if !t.Failed() {
			continue
		}
		if run > 0 {
			t.Fatal("the function is not idempotent")
		}
		return
	}
}

// AssertIdempotentSubtest wraps fn for use with t.Run.
func AssertIdempotentSubtest(_ *testing.T, fn func(*testing.T)) func(*testing.T) {
	return func(t *testing.T) {
		t.Helper()
		AssertIdempotent(t, fn)
	}
}
