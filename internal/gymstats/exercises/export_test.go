package exercises

import (
	"testing"
	"time"
)

func SetNow(t *testing.T, fn func() time.Time) {
	t.Helper()
	prev := now
	now = fn
	t.Cleanup(func() {
		now = prev
	})
}
