package abnf

import (
	"testing"
	"time"
)

func alphaStep(cur *Cursor) bool {
	b, ok := cur.Byte()
	if !ok || !IsAlpha(b) {
		return false
	}
	*cur = cur.Advance()
	return true
}

func TestApplyRange(t *testing.T) {
	cases := []struct {
		name     string
		data     string
		r        Range
		success  bool
		distance int
	}{
		{"optional single match", "a", Range{0, 1}, true, 1},
		{"exact two matches", "ab", Range{1, 2}, true, 2},
		{"degenerate range fails immediately", "9", Range{1, 0}, false, 0},
		{"below minimum rolls back", "9", Range{1, 1}, false, 0},
		{"zero matches satisfies zero lower bound", "9", Range{0, 1}, true, 0},
		{"unbounded upper stops at non-match", "abc9", Range{0, Unbounded}, true, 3},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			src := NewSource("test", []byte(c.data))
			pos := src.Begin()
			ok := applyRange(&pos, c.r, alphaStep)
			if ok != c.success {
				t.Fatalf("applyRange success = %v, want %v", ok, c.success)
			}
			if pos.Pos() != c.distance {
				t.Fatalf("applyRange distance = %d, want %d", pos.Pos(), c.distance)
			}
		})
	}
}

func TestApplyRangeStopsOnZeroWidthMatch(t *testing.T) {
	zeroWidth := func(cur *Cursor) bool { return true }

	src := NewSource("test", []byte(""))
	pos := src.Begin()

	done := make(chan bool, 1)
	go func() {
		done <- applyRange(&pos, Range{1, Unbounded}, zeroWidth)
	}()

	select {
	case ok := <-done:
		if !ok {
			t.Fatalf("applyRange with zero-width sub-parser should succeed once and stop")
		}
	case <-time.After(time.Second):
		t.Fatalf("applyRange looped forever on a zero-width match")
	}
}
