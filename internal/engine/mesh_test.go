package engine

import "testing"

func TestOutlineSegments_ClosesThePerimeter(t *testing.T) {
	quad := []float32{-1, -1, 1, -1, -1, 1, 1, 1}
	segs := outlineSegments(quad)
	if len(segs) != 16 {
		t.Fatalf("segment buffer has %d floats, want 16", len(segs))
	}

	// Each segment's end must be the next segment's start, and the last
	// must close back onto the first, so the border forms a loop.
	for i := 0; i < 4; i++ {
		endX, endY := segs[i*4+2], segs[i*4+3]
		next := (i + 1) % 4
		startX, startY := segs[next*4], segs[next*4+1]
		if endX != startX || endY != startY {
			t.Errorf("segment %d ends at (%v,%v) but segment %d starts at (%v,%v)",
				i, endX, endY, next, startX, startY)
		}
	}
}
