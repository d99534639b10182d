package engine

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

var testViewport = Viewport{Width: 1600, Height: 900}

func vec2Near(a, b mgl32.Vec2) bool {
	const eps = 1e-6
	return math.Abs(float64(a.X()-b.X())) < eps && math.Abs(float64(a.Y()-b.Y())) < eps
}

func TestPan_FullDragSequence(t *testing.T) {
	const speed = 2.0
	p := NewPanModel(speed, testViewport)

	anchor := mgl32.Vec2{800, 450}
	p.BeginDrag(anchor)
	if !p.Dragging() {
		t.Fatal("drag not active after BeginDrag")
	}

	p.DragTick(mgl32.Vec2{900, 400})
	wantFloating := mgl32.Vec2{speed * 100 / 1600, speed * -50 / 900}
	if !vec2Near(p.Floating(), wantFloating) {
		t.Errorf("floating = %v, want %v", p.Floating(), wantFloating)
	}
	if !vec2Near(p.Committed(), mgl32.Vec2{}) {
		t.Errorf("committed mutated mid-drag: %v", p.Committed())
	}

	final := mgl32.Vec2{1000, 500}
	p.EndDrag(final)
	wantCommitted := mgl32.Vec2{speed * 200 / 1600, speed * 50 / 900}
	if !vec2Near(p.Committed(), wantCommitted) {
		t.Errorf("committed = %v, want %v", p.Committed(), wantCommitted)
	}
	if !vec2Near(p.Floating(), mgl32.Vec2{}) {
		t.Errorf("floating = %v after EndDrag, want zero", p.Floating())
	}
	if p.Dragging() {
		t.Error("drag still active after EndDrag")
	}
}

func TestPan_CommittedAccumulatesAcrossDrags(t *testing.T) {
	p := NewPanModel(1.0, testViewport)

	for i := 0; i < 3; i++ {
		p.BeginDrag(mgl32.Vec2{0, 0})
		p.EndDrag(mgl32.Vec2{160, 90})
	}
	want := mgl32.Vec2{3 * 160.0 / 1600, 3 * 90.0 / 900}
	if !vec2Near(p.Committed(), want) {
		t.Errorf("committed = %v, want %v", p.Committed(), want)
	}
}

func TestPan_DragTickWithoutDragIsNoop(t *testing.T) {
	p := NewPanModel(2.0, testViewport)
	p.DragTick(mgl32.Vec2{500, 500})
	if !vec2Near(p.Floating(), mgl32.Vec2{}) {
		t.Errorf("floating = %v, want zero without an active drag", p.Floating())
	}
}

func TestPan_EndDragWithoutDragIsNoop(t *testing.T) {
	p := NewPanModel(2.0, testViewport)
	p.EndDrag(mgl32.Vec2{500, 500})
	if !vec2Near(p.Committed(), mgl32.Vec2{}) {
		t.Errorf("committed = %v, want zero without an active drag", p.Committed())
	}
}

func TestPan_SecondBeginDragIgnored(t *testing.T) {
	p := NewPanModel(1.0, testViewport)
	p.BeginDrag(mgl32.Vec2{0, 0})
	p.BeginDrag(mgl32.Vec2{999, 999})
	p.EndDrag(mgl32.Vec2{160, 0})

	// Delta must be measured from the first anchor.
	want := mgl32.Vec2{160.0 / 1600, 0}
	if !vec2Near(p.Committed(), want) {
		t.Errorf("committed = %v, want %v (first anchor kept)", p.Committed(), want)
	}
}

func TestPan_OffsetIsCommittedPlusFloating(t *testing.T) {
	p := NewPanModel(1.0, testViewport)
	p.Nudge(mgl32.Vec2{0.5, -0.25})
	p.BeginDrag(mgl32.Vec2{0, 0})
	p.DragTick(mgl32.Vec2{160, 90})

	want := mgl32.Vec2{0.5 + 160.0/1600, -0.25 + 90.0/900}
	if !vec2Near(p.Offset(), want) {
		t.Errorf("offset = %v, want %v", p.Offset(), want)
	}
}
