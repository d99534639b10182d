package engine

import "github.com/go-gl/mathgl/mgl32"

// PanModel tracks the scene translation driven by right-button drags.
// Completed drags accumulate into the committed offset; an in-progress
// drag lives in the floating offset, so shaders always read a single
// additive value (committed + floating) regardless of drag state.
// At most one drag is active at a time.
type PanModel struct {
	committed mgl32.Vec2
	floating  mgl32.Vec2
	anchor    *mgl32.Vec2
	speed     float32
	viewport  Viewport
}

func NewPanModel(speed float32, viewport Viewport) *PanModel {
	return &PanModel{speed: speed, viewport: viewport}
}

func (p *PanModel) delta(cursor mgl32.Vec2) mgl32.Vec2 {
	size := p.viewport.Size()
	return mgl32.Vec2{
		p.speed * (cursor.X() - p.anchor.X()) / size.X(),
		p.speed * (cursor.Y() - p.anchor.Y()) / size.Y(),
	}
}

// BeginDrag records the drag anchor. A second press while a drag is
// already active is ignored.
func (p *PanModel) BeginDrag(cursor mgl32.Vec2) {
	if p.anchor != nil {
		return
	}
	anchor := cursor
	p.anchor = &anchor
}

// DragTick recomputes the floating offset from the live cursor position.
// Without an active drag this does nothing.
func (p *PanModel) DragTick(cursor mgl32.Vec2) {
	if p.anchor == nil {
		return
	}
	p.floating = p.delta(cursor)
}

// EndDrag folds the final drag delta into the committed offset, zeroes the
// floating offset and clears the anchor. Without an active drag this does
// nothing.
func (p *PanModel) EndDrag(cursor mgl32.Vec2) {
	if p.anchor == nil {
		return
	}
	p.committed = p.committed.Add(p.delta(cursor))
	p.floating = mgl32.Vec2{}
	p.anchor = nil
}

// Nudge shifts the committed offset directly; the animation queue applies
// its per-tick pan steps through this.
func (p *PanModel) Nudge(delta mgl32.Vec2) {
	p.committed = p.committed.Add(delta)
}

// Offset returns the full translation shaders consume.
func (p *PanModel) Offset() mgl32.Vec2 {
	return p.committed.Add(p.floating)
}

func (p *PanModel) Committed() mgl32.Vec2 { return p.committed }
func (p *PanModel) Floating() mgl32.Vec2  { return p.floating }
func (p *PanModel) Dragging() bool        { return p.anchor != nil }
