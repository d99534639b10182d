package engine

import "testing"

type recordingDrawable struct {
	id      int
	log     *[]int
	updates int
}

func (r *recordingDrawable) Create() error { return nil }
func (r *recordingDrawable) Update(Frame)  { r.updates++ }
func (r *recordingDrawable) Render()       { *r.log = append(*r.log, r.id) }
func (r *recordingDrawable) Destroy()      {}

func TestScene_RenderOrderIsStable(t *testing.T) {
	var log []int
	s := NewScene(
		&recordingDrawable{id: 0, log: &log},
		&recordingDrawable{id: 1, log: &log},
		&recordingDrawable{id: 2, log: &log},
	)

	for cycle := 0; cycle < 3; cycle++ {
		log = log[:0]
		s.Update(Frame{})
		s.Render()
		for i, id := range log {
			if id != i {
				t.Fatalf("cycle %d: render order %v, want ascending ids", cycle, log)
			}
		}
	}
}

func TestScene_UpdateFansOutToEveryDrawable(t *testing.T) {
	var log []int
	a := &recordingDrawable{id: 0, log: &log}
	b := &recordingDrawable{id: 1, log: &log}
	s := NewScene(a, b)

	s.Update(Frame{})
	s.Update(Frame{})
	if a.updates != 2 || b.updates != 2 {
		t.Errorf("updates = (%d, %d), want (2, 2)", a.updates, b.updates)
	}
}
