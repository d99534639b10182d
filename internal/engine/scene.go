package engine

// Drawable is a renderable unit owning its own GPU buffers and programs.
// Create compiles and uploads once at scene-build time; Update pushes the
// current frame's uniform values and must be safe to call every tick;
// Render issues the drawable's draw calls with its fixed topology.
type Drawable interface {
	Create() error
	Update(frame Frame)
	Render()
	Destroy()
}

// Scene owns an ordered list of drawables. The order is render order
// (later entries draw on top) and is fixed at construction.
type Scene struct {
	drawables []Drawable
}

func NewScene(drawables ...Drawable) *Scene {
	return &Scene{drawables: drawables}
}

// Create builds every drawable. The first failure aborts: the engine
// cannot render a partial scene.
func (s *Scene) Create() error {
	for _, d := range s.drawables {
		if err := d.Create(); err != nil {
			return err
		}
	}
	return nil
}

func (s *Scene) Update(frame Frame) {
	for _, d := range s.drawables {
		d.Update(frame)
	}
}

func (s *Scene) Render() {
	for _, d := range s.drawables {
		d.Render()
	}
}

func (s *Scene) Destroy() {
	for _, d := range s.drawables {
		d.Destroy()
	}
}

func (s *Scene) Len() int {
	return len(s.drawables)
}
