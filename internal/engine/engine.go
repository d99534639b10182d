package engine

import (
	"fmt"
	"time"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"candlechart/internal/assets"
	"candlechart/internal/config"
	"candlechart/internal/utils"
)

const (
	tickRate    = 60
	frameBudget = time.Second / tickRate
)

// Engine owns the viewport, the pan model, the animation queue, the time
// source and the scene, and drives the fixed 60 Hz tick. One OS thread
// runs everything: input dispatch, update and render never interleave.
type Engine struct {
	ctx      *GraphicsContext
	viewport Viewport
	pan      *PanModel
	queue    *AnimationQueue
	scene    *Scene

	clearColor   mgl32.Vec3
	animStep     float32
	animDuration time.Duration

	startTime time.Time
	now       time.Time
	elapsed   float64
	cursor    mgl32.Vec2
	running   bool
}

// New builds the scene from config, compiles every drawable's programs
// and wires the input callbacks. Any shader or asset failure aborts.
func New(cfg *config.Config, library *assets.Library, ctx *GraphicsContext) (*Engine, error) {
	viewport := Viewport{Width: cfg.Window.Width, Height: cfg.Window.Height}

	bullColor, err := utils.HexToRGB(cfg.Chart.BullColor)
	if err != nil {
		return nil, fmt.Errorf("bull color: %w", err)
	}
	bearColor, err := utils.HexToRGB(cfg.Chart.BearColor)
	if err != nil {
		return nil, fmt.Errorf("bear color: %w", err)
	}
	tint, err := utils.HexToRGB(cfg.Background.Tint)
	if err != nil {
		return nil, fmt.Errorf("background tint: %w", err)
	}

	drawables := make([]Drawable, 0, len(cfg.Candles)+1)
	for _, c := range cfg.Candles {
		color := bearColor
		if c.Bullish {
			color = bullColor
		}
		drawables = append(drawables, NewCandle(
			mgl32.Vec2{c.Position[0], c.Position[1]},
			mgl32.Vec2{c.Scale[0], c.Scale[1]},
			c.Bullish, color, cfg.Chart.LineWidth, library,
		))
	}
	drawables = append(drawables, NewBackground(
		tint,
		cfg.Background.VignetteBase,
		cfg.Background.VignetteAmplitude,
		cfg.Background.VignetteFrequency,
		library,
	))

	e := &Engine{
		ctx:          ctx,
		viewport:     viewport,
		pan:          NewPanModel(cfg.Chart.PanSpeed, viewport),
		queue:        &AnimationQueue{},
		scene:        NewScene(drawables...),
		clearColor:   tint,
		animStep:     cfg.Animation.Step,
		animDuration: time.Duration(cfg.Animation.Duration),
	}

	if err := e.scene.Create(); err != nil {
		return nil, fmt.Errorf("build scene: %w", err)
	}
	utils.Info("Engine: scene ready (%d drawables)", e.scene.Len())

	e.installCallbacks()
	e.startTime = time.Now()
	e.now = e.startTime
	return e, nil
}

func (e *Engine) installCallbacks() {
	window := e.ctx.Window()

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Press && action != glfw.Repeat {
			return
		}
		switch key {
		case glfw.KeyEscape:
			e.running = false
		case glfw.KeyLeft:
			e.enqueuePan(mgl32.Vec2{-e.animStep, 0})
		case glfw.KeyRight:
			e.enqueuePan(mgl32.Vec2{e.animStep, 0})
		case glfw.KeyUp:
			e.enqueuePan(mgl32.Vec2{0, e.animStep})
		case glfw.KeyDown:
			e.enqueuePan(mgl32.Vec2{0, -e.animStep})
		}
	})

	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		if button != glfw.MouseButtonRight {
			return
		}
		switch action {
		case glfw.Press:
			e.pan.BeginDrag(e.cursor)
		case glfw.Release:
			e.pan.EndDrag(e.cursor)
		}
	})

	window.SetCursorPosCallback(func(w *glfw.Window, x, y float64) {
		e.cursor = mgl32.Vec2{float32(x), float32(y)}
		e.pan.DragTick(e.cursor)
	})
}

func (e *Engine) enqueuePan(step mgl32.Vec2) {
	e.queue.Enqueue(Command{PanBy: step}, e.now, e.animDuration)
	utils.Debug("Engine: pan animation %v for %v (%d queued)", step, e.animDuration, e.queue.Len())
}

// frame snapshots the shared uniform values for this tick. The cursor is
// normalized to [0,1]² with the origin bottom-left to match GL.
func (e *Engine) frame() Frame {
	size := e.viewport.Size()
	return Frame{
		Time: e.elapsed,
		Cursor: mgl32.Vec2{
			e.cursor.X() / size.X(),
			1 - e.cursor.Y()/size.Y(),
		},
		Offset:   e.pan.Offset(),
		Viewport: e.viewport,
	}
}

func (e *Engine) update() {
	e.queue.Tick(e.now, e.pan)
	e.scene.Update(e.frame())
}

func (e *Engine) render() {
	gl.ClearColor(e.clearColor.X(), e.clearColor.Y(), e.clearColor.Z(), 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	e.scene.Render()
	e.ctx.SwapBuffers()
}

// Tick runs one frame in fixed order: dispatch pending input, update,
// render, pace to the frame budget, then advance the clock. The clock is
// real elapsed monotonic time, not tick count times the nominal interval,
// so shader animations stay synced to wall time even under load.
func (e *Engine) Tick() {
	tickStart := time.Now()

	glfw.PollEvents()
	if e.ctx.Window().ShouldClose() {
		e.running = false
	}

	e.update()
	e.render()

	if spent := time.Since(tickStart); spent < frameBudget {
		time.Sleep(frameBudget - spent)
	}

	e.now = time.Now()
	e.elapsed = e.now.Sub(e.startTime).Seconds()
}

// Run loops Tick until a quit event or escape clears the running flag.
func (e *Engine) Run() {
	e.running = true
	utils.Info("Engine: entering main loop")
	for e.running {
		e.Tick()
	}
	utils.Info("Engine: main loop ended after %.1fs", e.elapsed)
}

// Destroy releases scene GPU resources. The graphics context is closed by
// its owner.
func (e *Engine) Destroy() {
	e.scene.Destroy()
}
