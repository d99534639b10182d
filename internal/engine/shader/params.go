package shader

import (
	"github.com/go-gl/gl/v3.3-core/gl"

	"candlechart/internal/utils"
)

// Params caches the uniform locations a drawable pushes every tick.
// A location of -1 means the linked program does not use that uniform;
// uploads through it are silent no-ops.
type Params struct {
	Time      int32
	Cursor    int32
	Offset    int32
	Aspect    int32
	Position  int32
	Scale     int32
	Color     int32
	LineWidth int32
	Tint      int32
	Base      int32
	Amplitude int32
	Frequency int32
}

func (p *Program) location(programName, uniform string) int32 {
	loc := gl.GetUniformLocation(p.ID, gl.Str(uniform+"\x00"))
	if loc == -1 {
		utils.Debug("Shader: %s - uniform %s not present (uploads become no-ops)", programName, uniform)
	}
	return loc
}

// Resolve queries a linked program for all uniform locations used by the
// engine's update pass.
func Resolve(p *Program, name string) Params {
	return Params{
		Time:      p.location(name, "u_time"),
		Cursor:    p.location(name, "u_cursor"),
		Offset:    p.location(name, "u_offset"),
		Aspect:    p.location(name, "u_aspect_ratio"),
		Position:  p.location(name, "u_position"),
		Scale:     p.location(name, "u_scale"),
		Color:     p.location(name, "u_color"),
		LineWidth: p.location(name, "u_line_width"),
		Tint:      p.location(name, "u_tint"),
		Base:      p.location(name, "u_base"),
		Amplitude: p.location(name, "u_amplitude"),
		Frequency: p.location(name, "u_frequency"),
	}
}
