package shader

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"

	"candlechart/internal/utils"
)

// Program is a linked GL program. Compilation happens once at scene-build
// time; a failure here is fatal to startup.
type Program struct {
	ID uint32
}

func stageName(stage uint32) string {
	switch stage {
	case gl.VERTEX_SHADER:
		return "vertex"
	case gl.FRAGMENT_SHADER:
		return "fragment"
	case gl.GEOMETRY_SHADER:
		return "geometry"
	}
	return "unknown"
}

func compileStage(source string, stage uint32) (uint32, error) {
	handle := gl.CreateShader(stage)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(handle, 1, csources, nil)
	free()
	gl.CompileShader(handle)

	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength)+1)
		gl.GetShaderInfoLog(handle, logLength, nil, gl.Str(infoLog))
		gl.DeleteShader(handle)
		return 0, fmt.Errorf("compile %s shader: %s", stageName(stage), strings.TrimRight(infoLog, "\x00"))
	}
	return handle, nil
}

// NewProgram compiles and links vertex + fragment sources, with an optional
// geometry stage when geometrySrc is non-empty.
func NewProgram(name, vertexSrc, fragmentSrc, geometrySrc string) (*Program, error) {
	vert, err := compileStage(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return nil, fmt.Errorf("program %s: %w", name, err)
	}
	defer gl.DeleteShader(vert)

	frag, err := compileStage(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return nil, fmt.Errorf("program %s: %w", name, err)
	}
	defer gl.DeleteShader(frag)

	var geom uint32
	if geometrySrc != "" {
		geom, err = compileStage(geometrySrc, gl.GEOMETRY_SHADER)
		if err != nil {
			return nil, fmt.Errorf("program %s: %w", name, err)
		}
		defer gl.DeleteShader(geom)
	}

	id := gl.CreateProgram()
	gl.AttachShader(id, vert)
	gl.AttachShader(id, frag)
	if geom != 0 {
		gl.AttachShader(id, geom)
	}
	gl.LinkProgram(id)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength)+1)
		gl.GetProgramInfoLog(id, logLength, nil, gl.Str(infoLog))
		gl.DeleteProgram(id)
		return nil, fmt.Errorf("program %s: link: %s", name, strings.TrimRight(infoLog, "\x00"))
	}

	utils.Debug("Shader: %s - Linked successfully (ID: %d)", name, id)
	return &Program{ID: id}, nil
}

func (p *Program) Use() {
	gl.UseProgram(p.ID)
}

func (p *Program) Delete() {
	gl.DeleteProgram(p.ID)
}
