package assets

import (
	"embed"
	"encoding/binary"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path"

	"candlechart/internal/utils"
)

//go:embed data
var embedded embed.FS

// Library resolves shader sources and mesh data, either from an on-disk
// lz4 pack or from the assets embedded in the binary.
type Library struct {
	files map[string][]byte
}

// Open loads the asset library. With a non-empty packPath the pack file is
// the source of truth; otherwise the embedded assets are used.
func Open(packPath string) (*Library, error) {
	if packPath != "" {
		f, err := os.Open(packPath)
		if err != nil {
			return nil, fmt.Errorf("open asset pack: %w", err)
		}
		defer f.Close()

		files, err := ReadPack(f)
		if err != nil {
			return nil, fmt.Errorf("read asset pack %s: %w", packPath, err)
		}
		utils.Info("Assets: loaded %d entries from pack %s", len(files), packPath)
		return &Library{files: files}, nil
	}

	files := make(map[string][]byte)
	err := fs.WalkDir(embedded, "data", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := embedded.ReadFile(p)
		if err != nil {
			return err
		}
		files[trimDataPrefix(p)] = data
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read embedded assets: %w", err)
	}
	utils.Debug("Assets: using %d embedded entries", len(files))
	return &Library{files: files}, nil
}

func trimDataPrefix(p string) string {
	rel := path.Clean(p)
	if rel == "data" {
		return ""
	}
	return rel[len("data/"):]
}

// ShaderSource returns the GLSL text for a shader file, e.g. "candle.vert".
func (l *Library) ShaderSource(name string) (string, error) {
	data, ok := l.files[path.Join("shaders", name)]
	if !ok {
		return "", fmt.Errorf("shader source %s not found", name)
	}
	return string(data), nil
}

// QuadMesh decodes the shared unit-quad mesh: four vertices of two
// little-endian float32 coordinates each, in triangle-strip order.
func (l *Library) QuadMesh() ([]float32, error) {
	data, ok := l.files["mesh/quad.bin"]
	if !ok {
		return nil, fmt.Errorf("quad mesh not found")
	}
	if len(data) != 4*2*4 {
		return nil, fmt.Errorf("quad mesh has unexpected size %d", len(data))
	}
	verts := make([]float32, len(data)/4)
	for i := range verts {
		bits := binary.LittleEndian.Uint32(data[i*4:])
		verts[i] = math.Float32frombits(bits)
	}
	return verts, nil
}
