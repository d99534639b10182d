package assets

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestPackRoundTrip(t *testing.T) {
	files := map[string][]byte{
		"shaders/candle.vert": []byte("#version 330 core\nvoid main() {}\n"),
		"shaders/candle.frag": []byte("#version 330 core\nout vec4 c; void main() { c = vec4(1.0); }\n"),
		"mesh/quad.bin":       {0x00, 0x00, 0x80, 0xbf, 0x00, 0x00, 0x80, 0x3f},
	}

	var buf bytes.Buffer
	if err := WritePack(&buf, files); err != nil {
		t.Fatalf("WritePack: %v", err)
	}

	got, err := ReadPack(&buf)
	if err != nil {
		t.Fatalf("ReadPack: %v", err)
	}
	if len(got) != len(files) {
		t.Fatalf("entry count = %d, want %d", len(got), len(files))
	}
	for name, want := range files {
		if !bytes.Equal(got[name], want) {
			t.Errorf("entry %s differs after round trip", name)
		}
	}
}

func TestReadPack_RejectsGarbage(t *testing.T) {
	if _, err := ReadPack(bytes.NewReader([]byte("not a pack at all"))); err == nil {
		t.Error("ReadPack accepted garbage input")
	}
}

func TestBuildPackAndOpen(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "shaders"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "shaders", "candle.vert"), []byte("void main() {}"), 0644); err != nil {
		t.Fatal(err)
	}

	packPath := filepath.Join(t.TempDir(), "assets.cpk")
	if err := BuildPack(dir, packPath); err != nil {
		t.Fatalf("BuildPack: %v", err)
	}

	lib, err := Open(packPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	src, err := lib.ShaderSource("candle.vert")
	if err != nil {
		t.Fatalf("ShaderSource: %v", err)
	}
	if src != "void main() {}" {
		t.Errorf("shader source = %q", src)
	}
}

func TestOpen_EmbeddedAssets(t *testing.T) {
	lib, err := Open("")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	for _, name := range []string{
		"candle.vert", "candle.frag",
		"outline.geom", "outline.frag",
		"background.vert", "background.frag",
	} {
		if _, err := lib.ShaderSource(name); err != nil {
			t.Errorf("ShaderSource(%q): %v", name, err)
		}
	}

	verts, err := lib.QuadMesh()
	if err != nil {
		t.Fatalf("QuadMesh: %v", err)
	}
	if len(verts) != 8 {
		t.Fatalf("quad mesh has %d floats, want 8", len(verts))
	}
	want := []float32{-1, -1, 1, -1, -1, 1, 1, 1}
	for i := range want {
		if verts[i] != want[i] {
			t.Errorf("quad[%d] = %v, want %v", i, verts[i], want[i])
		}
	}
}
