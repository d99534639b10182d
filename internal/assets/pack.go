package assets

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/pierrec/lz4/v4"

	"candlechart/internal/utils"
)

// Pack file layout, after lz4 frame decompression:
//
//	magic   [4]byte "CPK1"
//	count   uint32
//	entries count × { nameLen uint32, name []byte, size uint32 }
//	data    concatenated file contents in entry order
//
// All integers are little-endian.

var packMagic = [4]byte{'C', 'P', 'K', '1'}

func writePackString(w io.Writer, s string) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(s))); err != nil {
		return err
	}
	_, err := w.Write([]byte(s))
	return err
}

func readPackString(r io.Reader) (string, error) {
	var size uint32
	if err := binary.Read(r, binary.LittleEndian, &size); err != nil {
		return "", err
	}
	buf := make([]byte, size)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

// WritePack serializes files into an lz4-compressed pack stream.
// Entries are written in sorted name order so output is deterministic.
func WritePack(w io.Writer, files map[string][]byte) error {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	var payload bytes.Buffer
	payload.Write(packMagic[:])
	if err := binary.Write(&payload, binary.LittleEndian, uint32(len(names))); err != nil {
		return err
	}
	for _, name := range names {
		if err := writePackString(&payload, name); err != nil {
			return err
		}
		if err := binary.Write(&payload, binary.LittleEndian, uint32(len(files[name]))); err != nil {
			return err
		}
	}
	for _, name := range names {
		payload.Write(files[name])
	}

	zw := lz4.NewWriter(w)
	if _, err := io.Copy(zw, &payload); err != nil {
		return fmt.Errorf("compress pack: %w", err)
	}
	return zw.Close()
}

// ReadPack decompresses and parses a pack stream produced by WritePack.
func ReadPack(r io.Reader) (map[string][]byte, error) {
	zr := lz4.NewReader(r)

	var magic [4]byte
	if _, err := io.ReadFull(zr, magic[:]); err != nil {
		return nil, fmt.Errorf("read pack magic: %w", err)
	}
	if magic != packMagic {
		return nil, fmt.Errorf("bad pack magic %q", magic)
	}

	var count uint32
	if err := binary.Read(zr, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("read pack entry count: %w", err)
	}
	utils.Debug("Pack: %d entries", count)

	type entry struct {
		name string
		size uint32
	}
	entries := make([]entry, count)
	for i := range entries {
		name, err := readPackString(zr)
		if err != nil {
			return nil, fmt.Errorf("read pack entry name: %w", err)
		}
		var size uint32
		if err := binary.Read(zr, binary.LittleEndian, &size); err != nil {
			return nil, fmt.Errorf("read pack entry size: %w", err)
		}
		entries[i] = entry{name: name, size: size}
	}

	files := make(map[string][]byte, count)
	for _, e := range entries {
		buf := make([]byte, e.size)
		if _, err := io.ReadFull(zr, buf); err != nil {
			return nil, fmt.Errorf("read pack entry %s: %w", e.name, err)
		}
		files[e.name] = buf
	}
	return files, nil
}

// BuildPack collects every regular file under dir (paths relative to dir,
// slash-separated) and writes them as a pack file at outPath.
func BuildPack(dir, outPath string) error {
	files := make(map[string][]byte)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		files[filepath.ToSlash(rel)] = data
		return nil
	})
	if err != nil {
		return fmt.Errorf("collect pack files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no files found under %s", dir)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create pack: %w", err)
	}
	defer out.Close()

	if err := WritePack(out, files); err != nil {
		return err
	}
	utils.Info("Pack: wrote %d files to %s", len(files), outPath)
	return nil
}
