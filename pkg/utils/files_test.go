package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFile_Raw(t *testing.T) {
	rom := []byte{0x00, 0xC3, 0x50, 0x01}
	got, err := LoadFile(writeFile(t, "test.gb", rom))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, rom) {
		t.Errorf("expected %v, got %v", rom, got)
	}
}

func TestLoadFile_Gzip(t *testing.T) {
	rom := bytes.Repeat([]byte{0xAA, 0x55}, 512)
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	w.Write(rom)
	w.Close()

	got, err := LoadFile(writeFile(t, "test.gb.gz", buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, rom) {
		t.Errorf("gzip data did not round trip")
	}
}

func TestLoadArchive_Zip(t *testing.T) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for _, name := range []string{"b.json", "a.json"} {
		f, err := w.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		f.Write([]byte(name))
	}
	w.Close()
	path := writeFile(t, "fixtures.zip", buf.Bytes())

	entries, err := LoadArchive(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 || entries[0].Name != "a.json" || entries[1].Name != "b.json" {
		t.Fatalf("expected sorted entries a.json, b.json, got %+v", entries)
	}
	if string(entries[1].Data) != "b.json" {
		t.Errorf("unexpected contents %q", entries[1].Data)
	}

	first, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(first) != "b.json" {
		t.Errorf("expected first file in archive order, got %q", first)
	}
}

func TestLoadArchive_Empty(t *testing.T) {
	var buf bytes.Buffer
	zip.NewWriter(&buf).Close()

	_, err := LoadArchive(writeFile(t, "empty.zip", buf.Bytes()))
	if !errors.Is(err, ErrEmptyArchive) {
		t.Errorf("expected ErrEmptyArchive, got %v", err)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.gb")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}
