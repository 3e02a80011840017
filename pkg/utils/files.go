// Package utils provides file loading helpers shared by the
// command line drivers.
package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bodgit/sevenzip"
)

// ErrEmptyArchive is returned when an archive contains no files.
var ErrEmptyArchive = errors.New("archive contains no files")

// Entry is a single file read from an archive.
type Entry struct {
	Name string
	Data []byte
}

// LoadFile loads the given file and performs decompression if necessary.
// For .zip and .7z archives the first file in the archive is returned.
func LoadFile(filename string) ([]byte, error) {
	entries, err := loadEntries(filename, true)
	if err != nil {
		return nil, err
	}
	return entries[0].Data, nil
}

// LoadArchive loads every file in the given archive, sorted by
// name. Files that are not archives are returned as a single entry.
func LoadArchive(filename string) ([]Entry, error) {
	return loadEntries(filename, false)
}

func loadEntries(filename string, firstOnly bool) ([]Entry, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".gz":
		entries, err = readGzip(filename, data)
	case ".zip":
		entries, err = readZip(data, firstOnly)
	case ".7z":
		entries, err = read7z(data, firstOnly)
	default:
		// return the data as is
		return []Entry{{Name: filepath.Base(filename), Data: data}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("utils: %s: %w", filename, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("utils: %s: %w", filename, ErrEmptyArchive)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries, nil
}

func readGzip(filename string, data []byte) ([]Entry, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	decompressed, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	name := r.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}
	return []Entry{{Name: name, Data: decompressed}}, nil
}

func readZip(data []byte, firstOnly bool) ([]Entry, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}

	var entries []Entry
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		entry, err := readEntry(f.Name, f.Open)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
		if firstOnly {
			break
		}
	}
	return entries, nil
}

func read7z(data []byte, firstOnly bool) ([]Entry, error) {
	r, err := sevenzip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}

	var entries []Entry
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		entry, err := readEntry(f.Name, f.Open)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
		if firstOnly {
			break
		}
	}
	return entries, nil
}

func readEntry(name string, open func() (io.ReadCloser, error)) (Entry, error) {
	rc, err := open()
	if err != nil {
		return Entry{}, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return Entry{}, err
	}
	return Entry{Name: name, Data: data}, nil
}
