// Package source resolves a document path and turns the file behind it into
// the ordered line sequence the block matchers consume.
package source

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Mode selects how a relative document path is resolved.
type Mode int

const (
	// RootRelative resolves against a fixed build root. This is the default.
	RootRelative Mode = iota

	// CallerRelative resolves against the directory of the file that issued
	// the extraction request.
	CallerRelative
)

// Resolver locates the document backing an extraction request.
type Resolver struct {
	Mode   Mode
	Root   string
	Caller string
}

// Resolve maps a user-supplied path to the file to read. Absolute paths pass
// through unchanged.
func (r Resolver) Resolve(path string) (string, error) {
	if filepath.IsAbs(path) {
		return path, nil
	}

	switch r.Mode {
	case CallerRelative:
		if r.Caller == "" {
			return "", errNoCaller
		}

		return filepath.Join(filepath.Dir(r.Caller), path), nil
	default:
		return filepath.Join(r.Root, path), nil
	}
}

// Load reads the named file from fsys and splits it into lines.
func Load(fsys fs.FS, name string) ([]string, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}

	return Split(data), nil
}

// LoadFile reads the file at path and splits it into lines.
func LoadFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Split(data), nil
}

// Split breaks file contents into lines with the \n or \r\n terminators
// stripped. A trailing newline does not produce a final empty line; an empty
// file produces no lines.
func Split(data []byte) []string {
	if len(data) == 0 {
		return nil
	}

	text := strings.TrimSuffix(string(data), "\n")
	lines := strings.Split(text, "\n")

	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}

var errNoCaller = errors.New("caller-relative resolution requires a calling file")
