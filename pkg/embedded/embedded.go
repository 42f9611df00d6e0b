// Package embedded exposes the assets and data bundled into the binary.
//
// go:embed can only reach files below the declaring package, so the
// embed.FS values live in the repository root (embed.go) and in mobile/,
// and are handed to this package through Init before anything is loaded.
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

var (
	assetsFS    fs.FS
	dataFS      fs.FS
	initialized bool
)

// ErrNotInitialized is returned by every accessor called before Init.
var ErrNotInitialized = errors.New("embedded package not initialized, call Init() first")

// Init installs the file systems backing "assets/" and "data/" paths.
// Must be called at the start of main, before any resource is loaded.
func Init(assets, data fs.FS) {
	assetsFS = assets
	dataFS = data
	initialized = true
}

// IsInitialized reports whether Init has been called.
func IsInitialized() bool {
	return initialized
}

// normalize converts a resource path to the slash-separated form fs.FS
// expects and picks the backing file system from its prefix.
func normalize(path string) (fs.FS, string, error) {
	if !initialized {
		return nil, "", ErrNotInitialized
	}

	path = filepath.ToSlash(path)
	path = strings.TrimPrefix(path, "./")

	switch {
	case strings.HasPrefix(path, "assets/"):
		return assetsFS, path, nil
	case strings.HasPrefix(path, "data/"):
		return dataFS, path, nil
	}
	return nil, "", fmt.Errorf("unknown resource path prefix: %s (must start with 'assets/' or 'data/')", path)
}

// Open opens a bundled file. The path must start with "assets/" or "data/".
func Open(path string) (fs.File, error) {
	fsys, name, err := normalize(path)
	if err != nil {
		return nil, err
	}
	return fsys.Open(name)
}

// ReadFile reads a bundled file. The path must start with "assets/" or "data/".
func ReadFile(path string) ([]byte, error) {
	fsys, name, err := normalize(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(fsys, name)
}

// Exists reports whether path names a bundled file.
func Exists(path string) bool {
	file, err := Open(path)
	if err != nil {
		return false
	}
	file.Close()
	return true
}

// Glob returns the bundled files matching pattern.
func Glob(pattern string) ([]string, error) {
	fsys, name, err := normalize(pattern)
	if err != nil {
		return nil, err
	}
	return fs.Glob(fsys, name)
}
