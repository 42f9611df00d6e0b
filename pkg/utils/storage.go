package utils

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
)

// androidDataRoot is where Android keeps per-package private storage.
const androidDataRoot = "/data/data"

// packageFromCmdline extracts the package name from the contents of
// /proc/self/cmdline: the first NUL-separated argument, without any
// ":process" suffix.
func packageFromCmdline(cmdline []byte) (string, error) {
	first, _, _ := bytes.Cut(cmdline, []byte{0})
	name := strings.TrimSpace(string(first))
	name, _, _ = strings.Cut(name, ":")
	if name == "" {
		return "", errors.New("empty process name in /proc/self/cmdline")
	}
	return name, nil
}

// exportsDirFor returns the directory gdata writes the "exports" object to
// for the given Android package.
func exportsDirFor(pkg string) string {
	return filepath.Join(androidDataRoot, pkg, "exports")
}
