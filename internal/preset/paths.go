package preset

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultDirName is the fixed preset folder under the user's home directory.
const DefaultDirName = "SliderPresets"

// Ext is the preset file extension.
const Ext = ".json"

// DefaultDir returns the default preset directory. When the home directory
// cannot be resolved it falls back to the current working directory, so a
// save dialog always has somewhere to start.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultDirName
	}
	return filepath.Join(home, DefaultDirName)
}

// EnsureExt appends the .json extension when path does not already carry it.
// The comparison is case-insensitive so "preset.JSON" is left alone.
func EnsureExt(path string) string {
	if strings.EqualFold(filepath.Ext(path), Ext) {
		return path
	}
	return path + Ext
}

// EnsureDir creates the directory component of path (equivalent to mkdir -p)
// with mode 0755. It is a no-op if the directory already exists.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0755)
}
