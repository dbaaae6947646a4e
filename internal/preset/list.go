package preset

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// FileInfo holds metadata about a saved preset file.
type FileInfo struct {
	Name     string // base name without extension
	Path     string
	Size     int64
	Modified time.Time
}

// List returns the preset files directly inside dir, newest first. A
// missing directory yields an empty list, not an error — nothing has been
// saved yet.
func List(dir string) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []FileInfo{}, nil
		}
		return nil, err
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), Ext) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue // skip entries racing with deletion
		}
		files = append(files, FileInfo{
			Name:     strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())),
			Path:     filepath.Join(dir, e.Name()),
			Size:     info.Size(),
			Modified: info.ModTime(),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Modified.After(files[j].Modified)
	})

	return files, nil
}
