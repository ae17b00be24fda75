// Package icons resolves and enumerates the icon files available for
// stamping. Icons live in the icon/png subdirectory of the working
// directory; other locations are only used by tests.
package icons

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aldersen/iconstamp/pkg/compositor"
)

// DefaultDir is the directory icons are read from, relative to the process
// working directory.
var DefaultDir = filepath.Join("icon", "png")

// Ext is the only file extension treated as an icon, matched without regard
// to case.
const Ext = ".png"

// ErrNoIcons reports an icon directory that contains no icon files.
var ErrNoIcons = errors.New("no icon files found")

// Resolve returns the path of the named icon inside dir.
func Resolve(dir, name string) string {
	return filepath.Join(dir, name)
}

// List returns the names of all icon files in dir. os.ReadDir sorts entries
// by name, so batch runs see icons in the same order on every platform.
// Subdirectories and files without the icon extension are skipped. A missing
// or unreadable directory reports compositor.ErrNotFound.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: icon directory %s: %v", compositor.ErrNotFound, dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(entry.Name()), Ext) {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}
