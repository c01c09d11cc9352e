// Package upload names stored images. Original file names never reach storage:
// every object gets a fresh random name and keeps only the extension.
package upload

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const root = "uploads"

type Category string

const (
	CategoryUser   Category = "user"
	CategoryPlaces Category = "places"
)

// Path returns uploads/<category>/<uuid v4><ext>. The extension keeps its dot and is
// empty when the name has none; leading dots of hidden files are not an extension.
func Path(category Category, filename string) string {
	return path.Join(root, string(category), uuid.NewString()+Ext(filename))
}

// Ext returns the extension of the base name of filename, dot included.
func Ext(filename string) string {
	base := filepath.Base(filename)
	if base == "." || base == string(filepath.Separator) {
		return ""
	}

	return filepath.Ext(strings.TrimLeft(base, "."))
}
