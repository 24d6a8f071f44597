// Package fs writes rendered preset output to the local filesystem.
package fs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// TextPath returns the output path for a converted preset: the input path
// with its extension replaced by .txt.
func TextPath(inputPath string) string {
	return strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".txt"
}

// Stem returns the file name without directory or extension, used as a
// fallback preset label.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Writer writes rendered reports to disk.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteText writes content to path. The write is skipped when the file
// already holds identical content (compared by xxhash), so repeated runs
// leave modification times untouched.
func (w *Writer) WriteText(path string, content string) error {
	if existing, err := os.ReadFile(path); err == nil {
		if xxhash.Sum64(existing) == xxhash.Sum64String(content) {
			return nil
		}
	}
	return os.WriteFile(path, []byte(content), 0644)
}
