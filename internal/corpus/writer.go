// Package corpus writes normalised section text to the flat-file
// corpus. Filenames are derived from the section name and ID by the
// domain package; content is plain UTF-8 with no embedded metadata.
package corpus

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fr3asikx/OWUI-Ollama-Onenote-Import/internal/core/ports/driven"
)

// Ensure Writer implements the interface.
var _ driven.CorpusWriter = (*Writer)(nil)

// Writer persists section documents under an output directory.
type Writer struct {
	dir string
}

// NewWriter creates a Writer targeting the given output directory.
// The directory is created lazily on first write.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Write stores content under stem.txt, replacing any existing file.
// It returns the resolved file path.
func (w *Writer) Write(stem, content string) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	path := filepath.Join(w.dir, stem+".txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// Dir returns the output directory.
func (w *Writer) Dir() string {
	return w.dir
}
