package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Store persists tracking reports as timestamped files in an output
// directory.
type Store struct {
	dir string
}

// NewStore creates a store writing into dir. The directory is created on
// first save.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Save writes the report as edits_{epoch-ms}.md and returns the path.
func (s *Store) Save(markdown string) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	name := fmt.Sprintf("edits_%d.md", time.Now().UnixMilli())
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, []byte(markdown), 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}
