package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Moiseysus/Itabot/internal/domain/entities"
)

// ProgressFile persists the progress snapshot as one JSON document:
// {"<user id>": {"<term>": {"streak": 1, "last_seen": "..."}}}.
type ProgressFile struct {
	path string
}

// NewProgressFile creates a persister writing to path.
func NewProgressFile(path string) *ProgressFile {
	return &ProgressFile{path: path}
}

// Load reads the file. A missing file is an empty store.
func (f *ProgressFile) Load(_ context.Context) (entities.ProgressSnapshot, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return entities.ProgressSnapshot{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read progress file: %w", err)
	}

	snapshot := entities.ProgressSnapshot{}
	if len(data) == 0 {
		return snapshot, nil
	}
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("unmarshal progress file: %w", err)
	}

	for userID, terms := range snapshot {
		if terms == nil {
			delete(snapshot, userID)
		}
	}
	return snapshot, nil
}

// Save replaces the file with snapshot. The document is written to a
// temporary file in the same directory and renamed over the old one.
func (f *ProgressFile) Save(_ context.Context, snapshot entities.ProgressSnapshot) error {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}

	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpName, f.path); err != nil {
		return fmt.Errorf("replace progress file: %w", err)
	}
	return nil
}
