package recording

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/tracklinehq/trackline/pkg/errors"
)

// FileStore persists recordings as JSON files in a config directory.
type FileStore struct {
	mu      sync.RWMutex
	baseDir string
}

// NewFileStore creates a file-backed recording store.
// If baseDir is empty, defaults to ~/.config/trackline/recordings/
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		baseDir = filepath.Join(home, ".config", "trackline", "recordings")
	}
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("create recording dir: %w", err)
	}
	return &FileStore{baseDir: baseDir}, nil
}

func (s *FileStore) path(id string) string {
	return filepath.Join(s.baseDir, id+".json")
}

// Save writes the recording to disk, overwriting any previous version.
func (s *FileStore) Save(rec *Recording) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := uuid.Parse(rec.ID); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "recording id %q", rec.ID)
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal recording: %w", err)
	}
	if err := os.WriteFile(s.path(rec.ID), data, 0600); err != nil {
		return fmt.Errorf("write recording file: %w", err)
	}
	return nil
}

// Load reads a recording by ID.
func (s *FileStore) Load(id string) (*Recording, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, err := uuid.Parse(id); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "recording id %q", id)
	}

	data, err := os.ReadFile(s.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeNotFound, "recording %s", id)
		}
		return nil, fmt.Errorf("read recording file: %w", err)
	}

	var rec Recording
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parse recording: %w", err)
	}
	return &rec, nil
}

// List returns the IDs of all stored recordings, newest first.
func (s *FileStore) List() ([]*Recording, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, fmt.Errorf("read recording dir: %w", err)
	}

	var recs []*Recording
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name()))
		if err != nil {
			continue
		}
		var rec Recording
		if err := json.Unmarshal(data, &rec); err != nil {
			continue
		}
		recs = append(recs, &rec)
	}

	sort.Slice(recs, func(i, j int) bool {
		return recs[i].CreatedAt.After(recs[j].CreatedAt)
	})
	return recs, nil
}

// Delete removes a recording. Deleting a missing recording is not an error.
func (s *FileStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := uuid.Parse(id); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "recording id %q", id)
	}

	if err := os.Remove(s.path(id)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove recording file: %w", err)
	}
	return nil
}
