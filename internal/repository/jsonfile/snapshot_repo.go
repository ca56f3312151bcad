// Package jsonfile persists the store snapshot as a single pretty-printed
// JSON document on the local filesystem.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"imagetagger/internal/domain"
)

type snapshotRepository struct {
	path string
}

// NewSnapshotRepository returns a domain.SnapshotRepository backed by the
// JSON file at path.
func NewSnapshotRepository(path string) domain.SnapshotRepository {
	return &snapshotRepository{path: path}
}

// Save writes the snapshot atomically: the document is written to a temp file
// in the same directory and renamed over the target, so readers never see a
// partial write.
func (r *snapshotRepository) Save(snap *domain.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp snapshot: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}

// Load reads and parses the snapshot file. A missing file returns (nil, nil).
func (r *snapshotRepository) Load() (*domain.Snapshot, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	snap := domain.NewSnapshot()
	if err := json.Unmarshal(data, snap); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	// A document written by hand or by an older build may omit a collection;
	// the store requires all five maps allocated.
	if snap.Groups == nil {
		snap.Groups = make(map[string]domain.Group)
	}
	if snap.Images == nil {
		snap.Images = make(map[string]domain.Image)
	}
	if snap.TagSuggestions == nil {
		snap.TagSuggestions = make(map[string]domain.TagSuggestion)
	}
	if snap.ApprovedTags == nil {
		snap.ApprovedTags = make(map[string]domain.ApprovedTag)
	}
	if snap.TagUpvotes == nil {
		snap.TagUpvotes = make(map[string]domain.TagUpvote)
	}
	return snap, nil
}
