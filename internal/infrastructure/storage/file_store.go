package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"GazetteWatch/internal/domain"
	"GazetteWatch/internal/ports"
)

// state is the on-disk shape: a sorted identifier list wrapped in an object
// so the file stays obvious to a human editing it by hand.
type state struct {
	Seen []string `json:"seen"`
}

// FileStore persists the seen-publications set as a JSON file.
type FileStore struct {
	path string
	seen map[string]struct{}
}

var _ ports.SeenStore = (*FileStore)(nil)

// NewFileStore wires the store to a file path; the file need not exist yet.
func NewFileStore(path string) *FileStore {
	return &FileStore{
		path: path,
		seen: map[string]struct{}{},
	}
}

// Load reads the persisted set. A missing file is a normal first run. A
// corrupt or unreadable file leaves the store empty and reports
// ErrStoreUnavailable so the caller can log and continue.
func (s *FileStore) Load(ctx context.Context) error {
	s.seen = map[string]struct{}{}

	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %v: %w", s.path, err, domain.ErrStoreUnavailable)
	}

	var st state
	if err := json.Unmarshal(raw, &st); err != nil {
		return fmt.Errorf("parse %s: %v: %w", s.path, err, domain.ErrStoreUnavailable)
	}

	for _, id := range st.Seen {
		if id == "" {
			continue
		}
		s.seen[id] = struct{}{}
	}
	return nil
}

// IsSeen reports whether the identifier was processed in an earlier run.
func (s *FileStore) IsSeen(id string) bool {
	_, ok := s.seen[id]
	return ok
}

// MarkSeen records an identifier; persisted on the next Save.
func (s *FileStore) MarkSeen(id string) {
	if id == "" {
		return
	}
	s.seen[id] = struct{}{}
}

// Save writes the full set to a temp file in the same directory and renames
// it over the target, so a crash mid-write never leaves a half-written file.
func (s *FileStore) Save(ctx context.Context) error {
	ids := make([]string, 0, len(s.seen))
	for id := range s.seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	payload, err := json.MarshalIndent(state{Seen: ids}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	payload = append(payload, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create state dir %s: %w", dir, err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}
