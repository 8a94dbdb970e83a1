package timer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

const stateFileName = "rest_timer.json"

// Store persists the timer state under the app's data directory.
type Store struct {
	path string
}

// NewStore creates a Store rooted at the given data directory.
func NewStore(dataDir string) *Store {
	return &Store{path: filepath.Join(dataDir, stateFileName)}
}

// Save writes the state file, creating the directory if needed.
func (st *Store) Save(s State) error {
	if err := os.MkdirAll(filepath.Dir(st.path), 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding timer state: %w", err)
	}
	if err := os.WriteFile(st.path, data, 0644); err != nil {
		return fmt.Errorf("writing timer state: %w", err)
	}
	return nil
}

// Load returns the persisted state, or nil when none exists, the file is
// unreadable, or the timer already expired at the given instant. Expired or
// corrupt state files are removed.
func (st *Store) Load(now time.Time) (*State, error) {
	data, err := os.ReadFile(st.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading timer state: %w", err)
	}

	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		_ = st.Clear()
		return nil, nil
	}
	if s.Expired(now) {
		_ = st.Clear()
		return nil, nil
	}
	return &s, nil
}

// Clear discards the state file; used on natural expiry and explicit skip.
func (st *Store) Clear() error {
	if err := os.Remove(st.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing timer state: %w", err)
	}
	return nil
}
