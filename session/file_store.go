package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/promptpilot/prompt-pilot-service/types"
)

const (
	pilotDirName    = ".prompt-pilot"
	sessionFileName = "session.json"
)

// FileStore keeps one session per key as a JSON file under ~/.prompt-pilot.
// It is the client-side store: overwritten on every completed roadmap,
// deleted on reset, read once at startup.
type FileStore struct {
	dir string
}

// NewFileStore creates a store rooted at dir. An empty dir defaults to
// ~/.prompt-pilot.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		dir = filepath.Join(home, pilotDirName)
	}
	return &FileStore{dir: dir}, nil
}

func (f *FileStore) path(key string) string {
	if key == "" {
		return filepath.Join(f.dir, sessionFileName)
	}
	return filepath.Join(f.dir, key+".json")
}

func (f *FileStore) Save(_ context.Context, key string, sess *types.Session) error {
	if err := os.MkdirAll(f.dir, 0755); err != nil {
		return fmt.Errorf("creating session directory: %w", err)
	}

	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling session: %w", err)
	}

	if err := os.WriteFile(f.path(key), data, 0644); err != nil {
		return fmt.Errorf("writing session file: %w", err)
	}
	return nil
}

// Load reads the stored session. Returns nil, nil when no session exists.
func (f *FileStore) Load(_ context.Context, key string) (*types.Session, error) {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading session file: %w", err)
	}

	var sess types.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("parsing session file: %w", err)
	}
	return &sess, nil
}

func (f *FileStore) Delete(_ context.Context, key string) error {
	if err := os.Remove(f.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing session file: %w", err)
	}
	return nil
}
