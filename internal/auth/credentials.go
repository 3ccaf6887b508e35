package auth

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fittrack/fittrack-cli/internal/errs"
	"github.com/fittrack/fittrack-cli/internal/model"
)

// CredentialStore persists the session token pair across process restarts.
type CredentialStore interface {
	// Load returns the persisted pair, or errs.ErrNoCredentials when none exist.
	Load() (model.TokenPair, error)
	// Save writes the pair.
	Save(model.TokenPair) error
	// Clear erases the persisted pair. Clearing an empty store is not an error.
	Clear() error
}

// DefaultDir returns the config directory used when none is configured.
func DefaultDir() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "fittrack")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "fittrack")
}

// FileStore keeps tokens in tokens.json under a config directory.
type FileStore struct {
	dir string
}

var _ CredentialStore = (*FileStore)(nil)

// NewFileStore constructs a FileStore rooted at dir; empty means DefaultDir.
func NewFileStore(dir string) *FileStore {
	if dir == "" {
		dir = DefaultDir()
	}
	return &FileStore{dir: dir}
}

func (f *FileStore) path() string { return filepath.Join(f.dir, "tokens.json") }

type tokenFile struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Load reads the persisted token pair.
func (f *FileStore) Load() (model.TokenPair, error) {
	b, err := os.ReadFile(f.path())
	if errors.Is(err, fs.ErrNotExist) {
		return model.TokenPair{}, errs.ErrNoCredentials
	}
	if err != nil {
		return model.TokenPair{}, err
	}
	var tf tokenFile
	if err := json.Unmarshal(b, &tf); err != nil {
		return model.TokenPair{}, err
	}
	if tf.AccessToken == "" {
		return model.TokenPair{}, errs.ErrNoCredentials
	}
	return model.TokenPair{Access: tf.AccessToken, Refresh: tf.RefreshToken}, nil
}

// Save writes the token pair with owner-only permissions.
func (f *FileStore) Save(pair model.TokenPair) error {
	if err := os.MkdirAll(f.dir, 0o700); err != nil {
		return err
	}
	b, err := json.MarshalIndent(tokenFile{
		AccessToken:  pair.Access,
		RefreshToken: pair.Refresh,
	}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(f.path(), b, 0o600)
}

// Clear removes the token file.
func (f *FileStore) Clear() error {
	err := os.Remove(f.path())
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
