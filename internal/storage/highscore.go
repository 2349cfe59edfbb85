package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// HighScoreFile is the file name of the persisted high score.
const HighScoreFile = "highscore.txt"

// ErrNoHighScore is returned by Read when nothing has been saved yet.
var ErrNoHighScore = errors.New("storage: no high score saved")

// FileStore persists a single high score as a plain-text integer.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// DefaultHighScorePath returns <user-config-dir>/FlappyBird/highscore.txt.
func DefaultHighScorePath() (string, error) {
	dir, err := config.AppDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, HighScoreFile), nil
}

// NewFileStore creates a store backed by the file at path.
// The file and its directory are created on the first Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load returns the saved high score, or 0 if it is absent or malformed.
func (s *FileStore) Load() int {
	v, err := s.Read()
	if err != nil {
		return 0
	}
	return v
}

// Read returns the saved high score with the reason it could not be read.
func (s *FileStore) Read() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, ErrNoHighScore
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read high score: %w", err)
	}

	v, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("storage: malformed high score %q: %w", data, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("storage: negative high score %d", v)
	}
	return v, nil
}

// Save overwrites the stored high score.
// The value is written to a temporary file and renamed into place so a
// failed write never leaves a truncated file behind.
func (s *FileStore) Save(value int) error {
	if value < 0 {
		return fmt.Errorf("storage: refusing to save negative high score %d", value)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, HighScoreFile+".*")
	if err != nil {
		return fmt.Errorf("storage: cannot create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // gone after a successful rename

	if _, err := tmp.WriteString(strconv.Itoa(value) + "\n"); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: cannot write high score: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: cannot write high score: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("storage: cannot replace %s: %w", s.path, err)
	}
	return nil
}
