package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/comitanigiacomo/consistency-tracker/internal/core/domain"
)

// FileStore keeps every key in one JSON document on disk. Values are kept
// as strings so non-JSON entries such as a bare theme name survive.
type FileStore struct {
	path string
	data map[string]string

	mu sync.RWMutex
}

// OpenFileStore loads the document at path. A missing file is an empty store.
// An undecodable one is moved aside to <path>.corrupt and the store starts
// empty; the returned error then matches domain.ErrCorruptState while the
// store is still usable.
func OpenFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, errors.New("storage: file store needs a path")
	}

	s := &FileStore{path: path, data: make(map[string]string)}

	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("storage: read %s: %w", path, err)
	}

	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &s.data); err != nil {
			s.data = make(map[string]string)
			corrupt := &domain.CorruptStateError{Key: path, Err: err}
			if mvErr := os.Rename(path, path+".corrupt"); mvErr != nil {
				log.Warn().Err(mvErr).Str("path", path).Msg("could not back up corrupt data file")
			}
			return s, corrupt
		}
	}
	return s, nil
}

func (s *FileStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return []byte(v), nil
}

func (s *FileStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, had := s.data[key]
	s.data[key] = string(value)
	if err := s.flush(); err != nil {
		if had {
			s.data[key] = prev
		} else {
			delete(s.data, key)
		}
		return err
	}
	return nil
}

func (s *FileStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[key]; !ok {
		return nil
	}
	prev := s.data[key]
	delete(s.data, key)
	if err := s.flush(); err != nil {
		s.data[key] = prev
		return err
	}
	return nil
}

func (s *FileStore) Close() error { return nil }

// flush writes through a temp file and rename so a crash never leaves a
// half-written document behind.
func (s *FileStore) flush() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("storage: encode: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: mkdir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".streak-*.json")
	if err != nil {
		return fmt.Errorf("storage: temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: close: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("storage: rename: %w", err)
	}
	return nil
}
