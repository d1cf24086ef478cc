package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/comitanigiacomo/consistency-tracker/internal/core/analytics"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// ThresholdStore serves the insight thresholds in force. A store backed by a
// file can follow edits to it through Watch.
type ThresholdStore struct {
	path string

	mu      sync.RWMutex
	current analytics.Thresholds
}

func StaticThresholds(t analytics.Thresholds) *ThresholdStore {
	return &ThresholdStore{current: t}
}

// LoadThresholds reads path once. An empty path or a missing file yields the
// defaults.
func LoadThresholds(path string) (*ThresholdStore, error) {
	s := &ThresholdStore{path: path, current: analytics.DefaultThresholds()}
	if path == "" {
		return s, nil
	}
	if err := s.Reload(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return s, nil
}

func (s *ThresholdStore) Current() analytics.Thresholds {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Reload re-reads the file. A bad or empty file leaves the previous values
// in place.
func (s *ThresholdStore) Reload() error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("config: read thresholds: %w", err)
	}
	// Writers truncate before they write; the follow-up event carries the data.
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}

	t, err := analytics.ParseThresholds(raw)
	if err != nil {
		return fmt.Errorf("config: %s: %w", s.path, err)
	}

	s.mu.Lock()
	s.current = t
	s.mu.Unlock()

	log.Info().Str("path", s.path).Msg("insight thresholds loaded")
	return nil
}

// Watch reloads the thresholds whenever the file changes and returns when ctx
// is cancelled. The parent directory is watched so editors that replace the
// file on save are followed too.
func (s *ThresholdStore) Watch(ctx context.Context) error {
	if s.path == "" {
		<-ctx.Done()
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config: new watcher: %w", err)
	}
	defer watcher.Close()

	target := filepath.Clean(s.path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("config: watch %s: %w", filepath.Dir(target), err)
	}
	log.Debug().Str("path", target).Msg("watching insight thresholds")

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := s.Reload(); err != nil {
				log.Warn().Err(err).Msg("keeping previous insight thresholds")
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("threshold watcher error")
		}
	}
}
