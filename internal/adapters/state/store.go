// Package state persists the sleep/wake flag of the assistant in a small JSON file.
package state

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.stonic.dev/stonic/internal/core/domain"
	"go.stonic.dev/stonic/internal/core/ports"
	"go.trai.ch/zerr"
)

// Store implements ports.SleepStateStore on a JSON file.
type Store struct {
	path   string
	logger ports.Logger
	mu     sync.Mutex
}

// NewStore creates a Store backed by the file at path.
func NewStore(path string, logger ports.Logger) *Store {
	return &Store{path: path, logger: logger}
}

// Sleeping reads the flag. A missing file is created as awake; unreadable
// or malformed files report awake.
func (s *Store) Sleeping() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.read()
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Info("sleep state file not found, assuming awake", "path", s.path)
		if werr := s.write(domain.SleepState{}); werr != nil {
			s.logger.Error(werr)
		}
		return false
	}
	if err != nil {
		s.logger.Error(err)
		return false
	}

	s.logger.Debug("read sleep state", "sleeping", st.Sleeping, "path", s.path)
	return st.Sleeping
}

// SetSleeping writes the flag, then reads it back.
func (s *Store) SetSleeping(sleeping bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.write(domain.SleepState{Sleeping: sleeping}); err != nil {
		return err
	}

	st, err := s.read()
	if err != nil {
		return err
	}
	if st.Sleeping != sleeping {
		return zerr.With(zerr.With(zerr.Wrap(domain.ErrStateVerifyFailed, ""), "want", sleeping), "got", st.Sleeping)
	}

	s.logger.Info("sleep state set", "sleeping", sleeping)
	return nil
}

func (s *Store) read() (domain.SleepState, error) {
	var st domain.SleepState

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return st, err
		}
		return st, zerr.With(zerr.Wrap(err, domain.ErrStateReadFailed.Error()), "path", s.path)
	}

	if err := json.Unmarshal(data, &st); err != nil {
		return domain.SleepState{}, zerr.With(zerr.Wrap(err, domain.ErrStateReadFailed.Error()), "path", s.path)
	}
	return st, nil
}

func (s *Store) write(st domain.SleepState) error {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStateWriteFailed.Error())
	}

	if err := os.MkdirAll(filepath.Dir(s.path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStateWriteFailed.Error()), "path", s.path)
	}
	if err := os.WriteFile(s.path, data, domain.PrivateFilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStateWriteFailed.Error()), "path", s.path)
	}
	return nil
}
