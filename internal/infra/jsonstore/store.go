// Package jsonstore provides a JSON file-based implementation of ScheduleRepository.
package jsonstore

import (
	"bytes"
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/runoshun/schedo/internal/domain"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schedule.schema.json
var scheduleSchemaJSON string

var scheduleSchema = jsonschema.MustCompileString("schedule.schema.json", scheduleSchemaJSON)

// Store implements domain.ScheduleRepository using a JSON file.
// The file holds an array of {"name", "duration"} objects in schedule order.
type Store struct {
	path     string
	lockPath string
}

// New creates a new Store for the given file path.
// The file does not need to exist; it will be created on first write.
// The lock file sits next to the schedule file.
func New(path string) *Store {
	return &Store{
		path:     path,
		lockPath: path + ".lock",
	}
}

// NewWithLockDir creates a Store whose lock file lives in lockDir instead of
// next to the schedule. The lock name is derived from the absolute schedule
// path so different schedules never share a lock. An empty lockDir behaves like New.
func NewWithLockDir(path, lockDir string) *Store {
	if lockDir == "" {
		return New(path)
	}
	return &Store{
		path:     path,
		lockPath: filepath.Join(lockDir, lockName(path)),
	}
}

func lockName(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	sum := sha256.Sum256([]byte(path))
	return "schedule-" + hex.EncodeToString(sum[:8]) + ".lock"
}

// Path returns the schedule file path.
func (s *Store) Path() string {
	return s.path
}

// Exists checks if the schedule file exists.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Load reads the saved tasks.
func (s *Store) Load() ([]domain.Task, error) {
	var tasks []domain.Task
	err := s.withLock(syscall.LOCK_SH, func() error {
		var err error
		tasks, err = s.read()
		return err
	})
	return tasks, err
}

// Save overwrites the schedule file with tasks.
func (s *Store) Save(tasks []domain.Task) error {
	return s.withLock(syscall.LOCK_EX, func() error {
		return s.write(tasks)
	})
}

// Update loads the tasks, applies fn and saves the result under one exclusive lock.
// A missing file is treated as an empty schedule.
func (s *Store) Update(fn func([]domain.Task) ([]domain.Task, error)) error {
	return s.withLock(syscall.LOCK_EX, func() error {
		tasks, err := s.read()
		if err != nil && !errors.Is(err, domain.ErrScheduleNotFound) {
			return err
		}
		tasks, err = fn(tasks)
		if err != nil {
			return err
		}
		return s.write(tasks)
	})
}

func (s *Store) withLock(lockType int, fn func() error) error {
	lock, err := s.acquireLock(lockType)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)
	return fn()
}

func (s *Store) acquireLock(lockType int) (*os.File, error) {
	// Ensure lock file directory exists
	dir := filepath.Dir(s.lockPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	return lock, nil
}

func (s *Store) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}

func (s *Store) read() ([]domain.Task, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrScheduleNotFound
		}
		return nil, fmt.Errorf("read schedule file: %w", err)
	}

	if err := validate(content); err != nil {
		return nil, err
	}

	var tasks []domain.Task
	if err := json.Unmarshal(content, &tasks); err != nil {
		return nil, fmt.Errorf("parse schedule file: %w", err)
	}
	return tasks, nil
}

// validate checks raw file content against the embedded schedule schema.
func validate(content []byte) error {
	var doc any
	if err := json.Unmarshal(content, &doc); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidSchedule, err)
	}
	if err := scheduleSchema.Validate(doc); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			return fmt.Errorf("%w: %s", domain.ErrInvalidSchedule, firstCause(ve))
		}
		return fmt.Errorf("%w: %v", domain.ErrInvalidSchedule, err)
	}
	return nil
}

// firstCause returns the innermost message of the first failing branch.
func firstCause(ve *jsonschema.ValidationError) string {
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	if ve.InstanceLocation == "" {
		return ve.Message
	}
	return ve.InstanceLocation + ": " + ve.Message
}

// Marshal encodes tasks the way the schedule file stores them:
// two-space indent, name before duration, non-ASCII kept verbatim.
func Marshal(tasks []domain.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []domain.Task{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(tasks); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *Store) write(tasks []domain.Task) error {
	content, err := Marshal(tasks)
	if err != nil {
		return fmt.Errorf("marshal schedule: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create directory: %w", err)
		}
	}

	// Write to temp file first, then rename for atomicity
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath) // Clean up
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

// Ensure Store implements ScheduleRepository.
var _ domain.ScheduleRepository = (*Store)(nil)
