package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"valkeys/internal/domain"
)

// KeyFile stores a single master-key record at a fixed path.
type KeyFile struct {
	path string
}

// NewKeyFile returns a KeyFile at path.
func NewKeyFile(path string) *KeyFile { return &KeyFile{path: path} }

// Path returns the backing file path.
func (s *KeyFile) Path() string { return s.path }

// Exists reports whether a key file is already present, so callers can
// refuse to overwrite an existing identity.
func (s *KeyFile) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Load reads and parses the key file. Unparseable JSON surfaces as
// domain.ErrParse; a missing file is an ordinary open error.
func (s *KeyFile) Load() (domain.Record, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open key file %s: %w", s.path, err)
	}
	var rec domain.Record
	if err := json.Unmarshal(b, &rec); err != nil {
		return nil, fmt.Errorf("%w %s: %v", domain.ErrParse, s.path, err)
	}
	return rec, nil
}

// Save writes the record, creating missing parent directories and
// atomically replacing any previous file.
func (s *KeyFile) Save(rec domain.Record) error {
	b, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return err
	}
	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("cannot create directory %s: %w", dir, err)
		}
	}
	return writeFile(s.path, append(b, '\n'), 0o600)
}

// writeFile writes bytes via a temp file, then atomically replaces the
// target.
func writeFile(path string, b []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	f, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	// Best-effort cleanup if anything fails before rename.
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(mode); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}

// Compile-time assertion that KeyFile implements domain.RecordStore.
var _ domain.RecordStore = (*KeyFile)(nil)

// IsNotExist reports whether err is a missing-file load failure.
func IsNotExist(err error) bool { return errors.Is(err, os.ErrNotExist) }
