package store_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"valkeys/internal/domain"
	"valkeys/internal/store"
)

func TestKeyFile_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "validator-keys.json")
	s := store.NewKeyFile(path)

	rec := domain.Record{
		domain.FieldKeyType:      "ed25519",
		domain.FieldMasterSecret: "token",
		domain.FieldSequence:     uint64(3),
	}
	if err := s.Save(rec); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got[domain.FieldKeyType] != "ed25519" || got[domain.FieldMasterSecret] != "token" {
		t.Fatalf("record changed through save/load: %v", got)
	}
	if got[domain.FieldSequence] != float64(3) {
		t.Fatalf("sequence = %v (%T)", got[domain.FieldSequence], got[domain.FieldSequence])
	}
}

func TestKeyFile_CreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "directories", "to", "create", "validator-keys.json")
	s := store.NewKeyFile(path)

	if err := s.Save(domain.Record{domain.FieldSequence: uint64(0)}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !s.Exists() {
		t.Fatal("Exists = false after save")
	}
}

func TestKeyFile_Exists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "validator-keys.json")
	s := store.NewKeyFile(path)

	if s.Exists() {
		t.Fatal("Exists = true before save")
	}
	if err := s.Save(domain.Record{}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !s.Exists() {
		t.Fatal("Exists = false after save")
	}
}

func TestKeyFile_LoadMissing(t *testing.T) {
	s := store.NewKeyFile(filepath.Join(t.TempDir(), "absent.json"))
	if _, err := s.Load(); !store.IsNotExist(err) {
		t.Fatalf("err = %v, want missing-file error", err)
	}
}

func TestKeyFile_LoadUnparseable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "validator-keys.json")
	if err := os.WriteFile(path, []byte("{{}"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := store.NewKeyFile(path).Load(); !errors.Is(err, domain.ErrParse) {
		t.Fatalf("err = %v, want ErrParse", err)
	}
}

func TestKeyFile_OverwriteKeepsFileValid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "validator-keys.json")
	s := store.NewKeyFile(path)

	for seq := uint64(0); seq < 3; seq++ {
		if err := s.Save(domain.Record{domain.FieldSequence: seq}); err != nil {
			t.Fatalf("Save(%d): %v", seq, err)
		}
		got, err := s.Load()
		if err != nil {
			t.Fatalf("Load(%d): %v", seq, err)
		}
		if got[domain.FieldSequence] != float64(seq) {
			t.Fatalf("sequence = %v, want %d", got[domain.FieldSequence], seq)
		}
	}

	// No temp files left behind from the atomic replace.
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("directory has %d entries, want 1", len(entries))
	}
}

func TestKeyFile_Mode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "validator-keys.json")
	s := store.NewKeyFile(path)
	if err := s.Save(domain.Record{}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("mode = %v, want 0600", info.Mode().Perm())
	}
}
