// ABOUTME: Tests for session persistence
// ABOUTME: Verifies round-trip fidelity, atomic overwrite, and corrupt-file recovery

package session

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func testState() State {
	return State{
		Tracks:   []string{"/music/c.mp3", "/music/a.mp3", "/music/b.mp3"},
		Index:    1,
		Position: 42.5,
		Volume:   70,
		Shuffle:  true,
		Repeat:   2,
	}
}

// TestSaveLoadRoundTrip verifies that save-then-load reproduces the
// playlist order, cursor, position, volume, and mode flags
func TestSaveLoadRoundTrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "session.toml"))

	want := testState()
	if err := store.Save(want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got == nil {
		t.Fatal("expected state, got nil")
	}

	if !reflect.DeepEqual(*got, want) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", *got, want)
	}
}

func TestLoadMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "absent.toml"))

	state, err := store.Load()
	if err != nil {
		t.Fatalf("expected nil error for missing file, got %v", err)
	}

	if state != nil {
		t.Errorf("expected nil state for missing file, got %+v", state)
	}
}

// TestLoadCorruptFile verifies a parse failure degrades to "no session"
// instead of an error
func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.toml")
	if err := os.WriteFile(path, []byte("{{{ not toml at all"), 0o644); err != nil {
		t.Fatal(err)
	}

	state, err := NewStore(path).Load()
	if err != nil {
		t.Fatalf("expected nil error for corrupt file, got %v", err)
	}

	if state != nil {
		t.Errorf("expected nil state for corrupt file, got %+v", state)
	}
}

// TestSaveOverwrites verifies each save replaces the previous session
// and leaves no temp files behind
func TestSaveOverwrites(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(filepath.Join(dir, "session.toml"))

	first := testState()
	if err := store.Save(first); err != nil {
		t.Fatal(err)
	}

	second := testState()
	second.Index = 2
	second.Volume = 30

	if err := store.Save(second); err != nil {
		t.Fatal(err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}

	if got.Index != 2 || got.Volume != 30 {
		t.Errorf("expected second save to win, got %+v", got)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}

	if len(entries) != 1 {
		t.Errorf("expected only the session file in %s, found %d entries", dir, len(entries))
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "session.toml")

	if err := NewStore(path).Save(testState()); err != nil {
		t.Fatalf("Save into missing directory failed: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected session file to exist: %v", err)
	}
}
