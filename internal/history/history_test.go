package history

import (
	"path/filepath"
	"testing"
)

func TestAppendAndRecentPreservesOrder(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	for _, line := range []string{"var x = 1;", "print x;", "x = x + 1;"} {
		if err := store.Append(line); err != nil {
			t.Fatalf("Append(%q): %v", line, err)
		}
	}

	got, err := store.Recent(2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	want := []string{"print x;", "x = x + 1;"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestOpenCreatesSchemaOnFreshFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "fresh.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	lines, err := store.Recent(10)
	if err != nil {
		t.Fatalf("Recent on empty db: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("got %v, want empty history", lines)
	}
}
