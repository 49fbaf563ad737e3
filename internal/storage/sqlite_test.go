package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func openTemp(t *testing.T) (*Store, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store, dbPath
}

func TestStoreOpenClose(t *testing.T) {
	_, dbPath := openTemp(t)

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreGetSetDelete(t *testing.T) {
	store, _ := openTemp(t)

	e, err := store.Get("pong", "highscore")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if e != nil {
		t.Errorf("Get() on empty store = %+v, expected nil", e)
	}

	if err := store.Set("pong", "highscore", 12); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := store.Set("pong", "highscore", 7); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := store.Set("other", "highscore", 99); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	e, err = store.Get("pong", "highscore")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if e == nil || e.Value != 7 {
		t.Fatalf("Get() = %+v, expected value 7", e)
	}
	if e.UpdatedAt.IsZero() {
		t.Error("UpdatedAt should be set")
	}

	if err := store.Delete("pong", "highscore"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if e, _ := store.Get("pong", "highscore"); e != nil {
		t.Errorf("Get() after Delete = %+v, expected nil", e)
	}
	if err := store.Delete("pong", "highscore"); err != nil {
		t.Errorf("Delete() of a missing key failed: %v", err)
	}

	// Namespaces are independent
	if e, _ := store.Get("other", "highscore"); e == nil || e.Value != 99 {
		t.Errorf("other namespace = %+v, expected 99", e)
	}
}

func TestStoreRaise(t *testing.T) {
	store, _ := openTemp(t)

	tests := []struct {
		value    int
		expected int
	}{
		{5, 5},
		{3, 5},
		{5, 5},
		{9, 9},
		{0, 9},
	}

	for _, tc := range tests {
		got, err := store.Raise("pong", "highscore", tc.value)
		if err != nil {
			t.Fatalf("Raise(%d) failed: %v", tc.value, err)
		}
		if got != tc.expected {
			t.Errorf("Raise(%d) = %d, expected %d", tc.value, got, tc.expected)
		}
	}
}

func TestHighScoresRoundTrip(t *testing.T) {
	store, dbPath := openTemp(t)
	scores := NewHighScores(store, nil)

	if got := scores.LoadHighScore(); got != 0 {
		t.Errorf("LoadHighScore() on fresh store = %d, expected 0", got)
	}

	scores.SaveHighScore(42)
	store.Close()

	reopened, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer reopened.Close()

	again := NewHighScores(reopened, nil)
	if got := again.LoadHighScore(); got != 42 {
		t.Errorf("LoadHighScore() after reopen = %d, expected 42", got)
	}

	again.SaveHighScore(10)
	if got := again.LoadHighScore(); got != 42 {
		t.Errorf("lower save must not replace the high score, got %d", got)
	}

	if err := again.ResetHighScore(); err != nil {
		t.Fatalf("ResetHighScore() failed: %v", err)
	}
	if got := again.LoadHighScore(); got != 0 {
		t.Errorf("LoadHighScore() after reset = %d, expected 0", got)
	}
}

func TestHighScoresWithoutStore(t *testing.T) {
	var nilAdapter *HighScores
	if nilAdapter.LoadHighScore() != 0 {
		t.Error("nil adapter should load 0")
	}
	nilAdapter.SaveHighScore(5)

	scores := NewHighScores(nil, nil)
	scores.SaveHighScore(5)
	if got := scores.LoadHighScore(); got != 0 {
		t.Errorf("missing store should load 0, got %d", got)
	}
	if err := scores.ResetHighScore(); err != nil {
		t.Errorf("ResetHighScore() without store = %v", err)
	}
}

func TestHighScoresLogsFailures(t *testing.T) {
	store, _ := openTemp(t)
	store.Close()

	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.WarnLevel})
	scores := NewHighScores(store, logger)

	if got := scores.LoadHighScore(); got != 0 {
		t.Errorf("LoadHighScore() on closed store = %d, expected 0", got)
	}
	scores.SaveHighScore(3)

	out := buf.String()
	if !strings.Contains(out, "high score unavailable") || !strings.Contains(out, "high score not saved") {
		t.Errorf("expected warnings for failed load and save, got %q", out)
	}
}
