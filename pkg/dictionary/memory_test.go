package dictionary

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestStore_Contains(t *testing.T) {
	store := New([]string{"letmein", "password", "123456"})

	tests := []struct {
		word string
		want bool
	}{
		{"password", true},
		{"letmein", true},
		{"123456", true},
		{"hunter2", false},
		{"", false},
		{"Password", false}, // lookups are case-sensitive
	}
	for _, tt := range tests {
		if got := store.Contains(tt.word); got != tt.want {
			t.Errorf("Contains(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestStore_Empty(t *testing.T) {
	store := New(nil)
	if store.Contains("anything") {
		t.Error("empty store should contain nothing")
	}
	if store.Len() != 0 {
		t.Errorf("Len() = %d, want 0", store.Len())
	}
}

func TestFromReader(t *testing.T) {
	input := `# common passwords
password
letmein

  qwerty
`
	store, err := FromReader(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if store.Len() != 3 {
		t.Errorf("Len() = %d, want 3 (comments and blanks skipped)", store.Len())
	}
	if !store.Contains("qwerty") {
		t.Error("expected whitespace-trimmed word to be present")
	}
	if store.Contains("# common passwords") {
		t.Error("comment lines must not be loaded")
	}
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("password\nletmein\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	store, err := FromFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !store.Contains("password") || !store.Contains("letmein") {
		t.Error("expected file contents to be loaded")
	}
}

func TestFromFile_Missing(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
