package identity

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestNew_Shape(t *testing.T) {
	now := time.UnixMilli(1700000000123)
	id := New(now)
	if !strings.HasPrefix(id, "user_1700000000123_") {
		t.Fatalf("New = %q, want user_1700000000123_ prefix", id)
	}
	if !validID(id) {
		t.Fatalf("validID(%q) = false", id)
	}
	if New(now) == id {
		t.Fatalf("two ids minted at the same instant are equal: %q", id)
	}
}

func TestValidID(t *testing.T) {
	cases := map[string]bool{
		"user_1_abcdefgh9":      true,
		"user_1_abcdefgh":       false,
		"user_x_abcdefgh9":      false,
		"guest_1_abcdefgh9":     false,
		"user_1_ABCDEFGH9":      false,
		"user_1_abcdefgh9_tail": false,
	}
	for in, want := range cases {
		if got := validID(in); got != want {
			t.Fatalf("validID(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestLoadOrCreate_CreatesOnceThenReuses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "identity.toml")

	first, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("LoadOrCreate returned error: %v", err)
	}
	if !validID(first) {
		t.Fatalf("created id %q is not valid", first)
	}

	second, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("LoadOrCreate (second) returned error: %v", err)
	}
	if second != first {
		t.Fatalf("second id = %q, want persisted %q", second, first)
	}
}

func TestLoadOrCreate_KeepsForeignIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "identity.toml")
	if err := os.WriteFile(path, []byte("user_id = \"  legacy-id  \"\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	id, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("LoadOrCreate returned error: %v", err)
	}
	if id != "legacy-id" {
		t.Fatalf("id = %q, want legacy-id", id)
	}
}

func TestLoadOrCreate_CorruptFileIsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "identity.toml")
	if err := os.WriteFile(path, []byte("user_id = ["), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := LoadOrCreate(path); err == nil {
		t.Fatalf("LoadOrCreate returned nil error for corrupt file")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "user_id = [" {
		t.Fatalf("corrupt identity file was rewritten: %q", data)
	}
}

func TestLoadOrCreate_EmptyPath(t *testing.T) {
	if _, err := LoadOrCreate("  "); err == nil {
		t.Fatalf("LoadOrCreate(\"\") returned nil error")
	}
}

// validID reports whether id has the shape produced by New.
func validID(id string) bool {
	parts := strings.Split(id, "_")
	if len(parts) != 3 || parts[0] != "user" {
		return false
	}
	if _, err := strconv.ParseInt(parts[1], 10, 64); err != nil {
		return false
	}
	if len(parts[2]) != suffixLen {
		return false
	}
	for _, r := range parts[2] {
		if !strings.ContainsRune(alphabet, r) {
			return false
		}
	}
	return true
}
