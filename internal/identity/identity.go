// Package identity keeps the opaque session id that every backend request
// carries in its X-User-ID header. The id is minted once and persisted in a
// small TOML file; after that it is only ever read back.
package identity

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	toml "github.com/pelletier/go-toml/v2"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

const suffixLen = 9

type record struct {
	UserID string `toml:"user_id"`
}

// LoadOrCreate returns the id stored at path, creating and saving a new one
// when the file does not exist yet. A file that exists but cannot be read or
// parsed is an error; the id is never silently replaced.
func LoadOrCreate(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("identity path is empty")
	}

	id, err := load(path)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}

	id = New(time.Now())
	if err := save(path, id); err != nil {
		return "", err
	}
	return id, nil
}

// New mints an id of the form user_<unix-millis>_<9 chars of [a-z0-9]>.
func New(now time.Time) string {
	return "user_" + strconv.FormatInt(now.UnixMilli(), 10) + "_" + suffix()
}

func suffix() string {
	u := uuid.New()
	var b strings.Builder
	b.Grow(suffixLen)
	for i := 0; i < suffixLen; i++ {
		b.WriteByte(alphabet[int(u[i])%len(alphabet)])
	}
	return b.String()
}

func load(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", err
		}
		return "", fmt.Errorf("open identity: %w", err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("read identity: %w", err)
	}

	var rec record
	if err := toml.Unmarshal(bytes, &rec); err != nil {
		return "", fmt.Errorf("parse identity: %w", err)
	}
	id := strings.TrimSpace(rec.UserID)
	if id == "" {
		return "", fmt.Errorf("identity file %s has no user_id", path)
	}
	return id, nil
}

func save(path, id string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create identity dir: %w", err)
	}
	bytes, err := toml.Marshal(record{UserID: id})
	if err != nil {
		return fmt.Errorf("marshal identity: %w", err)
	}
	if err := os.WriteFile(path, bytes, 0o600); err != nil {
		return fmt.Errorf("write identity: %w", err)
	}
	return nil
}
