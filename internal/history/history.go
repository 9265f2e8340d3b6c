// Package history keeps a small on-disk log of recent translations.
// Passwords are masked before anything touches disk; the log is for
// recalling inputs, not for storing credentials.
package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/connstr/connstr-cli/internal/config"
)

const (
	storeVersion = 1
	// DefaultLimit bounds the log; the oldest entry falls off first.
	DefaultLimit = 20
)

// Entry is one recorded translation.
type Entry struct {
	ID           string    `json:"id"`
	Input        string    `json:"input"`
	SourceDriver string    `json:"source_driver"`
	TargetDriver string    `json:"target_driver"`
	Output       string    `json:"output,omitempty"`
	Success      bool      `json:"success"`
	CreatedAt    time.Time `json:"created_at"`
}

// Store is the persisted structure, newest entry first.
type Store struct {
	Version int     `json:"version"`
	Entries []Entry `json:"entries"`
}

// GetStorePath returns the path of the history file.
func GetStorePath() (string, error) {
	dir, err := config.GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "history.json"), nil
}

// Load reads the history store; a missing file yields an empty store.
func Load() (*Store, error) {
	path, err := GetStorePath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Store{Version: storeVersion}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var store Store
	if err := json.Unmarshal(data, &store); err != nil {
		return nil, err
	}
	if store.Version == 0 {
		store.Version = storeVersion
	}
	return &store, nil
}

// Save atomically writes the store.
func Save(store *Store) error {
	path, err := GetStorePath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	_ = os.Remove(path)
	return os.Rename(tmp, path)
}

// Add prepends a masked entry and trims the store to limit.
func (s *Store) Add(input, source, target, output string, success bool, limit int) Entry {
	if limit <= 0 {
		limit = DefaultLimit
	}
	entry := Entry{
		ID:           uuid.NewString(),
		Input:        MaskSecrets(input),
		SourceDriver: source,
		TargetDriver: target,
		Output:       MaskSecrets(output),
		Success:      success,
		CreatedAt:    time.Now().UTC(),
	}
	s.Entries = append([]Entry{entry}, s.Entries...)
	if len(s.Entries) > limit {
		s.Entries = s.Entries[:limit]
	}
	return entry
}

// Clear drops every entry.
func (s *Store) Clear() {
	s.Entries = nil
}

var (
	// password=..., pwd=..., clientkeypassword=...; quoted or braced values
	// swallowed whole so a ; inside a quoted password is not mistaken for a
	// pair separator.
	flatSecretPattern = regexp.MustCompile(`(?i)((?:password|pwd|clientkeypassword|keystoresecret|truststorepassword|aadsecureprincipalsecret)\s*=\s*)("(?:[^"]|"")*"?|'(?:[^']|'')*'?|\{[^}]*\}?|[^;]*)`)
	// user:secret@host in URL userinfo.
	urlSecretPattern = regexp.MustCompile(`(://[^/:@;]+):([^@;/]+)@`)
	// password: "secret".to_string() in struct literals.
	rustSecretPattern = regexp.MustCompile(`(password\s*:\s*)"(?:[^"\\]|\\.)*"`)
)

// MaskSecrets hides password material in any of the supported syntaxes while
// leaving the rest of the string recognizable.
func MaskSecrets(s string) string {
	if s == "" {
		return ""
	}
	s = flatSecretPattern.ReplaceAllString(s, "${1}*****")
	s = urlSecretPattern.ReplaceAllString(s, "${1}:*****@")
	s = rustSecretPattern.ReplaceAllString(s, `${1}"*****"`)
	return s
}
