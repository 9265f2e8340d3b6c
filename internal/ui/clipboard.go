package ui

import (
	"errors"
	"sync"
)

// Clipboard abstracts copy/paste so the REPL works the same whether a real
// system clipboard is wired in or not.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(text string) error
}

// ErrNoClipboard is returned when no provider has been installed.
var ErrNoClipboard = errors.New("no clipboard provider available")

var (
	clipboardMu sync.Mutex
	clipboard   Clipboard
)

// SetClipboard installs the process-wide clipboard provider.
func SetClipboard(c Clipboard) {
	clipboardMu.Lock()
	defer clipboardMu.Unlock()
	clipboard = c
}

// GetClipboard returns the installed provider, or nil.
func GetClipboard() Clipboard {
	clipboardMu.Lock()
	defer clipboardMu.Unlock()
	return clipboard
}

// CopyText writes text to the installed provider.
func CopyText(text string) error {
	c := GetClipboard()
	if c == nil {
		return ErrNoClipboard
	}
	return c.WriteText(text)
}

// MemoryClipboard is an in-process Clipboard, used by tests and as a safe
// default where no system integration exists.
type MemoryClipboard struct {
	mu   sync.Mutex
	text string
	set  bool
}

func (m *MemoryClipboard) ReadText() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.set {
		return "", ErrNoClipboard
	}
	return m.text, nil
}

func (m *MemoryClipboard) WriteText(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	m.set = true
	return nil
}
