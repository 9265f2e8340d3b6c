package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryClipboardRoundTrip(t *testing.T) {
	c := &MemoryClipboard{}

	_, err := c.ReadText()
	assert.ErrorIs(t, err, ErrNoClipboard)

	require.NoError(t, c.WriteText("Server=x;Database=db;"))
	text, err := c.ReadText()
	require.NoError(t, err)
	assert.Equal(t, "Server=x;Database=db;", text)
}

func TestCopyTextUsesInstalledProvider(t *testing.T) {
	prev := GetClipboard()
	defer SetClipboard(prev)

	SetClipboard(nil)
	assert.ErrorIs(t, CopyText("x"), ErrNoClipboard)

	c := &MemoryClipboard{}
	SetClipboard(c)
	require.NoError(t, CopyText("jdbc:sqlserver://h:1433;"))
	text, err := c.ReadText()
	require.NoError(t, err)
	assert.Equal(t, "jdbc:sqlserver://h:1433;", text)
}
