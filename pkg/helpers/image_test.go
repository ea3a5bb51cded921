package helpers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeImage(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pic.png"), []byte("fake png bytes"), 0o644))

	got, err := EncodeImage(dir, "pic.png")
	require.NoError(t, err)
	assert.Equal(t, "ZmFrZSBwbmcgYnl0ZXM=", got)
}

func TestEncodeImageMissingFile(t *testing.T) {
	_, err := EncodeImage(t.TempDir(), "nope.png")
	require.Error(t, err)
}
