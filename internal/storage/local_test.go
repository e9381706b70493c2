package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_SaveAndDelete(t *testing.T) {
	t.Parallel()

	l, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	content := []byte("fake image bytes")
	err = l.Save(context.Background(), "plant-1-abc.png", strings.NewReader(string(content)), int64(len(content)), "image/png")
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(l.Dir, "plant-1-abc.png"))
	require.NoError(t, err)
	assert.Equal(t, content, got)

	require.NoError(t, l.Delete(context.Background(), "plant-1-abc.png"))

	_, err = os.Stat(filepath.Join(l.Dir, "plant-1-abc.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStore_DeleteMissingIsNoop(t *testing.T) {
	t.Parallel()

	l, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, l.Delete(context.Background(), "never-existed.png"))
}

func TestLocalStore_SaveStripsTraversal(t *testing.T) {
	t.Parallel()

	l, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	err = l.Save(context.Background(), "../../etc/evil.png", strings.NewReader("x"), 1, "image/png")
	require.NoError(t, err)

	// The file lands inside the store, not two directories up
	_, err = os.Stat(filepath.Join(l.Dir, "evil.png"))
	assert.NoError(t, err)
}

func TestMakeName(t *testing.T) {
	t.Parallel()

	name := MakeName("plant", "My Photo.JPG")

	assert.True(t, strings.HasPrefix(name, "plant-"))
	assert.True(t, strings.HasSuffix(name, ".jpg"))
	assert.NotContains(t, name, " ")

	// Collision resistance comes from the random suffix
	assert.NotEqual(t, name, MakeName("plant", "My Photo.JPG"))
}

func TestMakeName_NoExtension(t *testing.T) {
	t.Parallel()

	name := MakeName("avatar", "photo")

	assert.True(t, strings.HasPrefix(name, "avatar-"))
	assert.False(t, strings.Contains(name, "."))
}
