package blob

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/restorun-backoffice/internal/domain"
)

func TestPutAndDelete(t *testing.T) {
	s, err := NewDiskStore(filepath.Join(t.TempDir(), "uploads"))
	require.NoError(t, err)
	ctx := context.Background()

	path, err := s.Put(ctx, "1700000000000-menu.csv", strings.NewReader("a,b\n1,2\n"), 1024)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(s.Root, "1700000000000-menu.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,2\n", string(data))

	require.NoError(t, s.Delete(ctx, path))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// повторное удаление не ошибка
	assert.NoError(t, s.Delete(ctx, path))
}

func TestPutOverLimit(t *testing.T) {
	s, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	_, err = s.Put(context.Background(), "big.csv", strings.NewReader(strings.Repeat("x", 11)), 10)
	assert.ErrorIs(t, err, domain.ErrValidation)

	entries, err := os.ReadDir(s.Root)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestPutExactLimit(t *testing.T) {
	s, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	_, err = s.Put(context.Background(), "ok.csv", strings.NewReader(strings.Repeat("x", 10)), 10)
	assert.NoError(t, err)
}

func TestPutStripsDirectories(t *testing.T) {
	s, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	path, err := s.Put(context.Background(), "../../etc/evil.csv", strings.NewReader("x"), 0)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(s.Root, "evil.csv"), path)
}

func TestPutDuplicateName(t *testing.T) {
	s, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	_, err = s.Put(ctx, "dup.csv", strings.NewReader("1"), 0)
	require.NoError(t, err)
	_, err = s.Put(ctx, "dup.csv", strings.NewReader("2"), 0)
	assert.ErrorIs(t, err, domain.ErrConflict)
}
