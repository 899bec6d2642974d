package storage

import (
	"bytes"
	"context"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File["file"][0]
}

func TestDisk_SaveDeleteRoundTrip(t *testing.T) {
	d, err := NewDisk(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	path, err := d.Save(ctx, fileHeader(t, "front door.png", []byte("payload")), "property-images")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(path, "property-images/"))
	assert.True(t, strings.HasSuffix(path, ".png"))
	assert.NotContains(t, path, " ", "filenames are sanitized")
	assert.True(t, d.Exists(path))

	require.NoError(t, d.Delete(ctx, path))
	assert.False(t, d.Exists(path))
}

func TestDisk_DeleteMissing(t *testing.T) {
	d, err := NewDisk(t.TempDir())
	require.NoError(t, err)

	assert.ErrorIs(t, d.Delete(context.Background(), "property-images/nope.png"), ErrNotFound)
}

func TestDisk_UniquePathsForSameName(t *testing.T) {
	d, err := NewDisk(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	p1, err := d.Save(ctx, fileHeader(t, "a.png", []byte("one")), "ns")
	require.NoError(t, err)
	p2, err := d.Save(ctx, fileHeader(t, "a.png", []byte("two")), "ns")
	require.NoError(t, err)

	assert.NotEqual(t, p1, p2)
	assert.True(t, d.Exists(p1))
	assert.True(t, d.Exists(p2))
}

func TestDisk_SweepRemovesOrphans(t *testing.T) {
	d, err := NewDisk(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	kept, err := d.Save(ctx, fileHeader(t, "kept.png", []byte("kept")), "ns")
	require.NoError(t, err)
	orphan, err := d.Save(ctx, fileHeader(t, "orphan.png", []byte("orphan")), "ns")
	require.NoError(t, err)

	removed, err := d.Sweep(ctx, "ns", []string{kept})
	require.NoError(t, err)

	assert.Equal(t, 1, removed)
	assert.True(t, d.Exists(kept))
	assert.False(t, d.Exists(orphan))
}

func TestDisk_SweepMissingNamespace(t *testing.T) {
	d, err := NewDisk(t.TempDir())
	require.NoError(t, err)

	removed, err := d.Sweep(context.Background(), "empty-ns", nil)
	require.NoError(t, err)
	assert.Zero(t, removed)
}
