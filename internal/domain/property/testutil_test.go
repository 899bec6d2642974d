package property

import (
	"bytes"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	pngBytes  = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}
	jpegBytes = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0, 0, 0, 0}
	gifBytes  = []byte("GIF89a\x00\x00\x00\x00")
)

// fileHeader builds a real *multipart.FileHeader from raw content by
// writing and re-reading a multipart body.
func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("images[]", name)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File["images[]"]
	require.Len(t, files, 1)
	return files[0]
}

func validCreateRequest() *CreatePropertyRequest {
	price := 300000.0
	bedrooms, bathrooms, sqm := 3, 2, 120
	return &CreatePropertyRequest{
		Title:       "Family House",
		Description: "A house with a garden.",
		Price:       &price,
		Bedrooms:    &bedrooms,
		Bathrooms:   &bathrooms,
		SquareMeter: &sqm,
		Address:     "12 Oak Lane",
		City:        "Austin",
		State:       "TX",
		Zip:         "73301",
		Type:        TypeHouse,
		Status:      StatusForSale,
	}
}
