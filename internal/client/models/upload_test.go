package models

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func pngOfSize(n int) []byte {
	b := make([]byte, n)
	copy(b, pngHeader)
	return b
}

func TestUpload_Validate(t *testing.T) {
	tests := []struct {
		name string
		up   Upload
		want error
	}{
		{name: "2MB png", up: NewUpload("a.png", "image/png", pngOfSize(2*1024*1024))},
		{name: "exactly 5MB", up: NewUpload("a.png", "image/png", pngOfSize(MaxImageSize))},
		{name: "6MB png", up: NewUpload("big.png", "image/png", pngOfSize(6*1024*1024)), want: ErrImageTooLarge},
		{name: "declared pdf", up: NewUpload("doc.pdf", "application/pdf", []byte("%PDF-1.4")), want: ErrNotAnImage},
		{name: "sniffed png", up: NewUpload("noext", "", pngOfSize(64))},
		{name: "sniffed text", up: NewUpload("notes", "", []byte("hello there")), want: ErrNotAnImage},
		{name: "nothing selected", up: Upload{}, want: ErrEmptyUpload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.up.Validate()
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestOpenUpload(t *testing.T) {
	dir := t.TempDir()

	small := filepath.Join(dir, "avatar.png")
	require.NoError(t, os.WriteFile(small, pngOfSize(1024), 0o600))

	up, err := OpenUpload(small)
	require.NoError(t, err)
	assert.Equal(t, "avatar.png", up.Name)
	assert.Equal(t, "image/png", up.ContentType)
	assert.Equal(t, int64(1024), up.Size)
	assert.Len(t, up.Data, 1024)
	require.NoError(t, up.Validate())

	big := filepath.Join(dir, "huge.png")
	require.NoError(t, os.WriteFile(big, pngOfSize(6*1024*1024), 0o600))

	up, err = OpenUpload(big)
	require.NoError(t, err)
	assert.Nil(t, up.Data)
	assert.Equal(t, "image/png", up.ContentType)
	require.ErrorIs(t, up.Validate(), ErrImageTooLarge)

	_, err = OpenUpload(filepath.Join(dir, "missing.png"))
	require.Error(t, err)
}
