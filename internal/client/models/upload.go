package models

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// MaxImageSize is the largest image the client will attempt to upload.
const MaxImageSize = 5 * 1024 * 1024

var (
	ErrNotAnImage    = errors.New("file is not an image")
	ErrImageTooLarge = errors.New("image exceeds 5MB")
	ErrEmptyUpload   = errors.New("no file selected")
)

// Upload is a file picked for the next mutating call.
type Upload struct {
	Name        string
	ContentType string
	Size        int64
	Data        []byte
}

// NewUpload builds an Upload from memory. The declared content type may be
// empty, in which case Validate sniffs the bytes.
func NewUpload(name, contentType string, data []byte) Upload {
	return Upload{Name: name, ContentType: contentType, Size: int64(len(data)), Data: data}
}

// OpenUpload reads a file from disk, refusing anything above MaxImageSize
// without reading it in full.
func OpenUpload(path string) (Upload, error) {
	f, err := os.Open(path)
	if err != nil {
		return Upload{}, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return Upload{}, err
	}
	if fi.Size() > MaxImageSize {
		mt, err := mimetype.DetectReader(f)
		if err != nil {
			return Upload{}, fmt.Errorf("sniff %s: %w", path, err)
		}
		return Upload{Name: filepath.Base(path), ContentType: mt.String(), Size: fi.Size()}, nil
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return Upload{}, fmt.Errorf("read %s: %w", path, err)
	}
	return NewUpload(filepath.Base(path), mimetype.Detect(data).String(), data), nil
}

// MediaType returns the declared type, or the sniffed one when none was
// declared.
func (u Upload) MediaType() string {
	if u.ContentType != "" {
		return u.ContentType
	}
	if len(u.Data) == 0 {
		return ""
	}
	return mimetype.Detect(u.Data).String()
}

// Validate applies the client-side image checks. The backend remains the
// authority; this only saves a round trip.
func (u Upload) Validate() error {
	if u.Name == "" && u.Size == 0 {
		return ErrEmptyUpload
	}
	if !strings.HasPrefix(u.MediaType(), "image/") {
		return ErrNotAnImage
	}
	if u.Size > MaxImageSize {
		return ErrImageTooLarge
	}
	return nil
}
