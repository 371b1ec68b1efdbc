// internal/form/image.go
package form

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const DefaultMaxImageSize = 5 << 20

var (
	ErrImageTooLarge = errors.New("image exceeds maximum size")
	ErrNotAnImage    = errors.New("file is not an image")
	ErrEmptyImage    = errors.New("image file is empty")
)

// ImageStore turns an uploaded image into the string the shop API stores in
// the entity's image field.
type ImageStore interface {
	Put(ctx context.Context, filename string, r io.Reader) (string, error)
}

// Image is an uploaded file that passed size and type checks.
type Image struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ReadImage reads at most maxSize bytes and sniffs the content type from the
// bytes themselves, ignoring the file extension.
func ReadImage(filename string, r io.Reader, maxSize int64) (*Image, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrEmptyImage
	}
	if int64(len(data)) > maxSize {
		return nil, fmt.Errorf("%w: limit is %d bytes", ErrImageTooLarge, maxSize)
	}

	mime := mimetype.Detect(data)
	if !strings.HasPrefix(mime.String(), "image/") {
		return nil, fmt.Errorf("%w: %s is %s", ErrNotAnImage, filename, mime.String())
	}

	return &Image{
		Filename:    filename,
		ContentType: mime.String(),
		Data:        data,
	}, nil
}

// DataURL renders the image as an RFC 2397 data URL.
func (i *Image) DataURL() string {
	return "data:" + i.ContentType + ";base64," + base64.StdEncoding.EncodeToString(i.Data)
}

// DataURLStore embeds images directly in the entity as data URLs.
type DataURLStore struct {
	maxSize int64
}

func NewDataURLStore(maxSize int64) *DataURLStore {
	if maxSize <= 0 {
		maxSize = DefaultMaxImageSize
	}
	return &DataURLStore{maxSize: maxSize}
}

func (s *DataURLStore) Put(ctx context.Context, filename string, r io.Reader) (string, error) {
	img, err := ReadImage(filename, r, s.maxSize)
	if err != nil {
		return "", err
	}
	return img.DataURL(), nil
}
