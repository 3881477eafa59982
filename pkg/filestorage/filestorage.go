package filestorage

import (
	"context"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// FileStorageInterface stores an uploaded file and returns the URL it is served from.
type FileStorageInterface interface {
	Save(ctx context.Context, fileHeader *multipart.FileHeader, mimeType string) (url string, err error)
}

// PlaceholderStorage keeps no bytes: photos resolve to a fixed placeholder
// image and videos to a unique name under the video base URL.
type PlaceholderStorage struct {
	photoURL     string
	videoBaseURL string
}

func NewPlaceholderStorage(photoURL, videoBaseURL string) FileStorageInterface {
	return &PlaceholderStorage{
		photoURL:     photoURL,
		videoBaseURL: strings.TrimRight(videoBaseURL, "/"),
	}
}

func (s *PlaceholderStorage) Save(ctx context.Context, fileHeader *multipart.FileHeader, mimeType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if strings.HasPrefix(mimeType, "video/") {
		return s.videoBaseURL + "/" + uuid.NewString() + strings.ToLower(filepath.Ext(fileHeader.Filename)), nil
	}
	return s.photoURL, nil
}
