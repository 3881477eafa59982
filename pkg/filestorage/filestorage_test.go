package filestorage

import (
	"context"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceholderStorage(t *testing.T) {
	s := NewPlaceholderStorage("https://img.example/p.jpg", "/media/videos/")
	ctx := context.Background()

	url, err := s.Save(ctx, &multipart.FileHeader{Filename: "foto.PNG"}, "image/png")
	require.NoError(t, err)
	assert.Equal(t, "https://img.example/p.jpg", url)

	first, err := s.Save(ctx, &multipart.FileHeader{Filename: "clip.MP4"}, "video/mp4")
	require.NoError(t, err)
	second, err := s.Save(ctx, &multipart.FileHeader{Filename: "clip.mp4"}, "video/mp4")
	require.NoError(t, err)
	assert.Regexp(t, `^/media/videos/[0-9a-f-]{36}\.mp4$`, first)
	assert.NotEqual(t, first, second)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = s.Save(cancelled, &multipart.FileHeader{Filename: "x.mp4"}, "video/mp4")
	assert.ErrorIs(t, err, context.Canceled)
}
