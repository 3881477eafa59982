package services

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"gym-maintenance/internal/entities"
	"gym-maintenance/internal/repositories"
	apperrors "gym-maintenance/pkg/errors"
	"gym-maintenance/pkg/filestorage"
	"gym-maintenance/pkg/websocket"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNotificationService(t *testing.T) {
	storage := newFixtureStorage(t)
	pusher := &recordingPusher{}
	svc := NewNotificationService(repositories.NewNotificationRepository(storage), pusher, zap.NewNop())

	require.NoError(t, svc.Notify(actorCtx(adminUser), "2", entities.NotificationInfo, "Chamado Técnico Criado", "Chamado de manutenção criado para Remo"))
	require.NoError(t, svc.Notify(actorCtx(adminUser), "1", entities.NotificationInfo, "Outro", "Outro"))

	msgs := pusher.To("2")
	require.Len(t, msgs, 2)
	assert.Equal(t, websocket.TypeNotification, msgs[0].messageType)
	assert.Equal(t, websocket.TypeUnreadCount, msgs[1].messageType)
	assert.Equal(t, map[string]int{"unread": 1}, msgs[1].payload)

	feed, err := svc.GetNotifications(actorCtx(technicianUser))
	require.NoError(t, err)
	require.Len(t, feed.Items, 1)
	assert.Equal(t, 1, feed.Unread)

	_, err = svc.MarkRead(actorCtx(inspectorUser), feed.Items[0].ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	read, err := svc.MarkRead(actorCtx(technicianUser), feed.Items[0].ID)
	require.NoError(t, err)
	assert.True(t, read.Read)

	feed, err = svc.GetNotifications(actorCtx(technicianUser))
	require.NoError(t, err)
	assert.Equal(t, 0, feed.Unread)
}

// multipartFiles builds the file headers a multipart form with the given
// file contents would produce.
func multipartFiles(t *testing.T, files map[string][]byte) []*multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for name, content := range files {
		part, err := w.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["files"]
}

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func TestMediaUpload(t *testing.T) {
	svc := NewMediaService(filestorage.NewPlaceholderStorage("https://img.example/placeholder.jpg", "/media/videos"), zap.NewNop())

	res, err := svc.Upload(actorCtx(inspectorUser), "checklist_photo", multipartFiles(t, map[string][]byte{"a.png": pngHeader}))
	require.NoError(t, err)
	assert.Equal(t, []string{"https://img.example/placeholder.jpg"}, res.URLs)

	var inputErr *apperrors.InvalidInputError
	_, err = svc.Upload(actorCtx(inspectorUser), "checklist_photo", multipartFiles(t, map[string][]byte{"a.txt": []byte("just text")}))
	assert.ErrorAs(t, err, &inputErr)

	_, err = svc.Upload(actorCtx(inspectorUser), "avatar", multipartFiles(t, map[string][]byte{"a.png": pngHeader}))
	assert.ErrorAs(t, err, &inputErr)

	_, err = svc.Upload(actorCtx(inspectorUser), "checklist_photo", nil)
	assert.ErrorAs(t, err, &inputErr)
}
