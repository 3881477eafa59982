package services

import (
	"context"
	"mime/multipart"
	"net/http"

	"gym-maintenance/config"
	"gym-maintenance/internal/authz"
	"gym-maintenance/internal/dto"
	apperrors "gym-maintenance/pkg/errors"
	"gym-maintenance/pkg/filestorage"
	"gym-maintenance/pkg/utils"

	"go.uber.org/zap"
)

type MediaServiceInterface interface {
	Upload(ctx context.Context, contextName string, files []*multipart.FileHeader) (*dto.MediaUploadResponseDTO, error)
}

type MediaService struct {
	fileStorage filestorage.FileStorageInterface
	logger      *zap.Logger
}

func NewMediaService(fileStorage filestorage.FileStorageInterface, logger *zap.Logger) MediaServiceInterface {
	return &MediaService{fileStorage: fileStorage, logger: logger}
}

// Upload validates every file against the rules of contextName before any URL
// is issued; one invalid file rejects the whole batch.
func (s *MediaService) Upload(ctx context.Context, contextName string, files []*multipart.FileHeader) (*dto.MediaUploadResponseDTO, error) {
	authContext, err := authorize(ctx, authz.MediaUpload)
	if err != nil {
		return nil, err
	}
	rules, ok := config.UploadContexts[contextName]
	if !ok {
		return nil, apperrors.NewInvalidInputError("contexto de upload desconhecido: %s", contextName)
	}
	if len(files) == 0 {
		return nil, apperrors.NewInvalidInputError("nenhum arquivo enviado")
	}
	if rules.MaxFiles > 0 && len(files) > rules.MaxFiles {
		return nil, apperrors.NewInvalidInputError("no máximo %d arquivos por envio", rules.MaxFiles)
	}

	mimeTypes := make([]string, len(files))
	for i, fileHeader := range files {
		mimeType, err := s.detect(fileHeader, contextName)
		if err != nil {
			return nil, err
		}
		mimeTypes[i] = mimeType
	}

	urls := make([]string, 0, len(files))
	for i, fileHeader := range files {
		url, err := s.fileStorage.Save(ctx, fileHeader, mimeTypes[i])
		if err != nil {
			s.logger.Error("media save failed", zap.String("file", fileHeader.Filename), zap.Error(err))
			return nil, err
		}
		urls = append(urls, url)
	}

	s.logger.Info("media uploaded",
		zap.String("context", contextName),
		zap.Int("files", len(urls)),
		zap.String("user_id", authContext.Actor.ID),
	)
	return &dto.MediaUploadResponseDTO{Context: contextName, URLs: urls}, nil
}

func (s *MediaService) detect(fileHeader *multipart.FileHeader, contextName string) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", apperrors.NewHttpError(http.StatusBadRequest, "Não foi possível abrir o arquivo", err, map[string]interface{}{"file": fileHeader.Filename})
	}
	defer file.Close()
	return utils.ValidateFile(fileHeader, file, contextName)
}
