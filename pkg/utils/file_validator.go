package utils

import (
	"io"
	"mime/multipart"
	"net/http"
	"slices"

	"gym-maintenance/config"
	apperrors "gym-maintenance/pkg/errors"
)

// ValidateFile checks size and sniffed content type of an upload against the
// rules of contextName and returns the detected mime type.
func ValidateFile(fileHeader *multipart.FileHeader, file io.ReadSeeker, contextName string) (string, error) {
	rules, ok := config.UploadContexts[contextName]
	if !ok {
		return "", apperrors.NewInvalidInputError("contexto de upload desconhecido: %s", contextName)
	}

	if rules.MaxSizeMB > 0 {
		maxSizeBytes := rules.MaxSizeMB * 1024 * 1024
		if fileHeader.Size > maxSizeBytes {
			return "", apperrors.NewInvalidInputError("o arquivo %s (%d KB) excede o limite de %d MB", fileHeader.Filename, fileHeader.Size/1024, rules.MaxSizeMB)
		}
	}

	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return "", apperrors.NewInvalidInputError("não foi possível ler o arquivo %s", fileHeader.Filename)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", apperrors.NewInvalidInputError("não foi possível reposicionar o arquivo %s", fileHeader.Filename)
	}

	mimeType := http.DetectContentType(buffer[:n])
	if !slices.Contains(rules.AllowedMimeTypes, mimeType) {
		return "", apperrors.NewInvalidInputError("tipo de arquivo não permitido: %s", mimeType)
	}

	return mimeType, nil
}
