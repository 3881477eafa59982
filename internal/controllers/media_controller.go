package controllers

import (
	"net/http"

	"gym-maintenance/internal/services"
	apperrors "gym-maintenance/pkg/errors"
	"gym-maintenance/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type MediaController struct {
	mediaService services.MediaServiceInterface
	logger       *zap.Logger
}

func NewMediaController(mediaService services.MediaServiceInterface, logger *zap.Logger) *MediaController {
	return &MediaController{mediaService: mediaService, logger: logger}
}

// Upload takes the multipart "files" field for the upload context in the path.
func (ctrl *MediaController) Upload(c echo.Context) error {
	uploadContext := c.Param("context")

	form, err := c.MultipartForm()
	if err != nil {
		return utils.ErrorResponse(c,
			apperrors.NewHttpError(
				http.StatusBadRequest,
				"Nenhum arquivo foi enviado",
				err,
				map[string]interface{}{"context": uploadContext},
			),
			ctrl.logger,
		)
	}

	res, err := ctrl.mediaService.Upload(c.Request().Context(), uploadContext, form.File["files"])
	if err != nil {
		ctrl.logger.Warn("Upload: rejected", zap.String("context", uploadContext), zap.Error(err))
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	return utils.SuccessResponse(c, res, "Arquivos enviados com sucesso", http.StatusCreated)
}
