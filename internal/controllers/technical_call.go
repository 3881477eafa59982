package controllers

import (
	"net/http"

	"gym-maintenance/internal/dto"
	"gym-maintenance/internal/services"
	apperrors "gym-maintenance/pkg/errors"
	"gym-maintenance/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type TechnicalCallController struct {
	callService services.TechnicalCallServiceInterface
	logger      *zap.Logger
}

func NewTechnicalCallController(service services.TechnicalCallServiceInterface, logger *zap.Logger) *TechnicalCallController {
	return &TechnicalCallController{
		callService: service,
		logger:      logger,
	}
}

func (c *TechnicalCallController) GetCalls(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	res, err := c.callService.GetCalls(ctx.Request().Context(), filter)
	if err != nil {
		c.logger.Error("GetCalls: failed to list technical calls", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res.List, "Lista de chamados obtida com sucesso", http.StatusOK, res.TotalCount)
}

func (c *TechnicalCallController) FindCall(ctx echo.Context) error {
	res, err := c.callService.FindCall(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Chamado encontrado", http.StatusOK)
}

func (c *TechnicalCallController) CreateCall(ctx echo.Context) error {
	var payload dto.CreateTechnicalCallDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("CreateCall: bind failed", zap.Error(err))
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Formato de dados inválido no corpo da requisição", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		c.logger.Warn("CreateCall: validation failed", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.callService.CreateCall(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("CreateCall: failed to open technical call", zap.Any("payload", payload), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Chamado técnico criado com sucesso", http.StatusCreated)
}

func (c *TechnicalCallController) UpdateCall(ctx echo.Context) error {
	id := ctx.Param("id")

	var payload dto.UpdateTechnicalCallDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("UpdateCall: bind failed", zap.Error(err))
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Formato de dados inválido no corpo da requisição", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		c.logger.Warn("UpdateCall: validation failed", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.callService.UpdateCall(ctx.Request().Context(), id, payload)
	if err != nil {
		c.logger.Error("UpdateCall: failed to update technical call", zap.String("id", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Chamado atualizado com sucesso", http.StatusOK)
}
