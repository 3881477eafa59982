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

type UnitController struct {
	unitService services.UnitServiceInterface
	logger      *zap.Logger
}

func NewUnitController(service services.UnitServiceInterface, logger *zap.Logger) *UnitController {
	return &UnitController{
		unitService: service,
		logger:      logger,
	}
}

func (c *UnitController) GetUnits(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	res, err := c.unitService.GetUnits(ctx.Request().Context(), filter)
	if err != nil {
		c.logger.Error("GetUnits: failed to list units", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res.List, "Lista de unidades obtida com sucesso", http.StatusOK, res.TotalCount)
}

func (c *UnitController) FindUnit(ctx echo.Context) error {
	res, err := c.unitService.FindUnit(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Unidade encontrada", http.StatusOK)
}

func (c *UnitController) CreateUnit(ctx echo.Context) error {
	var payload dto.CreateUnitDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("CreateUnit: bind failed", zap.Error(err))
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Formato de dados inválido no corpo da requisição", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.unitService.CreateUnit(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("CreateUnit: failed to create unit", zap.Any("payload", payload), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Unidade criada com sucesso", http.StatusCreated)
}

func (c *UnitController) UpdateUnit(ctx echo.Context) error {
	id := ctx.Param("id")

	var payload dto.UpdateUnitDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("UpdateUnit: bind failed", zap.Error(err))
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Formato de dados inválido no corpo da requisição", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.unitService.UpdateUnit(ctx.Request().Context(), id, payload)
	if err != nil {
		c.logger.Error("UpdateUnit: failed to update unit", zap.String("id", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Unidade atualizada com sucesso", http.StatusOK)
}

func (c *UnitController) DeleteUnit(ctx echo.Context) error {
	id := ctx.Param("id")
	if err := c.unitService.DeleteUnit(ctx.Request().Context(), id); err != nil {
		c.logger.Error("DeleteUnit: failed to delete unit", zap.String("id", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, struct{}{}, "Unidade removida com sucesso", http.StatusOK)
}
