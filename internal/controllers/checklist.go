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

type ChecklistController struct {
	checklistService services.ChecklistServiceInterface
	logger           *zap.Logger
}

func NewChecklistController(service services.ChecklistServiceInterface, logger *zap.Logger) *ChecklistController {
	return &ChecklistController{
		checklistService: service,
		logger:           logger,
	}
}

func (c *ChecklistController) GetChecklists(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	res, err := c.checklistService.GetChecklists(ctx.Request().Context(), filter)
	if err != nil {
		c.logger.Error("GetChecklists: failed to list checklists", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res.List, "Lista de inspeções obtida com sucesso", http.StatusOK, res.TotalCount)
}

func (c *ChecklistController) FindChecklist(ctx echo.Context) error {
	res, err := c.checklistService.FindChecklist(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Inspeção encontrada", http.StatusOK)
}

// SubmitChecklist records an inspection. The response carries the new equipment
// status and the maintenance call opened for it, if any.
func (c *ChecklistController) SubmitChecklist(ctx echo.Context) error {
	var payload dto.CreateChecklistDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("SubmitChecklist: bind failed", zap.Error(err))
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Formato de dados inválido no corpo da requisição", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		c.logger.Warn("SubmitChecklist: validation failed", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.checklistService.Submit(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("SubmitChecklist: submission failed", zap.String("equipment_id", payload.EquipmentID), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Inspeção registrada com sucesso", http.StatusCreated)
}
