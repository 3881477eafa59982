package controllers

import (
	"net/http"
	"strings"
	"time"

	"gym-maintenance/internal/reports"
	"gym-maintenance/internal/services"
	apperrors "gym-maintenance/pkg/errors"
	"gym-maintenance/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	clock         func() time.Time
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, clock func() time.Time, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, clock: clock, logger: logger}
}

func (c *ReportController) GetReport(ctx echo.Context) error {
	kind := ctx.Param("kind")
	format := strings.ToLower(ctx.QueryParam("format"))
	c.logger.Debug("report requested",
		zap.String("kind", kind),
		zap.String("format", format),
		zap.String("unit_id", ctx.QueryParam("unit_id")),
	)

	if format != "" && format != "json" && format != "csv" {
		return utils.ErrorResponse(ctx, apperrors.NewInvalidInputError("formato de relatório não suportado: %s", format), c.logger)
	}

	report, err := c.reportService.BuildReport(
		ctx.Request().Context(),
		kind,
		ctx.QueryParam("unit_id"),
		ctx.QueryParam("date_from"),
		ctx.QueryParam("date_to"),
	)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if format == "csv" {
		return c.respondWithCSV(ctx, report)
	}
	return utils.SuccessResponse(ctx, report, "Relatório gerado com sucesso", http.StatusOK)
}

func (c *ReportController) respondWithCSV(ctx echo.Context, report *reports.Report) error {
	fileName := reports.FileName(report.Kind, utils.FormatDate(c.clock()))

	res := ctx.Response()
	res.Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	res.Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	res.WriteHeader(http.StatusOK)

	if err := reports.WriteCSV(res, *report); err != nil {
		c.logger.Error("report CSV write failed", zap.String("file", fileName), zap.Error(err))
		return err
	}
	return nil
}
