package services

import (
	"context"
	"strings"
	"time"

	"gym-maintenance/internal/authz"
	"gym-maintenance/internal/query"
	"gym-maintenance/internal/reports"
	"gym-maintenance/internal/repositories"
	apperrors "gym-maintenance/pkg/errors"

	"go.uber.org/zap"
)

// defaultReportDays is the period used when the request names no dates.
const defaultReportDays = 30

type ReportServiceInterface interface {
	BuildReport(ctx context.Context, kind, unitID, dateFrom, dateTo string) (*reports.Report, error)
}

type ReportService struct {
	storage *repositories.Storage
	clock   func() time.Time
	logger  *zap.Logger
}

func NewReportService(storage *repositories.Storage, clock func() time.Time, logger *zap.Logger) ReportServiceInterface {
	return &ReportService{storage: storage, clock: clock, logger: logger}
}

func (s *ReportService) BuildReport(ctx context.Context, kind, unitID, dateFrom, dateTo string) (*reports.Report, error) {
	authContext, err := authorize(ctx, authz.ReportsView)
	if err != nil {
		return nil, err
	}
	reportKind, err := reports.ParseKind(kind)
	if err != nil {
		return nil, err
	}

	period := query.LastDays(s.clock(), defaultReportDays)
	if strings.TrimSpace(dateFrom) != "" || strings.TrimSpace(dateTo) != "" {
		period, err = query.NewDateRange(dateFrom, dateTo)
		if err != nil {
			return nil, apperrors.NewInvalidInputError("período inválido, use o formato AAAA-MM-DD")
		}
	}

	snap := s.storage.Snapshot()
	report, err := reports.Build(reportKind, reports.Source{
		Units:      snap.Units,
		Equipments: snap.Equipments,
		Calls:      snap.Calls,
		Checklists: snap.Checklists,
	}, reports.Params{
		UnitID: unitID,
		Period: period,
		Scope:  scopeOf(authContext),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("report generated",
		zap.String("kind", string(reportKind)),
		zap.String("unit_id", unitID),
		zap.Int("rows", len(report.Rows)),
		zap.String("user_id", authContext.Actor.ID),
	)
	return &report, nil
}
