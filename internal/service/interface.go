package service

import (
	"context"
	"time"

	"github.com/omnicampus/survey-server/internal/repository/models"
	"github.com/omnicampus/survey-server/internal/survey"
)

// ReportRepository defines the interface for database operations for service.
type ReportRepository interface {
	SaveReport(ctx context.Context, name string, createdAt time.Time, categories []survey.CategoryResult) (int64, error)
	GetReport(ctx context.Context, id int64) (models.StoredReport, error)
	ListReports(ctx context.Context) ([]models.ReportSummary, error)
}
