package mocks

import (
	"context"
	"errors"
	"time"

	"github.com/omnicampus/survey-server/internal/repository/models"
	"github.com/omnicampus/survey-server/internal/survey"
)

// MockReportRepository is a mock implementation of the ReportRepository
// interface for testing the service layer.
type MockReportRepository struct {
	SaveReportFunc  func(ctx context.Context, name string, createdAt time.Time, categories []survey.CategoryResult) (int64, error)
	GetReportFunc   func(ctx context.Context, id int64) (models.StoredReport, error)
	ListReportsFunc func(ctx context.Context) ([]models.ReportSummary, error)
}

// SaveReport implements the ReportRepository interface
func (m *MockReportRepository) SaveReport(ctx context.Context, name string, createdAt time.Time, categories []survey.CategoryResult) (int64, error) {
	if m.SaveReportFunc != nil {
		return m.SaveReportFunc(ctx, name, createdAt, categories)
	}
	return 0, errors.New("SaveReportFunc not implemented")
}

// GetReport implements the ReportRepository interface
func (m *MockReportRepository) GetReport(ctx context.Context, id int64) (models.StoredReport, error) {
	if m.GetReportFunc != nil {
		return m.GetReportFunc(ctx, id)
	}
	return models.StoredReport{}, errors.New("GetReportFunc not implemented")
}

// ListReports implements the ReportRepository interface
func (m *MockReportRepository) ListReports(ctx context.Context) ([]models.ReportSummary, error) {
	if m.ListReportsFunc != nil {
		return m.ListReportsFunc(ctx)
	}
	return nil, errors.New("ListReportsFunc not implemented")
}
