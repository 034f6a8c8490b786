package mocks

import (
	"context"
	"errors"

	"github.com/omnicampus/survey-server/internal/service"
)

// MockReportService is a mock implementation of the ReportService interface
// for testing the handler layer.
type MockReportService struct {
	CreateReportFunc func(ctx context.Context, name string, csvData []byte) (service.Report, error)
	GetReportFunc    func(ctx context.Context, id int64) (service.Report, error)
	ListReportsFunc  func(ctx context.Context) ([]service.ReportSummary, error)
}

// CreateReport implements the ReportService interface
func (m *MockReportService) CreateReport(ctx context.Context, name string, csvData []byte) (service.Report, error) {
	if m.CreateReportFunc != nil {
		return m.CreateReportFunc(ctx, name, csvData)
	}
	return service.Report{}, errors.New("CreateReportFunc not implemented")
}

// GetReport implements the ReportService interface
func (m *MockReportService) GetReport(ctx context.Context, id int64) (service.Report, error) {
	if m.GetReportFunc != nil {
		return m.GetReportFunc(ctx, id)
	}
	return service.Report{}, errors.New("GetReportFunc not implemented")
}

// ListReports implements the ReportService interface
func (m *MockReportService) ListReports(ctx context.Context) ([]service.ReportSummary, error) {
	if m.ListReportsFunc != nil {
		return m.ListReportsFunc(ctx)
	}
	return nil, errors.New("ListReportsFunc not implemented")
}
