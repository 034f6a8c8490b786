package grpc

import (
	"context"
	"time"

	"github.com/omnicampus/survey-server/internal/service"
)

// Cacher defines the interface for cache operations.
type Cacher interface {
	Close() error
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

type ReportService interface {
	CreateReport(ctx context.Context, name string, csvData []byte) (service.Report, error)
	GetReport(ctx context.Context, id int64) (service.Report, error)
	ListReports(ctx context.Context) ([]service.ReportSummary, error)
}
