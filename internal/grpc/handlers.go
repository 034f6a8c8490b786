package grpc

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	pb "github.com/omnicampus/survey-server/api/v1"
	"github.com/omnicampus/survey-server/internal/schema"
	"github.com/omnicampus/survey-server/internal/service"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const (
	defaultCacheDuration = 10 * time.Minute
	defaultGRPCTimeout   = 10 * time.Second
)

type CacheKeyType string

const (
	cacheKeyReport     CacheKeyType = "grpc:report"
	cacheKeyReportList CacheKeyType = "grpc:report_list"
)

type GRPCHandlers struct {
	pb.UnimplementedSurveyReportsServer
	reports  ReportService
	cache    Cacher
	logger   *zap.Logger
	sfGroup  singleflight.Group
	cacheTTL time.Duration
}

// NewGRPCHandlers initializes the gRPC handlers.
func NewGRPCHandlers(reports ReportService, cache Cacher, logger *zap.Logger, ttl time.Duration) *GRPCHandlers {
	if reports == nil {
		panic("nil ReportService provided to NewGRPCHandlers")
	}
	if ttl <= 0 {
		ttl = defaultCacheDuration
	}
	return &GRPCHandlers{
		reports:  reports,
		cache:    cache,
		logger:   logger.Named("grpc-handler"),
		cacheTTL: ttl,
	}
}

func reportKey(id int64) string {
	return fmt.Sprintf("%s:%d", cacheKeyReport, id)
}

func (s *GRPCHandlers) handleError(ctx context.Context, op string, err error) error {
	switch ctx.Err() {
	case context.Canceled:
		s.logger.Warn("request canceled", zap.String("op", op))
		return status.Error(codes.Canceled, "request canceled")
	case context.DeadlineExceeded:
		s.logger.Warn("request timeout", zap.String("op", op))
		return status.Error(codes.DeadlineExceeded, "request timed out")
	}

	var missing *schema.MissingColumnsError
	switch {
	case errors.As(err, &missing):
		s.logger.Info("upload missing required columns",
			zap.String("op", op),
			zap.Strings("columns", missing.Columns))
		return status.Errorf(codes.InvalidArgument, "missing required columns: %s", strings.Join(missing.Columns, ", "))
	case errors.Is(err, service.ErrBadUpload):
		s.logger.Info("unreadable upload", zap.String("op", op), zap.Error(err))
		return status.Error(codes.InvalidArgument, "uploaded file is not a readable CSV table")
	case errors.Is(err, service.ErrReportNotFound):
		s.logger.Info("report not found", zap.String("op", op))
		return status.Error(codes.NotFound, "report not found")
	case errors.Is(err, service.ErrStorageFailure):
		s.logger.Error("storage failure", zap.String("op", op), zap.Error(err))
		return status.Error(codes.Internal, "database error")
	default:
		s.logger.Error("unexpected error", zap.String("op", op), zap.Error(err))
		return status.Errorf(codes.Internal, "%s failed: %v", op, err)
	}
}

func (s *GRPCHandlers) CreateReport(ctx context.Context, req *pb.CreateReportRequest) (*pb.ReportResponse, error) {
	if len(req.GetCsvData()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "csv_data is required")
	}
	name := req.GetName()
	if name == "" {
		name = "survey"
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	report, err := s.reports.CreateReport(ctx, name, req.GetCsvData())
	if err != nil {
		return nil, s.handleError(ctx, "CreateReport", err)
	}

	// The list of stored reports just changed; drop the cached listing so
	// readers see the new report immediately.
	if s.cache != nil {
		if err := s.cache.Delete(ctx, string(cacheKeyReportList)); err != nil {
			s.logger.Warn("failed to invalidate report list cache", zap.Error(err))
		}
	}

	return mapToProtoReport(report), nil
}

func (s *GRPCHandlers) GetReport(ctx context.Context, req *pb.GetReportRequest) (*pb.ReportResponse, error) {
	if req.GetId() <= 0 {
		return nil, status.Error(codes.InvalidArgument, "id must be positive")
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	cacheKey := reportKey(req.GetId())

	report, err := FindAndCache(ctx, s.cache, &s.sfGroup, cacheKey, s.cacheTTL, s.logger, func(fetchCtx context.Context) (service.Report, error) {
		return s.reports.GetReport(fetchCtx, req.GetId())
	})
	if err != nil {
		return nil, s.handleError(ctx, "GetReport", err)
	}

	return mapToProtoReport(report), nil
}

func (s *GRPCHandlers) ListReports(ctx context.Context, req *pb.ListReportsRequest) (*pb.ListReportsResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	summaries, err := FindAndCache(ctx, s.cache, &s.sfGroup, string(cacheKeyReportList), s.cacheTTL, s.logger, func(fetchCtx context.Context) ([]service.ReportSummary, error) {
		return s.reports.ListReports(fetchCtx)
	})
	if err != nil {
		return nil, s.handleError(ctx, "ListReports", err)
	}

	pbReports := make([]*pb.ReportSummary, len(summaries))
	for i, r := range summaries {
		pbReports[i] = &pb.ReportSummary{
			Id:        r.ID,
			Name:      r.Name,
			CreatedAt: timestamppb.New(r.CreatedAt),
		}
	}

	return &pb.ListReportsResponse{Reports: pbReports}, nil
}

func mapToProtoReport(report service.Report) *pb.ReportResponse {
	categories := make([]*pb.CategoryResult, len(report.Categories))
	for i, cat := range report.Categories {
		labels := make([]*pb.LabelStats, len(cat.Labels))
		for j, stats := range cat.Labels {
			dist := make([]*pb.RatingCount, len(stats.Distribution))
			for k, rc := range stats.Distribution {
				dist[k] = &pb.RatingCount{
					Rating: int64(rc.Rating),
					Count:  int64(rc.Count),
				}
			}
			labels[j] = &pb.LabelStats{
				Label:        stats.Label,
				Question:     stats.Question,
				MeanScore:    stats.MeanScore,
				HasMean:      stats.MeanValid,
				AnswerCount:  int64(stats.AnswerCount),
				Distribution: dist,
			}
		}
		categories[i] = &pb.CategoryResult{
			CategoryName:  cat.Category,
			ResponseCount: int64(cat.ResponseCount),
			Labels:        labels,
		}
	}

	return &pb.ReportResponse{
		Id:         report.ID,
		Name:       report.Name,
		CreatedAt:  timestamppb.New(report.CreatedAt),
		Categories: categories,
	}
}
