package grpc

import (
	"context"
	"testing"
	"time"

	pb "github.com/omnicampus/survey-server/api/v1"
	"github.com/omnicampus/survey-server/internal/grpc/mocks"
	"github.com/omnicampus/survey-server/internal/schema"
	"github.com/omnicampus/survey-server/internal/service"
	"github.com/omnicampus/survey-server/internal/survey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func sampleReport() service.Report {
	return service.Report{
		ID:        7,
		Name:      "2025-06 survey",
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Categories: []survey.CategoryResult{
			{
				Category:      "講義全体",
				ResponseCount: 5,
				Labels: []survey.LabelStats{
					{
						Label:       "総合満足度",
						Question:    "本日の総合的な満足度を５段階で教えてください。 ",
						MeanScore:   4.25,
						MeanValid:   true,
						AnswerCount: 4,
						Distribution: []survey.RatingCount{
							{Rating: 1, Count: 0},
							{Rating: 2, Count: 0},
							{Rating: 3, Count: 1},
							{Rating: 4, Count: 1},
							{Rating: 5, Count: 2},
						},
					},
				},
			},
		},
	}
}

// TestNewGRPCHandlers tests the constructor
func TestNewGRPCHandlers(t *testing.T) {
	t.Run("valid parameters", func(t *testing.T) {
		mockReports := &mocks.MockReportService{}
		mockCache := &mocks.MockCacher{}
		ttl := 5 * time.Minute

		handlers := NewGRPCHandlers(mockReports, mockCache, zap.NewNop(), ttl)

		assert.NotNil(t, handlers)
		assert.Equal(t, mockReports, handlers.reports)
		assert.Equal(t, mockCache, handlers.cache)
		assert.Equal(t, ttl, handlers.cacheTTL)
		assert.NotNil(t, handlers.logger)
	})

	t.Run("nil report service panics", func(t *testing.T) {
		assert.Panics(t, func() {
			NewGRPCHandlers(nil, &mocks.MockCacher{}, zap.NewNop(), time.Minute)
		})
	})

	t.Run("zero TTL uses default", func(t *testing.T) {
		handlers := NewGRPCHandlers(&mocks.MockReportService{}, &mocks.MockCacher{}, zap.NewNop(), 0)
		assert.Equal(t, defaultCacheDuration, handlers.cacheTTL)
	})

	t.Run("negative TTL uses default", func(t *testing.T) {
		handlers := NewGRPCHandlers(&mocks.MockReportService{}, &mocks.MockCacher{}, zap.NewNop(), -time.Minute)
		assert.Equal(t, defaultCacheDuration, handlers.cacheTTL)
	})
}

// TestCreateReport tests upload handling and result mapping
func TestCreateReport(t *testing.T) {
	ctx := context.Background()

	t.Run("empty csv rejected", func(t *testing.T) {
		handlers := NewGRPCHandlers(&mocks.MockReportService{}, &mocks.MockCacher{}, zap.NewNop(), time.Minute)

		_, err := handlers.CreateReport(ctx, &pb.CreateReportRequest{Name: "survey"})

		st, ok := status.FromError(err)
		require.True(t, ok)
		assert.Equal(t, codes.InvalidArgument, st.Code())
	})

	t.Run("successful upload maps the full report", func(t *testing.T) {
		mockReports := &mocks.MockReportService{
			CreateReportFunc: func(ctx context.Context, name string, csvData []byte) (service.Report, error) {
				assert.Equal(t, "2025-06 survey", name)
				assert.NotEmpty(t, csvData)
				return sampleReport(), nil
			},
		}
		var deleted []string
		mockCache := &mocks.MockCacher{
			DeleteFunc: func(ctx context.Context, keys ...string) error {
				deleted = append(deleted, keys...)
				return nil
			},
		}

		handlers := NewGRPCHandlers(mockReports, mockCache, zap.NewNop(), time.Minute)
		resp, err := handlers.CreateReport(ctx, &pb.CreateReportRequest{
			Name:    "2025-06 survey",
			CsvData: []byte("header\n5\n"),
		})

		require.NoError(t, err)
		assert.Equal(t, int64(7), resp.GetId())
		assert.Equal(t, "2025-06 survey", resp.GetName())
		require.Len(t, resp.GetCategories(), 1)

		cat := resp.GetCategories()[0]
		assert.Equal(t, "講義全体", cat.GetCategoryName())
		assert.Equal(t, int64(5), cat.GetResponseCount())
		require.Len(t, cat.GetLabels(), 1)

		label := cat.GetLabels()[0]
		assert.Equal(t, "総合満足度", label.GetLabel())
		assert.True(t, label.GetHasMean())
		assert.InDelta(t, 4.25, label.GetMeanScore(), 1e-9)
		assert.Equal(t, int64(4), label.GetAnswerCount())
		require.Len(t, label.GetDistribution(), 5)
		assert.Equal(t, int64(3), label.GetDistribution()[2].GetRating())
		assert.Equal(t, int64(1), label.GetDistribution()[2].GetCount())

		// Creation must drop the cached listing.
		assert.Equal(t, []string{string(cacheKeyReportList)}, deleted)
	})

	t.Run("missing columns map to InvalidArgument with the full set", func(t *testing.T) {
		mockReports := &mocks.MockReportService{
			CreateReportFunc: func(ctx context.Context, name string, csvData []byte) (service.Report, error) {
				return service.Report{}, &schema.MissingColumnsError{Columns: []string{"質問A", "質問B"}}
			},
		}

		handlers := NewGRPCHandlers(mockReports, &mocks.MockCacher{}, zap.NewNop(), time.Minute)
		_, err := handlers.CreateReport(ctx, &pb.CreateReportRequest{CsvData: []byte("x\n")})

		st, ok := status.FromError(err)
		require.True(t, ok)
		assert.Equal(t, codes.InvalidArgument, st.Code())
		assert.Contains(t, st.Message(), "質問A")
		assert.Contains(t, st.Message(), "質問B")
	})

	t.Run("unreadable upload maps to InvalidArgument", func(t *testing.T) {
		mockReports := &mocks.MockReportService{
			CreateReportFunc: func(ctx context.Context, name string, csvData []byte) (service.Report, error) {
				return service.Report{}, service.ErrBadUpload
			},
		}

		handlers := NewGRPCHandlers(mockReports, &mocks.MockCacher{}, zap.NewNop(), time.Minute)
		_, err := handlers.CreateReport(ctx, &pb.CreateReportRequest{CsvData: []byte{0xff}})

		st, _ := status.FromError(err)
		assert.Equal(t, codes.InvalidArgument, st.Code())
	})

	t.Run("storage failure maps to Internal", func(t *testing.T) {
		mockReports := &mocks.MockReportService{
			CreateReportFunc: func(ctx context.Context, name string, csvData []byte) (service.Report, error) {
				return service.Report{}, service.ErrStorageFailure
			},
		}

		handlers := NewGRPCHandlers(mockReports, &mocks.MockCacher{}, zap.NewNop(), time.Minute)
		_, err := handlers.CreateReport(ctx, &pb.CreateReportRequest{CsvData: []byte("x\n")})

		st, _ := status.FromError(err)
		assert.Equal(t, codes.Internal, st.Code())
	})
}

// TestGetReport tests retrieval with the read-through cache
func TestGetReport(t *testing.T) {
	ctx := context.Background()

	t.Run("non-positive id rejected", func(t *testing.T) {
		handlers := NewGRPCHandlers(&mocks.MockReportService{}, &mocks.MockCacher{}, zap.NewNop(), time.Minute)

		_, err := handlers.GetReport(ctx, &pb.GetReportRequest{Id: 0})

		st, _ := status.FromError(err)
		assert.Equal(t, codes.InvalidArgument, st.Code())
	})

	t.Run("cache miss falls through to the service", func(t *testing.T) {
		calls := 0
		mockReports := &mocks.MockReportService{
			GetReportFunc: func(ctx context.Context, id int64) (service.Report, error) {
				calls++
				assert.Equal(t, int64(7), id)
				return sampleReport(), nil
			},
		}

		handlers := NewGRPCHandlers(mockReports, &mocks.MockCacher{}, zap.NewNop(), time.Minute)
		resp, err := handlers.GetReport(ctx, &pb.GetReportRequest{Id: 7})

		require.NoError(t, err)
		assert.Equal(t, 1, calls)
		assert.Equal(t, int64(7), resp.GetId())
	})

	t.Run("unknown report maps to NotFound", func(t *testing.T) {
		mockReports := &mocks.MockReportService{
			GetReportFunc: func(ctx context.Context, id int64) (service.Report, error) {
				return service.Report{}, service.ErrReportNotFound
			},
		}

		handlers := NewGRPCHandlers(mockReports, &mocks.MockCacher{}, zap.NewNop(), time.Minute)
		_, err := handlers.GetReport(ctx, &pb.GetReportRequest{Id: 99})

		st, _ := status.FromError(err)
		assert.Equal(t, codes.NotFound, st.Code())
	})
}

// TestListReports tests the summary listing endpoint
func TestListReports(t *testing.T) {
	ctx := context.Background()

	t.Run("maps summaries", func(t *testing.T) {
		mockReports := &mocks.MockReportService{
			ListReportsFunc: func(ctx context.Context) ([]service.ReportSummary, error) {
				return []service.ReportSummary{
					{ID: 2, Name: "second", CreatedAt: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)},
					{ID: 1, Name: "first", CreatedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
				}, nil
			},
		}

		handlers := NewGRPCHandlers(mockReports, &mocks.MockCacher{}, zap.NewNop(), time.Minute)
		resp, err := handlers.ListReports(ctx, &pb.ListReportsRequest{})

		require.NoError(t, err)
		require.Len(t, resp.GetReports(), 2)
		assert.Equal(t, int64(2), resp.GetReports()[0].GetId())
		assert.Equal(t, "first", resp.GetReports()[1].GetName())
	})

	t.Run("empty store", func(t *testing.T) {
		mockReports := &mocks.MockReportService{
			ListReportsFunc: func(ctx context.Context) ([]service.ReportSummary, error) {
				return []service.ReportSummary{}, nil
			},
		}

		handlers := NewGRPCHandlers(mockReports, &mocks.MockCacher{}, zap.NewNop(), time.Minute)
		resp, err := handlers.ListReports(ctx, &pb.ListReportsRequest{})

		require.NoError(t, err)
		assert.Empty(t, resp.GetReports())
	})

	t.Run("storage failure maps to Internal", func(t *testing.T) {
		mockReports := &mocks.MockReportService{
			ListReportsFunc: func(ctx context.Context) ([]service.ReportSummary, error) {
				return nil, service.ErrStorageFailure
			},
		}

		handlers := NewGRPCHandlers(mockReports, &mocks.MockCacher{}, zap.NewNop(), time.Minute)
		_, err := handlers.ListReports(ctx, &pb.ListReportsRequest{})

		st, _ := status.FromError(err)
		assert.Equal(t, codes.Internal, st.Code())
	})
}
