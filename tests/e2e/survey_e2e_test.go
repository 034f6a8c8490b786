//go:build e2e

package e2e

import (
	"context"
	"database/sql"
	"testing"
	"time"

	pb "github.com/omnicampus/survey-server/api/v1"
	handler "github.com/omnicampus/survey-server/internal/grpc"
	"github.com/omnicampus/survey-server/internal/repository"
	"github.com/omnicampus/survey-server/internal/schema"
	"github.com/omnicampus/survey-server/internal/service"
	"github.com/omnicampus/survey-server/tests/e2e/mocks"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const lectureCSV = "\"本日の総合的な満足度を５段階で教えてください。 \",親しいご友人にこの講義の受講をお薦めしますか？\n" +
	"5,5\n" +
	"4,5\n" +
	"5,4\n" +
	",4\n" +
	"3,4\n"

func lectureSchema(t *testing.T) *schema.Schema {
	t.Helper()

	s, err := schema.New([]schema.Category{
		{
			Name: "講義全体",
			Questions: []schema.Question{
				{Label: "総合満足度", Text: "本日の総合的な満足度を５段階で教えてください。 "},
				{Label: "おすすめ度", Text: "親しいご友人にこの講義の受講をお薦めしますか？"},
			},
		},
	})
	require.NoError(t, err)
	return s
}

func setupHandlers(t *testing.T, cache handler.Cacher) *handler.GRPCHandlers {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := repository.NewReportRepository(db)
	require.NoError(t, repo.Migrate(context.Background()))

	svc := service.NewSurveyService(lectureSchema(t), repo, zap.NewNop())
	return handler.NewGRPCHandlers(svc, cache, zap.NewNop(), time.Minute)
}

func TestSurveyReportLifecycle(t *testing.T) {
	ctx := context.Background()
	cache := mocks.NewTrackingCache()
	handlers := setupHandlers(t, cache)

	created, err := handlers.CreateReport(ctx, &pb.CreateReportRequest{
		Name:    "2025-06-01 講義アンケート",
		CsvData: []byte(lectureCSV),
	})
	require.NoError(t, err)
	require.Greater(t, created.GetId(), int64(0))

	t.Run("upload is aggregated per category", func(t *testing.T) {
		require.Len(t, created.GetCategories(), 1)
		cat := created.GetCategories()[0]

		assert.Equal(t, "講義全体", cat.GetCategoryName())
		assert.Equal(t, int64(5), cat.GetResponseCount())
		require.Len(t, cat.GetLabels(), 2)

		satisfaction := cat.GetLabels()[0]
		assert.Equal(t, "総合満足度", satisfaction.GetLabel())
		assert.Equal(t, int64(4), satisfaction.GetAnswerCount())
		assert.True(t, satisfaction.GetHasMean())
		assert.InDelta(t, 4.25, satisfaction.GetMeanScore(), 1e-9)

		counts := make(map[int64]int64)
		for _, rc := range satisfaction.GetDistribution() {
			counts[rc.GetRating()] = rc.GetCount()
		}
		assert.Equal(t, map[int64]int64{1: 0, 2: 0, 3: 1, 4: 1, 5: 2}, counts)

		recommend := cat.GetLabels()[1]
		assert.Equal(t, int64(5), recommend.GetAnswerCount())
		assert.InDelta(t, 4.4, recommend.GetMeanScore(), 1e-9)
	})

	t.Run("stored report is served back", func(t *testing.T) {
		resp, err := handlers.GetReport(ctx, &pb.GetReportRequest{Id: created.GetId()})
		require.NoError(t, err)
		assert.Equal(t, created.GetId(), resp.GetId())
		assert.Equal(t, "2025-06-01 講義アンケート", resp.GetName())
		require.Len(t, resp.GetCategories(), 1)

		// The read populates the cache asynchronously.
		require.Eventually(t, func() bool {
			return cache.Sets() >= 1
		}, time.Second, 10*time.Millisecond)
	})

	t.Run("second read is served from cache", func(t *testing.T) {
		before := cache.Gets()
		resp, err := handlers.GetReport(ctx, &pb.GetReportRequest{Id: created.GetId()})
		require.NoError(t, err)
		assert.Equal(t, created.GetId(), resp.GetId())
		assert.Equal(t, before+1, cache.Gets())
		require.Len(t, resp.GetCategories(), 1)
		assert.Equal(t, int64(5), resp.GetCategories()[0].GetResponseCount())
	})

	t.Run("listing shows the stored report", func(t *testing.T) {
		resp, err := handlers.ListReports(ctx, &pb.ListReportsRequest{})
		require.NoError(t, err)
		require.Len(t, resp.GetReports(), 1)
		assert.Equal(t, "2025-06-01 講義アンケート", resp.GetReports()[0].GetName())

		// Creation invalidated any cached listing.
		assert.GreaterOrEqual(t, cache.Deletes(), 1)
	})
}

func TestSurveyReportRejectsIncompleteExport(t *testing.T) {
	ctx := context.Background()
	handlers := setupHandlers(t, &mocks.InMemoryCache{})

	// The recommendation column is absent from the export.
	incomplete := "\"本日の総合的な満足度を５段階で教えてください。 \"\n5\n4\n"

	_, err := handlers.CreateReport(ctx, &pb.CreateReportRequest{
		Name:    "incomplete",
		CsvData: []byte(incomplete),
	})

	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())
	assert.Contains(t, st.Message(), "親しいご友人にこの講義の受講をお薦めしますか？")

	// Nothing was stored.
	resp, err := handlers.ListReports(ctx, &pb.ListReportsRequest{})
	require.NoError(t, err)
	assert.Empty(t, resp.GetReports())
}

func TestSurveyReportDegenerateColumn(t *testing.T) {
	ctx := context.Background()
	handlers := setupHandlers(t, &mocks.InMemoryCache{})

	// Free-text answers only in the first column: no crash, an undefined
	// mean, and an empty distribution.
	degenerate := "\"本日の総合的な満足度を５段階で教えてください。 \",親しいご友人にこの講義の受講をお薦めしますか？\n" +
		"とても良い,5\n" +
		"楽しかった,4\n"

	created, err := handlers.CreateReport(ctx, &pb.CreateReportRequest{
		Name:    "degenerate",
		CsvData: []byte(degenerate),
	})
	require.NoError(t, err)

	labels := created.GetCategories()[0].GetLabels()
	require.Len(t, labels, 2)

	assert.Equal(t, int64(0), labels[0].GetAnswerCount())
	assert.False(t, labels[0].GetHasMean())
	assert.Empty(t, labels[0].GetDistribution())

	assert.Equal(t, int64(2), labels[1].GetAnswerCount())
	assert.True(t, labels[1].GetHasMean())

	// mean(0, 2) = 1 respondent shown for the category.
	assert.Equal(t, int64(1), created.GetCategories()[0].GetResponseCount())
}
