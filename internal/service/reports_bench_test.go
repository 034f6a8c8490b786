package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"testing"

	"github.com/omnicampus/survey-server/internal/repository"
	"github.com/omnicampus/survey-server/internal/schema"
	dbbuilder "github.com/omnicampus/survey-server/pkg/database"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

func setupRealRepo(tb testing.TB) *repository.ReportRepository {
	tb.Helper()

	db, err := dbbuilder.New(
		dbbuilder.WithDriver("sqlite3"),
		dbbuilder.WithDataSource(":memory:"),
		dbbuilder.WithMaxOpenConns(1),
	)
	if err != nil {
		tb.Fatalf("failed to create db pool via builder: %v", err)
	}
	tb.Cleanup(func() { db.Close() })

	repo := repository.NewReportRepository(db)
	if err := repo.Migrate(context.Background()); err != nil {
		tb.Fatalf("failed to migrate: %v", err)
	}
	return repo
}

// benchCSV builds an export matching the default schema with rows respondents.
func benchCSV(tb testing.TB, rows int) []byte {
	tb.Helper()

	texts := schema.Default().QuestionTexts()

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(texts); err != nil {
		tb.Fatalf("write header: %v", err)
	}
	for i := 0; i < rows; i++ {
		record := make([]string, len(texts))
		for j := range record {
			record[j] = fmt.Sprintf("%d", (i+j)%5+1)
		}
		if err := w.Write(record); err != nil {
			tb.Fatalf("write row: %v", err)
		}
	}
	w.Flush()
	return buf.Bytes()
}

func BenchmarkCreateReport(b *testing.B) {
	repo := setupRealRepo(b)
	svc := NewSurveyService(schema.Default(), repo, zap.NewNop())
	data := benchCSV(b, 200)

	b.ReportAllocs()

	for b.Loop() {
		_, _ = svc.CreateReport(context.Background(), "bench", data)
	}
}
