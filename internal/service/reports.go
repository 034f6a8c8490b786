package service

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/omnicampus/survey-server/internal/ingest"
	"github.com/omnicampus/survey-server/internal/schema"
	"github.com/omnicampus/survey-server/internal/survey"
)

const (
	dbTimeout = 1 * time.Second

	// previewRows is how many leading rows of an upload are logged for
	// debugging a misaligned export.
	previewRows = 5
)

// SurveyService turns uploaded CSV exports into stored survey reports and
// serves previously stored ones.
type SurveyService struct {
	schema  *schema.Schema
	storage ReportRepository
	logger  *zap.Logger
}

// NewSurveyService creates a new SurveyService instance.
func NewSurveyService(s *schema.Schema, storage ReportRepository, logger *zap.Logger) *SurveyService {
	if s == nil {
		panic("schema must not be nil")
	}
	if storage == nil {
		panic("storage must not be nil")
	}
	if logger == nil {
		l, _ := zap.NewProduction()
		logger = l
	}
	return &SurveyService{
		schema:  s,
		storage: storage,
		logger:  logger,
	}
}

var (
	ErrBadUpload      = errors.New("unreadable upload")
	ErrReportNotFound = errors.New("report not found")
	ErrStorageFailure = errors.New("storage failure")
)

// CreateReport parses the uploaded CSV, validates it against the schema,
// aggregates every category, and stores the run as an immutable report.
//
// A schema validation failure is returned as a *schema.MissingColumnsError
// listing every absent column; no partial report is stored. Cell-level
// anomalies never surface here: unparseable answers are absorbed into the
// statistics as non-answers.
func (s *SurveyService) CreateReport(ctx context.Context, name string, csvData []byte) (Report, error) {
	table, err := ingest.ReadTable(bytes.NewReader(csvData))
	if err != nil {
		return Report{}, fmt.Errorf("%w: %v", ErrBadUpload, err)
	}
	s.logger.Debug("upload parsed",
		zap.String("name", name),
		zap.Int("rows", table.RowCount()),
		zap.Any("head", table.Head(previewRows)))

	results, err := survey.Aggregate(s.schema, table)
	if err != nil {
		var missing *schema.MissingColumnsError
		if errors.As(err, &missing) {
			s.logger.Warn("upload rejected, columns missing",
				zap.String("name", name),
				zap.Strings("columns", missing.Columns))
			return Report{}, err
		}
		return Report{}, fmt.Errorf("aggregate %q: %w", name, err)
	}

	createdAt := time.Now().UTC()

	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	id, err := s.storage.SaveReport(dbCtx, name, createdAt, results)
	if err != nil {
		return Report{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	s.logger.Info("report created",
		zap.Int64("id", id),
		zap.String("name", name),
		zap.Int("rows", table.RowCount()),
		zap.Int("categories", len(results)))

	return Report{
		ID:         id,
		Name:       name,
		CreatedAt:  createdAt,
		Categories: results,
	}, nil
}

// GetReport fetches one stored report by id.
func (s *SurveyService) GetReport(ctx context.Context, id int64) (Report, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	stored, err := s.storage.GetReport(dbCtx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Report{}, ErrReportNotFound
		}
		return Report{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	return Report{
		ID:         stored.ID,
		Name:       stored.Name,
		CreatedAt:  stored.CreatedAt,
		Categories: stored.Categories,
	}, nil
}

// ListReports returns summaries of every stored report, newest first. An
// empty store yields an empty list, not an error.
func (s *SurveyService) ListReports(ctx context.Context) ([]ReportSummary, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	rows, err := s.storage.ListReports(dbCtx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	out := make([]ReportSummary, 0, len(rows))
	for _, r := range rows {
		out = append(out, ReportSummary{
			ID:        r.ID,
			Name:      r.Name,
			CreatedAt: r.CreatedAt,
		})
	}
	return out, nil
}
