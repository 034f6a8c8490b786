package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/omnicampus/survey-server/internal/repository/models"
	"github.com/omnicampus/survey-server/internal/survey"
)

type ReportRepository struct {
	db *sql.DB
}

func NewReportRepository(db *sql.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// Migrate creates the report tables if they do not exist. mean_score is NULL
// for labels with zero numeric answers; an undefined mean must survive the
// round trip as undefined, not as zero.
func (r *ReportRepository) Migrate(ctx context.Context) error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS reports (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			created_at TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS category_results (
			report_id INTEGER NOT NULL,
			position INTEGER NOT NULL,
			name TEXT NOT NULL,
			response_count INTEGER NOT NULL,
			PRIMARY KEY (report_id, position),
			FOREIGN KEY (report_id) REFERENCES reports(id)
		);
		CREATE TABLE IF NOT EXISTS label_stats (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			report_id INTEGER NOT NULL,
			category_position INTEGER NOT NULL,
			position INTEGER NOT NULL,
			label TEXT NOT NULL,
			question TEXT NOT NULL,
			mean_score REAL,
			answer_count INTEGER NOT NULL,
			FOREIGN KEY (report_id) REFERENCES reports(id)
		);
		CREATE TABLE IF NOT EXISTS rating_counts (
			label_stats_id INTEGER NOT NULL,
			rating INTEGER NOT NULL,
			count INTEGER NOT NULL,
			PRIMARY KEY (label_stats_id, rating),
			FOREIGN KEY (label_stats_id) REFERENCES label_stats(id)
		);
	`
	if _, err := r.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("migrate report tables: %w", err)
	}
	return nil
}

// SaveReport stores one aggregation run in a single transaction and returns
// the new report id.
func (r *ReportRepository) SaveReport(ctx context.Context, name string, createdAt time.Time, categories []survey.CategoryResult) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin SaveReport tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO reports (name, created_at) VALUES (?, ?)`,
		name, createdAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("insert report: %w", err)
	}
	reportID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("report id: %w", err)
	}

	for ci, cat := range categories {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO category_results (report_id, position, name, response_count) VALUES (?, ?, ?, ?)`,
			reportID, ci, cat.Category, cat.ResponseCount,
		)
		if err != nil {
			return 0, fmt.Errorf("insert category %q: %w", cat.Category, err)
		}

		for li, stats := range cat.Labels {
			mean := sql.NullFloat64{Float64: stats.MeanScore, Valid: stats.MeanValid}
			res, err := tx.ExecContext(ctx,
				`INSERT INTO label_stats (report_id, category_position, position, label, question, mean_score, answer_count)
				 VALUES (?, ?, ?, ?, ?, ?, ?)`,
				reportID, ci, li, stats.Label, stats.Question, mean, stats.AnswerCount,
			)
			if err != nil {
				return 0, fmt.Errorf("insert label %q: %w", stats.Label, err)
			}
			statsID, err := res.LastInsertId()
			if err != nil {
				return 0, fmt.Errorf("label stats id: %w", err)
			}

			for _, rc := range stats.Distribution {
				_, err := tx.ExecContext(ctx,
					`INSERT INTO rating_counts (label_stats_id, rating, count) VALUES (?, ?, ?)`,
					statsID, rc.Rating, rc.Count,
				)
				if err != nil {
					return 0, fmt.Errorf("insert rating count for %q: %w", stats.Label, err)
				}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit SaveReport tx: %w", err)
	}
	return reportID, nil
}

// GetReport reconstructs one stored report. It returns sql.ErrNoRows when the
// id is unknown; the service layer maps that to its not-found sentinel.
func (r *ReportRepository) GetReport(ctx context.Context, id int64) (models.StoredReport, error) {
	var (
		report    models.StoredReport
		createdAt string
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM reports WHERE id = ?`, id,
	).Scan(&report.ID, &report.Name, &createdAt)
	if err != nil {
		return models.StoredReport{}, fmt.Errorf("query report %d: %w", id, err)
	}
	report.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.StoredReport{}, fmt.Errorf("parse report %d created_at: %w", id, err)
	}

	report.Categories, err = r.loadCategories(ctx, id)
	if err != nil {
		return models.StoredReport{}, err
	}
	return report, nil
}

func (r *ReportRepository) loadCategories(ctx context.Context, reportID int64) ([]survey.CategoryResult, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT position, name, response_count FROM category_results WHERE report_id = ? ORDER BY position`,
		reportID,
	)
	if err != nil {
		return nil, fmt.Errorf("query categories for report %d: %w", reportID, err)
	}
	defer rows.Close()

	var categories []survey.CategoryResult
	var positions []int
	for rows.Next() {
		var pos int
		var cat survey.CategoryResult
		if err := rows.Scan(&pos, &cat.Category, &cat.ResponseCount); err != nil {
			return nil, fmt.Errorf("scan category row: %w", err)
		}
		positions = append(positions, pos)
		categories = append(categories, cat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}

	for i, pos := range positions {
		labels, err := r.loadLabelStats(ctx, reportID, pos)
		if err != nil {
			return nil, err
		}
		categories[i].Labels = labels
	}
	return categories, nil
}

func (r *ReportRepository) loadLabelStats(ctx context.Context, reportID int64, categoryPos int) ([]survey.LabelStats, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, label, question, mean_score, answer_count
		 FROM label_stats WHERE report_id = ? AND category_position = ? ORDER BY position`,
		reportID, categoryPos,
	)
	if err != nil {
		return nil, fmt.Errorf("query label stats: %w", err)
	}
	defer rows.Close()

	var labels []survey.LabelStats
	var statsIDs []int64
	for rows.Next() {
		var (
			statsID int64
			stats   survey.LabelStats
			mean    sql.NullFloat64
		)
		if err := rows.Scan(&statsID, &stats.Label, &stats.Question, &mean, &stats.AnswerCount); err != nil {
			return nil, fmt.Errorf("scan label stats row: %w", err)
		}
		stats.MeanScore = mean.Float64
		stats.MeanValid = mean.Valid
		statsIDs = append(statsIDs, statsID)
		labels = append(labels, stats)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate label stats: %w", err)
	}

	for i, statsID := range statsIDs {
		dist, err := r.loadDistribution(ctx, statsID)
		if err != nil {
			return nil, err
		}
		labels[i].Distribution = dist
	}
	return labels, nil
}

func (r *ReportRepository) loadDistribution(ctx context.Context, statsID int64) ([]survey.RatingCount, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT rating, count FROM rating_counts WHERE label_stats_id = ? ORDER BY rating`,
		statsID,
	)
	if err != nil {
		return nil, fmt.Errorf("query rating counts: %w", err)
	}
	defer rows.Close()

	var dist []survey.RatingCount
	for rows.Next() {
		var rc survey.RatingCount
		if err := rows.Scan(&rc.Rating, &rc.Count); err != nil {
			return nil, fmt.Errorf("scan rating count row: %w", err)
		}
		dist = append(dist, rc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rating counts: %w", err)
	}
	return dist, nil
}

// ListReports returns summaries of every stored report, newest first.
func (r *ReportRepository) ListReports(ctx context.Context) ([]models.ReportSummary, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, created_at FROM reports ORDER BY id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("query ListReports: %w", err)
	}
	defer rows.Close()

	var results []models.ReportSummary
	for rows.Next() {
		var (
			summary   models.ReportSummary
			createdAt string
		)
		if err := rows.Scan(&summary.ID, &summary.Name, &createdAt); err != nil {
			return nil, fmt.Errorf("scan ListReports row: %w", err)
		}
		summary.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		results = append(results, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ListReports: %w", err)
	}
	return results, nil
}
