package models

import (
	"time"

	"github.com/omnicampus/survey-server/internal/survey"
)

// ReportSummary identifies one stored aggregation run.
type ReportSummary struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}

// StoredReport is a fully reconstructed aggregation run: the summary row plus
// every category result computed when the upload was processed. Reports are
// immutable once stored.
type StoredReport struct {
	ID         int64
	Name       string
	CreatedAt  time.Time
	Categories []survey.CategoryResult
}
