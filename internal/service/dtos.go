package service

import (
	"time"

	"github.com/omnicampus/survey-server/internal/survey"
)

// Report is one completed aggregation run: the stored identity plus every
// category result computed from the upload.
type Report struct {
	ID         int64
	Name       string
	CreatedAt  time.Time
	Categories []survey.CategoryResult
}

// ReportSummary identifies a stored report without its results.
type ReportSummary struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}
