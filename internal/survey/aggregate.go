// Package survey implements the aggregation core: projecting schema columns
// out of an uploaded table, coercing free-form cells to numeric ratings, and
// computing per-question means and answer-count histograms.
package survey

import (
	"math"
	"strconv"
	"strings"

	"github.com/omnicampus/survey-server/internal/schema"
)

// parseRating coerces one raw cell to a rating. Anything that does not parse
// as a finite number is "no answer": skipped questions, free text, and
// malformed cells are routine in survey exports and are absorbed silently.
// Values whose integer bucket falls below 1 are off the rating scale and are
// treated the same way, so the histogram always conserves the answer count.
func parseRating(cell string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	if bucket(v) < 1 {
		return 0, false
	}
	return v, true
}

// bucket maps a coerced rating onto its histogram key. Ratings are nominally
// integral; a fractional value counts toward its floor.
func bucket(v float64) int {
	return int(math.Floor(v))
}

// aggregateLabel reduces one projected column to its statistics.
func aggregateLabel(label, question string, cells []string) LabelStats {
	var (
		sum       float64
		count     int
		maxBucket int
		counts    = make(map[int]int)
	)

	for _, cell := range cells {
		v, ok := parseRating(cell)
		if !ok {
			continue
		}
		sum += v
		count++

		b := bucket(v)
		counts[b]++
		if b > maxBucket {
			maxBucket = b
		}
	}

	stats := LabelStats{
		Label:       label,
		Question:    question,
		AnswerCount: count,
	}
	if count == 0 {
		return stats
	}

	stats.MeanScore = sum / float64(count)
	stats.MeanValid = true

	stats.Distribution = make([]RatingCount, 0, maxBucket)
	for r := 1; r <= maxBucket; r++ {
		stats.Distribution = append(stats.Distribution, RatingCount{Rating: r, Count: counts[r]})
	}
	return stats
}

// roundHalfUp rounds to the nearest integer with .5 rounding up, the rule
// used for the category response count.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// AggregateCategory computes the statistics for one category against the
// table. The table must already have been validated against the schema; a
// question column that is nevertheless absent yields an error from the
// projection step.
//
// The function is pure: identical inputs produce identical results, and the
// table is never modified.
func AggregateCategory(cat schema.Category, t *Table) (CategoryResult, error) {
	projected, err := t.Select(cat.Questions)
	if err != nil {
		return CategoryResult{}, err
	}

	result := CategoryResult{
		Category: cat.Name,
		Labels:   make([]LabelStats, 0, len(cat.Questions)),
	}

	var countSum int
	for _, q := range cat.Questions {
		cells, _ := projected.Column(q.Label)
		stats := aggregateLabel(q.Label, q.Text, cells)
		countSum += stats.AnswerCount
		result.Labels = append(result.Labels, stats)
	}

	if len(result.Labels) > 0 {
		result.ResponseCount = roundHalfUp(float64(countSum) / float64(len(result.Labels)))
	}
	return result, nil
}

// Aggregate validates the table against the schema and computes every
// category's result in schema order. A validation failure is fatal to the
// whole run: no partial results are produced and the returned error lists
// every missing column.
func Aggregate(s *schema.Schema, t *Table) ([]CategoryResult, error) {
	if err := s.Validate(t.Columns()); err != nil {
		return nil, err
	}

	categories := s.Categories()
	results := make([]CategoryResult, 0, len(categories))
	for _, cat := range categories {
		result, err := AggregateCategory(cat, t)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}
