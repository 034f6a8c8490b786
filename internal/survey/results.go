package survey

// RatingCount is one histogram bucket: how many respondents answered with the
// given rating value.
type RatingCount struct {
	Rating int
	Count  int
}

// LabelStats holds the computed statistics for one question.
//
// MeanScore is only meaningful when MeanValid is true; a question with zero
// numeric answers has no mean, and zero would read as a legitimate score.
// Distribution covers every integer rating from 1 through the maximum
// observed value, with unseen ratings present at count zero. It is empty when
// AnswerCount is zero.
type LabelStats struct {
	Label        string
	Question     string
	MeanScore    float64
	MeanValid    bool
	AnswerCount  int
	Distribution []RatingCount
}

// CategoryResult is the aggregate for one survey category.
//
// ResponseCount is the representative respondent count shown in the category
// header: the mean of the per-label answer counts, rounded half up. Questions
// within a category can have slightly different non-response rates, so the
// category shows one approximate N.
type CategoryResult struct {
	Category      string
	ResponseCount int
	Labels        []LabelStats
}
