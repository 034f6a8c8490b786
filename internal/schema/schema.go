// Package schema defines the survey schema: the fixed category → question
// mapping that joins short display labels to the verbatim column headers of
// the uploaded export.
package schema

import (
	"fmt"
	"sort"
	"strings"
)

// Question pairs a short display label with the full, verbatim survey prompt.
// Text is the join key against the uploaded table's column headers, so it
// must match the export exactly, whitespace and embedded newlines included.
type Question struct {
	Label string
	Text  string
}

// Category is one survey section with its ordered questions.
type Category struct {
	Name      string
	Questions []Question
}

// Schema is the ordered list of survey categories. Construct with New so the
// label/question invariants hold before any aggregation runs.
type Schema struct {
	categories []Category
}

// New builds a Schema and rejects configurations that would make the
// label ↔ question mapping ambiguous: duplicate labels within a category
// (the rename step must be a bijection) or duplicate question texts anywhere
// (they are column names in the source table).
func New(categories []Category) (*Schema, error) {
	if len(categories) == 0 {
		return nil, fmt.Errorf("schema must define at least one category")
	}

	seenTexts := make(map[string]string)
	for _, cat := range categories {
		if cat.Name == "" {
			return nil, fmt.Errorf("schema contains a category with an empty name")
		}
		if len(cat.Questions) == 0 {
			return nil, fmt.Errorf("category %q defines no questions", cat.Name)
		}

		seenLabels := make(map[string]bool, len(cat.Questions))
		for _, q := range cat.Questions {
			if q.Label == "" || q.Text == "" {
				return nil, fmt.Errorf("category %q contains a question with an empty label or text", cat.Name)
			}
			if seenLabels[q.Label] {
				return nil, fmt.Errorf("category %q defines duplicate label %q", cat.Name, q.Label)
			}
			seenLabels[q.Label] = true

			if other, ok := seenTexts[q.Text]; ok {
				return nil, fmt.Errorf("question text %q appears in both %q and %q", q.Text, other, cat.Name)
			}
			seenTexts[q.Text] = cat.Name
		}
	}

	out := make([]Category, len(categories))
	copy(out, categories)
	return &Schema{categories: out}, nil
}

// Categories returns the categories in definition order.
func (s *Schema) Categories() []Category {
	return s.categories
}

// QuestionTexts returns every question text in the schema, in definition order.
func (s *Schema) QuestionTexts() []string {
	var texts []string
	for _, cat := range s.categories {
		for _, q := range cat.Questions {
			texts = append(texts, q.Text)
		}
	}
	return texts
}

// MissingColumnsError reports every schema question text absent from an
// input table. Validation collects the full set before failing so the caller
// can surface one complete listing.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Columns, ", "))
}

// Validate checks that columns covers every question text in the schema.
// It returns a MissingColumnsError listing all absent columns, never just the
// first one. A nil return means the table can be aggregated.
func (s *Schema) Validate(columns []string) error {
	present := make(map[string]bool, len(columns))
	for _, c := range columns {
		present[c] = true
	}

	var missing []string
	for _, cat := range s.categories {
		for _, q := range cat.Questions {
			if !present[q.Text] {
				missing = append(missing, q.Text)
			}
		}
	}
	if len(missing) == 0 {
		return nil
	}

	sort.Strings(missing)
	return &MissingColumnsError{Columns: missing}
}

// Default returns the lecture-survey schema matching the Omnicampus CSV
// export. The question texts carry the export's exact headers, trailing
// spaces and embedded newlines included.
func Default() *Schema {
	s, err := New([]Category{
		{
			Name: "講義全体",
			Questions: []Question{
				{Label: "総合満足度", Text: "本日の総合的な満足度を５段階で教えてください。 "},
				{Label: "おすすめ度", Text: "親しいご友人にこの講義の受講をお薦めしますか？"},
			},
		},
		{
			Name: "講義内容",
			Questions: []Question{
				{Label: "学習量", Text: "本日の講義内容について５段階で教えてください。 \n学習量は適切だった"},
				{Label: "理解度", Text: "本日の講義内容について５段階で教えてください。 \n講義内容が十分に理解できた"},
				{Label: "アナウンス", Text: "本日の講義内容について５段階で教えてください。 \n運営側のアナウンスが適切だった"},
			},
		},
		{
			Name: "講師",
			Questions: []Question{
				{Label: "総合満足度", Text: "本日の講師の総合的な満足度を５段階で教えてください。"},
				{Label: "時間活用", Text: "本日の講師について５段階で教えてください。\n授業時間を効率的に使っていた"},
				{Label: "質問対応", Text: "本日の講師について５段階で教えてください。\n質問に丁寧に対応してくれた"},
				{Label: "話し方", Text: "本日の講師について５段階で教えてください。\n話し方や声の大きさが適切だった"},
			},
		},
		{
			Name: "自分自身",
			Questions: []Question{
				{Label: "予習", Text: "ご自身について５段階で教えてください。\n事前に予習をした"},
				{Label: "意欲", Text: "ご自身について５段階で教えてください。\n意欲をもって講義に臨んだ"},
				{Label: "今後の活用", Text: "ご自身について５段階で教えてください。\n今回学んだことを学習や研究に生かせる"},
			},
		},
	})
	if err != nil {
		// The default schema is a compile-time constant; a construction
		// failure is a programming error.
		panic(err)
	}
	return s
}
