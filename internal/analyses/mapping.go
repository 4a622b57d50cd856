package analyses

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/PRagan/gleaner/pkg/query"
	"github.com/PRagan/gleaner/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "analyses", "a").
	Project("id", "ID").
	Project("text", "Text").
	Project("summary", "Summary").
	Project("title", "Title").
	Project("topics", "Topics").
	Project("sentiment", "Sentiment").
	Project("keywords", "Keywords").
	Project("confidence", "Confidence").
	Project("created_at", "CreatedAt")

var defaultSort = query.SortField{
	Field:      "CreatedAt",
	Descending: true,
}

// insertionOrder sorts by the monotonic id, oldest first.
var insertionOrder = query.SortField{
	Field: "ID",
}

// Filters contains optional filtering criteria for listing queries.
// Nil fields are ignored. Sentiment uses exact matching. Topic and
// keyword constraints are the search matcher's concern, not a listing
// filter.
type Filters struct {
	Sentiment *string `json:"sentiment,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.WhereEquals("Sentiment", f.Sentiment)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if s := values.Get("sentiment"); s != "" {
		f.Sentiment = &s
	}

	return f
}

func scanAnalysis(s repository.Scanner) (Analysis, error) {
	var a Analysis
	var topicsRaw, keywordsRaw []byte

	err := s.Scan(
		&a.ID,
		&a.Text,
		&a.Summary,
		&a.Title,
		&topicsRaw,
		&a.Sentiment,
		&keywordsRaw,
		&a.Confidence,
		&a.CreatedAt,
	)

	if err != nil {
		return a, err
	}

	if len(topicsRaw) > 0 {
		if err := json.Unmarshal(topicsRaw, &a.Topics); err != nil {
			return a, fmt.Errorf("unmarshal topics: %w", err)
		}
	}

	if a.Topics == nil {
		a.Topics = []string{}
	}

	if len(keywordsRaw) > 0 {
		if err := json.Unmarshal(keywordsRaw, &a.Keywords); err != nil {
			return a, fmt.Errorf("unmarshal keywords: %w", err)
		}
	}

	if a.Keywords == nil {
		a.Keywords = []string{}
	}

	return a, nil
}

func scanTermCount(s repository.Scanner) (TermCount, error) {
	var tc TermCount
	err := s.Scan(&tc.Term, &tc.Count)
	return tc, err
}
