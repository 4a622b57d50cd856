// Package analyses implements the analysis domain for Gleaner.
// It provides types, data access, and business logic for analyzing raw
// text, persisting the results, and matching stored results against
// search criteria.
package analyses

import (
	"time"

	"github.com/PRagan/gleaner/internal/metadata"
)

// Analysis represents one analyzed text with its derived metadata.
// Records are immutable once stored; ID and CreatedAt are assigned
// on insert and are zero on an unsaved result.
type Analysis struct {
	ID         int64              `json:"id"`
	Text       string             `json:"text"`
	Summary    string             `json:"summary"`
	Title      *string            `json:"title"`
	Topics     []string           `json:"topics"`
	Sentiment  metadata.Sentiment `json:"sentiment"`
	Keywords   []string           `json:"keywords"`
	Confidence float64            `json:"confidence"`
	CreatedAt  time.Time          `json:"created_at"`
}

// AnalyzeCommand carries the input text for a new analysis.
type AnalyzeCommand struct {
	Text string `json:"text"`
}

// Stats aggregates the stored analyses.
type Stats struct {
	Total       int                        `json:"total"`
	LastWeek    int                        `json:"last_week"`
	Sentiments  map[metadata.Sentiment]int `json:"sentiments"`
	TopTopics   []TermCount                `json:"top_topics"`
	TopKeywords []TermCount                `json:"top_keywords"`
}

// TermCount pairs a topic or keyword with its usage count.
type TermCount struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}
