// Package metadata produces the model-derived portion of an analysis:
// summary, title, topics, and sentiment. A remote extraction service is
// consulted when configured; otherwise, or whenever the remote call
// fails, a deterministic offline derivation supplies the result instead.
package metadata

import (
	"context"
	"strings"
)

const maxTopics = 3

// Sentiment is the overall emotional tone of a text.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// ParseSentiment maps raw input to a supported sentiment label,
// ignoring case and surrounding whitespace. It reports false when the
// input names no supported label.
func ParseSentiment(raw string) (Sentiment, bool) {
	switch Sentiment(strings.ToLower(strings.TrimSpace(raw))) {
	case SentimentPositive:
		return SentimentPositive, true
	case SentimentNegative:
		return SentimentNegative, true
	case SentimentNeutral:
		return SentimentNeutral, true
	default:
		return "", false
	}
}

// NormalizeSentiment maps raw input to a supported sentiment label,
// defaulting to neutral when the input names none.
func NormalizeSentiment(raw string) Sentiment {
	sentiment, ok := ParseSentiment(raw)
	if !ok {
		return SentimentNeutral
	}
	return sentiment
}

// Quality records the provenance of a metadata result.
type Quality string

const (
	// QualityAuthoritative marks a result produced by the extraction service.
	QualityAuthoritative Quality = "authoritative"

	// QualityDegraded marks a result derived offline from the text alone.
	QualityDegraded Quality = "degraded"
)

// Result carries the extracted metadata for a text along with the
// provenance of the extraction.
type Result struct {
	Summary   string
	Title     *string
	Topics    []string
	Sentiment Sentiment
	Quality   Quality
}

// Degraded reports whether the result came from the offline derivation.
func (r Result) Degraded() bool {
	return r.Quality == QualityDegraded
}

// System extracts metadata from text. Implementations do not fail: when
// extraction cannot be performed, the offline derivation is returned
// instead, marked degraded.
type System interface {
	Summarize(ctx context.Context, text string) Result
}
