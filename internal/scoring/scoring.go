// Package scoring derives a confidence score for an analysis from
// observable properties of its inputs and outputs. The score is a
// heuristic, not a probability: longer inputs and richer metadata raise
// it, and results produced without the extraction service are capped.
package scoring

import "strings"

const (
	lengthWeight     = 0.30
	lengthSaturation = 100

	titleWeight   = 0.15
	topicWeight   = 0.15
	keywordWeight = 0.10

	maxTopics   = 3
	maxKeywords = 3

	authoritativeWeight = 0.30
	degradedWeight      = 0.10
	degradedCeiling     = 0.50
)

// Signals describes the outcome of an analysis in plain values so the
// scorer stays decoupled from how the metadata was produced.
type Signals struct {
	TitlePresent bool
	TopicCount   int
	KeywordCount int
	Degraded     bool
}

// Score computes a confidence value in [0, 1] for an analysis of text
// that produced the given signals. The score is monotonic in every
// signal, and only a fully populated result from the extraction service
// reaches 1.0.
func Score(text string, s Signals) float64 {
	words := float64(len(strings.Fields(text)))

	score := lengthWeight * min(words, lengthSaturation) / lengthSaturation
	if s.TitlePresent {
		score += titleWeight
	}
	score += topicWeight * min(float64(s.TopicCount), maxTopics) / maxTopics
	score += keywordWeight * min(float64(s.KeywordCount), maxKeywords) / maxKeywords

	if s.Degraded {
		score += degradedWeight
		score = min(score, degradedCeiling)
	} else {
		score += authoritativeWeight
	}

	return min(max(score, 0), 1)
}
