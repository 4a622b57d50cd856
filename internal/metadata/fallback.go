package metadata

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	verbatimWordLimit = 20
	excerptWordCount  = 15
	titleRuneLimit    = 80
	minTopicLength    = 3
)

// derive produces metadata from the text alone. The derivation is
// deterministic: the same text always yields the same result.
func derive(text string) Result {
	return Result{
		Summary:   deriveSummary(text),
		Title:     deriveTitle(text),
		Topics:    deriveTopics(text),
		Sentiment: SentimentNeutral,
		Quality:   QualityDegraded,
	}
}

// deriveSummary returns short texts whole and excerpts the opening
// words of longer ones.
func deriveSummary(text string) string {
	words := strings.Fields(text)
	if len(words) <= verbatimWordLimit {
		return strings.TrimSpace(text)
	}

	return strings.Join(words[:excerptWordCount], " ") + "..."
}

// deriveTitle uses the first non-empty line when it is short enough to
// plausibly be one.
func deriveTitle(text string) *string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if utf8.RuneCountInString(line) <= titleRuneLimit {
			return &line
		}
		return nil
	}

	return nil
}

// deriveTopics collects up to three distinct words capitalized somewhere
// other than the start of a sentence, a rough proxy for named subjects.
func deriveTopics(text string) []string {
	topics := make([]string, 0, maxTopics)
	seen := make(map[string]struct{})

	sentenceStart := true
	for _, tok := range strings.Fields(text) {
		start := sentenceStart
		sentenceStart = strings.ContainsAny(tok, ".!?")

		word := trimNonLetters(tok)
		if word == "" || start {
			continue
		}
		if utf8.RuneCountInString(word) < minTopicLength {
			continue
		}

		r, _ := utf8.DecodeRuneInString(word)
		if !unicode.IsUpper(r) {
			continue
		}

		key := strings.ToLower(word)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		topics = append(topics, word)
		if len(topics) == maxTopics {
			break
		}
	}

	return topics
}

func trimNonLetters(tok string) string {
	return strings.TrimFunc(tok, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
}
