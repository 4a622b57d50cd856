// Package keywords implements manual keyword extraction: the most frequent
// noun tokens in a text. It never consults a language model, so its output
// is independently verifiable and fully deterministic.
package keywords

import (
	"log/slog"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jdkato/prose/v2"
	snowballeng "github.com/kljensen/snowball/english"
)

const minTokenLength = 3

// Extractor selects the most frequent nouns from raw text using
// part-of-speech tagging, with a heuristic fallback when tagging fails.
type Extractor struct {
	logger *slog.Logger
}

// NewExtractor creates an Extractor.
func NewExtractor(logger *slog.Logger) *Extractor {
	return &Extractor{
		logger: logger.With("system", "keywords"),
	}
}

// Extract returns up to limit keywords ordered by descending frequency,
// ties broken by first occurrence in the text. Empty or all-stopword
// input yields an empty slice, never an error.
func (e *Extractor) Extract(text string, limit int) []string {
	if limit < 1 || strings.TrimSpace(text) == "" {
		return []string{}
	}

	nouns, err := tagNouns(text)
	if err != nil {
		e.logger.Warn("tagging unavailable, using heuristic fallback", "error", err)
		return rankFallback(text, limit)
	}

	return rankNouns(nouns, limit)
}

// tagNouns tokenizes and part-of-speech tags the text, returning the
// lowercased noun tokens (NN, NNS, NNP, NNPS) in occurrence order.
func tagNouns(text string) ([]string, error) {
	doc, err := prose.NewDocument(
		text,
		prose.WithExtraction(false),
		prose.WithSegmentation(false),
	)
	if err != nil {
		return nil, err
	}

	nouns := make([]string, 0)
	for _, tok := range doc.Tokens() {
		if !strings.HasPrefix(tok.Tag, "NN") {
			continue
		}

		word := strings.ToLower(tok.Text)
		if !candidate(word) {
			continue
		}

		nouns = append(nouns, word)
	}

	return nouns, nil
}

// candidate filters out stopwords, short tokens, and anything non-alphabetic.
func candidate(word string) bool {
	if utf8.RuneCountInString(word) < minTokenLength {
		return false
	}
	if _, stop := englishStopwords[word]; stop {
		return false
	}
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// rankNouns counts nouns grouped by Snowball stem so inflected forms tally
// together, then ranks by descending count with ties broken by first
// occurrence. The reported keyword is the first surface form seen for
// its stem.
func rankNouns(nouns []string, limit int) []string {
	type entry struct {
		surface string
		count   int
		first   int
	}

	byStem := make(map[string]*entry)
	ranked := make([]*entry, 0)

	for i, noun := range nouns {
		stem := snowballeng.Stem(noun, false)
		if e, ok := byStem[stem]; ok {
			e.count++
			continue
		}

		e := &entry{surface: noun, count: 1, first: i}
		byStem[stem] = e
		ranked = append(ranked, e)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].first < ranked[j].first
	})

	keywords := make([]string, 0, limit)
	for _, e := range ranked {
		keywords = append(keywords, e.surface)
		if len(keywords) == limit {
			break
		}
	}

	return keywords
}
