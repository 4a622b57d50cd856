package keywords

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	wordPattern  = regexp.MustCompile(`[a-zA-Z]{3,}`)
	verbSuffixes = []string{"ing", "ed", "er", "ly"}
)

// rankFallback scores candidate words without part-of-speech information:
// frequency, plus a point for longer words and mid-sentence capitalization,
// minus a point for common verb and adverb suffixes. Ordering is descending
// score with ties broken by first occurrence.
func rankFallback(text string, limit int) []string {
	words := wordPattern.FindAllString(strings.ToLower(text), -1)
	capitalized := midSentenceCapitals(text)

	type entry struct {
		word  string
		score int
		first int
	}

	byWord := make(map[string]*entry)
	ranked := make([]*entry, 0)

	for i, word := range words {
		if _, stop := englishStopwords[word]; stop {
			continue
		}
		if e, ok := byWord[word]; ok {
			e.score++
			continue
		}

		e := &entry{word: word, score: 1, first: i}
		byWord[word] = e
		ranked = append(ranked, e)
	}

	for _, e := range ranked {
		if utf8.RuneCountInString(e.word) > 4 {
			e.score++
		}
		if hasVerbSuffix(e.word) {
			e.score--
		}
		if capitalized[e.word] {
			e.score++
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].first < ranked[j].first
	})

	keywords := make([]string, 0, limit)
	for _, e := range ranked {
		keywords = append(keywords, e.word)
		if len(keywords) == limit {
			break
		}
	}

	return keywords
}

func hasVerbSuffix(word string) bool {
	for _, suffix := range verbSuffixes {
		if strings.HasSuffix(word, suffix) {
			return true
		}
	}
	return false
}

// midSentenceCapitals returns the lowercased forms of words that appear
// capitalized somewhere other than the start of a sentence, a rough proxy
// for proper nouns when no tagger is available.
func midSentenceCapitals(text string) map[string]bool {
	caps := make(map[string]bool)

	sentenceStart := true
	for _, tok := range strings.Fields(text) {
		word := strings.TrimFunc(tok, func(r rune) bool {
			return !unicode.IsLetter(r)
		})

		if word != "" && !sentenceStart {
			r, _ := utf8.DecodeRuneInString(word)
			if unicode.IsUpper(r) {
				caps[strings.ToLower(word)] = true
			}
		}

		sentenceStart = strings.ContainsAny(tok, ".!?")
	}

	return caps
}
