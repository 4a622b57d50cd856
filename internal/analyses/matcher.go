package analyses

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/PRagan/gleaner/internal/metadata"
)

const defaultSearchLimit = 10

// Criteria describes what a stored analysis must satisfy to match a
// search. Empty fields impose no constraint; populated fields combine
// conjunctively.
type Criteria struct {
	Topic     string             `json:"topic,omitempty"`
	Keyword   string             `json:"keyword,omitempty"`
	Sentiment metadata.Sentiment `json:"sentiment,omitempty"`
	Limit     int                `json:"limit,omitempty"`
}

// Empty reports whether the criteria constrain nothing.
func (c Criteria) Empty() bool {
	return c.Topic == "" && c.Keyword == "" && c.Sentiment == ""
}

// CriteriaFromQuery extracts search criteria from URL query parameters.
// A sentiment value outside the supported labels is an error rather
// than a silent non-match.
func CriteriaFromQuery(values url.Values) (Criteria, error) {
	c := Criteria{
		Topic:   strings.TrimSpace(values.Get("topic")),
		Keyword: strings.TrimSpace(values.Get("keyword")),
		Limit:   defaultSearchLimit,
	}

	if s := values.Get("sentiment"); s != "" {
		sentiment, ok := metadata.ParseSentiment(s)
		if !ok {
			return Criteria{}, ErrInvalidSentiment
		}
		c.Sentiment = sentiment
	}

	if l := values.Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 {
			c.Limit = n
		}
	}

	return c, nil
}

// Match filters records in order, keeping those that satisfy every
// populated criterion. Empty criteria match every record. A positive
// Limit caps the result length; order is preserved either way.
func Match(records []Analysis, c Criteria) []Analysis {
	matched := make([]Analysis, 0)

	for _, record := range records {
		if !matches(record, c) {
			continue
		}

		matched = append(matched, record)
		if c.Limit > 0 && len(matched) == c.Limit {
			break
		}
	}

	return matched
}

func matches(a Analysis, c Criteria) bool {
	if c.Topic != "" && !containsFold(a.Topics, c.Topic) {
		return false
	}
	if c.Keyword != "" && !containsFold(a.Keywords, c.Keyword) {
		return false
	}
	if c.Sentiment != "" && a.Sentiment != c.Sentiment {
		return false
	}
	return true
}

// containsFold reports whether any value contains term, ignoring case.
func containsFold(values []string, term string) bool {
	term = strings.ToLower(term)
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), term) {
			return true
		}
	}
	return false
}
