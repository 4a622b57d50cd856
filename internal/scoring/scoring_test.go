package scoring_test

import (
	"math"
	"strings"
	"testing"

	"github.com/PRagan/gleaner/internal/scoring"
)

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

func TestScore(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		signals scoring.Signals
		want    float64
	}{
		{
			name: "full authoritative result reaches one",
			text: words(100),
			signals: scoring.Signals{
				TitlePresent: true,
				TopicCount:   3,
				KeywordCount: 3,
			},
			want: 1.0,
		},
		{
			name: "full degraded result capped at half",
			text: words(100),
			signals: scoring.Signals{
				TitlePresent: true,
				TopicCount:   3,
				KeywordCount: 3,
				Degraded:     true,
			},
			want: 0.5,
		},
		{
			name:    "empty degraded floor",
			text:    "",
			signals: scoring.Signals{Degraded: true},
			want:    0.1,
		},
		{
			name:    "empty authoritative",
			text:    "",
			signals: scoring.Signals{},
			want:    0.3,
		},
		{
			name: "signals saturate beyond their maxima",
			text: words(500),
			signals: scoring.Signals{
				TitlePresent: true,
				TopicCount:   7,
				KeywordCount: 9,
			},
			want: 1.0,
		},
		{
			name:    "half-length text",
			text:    words(50),
			signals: scoring.Signals{},
			want:    0.45,
		},
		{
			name:    "title adds its weight",
			text:    words(3),
			signals: scoring.Signals{TitlePresent: true},
			want:    0.459,
		},
		{
			name:    "short degraded with one topic",
			text:    words(10),
			signals: scoring.Signals{TopicCount: 1, Degraded: true},
			want:    0.18,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scoring.Score(tt.text, tt.signals)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Score() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScoreFullAuthoritativeIsExactlyOne(t *testing.T) {
	got := scoring.Score(words(100), scoring.Signals{
		TitlePresent: true,
		TopicCount:   3,
		KeywordCount: 3,
	})

	if got != 1.0 {
		t.Errorf("Score() = %v, want exactly 1.0", got)
	}
}

func TestScoreDegradedNeverExceedsCeiling(t *testing.T) {
	for topics := 0; topics <= 4; topics++ {
		for kws := 0; kws <= 4; kws++ {
			got := scoring.Score(words(200), scoring.Signals{
				TitlePresent: true,
				TopicCount:   topics,
				KeywordCount: kws,
				Degraded:     true,
			})
			if got > 0.5 {
				t.Errorf("Score(topics=%d, keywords=%d) = %v, want <= 0.5", topics, kws, got)
			}
		}
	}
}

func TestScoreMonotonicInTopics(t *testing.T) {
	text := words(40)
	prev := -1.0

	for topics := 0; topics <= 5; topics++ {
		got := scoring.Score(text, scoring.Signals{TopicCount: topics})
		if got < prev {
			t.Errorf("Score(topics=%d) = %v, decreased from %v", topics, got, prev)
		}
		prev = got
	}
}

func TestScoreBounds(t *testing.T) {
	texts := []string{"", "one", words(50), words(1000)}

	for _, text := range texts {
		for _, degraded := range []bool{false, true} {
			got := scoring.Score(text, scoring.Signals{
				TitlePresent: true,
				TopicCount:   10,
				KeywordCount: 10,
				Degraded:     degraded,
			})
			if got < 0 || got > 1 {
				t.Errorf("Score(%d words, degraded=%v) = %v, out of [0, 1]",
					len(strings.Fields(text)), degraded, got)
			}
		}
	}
}
