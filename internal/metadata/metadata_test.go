package metadata_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/PRagan/gleaner/internal/config"
	"github.com/PRagan/gleaner/internal/metadata"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// offlineSystem builds a System with no API key, so every Summarize call
// serves the offline derivation.
func offlineSystem() metadata.System {
	return metadata.New(config.ExtractorConfig{Timeout: "5s"}, testLogger())
}

func TestParseSentiment(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   metadata.Sentiment
		wantOK bool
	}{
		{"positive", "positive", metadata.SentimentPositive, true},
		{"negative with padding", " Negative ", metadata.SentimentNegative, true},
		{"neutral uppercase", "NEUTRAL", metadata.SentimentNeutral, true},
		{"empty", "", "", false},
		{"unsupported label", "ambivalent", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := metadata.ParseSentiment(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseSentiment(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("ParseSentiment(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeSentiment(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  metadata.Sentiment
	}{
		{"valid label", "POSITIVE", metadata.SentimentPositive},
		{"unknown label", "garbage", metadata.SentimentNeutral},
		{"empty", "", metadata.SentimentNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := metadata.NormalizeSentiment(tt.input); got != tt.want {
				t.Errorf("NormalizeSentiment(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestResultDegraded(t *testing.T) {
	degraded := metadata.Result{Quality: metadata.QualityDegraded}
	if !degraded.Degraded() {
		t.Error("degraded result should report Degraded() = true")
	}

	authoritative := metadata.Result{Quality: metadata.QualityAuthoritative}
	if authoritative.Degraded() {
		t.Error("authoritative result should report Degraded() = false")
	}
}

func TestOfflineSummaryVerbatim(t *testing.T) {
	sys := offlineSystem()
	text := "  Go services compile into a single static binary.  "

	got := sys.Summarize(context.Background(), text)

	if got.Summary != "Go services compile into a single static binary." {
		t.Errorf("summary = %q, want trimmed verbatim text", got.Summary)
	}
	if got.Quality != metadata.QualityDegraded {
		t.Errorf("quality = %q, want degraded", got.Quality)
	}
	if got.Sentiment != metadata.SentimentNeutral {
		t.Errorf("sentiment = %q, want neutral", got.Sentiment)
	}
}

func TestOfflineSummaryExcerptsLongText(t *testing.T) {
	sys := offlineSystem()
	words := make([]string, 30)
	for i := range words {
		words[i] = "word"
	}
	text := strings.Join(words, " ")

	got := sys.Summarize(context.Background(), text)

	if !strings.HasSuffix(got.Summary, "...") {
		t.Errorf("summary = %q, want ellipsis suffix", got.Summary)
	}
	if n := len(strings.Fields(got.Summary)); n != 15 {
		t.Errorf("summary word count = %d, want 15", n)
	}
}

func TestOfflineTitle(t *testing.T) {
	sys := offlineSystem()

	t.Run("first non-empty line", func(t *testing.T) {
		got := sys.Summarize(context.Background(), "\n\n  Release Notes \nEverything changed.")
		if got.Title == nil {
			t.Fatal("title = nil, want Release Notes")
		}
		if *got.Title != "Release Notes" {
			t.Errorf("title = %q, want Release Notes", *got.Title)
		}
	})

	t.Run("overlong first line yields no title", func(t *testing.T) {
		long := strings.Repeat("x", 81) + "\nshort second line"
		got := sys.Summarize(context.Background(), long)
		if got.Title != nil {
			t.Errorf("title = %q, want nil for a first line over eighty runes", *got.Title)
		}
	})
}

func TestOfflineTopics(t *testing.T) {
	sys := offlineSystem()

	t.Run("collects mid-sentence capitals", func(t *testing.T) {
		text := "We shipped Gleaner today. The team used Postgres and Docker. Later Docker failed."
		got := sys.Summarize(context.Background(), text)

		want := []string{"Gleaner", "Postgres", "Docker"}
		if len(got.Topics) != len(want) {
			t.Fatalf("topics = %v, want %v", got.Topics, want)
		}
		for i := range want {
			if got.Topics[i] != want[i] {
				t.Errorf("topics[%d] = %q, want %q", i, got.Topics[i], want[i])
			}
		}
	})

	t.Run("caps at three", func(t *testing.T) {
		text := "It mentions Alpha then Beta then Gamma then Delta for good measure."
		got := sys.Summarize(context.Background(), text)

		if len(got.Topics) != 3 {
			t.Fatalf("topics = %v, want exactly 3", got.Topics)
		}
		if got.Topics[0] != "Alpha" || got.Topics[2] != "Gamma" {
			t.Errorf("topics = %v, want [Alpha Beta Gamma]", got.Topics)
		}
	})

	t.Run("sentence-start capitals ignored", func(t *testing.T) {
		got := sys.Summarize(context.Background(), "Hello there. World peace arrived.")
		if len(got.Topics) != 0 {
			t.Errorf("topics = %v, want empty", got.Topics)
		}
	})
}
