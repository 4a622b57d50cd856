package metadata

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"github.com/pkoukk/tiktoken-go"
	"github.com/sashabaranov/go-openai"

	"github.com/PRagan/gleaner/internal/config"
	"github.com/PRagan/gleaner/pkg/formatting"
)

const (
	encodingName = "cl100k_base"
	retryDelay   = time.Second
)

type client struct {
	api      *openai.Client
	cfg      config.ExtractorConfig
	encoding *tiktoken.Tiktoken
	prompt   string
	timeout  time.Duration
	logger   *slog.Logger
}

// New creates a System backed by the configured extraction service.
// Without an API key the returned System serves every request from the
// offline derivation.
func New(cfg config.ExtractorConfig, logger *slog.Logger) System {
	c := &client{
		cfg:     cfg,
		prompt:  systemPrompt(),
		timeout: cfg.TimeoutDuration(),
		logger:  logger.With("system", "metadata"),
	}

	if !cfg.Configured() {
		c.logger.Info("extraction service not configured, serving offline results")
		return c
	}

	apiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = cfg.BaseURL
	}
	c.api = openai.NewClientWithConfig(apiCfg)

	encoding, err := tiktoken.GetEncoding(encodingName)
	if err != nil {
		c.logger.Warn("token encoding unavailable, skipping input truncation", "error", err)
	} else {
		c.encoding = encoding
	}

	return c
}

// Summarize extracts metadata for text, serving the offline derivation
// when the service is unreachable or responds unusably.
func (c *client) Summarize(ctx context.Context, text string) Result {
	if c.api == nil {
		return derive(text)
	}

	result, err := c.complete(ctx, text)
	if err != nil {
		c.logger.Warn("extraction failed, serving offline result", "error", err)
		return derive(text)
	}

	return result
}

func (c *client) complete(ctx context.Context, text string) (Result, error) {
	req := c.request(c.truncate(text))

	var content string
	err := retry.Do(
		func() error {
			attempt, cancel := context.WithTimeout(ctx, c.timeout)
			defer cancel()

			resp, err := c.api.CreateChatCompletion(attempt, req)
			if err != nil {
				return err
			}
			if len(resp.Choices) == 0 {
				return errors.New("completion response has no choices")
			}

			content = resp.Choices[0].Message.Content
			return nil
		},
		retry.Attempts(uint(c.cfg.MaxRetries)),
		retry.Delay(retryDelay),
		retry.LastErrorOnly(true),
		retry.Context(ctx),
	)
	if err != nil {
		return Result{}, err
	}

	parsed, err := formatting.Parse[payload](content)
	if err != nil {
		return Result{}, fmt.Errorf("parsing completion content: %w", err)
	}

	result := normalize(parsed)
	if result.Summary == "" {
		return Result{}, errors.New("completion response has no summary")
	}

	return result, nil
}

func (c *client) request(text string) openai.ChatCompletionRequest {
	req := openai.ChatCompletionRequest{
		Model: c.cfg.Model,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: c.prompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
	}

	// Reasoning models reject an explicit temperature and take their
	// output budget through max_completion_tokens instead of max_tokens.
	if reasoningModel(c.cfg.Model) {
		req.MaxCompletionTokens = c.cfg.MaxOutputTokens
	} else {
		req.MaxTokens = c.cfg.MaxOutputTokens
		req.Temperature = c.cfg.Temperature
	}

	return req
}

func reasoningModel(model string) bool {
	for _, prefix := range []string{"o1", "o3", "o4", "gpt-5"} {
		if strings.HasPrefix(model, prefix) {
			return true
		}
	}
	return false
}

// truncate caps text at the configured input token budget.
func (c *client) truncate(text string) string {
	if c.encoding == nil {
		return text
	}

	tokens := c.encoding.Encode(text, nil, nil)
	if len(tokens) <= c.cfg.MaxInputTokens {
		return text
	}

	return c.encoding.Decode(tokens[:c.cfg.MaxInputTokens])
}

// normalize applies the response contract: unknown sentiment labels
// become neutral, topics are clamped to three, and a blank title is
// treated as absent.
func normalize(p payload) Result {
	result := Result{
		Summary:   strings.TrimSpace(p.Summary),
		Topics:    make([]string, 0, maxTopics),
		Sentiment: NormalizeSentiment(p.Sentiment),
		Quality:   QualityAuthoritative,
	}

	if title := strings.TrimSpace(p.Title); title != "" {
		result.Title = &title
	}

	for _, topic := range p.Topics {
		topic = strings.TrimSpace(topic)
		if topic == "" {
			continue
		}

		result.Topics = append(result.Topics, topic)
		if len(result.Topics) == maxTopics {
			break
		}
	}

	return result
}
