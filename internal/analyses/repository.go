package analyses

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/PRagan/gleaner/internal/keywords"
	"github.com/PRagan/gleaner/internal/metadata"
	"github.com/PRagan/gleaner/internal/scoring"
	"github.com/PRagan/gleaner/pkg/pagination"
	"github.com/PRagan/gleaner/pkg/query"
	"github.com/PRagan/gleaner/pkg/repository"
)

const (
	maxKeywords    = 3
	statsTermLimit = 5
)

type repo struct {
	db         *sql.DB
	metadata   metadata.System
	keywords   *keywords.Extractor
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates an analysis repository implementing the System interface.
// It internally constructs the keyword extractor; metadata extraction
// comes from the provided system.
func New(
	db *sql.DB,
	meta metadata.System,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		metadata:   meta,
		keywords:   keywords.NewExtractor(logger),
		logger:     logger.With("system", "analyses"),
		pagination: pagination,
	}
}

func (r *repo) Handler(maxBodySize int64) *Handler {
	return NewHandler(r, r.logger, r.pagination, maxBodySize)
}

// Analyze derives summary metadata, keywords, and a confidence score
// for the text without persisting anything. Metadata and keyword
// extraction run concurrently; for non-empty input the operation
// succeeds regardless of extraction service health.
func (r *repo) Analyze(ctx context.Context, cmd AnalyzeCommand) (*Analysis, error) {
	if strings.TrimSpace(cmd.Text) == "" {
		return nil, ErrEmptyText
	}

	var (
		meta metadata.Result
		kws  []string
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		meta = r.metadata.Summarize(gctx, cmd.Text)
		return nil
	})

	g.Go(func() error {
		kws = r.keywords.Extract(cmd.Text, maxKeywords)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	confidence := scoring.Score(cmd.Text, scoring.Signals{
		TitlePresent: meta.Title != nil,
		TopicCount:   len(meta.Topics),
		KeywordCount: len(kws),
		Degraded:     meta.Degraded(),
	})

	analysis := &Analysis{
		Text:       cmd.Text,
		Summary:    meta.Summary,
		Title:      meta.Title,
		Topics:     meta.Topics,
		Sentiment:  meta.Sentiment,
		Keywords:   kws,
		Confidence: confidence,
	}

	r.logger.Info("text analyzed",
		"sentiment", analysis.Sentiment,
		"keywords", len(analysis.Keywords),
		"confidence", analysis.Confidence,
		"degraded", meta.Degraded(),
	)
	return analysis, nil
}

// Insert stores an analysis and returns it with id and created_at assigned.
func (r *repo) Insert(ctx context.Context, analysis Analysis) (*Analysis, error) {
	topicsJSON, err := json.Marshal(analysis.Topics)
	if err != nil {
		return nil, fmt.Errorf("marshal topics: %w", err)
	}

	keywordsJSON, err := json.Marshal(analysis.Keywords)
	if err != nil {
		return nil, fmt.Errorf("marshal keywords: %w", err)
	}

	q := `
		INSERT INTO analyses(text, summary, title, topics, sentiment, keywords, confidence)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, text, summary, title, topics, sentiment, keywords, confidence, created_at`

	insertArgs := []any{
		analysis.Text,
		analysis.Summary,
		analysis.Title,
		topicsJSON,
		string(analysis.Sentiment),
		keywordsJSON,
		analysis.Confidence,
	}

	saved, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Analysis, error) {
		return repository.QueryOne(ctx, tx, q, insertArgs, scanAnalysis)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("analysis created", "id", saved.ID, "sentiment", saved.Sentiment)
	return &saved, nil
}

// QueryAll returns every stored analysis in insertion order.
func (r *repo) QueryAll(ctx context.Context) ([]Analysis, error) {
	q, args := query.NewBuilder(projection, insertionOrder).Build()

	items, err := repository.QueryMany(ctx, r.db, q, args, scanAnalysis)
	if err != nil {
		return nil, fmt.Errorf("query analyses: %w", err)
	}

	return items, nil
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Analysis], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Title", "Summary", "Text")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count analyses: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanAnalysis)
	if err != nil {
		return nil, fmt.Errorf("query analyses: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id int64) (*Analysis, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	a, err := repository.QueryOne(ctx, r.db, q, args, scanAnalysis)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &a, nil
}

// Search loads the stored analyses and applies the matcher in memory.
func (r *repo) Search(ctx context.Context, criteria Criteria) ([]Analysis, error) {
	records, err := r.QueryAll(ctx)
	if err != nil {
		return nil, err
	}

	return Match(records, criteria), nil
}

// Stats aggregates counts over the stored analyses.
func (r *repo) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{
		Sentiments: make(map[metadata.Sentiment]int),
	}

	countQ := `
		SELECT COUNT(*),
			   COUNT(*) FILTER (WHERE created_at >= NOW() - INTERVAL '7 days')
		FROM analyses`

	if err := r.db.QueryRowContext(ctx, countQ).Scan(&stats.Total, &stats.LastWeek); err != nil {
		return nil, fmt.Errorf("count analyses: %w", err)
	}

	sentimentQ := `SELECT sentiment, COUNT(*) FROM analyses GROUP BY sentiment`
	sentiments, err := repository.QueryMany(ctx, r.db, sentimentQ, nil, scanTermCount)
	if err != nil {
		return nil, fmt.Errorf("count sentiments: %w", err)
	}
	for _, s := range sentiments {
		stats.Sentiments[metadata.Sentiment(s.Term)] = s.Count
	}

	if stats.TopTopics, err = r.termCounts(ctx, "topics"); err != nil {
		return nil, fmt.Errorf("count topics: %w", err)
	}
	if stats.TopKeywords, err = r.termCounts(ctx, "keywords"); err != nil {
		return nil, fmt.Errorf("count keywords: %w", err)
	}

	return stats, nil
}

// termCounts tallies the elements of a jsonb string array column.
// The column name is a compile-time constant, never user input.
func (r *repo) termCounts(ctx context.Context, column string) ([]TermCount, error) {
	q := fmt.Sprintf(`
		SELECT term, COUNT(*) AS uses
		FROM analyses, jsonb_array_elements_text(%s) AS term
		GROUP BY term
		ORDER BY uses DESC, term ASC
		LIMIT $1`, column)

	return repository.QueryMany(ctx, r.db, q, []any{statsTermLimit}, scanTermCount)
}

func (r *repo) Delete(ctx context.Context, id int64) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if err := repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM analyses WHERE id = $1",
			id,
		); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("analysis deleted", "id", id)
	return nil
}
