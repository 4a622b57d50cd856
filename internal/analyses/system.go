package analyses

import (
	"context"

	"github.com/PRagan/gleaner/pkg/pagination"
)

// System defines the public contract for analysis domain operations.
// Analyze derives a result without persisting it; Insert stores one.
// The HTTP handler composes the two.
type System interface {
	Handler(maxBodySize int64) *Handler

	Analyze(ctx context.Context, cmd AnalyzeCommand) (*Analysis, error)
	Insert(ctx context.Context, analysis Analysis) (*Analysis, error)
	QueryAll(ctx context.Context) ([]Analysis, error)

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Analysis], error)

	Find(ctx context.Context, id int64) (*Analysis, error)
	Search(ctx context.Context, criteria Criteria) ([]Analysis, error)
	Stats(ctx context.Context) (*Stats, error)
	Delete(ctx context.Context, id int64) error
}
