package api

import (
	"github.com/PRagan/gleaner/internal/analyses"
	"github.com/PRagan/gleaner/internal/metadata"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Analyses analyses.System
	Metadata metadata.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	metadataSystem := metadata.New(runtime.Extractor, runtime.Logger)

	analysesSystem := analyses.New(
		runtime.Database.Connection(),
		metadataSystem,
		runtime.Logger,
		runtime.Pagination,
	)

	return &Domain{
		Analyses: analysesSystem,
		Metadata: metadataSystem,
	}
}
