package api

import (
	"net/http"

	"github.com/PRagan/gleaner/internal/config"
	"github.com/PRagan/gleaner/pkg/module"
	"github.com/PRagan/gleaner/pkg/openapi"
)

// NewDocsModule creates a module serving the OpenAPI specification at /docs/openapi.json.
func NewDocsModule(cfg *config.Config) (*module.Module, error) {
	spec := buildSpec(cfg)

	data, err := openapi.MarshalJSON(spec)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /openapi.json", openapi.ServeSpec(data))

	return module.New("/docs", mux), nil
}

func buildSpec(cfg *config.Config) *openapi.Spec {
	spec := openapi.NewSpec(cfg.API.Docs.Title, cfg.Version)
	spec.SetDescription(cfg.API.Docs.Description)
	spec.AddServer(cfg.API.BasePath)

	spec.Components.AddSchemas(analysisSchemas())

	listParams := []*openapi.Parameter{
		openapi.QueryParam("page", "integer", "Page number (1-indexed)", false),
		openapi.QueryParam("page_size", "integer", "Results per page", false),
		openapi.QueryParam("search", "string", "Substring match against title and summary", false),
		openapi.QueryParam("sort", "string", "Comma-separated sort fields. Prefix with - for descending.", false),
		openapi.QueryParam("sentiment", "string", "Filter by sentiment label", false),
	}

	spec.Paths["/analyses"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:    "List analyses",
			Tags:       []string{"analyses"},
			Parameters: listParams,
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Paginated analyses", "AnalysisPage"),
			},
		},
		Post: &openapi.Operation{
			Summary:     "Analyze text",
			Description: "Runs extraction on the submitted text and stores the result.",
			Tags:        []string{"analyses"},
			RequestBody: openapi.RequestBodyJSON("AnalyzeRequest", true),
			Responses: map[int]*openapi.Response{
				201: openapi.ResponseJSON("Stored analysis", "Analysis"),
				400: openapi.ResponseRef("BadRequest"),
				409: openapi.ResponseRef("Conflict"),
				413: {Description: "Request body exceeds the configured size limit"},
			},
		},
	}

	spec.Paths["/analyses/search"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:     "Search analyses",
			Description: "Matches stored analyses against topic, keyword, or sentiment criteria. At least one criterion is required.",
			Tags:        []string{"analyses"},
			Parameters: []*openapi.Parameter{
				openapi.QueryParam("topic", "string", "Case-insensitive topic match", false),
				openapi.QueryParam("keyword", "string", "Case-insensitive keyword match", false),
				openapi.QueryParam("sentiment", "string", "Sentiment label match", false),
				openapi.QueryParam("limit", "integer", "Maximum results to return", false),
			},
			Responses: map[int]*openapi.Response{
				200: {
					Description: "Matching analyses",
					Content: map[string]*openapi.MediaType{
						"application/json": {
							Schema: &openapi.Schema{Type: "array", Items: openapi.SchemaRef("Analysis")},
						},
					},
				},
				400: openapi.ResponseRef("BadRequest"),
			},
		},
	}

	spec.Paths["/analyses/stats"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "Aggregate statistics",
			Tags:    []string{"analyses"},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Corpus statistics", "Stats"),
			},
		},
	}

	spec.Paths["/analyses/{id}"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:    "Get analysis",
			Tags:       []string{"analyses"},
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Analysis ID")},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Stored analysis", "Analysis"),
				400: openapi.ResponseRef("BadRequest"),
				404: openapi.ResponseRef("NotFound"),
			},
		},
		Delete: &openapi.Operation{
			Summary:    "Delete analysis",
			Tags:       []string{"analyses"},
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Analysis ID")},
			Responses: map[int]*openapi.Response{
				204: {Description: "Analysis deleted"},
				400: openapi.ResponseRef("BadRequest"),
				404: openapi.ResponseRef("NotFound"),
			},
		},
	}

	return spec
}

func analysisSchemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Analysis": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":         {Type: "integer", Format: "int64"},
				"text":       {Type: "string", Description: "Original input text"},
				"summary":    {Type: "string", Description: "One to two sentence summary"},
				"title":      {Type: "string", Description: "Extracted title; null when none was found"},
				"topics":     {Type: "array", Items: &openapi.Schema{Type: "string"}, Description: "Up to three key topics"},
				"sentiment":  {Type: "string", Enum: []any{"positive", "negative", "neutral"}},
				"keywords":   {Type: "array", Items: &openapi.Schema{Type: "string"}, Description: "Most frequent nouns in the text"},
				"confidence": {Type: "number", Minimum: f64(0), Maximum: f64(1)},
				"created_at": {Type: "string", Format: "date-time"},
			},
		},
		"AnalyzeRequest": {
			Type:     "object",
			Required: []string{"text"},
			Properties: map[string]*openapi.Schema{
				"text": {Type: "string", Description: "Unstructured text to analyze"},
			},
		},
		"AnalysisPage": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"data":        {Type: "array", Items: openapi.SchemaRef("Analysis")},
				"total":       {Type: "integer"},
				"page":        {Type: "integer"},
				"page_size":   {Type: "integer"},
				"total_pages": {Type: "integer"},
			},
		},
		"Stats": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"total":        {Type: "integer", Description: "Total stored analyses"},
				"last_week":    {Type: "integer", Description: "Analyses stored in the last seven days"},
				"sentiments":   {Type: "object", Description: "Count of analyses per sentiment label"},
				"top_topics":   {Type: "array", Items: openapi.SchemaRef("TermCount")},
				"top_keywords": {Type: "array", Items: openapi.SchemaRef("TermCount")},
			},
		},
		"TermCount": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"term":  {Type: "string"},
				"count": {Type: "integer"},
			},
		},
	}
}

func f64(v float64) *float64 {
	return &v
}
