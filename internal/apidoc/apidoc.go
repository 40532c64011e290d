// Package apidoc derives an OpenAPI 3 document from route metadata and
// serves it alongside a Swagger UI.
package apidoc

import (
	"net/http"

	"bookstore/internal/httpx"

	"github.com/rs/zerolog/log"
	"github.com/swaggest/jsonschema-go"
	"github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"
	"github.com/swaggest/swgui/v5emb"
)

// Operation describes one route for the document. Request and response
// bodies are sample values whose types are reflected into schemas; struct
// tags (json, path, required, description) drive the reflection.
type Operation struct {
	Method      string
	Path        string
	ID          string
	Summary     string
	Description string
	Tags        []string
	Request     any
	Responses   []Response
}

type Response struct {
	Status      int
	Description string
	Body        any
}

// Document accumulates operations into an OpenAPI 3 spec.
type Document struct {
	reflector *openapi3.Reflector
}

// New starts an empty document. Schema names are derived from Go type
// names; stripPrefixes removes package prefixes from them and the first
// matching prefix wins.
func New(title, version, description string, stripPrefixes ...string) *Document {
	r := &openapi3.Reflector{}
	if len(stripPrefixes) > 0 {
		r.DefaultOptions = append(r.DefaultOptions, jsonschema.StripDefinitionNamePrefix(stripPrefixes...))
	}
	r.Spec = &openapi3.Spec{Openapi: "3.0.3"}
	r.Spec.Info.
		WithTitle(title).
		WithVersion(version).
		WithDescription(description)

	return &Document{reflector: r}
}

// Add reflects op into the document. It fails when the path template and
// the request's path parameters disagree.
func (d *Document) Add(op Operation) error {
	oc, err := d.reflector.NewOperationContext(op.Method, op.Path)
	if err != nil {
		return err
	}

	if op.ID != "" {
		oc.SetID(op.ID)
	}
	oc.SetSummary(op.Summary)
	oc.SetDescription(op.Description)
	oc.SetTags(op.Tags...)

	if op.Request != nil {
		oc.AddReqStructure(op.Request)
	}
	for _, resp := range op.Responses {
		desc := resp.Description
		oc.AddRespStructure(
			resp.Body,
			openapi.WithHTTPStatus(resp.Status),
			func(cu *openapi.ContentUnit) { cu.Description = desc },
		)
	}

	return d.reflector.AddOperation(oc)
}

func (d *Document) MarshalJSON() ([]byte, error) {
	return d.reflector.Spec.MarshalJSON()
}

// ServeHTTP writes the document as JSON.
func (d *Document) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b, err := d.MarshalJSON()
	if err != nil {
		log.Error().Err(err).Str("request_id", httpx.RequestIDFrom(r)).Msg("failed to encode openapi document")
		httpx.JSONErrorWithRequest(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(b)
}

// UI returns a Swagger UI mounted at basePath that loads the document
// from specPath. Assets are embedded.
func UI(title, specPath, basePath string) http.Handler {
	return v5emb.New(title, specPath, basePath)
}
