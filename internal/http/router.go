package http

import (
	"context"
	"net/http"

	"bookstore/internal/apidoc"
	"bookstore/internal/book"
	"bookstore/internal/httpx"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	docsPath     = "/swagger"
	docsSpecPath = "/swagger/json"
	apiTitle     = "Bookstore API"
)

type RouterConfig struct {
	Version        string
	AllowedOrigins []string
	RateLimitRPS   float64
	RateLimitBurst int
	TrustProxy     bool
	MaxBodyBytes   int64
	EnableHSTS     bool
}

type route struct {
	method  string
	path    string
	handler http.HandlerFunc
	doc     apidoc.Operation
}

func bookRoutes(h *BookHandler) []route {
	notFound := apidoc.Response{Status: http.StatusNotFound, Description: "Book not found", Body: new(httpx.ErrorResponse)}
	badRequest := apidoc.Response{Status: http.StatusBadRequest, Description: "Malformed or incomplete body", Body: new(httpx.ErrorResponse)}

	return []route{
		{
			method:  http.MethodGet,
			path:    "/books",
			handler: h.List,
			doc: apidoc.Operation{
				ID:          "listBooks",
				Summary:     "Get all books",
				Description: "Retrieve a list of all books available in the store.",
				Responses: []apidoc.Response{
					{Status: http.StatusOK, Description: "All books", Body: new([]book.Book)},
				},
			},
		},
		{
			method:  http.MethodGet,
			path:    "/books/{id}",
			handler: h.Get,
			doc: apidoc.Operation{
				ID:          "getBook",
				Summary:     "Get a book by ID",
				Description: "Retrieve details of a book by its unique ID.",
				Request:     new(bookIDParam),
				Responses: []apidoc.Response{
					{Status: http.StatusOK, Description: "The book", Body: new(book.Book)},
					notFound,
				},
			},
		},
		{
			method:  http.MethodPost,
			path:    "/books",
			handler: h.Create,
			doc: apidoc.Operation{
				ID:          "createBook",
				Summary:     "Add a new book",
				Description: "Add a new book to the bookstore.",
				Request:     new(createBookRequest),
				Responses: []apidoc.Response{
					{Status: http.StatusCreated, Description: "The created book", Body: new(book.Book)},
					badRequest,
				},
			},
		},
		{
			method:  http.MethodPut,
			path:    "/books/{id}",
			handler: h.Update,
			doc: apidoc.Operation{
				ID:          "updateBook",
				Summary:     "Update a book by ID",
				Description: "Update the details of an existing book by its ID.",
				Request:     new(updateBookRequest),
				Responses: []apidoc.Response{
					{Status: http.StatusOK, Description: "The updated book", Body: new(book.Book)},
					badRequest,
					notFound,
				},
			},
		},
		{
			method:  http.MethodDelete,
			path:    "/books/{id}",
			handler: h.Delete,
			doc: apidoc.Operation{
				ID:          "deleteBook",
				Summary:     "Delete a book by ID",
				Description: "Remove a book from the bookstore by its ID.",
				Request:     new(bookIDParam),
				Responses: []apidoc.Response{
					{Status: http.StatusOK, Description: "The deleted book", Body: new(book.Book)},
					notFound,
				},
			},
		},
	}
}

// NewRouter mounts the book routes, the API docs and the health probe.
// ctx bounds background work started by the middleware.
func NewRouter(ctx context.Context, service BookService, cfg RouterConfig) (http.Handler, error) {
	h := NewBookHandler(service)
	doc := apidoc.New(apiTitle, cfg.Version, "Manage the books of an in-memory bookstore.", "Httpx", "Http", "Book")

	r := chi.NewRouter()
	r.Use(
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware,
		httpx.RecoveryMiddleware,
		httpx.CORSMiddleware(cfg.AllowedOrigins),
	)
	if cfg.RateLimitRPS > 0 {
		r.Use(httpx.NewRateLimitMiddleware(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst, cfg.TrustProxy).Middleware)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpx.JSONErrorWithRequest(r, w, http.StatusNotFound, "NOT_FOUND", "Route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httpx.JSONErrorWithRequest(r, w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	var routeErr error
	r.Group(func(api chi.Router) {
		api.Use(httpx.SecurityHeadersMiddleware(cfg.EnableHSTS))
		if cfg.MaxBodyBytes > 0 {
			api.Use(httpx.RequestSizeLimitMiddleware(cfg.MaxBodyBytes))
		}
		for _, rt := range bookRoutes(h) {
			rt.doc.Method = rt.method
			rt.doc.Path = rt.path
			rt.doc.Tags = []string{"books"}
			if routeErr = doc.Add(rt.doc); routeErr != nil {
				return
			}
			api.Method(rt.method, rt.path, otelhttp.WithRouteTag(rt.path, rt.handler))
		}
	})
	if routeErr != nil {
		return nil, routeErr
	}

	ui := apidoc.UI(apiTitle, docsSpecPath, docsPath)
	r.Method(http.MethodGet, docsSpecPath, doc)
	r.Method(http.MethodGet, docsPath, ui)
	r.Method(http.MethodGet, docsPath+"/*", ui)

	return otelhttp.NewHandler(r, "bookstore"), nil
}
