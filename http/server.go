// Package http provides the preview server: a small JSON API over a built
// corpus plus static serving of the generated site.
package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/tkowalczyk/scansite"
)

// CorpusSource yields the corpus the server responds from. Build is expected
// to be memoized; the server calls it on every request.
type CorpusSource interface {
	Build(ctx context.Context) (*scansite.Corpus, error)
}

// Server serves the preview API and, when SiteDir is set, the generated
// site files.
type Server struct {
	ln     net.Listener
	server *http.Server
	router chi.Router

	Addr    string
	SiteDir string
	Source  CorpusSource
	Logger  *slog.Logger
}

// NewServer creates a new Server with routes configured.
func NewServer(source CorpusSource, logger *slog.Logger) *Server {
	s := &Server{
		server: &http.Server{},
		Source: source,
		Logger: logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	r.Get("/health", s.handleHealth)
	r.Get("/api/documents", s.handleListDocuments)
	r.Get("/api/documents/{key}", s.handleGetDocument)
	r.Get("/api/indexes/{bucket}", s.handleGetIndex)

	s.router = r
	s.server.Handler = r
	return s
}

// ServeHTTP implements http.Handler, so the router is testable without a
// listening socket.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Open begins listening on Addr. Static site routes are mounted here so
// SiteDir can be assigned after NewServer.
func (s *Server) Open() error {
	if s.SiteDir != "" {
		s.router.Handle("/site/*", http.StripPrefix("/site/", http.FileServer(http.Dir(s.SiteDir))))
	}

	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	s.ln = ln

	go func() {
		if err := s.server.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.Logger.Error("server stopped", "error", err)
		}
	}()
	return nil
}

// Close gracefully shuts the server down.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// URL returns the server's base URL once listening.
func (s *Server) URL() string {
	return "http://" + s.ln.Addr().String()
}

// documentSummary is the list-endpoint shape: everything but the full text
// and per-page detail.
type documentSummary struct {
	Key            string `json:"key"`
	DocumentNumber string `json:"documentNumber"`
	PageCount      int    `json:"pageCount"`
	DocumentType   string `json:"documentType"`
	Date           string `json:"date"`
}

// documentDetail adds the concatenated text and entities to the summary.
type documentDetail struct {
	documentSummary
	RawDocumentNumbers []string           `json:"rawDocumentNumbers,omitempty"`
	Folders            []string           `json:"folders,omitempty"`
	Entities           scansite.Entities  `json:"entities"`
	Analysis           *scansite.Analysis `json:"analysis,omitempty"`
	FullText           string             `json:"fullText"`
}

func summarize(doc *scansite.Document) documentSummary {
	return documentSummary{
		Key:            doc.Key,
		DocumentNumber: doc.DocumentNumber,
		PageCount:      doc.PageCount,
		DocumentType:   scansite.FormatType(doc.Meta.DocumentType),
		Date:           scansite.FormatDate(doc.DateKey),
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	corpus, err := s.Source.Build(r.Context())
	if err != nil {
		s.error(w, err)
		return
	}

	summaries := make([]documentSummary, len(corpus.Documents))
	for i, doc := range corpus.Documents {
		summaries[i] = summarize(doc)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"buildId":   corpus.BuildID,
		"documents": summaries,
	})
}

func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	corpus, err := s.Source.Build(r.Context())
	if err != nil {
		s.error(w, err)
		return
	}

	doc := corpus.Document(chi.URLParam(r, "key"))
	if doc == nil {
		s.error(w, scansite.Errorf(scansite.ENOTFOUND, "document not found"))
		return
	}

	writeJSON(w, http.StatusOK, documentDetail{
		documentSummary:    summarize(doc),
		RawDocumentNumbers: doc.RawDocumentNumbers,
		Folders:            doc.Folders,
		Entities:           doc.Entities,
		Analysis:           doc.Analysis,
		FullText:           doc.FullText,
	})
}

func (s *Server) handleGetIndex(w http.ResponseWriter, r *http.Request) {
	corpus, err := s.Source.Build(r.Context())
	if err != nil {
		s.error(w, err)
		return
	}

	type entry struct {
		Name           string   `json:"name"`
		NormalizedDate string   `json:"normalizedDate,omitempty"`
		Docs           []string `json:"docs"`
		Count          int      `json:"count"`
	}
	serialize := func(entries []scansite.IndexEntry) []entry {
		out := make([]entry, len(entries))
		for i, e := range entries {
			out[i] = entry{Name: e.Name, Docs: keys(e.Docs), Count: e.Count}
		}
		return out
	}

	var entries []entry
	switch chi.URLParam(r, "bucket") {
	case "people":
		entries = serialize(corpus.Indexes.People)
	case "organizations":
		entries = serialize(corpus.Indexes.Organizations)
	case "locations":
		entries = serialize(corpus.Indexes.Locations)
	case "document-types":
		entries = serialize(corpus.Indexes.DocumentTypes)
	case "dates":
		entries = make([]entry, len(corpus.Indexes.Dates))
		for i, e := range corpus.Indexes.Dates {
			entries[i] = entry{Name: e.Name, NormalizedDate: e.NormalizedDate, Docs: keys(e.Docs), Count: e.Count}
		}
	default:
		s.error(w, scansite.Errorf(scansite.ENOTFOUND, "unknown index bucket"))
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

func keys(docs []*scansite.Document) []string {
	out := make([]string, len(docs))
	for i, doc := range docs {
		out[i] = doc.Key
	}
	return out
}

// error writes a domain error as a JSON response with the matching HTTP
// status code.
func (s *Server) error(w http.ResponseWriter, err error) {
	code := scansite.ErrorCode(err)
	status := http.StatusInternalServerError
	switch code {
	case scansite.ENOTFOUND:
		status = http.StatusNotFound
	case scansite.EINVALID:
		status = http.StatusBadRequest
	case scansite.ECONFLICT:
		status = http.StatusConflict
	}
	if status == http.StatusInternalServerError {
		s.Logger.Error("request failed", "error", err)
	}
	writeJSON(w, status, map[string]string{"error": scansite.ErrorMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// requestLogger logs each request with its status and duration.
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration_ms", time.Since(start).Milliseconds(),
			)
		})
	}
}
