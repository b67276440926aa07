package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/assessrec"
	"github.com/fwojciec/assessrec/recommend"
	"github.com/google/uuid"
)

// Server serves the single-user recommendation UI: an input form, a
// results table with linked assessment names, a raw structured-data
// view, and a recommendations.json download. Each interaction runs
// the full pipeline to completion; no state is shared across requests.
type Server struct {
	service *recommend.Service
	logger  *slog.Logger
	handler http.Handler
	srv     *http.Server
}

// NewServer creates a Server around the recommendation service.
func NewServer(service *recommend.Service, logger *slog.Logger) *Server {
	s := &Server{
		service: service,
		logger:  logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/recommendations.json", s.handleDownload)
	s.handler = s.withRequestID(mux)

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// ListenAndServe blocks serving the UI on addr.
func (s *Server) ListenAndServe(addr string) error {
	s.srv = &http.Server{
		Addr:    addr,
		Handler: s.handler,
	}
	return s.srv.ListenAndServe()
}

// Close shuts the server down gracefully.
func (s *Server) Close() error {
	if s.srv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.srv.Shutdown(ctx)
}

// withRequestID tags every request with a UUID and logs its outcome.
func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-ID", id)

		begin := time.Now()
		next.ServeHTTP(w, r)

		s.logger.Info("request",
			"id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(begin),
		)
	})
}

// form holds the submitted input values, echoed back into the page so
// the user's choices survive a round trip.
type form struct {
	Mode  string
	Query string
	URL   string
}

func parseForm(r *http.Request) form {
	f := form{
		Mode:  r.FormValue("mode"),
		Query: strings.TrimSpace(r.FormValue("query")),
		URL:   strings.TrimSpace(r.FormValue("url")),
	}
	if f.Mode != "url" {
		f.Mode = "text"
	}
	return f
}

// resolveQuery derives the effective query from the form: the typed
// text in text mode, or the extracted page text in URL mode. Every
// failure degrades to an empty query; the page then prompts for input
// instead of showing an error.
func (s *Server) resolveQuery(ctx context.Context, f form) string {
	if f.Mode == "text" {
		return f.Query
	}
	if f.URL == "" {
		return ""
	}
	text, err := s.service.QueryFromURL(ctx, f.URL)
	if err != nil {
		s.logger.Warn("query extraction failed", "url", f.URL, "error", err)
		return ""
	}
	return text
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	view := indexView{Mode: "text"}

	if r.Method == http.MethodPost {
		f := parseForm(r)
		view.Mode = f.Mode
		view.Query = f.Query
		view.URL = f.URL

		query := s.resolveQuery(r.Context(), f)
		if query == "" {
			view.Info = "Please provide text or a URL to get recommendations."
		} else {
			s.recommendInto(r.Context(), query, f, &view)
		}
	}

	render(w, view)
}

// recommendInto runs the pipeline and fills the view with results or
// the appropriate warning.
func (s *Server) recommendInto(ctx context.Context, query string, f form, view *indexView) {
	recs, err := s.service.Recommend(ctx, query)
	if err != nil {
		s.logger.Warn("recommendation failed", "error", err)
		view.Warning = "Error fetching SHL catalog: " + assessrec.ErrorMessage(err)
		return
	}
	if len(recs) == 0 {
		view.Warning = "No product data fetched. Check website structure or network."
		return
	}

	view.Results = recs
	view.DownloadURL = downloadURL(f)

	raw, err := json.MarshalIndent(recs, "", "  ")
	if err == nil {
		view.RawJSON = string(raw)
	}
}

// downloadURL rebuilds the submitted input as query parameters so the
// download handler can recompute the same recommendations.
func downloadURL(f form) string {
	v := url.Values{}
	v.Set("mode", f.Mode)
	if f.Mode == "url" {
		v.Set("url", f.URL)
	} else {
		v.Set("query", f.Query)
	}
	return "/recommendations.json?" + v.Encode()
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	f := parseForm(r)

	query := s.resolveQuery(r.Context(), f)
	if query == "" {
		http.Error(w, "query required", http.StatusBadRequest)
		return
	}

	recs, err := s.service.Recommend(r.Context(), query)
	if err != nil {
		http.Error(w, assessrec.ErrorMessage(err), http.StatusBadGateway)
		return
	}

	// Score carries a json:"-" tag, so the export holds exactly the
	// name, URL, and support flags of each entry, in ranker order.
	// An empty catalog exports as an empty array, never null.
	if recs == nil {
		recs = []assessrec.Recommendation{}
	}
	body, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		http.Error(w, "encoding failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="recommendations.json"`)
	_, _ = w.Write(body)
}
