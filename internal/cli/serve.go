package cli

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wingetreport/pkg/report"
)

const (
	defaultListenAddr = "127.0.0.1:8080"
	shutdownTimeout   = 5 * time.Second
)

// serveCommand creates the serve command that publishes the report over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		opts sourceOpts
		addr string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Check packages once and serve the report over HTTP",
		Long: `Check packages once and serve the report over HTTP.

Routes:
  GET  /                   HTML report
  GET  /report.csv         CSV report
  GET  /report.json        JSON report
  GET  /api/records        all records
  GET  /api/records/{id}   one record (case-insensitive id)
  POST /api/refresh        re-run the check
  GET  /healthz            liveness`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), &opts, addr)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVar(&addr, "addr", defaultListenAddr, "listen address")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts *sourceOpts, addr string) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}
	runner, err := c.newRunner(opts, cfg)
	if err != nil {
		return err
	}

	refresh := func(ctx context.Context) (report.Document, error) {
		result, err := resolveAll(withLogger(ctx, c.Logger), runner, opts.options(cfg, c.Logger))
		if err != nil {
			return report.Document{}, err
		}
		return documentOf(result), nil
	}

	srv := newReportServer(refresh, c.Logger)
	if err := srv.refresh(ctx); err != nil {
		return err
	}

	server := &http.Server{
		Addr:              addr,
		Handler:           srv.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	printInfo("Listening on %s", addr)
	printSuccess("Serving report")
	printKeyValue("URL", StyleLink.Render("http://"+addr+"/"))
	printDetail("Press Ctrl+C to stop")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			c.Logger.Warn("shutdown", "err", err)
		}
		return ctx.Err()
	}
}

// refreshFunc produces a fresh report document.
type refreshFunc func(ctx context.Context) (report.Document, error)

// reportServer holds the latest document and serves it.
type reportServer struct {
	mu      sync.RWMutex
	doc     report.Document
	fetch   refreshFunc
	logger  *log.Logger
	running sync.Mutex // one refresh at a time
}

func newReportServer(fetch refreshFunc, logger *log.Logger) *reportServer {
	return &reportServer{fetch: fetch, logger: logger}
}

func (s *reportServer) refresh(ctx context.Context) error {
	s.running.Lock()
	defer s.running.Unlock()
	doc, err := s.fetch(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.doc = doc
	s.mu.Unlock()
	return nil
}

func (s *reportServer) document() report.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc
}

func (s *reportServer) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/", s.handleFile(report.FormatHTML, "text/html; charset=utf-8"))
	r.Get("/report.csv", s.handleFile(report.FormatCSV, "text/csv; charset=utf-8"))
	r.Get("/report.json", s.handleFile(report.FormatJSON, "application/json"))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/records", s.handleRecords)
		r.Get("/records/{id}", s.handleRecord)
		r.Post("/refresh", s.handleRefresh)
	})
	return r
}

func (s *reportServer) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).Round(time.Microsecond))
	})
}

func (s *reportServer) handleFile(format, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", contentType)
		if err := report.Write(w, format, s.document()); err != nil {
			s.logger.Error("render report", "format", format, "err", err)
		}
	}
}

func (s *reportServer) handleRecords(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.document().Records)
}

func (s *reportServer) handleRecord(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	for _, rec := range s.document().Records {
		if strings.EqualFold(rec.ID, id) {
			writeJSON(w, http.StatusOK, rec)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "package not in report: " + id})
}

func (s *reportServer) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if err := s.refresh(r.Context()); err != nil {
		s.logger.Error("refresh", "err", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	doc := s.document()
	writeJSON(w, http.StatusOK, map[string]any{
		"run_id":       doc.RunID,
		"generated_at": doc.GeneratedAt,
		"packages":     len(doc.Records),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
