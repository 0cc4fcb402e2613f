// Package server exposes conversions over HTTP.
//
// Routes:
//
//	GET  /healthz              liveness probe
//	POST /v1/render/{view}     element JSON in, image out (view: pcb, schematic, nets)
//	POST /v1/bounds            element JSON in, bounds and frame report out
//
// Render accepts the query parameters width, height, format (svg, png, pdf,
// json, dot), layer, board, panel, padding (true/false), ratsnest, ports,
// soldermask, grid and major_grid. Every response carries an X-Request-Id,
// and errors are JSON objects carrying the error code:
//
//	{"error": {"code": "INVALID_VIEW", "message": "..."}, "request_id": "..."}
//
// Artifacts are cached through the [pipeline.Runner]; X-Cache reports hit
// or miss.
package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/circuitsvg/pkg/buildinfo"
	cio "github.com/matzehuels/circuitsvg/pkg/io"
	"github.com/matzehuels/circuitsvg/pkg/pipeline"
)

// DefaultShutdownTimeout bounds graceful shutdown in Serve.
const DefaultShutdownTimeout = 10 * time.Second

// Server holds the handlers' dependencies.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
}

// New returns a Server rendering with runner. A nil logger logs nothing.
func New(runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if runner == nil {
		runner = pipeline.NewRunner(nil, nil, logger)
	}
	return &Server{runner: runner, logger: logger}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(s.recoverer)

	r.Get("/healthz", s.health)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/render/{view}", s.handle(s.render))
		r.Post("/bounds", s.handle(s.bounds))
	})
	r.NotFound(s.handle(func(http.ResponseWriter, *http.Request) error {
		return statusError(http.StatusNotFound, "no such route")
	}))
	r.MethodNotAllowed(s.handle(func(http.ResponseWriter, *http.Request) error {
		return statusError(http.StatusMethodNotAllowed, "method not allowed")
	}))
	return r
}

// NewHTTPServer wraps h with limits suited to rendering requests.
func NewHTTPServer(h http.Handler, logger *log.Logger) *http.Server {
	return &http.Server{
		MaxHeaderBytes: 1 << 18,
		ReadTimeout:    time.Minute,
		WriteTimeout:   time.Minute,
		IdleTimeout:    time.Hour,
		ErrorLog:       logger.StandardLog(log.StandardLogOptions{ForceLevel: log.ErrorLevel}),
		Handler:        http.MaxBytesHandler(h, cio.MaxInputSize),
	}
}

// Serve serves on l until ctx is cancelled, then shuts down gracefully.
func Serve(ctx context.Context, shutdownTimeout time.Duration, s *http.Server, l net.Listener) error {
	s.BaseContext = func(net.Listener) context.Context {
		return ctx
	}

	done := make(chan error, 1)
	go func() {
		done <- s.Serve(l)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		return s.Shutdown(ctx)
	}
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Software(),
	})
}
