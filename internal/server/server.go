package server

import (
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/claude/timesplit/internal/planner"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// PlanBuilder computes a plan from request inputs.
type PlanBuilder interface {
	Build(req planner.Request) (*planner.Plan, error)
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	planner PlanBuilder
	version string
	log     *slog.Logger
	router  chi.Router
}

// New creates a new Server with all routes configured.
func New(builder PlanBuilder, version string, log *slog.Logger) *Server {
	s := &Server{
		planner: builder,
		version: version,
		log:     log,
		router:  chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(middleware.RealIP)
	s.router.Use(RequestLogging(s.log))
	s.router.Use(Recover(s.log))
	s.router.Use(CORS)

	// POST reads the JSON body, every other method reads the query string.
	s.router.HandleFunc("/api/plan-time-split", s.handlePlan)
	s.router.Get("/api/rules", s.handleRules)
	s.router.Get("/healthz", s.handleHealth)
}

// SetMCP mounts an MCP transport handler under /mcp.
func (s *Server) SetMCP(h http.Handler) {
	s.router.Mount("/mcp", h)
}

// SetFrontend mounts the embedded client filesystem.
// Unmatched routes serve index.html.
func (s *Server) SetFrontend(webFS fs.FS) {
	fileServer := http.FileServerFS(webFS)

	s.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
			return
		}
		// Try to serve the exact file first
		f, err := webFS.Open(r.URL.Path[1:]) // strip leading /
		if err == nil {
			f.Close()
			fileServer.ServeHTTP(w, r)
			return
		}
		r.URL.Path = "/"
		fileServer.ServeHTTP(w, r)
	})
}
