package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"pointsboard/internal/adapters/http/middleware"
	"pointsboard/internal/adapters/http/perf"
	activityStore "pointsboard/internal/adapters/storage/activity"
	studentStore "pointsboard/internal/adapters/storage/student"
	"pointsboard/internal/domain/badge"
	"pointsboard/internal/domain/milestone"
	"pointsboard/internal/domain/page"
)

//go:embed templates/*.html static/*
var assets embed.FS

// Stores holds all storage dependencies.
type Stores struct {
	StudentStore  studentStore.Store
	ActivityStore activityStore.Store
}

// Options configures the middleware chain built by NewMux.
type Options struct {
	CSRFKey            []byte // 32 bytes
	Secure             bool   // production: Secure cookies, CSRF origin checks over TLS
	TrustedOrigins     []string
	SlowRequest        time.Duration
	RateLimitPerSecond int // per client IP; 0 uses DefaultRateLimitPerSecond
}

// DefaultRateLimitPerSecond is the per-IP request budget when Options leaves it unset.
const DefaultRateLimitPerSecond = 10

// Server carries the dependencies shared by every handler.
type Server struct {
	stores     Stores
	milestones []milestone.Milestone
	badges     []badge.Badge
	sessions   *middleware.SessionStore
	collector  *perf.Collector
	templates  map[string]*template.Template
	limiter    *middleware.RateLimiter
}

// NewServer parses the embedded templates and returns a server over the given stores.
// The milestone and badge tables are fixed for the lifetime of the server.
// PRE: stores are non-nil; reference tables are validated
// POST: Returns a ready server or a template parse error
func NewServer(s Stores, milestones []milestone.Milestone, badges []badge.Badge, collector *perf.Collector) (*Server, error) {
	templates, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	return &Server{
		stores:     s,
		milestones: milestones,
		badges:     badges,
		sessions:   middleware.NewSessionStore(),
		collector:  collector,
		templates:  templates,
	}, nil
}

// pageTemplates lists one template per page identity plus the bare layout.
var pageTemplates = []string{page.Login, page.Student, page.Mentor, page.Floorwing, page.Admin, "blank"}

func parseTemplates() (map[string]*template.Template, error) {
	out := make(map[string]*template.Template, len(pageTemplates))
	for _, name := range pageTemplates {
		tpl, err := template.New("layout.html").Funcs(templateFuncs).ParseFS(assets, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		out[name] = tpl
	}
	return out, nil
}

// Routes registers every handler on a fresh mux without any middleware.
func (srv *Server) Routes() *http.ServeMux {
	static, _ := fs.Sub(assets, "static")

	mux := http.NewServeMux()
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(static)))
	mux.HandleFunc("GET /healthz", handleHealthz)
	mux.HandleFunc("GET /admin/perf", srv.handlePerf)
	mux.HandleFunc("GET /", srv.handlePage)
	mux.HandleFunc("POST /login", srv.handleLogin)
	mux.HandleFunc("POST /logout", srv.handleLogout)
	mux.HandleFunc("POST /mentor/points", srv.handleAssignPoints)
	mux.HandleFunc("POST /admin/students", srv.handleCreateStudent)
	return mux
}

// NewMux wires HTTP handlers for the app behind the middleware chain.
// Call Close on the server when the listener shuts down.
func NewMux(srv *Server, opts Options) http.Handler {
	middleware.SecureCookies = opts.Secure

	rate := opts.RateLimitPerSecond
	if rate <= 0 {
		rate = DefaultRateLimitPerSecond
	}
	srv.limiter = middleware.NewRateLimiter(rate, time.Second)

	// Apply middleware: Timing -> RateLimit -> Sessions -> CSRF -> SecurityHeaders -> Mux
	return middleware.Chain(srv.Routes(),
		middleware.SecurityHeaders,
		middleware.CSRF(opts.CSRFKey, opts.Secure, opts.TrustedOrigins),
		middleware.Sessions(srv.sessions),
		middleware.RateLimit(srv.limiter),
		middleware.Timing(srv.collector, opts.SlowRequest),
	)
}

// Close releases background resources started by NewMux.
func (srv *Server) Close() {
	if srv.limiter != nil {
		srv.limiter.Close()
	}
}
