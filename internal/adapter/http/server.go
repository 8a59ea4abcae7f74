// Package adapthttp implements the HTTP adapter: routing, session cookies,
// the OIDC handshake, and the JSON API the static front end consumes.
package adapthttp

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"fittrack/internal/app"
	"fittrack/internal/domain"
)

// Options carries the collaborators a Server is wired with.
type Options struct {
	Flow       *app.ProfileFlow
	Profiles   domain.ProfileAPI
	Weights    domain.BodyWeightAPI
	Sessions   domain.SessionRepository
	SSO        *SSOConfig
	StubMode   bool
	SessionTTL time.Duration
	WebDir     string
	Logger     *zap.Logger
}

// Server is the driving HTTP adapter.
type Server struct {
	flow       *app.ProfileFlow
	profiles   domain.ProfileAPI
	weights    domain.BodyWeightAPI
	sessions   domain.SessionRepository
	sso        *SSOConfig
	stubMode   bool
	sessionTTL time.Duration
	webDir     string
	logger     *zap.Logger
}

// New creates a Server from its options.
func New(opts Options) *Server {
	sso := opts.SSO
	if sso == nil {
		sso = &SSOConfig{}
	}
	return &Server{
		flow:       opts.Flow,
		profiles:   opts.Profiles,
		weights:    opts.Weights,
		sessions:   opts.Sessions,
		sso:        sso,
		stubMode:   opts.StubMode,
		sessionTTL: opts.SessionTTL,
		webDir:     opts.WebDir,
		logger:     opts.Logger,
	}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestLogger)

	r.Route("/auth", func(r chi.Router) {
		r.Get("/sso/login", s.handleSSOLogin)
		r.Get("/sso/callback", s.handleSSOCallback)
		r.Post("/logout", s.handleLogout)
		r.Post("/dev-login", s.handleDevLogin)
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(withNoCache)
		r.Use(s.sessionMiddleware)

		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"ok": true})
		})
		r.Get("/config", s.handleConfig)

		r.Get("/profile/flow", s.handleProfileFlow)
		r.Post("/profile", s.handleProfileCreate)
		r.Patch("/profile", s.handleProfileUpdate)

		r.Get("/body-weight/history", s.handleWeightHistory)
		r.Post("/body-weight", s.handleWeightCreate)
	})

	r.NotFound(spaFromDisk(s.webDir))

	return r
}
