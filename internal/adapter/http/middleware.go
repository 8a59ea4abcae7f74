package adapthttp

import (
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"fittrack/internal/app"
	"fittrack/internal/domain"
)

const sessionCookieName = "session"

// sessionMiddleware resolves the session cookie into a request-scoped
// session. Requests without a valid session still proceed; each handler
// decides whether one is required.
func (s *Server) sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookieName)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		rec, err := s.sessions.GetByToken(r.Context(), cookie.Value)
		if err != nil {
			s.logger.Error("session lookup failed", zap.Error(err))
			next.ServeHTTP(w, r)
			return
		}
		if rec == nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := app.WithSession(r.Context(), &domain.Session{
			Subject:     rec.Subject,
			Email:       rec.Email,
			AccessToken: rec.AccessToken,
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requestLogger logs one line per request.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)))
	})
}
