package adapthttp

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"fittrack/internal/domain"
)

// SSOConfig carries the OIDC wiring. A zero value means SSO is disabled and
// only the stub dev sign-in is available.
type SSOConfig struct {
	Enabled      bool
	Provider     *oidc.Provider
	OAuth2Config oauth2.Config
}

func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"ssoEnabled": s.sso.Enabled,
		"apiStub":    s.stubMode,
	})
}

func (s *Server) handleSSOLogin(w http.ResponseWriter, r *http.Request) {
	if !s.sso.Enabled {
		http.Error(w, "sso disabled", http.StatusNotFound)
		return
	}
	state := randomToken(16)
	http.SetCookie(w, &http.Cookie{
		Name:     "oauth_state",
		Value:    state,
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode, // Lax required for cross-site redirect returns
		MaxAge:   300,
	})
	http.Redirect(w, r, s.sso.OAuth2Config.AuthCodeURL(state), http.StatusFound)
}

func (s *Server) handleSSOCallback(w http.ResponseWriter, r *http.Request) {
	if !s.sso.Enabled {
		http.Error(w, "sso disabled", http.StatusNotFound)
		return
	}

	state, err := r.Cookie("oauth_state")
	if err != nil || r.URL.Query().Get("state") != state.Value {
		http.Error(w, "invalid state", http.StatusBadRequest)
		return
	}

	http.SetCookie(w, &http.Cookie{Name: "oauth_state", MaxAge: -1, Path: "/"})

	token, err := s.sso.OAuth2Config.Exchange(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		s.logger.Error("code exchange failed", zap.Error(err))
		http.Error(w, "failed to exchange token", http.StatusInternalServerError)
		return
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok {
		http.Error(w, "no id_token", http.StatusInternalServerError)
		return
	}

	idToken, err := s.sso.Provider.Verifier(&oidc.Config{ClientID: s.sso.OAuth2Config.ClientID}).Verify(r.Context(), rawIDToken)
	if err != nil {
		http.Error(w, "failed to verify token", http.StatusInternalServerError)
		return
	}

	var claims struct {
		Sub   string `json:"sub"`
		Email string `json:"email"`
	}
	if err = idToken.Claims(&claims); err != nil {
		http.Error(w, "failed to parse claims", http.StatusInternalServerError)
		return
	}
	if claims.Sub == "" || claims.Email == "" {
		http.Error(w, "incomplete identity claims", http.StatusInternalServerError)
		return
	}

	if err := s.startSession(w, r, claims.Sub, claims.Email, token.AccessToken); err != nil {
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

// handleDevLogin signs in without an identity provider. Stub mode only; the
// access token it mints is never sent anywhere real.
func (s *Server) handleDevLogin(w http.ResponseWriter, r *http.Request) {
	if !s.stubMode {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	var req struct {
		Email string `json:"email"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Email == "" {
		req.Email = "dev@example.com"
	}

	if err := s.startSession(w, r, "dev|"+req.Email, req.Email, "dev-"+randomToken(8)); err != nil {
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(sessionCookieName)
	if err == nil {
		if err := s.sessions.Delete(r.Context(), cookie.Value); err != nil {
			s.logger.Error("session delete failed", zap.Error(err))
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// startSession persists a session record and sets the opaque cookie. The
// provider's access token stays server-side; only the random token travels
// to the browser.
func (s *Server) startSession(w http.ResponseWriter, r *http.Request, subject, email, accessToken string) error {
	now := time.Now().UTC()
	rec := domain.SessionRecord{
		Token:       randomToken(32),
		Subject:     subject,
		Email:       email,
		AccessToken: accessToken,
		ExpiresAt:   now.Add(s.sessionTTL),
		CreatedAt:   now,
	}
	if err := s.sessions.Create(r.Context(), rec); err != nil {
		s.logger.Error("session create failed", zap.Error(err))
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    rec.Token,
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(s.sessionTTL / time.Second),
	})
	return nil
}

func randomToken(bytes int) string {
	b := make([]byte, bytes)
	_, _ = rand.Read(b)
	return base64.RawURLEncoding.EncodeToString(b)
}
