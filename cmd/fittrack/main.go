package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	adapthttp "fittrack/internal/adapter/http"
	"fittrack/internal/adapter/memory"
	"fittrack/internal/adapter/postgres"
	"fittrack/internal/adapter/remote"
	"fittrack/internal/adapter/stub"
	"fittrack/internal/app"
	"fittrack/internal/config"
	"fittrack/internal/domain"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := newLogger(cfg)
	defer func() { _ = logger.Sync() }()

	var sessionRepo domain.SessionRepository
	if cfg.DatabaseURL != "" {
		db, err := postgres.Open(cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("db open", zap.Error(err))
		}
		defer func() { _ = db.Close() }()
		sessionRepo = postgres.NewSessionRepo(db)
	} else {
		logger.Info("no database configured, sessions are in-memory")
		sessionRepo = memory.NewSessionRepo()
	}
	go sweepExpiredSessions(sessionRepo, logger)

	sessionSource := app.ContextSessionSource{}

	var profiles domain.ProfileAPI
	var weights domain.BodyWeightAPI
	if cfg.UseStubAPI() {
		logger.Info("resource APIs in stub mode")
		store := stub.New()
		profiles = store
		weights = store.WeightLog()
	} else {
		client := remote.NewClient(cfg.APIBaseURL, sessionSource, logger.Named("api"))
		profiles = remote.NewProfileAPI(client)
		weights = remote.NewWeightAPI(client)
	}

	sso, err := newSSOConfig(cfg)
	if err != nil {
		logger.Fatal("oidc setup", zap.Error(err))
	}

	server := adapthttp.New(adapthttp.Options{
		Flow:       app.NewProfileFlow(sessionSource, profiles, logger.Named("flow")),
		Profiles:   profiles,
		Weights:    weights,
		Sessions:   sessionRepo,
		SSO:        sso,
		StubMode:   cfg.UseStubAPI(),
		SessionTTL: cfg.SessionTTL,
		WebDir:     cfg.WebDir,
		Logger:     logger.Named("http"),
	})

	logger.Info("listening", zap.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, server.Handler()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("serve", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) *zap.Logger {
	var logger *zap.Logger
	var err error
	if cfg.IsProduction() {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	return logger
}

func newSSOConfig(cfg *config.Config) (*adapthttp.SSOConfig, error) {
	if !cfg.SSOConfigured() {
		return &adapthttp.SSOConfig{}, nil
	}
	provider, err := oidc.NewProvider(context.Background(), cfg.OIDCIssuerURL)
	if err != nil {
		return nil, err
	}
	return &adapthttp.SSOConfig{
		Enabled:  true,
		Provider: provider,
		OAuth2Config: oauth2.Config{
			ClientID:     cfg.OIDCClientID,
			ClientSecret: cfg.OIDCClientSecret,
			RedirectURL:  cfg.OIDCRedirectURL,
			Endpoint:     provider.Endpoint(),
			Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
		},
	}, nil
}

func sweepExpiredSessions(repo domain.SessionRepository, logger *zap.Logger) {
	for range time.Tick(time.Hour) {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := repo.DeleteExpired(ctx); err != nil {
			logger.Warn("session sweep failed", zap.Error(err))
		}
		cancel()
	}
}
