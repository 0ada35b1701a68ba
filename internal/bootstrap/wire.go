package bootstrap

import (
	"net/http"

	"github.com/aishki/bazario/internal/application/auth"
	"github.com/aishki/bazario/internal/config"
	"github.com/aishki/bazario/internal/infrastructure/db/supabase"
	"github.com/aishki/bazario/internal/infrastructure/memory"
	"github.com/aishki/bazario/internal/infrastructure/security"
	"github.com/aishki/bazario/internal/logger"
	http_handlers "github.com/aishki/bazario/internal/transport/http/handlers"
	"github.com/aishki/bazario/internal/transport/http/router"
)

/*
========================
 Public entry (prod)
========================
*/

func NewServer() (*http.Server, func(), error) {
	return newServer(defaultDeps())
}

// NewServerWithDeps allows injecting dependencies for testing
func NewServerWithDeps(deps Deps) (*http.Server, func(), error) {
	return newServer(deps)
}

/*
========================
 Dependency injection
========================
*/

type Deps struct {
	LoadConfig func() (*config.Config, error)

	// NewGateway builds the REST gateway to the data store. Leave nil to
	// use the real client.
	NewGateway func(baseURL, apiKey string) supabase.Gateway

	NewRouter func(router.Deps) (http.Handler, error)
}

func defaultDeps() Deps {
	return Deps{
		LoadConfig: config.Load,
		NewGateway: func(baseURL, apiKey string) supabase.Gateway {
			return supabase.NewClient(baseURL, apiKey)
		},
		NewRouter: router.New,
	}
}

/*
========================
 Core bootstrap logic
========================
*/

func newServer(deps Deps) (*http.Server, func(), error) {
	// 0) config
	cfg, err := deps.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	// 1) store
	var userRepo auth.UserRepo
	var profileRepo auth.ProfileRepo

	if cfg.SupabaseURL != "" {
		gw := deps.NewGateway(cfg.SupabaseURL, cfg.SupabaseKey)
		userRepo = supabase.NewUserRepo(gw)
		profileRepo = supabase.NewProfileRepo(gw)
		logger.Logger.Info().Str("store", "supabase").Msg("data store configured")
	} else {
		// Config only allows an empty store URL in dev.
		store := memory.NewStore()
		userRepo = store.Users()
		profileRepo = store.Profiles()
		logger.Logger.Warn().Msg("no store configured; using in-memory store")
	}

	// 2) security
	hasher := security.NewBcryptHasher(cfg.BcryptCost)

	// 3) service
	authSvc := auth.NewService(userRepo, profileRepo, hasher)

	// 4) handlers + router
	handler, err := deps.NewRouter(router.Deps{
		Health:          http_handlers.NewHealthHandler(),
		Auth:            http_handlers.NewAuthHandler(authSvc),
		BodyLimitBytes:  cfg.BodyLimitBytes,
		RateLimitPerMin: cfg.RateLimitPerMin,
	})
	if err != nil {
		return nil, nil, err
	}

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      handler,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	cleanup := func() {}

	return srv, cleanup, nil
}
