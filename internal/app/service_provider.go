package app

import (
	authAPI "auth_backend/internal/api/auth"
	"auth_backend/internal/api/middleware"
	tenantAPI "auth_backend/internal/api/tenant"
	userAPI "auth_backend/internal/api/user"
	"auth_backend/internal/config"
	"auth_backend/internal/config/env"
	"auth_backend/internal/model"
	"auth_backend/internal/repository"
	"auth_backend/internal/repository/refresh_repo"
	"auth_backend/internal/repository/tenant_repo"
	"auth_backend/internal/repository/user_repo"
	"auth_backend/internal/service"
	authServ "auth_backend/internal/service/auth"
	tenantServ "auth_backend/internal/service/tenant"
	userServ "auth_backend/internal/service/user"
	"auth_backend/pkg/resp"
	"auth_backend/pkg/token"
	"context"
	"net/http"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Token bits
	jwtConfig config.JWTConfig
	codec     *token.Codec

	// Cookie bits
	cookieCfg config.CookieConfig

	// Repositories
	userRepo    repository.UserRepository
	tenantRepo  repository.TenantRepository
	refreshRepo repository.RefreshTokenRepository

	// Services
	authService   service.AuthService
	userService   service.UserService
	tenantService service.TenantService

	// Handlers
	authHand   *authAPI.Handler
	userHand   *userAPI.Handler
	tenantHand *tenantAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) JWTConfig() config.JWTConfig {
	if sp.jwtConfig == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtConfig = cfg
	}
	return sp.jwtConfig
}

func (sp *ServiceProvider) CookieCfg() config.CookieConfig {
	if sp.cookieCfg == nil {
		cfg, err := env.NewCookieConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get cookie config: " + err.Error())
		}
		sp.cookieCfg = cfg
	}
	return sp.cookieCfg
}

func (sp *ServiceProvider) TokenCodec() *token.Codec {
	if sp.codec == nil {
		cfg := sp.JWTConfig()

		codec, err := token.NewCodec(token.Config{
			AccessPrivateKey: cfg.AccessPrivateKey(),
			AccessPublicKey:  cfg.AccessPublicKey(),
			RefreshSecret:    cfg.RefreshSecret(),
			AccessTTL:        cfg.AccessTokenDuration(),
			RefreshTTL:       cfg.RefreshTokenDuration(),
			Issuer:           cfg.Issuer(),
		})
		if err != nil {
			panic("failed to create token codec: " + err.Error())
		}
		sp.codec = codec
	}
	return sp.codec
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx))
	}
	return sp.userRepo
}

func (sp *ServiceProvider) TenantRepo(ctx context.Context) repository.TenantRepository {
	if sp.tenantRepo == nil {
		sp.tenantRepo = tenant_repo.NewTenantRepository(sp.DBClient(ctx))
	}
	return sp.tenantRepo
}

func (sp *ServiceProvider) RefreshRepo(ctx context.Context) repository.RefreshTokenRepository {
	if sp.refreshRepo == nil {
		sp.refreshRepo = refresh_repo.NewRefreshTokenRepository(sp.DBClient(ctx))
	}
	return sp.refreshRepo
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authService == nil {
		sp.authService = authServ.NewAuthService(
			sp.TXManager(ctx),
			sp.UserRepo(ctx),
			sp.RefreshRepo(ctx),
			sp.TokenCodec(),
			sp.JWTConfig(),
		)
	}
	return sp.authService
}

func (sp *ServiceProvider) UserService(ctx context.Context) service.UserService {
	if sp.userService == nil {
		sp.userService = userServ.NewUserService(
			sp.TXManager(ctx),
			sp.UserRepo(ctx),
			sp.RefreshRepo(ctx),
		)
	}
	return sp.userService
}

func (sp *ServiceProvider) TenantService(ctx context.Context) service.TenantService {
	if sp.tenantService == nil {
		sp.tenantService = tenantServ.NewTenantService(sp.TenantRepo(ctx))
	}
	return sp.tenantService
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{
			Serv:      sp.AuthService(ctx),
			CookieCfg: sp.CookieCfg(),
		})
	}
	return sp.authHand
}

func (sp *ServiceProvider) UserHandler(ctx context.Context) *userAPI.Handler {
	if sp.userHand == nil {
		sp.userHand = userAPI.NewHandler(userAPI.HandlerDeps{
			Serv: sp.UserService(ctx),
		})
	}
	return sp.userHand
}

func (sp *ServiceProvider) TenantHandler(ctx context.Context) *tenantAPI.Handler {
	if sp.tenantHand == nil {
		sp.tenantHand = tenantAPI.NewHandler(tenantAPI.HandlerDeps{
			Serv: sp.TenantService(ctx),
		})
	}
	return sp.tenantHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   sp.CookieCfg().AllowedOrigins(),
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: true, // токены ходят в cookies
			MaxAge:           60 * 15,
		}))

		authenticate := middleware.Authenticate(sp.TokenCodec())
		validateRefresh := middleware.ValidateRefresh(sp.TokenCodec(), sp.RefreshRepo(ctx))
		adminOnly := middleware.CanAccess(model.RoleAdmin)

		// Auth endpoints
		authHandler := sp.AuthHandler(ctx)
		r.Route("/auth", func(rr chi.Router) {
			rr.Post("/register", authHandler.Register)
			rr.Post("/login", authHandler.Login)
			rr.With(authenticate).Get("/self", authHandler.Self)
			rr.With(validateRefresh).Post("/refresh", authHandler.Refresh)
			rr.With(validateRefresh).Post("/logout", authHandler.Logout)
		})

		// Tenant endpoints (только admin)
		tenantHandler := sp.TenantHandler(ctx)
		r.Route("/tenants", func(rr chi.Router) {
			rr.Use(authenticate, adminOnly)
			rr.Post("/", tenantHandler.Create)
			rr.Get("/", tenantHandler.List)
			rr.Get("/{id}", tenantHandler.GetByID)
			rr.Put("/{id}", tenantHandler.Update)
			rr.Delete("/{id}", tenantHandler.Delete)
		})

		// User endpoints (только admin)
		userHandler := sp.UserHandler(ctx)
		r.Route("/users", func(rr chi.Router) {
			rr.Use(authenticate, adminOnly)
			rr.Post("/", userHandler.Create)
			rr.Get("/", userHandler.List)
			rr.Get("/{id}", userHandler.GetByID)
			rr.Put("/{id}", userHandler.Update)
			rr.Delete("/{id}", userHandler.Delete)
		})

		// Публичный ключ проверки access токенов
		r.Get("/.well-known/jwks.json", func(w http.ResponseWriter, _ *http.Request) {
			resp.WriteJSONResponse(w, http.StatusOK, sp.TokenCodec().JWKS())
		})

		sp.router = r
	}

	return sp.router
}
