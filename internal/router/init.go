package router

import (
	"github.com/vidserve/backend/internal/application"
	"github.com/vidserve/backend/internal/container"
	"github.com/vidserve/backend/internal/infrastructure/mongodb"
	"github.com/vidserve/backend/internal/infrastructure/sessions"
	"github.com/vidserve/backend/internal/infrastructure/youtube"
	handlers "github.com/vidserve/backend/internal/interface/http"
	"github.com/vidserve/backend/internal/interface/middleware"
	"github.com/vidserve/backend/internal/router/modules"
)

func buildUserModule() *modules.UserModule {
	cfg := container.GetConfig()

	store := mongodb.NewStore(container.GetMongo(), container.GetLogger())
	repo := mongodb.NewUserRepository(store, cfg.UsersCollection)
	sessionStore := sessions.NewRedisStore(container.GetRedis())
	cache := application.NewIdentityCache(cfg.UserCacheTTL)

	svc := application.NewService(repo, sessionStore, cache, container.GetJWT(), container.GetLogger())
	handler := handlers.NewUserHandler(svc, container.GetLogger(), cfg.CookieDomain, cfg.CookieSecure)

	return modules.NewUserModule(handler, middleware.Auth(svc))
}

func buildVideoModule() *modules.VideoModule {
	svc := application.NewVideoService(youtube.New(), container.GetLogger())
	return modules.NewVideoModule(handlers.NewVideoHandler(svc, container.GetLogger()))
}

// InitModules initializes all application modules and registers them with
// the router registry. Called once during startup.
func InitModules(r *Registry) {
	r.Add(buildUserModule())
	r.Add(buildVideoModule())
	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
