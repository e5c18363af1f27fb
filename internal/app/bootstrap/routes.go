// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	authfeature "github.com/gasaunivers/campushub/internal/app/features/auth"
	healthfeature "github.com/gasaunivers/campushub/internal/app/features/health"
	promotionsfeature "github.com/gasaunivers/campushub/internal/app/features/promotions"
	usersfeature "github.com/gasaunivers/campushub/internal/app/features/users"
	worksfeature "github.com/gasaunivers/campushub/internal/app/features/works"
	"github.com/gasaunivers/campushub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup,
// and the Startup hook have completed. The API is consumed by the SPA,
// so CORS is open and every route under /api (except auth) expects a
// bearer token.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	tokens, err := auth.NewTokenManager(appCfg.JWTSecret, appCfg.JWTExpiry, logger)
	if err != nil {
		logger.Error("token manager init failed", zap.Error(err))
		return nil, err
	}

	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	// Global auth middleware: loads the bearer token's user into
	// context so handlers can use auth.CurrentUser(r).
	r.Use(tokens.LoadBearerUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Credential endpoints (public)
	authHandler := authfeature.NewHandler(deps.MongoDatabase, tokens, logger)
	r.Mount("/api/auth", authfeature.Routes(authHandler))

	// User administration
	usersHandler := usersfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/api/users", usersfeature.Routes(usersHandler, tokens))

	// Promotions
	promotionsHandler := promotionsfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/api/promotions", promotionsfeature.Routes(promotionsHandler, tokens))

	// Works (travaux) and assignment batches
	worksHandler := worksfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/api/works", worksfeature.Routes(worksHandler, tokens))

	return r, nil
}
