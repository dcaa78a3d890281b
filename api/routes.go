package api

import (
	"github.com/gorilla/mux"

	"github.com/ciphersql/studio/internal/config"
	"github.com/ciphersql/studio/internal/db"
	"github.com/ciphersql/studio/internal/repository/sqlite"
	"github.com/ciphersql/studio/internal/sandbox"
	"github.com/ciphersql/studio/pkg/hint"
)

// SetupRoutes wires repositories, the sandbox runner and the optional hint
// provider into the HTTP surface. Pass a nil provider to keep hints
// disabled.
func SetupRoutes(cfg *config.Config, version, buildTime string, database *db.DB, provider *hint.Provider) *mux.Router {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware)
	r.Use(RecoveryMiddleware)

	// Repository and sandbox runner share the one connection pool owned
	// by the caller.
	repo := sqlite.New(database, logger)
	runner := sandbox.NewSQLRunner(database)

	// Create handlers
	systemHandler := &SystemHandler{}
	authHandler := NewAuthHandler(repo, cfg.JWTSecret, cfg.TokenDuration)
	assignmentsHandler := NewAssignmentsHandler(repo)
	executeHandler := NewExecuteHandler(runner, repo)
	attemptsHandler := NewAttemptsHandler(repo)
	statsHandler := NewStatsHandler(repo)

	var hintProvider HintProvider
	if provider != nil {
		hintProvider = provider
	}
	hintHandler := NewHintHandler(hintProvider)

	// Open endpoints
	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods("GET")
	r.HandleFunc("/api/auth/register", authHandler.Register).Methods("POST")
	r.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/api/assignments", assignmentsHandler.List).Methods("GET")
	r.HandleFunc("/api/execute", executeHandler.Execute).Methods("POST")
	r.HandleFunc("/api/attempts/{email}", attemptsHandler.ListByEmail).Methods("GET")
	r.HandleFunc("/api/user/stats/{email}", statsHandler.UserStats).Methods("GET")
	r.HandleFunc("/api/hint", hintHandler.Hint).Methods("POST")

	// Protected routes
	protected := r.PathPrefix("/api").Subrouter()
	protected.Use(JWTAuthMiddlewareWithSecret(cfg.JWTSecret))
	protected.HandleFunc("/auth/signout", authHandler.Signout).Methods("POST")
	protected.HandleFunc("/user/me", authHandler.Me).Methods("GET")

	return r
}
