// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (ports, TLS,
// logging level, request limits); AppConfig is everything specific to
// campushub: the Mongo connection, token signing, and seed data.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Bearer token configuration
	JWTSecret string        // HMAC signing secret (must be strong in production)
	JWTExpiry time.Duration // Token lifetime (default 24h)

	// SuperAdmin bootstrap: when set and no directeur exists yet, a
	// directeur account is seeded with this email on startup.
	SuperAdminEmail string
	SuperAdminName  string
}
