// internal/app/features/auth/handler.go
package auth

import (
	"github.com/gasaunivers/campushub/internal/app/system/auth"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	DB     *mongo.Database
	Tokens *auth.TokenManager
	Log    *zap.Logger
}

// NewHandler constructs the auth feature handler bound to the given
// Mongo database, token manager and logger.
func NewHandler(db *mongo.Database, tokens *auth.TokenManager, logger *zap.Logger) *Handler {
	return &Handler{
		DB:     db,
		Tokens: tokens,
		Log:    logger,
	}
}
