// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"errors"

	"github.com/dalemusser/waffle/config"
	userstore "github.com/gasaunivers/campushub/internal/app/store/users"
	"github.com/gasaunivers/campushub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections
// and schema setup are complete, but before the HTTP handler is built.
// It seeds the directeur account when superadmin_email is configured
// and no account with that email exists yet; the generated credential
// is printed once to the log.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if appCfg.SuperAdminEmail == "" {
		return nil
	}

	store := userstore.New(deps.MongoDatabase)
	if _, err := store.GetByEmail(ctx, appCfg.SuperAdminEmail); err == nil {
		return nil
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}

	password := userstore.GeneratePassword()
	created, err := store.Create(ctx, models.User{
		Name:  appCfg.SuperAdminName,
		Email: appCfg.SuperAdminEmail,
		Role:  models.RoleDirecteur,
	}, password)
	if err != nil {
		return err
	}

	logger.Info("seeded directeur account",
		zap.String("email", created.Email),
		zap.String("initial_password", password))
	return nil
}
