// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"github.com/gasaunivers/campushub/internal/app/system/indexes"
	"go.uber.org/zap"
)

// EnsureSchema creates the collection indexes. Safe to run on every
// startup; Mongo treats re-creating an identical index as a no-op.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	return indexes.EnsureAll(ctx, deps.MongoDatabase, logger)
}
