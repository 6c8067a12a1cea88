// Package dsn provides Data Source Name construction utilities for database connections.
package dsn

import (
	"fmt"

	"github.com/aikya-dev/aikya/internal/config"
)

// Create builds the Data Source Name for the configured engine.
func Create(cfg *config.Config) string {
	switch cfg.DB.Engine {
	case config.DBEnginePostgres:
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s %s",
			cfg.DB.Host,
			cfg.DB.Port,
			cfg.DB.User,
			cfg.DB.Password,
			cfg.DB.Name,
			cfg.DB.Extras,
		)
	case config.DBEngineSQLite:
		return cfg.DB.Name
	default: // mysql
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
			cfg.DB.User,
			cfg.DB.Password,
			cfg.DB.Host,
			cfg.DB.Port,
			cfg.DB.Name,
			cfg.DB.Extras,
		)
	}
}
