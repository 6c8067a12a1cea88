// Package daemon wires configuration, database, session storage and the web
// service into one runnable server process.
package daemon

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/storage"
	"github.com/gofiber/storage/memory"
	sessionmysql "github.com/gofiber/storage/mysql"
	sessionpostgres "github.com/gofiber/storage/postgres"
	sessionsqlite "github.com/gofiber/storage/sqlite3"
	"github.com/rs/zerolog/log"
	gormmysql "gorm.io/driver/mysql"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/aikya-dev/aikya/internal/config"
	"github.com/aikya-dev/aikya/internal/db/dsn"
	"github.com/aikya-dev/aikya/internal/db/models"
	"github.com/aikya-dev/aikya/internal/web"
	"github.com/aikya-dev/aikya/internal/web/session"
)

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	webService web.Service
}

// Start starts the Daemon's web service and blocks until shutdown.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	return d.webService.Start(fmt.Sprintf(":%d", d.cfg.Webserver.Port))
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) *Daemon {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil
	}

	db, err := gorm.Open(openDialector(cfg), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Str("engine", string(cfg.DB.Engine)).Msg("failed to connect database")
		return nil
	}

	if err = db.AutoMigrate(
		&models.User{},
		&models.ContentSection{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
		return nil
	}

	seed(cfg, db)

	session.Init(openSessionStorage(cfg))

	return &Daemon{
		cfg:        cfg,
		webService: *web.New(cfg, db),
	}
}

// openDialector selects the gorm driver for the configured engine.
func openDialector(cfg *config.Config) gorm.Dialector {
	switch cfg.DB.Engine {
	case config.DBEnginePostgres:
		return gormpostgres.Open(dsn.Create(cfg))
	case config.DBEngineSQLite:
		return sqlite.Open(dsn.Create(cfg))
	default:
		return gormmysql.Open(dsn.Create(cfg))
	}
}

// openSessionStorage selects the console session backend for the configured
// engine. Sessions live next to the application data so one backup covers
// both.
func openSessionStorage(cfg *config.Config) storage.Storage {
	switch cfg.DB.Engine {
	case config.DBEnginePostgres:
		return sessionpostgres.New(sessionpostgres.Config{
			ConnectionURI: dsn.Create(cfg),
			Table:         "sessions",
		})
	case config.DBEngineSQLite:
		return sessionsqlite.New(sessionsqlite.Config{
			Database: cfg.DB.Name,
			Table:    "sessions",
		})
	case config.DBEngineMySQL:
		return sessionmysql.New(sessionmysql.Config{
			ConnectionURI: dsn.Create(cfg),
			Table:         "sessions",
		})
	default:
		log.Warn().Str("engine", string(cfg.DB.Engine)).Msg("unknown db engine, console sessions held in memory")
		return memory.New()
	}
}
