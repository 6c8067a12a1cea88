package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/template/html/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/aikya-dev/aikya/internal/auth"
	"github.com/aikya-dev/aikya/internal/config"
	fiberlogger "github.com/aikya-dev/aikya/internal/logger/adapter/fiber"
	"github.com/aikya-dev/aikya/internal/web/handler/api"
	"github.com/aikya-dev/aikya/internal/web/handler/dashboard"
	"github.com/aikya-dev/aikya/internal/web/handler/home"
	"github.com/aikya-dev/aikya/internal/web/handler/login"
	"github.com/aikya-dev/aikya/internal/web/handler/logout"
	"github.com/aikya-dev/aikya/internal/web/handler/section"
)

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
	db           *gorm.DB
	authService  *auth.Service
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for graceful shutdown of the web service.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	// stop fiber http server
	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		err := s.App.Shutdown()
		if err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates a new web service with the given configuration.
func New(cfg *config.Config, db *gorm.DB) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if db == nil {
		panic("db cannot be nil")
	}

	httpFS := http.FS(templateEmbedFS{embeddedTemplates})
	templateEngine := html.NewFileSystem(httpFS, ".gohtml")

	// in debug mode, use local filesystem for templates
	if cfg.DevMode {
		templateEngine = html.New("./internal/web/templates", ".gohtml")
		templateEngine.ShouldReload = true

		log.Warn().Msg("debug mode enabled: using local filesystem for templates")
	}

	// create fiber app
	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        "Aikya",
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
			Views:          templateEngine,
		},
	)

	// access logs through the shared zerolog logger
	app.Use(fiberlogger.New(fiberlogger.Config{Config: cfg.Log}))

	// serve embedded static files
	app.Use("/static",
		filesystem.New(
			filesystem.Config{
				Root:       http.FS(embeddedStaticFiles),
				PathPrefix: "static",
				Browse:     false,
			},
		),
	)

	// console cookie auth; the JSON API carries its own bearer middleware
	app.Use(AuthMiddleware)

	authService := auth.NewService(db, cfg.Webserver.JWTSecret)

	service := &Service{
		cfg:         cfg,
		App:         app,
		db:          db,
		authService: authService,
	}

	// init handlers (they register their own routes)
	if err := login.Handler.Init(app, cfg, db, authService); err != nil {
		log.Fatal().Err(err).Msg("failed to init login handler")
	}

	logout.Handler.Init(app, cfg)
	dashboard.Handler.Init(app, cfg, db)
	section.Handler.Init(app, cfg, db)
	api.Handler.Init(app, cfg, db, authService)
	home.Handler.Init(app, cfg, db)

	return service
}
