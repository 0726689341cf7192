package app

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"

	"skill-swap/internal/config"
	"skill-swap/internal/database/migration"
	"skill-swap/internal/database/seeder"
	"skill-swap/internal/delivery/http/handler"
	"skill-swap/internal/delivery/http/middleware"
	"skill-swap/internal/delivery/http/routes"
	"skill-swap/internal/ws"
	"skill-swap/migrations"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// New builds the HTTP application on top of an already wired container.
func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	registerGlobalMiddleware(f, c.Logger)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

// Bootstrap connects dependencies, prepares the schema and starts the
// notification hub. The returned cleanup stops the hub and closes
// connections.
func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	if logger == nil {
		logger = log.Default()
	}

	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	if err := prepareDatabase(ctx, c); err != nil {
		cancel()
		_ = c.Close()
		return nil, nil, err
	}

	go c.Hub.Run(ctx)

	cleanup := func() error {
		cancel()
		return c.Close()
	}
	return New(c), cleanup, nil
}

func prepareDatabase(ctx context.Context, c *Container) error {
	dbCfg := c.Config.Database
	if dbCfg.AutoMigrate {
		var src fs.FS = migrations.FS
		if dir := strings.TrimSpace(dbCfg.MigrationsDir); dir != "" {
			src = os.DirFS(dir)
		}
		n, err := migration.Runner{FS: src, Logger: c.Logger}.Run(ctx, c.DB.SQLDB())
		if err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		c.Logger.Printf("Migrations up to date | applied=%d", n)
	}
	if dbCfg.RunSeeders {
		runner := seeder.Runner{Seeders: seeder.Defaults(), Logger: c.Logger}
		if err := runner.Run(ctx, c.DB); err != nil {
			return err
		}
	}
	return nil
}

func registerGlobalMiddleware(app *fiber.App, logger *log.Logger) {
	if app == nil {
		return
	}

	// Access log wraps the error middleware so it sees the rendered status.
	accessLog := middleware.NewAccessLogMiddleware(logger)
	app.Use(accessLog.Middleware())

	errMw := middleware.NewErrorMiddleware(logger)
	app.Use(errMw.Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	h := routes.Handlers{
		Health:    handler.NewHealthHandler(c.DB, c.Cache),
		Auth:      handler.NewAuthHandler(c.Auth),
		User:      handler.NewUserHandler(c.User, c.Search),
		UserSkill: handler.NewUserSkillHandler(c.UserSkill),
		Skill:     handler.NewSkillHandler(c.Skill, c.Search),
		Match:     handler.NewMatchHandler(c.Matching),
		Learning:  handler.NewLearningHandler(c.Learning),
		Swap:      handler.NewSwapHandler(c.Swap),
		WS:        ws.NewHandler(c.Hub, c.JWT, c.Logger),
	}
	routes.NewRegistry(h, middleware.NewAuthMiddleware(c.JWT)).Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
