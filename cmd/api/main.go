package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-inventario/internal/config"
	"go-inventario/internal/handler"
	"go-inventario/internal/middleware"
	"go-inventario/internal/repository"
	"go-inventario/internal/service"
	"go-inventario/internal/ws"
	"go-inventario/pkg/database"
	"go-inventario/pkg/jwt"
	"go-inventario/pkg/logger"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// 1. Load Env
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	logger.Setup(cfg.Env)
	log := logger.Component("api")
	if envErr != nil {
		log.Debug().Msg(".env file not found, using environment only")
	}

	// 2. Local session token
	sessions, err := jwt.NewManager(cfg.SessionSecret, time.Duration(cfg.SessionTTLHours)*time.Hour)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create session key")
	}
	token, err := sessions.GenerateToken(uuid.New())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to mint session token")
	}
	requireSession := middleware.RequireSession(sessions, cfg.SessionRequired)

	// 3. Setup Database
	db, err := database.Open(cfg.Database())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Error().Err(err).Msg("failed to close database")
		}
	}()

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	categoryRepo := repository.NewCategoryRepo(db)
	productRepo := repository.NewProductRepo(db)
	movementRepo := repository.NewMovementRepo(db)
	inventoryRepo := repository.NewInventoryRepo(db)

	invService := service.NewInventoryService(inventoryRepo, cfg.LowStockThreshold)
	handlers := handler.Handlers{
		Category:  handler.NewCategoryHandler(service.NewCategoryService(categoryRepo, wsHub), cfg.PageSize),
		Product:   handler.NewProductHandler(service.NewProductService(productRepo, categoryRepo, movementRepo, wsHub), cfg.PageSize),
		Movement:  handler.NewMovementHandler(service.NewMovementService(movementRepo, productRepo, wsHub), cfg.PageSize),
		Inventory: handler.NewInventoryHandler(invService, cfg.PageSize),
		Dashboard: handler.NewDashboardHandler(service.NewDashboardService(inventoryRepo, invService)),
	}

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName:               "Inventario v1.0",
		DisableStartupMessage: true,
	})

	// Middleware
	app.Use(fiberlogger.New()) // Logging request
	app.Use(recover.New())     // Panic recovery
	app.Use(cors.New())        // CORS

	// 7. Routes
	app.Get("/health", func(c *fiber.Ctx) error {
		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(c.UserContext()) != nil {
			return c.Status(503).JSON(fiber.Map{"status": "unavailable"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})
	if cfg.MetricsEnabled {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	}

	handlers.Register(app.Group("/api/v1", requireSession))

	// WebSocket Route
	app.Use("/ws", requireSession, func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		ev := log.Info().Str("url", fmt.Sprintf("http://%s/api/v1", cfg.Addr())).Str("driver", cfg.DBDriver)
		if cfg.SessionRequired {
			ev = ev.Str("token", token)
		}
		ev.Msg("inventory interface ready")
		if err := app.Listen(cfg.Addr()); err != nil {
			log.Panic().Err(err).Msg("server stopped")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}
