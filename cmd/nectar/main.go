package main

import (
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"nectar/internal/config"
	"nectar/internal/domain"
	"nectar/internal/http/handlers"
	applog "nectar/internal/log"
	"nectar/internal/repos"
	"nectar/internal/services"
	"nectar/internal/wpsync"
)

// nopSync stands in when no WordPress site is configured.
type nopSync struct{}

func (nopSync) OnPropertyCreated(domain.Property) {}
func (nopSync) OnPropertyUpdated(domain.Property) {}

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	// Auth wiring
	userRepo := repos.NewUserRepo(db)
	authSvc := &services.AuthService{Users: userRepo}
	authH := &handlers.AuthHandler{Auth: authSvc}

	// WordPress mirror wiring
	runner := wpsync.NewRunner(cfg.WPTimeout)
	var notifier services.SyncNotifier = nopSync{}
	if cfg.WPBaseURL != "" {
		client := wpsync.NewClient(cfg.WPBaseURL, cfg.WPUsername, cfg.WPAppPassword, cfg.WPTimeout)
		resolver := wpsync.NewResolver(client, repos.NewCategoryCacheRepo(db))
		notifier = wpsync.NewEngine(client, resolver, repos.NewPropertyRepo(db), runner)
	} else {
		log.Printf("[warn] WP_BASE_URL not set, property sync disabled")
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "something went wrong"})
		},
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigin,
		AllowCredentials: true,
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
	}))

	// ---------- App handlers ----------
	deps := handlers.NewDeps(db, notifier)

	api := app.Group("/api/v1")

	// Auth (login throttled)
	api.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "too many attempts, try again later"})
		},
	}), authH.Login)
	api.Post("/logout", authH.Logout)
	api.Get("/me", authH.Me)

	// Everything below needs a session
	authed := api.Group("", handlers.RequireUser(authSvc))

	authed.Get("/properties", deps.PropertyHandler.List)
	authed.Post("/properties", deps.PropertyHandler.Create)
	authed.Get("/properties/:id", deps.PropertyHandler.Get)
	authed.Put("/properties/:id", deps.PropertyHandler.Update)
	authed.Delete("/properties/:id", handlers.RequireAdmin(authSvc), deps.PropertyHandler.Delete)

	authed.Get("/properties/:id/events", deps.EventHandler.ListByProperty)
	authed.Post("/properties/:id/events", deps.EventHandler.Create)

	authed.Get("/properties/:id/payments", deps.PaymentHandler.ListByProperty)
	authed.Post("/properties/:id/payments", deps.PaymentHandler.Create)
	authed.Patch("/payments/:id/paid", deps.PaymentHandler.MarkPaid)

	authed.Get("/tenants", deps.TenantHandler.List)
	authed.Post("/tenants", deps.TenantHandler.Create)
	authed.Get("/tenants/:id", deps.TenantHandler.Get)
	authed.Get("/properties/:id/tenancies", deps.TenantHandler.ListTenancies)
	authed.Post("/properties/:id/tenancies", deps.TenantHandler.CreateTenancy)
	authed.Patch("/tenancies/:id/end", deps.TenantHandler.EndTenancy)

	authed.Get("/properties/:id/inventory", deps.InventoryHandler.GetByProperty)
	authed.Post("/properties/:id/inventory/rooms", deps.InventoryHandler.AddRoom)
	authed.Post("/rooms/:roomId/items", deps.InventoryHandler.AddItem)
	authed.Delete("/items/:itemId", deps.InventoryHandler.DeleteItem)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	})

	// Drain in-flight sync tasks before exiting
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Printf("[shutdown] draining sync tasks")
		_ = app.Shutdown()
		runner.Wait()
	}()

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
	runner.Wait()
}
