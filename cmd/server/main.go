// Package main is the entry point for the officedesk API server.
// It initializes all dependencies, sets up the HTTP server,
// and starts the application.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"officedesk/internal/clock"
	"officedesk/internal/config"
	"officedesk/internal/handlers"
	"officedesk/internal/repositories"
	"officedesk/internal/routes"
	"officedesk/internal/services/attendance"
	"officedesk/internal/services/auth"
	"officedesk/internal/services/dashboard"
	"officedesk/internal/services/employee"
	"officedesk/internal/services/gateway"
	"officedesk/internal/services/generator"
	"officedesk/internal/services/paymentlink"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	config.LoadEnv()

	if err := repositories.InitDB(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer repositories.CloseDB()

	sqlDB, err := repositories.DB.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	// Periodic check of connection pool stats
	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			stats := sqlDB.Stats()
			log.Printf("DB Stats: Open=%d, Idle=%d, InUse=%d, WaitCount=%d, WaitDuration=%s",
				stats.OpenConnections, stats.Idle, stats.InUse, stats.WaitCount, stats.WaitDuration)
		}
	}()

	health := map[string]handlers.Pinger{
		"database": handlers.PingFunc(sqlDB.PingContext),
		"redis":    nil,
	}

	// Redis is optional: without it sessions live in memory and nothing is cached.
	cacheService, err := repositories.InitRedis(context.Background())
	if err != nil {
		log.Printf("⚠️ Redis unavailable, running without cache: %v", err)
	} else {
		defer func() {
			if err := cacheService.Close(); err != nil {
				log.Printf("⚠️ Failed to close Redis connection: %v", err)
			}
		}()
		health["redis"] = handlers.PingFunc(cacheService.HealthCheck)
	}

	clk := clock.System{}

	var (
		userCache    repositories.UserCache
		linkCache    paymentlink.Cache
		sessionStore generator.SessionStore = generator.NewMemorySessionStore(generator.SessionTTL)
	)
	if cacheService != nil {
		userCache = cacheService
		linkCache = cacheService
		sessionStore = repositories.NewRedisSessionStore(cacheService, generator.SessionTTL)
	}

	userRepo := repositories.NewUserRepository(repositories.DB, userCache)
	attendanceRepo := repositories.NewAttendanceRepository(repositories.DB)
	linkRepo := repositories.NewPaymentLinkRepository(repositories.DB)

	attendanceService := attendance.NewService(
		repositories.NewRetryingStore(attendanceRepo, repositories.DefaultRetryAttempts, repositories.DefaultRetryBackoff),
		clk,
		config.GetDurationEnv("ATTENDANCE_TICK", attendance.DefaultTickInterval),
	)
	defer attendanceService.Close()

	router := gateway.NewRouter(gateway.Noop{})
	if key := config.GetEnv("STRIPE_SECRET_KEY", ""); key != "" {
		router.Register(gateway.Stripe, gateway.NewStripeProvisioner(gateway.NewStripeClient(key)))
		log.Println("✅ Stripe provisioning enabled")
	}

	linkService := paymentlink.NewService(
		linkRepo,
		linkCache,
		router,
		paymentlink.NewIssuer(config.PaymentLinkBaseURL(), clk),
		paymentlink.Config{
			CacheTTL:         config.GetDurationEnv("PAYMENT_LINK_CACHE_TTL", paymentlink.DefaultCacheTTL),
			ProvisionTimeout: config.GetDurationEnv("PROVISION_TIMEOUT", paymentlink.ProvisionTimeout),
		},
		&paymentlink.NoopMetricsCollector{},
	)
	defer linkService.Wait()

	app := fiber.New(fiber.Config{
		AppName:      "officedesk",
		ReadTimeout:  config.GetDurationEnv("HTTP_READ_TIMEOUT", 15*time.Second),
		IdleTimeout:  config.GetDurationEnv("HTTP_IDLE_TIMEOUT", 60*time.Second),
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.GetEnv("CORS_ORIGINS", "http://localhost:5173"),
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowCredentials: true,
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
		Next: func(c *fiber.Ctx) bool {
			return strings.HasSuffix(c.Path(), "/live")
		},
	}))

	routes.SetupRoutes(app, routes.Services{
		Auth:       auth.NewService(userRepo),
		Employees:  employee.NewService(userRepo),
		Attendance: attendanceService,
		Wizard:     generator.NewService(sessionStore, clk),
		Links:      linkService,
		Dashboard:  dashboard.NewService(userRepo, attendanceRepo, linkService, attendanceService, clk),
		Health:     health,
	})

	go func() {
		addr := ":" + config.GetEnv("PORT", "3000")
		log.Printf("🚀 officedesk listening on %s", addr)
		if err := app.Listen(addr); err != nil {
			log.Printf("Server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("⚠️ Forced shutdown: %v", err)
	}
}

func errorHandler(c *fiber.Ctx, err error) error {
	if e, ok := err.(*fiber.Error); ok {
		return c.Status(e.Code).JSON(fiber.Map{"error": e.Message})
	}
	log.Printf("Unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
}
