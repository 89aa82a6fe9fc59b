// Package routes defines the API routing configuration.
// It sets up all HTTP routes and their corresponding handlers,
// including middleware and authentication requirements.
package routes

import (
	"time"

	"officedesk/internal/handlers"
	"officedesk/internal/middleware"
	"officedesk/internal/models"
	"officedesk/internal/services/attendance"
	"officedesk/internal/services/auth"
	"officedesk/internal/services/dashboard"
	"officedesk/internal/services/employee"
	"officedesk/internal/services/generator"
	"officedesk/internal/services/paymentlink"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// Services are the application services the routes are served by.
type Services struct {
	Auth       auth.Service
	Employees  employee.Service
	Attendance attendance.Service
	Wizard     generator.Service
	Links      paymentlink.Service
	Dashboard  dashboard.Service
	// Health maps dependency names to their liveness checks.
	Health map[string]handlers.Pinger
}

// LoginRateLimit is the number of login attempts allowed per IP per minute.
const LoginRateLimit = 5

// SetupRoutes configures all application routes.
// It groups routes by functionality and applies appropriate middleware.
func SetupRoutes(app *fiber.App, svc Services) {
	authHandler := handlers.NewAuthHandler(svc.Auth)
	employeeHandler := handlers.NewEmployeeHandler(svc.Employees)
	attendanceHandler := handlers.NewAttendanceHandler(svc.Attendance, svc.Employees)
	linkHandler := handlers.NewPaymentLinkHandler(svc.Wizard, svc.Links)
	dashboardHandler := handlers.NewDashboardHandler(svc.Dashboard)

	app.Get("/health", handlers.HealthCheck(svc.Health))
	app.Get("/link/:shortId", linkHandler.Resolve)

	api := app.Group("/api")

	// Public endpoints (no auth required)
	authGroup := api.Group("/auth")
	loginLimiter := limiter.New(limiter.Config{
		Max:        LoginRateLimit,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests. Please try again later.",
			})
		},
	})
	authGroup.Post("/admin/login", loginLimiter, authHandler.AdminLogin)
	authGroup.Post("/employee/login", loginLimiter, authHandler.EmployeeLogin)
	authGroup.Post("/refresh", authHandler.RefreshToken)

	authMiddleware := middleware.NewAuthMiddleware(svc.Auth)
	protected := api.Group("", authMiddleware.Handler)

	protected.Post("/auth/logout", authHandler.Logout)

	setupProfileRoutes(protected, employeeHandler, authHandler)
	setupEmployeeRoutes(protected, employeeHandler)
	setupAttendanceRoutes(protected, attendanceHandler)
	setupPaymentLinkRoutes(protected, linkHandler)

	protected.Get("/dashboard", dashboardHandler.GetDashboard)
}

func setupProfileRoutes(router fiber.Router, h *handlers.EmployeeHandler, authHandler *handlers.AuthHandler) {
	profile := router.Group("/profile")
	profile.Get("/", h.GetProfile)
	profile.Put("/", middleware.HasPermission(models.PermissionProfileWrite), h.UpdateProfile)
	profile.Put("/password", authHandler.ChangePassword)
}

func setupEmployeeRoutes(router fiber.Router, h *handlers.EmployeeHandler) {
	employees := router.Group("/employees", middleware.SuperAdminOnly)
	employees.Get("/", h.ListEmployees)
	employees.Post("/", h.CreateEmployee)
	employees.Put("/:id", h.UpdateEmployee)
	employees.Delete("/:id", h.DeleteEmployee)
}

func setupAttendanceRoutes(router fiber.Router, h *handlers.AttendanceHandler) {
	att := router.Group("/attendance", middleware.HasPermission(models.PermissionAttendanceSelf))
	att.Post("/clock-in", h.ClockIn)
	att.Post("/clock-out", h.ClockOut)
	att.Get("/today", h.Today)
	att.Get("/live", h.Live)
	att.Post("/sync", h.Sync)
	att.Get("/history/:userId", h.History)
	att.Get("/history/:userId/export", h.Export)
}

func setupPaymentLinkRoutes(router fiber.Router, h *handlers.PaymentLinkHandler) {
	links := router.Group("/payment-links")
	links.Get("/", middleware.HasPermission(models.PermissionPaymentLinkRead), h.List)

	write := links.Group("", middleware.HasPermission(models.PermissionPaymentLinkWrite))
	write.Post("/", h.Create)
	write.Post("/wizard", h.StartWizard)
	write.Get("/wizard/:id", h.GetWizard)
	write.Patch("/wizard/:id/fields", h.SetFields)
	write.Post("/wizard/:id/next", h.Next)
	write.Post("/wizard/:id/back", h.Back)
	write.Post("/wizard/:id/reset", h.Reset)
}
