package handlers

import (
	"officedesk/internal/services/dashboard"
	"officedesk/internal/utils"
	"officedesk/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	dashboardService dashboard.Service
}

func NewDashboardHandler(dashboardService dashboard.Service) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetDashboard returns the admin overview for super admins and the
// personal overview for everyone else.
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	if claims.IsSuperAdmin() {
		stats, err := h.dashboardService.GetAdminDashboard(c.UserContext())
		if err != nil {
			return response.Error(c, fiber.StatusInternalServerError, "Failed to get dashboard data")
		}
		return response.Success(c, "Dashboard data retrieved successfully", stats)
	}

	stats, err := h.dashboardService.GetEmployeeDashboard(c.UserContext(), claims)
	if err != nil {
		return response.Error(c, fiber.StatusInternalServerError, "Failed to get dashboard data")
	}
	return response.Success(c, "Dashboard data retrieved successfully", stats)
}
