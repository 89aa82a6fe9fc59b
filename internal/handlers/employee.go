package handlers

import (
	"officedesk/internal/models"
	"officedesk/internal/services/employee"
	"officedesk/internal/utils"
	"officedesk/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// EmployeeHandler serves profiles and the super admin employee directory.
type EmployeeHandler struct {
	employeeService employee.Service
}

func NewEmployeeHandler(employeeService employee.Service) *EmployeeHandler {
	return &EmployeeHandler{
		employeeService: employeeService,
	}
}

func (h *EmployeeHandler) GetProfile(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	user, err := h.employeeService.GetProfile(c.UserContext(), claims.UserID)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Profile retrieved", user)
}

func (h *EmployeeHandler) UpdateProfile(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}
	return h.update(c, claims, claims.UserID)
}

func (h *EmployeeHandler) UpdateEmployee(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}
	return h.update(c, claims, c.Params("id"))
}

func (h *EmployeeHandler) update(c *fiber.Ctx, claims *models.UserClaims, targetID string) error {
	var input models.UpdateProfileInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	user, err := h.employeeService.UpdateProfile(c.UserContext(), claims, targetID, &input)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Profile updated", user)
}

func (h *EmployeeHandler) ListEmployees(c *fiber.Ctx) error {
	p := utils.GetPagination(c, utils.DefaultPageLimit)

	users, total, err := h.employeeService.List(c.UserContext(), c.Query("search"), p.Offset, p.Limit)
	if err != nil {
		return response.FromError(c, err)
	}
	p.SetTotal(total)

	return c.JSON(utils.NewPaginatedResponse(users, p))
}

func (h *EmployeeHandler) CreateEmployee(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	var input models.CreateEmployeeInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	user, err := h.employeeService.Create(c.UserContext(), &input, claims.UserID)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Created(c, "Employee created", user)
}

func (h *EmployeeHandler) DeleteEmployee(c *fiber.Ctx) error {
	if err := h.employeeService.Delete(c.UserContext(), c.Params("id")); err != nil {
		return response.FromError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
