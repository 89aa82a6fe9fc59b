package handlers

import (
	"log"
	"time"

	"officedesk/internal/config"
	"officedesk/internal/models"
	"officedesk/internal/services/auth"
	"officedesk/internal/utils"
	"officedesk/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService auth.Service
}

func NewAuthHandler(authService auth.Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// AdminLogin authenticates super admins only.
func (h *AuthHandler) AdminLogin(c *fiber.Ctx) error {
	return h.login(c, models.RoleSuperAdmin)
}

// EmployeeLogin authenticates employees only.
func (h *AuthHandler) EmployeeLogin(c *fiber.Ctx) error {
	return h.login(c, models.RoleEmployee)
}

func (h *AuthHandler) login(c *fiber.Ctx, role string) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	user, tokens, err := h.authService.Login(c.UserContext(), input.Email, input.Password, role)
	if err != nil {
		return response.FromError(c, err)
	}

	h.setAuthCookies(c, tokens)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"accessToken":  tokens.AccessToken,
		"refreshToken": tokens.RefreshToken,
		"user": fiber.Map{
			"id":          user.ID,
			"email":       user.Email,
			"name":        user.Name,
			"role":        user.Role,
			"designation": user.Designation,
			"avatarUrl":   user.AvatarURL,
			"permissions": models.GetDefaultPermissions(user.Role, user.Designation),
		},
	})
}

// RefreshToken reads the refresh token from the cookie or the body.
func (h *AuthHandler) RefreshToken(c *fiber.Ctx) error {
	refreshToken := c.Cookies("refresh_token")
	if refreshToken == "" {
		var input struct {
			RefreshToken string `json:"refreshToken"`
		}
		if err := c.BodyParser(&input); err != nil {
			return response.Unauthorized(c)
		}
		refreshToken = input.RefreshToken
	}
	if refreshToken == "" {
		return response.Unauthorized(c)
	}

	tokens, err := h.authService.RefreshTokens(c.UserContext(), refreshToken)
	if err != nil {
		log.Printf("Token refresh failed: %v", err)
		return response.FromError(c, err)
	}

	h.setAuthCookies(c, tokens)
	return response.Success(c, "Tokens refreshed", tokens)
}

// Logout invalidates every token of the caller.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	if err := h.authService.Logout(c.UserContext(), claims.UserID); err != nil {
		return response.ServerError(c, "Failed to logout")
	}

	for _, name := range []string{"access_token", "refresh_token"} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			Expires:  time.Now().Add(-time.Hour),
			HTTPOnly: true,
			Secure:   config.IsProduction(),
			Path:     "/",
		})
	}

	return response.Success(c, "Successfully logged out", nil)
}

func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	var input struct {
		OldPassword string `json:"oldPassword"`
		NewPassword string `json:"newPassword"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.authService.ChangePassword(c.UserContext(), claims.UserID, input.OldPassword, input.NewPassword); err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Password changed, please log in again", nil)
}

func (h *AuthHandler) setAuthCookies(c *fiber.Ctx, tokens *auth.Tokens) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    tokens.AccessToken,
		Expires:  time.Now().Add(utils.AccessTokenTTL),
		HTTPOnly: true,
		Secure:   config.IsProduction(),
		SameSite: "Strict",
		Path:     "/",
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    tokens.RefreshToken,
		Expires:  time.Now().Add(utils.RefreshTokenTTL),
		HTTPOnly: true,
		Secure:   config.IsProduction(),
		SameSite: "Strict",
		Path:     "/api/auth",
	})
}
