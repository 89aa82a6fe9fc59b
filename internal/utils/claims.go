package utils

import (
	"errors"

	"officedesk/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ClaimsKey is the Locals key the auth middleware stores the caller under.
const ClaimsKey = "claims"

var ErrNoCaller = errors.New("no authenticated caller on request")

// GetUserClaims returns the employee or admin the auth middleware resolved
// for this request. Handlers answer 401 on error.
func GetUserClaims(c *fiber.Ctx) (*models.UserClaims, error) {
	claims, ok := c.Locals(ClaimsKey).(*models.UserClaims)
	if !ok || claims == nil || claims.UserID == "" {
		return nil, ErrNoCaller
	}
	return claims, nil
}
