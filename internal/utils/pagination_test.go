package utils

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"officedesk/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPagination(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  Pagination
	}{
		{"defaults", "", Pagination{Page: 1, Limit: 20, Offset: 0}},
		{"third page", "?page=3&limit=10", Pagination{Page: 3, Limit: 10, Offset: 20}},
		{"limit capped", "?limit=500", Pagination{Page: 1, Limit: MaxPageLimit, Offset: 0}},
		{"garbage falls back", "?page=abc&limit=-4", Pagination{Page: 1, Limit: 20, Offset: 0}},
		{"page zero", "?page=0&limit=5", Pagination{Page: 1, Limit: 5, Offset: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return c.JSON(GetPagination(c, DefaultPageLimit))
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/"+tt.query, nil))
			require.NoError(t, err)
			var got Pagination
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPaginationSetTotal(t *testing.T) {
	p := Pagination{Page: 1, Limit: 20}
	p.SetTotal(41)
	assert.Equal(t, 3, p.LastPage)

	p.SetTotal(0)
	assert.Equal(t, 1, p.LastPage)
}

func TestGetUserClaims(t *testing.T) {
	tests := []struct {
		name    string
		locals  any
		wantErr bool
	}{
		{"resolved caller", &models.UserClaims{UserID: "u1"}, false},
		{"missing", nil, true},
		{"wrong type", "u1", true},
		{"no subject", &models.UserClaims{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				if tt.locals != nil {
					c.Locals(ClaimsKey, tt.locals)
				}
				claims, err := GetUserClaims(c)
				if err != nil {
					assert.ErrorIs(t, err, ErrNoCaller)
					return c.SendStatus(fiber.StatusUnauthorized)
				}
				return c.SendString(claims.UserID)
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			require.NoError(t, err)
			if tt.wantErr {
				assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
			} else {
				assert.Equal(t, fiber.StatusOK, resp.StatusCode)
			}
		})
	}
}
