package utils

import (
	"github.com/gofiber/fiber/v2"
)

const (
	// MaxPageLimit caps the page size of the employee directory and link lists.
	MaxPageLimit     = 100
	DefaultPageLimit = 20
)

// Pagination is the page window of a list request and, once the total is
// known, the metadata echoed back to the client.
type Pagination struct {
	Page     int   `json:"page"`
	Limit    int   `json:"limit"`
	Offset   int   `json:"offset"`
	Total    int64 `json:"total"`
	LastPage int   `json:"last_page"`
}

// GetPagination reads ?page and ?limit. Missing or malformed values fall
// back to the first page of defaultLimit rows.
func GetPagination(c *fiber.Ctx, defaultLimit int) Pagination {
	if defaultLimit < 1 {
		defaultLimit = DefaultPageLimit
	}
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := min(c.QueryInt("limit", defaultLimit), MaxPageLimit)
	if limit < 1 {
		limit = defaultLimit
	}
	return Pagination{Page: page, Limit: limit, Offset: (page - 1) * limit}
}

// SetTotal records the unpaged row count. An empty list still has one page.
func (p *Pagination) SetTotal(total int64) {
	p.Total = total
	p.LastPage = max(1, int((total+int64(p.Limit)-1)/int64(p.Limit)))
}

type PaginatedResponse struct {
	Data       any        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

func NewPaginatedResponse(data any, p Pagination) PaginatedResponse {
	return PaginatedResponse{Data: data, Pagination: p}
}
