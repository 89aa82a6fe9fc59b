package handlers

import (
	"officedesk/internal/models"
	"officedesk/internal/services/generator"
	"officedesk/internal/services/paymentlink"
	"officedesk/internal/utils"
	"officedesk/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type PaymentLinkHandler struct {
	wizard generator.Service
	links  paymentlink.Service
}

func NewPaymentLinkHandler(wizard generator.Service, links paymentlink.Service) *PaymentLinkHandler {
	return &PaymentLinkHandler{
		wizard: wizard,
		links:  links,
	}
}

func (h *PaymentLinkHandler) StartWizard(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	session, err := h.wizard.Start(c.UserContext(), claims.UserID)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Created(c, "Wizard started", session)
}

func (h *PaymentLinkHandler) GetWizard(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	session, err := h.wizard.Get(c.UserContext(), c.Params("id"), claims.UserID)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Wizard retrieved", session)
}

// SetFields applies one SET_FIELD per body key.
func (h *PaymentLinkHandler) SetFields(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	var fields map[string]string
	if err := c.BodyParser(&fields); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	session, err := h.wizard.SetFields(c.UserContext(), c.Params("id"), claims.UserID, fields)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Wizard updated", session)
}

// Next advances the wizard; from the confirmation step it issues the link.
// Validation problems come back in the session's error field.
func (h *PaymentLinkHandler) Next(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	ctx := c.UserContext()
	issue := func(s generator.State) (string, error) {
		link, err := h.links.Issue(ctx, paymentlink.FormFromState(s), identity(claims))
		if err != nil {
			return "", err
		}
		return link.Link, nil
	}

	session, err := h.wizard.Next(ctx, c.Params("id"), claims.UserID, issue)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Wizard advanced", session)
}

func (h *PaymentLinkHandler) Back(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	session, err := h.wizard.Back(c.UserContext(), c.Params("id"), claims.UserID)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Wizard moved back", session)
}

func (h *PaymentLinkHandler) Reset(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	session, err := h.wizard.Reset(c.UserContext(), c.Params("id"), claims.UserID)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Wizard reset", session)
}

// Create validates and issues a link in one request.
func (h *PaymentLinkHandler) Create(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	var form paymentlink.Form
	if err := c.BodyParser(&form); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	link, err := h.links.Issue(c.UserContext(), form, identity(claims))
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Created(c, "Payment link generated", link)
}

// List returns links newest first: the caller's own, or everyone's for super admins.
func (h *PaymentLinkHandler) List(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	p := utils.GetPagination(c, utils.DefaultPageLimit)
	filter := paymentlink.ListFilter{Offset: p.Offset, Limit: p.Limit}
	if !claims.IsSuperAdmin() {
		filter.CreatedBy = claims.UserID
	}

	links, err := h.links.List(c.UserContext(), filter)
	if err != nil {
		return response.FromError(c, err)
	}
	total, err := h.links.Count(c.UserContext(), filter.CreatedBy)
	if err != nil {
		return response.FromError(c, err)
	}
	p.SetTotal(total)

	return c.JSON(utils.NewPaginatedResponse(links, p))
}

// Resolve is the public landing for a short id. Browsers are sent to the
// gateway checkout once it exists; API clients get the link as JSON.
func (h *PaymentLinkHandler) Resolve(c *fiber.Ctx) error {
	resolved, err := h.links.Resolve(c.UserContext(), c.Params("shortId"))
	if err != nil {
		return response.FromError(c, err)
	}

	if resolved.CheckoutURL != "" && c.Accepts(fiber.MIMEApplicationJSON, fiber.MIMETextHTML) == fiber.MIMETextHTML {
		return c.Redirect(resolved.CheckoutURL, fiber.StatusFound)
	}
	return response.Success(c, "Payment link", resolved)
}

func identity(claims *models.UserClaims) paymentlink.Identity {
	return paymentlink.Identity{ID: claims.UserID, Name: claims.Name}
}
