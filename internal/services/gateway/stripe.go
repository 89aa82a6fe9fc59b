package gateway

import (
	"context"
	"fmt"
	"math"
	"strings"

	"officedesk/internal/models"

	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/client"
)

// StripeAPI is the part of the Stripe client used for provisioning.
type StripeAPI interface {
	NewPrice(params *stripe.PriceParams) (*stripe.Price, error)
	NewPaymentLink(params *stripe.PaymentLinkParams) (*stripe.PaymentLink, error)
}

type stripeClient struct {
	api *client.API
}

// NewStripeClient wraps the official client for the given secret key.
func NewStripeClient(secretKey string) StripeAPI {
	return &stripeClient{api: client.New(secretKey, nil)}
}

func (c *stripeClient) NewPrice(params *stripe.PriceParams) (*stripe.Price, error) {
	return c.api.Prices.New(params)
}

func (c *stripeClient) NewPaymentLink(params *stripe.PaymentLinkParams) (*stripe.PaymentLink, error) {
	return c.api.PaymentLinks.New(params)
}

type stripeProvisioner struct {
	api StripeAPI
}

// NewStripeProvisioner creates a Stripe Price and Payment Link per issued link.
func NewStripeProvisioner(api StripeAPI) Provisioner {
	if api == nil {
		panic("stripe api is required")
	}
	return &stripeProvisioner{api: api}
}

var stripeCurrencies = map[string]bool{"usd": true, "eur": true, "gbp": true, "inr": true}

func (p *stripeProvisioner) Provision(ctx context.Context, link *models.PaymentLink) (*models.GatewayCheckout, error) {
	currency := strings.ToLower(link.Currency)
	if !stripeCurrencies[currency] {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCurrency, link.Currency)
	}

	name := link.Description
	if name == "" {
		name = "Payment for " + link.CustomerName
	}

	priceParams := &stripe.PriceParams{
		Currency:   stripe.String(currency),
		UnitAmount: stripe.Int64(MinorUnits(link.Amount)),
		ProductData: &stripe.PriceProductDataParams{
			Name: stripe.String(name),
		},
	}
	priceParams.Context = ctx
	pr, err := p.api.NewPrice(priceParams)
	if err != nil {
		return nil, fmt.Errorf("stripe price: %w", err)
	}

	linkParams := &stripe.PaymentLinkParams{
		LineItems: []*stripe.PaymentLinkLineItemParams{
			{
				Price:    stripe.String(pr.ID),
				Quantity: stripe.Int64(1),
			},
		},
	}
	linkParams.Context = ctx
	linkParams.AddMetadata("payment_link_id", link.ID)
	linkParams.AddMetadata("short_id", link.ShortID)
	linkParams.AddMetadata("customer_id", link.CustomerID)

	pl, err := p.api.NewPaymentLink(linkParams)
	if err != nil {
		return nil, fmt.Errorf("stripe payment link: %w", err)
	}

	return &models.GatewayCheckout{
		PaymentLinkID: link.ID,
		Gateway:       Stripe,
		ExternalID:    pl.ID,
		URL:           pl.URL,
		Metadata: models.JSON{
			"price_id":       pr.ID,
			"customer_email": link.CustomerEmail,
		},
	}, nil
}

// MinorUnits converts an amount to the smallest currency unit.
func MinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
