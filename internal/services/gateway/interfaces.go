// Package gateway provisions gateway-side checkouts for issued payment links.
package gateway

import (
	"context"
	"errors"

	"officedesk/internal/models"
)

const (
	Stripe   = "stripe"
	PayPal   = "paypal"
	Razorpay = "razorpay"
)

var ErrUnsupportedCurrency = errors.New("currency not supported by gateway")

// Provisioner creates the checkout a payer is redirected to. A nil checkout
// with a nil error means the gateway has nothing to provision.
type Provisioner interface {
	Provision(ctx context.Context, link *models.PaymentLink) (*models.GatewayCheckout, error)
}

// Router picks a provisioner by the link's gateway.
type Router struct {
	byGateway map[string]Provisioner
	fallback  Provisioner
}

func NewRouter(fallback Provisioner) *Router {
	if fallback == nil {
		fallback = Noop{}
	}
	return &Router{byGateway: make(map[string]Provisioner), fallback: fallback}
}

func (r *Router) Register(gateway string, p Provisioner) {
	r.byGateway[gateway] = p
}

func (r *Router) Provision(ctx context.Context, link *models.PaymentLink) (*models.GatewayCheckout, error) {
	if p, ok := r.byGateway[link.Gateway]; ok {
		return p.Provision(ctx, link)
	}
	return r.fallback.Provision(ctx, link)
}

// Noop provisions nothing.
type Noop struct{}

func (Noop) Provision(context.Context, *models.PaymentLink) (*models.GatewayCheckout, error) {
	return nil, nil
}
