package paymentlink

import (
	"errors"
	"time"

	"officedesk/internal/models"
	"officedesk/internal/services/generator"
)

const (
	ShortIDLength    = 12
	DefaultCacheTTL  = 24 * time.Hour
	ProvisionTimeout = 30 * time.Second
)

var (
	ErrLinkNotFound     = errors.New("payment link not found")
	ErrCheckoutNotFound = errors.New("gateway checkout not found")
)

// Form is the customer-facing input of a payment link.
type Form struct {
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	Amount        string `json:"amount"`
	Currency      string `json:"currency"`
	Gateway       string `json:"gateway"`
	Description   string `json:"description"`
}

// FormFromState takes the form fields of a wizard state.
func FormFromState(s generator.State) Form {
	return Form{
		CustomerName:  s.CustomerName,
		CustomerEmail: s.CustomerEmail,
		Amount:        s.Amount,
		Currency:      s.Currency,
		Gateway:       s.Gateway,
		Description:   s.Description,
	}
}

func (f Form) state() generator.State {
	s := generator.Initial()
	s.CustomerName = f.CustomerName
	s.CustomerEmail = f.CustomerEmail
	s.Amount = f.Amount
	s.Description = f.Description
	if f.Currency != "" {
		s.Currency = f.Currency
	}
	if f.Gateway != "" {
		s.Gateway = f.Gateway
	}
	return s
}

// Identity is the issuing user.
type Identity struct {
	ID   string
	Name string
}

type ListFilter struct {
	// CreatedBy limits the list to one issuer; empty lists everyone's links.
	CreatedBy string
	Offset    int
	Limit     int
}

// Resolved is a link with its gateway checkout, if one was provisioned.
type Resolved struct {
	Link        models.PaymentLink `json:"link"`
	CheckoutURL string             `json:"checkoutUrl,omitempty"`
}

type Config struct {
	CacheTTL         time.Duration
	ProvisionTimeout time.Duration
}
