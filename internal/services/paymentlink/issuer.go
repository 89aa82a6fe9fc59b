package paymentlink

import (
	"fmt"
	"strings"

	"officedesk/internal/clock"
	"officedesk/internal/models"
	"officedesk/internal/services/generator"
	"officedesk/internal/utils"

	"github.com/google/uuid"
)

// Issuer synthesizes PaymentLink records. It has no side effects.
type Issuer struct {
	baseURL    string
	clock      clock.Clock
	newID      func() string
	newShortID func() (string, error)
	newCustID  func() (string, error)
}

func NewIssuer(baseURL string, clk clock.Clock) *Issuer {
	if clk == nil {
		clk = clock.System{}
	}
	return &Issuer{
		baseURL: strings.TrimRight(baseURL, "/"),
		clock:   clk,
		newID:   uuid.NewString,
		newShortID: func() (string, error) {
			return utils.GenerateShortID(ShortIDLength)
		},
		newCustID: func() (string, error) {
			id, err := utils.GenerateUniqueID(4)
			if err != nil {
				return "", err
			}
			return "cust_" + id, nil
		},
	}
}

// Issue builds an Active link for an already validated form.
func (i *Issuer) Issue(form Form, by Identity) (*models.PaymentLink, error) {
	s := form.state()
	amount, ok := generator.ParseAmount(s.Amount)
	if !ok {
		return nil, fmt.Errorf("invalid amount %q", s.Amount)
	}

	shortID, err := i.newShortID()
	if err != nil {
		return nil, fmt.Errorf("generate short id: %w", err)
	}
	custID, err := i.newCustID()
	if err != nil {
		return nil, fmt.Errorf("generate customer id: %w", err)
	}

	return &models.PaymentLink{
		ID:            i.newID(),
		CustomerID:    custID,
		CustomerName:  strings.TrimSpace(s.CustomerName),
		CustomerEmail: strings.TrimSpace(s.CustomerEmail),
		Amount:        amount,
		Currency:      s.Currency,
		Gateway:       s.Gateway,
		Description:   s.Description,
		Link:          i.baseURL + "/link/" + shortID,
		ShortID:       shortID,
		CreatedBy:     by.ID,
		CreatedByName: by.Name,
		CreatedAt:     i.clock.Now(),
		Status:        models.LinkActive,
	}, nil
}
