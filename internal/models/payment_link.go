package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentLinkStatus string

const (
	LinkActive  PaymentLinkStatus = "Active"
	LinkPaid    PaymentLinkStatus = "Paid"
	LinkExpired PaymentLinkStatus = "Expired"
)

// PaymentLink is written once at issuance and never updated.
type PaymentLink struct {
	ID            string            `gorm:"type:uuid;primaryKey" json:"id"`
	CustomerID    string            `gorm:"not null" json:"customerId"`
	CustomerName  string            `gorm:"not null" json:"customerName"`
	CustomerEmail string            `gorm:"not null" json:"customerEmail"`
	Amount        float64           `gorm:"type:numeric(12,2);not null" json:"amount"`
	Currency      string            `gorm:"size:3;not null" json:"currency"`
	Gateway       string            `gorm:"size:32;not null" json:"gateway"`
	Description   string            `json:"description"`
	Link          string            `gorm:"not null" json:"link"`
	ShortID       string            `gorm:"size:12;uniqueIndex;not null" json:"shortId"`
	CreatedBy     string            `gorm:"type:uuid;index;not null" json:"createdBy"`
	CreatedByName string            `json:"createdByName"`
	CreatedAt     time.Time         `gorm:"index" json:"createdAt"`
	Status        PaymentLinkStatus `gorm:"size:16;not null" json:"status"`
}

func (p *PaymentLink) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// GatewayCheckout is the gateway-side artefact provisioned for a link.
type GatewayCheckout struct {
	ID            string    `gorm:"type:uuid;primaryKey" json:"id"`
	PaymentLinkID string    `gorm:"type:uuid;uniqueIndex;not null" json:"paymentLinkId"`
	Gateway       string    `gorm:"size:32;not null" json:"gateway"`
	ExternalID    string    `json:"externalId"`
	URL           string    `json:"url"`
	Metadata      JSON      `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (g *GatewayCheckout) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}
