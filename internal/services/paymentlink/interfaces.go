package paymentlink

import (
	"context"
	"time"

	"officedesk/internal/models"
)

// Service defines the payment link service interface
type Service interface {
	Issue(ctx context.Context, form Form, by Identity) (*models.PaymentLink, error)
	List(ctx context.Context, filter ListFilter) ([]models.PaymentLink, error)
	Count(ctx context.Context, createdBy string) (int64, error)
	Resolve(ctx context.Context, shortID string) (*Resolved, error)
	// Wait blocks until background provisioning has finished.
	Wait()
}

// Collection stores issued links, most recent first.
type Collection interface {
	Prepend(ctx context.Context, link *models.PaymentLink) error
	List(ctx context.Context, filter ListFilter) ([]models.PaymentLink, error)
}

// Repository is the full storage port used by the service.
type Repository interface {
	Collection
	FindByShortID(ctx context.Context, shortID string) (*models.PaymentLink, error)
	Count(ctx context.Context, createdBy string) (int64, error)
	SaveCheckout(ctx context.Context, checkout *models.GatewayCheckout) error
	FindCheckout(ctx context.Context, paymentLinkID string) (*models.GatewayCheckout, error)
}

// Cache is the JSON cache used for short id lookups.
type Cache interface {
	SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
}

// Provisioner creates the gateway-side checkout for a link.
type Provisioner interface {
	Provision(ctx context.Context, link *models.PaymentLink) (*models.GatewayCheckout, error)
}

type MetricsCollector interface {
	RecordIssued(gateway, currency string, amount float64)
	RecordProvisioned(gateway string, d time.Duration)
	RecordCacheHit(operation string)
	RecordCacheMiss(operation string)
	RecordError(operation, kind string)
}
