package repositories

import (
	"context"
	"errors"
	"fmt"

	"officedesk/internal/models"
	"officedesk/internal/services/paymentlink"

	"gorm.io/gorm"
)

type paymentLinkRepository struct {
	db *gorm.DB
}

// NewPaymentLinkRepository stores links in Postgres and lists them by created_at DESC.
func NewPaymentLinkRepository(db *gorm.DB) paymentlink.Repository {
	return &paymentLinkRepository{db: db}
}

func (r *paymentLinkRepository) Prepend(ctx context.Context, link *models.PaymentLink) error {
	if err := r.db.WithContext(ctx).Create(link).Error; err != nil {
		return fmt.Errorf("insert payment link: %w", err)
	}
	return nil
}

func (r *paymentLinkRepository) List(ctx context.Context, filter paymentlink.ListFilter) ([]models.PaymentLink, error) {
	var links []models.PaymentLink
	query := r.db.WithContext(ctx).Model(&models.PaymentLink{})
	if filter.CreatedBy != "" {
		query = query.Where("created_by = ?", filter.CreatedBy)
	}
	query = query.Order("created_at DESC").Order("id").Offset(filter.Offset)
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if err := query.Find(&links).Error; err != nil {
		return nil, fmt.Errorf("list payment links: %w", err)
	}
	return links, nil
}

func (r *paymentLinkRepository) FindByShortID(ctx context.Context, shortID string) (*models.PaymentLink, error) {
	var link models.PaymentLink
	if err := r.db.WithContext(ctx).Where("short_id = ?", shortID).First(&link).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, paymentlink.ErrLinkNotFound
		}
		return nil, fmt.Errorf("find payment link %s: %w", shortID, err)
	}
	return &link, nil
}

func (r *paymentLinkRepository) Count(ctx context.Context, createdBy string) (int64, error) {
	var n int64
	query := r.db.WithContext(ctx).Model(&models.PaymentLink{})
	if createdBy != "" {
		query = query.Where("created_by = ?", createdBy)
	}
	if err := query.Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count payment links: %w", err)
	}
	return n, nil
}

func (r *paymentLinkRepository) SaveCheckout(ctx context.Context, checkout *models.GatewayCheckout) error {
	if err := r.db.WithContext(ctx).Create(checkout).Error; err != nil {
		return fmt.Errorf("insert gateway checkout: %w", err)
	}
	return nil
}

func (r *paymentLinkRepository) FindCheckout(ctx context.Context, paymentLinkID string) (*models.GatewayCheckout, error) {
	var checkout models.GatewayCheckout
	err := r.db.WithContext(ctx).Where("payment_link_id = ?", paymentLinkID).First(&checkout).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, paymentlink.ErrCheckoutNotFound
		}
		return nil, fmt.Errorf("find gateway checkout: %w", err)
	}
	return &checkout, nil
}
