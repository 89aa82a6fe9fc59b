package paymentlink

import (
	"context"
	"sync"

	"officedesk/internal/models"
)

// MemoryCollection is an in-process Repository.
type MemoryCollection struct {
	mu        sync.RWMutex
	links     []models.PaymentLink
	checkouts map[string]models.GatewayCheckout
}

func NewMemoryCollection() *MemoryCollection {
	return &MemoryCollection{checkouts: make(map[string]models.GatewayCheckout)}
}

func (m *MemoryCollection) Prepend(_ context.Context, link *models.PaymentLink) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.links = append([]models.PaymentLink{*link}, m.links...)
	return nil
}

func (m *MemoryCollection) List(_ context.Context, filter ListFilter) ([]models.PaymentLink, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.PaymentLink, 0, len(m.links))
	skipped := 0
	for _, l := range m.links {
		if filter.CreatedBy != "" && l.CreatedBy != filter.CreatedBy {
			continue
		}
		if skipped < filter.Offset {
			skipped++
			continue
		}
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
		out = append(out, l)
	}
	return out, nil
}

func (m *MemoryCollection) FindByShortID(_ context.Context, shortID string) (*models.PaymentLink, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, l := range m.links {
		if l.ShortID == shortID {
			link := l
			return &link, nil
		}
	}
	return nil, ErrLinkNotFound
}

func (m *MemoryCollection) Count(_ context.Context, createdBy string) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var n int64
	for _, l := range m.links {
		if createdBy == "" || l.CreatedBy == createdBy {
			n++
		}
	}
	return n, nil
}

func (m *MemoryCollection) SaveCheckout(_ context.Context, checkout *models.GatewayCheckout) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.checkouts[checkout.PaymentLinkID] = *checkout
	return nil
}

func (m *MemoryCollection) FindCheckout(_ context.Context, paymentLinkID string) (*models.GatewayCheckout, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.checkouts[paymentLinkID]
	if !ok {
		return nil, ErrCheckoutNotFound
	}
	return &c, nil
}
