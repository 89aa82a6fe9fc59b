package paymentlink

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	apperrors "officedesk/internal/errors"
	"officedesk/internal/models"
	"officedesk/internal/services/generator"
	cachekeys "officedesk/internal/utils/cache"
)

type service struct {
	repo        Repository
	cache       Cache
	provisioner Provisioner
	issuer      *Issuer
	config      Config
	metrics     MetricsCollector

	wg sync.WaitGroup
}

// NewService creates a new payment link service. cache and provisioner are optional.
func NewService(
	repo Repository,
	cache Cache,
	provisioner Provisioner,
	issuer *Issuer,
	config Config,
	metrics MetricsCollector,
) Service {
	if repo == nil {
		panic("repo is required")
	}
	if issuer == nil {
		panic("issuer is required")
	}
	if config.CacheTTL == 0 {
		config.CacheTTL = DefaultCacheTTL
	}
	if config.ProvisionTimeout == 0 {
		config.ProvisionTimeout = ProvisionTimeout
	}
	if metrics == nil {
		metrics = &NoopMetricsCollector{}
	}

	return &service{
		repo:        repo,
		cache:       cache,
		provisioner: provisioner,
		issuer:      issuer,
		config:      config,
		metrics:     metrics,
	}
}

// Validate applies the generator form rules plus the currency and gateway lists.
func Validate(form Form) error {
	s := form.state()
	if msg, ok := generator.Validate(s); !ok {
		return apperrors.New(apperrors.ErrInvalidInput, msg)
	}
	if !contains(generator.Currencies, s.Currency) {
		return apperrors.New(apperrors.ErrInvalidInput, "Unsupported currency")
	}
	if !contains(generator.Gateways, s.Gateway) {
		return apperrors.New(apperrors.ErrInvalidInput, "Unsupported gateway")
	}
	return nil
}

func (s *service) Issue(ctx context.Context, form Form, by Identity) (*models.PaymentLink, error) {
	if err := Validate(form); err != nil {
		return nil, err
	}
	if by.ID == "" {
		return nil, apperrors.New(apperrors.ErrForbidden, "issuer identity is required")
	}

	link, err := s.issuer.Issue(form, by)
	if err != nil {
		s.metrics.RecordError("issue", "synthesize")
		return nil, fmt.Errorf("issue payment link: %w", err)
	}
	s.metrics.RecordIssued(link.Gateway, link.Currency, link.Amount)

	if err := s.repo.Prepend(ctx, link); err != nil {
		s.metrics.RecordError("issue", "persist")
		log.Printf("payment link %s not persisted: %v", link.ShortID, err)
	}
	s.cacheLink(ctx, link)

	if s.provisioner != nil {
		snapshot := *link
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.provision(&snapshot)
		}()
	}

	return link, nil
}

func (s *service) provision(link *models.PaymentLink) {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.ProvisionTimeout)
	defer cancel()

	start := time.Now()
	checkout, err := s.provisioner.Provision(ctx, link)
	if err != nil {
		s.metrics.RecordError("provision", link.Gateway)
		log.Printf("provisioning %s on %s failed: %v", link.ShortID, link.Gateway, err)
		return
	}
	if checkout == nil {
		return
	}
	s.metrics.RecordProvisioned(link.Gateway, time.Since(start))

	if err := s.repo.SaveCheckout(ctx, checkout); err != nil {
		s.metrics.RecordError("provision", "persist")
		log.Printf("checkout for %s not persisted: %v", link.ShortID, err)
	}
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]models.PaymentLink, error) {
	links, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list payment links: %w", err)
	}
	return links, nil
}

func (s *service) Count(ctx context.Context, createdBy string) (int64, error) {
	return s.repo.Count(ctx, createdBy)
}

func (s *service) Resolve(ctx context.Context, shortID string) (*Resolved, error) {
	link, err := s.lookup(ctx, shortID)
	if err != nil {
		return nil, err
	}

	res := &Resolved{Link: *link}
	checkout, err := s.repo.FindCheckout(ctx, link.ID)
	switch {
	case err == nil:
		res.CheckoutURL = checkout.URL
	case errors.Is(err, ErrCheckoutNotFound):
	default:
		log.Printf("checkout lookup for %s failed: %v", shortID, err)
	}
	return res, nil
}

func (s *service) lookup(ctx context.Context, shortID string) (*models.PaymentLink, error) {
	key := cacheKey(shortID)
	if s.cache != nil {
		var cached models.PaymentLink
		found, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			log.Printf("cache read %s: %v", key, err)
		}
		if found {
			s.metrics.RecordCacheHit("resolve")
			return &cached, nil
		}
		s.metrics.RecordCacheMiss("resolve")
	}

	link, err := s.repo.FindByShortID(ctx, shortID)
	if err != nil {
		if errors.Is(err, ErrLinkNotFound) {
			return nil, apperrors.New(apperrors.ErrNotFound, "payment link not found")
		}
		return nil, fmt.Errorf("resolve payment link: %w", err)
	}
	s.cacheLink(ctx, link)
	return link, nil
}

func (s *service) cacheLink(ctx context.Context, link *models.PaymentLink) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetWithTTL(ctx, cacheKey(link.ShortID), link, s.config.CacheTTL); err != nil {
		log.Printf("cache write for %s: %v", link.ShortID, err)
	}
}

func (s *service) Wait() {
	s.wg.Wait()
}

func cacheKey(shortID string) string {
	return cachekeys.GenerateKey(cachekeys.EntityPaymentLink, cachekeys.KeyShort, shortID)
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
