package repositories

import (
	"context"
	"fmt"
	"time"

	"officedesk/internal/repositories/cache"
	"officedesk/internal/services/generator"
	keys "officedesk/internal/utils/cache"
)

type redisSessionStore struct {
	cache *cache.CacheService
	ttl   time.Duration
}

// NewRedisSessionStore keeps wizard sessions in Redis under wizard:session:<id>.
// Every save refreshes the TTL.
func NewRedisSessionStore(c *cache.CacheService, ttl time.Duration) generator.SessionStore {
	return &redisSessionStore{cache: c, ttl: ttl}
}

func (s *redisSessionStore) Save(ctx context.Context, session *generator.Session) error {
	if err := s.cache.SetWithTTL(ctx, sessionKey(session.ID), session, s.ttl); err != nil {
		return fmt.Errorf("store wizard session: %w", err)
	}
	return nil
}

func (s *redisSessionStore) Load(ctx context.Context, id string) (*generator.Session, error) {
	var session generator.Session
	found, err := s.cache.Get(ctx, sessionKey(id), &session)
	if err != nil {
		return nil, fmt.Errorf("load wizard session: %w", err)
	}
	if !found {
		return nil, generator.ErrSessionNotFound
	}
	return &session, nil
}

func (s *redisSessionStore) Delete(ctx context.Context, id string) error {
	return s.cache.Delete(ctx, sessionKey(id))
}

func sessionKey(id string) string {
	return keys.GenerateKey(keys.EntityWizard, keys.KeySession, id)
}
