package generator

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"officedesk/internal/clock"
	apperrors "officedesk/internal/errors"

	"github.com/google/uuid"
)

// Service drives owner-bound wizard sessions.
type Service interface {
	Start(ctx context.Context, ownerID string) (*Session, error)
	Get(ctx context.Context, id, ownerID string) (*Session, error)
	SetFields(ctx context.Context, id, ownerID string, fields map[string]string) (*Session, error)
	Next(ctx context.Context, id, ownerID string, issue IssueFunc) (*Session, error)
	Back(ctx context.Context, id, ownerID string) (*Session, error)
	Reset(ctx context.Context, id, ownerID string) (*Session, error)
}

type service struct {
	store SessionStore
	clock clock.Clock

	mu    sync.Mutex
	locks map[string]*sessionLock
}

// sessionLock serializes mutations of one session. It is dropped once no
// request holds or waits on it.
type sessionLock struct {
	sync.Mutex
	refs int
}

func NewService(store SessionStore, clk clock.Clock) Service {
	if store == nil {
		panic("session store is required")
	}
	if clk == nil {
		clk = clock.System{}
	}
	return &service{store: store, clock: clk, locks: make(map[string]*sessionLock)}
}

func (s *service) Start(ctx context.Context, ownerID string) (*Session, error) {
	sess := &Session{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		State:     Initial(),
		UpdatedAt: s.clock.Now(),
	}
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save wizard session: %w", err)
	}
	return sess, nil
}

func (s *service) Get(ctx context.Context, id, ownerID string) (*Session, error) {
	sess, err := s.store.Load(ctx, id)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, apperrors.ErrSessionNotFound
		}
		return nil, fmt.Errorf("load wizard session: %w", err)
	}
	// Foreign sessions look missing.
	if sess.OwnerID != ownerID {
		return nil, apperrors.ErrSessionNotFound
	}
	return sess, nil
}

// SetFields applies one SET_FIELD per entry. Unknown names are rejected
// before any field changes.
func (s *service) SetFields(ctx context.Context, id, ownerID string, fields map[string]string) (*Session, error) {
	for name := range fields {
		if !IsField(name) {
			return nil, apperrors.New(apperrors.ErrInvalidInput, "unknown field: "+name)
		}
	}
	return s.apply(ctx, id, ownerID, func(st State) State {
		for _, f := range []Field{FieldCustomerName, FieldCustomerEmail, FieldAmount, FieldCurrency, FieldGateway, FieldDescription} {
			if v, ok := fields[string(f)]; ok {
				st = Reduce(st, SetField(f, v))
			}
		}
		return st
	})
}

func (s *service) Next(ctx context.Context, id, ownerID string, issue IssueFunc) (*Session, error) {
	return s.apply(ctx, id, ownerID, func(st State) State {
		return Advance(st, issue)
	})
}

func (s *service) Back(ctx context.Context, id, ownerID string) (*Session, error) {
	return s.apply(ctx, id, ownerID, func(st State) State {
		return Reduce(st, PrevStep())
	})
}

func (s *service) Reset(ctx context.Context, id, ownerID string) (*Session, error) {
	return s.apply(ctx, id, ownerID, func(st State) State {
		return Reduce(st, Reset())
	})
}

func (s *service) lock(id string) func() {
	s.mu.Lock()
	l, ok := s.locks[id]
	if !ok {
		l = &sessionLock{}
		s.locks[id] = l
	}
	l.refs++
	s.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()
		s.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, id)
		}
		s.mu.Unlock()
	}
}

// apply runs load, fn and save under the session's lock so a repeated
// Next from CONFIRM sees the issued link instead of issuing again.
func (s *service) apply(ctx context.Context, id, ownerID string, fn func(State) State) (*Session, error) {
	unlock := s.lock(id)
	defer unlock()

	sess, err := s.Get(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	sess.State = fn(sess.State)
	sess.UpdatedAt = s.clock.Now()
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save wizard session: %w", err)
	}
	return sess, nil
}
