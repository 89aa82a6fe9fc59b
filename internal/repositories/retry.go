package repositories

import (
	"context"
	"log"
	"time"

	"officedesk/internal/models"
	"officedesk/internal/services/attendance"
)

const (
	DefaultRetryAttempts = 3
	DefaultRetryBackoff  = 200 * time.Millisecond
)

// RetryingStore retries failed attendance writes with linear backoff.
type RetryingStore struct {
	next     attendance.Store
	attempts int
	backoff  time.Duration
}

func NewRetryingStore(next attendance.Store, attempts int, backoff time.Duration) *RetryingStore {
	if attempts < 1 {
		attempts = DefaultRetryAttempts
	}
	if backoff < 0 {
		backoff = DefaultRetryBackoff
	}
	return &RetryingStore{next: next, attempts: attempts, backoff: backoff}
}

func (s *RetryingStore) Save(ctx context.Context, userID, dateKey string, state attendance.State) error {
	var err error
	for attempt := 1; attempt <= s.attempts; attempt++ {
		if err = s.next.Save(ctx, userID, dateKey, state); err == nil {
			return nil
		}
		log.Printf("attendance save %s/%s attempt %d/%d failed: %v", userID, dateKey, attempt, s.attempts, err)
		if attempt == s.attempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * s.backoff):
		}
	}
	return err
}

// History is not retried; readers fall back on their own.
func (s *RetryingStore) History(ctx context.Context, userID string) ([]models.Attendance, error) {
	return s.next.History(ctx, userID)
}
