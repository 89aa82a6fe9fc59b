package attendance

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"officedesk/internal/clock"
	apperrors "officedesk/internal/errors"
	"officedesk/internal/models"
)

type service struct {
	store    Store
	clock    clock.Clock
	interval time.Duration

	mu       sync.Mutex
	trackers map[string]*Tracker
}

// NewService creates the attendance service. A zero interval uses DefaultTickInterval.
func NewService(store Store, clk clock.Clock, interval time.Duration) Service {
	if store == nil {
		panic("attendance store is required")
	}
	if clk == nil {
		clk = clock.System{}
	}
	return &service{
		store:    store,
		clock:    clk,
		interval: interval,
		trackers: make(map[string]*Tracker),
	}
}

// tracker returns the user's tracker, loading it from the store on first use.
// A tracker whose history could not be read is never cached, so the next
// call loads again instead of acting on a blank record.
func (s *service) tracker(ctx context.Context, userID string) (*Tracker, error) {
	s.mu.Lock()
	t, ok := s.trackers[userID]
	s.mu.Unlock()
	if ok {
		return t, nil
	}

	fresh := NewTracker(userID, s.clock, s.store, s.interval)
	if err := fresh.Load(ctx); err != nil {
		fresh.Close()
		log.Printf("attendance: history unavailable for %s: %v", userID, err)
		return nil, apperrors.New(apperrors.ErrUnavailable, "attendance history is unavailable, try again")
	}

	s.mu.Lock()
	t, ok = s.trackers[userID]
	if !ok {
		s.trackers[userID] = fresh
	}
	s.mu.Unlock()
	if ok {
		// a concurrent first access won
		fresh.Close()
		return t, nil
	}
	return fresh, nil
}

func (s *service) ClockIn(ctx context.Context, userID string) (*Snapshot, error) {
	t, err := s.tracker(ctx, userID)
	if err != nil {
		return nil, err
	}
	snap, changed := t.ClockIn()
	if !changed {
		log.Printf("attendance: %s already clocked in", userID)
	}
	return &snap, nil
}

func (s *service) ClockOut(ctx context.Context, userID string) (*Snapshot, error) {
	t, err := s.tracker(ctx, userID)
	if err != nil {
		return nil, err
	}
	snap, changed := t.ClockOut()
	if !changed {
		log.Printf("attendance: %s not clocked in", userID)
	}
	return &snap, nil
}

func (s *service) Today(ctx context.Context, userID string) (*Snapshot, error) {
	t, err := s.tracker(ctx, userID)
	if err != nil {
		return nil, err
	}
	snap := t.Snapshot()
	return &snap, nil
}

func (s *service) Subscribe(ctx context.Context, userID string) (<-chan Tick, func(), error) {
	t, err := s.tracker(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	ch, cancel := t.Subscribe()
	return ch, cancel, nil
}

func (s *service) History(ctx context.Context, userID string) ([]HistoryEntry, error) {
	s.mu.Lock()
	t, live := s.trackers[userID]
	s.mu.Unlock()
	if live {
		t.Flush()
	}

	records, err := s.store.History(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("attendance history: %w", err)
	}

	now := s.clock.Now()
	entries := make([]HistoryEntry, 0, len(records))
	for _, rec := range records {
		open := rec.Status == models.StatusClockedIn
		d := Elapsed(rec.ClockInTime, rec.ClockOutTime, open, now)
		entries = append(entries, HistoryEntry{
			Attendance:   rec,
			TotalSeconds: int64(d / time.Second),
			Display:      FormatPreciseDuration(d),
			InProgress:   open,
		})
	}
	return entries, nil
}

// Sync writes a client-reported state. The live tracker follows when the
// state is for its current day; other days go straight to the store.
func (s *service) Sync(ctx context.Context, userID, dateKey string, state State) (*Snapshot, error) {
	if err := ValidateState(dateKey, state); err != nil {
		return nil, err
	}

	t, err := s.tracker(ctx, userID)
	if err != nil {
		return nil, err
	}
	if snap, ok := t.Apply(dateKey, state); ok {
		return &snap, nil
	}

	if err := s.store.Save(ctx, userID, dateKey, state); err != nil {
		return nil, fmt.Errorf("attendance sync: %w", err)
	}
	rec := models.Attendance{
		UserID:       userID,
		DateKey:      dateKey,
		ClockInTime:  state.ClockInTime,
		ClockOutTime: state.ClockOutTime,
		Status:       state.Status,
	}
	d := Elapsed(rec.ClockInTime, rec.ClockOutTime, rec.Status == models.StatusClockedIn, s.clock.Now())
	return &Snapshot{
		Record:          rec,
		ElapsedSeconds:  int64(d / time.Second),
		Display:         FormatDuration(d),
		Precise:         FormatPreciseDuration(d),
		GoalReached:     d >= DailyGoal,
		ProgressPercent: Progress(d),
	}, nil
}

func (s *service) Close() {
	s.mu.Lock()
	trackers := s.trackers
	s.trackers = make(map[string]*Tracker)
	s.mu.Unlock()

	for _, t := range trackers {
		t.Close()
	}
}

// ValidateState checks a synced record before it reaches the store.
func ValidateState(dateKey string, state State) error {
	if _, err := time.Parse("2006-01-02", dateKey); err != nil {
		return apperrors.New(apperrors.ErrInvalidInput, "dateKey must be YYYY-MM-DD")
	}
	switch state.Status {
	case models.StatusClockedIn:
		if state.ClockInTime == nil {
			return apperrors.New(apperrors.ErrInvalidInput, "clockInTime is required when clocked in")
		}
	case models.StatusClockedOut:
	default:
		return apperrors.New(apperrors.ErrInvalidInput, "status must be ClockedIn or ClockedOut")
	}
	if state.ClockInTime != nil && state.ClockOutTime != nil && state.ClockOutTime.Before(*state.ClockInTime) {
		return apperrors.New(apperrors.ErrInvalidInput, "clockOutTime is before clockInTime")
	}
	return nil
}
