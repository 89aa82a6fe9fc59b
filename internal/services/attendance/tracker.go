package attendance

import (
	"context"
	"fmt"
	"sync"
	"time"

	"officedesk/internal/clock"
	"officedesk/internal/models"
)

// Tracker owns one user's attendance record for the current day.
type Tracker struct {
	userID string
	clock  clock.Clock
	ticker *Ticker
	writer *writer

	mu     sync.Mutex
	record models.Attendance
	subs   map[int]chan Tick
	nextID int
	closed bool
}

func NewTracker(userID string, clk clock.Clock, store Store, interval time.Duration) *Tracker {
	if clk == nil {
		clk = clock.System{}
	}
	t := &Tracker{
		userID: userID,
		clock:  clk,
		ticker: NewTicker(interval),
		writer: newWriter(store),
		subs:   make(map[int]chan Tick),
	}
	t.record = t.blank(clk.Now())
	return t
}

func (t *Tracker) blank(now time.Time) models.Attendance {
	return models.Attendance{
		UserID:  t.userID,
		DateKey: DayKey(now),
		Status:  models.StatusClockedOut,
	}
}

// Load adopts today's record from the store, or the previous day's record
// if it is still open.
func (t *Tracker) Load(ctx context.Context) error {
	history, err := t.writer.store.History(ctx, t.userID)
	if err != nil {
		return fmt.Errorf("load attendance history: %w", err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	today := DayKey(t.clock.Now())
	for _, rec := range history {
		if rec.DateKey == today || rec.Status == models.StatusClockedIn {
			t.record = rec
			break
		}
	}
	if t.record.Status == models.StatusClockedIn {
		t.ticker.Start(t.tick)
	}
	return nil
}

// ClockIn opens a session. It reports false when already clocked in.
func (t *Tracker) ClockIn() (Snapshot, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.clock.Now()
	if t.record.Status == models.StatusClockedIn {
		return t.snapshot(now), false
	}
	t.rollover(now)

	in := now
	t.record.ClockInTime = &in
	t.record.ClockOutTime = nil
	t.record.Status = models.StatusClockedIn
	t.writer.submit(t.record)
	if !t.closed {
		t.ticker.Start(t.tick)
	}
	snap := t.snapshot(now)
	t.broadcast(tickFrom(snap))
	return snap, true
}

// ClockOut closes the open session. It reports false when not clocked in.
func (t *Tracker) ClockOut() (Snapshot, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.clock.Now()
	if t.record.Status != models.StatusClockedIn {
		return t.snapshot(now), false
	}

	out := now
	t.record.ClockOutTime = &out
	t.record.Status = models.StatusClockedOut
	t.ticker.Stop()
	t.writer.submit(t.record)

	snap := t.snapshot(now)
	t.broadcast(tickFrom(snap))
	return snap, true
}

// Apply replaces the record with a synced state. It reports false, leaving
// the tracker untouched, when dateKey is not the tracker's current day.
func (t *Tracker) Apply(dateKey string, state State) (Snapshot, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.clock.Now()
	t.rollover(now)
	if dateKey != t.record.DateKey {
		return t.snapshot(now), false
	}
	t.record.ClockInTime = state.ClockInTime
	t.record.ClockOutTime = state.ClockOutTime
	t.record.Status = state.Status
	t.writer.submit(t.record)

	if state.Status == models.StatusClockedIn && state.ClockInTime != nil && !t.closed {
		t.ticker.Start(t.tick)
	} else {
		t.ticker.Stop()
	}
	snap := t.snapshot(now)
	t.broadcast(tickFrom(snap))
	return snap, true
}

// Elapsed is the worked time of the current record.
func (t *Tracker) Elapsed() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.elapsed(t.clock.Now())
}

func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	now := t.clock.Now()
	t.rollover(now)
	return t.snapshot(now)
}

// Ticking reports whether the live callback is scheduled.
func (t *Tracker) Ticking() bool {
	return t.ticker.Running()
}

// Subscribe registers for live ticks. The returned func unsubscribes.
func (t *Tracker) Subscribe() (<-chan Tick, func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	ch := make(chan Tick, 1)
	if t.closed {
		close(ch)
		return ch, func() {}
	}
	id := t.nextID
	t.nextID++
	t.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			t.mu.Lock()
			defer t.mu.Unlock()
			if c, ok := t.subs[id]; ok {
				delete(t.subs, id)
				close(c)
			}
		})
	}
}

// Flush waits for pending store writes.
func (t *Tracker) Flush() {
	t.writer.flush()
}

// Close stops the ticker and ends all subscriptions.
func (t *Tracker) Close() {
	t.mu.Lock()
	t.closed = true
	t.ticker.Stop()
	for id, ch := range t.subs {
		delete(t.subs, id)
		close(ch)
	}
	t.mu.Unlock()
	t.writer.flush()
}

func (t *Tracker) tick() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.record.Status != models.StatusClockedIn {
		return
	}
	t.broadcast(tickFrom(t.snapshot(t.clock.Now())))
}

// broadcast never blocks; a slow subscriber keeps only the newest tick.
func (t *Tracker) broadcast(tk Tick) {
	for _, ch := range t.subs {
		select {
		case ch <- tk:
			continue
		default:
		}
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- tk:
		default:
		}
	}
}

// rollover starts a fresh record once the day has changed, unless a session
// is still open. Open sessions keep the day they were started on.
func (t *Tracker) rollover(now time.Time) {
	if t.record.Status == models.StatusClockedIn {
		return
	}
	if key := DayKey(now); t.record.DateKey != key {
		t.record = t.blank(now)
	}
}

func (t *Tracker) elapsed(now time.Time) time.Duration {
	return Elapsed(t.record.ClockInTime, t.record.ClockOutTime, t.record.Status == models.StatusClockedIn, now)
}

func (t *Tracker) snapshot(now time.Time) Snapshot {
	d := t.elapsed(now)
	return Snapshot{
		Record:          t.record,
		ElapsedSeconds:  int64(d / time.Second),
		Display:         FormatDuration(d),
		Precise:         FormatPreciseDuration(d),
		GoalReached:     d >= DailyGoal,
		ProgressPercent: Progress(d),
	}
}

func tickFrom(s Snapshot) Tick {
	return Tick{
		Status:  s.Record.Status,
		Elapsed: s.ElapsedSeconds,
		Display: s.Display,
		Precise: s.Precise,
	}
}
