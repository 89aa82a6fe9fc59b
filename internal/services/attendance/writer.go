package attendance

import (
	"context"
	"log"
	"sync"
	"time"

	"officedesk/internal/models"
)

const saveTimeout = 10 * time.Second

// writer pushes the latest record to the store from a single goroutine.
// Pending writes for the same day are coalesced so the store always ends on
// the newest state of each record.
type writer struct {
	store Store

	mu      sync.Mutex
	idle    *sync.Cond
	pending []models.Attendance
	running bool
}

func newWriter(store Store) *writer {
	w := &writer{store: store}
	w.idle = sync.NewCond(&w.mu)
	return w
}

func (w *writer) submit(rec models.Attendance) {
	w.mu.Lock()
	defer w.mu.Unlock()
	replaced := false
	for i := range w.pending {
		if w.pending[i].DateKey == rec.DateKey {
			w.pending[i] = rec
			replaced = true
		}
	}
	if !replaced {
		w.pending = append(w.pending, rec)
	}
	if !w.running {
		w.running = true
		go w.loop()
	}
}

func (w *writer) loop() {
	for {
		w.mu.Lock()
		if len(w.pending) == 0 {
			w.running = false
			w.idle.Broadcast()
			w.mu.Unlock()
			return
		}
		rec := w.pending[0]
		w.pending = w.pending[1:]
		w.mu.Unlock()

		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		err := w.store.Save(ctx, rec.UserID, rec.DateKey, State{
			ClockInTime:  rec.ClockInTime,
			ClockOutTime: rec.ClockOutTime,
			Status:       rec.Status,
		})
		cancel()
		if err != nil {
			log.Printf("attendance: failed to persist %s/%s: %v", rec.UserID, rec.DateKey, err)
		}
	}
}

// flush blocks until every submitted record has been handed to the store.
func (w *writer) flush() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for w.running {
		w.idle.Wait()
	}
}
