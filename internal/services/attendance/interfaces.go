package attendance

import (
	"context"
	"time"

	"officedesk/internal/models"
)

// State is the persisted part of a day's record.
type State struct {
	ClockInTime  *time.Time              `json:"clockInTime"`
	ClockOutTime *time.Time              `json:"clockOutTime"`
	Status       models.AttendanceStatus `json:"status"`
}

// Store is the persistence/sync collaborator for attendance.
type Store interface {
	Save(ctx context.Context, userID, dateKey string, state State) error
	History(ctx context.Context, userID string) ([]models.Attendance, error)
}

// Service exposes per-user trackers to the HTTP layer.
type Service interface {
	ClockIn(ctx context.Context, userID string) (*Snapshot, error)
	ClockOut(ctx context.Context, userID string) (*Snapshot, error)
	Today(ctx context.Context, userID string) (*Snapshot, error)
	Subscribe(ctx context.Context, userID string) (<-chan Tick, func(), error)
	History(ctx context.Context, userID string) ([]HistoryEntry, error)
	Sync(ctx context.Context, userID, dateKey string, state State) (*Snapshot, error)
	Export(ctx context.Context, userID, userName string) ([]byte, error)
	Close()
}

// Tick is one live update for subscribers.
type Tick struct {
	Status  models.AttendanceStatus `json:"status"`
	Elapsed int64                   `json:"elapsedSeconds"`
	Display string                  `json:"display"`
	Precise string                  `json:"precise"`
}

// Snapshot is the today view of a tracker.
type Snapshot struct {
	Record          models.Attendance `json:"record"`
	ElapsedSeconds  int64             `json:"elapsedSeconds"`
	Display         string            `json:"display"`
	Precise         string            `json:"precise"`
	GoalReached     bool              `json:"goalReached"`
	ProgressPercent float64           `json:"progressPercent"`
}

// HistoryEntry is one row of a user's attendance history.
type HistoryEntry struct {
	models.Attendance
	TotalSeconds int64  `json:"totalSeconds"`
	Display      string `json:"display"`
	InProgress   bool   `json:"inProgress"`
}
