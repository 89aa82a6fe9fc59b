package repositories

import (
	"context"
	"fmt"
	"time"

	"officedesk/internal/models"
	"officedesk/internal/services/attendance"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AttendanceRepository persists one attendance row per user per day.
type AttendanceRepository interface {
	attendance.Store
	CountByDay(ctx context.Context, dateKey string, status models.AttendanceStatus) (int64, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Save upserts the (userID, dateKey) row with the exact state fields.
func (r *attendanceRepository) Save(ctx context.Context, userID, dateKey string, state attendance.State) error {
	rec := models.Attendance{
		UserID:       userID,
		DateKey:      dateKey,
		ClockInTime:  state.ClockInTime,
		ClockOutTime: state.ClockOutTime,
		Status:       state.Status,
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "date_key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"clock_in_time":  state.ClockInTime,
			"clock_out_time": state.ClockOutTime,
			"status":         state.Status,
			"updated_at":     time.Now(),
		}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("save attendance %s/%s: %w", userID, dateKey, err)
	}
	return nil
}

// History returns the user's records, newest day first.
func (r *attendanceRepository) History(ctx context.Context, userID string) ([]models.Attendance, error) {
	var records []models.Attendance
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date_key DESC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("attendance history for %s: %w", userID, err)
	}
	return records, nil
}

// CountByDay counts records of a day; an empty status counts all of them.
func (r *attendanceRepository) CountByDay(ctx context.Context, dateKey string, status models.AttendanceStatus) (int64, error) {
	var n int64
	query := r.db.WithContext(ctx).Model(&models.Attendance{}).Where("date_key = ?", dateKey)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count attendance for %s: %w", dateKey, err)
	}
	return n, nil
}
