package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttendanceStatus string

const (
	StatusClockedIn  AttendanceStatus = "ClockedIn"
	StatusClockedOut AttendanceStatus = "ClockedOut"
)

// Attendance is one user's record for one calendar day.
type Attendance struct {
	ID           string           `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       string           `gorm:"type:uuid;not null;uniqueIndex:idx_attendance_user_day" json:"userId"`
	DateKey      string           `gorm:"size:10;not null;uniqueIndex:idx_attendance_user_day" json:"dateKey"`
	ClockInTime  *time.Time       `json:"clockInTime"`
	ClockOutTime *time.Time       `json:"clockOutTime"`
	Status       AttendanceStatus `gorm:"size:16;not null;default:'ClockedOut'" json:"status"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

func (a *Attendance) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
