package entity

import (
	"time"

	"github.com/google/uuid"
)

// DayOfWeek names match time.Weekday.String() so a date's weekday can be
// compared against schedule rows directly.
type DayOfWeek string

const (
	Monday    DayOfWeek = "Monday"
	Tuesday   DayOfWeek = "Tuesday"
	Wednesday DayOfWeek = "Wednesday"
	Thursday  DayOfWeek = "Thursday"
	Friday    DayOfWeek = "Friday"
	Saturday  DayOfWeek = "Saturday"
	Sunday    DayOfWeek = "Sunday"
)

func (d DayOfWeek) IsValid() bool {
	switch d {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return true
	}
	return false
}

// DayOfWeekFromDate returns the weekday name for a calendar date.
func DayOfWeekFromDate(date time.Time) DayOfWeek {
	return DayOfWeek(date.Weekday().String())
}

// Schedule is a doctor's recurring weekly availability window. At most one
// row exists per (doctor_id, day_of_week); the composite unique index makes
// the upsert in the repository atomic.
type Schedule struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DoctorID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:doctor_schedule_idx" json:"doctor_id"`
	DayOfWeek   DayOfWeek `gorm:"type:varchar(10);not null;uniqueIndex:doctor_schedule_idx" json:"day_of_week"`
	StartTime   string    `gorm:"type:time;not null" json:"start_time"`
	EndTime     string    `gorm:"type:time;not null" json:"end_time"`
	IsAvailable bool      `gorm:"not null;default:true" json:"is_available"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor DoctorProfile `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Schedule) TableName() string {
	return "schedules"
}

// Contains reports whether [start,end) lies fully inside the window.
// Times are normalized HH:MM strings, so lexicographic order is clock order.
func (s *Schedule) Contains(start, end string) bool {
	return s.StartTime <= start && end <= s.EndTime
}
