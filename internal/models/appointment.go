package models

import "time"

type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

type Appointment struct {
	ID          string            `gorm:"primaryKey;size:36"`
	SchoolID    uint              `gorm:"index;not null"`
	SchoolName  string            `gorm:"size:255;not null"`
	Title       string            `gorm:"size:255;not null"`
	Description string            `gorm:"size:500"`
	Date        string            `gorm:"size:10;index;not null"` // "2025-12-09"
	Time        string            `gorm:"size:5;not null"`        // "14:30"
	Status      AppointmentStatus `gorm:"size:20;not null;index"`
	Notes       string            `gorm:"size:1000"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
