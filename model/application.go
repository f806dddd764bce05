package model

import (
	"fmt"
	"time"
)

// ApplicationStatus is the enumerated state of an application. Statuses
// only change along the transition table below.
type ApplicationStatus string

const (
	StatusApplied     ApplicationStatus = "Applied"
	StatusShortlisted ApplicationStatus = "Shortlisted"
	StatusRejected    ApplicationStatus = "Rejected"
	StatusHired       ApplicationStatus = "Hired"
)

// statusTransitions maps a status to the statuses a company may move it to.
// Rejected and Hired are terminal.
var statusTransitions = map[ApplicationStatus][]ApplicationStatus{
	StatusApplied:     {StatusShortlisted, StatusRejected},
	StatusShortlisted: {StatusRejected, StatusHired},
	StatusRejected:    {},
	StatusHired:       {},
}

// ParseApplicationStatus validates a submitted status value.
func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	switch ApplicationStatus(s) {
	case StatusApplied, StatusShortlisted, StatusRejected, StatusHired:
		return ApplicationStatus(s), nil
	}
	return "", fmt.Errorf("unknown application status %q", s)
}

// CanTransition reports whether from → to is an allowed status change.
func CanTransition(from, to ApplicationStatus) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Application links one Job and one StudentProfile. The composite unique
// index keeps a student from applying to the same job twice.
type Application struct {
	ID        int64             `gorm:"primaryKey;autoIncrement;column:id"`
	JobID     int64             `gorm:"column:job_id;not null;uniqueIndex:idx_job_student"`
	Job       Job               `gorm:"foreignKey:JobID"`
	StudentID int64             `gorm:"column:student_id;not null;uniqueIndex:idx_job_student"`
	Student   StudentProfile    `gorm:"foreignKey:StudentID"`
	Status    ApplicationStatus `gorm:"column:status;size:50;not null"`
	AppliedAt time.Time         `gorm:"column:applied_at"`
}

func (Application) TableName() string {
	return "applications"
}
