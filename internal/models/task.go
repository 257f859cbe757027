package models

import "time"

const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

// ValidStatus reports whether s is one of the three statuses a task may
// hold. No other value may ever reach storage.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusInProgress || s == StatusCompleted
}

type Task struct {
	ID           int64
	Title        string
	Description  string
	Status       string
	DueDate      *time.Time
	AssignedUser string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
