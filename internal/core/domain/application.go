package domain

import (
	"errors"
	"time"
)

// ApplicationStatus is the review state of an application.
type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "pending"
	StatusAccepted ApplicationStatus = "accepted"
	StatusRejected ApplicationStatus = "rejected"
)

var ErrApplicationNotFound = errors.New("application not found")
var ErrAlreadyApplied = errors.New("already applied")
var ErrInvalidStatus = errors.New("invalid status")

// Valid reports whether s is one of the known statuses. Transitions between
// valid statuses are unrestricted: an admin may move any application to any
// status, including back to pending.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// Application records one Account's intent to be hired for one JobPosting.
// JobTitle and Company are snapshotted at apply time and intentionally not
// kept in sync with later catalog edits.
type Application struct {
	ID          string            `json:"id"`
	AccountID   string            `json:"account_id"`
	JobID       string            `json:"job_id"`
	JobTitle    string            `json:"job_title"`
	Company     string            `json:"company"`
	CoverLetter string            `json:"cover_letter"`
	AppliedAt   time.Time         `json:"applied_at"`
	Status      ApplicationStatus `json:"status"`
}
