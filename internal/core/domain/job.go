package domain

import (
	"errors"
	"time"
)

var ErrJobNotFound = errors.New("job not found")

// JobPosting is a hiring opportunity listed in the catalog.
// Postings are read-only outside of the admin reseed operation.
type JobPosting struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Company      string    `json:"company"`
	Category     string    `json:"category"`
	Location     string    `json:"location"`
	Salary       string    `json:"salary"`
	Description  string    `json:"description"`
	Requirements []string  `json:"requirements"`
	PostedAt     time.Time `json:"posted_at"`
	Image        string    `json:"image"`
}
