package domain

import "time"

// Department represents an organizational unit. Code is unique (e.g. CSE, IT).
type Department struct {
	ID          string
	Name        string
	Code        string
	Description string
	HodID       *string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
