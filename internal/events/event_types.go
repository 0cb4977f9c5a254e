package events

import (
	"time"

	"github.com/spec-kit/staff-task-portal/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventLoginSucceeded    EventType = "login_succeeded"
	EventLoginFailed       EventType = "login_failed"
	EventAccountLocked     EventType = "account_locked"
	EventTaskStatusChanged EventType = "task_status_changed"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	StaffID   string      `json:"staff_id,omitempty"`
	TaskID    string      `json:"task_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// LoginPayload describes a login attempt outcome. EmpID is included for
// audit; failed attempts never reveal whether the id exists.
type LoginPayload struct {
	EmpID          string `json:"emp_id"`
	FailedAttempts int    `json:"failed_attempts,omitempty"`
}

// AccountLockedPayload carries the lock window for a tripped lockout.
type AccountLockedPayload struct {
	EmpID       string    `json:"emp_id"`
	LockedUntil time.Time `json:"locked_until"`
}

// TaskStatusChangedPayload describes a status transition.
type TaskStatusChangedPayload struct {
	OldStatus domain.TaskStatus `json:"old_status"`
	NewStatus domain.TaskStatus `json:"new_status"`
	ActorID   string            `json:"actor_id"`
}
