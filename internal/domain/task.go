package domain

import "time"

// TaskStatus enumerates task lifecycle states. Status is a free enumeration
// field with no guarded transition graph: any value may follow any other.
// OVERDUE is defined but nothing computes it from due dates; it is only
// reachable through an explicit status write.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "PENDING"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
	TaskStatusOverdue    TaskStatus = "OVERDUE"
	TaskStatusRejected   TaskStatus = "REJECTED"
)

// TaskStatuses lists every member of the closed status enumeration.
var TaskStatuses = []TaskStatus{
	TaskStatusPending,
	TaskStatusInProgress,
	TaskStatusCompleted,
	TaskStatusOverdue,
	TaskStatusRejected,
}

// Valid reports membership in the closed status enumeration.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted,
		TaskStatusOverdue, TaskStatusRejected:
		return true
	}
	return false
}

// TaskPriority enumerates urgency levels.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "LOW"
	TaskPriorityMedium TaskPriority = "MEDIUM"
	TaskPriorityHigh   TaskPriority = "HIGH"
	TaskPriorityUrgent TaskPriority = "URGENT"
)

// Task is a unit of work assigned by a HOD to a staff member.
type Task struct {
	ID           string
	Title        string
	Description  string
	DepartmentID string
	AssignedToID string
	AssignedByID string
	Status       TaskStatus
	Priority     TaskPriority
	DueDate      time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DisplayRef is a reference that may carry a resolved display name. Name
// resolution happens eagerly at the store boundary; when it fails the raw
// identifier is kept and Display degrades to it.
type DisplayRef struct {
	ID       string
	Name     string
	Resolved bool
}

// Display returns the resolved name, or the raw reference id when
// resolution did not succeed.
func (r DisplayRef) Display() string {
	if r.Resolved {
		return r.Name
	}
	return r.ID
}

// ResolvedRef builds a DisplayRef carrying a display name.
func ResolvedRef(id, name string) DisplayRef {
	return DisplayRef{ID: id, Name: name, Resolved: true}
}

// RawRef builds an unresolved DisplayRef.
func RawRef(id string) DisplayRef {
	return DisplayRef{ID: id}
}

// TaskDetail is a Task with its cross-references resolved for display.
type TaskDetail struct {
	Task
	Department DisplayRef
	AssignedTo DisplayRef
	AssignedBy DisplayRef
}

// TaskCounts aggregates the dashboard status buckets. OVERDUE and REJECTED
// tasks contribute to Total only, matching the portal dashboard.
type TaskCounts struct {
	Total      int
	Pending    int
	InProgress int
	Completed  int
}
