package models

import "time"

// Status represents the bug workflow state. The four values form a flat
// machine: any authorized actor may move a bug between any two of them.
type Status string

const (
	StatusOpen       Status = "Open"
	StatusInProgress Status = "In Progress"
	StatusResolved   Status = "Resolved"
	StatusClosed     Status = "Closed"
)

// Valid reports whether the status is one of the four known values.
func (s Status) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusResolved, StatusClosed:
		return true
	}
	return false
}

// Priority represents bug urgency.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Valid reports whether the priority is one of the three known values.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Bug represents a reported defect. ProjectName is a snapshot taken at
// creation time and is not kept in sync with later project renames.
// AssignedTo, when non-nil, always references a user with the developer role.
type Bug struct {
	ID          int       `json:"id" gorm:"primaryKey"`
	ProjectID   int       `json:"project_id" gorm:"index;not null"`
	ProjectName string    `json:"project_name" gorm:"not null"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description" gorm:"not null"`
	Status      Status    `json:"status" gorm:"type:varchar(20);not null;default:'Open'"`
	Priority    Priority  `json:"priority" gorm:"type:varchar(10);not null"`
	ReportedBy  string    `json:"reported_by" gorm:"index;not null"`
	AssignedTo  *string   `json:"assigned_to" gorm:"index;default:null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
