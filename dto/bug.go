package dto

import "github.com/bugify-api/models"

// BugCreateRequest represents a new bug report.
type BugCreateRequest struct {
	ProjectID   int             `json:"project_id" binding:"required"`
	Title       string          `json:"title" binding:"required,min=5,max=200"`
	Description string          `json:"description" binding:"required,min=10"`
	Priority    models.Priority `json:"priority" binding:"required,oneof=High Medium Low"`
}

// BugUpdateRequest represents a partial update of status, assignee or
// priority. Nil fields are left untouched.
type BugUpdateRequest struct {
	Status     *models.Status   `json:"status" binding:"omitempty,oneof=Open 'In Progress' Resolved Closed"`
	AssignedTo *string          `json:"assigned_to"`
	Priority   *models.Priority `json:"priority" binding:"omitempty,oneof=High Medium Low"`
}

// BugAssignRequest assigns a bug to a developer; a null assigned_to unassigns.
type BugAssignRequest struct {
	AssignedTo *string `json:"assigned_to"`
}

// BugStatusRequest sets a bug's status.
type BugStatusRequest struct {
	Status models.Status `json:"status" binding:"required,oneof=Open 'In Progress' Resolved Closed"`
}

// BugFilter narrows bug queries. Zero fields are ignored. ReportedBy and
// AssignedTo are the scoping hooks: the policy layer fills them in before any
// listing or counting happens.
type BugFilter struct {
	ProjectID  int
	Status     string
	ReportedBy string
	AssignedTo string
}

// BugStats holds status counts over an already-scoped bug set.
type BugStats struct {
	Total      int64 `json:"total"`
	Open       int64 `json:"open"`
	InProgress int64 `json:"in_progress"`
	Resolved   int64 `json:"resolved"`
	Closed     int64 `json:"closed"`
}

// BugActivity is one entry of a user's recent-activity feed.
type BugActivity struct {
	BugID        int    `json:"bug_id"`
	Title        string `json:"title"`
	Status       string `json:"status"`
	ActivityType string `json:"activity_type"`
	UpdatedAt    string `json:"updated_at"`
}
