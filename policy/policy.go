// Package policy is the single place role/action decisions are made. Handlers
// and middleware never compare role strings themselves; they ask Can or one of
// the resource-level helpers, so a policy change touches exactly one table.
package policy

import (
	"github.com/bugify-api/dto"
	"github.com/bugify-api/models"
)

// Action enumerates everything a caller can attempt against bugs and projects.
type Action int

const (
	// ActionCreateBug covers reporting a new bug.
	ActionCreateBug Action = iota
	// ActionViewAnyBug covers reading bugs regardless of reporter. Users
	// lacking it may still view their own reports, see CanViewBug.
	ActionViewAnyBug
	// ActionUpdateBug covers the general status/assignee/priority update.
	ActionUpdateBug
	// ActionDeleteBug covers removing a bug.
	ActionDeleteBug
	// ActionAssignBug covers assigning or unassigning a developer.
	ActionAssignBug
	// ActionManageBugs covers the management listing and admin status updates.
	ActionManageBugs
	// ActionManageProjects covers project creation and deletion.
	ActionManageProjects
	// ActionViewAssignedBugs covers the developer's own-assignment views.
	ActionViewAssignedBugs
)

var grants = map[models.Role]map[Action]bool{
	models.RoleAdmin: {
		ActionCreateBug:      true,
		ActionViewAnyBug:     true,
		ActionUpdateBug:      true,
		ActionDeleteBug:      true,
		ActionAssignBug:      true,
		ActionManageBugs:     true,
		ActionManageProjects: true,
	},
	models.RoleDeveloper: {
		ActionCreateBug:        true,
		ActionViewAnyBug:       true,
		ActionUpdateBug:        true,
		ActionViewAssignedBugs: true,
	},
	models.RoleUser: {
		ActionCreateBug: true,
	},
}

// Can reports whether the role is allowed to perform the action. Unknown
// roles and unknown actions are denied.
func Can(role models.Role, action Action) bool {
	return grants[role][action]
}

// CanViewBug reports whether the actor may read the given bug. Roles with
// ActionViewAnyBug see everything; plain users only see bugs they reported.
func CanViewBug(role models.Role, actorID string, bug models.Bug) bool {
	if Can(role, ActionViewAnyBug) {
		return true
	}
	return bug.ReportedBy == actorID
}

// ScopeBugFilter narrows a bug query to what the actor is allowed to see.
// Plain users are pinned to their own reports. This runs before any listing
// or counting so stats are computed over the scoped set, not the full set.
func ScopeBugFilter(role models.Role, actorID string, filter *dto.BugFilter) {
	if !Can(role, ActionViewAnyBug) {
		filter.ReportedBy = actorID
	}
}
