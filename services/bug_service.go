package services

import (
	"time"

	"github.com/bugify-api/dto"
	"github.com/bugify-api/models"
	"github.com/bugify-api/policy"
	"github.com/bugify-api/utils"
)

// BugService handles the bug lifecycle: creation, viewing, updates,
// assignment, and the developer's own-assignment views. The status machine is
// flat: any of the four values may be set directly by an authorized actor.
type BugService struct {
	bugs     BugStore
	projects ProjectStore
	users    UserStore
}

// NewBugService creates a new bug service instance
func NewBugService(bugs BugStore, projects ProjectStore, users UserStore) *BugService {
	return &BugService{bugs: bugs, projects: projects, users: users}
}

// Create reports a new bug. The project must exist; its name is snapshotted
// onto the bug and not kept in sync with later renames.
func (s *BugService) Create(actor models.User, req dto.BugCreateRequest) (models.Bug, error) {
	if !policy.Can(actor.Role, policy.ActionCreateBug) {
		return models.Bug{}, utils.NewForbiddenError("Not authorized to create bugs")
	}

	project, err := s.projects.FindByID(req.ProjectID)
	if err != nil {
		if isNotFound(err) {
			return models.Bug{}, utils.NewNotFoundError("Project not found")
		}
		return models.Bug{}, err
	}

	now := time.Now().UTC()
	bug := models.Bug{
		ProjectID:   project.ID,
		ProjectName: project.Name,
		Title:       req.Title,
		Description: req.Description,
		Status:      models.StatusOpen,
		Priority:    req.Priority,
		ReportedBy:  actor.ID,
		AssignedTo:  nil,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return s.bugs.Create(bug)
}

// Get retrieves a single bug. Plain users may only read their own reports.
func (s *BugService) Get(actor models.User, id int) (models.Bug, error) {
	bug, err := s.bugs.FindByID(id)
	if err != nil {
		if isNotFound(err) {
			return models.Bug{}, utils.NewNotFoundError("Bug not found")
		}
		return models.Bug{}, err
	}

	if !policy.CanViewBug(actor.Role, actor.ID, bug) {
		return models.Bug{}, utils.NewForbiddenError("Not authorized to view this bug")
	}
	return bug, nil
}

// Update applies a partial status/assignee/priority update. The whole change
// is one conditional statement, so a bug deleted mid-flight surfaces as 404.
func (s *BugService) Update(actor models.User, id int, req dto.BugUpdateRequest) (models.Bug, error) {
	if !policy.Can(actor.Role, policy.ActionUpdateBug) {
		return models.Bug{}, utils.NewForbiddenError("Users cannot update bugs")
	}

	fields := map[string]interface{}{
		"updated_at": time.Now().UTC(),
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.Priority != nil {
		fields["priority"] = *req.Priority
	}
	if req.AssignedTo != nil {
		if err := s.checkAssignee(req.AssignedTo); err != nil {
			return models.Bug{}, err
		}
		fields["assigned_to"] = nullableAssignee(req.AssignedTo)
	}

	bug, err := s.bugs.UpdateFields(id, fields)
	if err != nil {
		if isNotFound(err) {
			return models.Bug{}, utils.NewNotFoundError("Bug not found")
		}
		return models.Bug{}, err
	}
	return bug, nil
}

// Delete removes a bug, admin only.
func (s *BugService) Delete(actor models.User, id int) error {
	if !policy.Can(actor.Role, policy.ActionDeleteBug) {
		return utils.NewForbiddenError("Only admins can delete bugs")
	}

	if err := s.bugs.Delete(id); err != nil {
		if isNotFound(err) {
			return utils.NewNotFoundError("Bug not found")
		}
		return err
	}
	return nil
}

// ManageList returns bugs for the management screen, admin only.
func (s *BugService) ManageList(actor models.User, filter dto.BugFilter) ([]models.Bug, error) {
	if !policy.Can(actor.Role, policy.ActionManageBugs) {
		return nil, utils.NewForbiddenError("Only admins can access bug management")
	}
	return s.bugs.Find(filter)
}

// Assign assigns a bug to a developer or, with a null assignee, unassigns it.
// Admin only; the assignee must be an existing user with the developer role.
func (s *BugService) Assign(actor models.User, id int, req dto.BugAssignRequest) (models.Bug, error) {
	if !policy.Can(actor.Role, policy.ActionAssignBug) {
		return models.Bug{}, utils.NewForbiddenError("Only admins can assign bugs")
	}

	if err := s.checkAssignee(req.AssignedTo); err != nil {
		return models.Bug{}, err
	}

	fields := map[string]interface{}{
		"assigned_to": nullableAssignee(req.AssignedTo),
		"updated_at":  time.Now().UTC(),
	}
	bug, err := s.bugs.UpdateFields(id, fields)
	if err != nil {
		if isNotFound(err) {
			return models.Bug{}, utils.NewNotFoundError("Bug not found")
		}
		return models.Bug{}, err
	}
	return bug, nil
}

// SetStatus sets a bug's status, admin only.
func (s *BugService) SetStatus(actor models.User, id int, status models.Status) (models.Bug, error) {
	if !policy.Can(actor.Role, policy.ActionManageBugs) {
		return models.Bug{}, utils.NewForbiddenError("Only admins can update bug status")
	}

	fields := map[string]interface{}{
		"status":     status,
		"updated_at": time.Now().UTC(),
	}
	bug, err := s.bugs.UpdateFields(id, fields)
	if err != nil {
		if isNotFound(err) {
			return models.Bug{}, utils.NewNotFoundError("Bug not found")
		}
		return models.Bug{}, err
	}
	return bug, nil
}

// MyBugs lists bugs assigned to the calling developer.
func (s *BugService) MyBugs(actor models.User, filter dto.BugFilter) ([]models.Bug, error) {
	if !policy.Can(actor.Role, policy.ActionViewAssignedBugs) {
		return nil, utils.NewForbiddenError("Only developers can access their assigned bugs")
	}
	filter.AssignedTo = actor.ID
	return s.bugs.Find(filter)
}

// MyStats counts the calling developer's assigned bugs by status.
func (s *BugService) MyStats(actor models.User) (dto.BugStats, error) {
	if !policy.Can(actor.Role, policy.ActionViewAssignedBugs) {
		return dto.BugStats{}, utils.NewForbiddenError("Only developers can access their bug statistics")
	}
	return s.bugs.Stats(dto.BugFilter{AssignedTo: actor.ID})
}

// UpdateMyStatus sets the status of a bug assigned to the calling developer.
// A bug assigned to someone else matches nothing and reads as not-found: the
// caller cannot tell an unassigned bug from a nonexistent one.
func (s *BugService) UpdateMyStatus(actor models.User, id int, status models.Status) (models.Bug, error) {
	if !policy.Can(actor.Role, policy.ActionViewAssignedBugs) {
		return models.Bug{}, utils.NewForbiddenError("Only developers can update bug status")
	}

	fields := map[string]interface{}{
		"status":     status,
		"updated_at": time.Now().UTC(),
	}
	bug, err := s.bugs.UpdateFieldsForAssignee(id, actor.ID, fields)
	if err != nil {
		if isNotFound(err) {
			return models.Bug{}, utils.NewNotFoundError("Bug not found or not assigned to you")
		}
		return models.Bug{}, err
	}
	return bug, nil
}

// MyProjects lists the projects that have bugs assigned to the calling
// developer.
func (s *BugService) MyProjects(actor models.User) ([]dto.ProjectRef, error) {
	if !policy.Can(actor.Role, policy.ActionViewAssignedBugs) {
		return nil, utils.NewForbiddenError("Only developers can access this endpoint")
	}

	ids, err := s.bugs.ProjectIDsForAssignee(actor.ID)
	if err != nil {
		return nil, err
	}
	projects, err := s.projects.FindByIDs(ids)
	if err != nil {
		return nil, err
	}

	refs := make([]dto.ProjectRef, 0, len(projects))
	for _, project := range projects {
		refs = append(refs, dto.ProjectRef{ID: project.ID, Name: project.Name})
	}
	return refs, nil
}

// checkAssignee validates that a non-null, non-empty assignee resolves to an
// existing developer.
func (s *BugService) checkAssignee(assignee *string) error {
	if assignee == nil || *assignee == "" {
		return nil
	}
	_, err := s.users.FindByIDAndRole(*assignee, models.RoleDeveloper)
	if err != nil {
		if isNotFound(err) {
			return utils.NewNotFoundError("Developer not found")
		}
		return err
	}
	return nil
}

// nullableAssignee maps nil and "" to a SQL NULL so both unassign.
func nullableAssignee(assignee *string) interface{} {
	if assignee == nil || *assignee == "" {
		return nil
	}
	return *assignee
}
