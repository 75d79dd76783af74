package services

import (
	"fmt"
	"time"

	"github.com/bugify-api/dto"
	"github.com/bugify-api/models"
	"github.com/bugify-api/policy"
	"github.com/bugify-api/utils"
)

// ProjectService handles project creation and deletion. Projects have no
// update operation; the one piece of real protective logic here is the
// dependent-bug guard on deletion.
type ProjectService struct {
	projects ProjectStore
	bugs     BugStore
}

// NewProjectService creates a new project service instance
func NewProjectService(projects ProjectStore, bugs BugStore) *ProjectService {
	return &ProjectService{projects: projects, bugs: bugs}
}

// Create registers a new project, admin only. Names are unique with exact
// matching.
func (s *ProjectService) Create(actor models.User, req dto.ProjectCreateRequest) (models.Project, error) {
	if !policy.Can(actor.Role, policy.ActionManageProjects) {
		return models.Project{}, utils.NewForbiddenError("Only admins can create projects")
	}

	_, err := s.projects.FindByName(req.Name)
	if err == nil {
		return models.Project{}, utils.NewConflictError("Project with this name already exists")
	}
	if !isNotFound(err) {
		return models.Project{}, err
	}

	project := models.Project{
		Name:        req.Name,
		Description: req.Description,
		CreatedBy:   actor.ID,
		CreatedAt:   time.Now().UTC().Format("2006-01-02"),
	}
	created, err := s.projects.Create(project)
	if err != nil {
		// The unique index catches a concurrent creation of the same name.
		return models.Project{}, utils.NewConflictError("Project with this name already exists")
	}
	return created, nil
}

// Get retrieves a project by id.
func (s *ProjectService) Get(id int) (models.Project, error) {
	project, err := s.projects.FindByID(id)
	if err != nil {
		if isNotFound(err) {
			return models.Project{}, utils.NewNotFoundError("Project not found")
		}
		return models.Project{}, err
	}
	return project, nil
}

// Delete removes a project, admin only. A project with live bugs is refused
// with the bug count so the caller knows what is blocking it.
func (s *ProjectService) Delete(actor models.User, id int) (models.Project, error) {
	if !policy.Can(actor.Role, policy.ActionManageProjects) {
		return models.Project{}, utils.NewForbiddenError("Only admins can delete projects")
	}

	project, err := s.Get(id)
	if err != nil {
		return models.Project{}, err
	}

	count, err := s.bugs.CountByProject(id)
	if err != nil {
		return models.Project{}, err
	}
	if count > 0 {
		return models.Project{}, utils.NewConflictError(fmt.Sprintf(
			"Cannot delete project. It has %d bug(s). Please delete or reassign the bugs first.", count))
	}

	if err := s.projects.Delete(id); err != nil {
		if isNotFound(err) {
			return models.Project{}, utils.NewNotFoundError("Project not found")
		}
		return models.Project{}, err
	}
	return project, nil
}
