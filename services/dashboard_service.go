package services

import (
	"github.com/bugify-api/dto"
	"github.com/bugify-api/models"
	"github.com/bugify-api/policy"
	"github.com/bugify-api/utils"
)

// DashboardService backs the shared listing endpoints. Bug listings and stats
// are scoped through the policy before any counting happens, so a plain user
// only ever aggregates over their own reports.
type DashboardService struct {
	users    UserStore
	projects ProjectStore
	bugs     BugStore
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(users UserStore, projects ProjectStore, bugs BugStore) *DashboardService {
	return &DashboardService{users: users, projects: projects, bugs: bugs}
}

// Users lists all users, used to display reporter and assignee names.
func (s *DashboardService) Users() ([]models.User, error) {
	return s.users.FindAll()
}

// Projects lists all projects.
func (s *DashboardService) Projects() ([]models.Project, error) {
	return s.projects.FindAll()
}

// Developers lists all developer accounts, admin only.
func (s *DashboardService) Developers(actor models.User) ([]dto.DeveloperRef, error) {
	if !policy.Can(actor.Role, policy.ActionManageBugs) {
		return nil, utils.NewForbiddenError("Only admins can view developers list")
	}

	developers, err := s.users.FindByRole(models.RoleDeveloper)
	if err != nil {
		return nil, err
	}

	refs := make([]dto.DeveloperRef, 0, len(developers))
	for _, dev := range developers {
		refs = append(refs, dto.DeveloperRef{ID: dev.ID, Name: dev.Name, Email: dev.Email})
	}
	return refs, nil
}

// Bugs lists bugs matching the filter, scoped to what the actor may see.
func (s *DashboardService) Bugs(actor models.User, filter dto.BugFilter) ([]models.Bug, error) {
	policy.ScopeBugFilter(actor.Role, actor.ID, &filter)
	return s.bugs.Find(filter)
}

// Stats counts bugs by status over the actor's scoped set.
func (s *DashboardService) Stats(actor models.User) (dto.BugStats, error) {
	filter := dto.BugFilter{}
	policy.ScopeBugFilter(actor.Role, actor.ID, &filter)
	return s.bugs.Stats(filter)
}
