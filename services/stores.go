package services

import (
	"errors"

	"github.com/bugify-api/dto"
	"github.com/bugify-api/models"
	"gorm.io/gorm"
)

// The store interfaces are what the services consume; the repositories
// package provides the GORM implementations and tests substitute in-memory
// fakes. Not-found is signalled with gorm.ErrRecordNotFound either way.

// UserStore persists user accounts.
type UserStore interface {
	Create(user models.User) error
	FindByEmail(email string) (models.User, error)
	FindByEmailAndRole(email string, role models.Role) (models.User, error)
	FindByID(id string) (models.User, error)
	FindByIDAndRole(id string, role models.Role) (models.User, error)
	FindAll() ([]models.User, error)
	FindByRole(role models.Role) ([]models.User, error)
	EmailTakenByOther(email, userID string) (bool, error)
	UpdateProfile(id string, fields map[string]interface{}) (models.User, error)
	UpdatePassword(id, digest string) error
}

// BugStore persists bug reports.
type BugStore interface {
	Create(bug models.Bug) (models.Bug, error)
	FindByID(id int) (models.Bug, error)
	Find(filter dto.BugFilter) ([]models.Bug, error)
	Stats(filter dto.BugFilter) (dto.BugStats, error)
	UpdateFields(id int, fields map[string]interface{}) (models.Bug, error)
	UpdateFieldsForAssignee(id int, assignee string, fields map[string]interface{}) (models.Bug, error)
	Delete(id int) error
	CountByProject(projectID int) (int64, error)
	CountReportedBy(userID string) (int64, error)
	CountAssignedTo(userID string) (int64, error)
	ProjectIDsForAssignee(assignee string) ([]int, error)
	RecentForUser(userID string, limit int) ([]models.Bug, error)
}

// ProjectStore persists projects.
type ProjectStore interface {
	Create(project models.Project) (models.Project, error)
	FindAll() ([]models.Project, error)
	FindByID(id int) (models.Project, error)
	FindByName(name string) (models.Project, error)
	FindByIDs(ids []int) ([]models.Project, error)
	Delete(id int) error
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
