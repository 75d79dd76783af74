package repositories

import (
	"github.com/bugify-api/models"
	"gorm.io/gorm"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db        *gorm.DB
	sequences *SequenceRepository
}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db, sequences: NewSequenceRepository(db)}
}

// Create allocates the next project id and inserts the record.
func (r *ProjectRepository) Create(project models.Project) (models.Project, error) {
	id, err := r.sequences.Next("projects")
	if err != nil {
		return models.Project{}, err
	}
	project.ID = id
	result := r.db.Create(&project)
	return project, result.Error
}

// FindAll retrieves all projects
func (r *ProjectRepository) FindAll() ([]models.Project, error) {
	var projects []models.Project
	result := r.db.Order("id").Find(&projects)
	return projects, result.Error
}

// FindByID retrieves a project by its ID
func (r *ProjectRepository) FindByID(id int) (models.Project, error) {
	var project models.Project
	result := r.db.Where("id = ?", id).First(&project)
	return project, result.Error
}

// FindByName retrieves a project by exact name match.
func (r *ProjectRepository) FindByName(name string) (models.Project, error) {
	var project models.Project
	result := r.db.Where("name = ?", name).First(&project)
	return project, result.Error
}

// FindByIDs retrieves the projects with the given ids.
func (r *ProjectRepository) FindByIDs(ids []int) ([]models.Project, error) {
	var projects []models.Project
	if len(ids) == 0 {
		return projects, nil
	}
	result := r.db.Where("id IN ?", ids).Order("id").Find(&projects)
	return projects, result.Error
}

// Delete removes a project. Returns gorm.ErrRecordNotFound when no row
// matched.
func (r *ProjectRepository) Delete(id int) error {
	result := r.db.Where("id = ?", id).Delete(&models.Project{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
