package repositories

import (
	"github.com/bugify-api/dto"
	"github.com/bugify-api/models"
	"gorm.io/gorm"
)

// BugRepository handles database operations for bugs. All mutations are
// single conditional statements checked through RowsAffected, so an update
// racing a delete surfaces as not-found instead of resurrecting the row.
type BugRepository struct {
	db        *gorm.DB
	sequences *SequenceRepository
}

// NewBugRepository creates a new bug repository instance
func NewBugRepository(db *gorm.DB) *BugRepository {
	return &BugRepository{db: db, sequences: NewSequenceRepository(db)}
}

// Create allocates the next bug id and inserts the record.
func (r *BugRepository) Create(bug models.Bug) (models.Bug, error) {
	id, err := r.sequences.Next("bugs")
	if err != nil {
		return models.Bug{}, err
	}
	bug.ID = id
	result := r.db.Create(&bug)
	return bug, result.Error
}

// FindByID retrieves a bug by its ID
func (r *BugRepository) FindByID(id int) (models.Bug, error) {
	var bug models.Bug
	result := r.db.Where("id = ?", id).First(&bug)
	return bug, result.Error
}

func applyFilter(db *gorm.DB, filter dto.BugFilter) *gorm.DB {
	if filter.ProjectID != 0 {
		db = db.Where("project_id = ?", filter.ProjectID)
	}
	if filter.Status != "" && filter.Status != "all" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.ReportedBy != "" {
		db = db.Where("reported_by = ?", filter.ReportedBy)
	}
	if filter.AssignedTo != "" {
		db = db.Where("assigned_to = ?", filter.AssignedTo)
	}
	return db
}

// Find retrieves all bugs matching the filter.
func (r *BugRepository) Find(filter dto.BugFilter) ([]models.Bug, error) {
	var bugs []models.Bug
	result := applyFilter(r.db, filter).Order("id").Find(&bugs)
	return bugs, result.Error
}

// Stats counts bugs by status over the filtered set.
func (r *BugRepository) Stats(filter dto.BugFilter) (dto.BugStats, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := applyFilter(r.db.Model(&models.Bug{}), filter).
		Select("status, count(*) as count").
		Group("status").
		Find(&rows).Error
	if err != nil {
		return dto.BugStats{}, err
	}

	var stats dto.BugStats
	for _, row := range rows {
		stats.Total += row.Count
		switch models.Status(row.Status) {
		case models.StatusOpen:
			stats.Open = row.Count
		case models.StatusInProgress:
			stats.InProgress = row.Count
		case models.StatusResolved:
			stats.Resolved = row.Count
		case models.StatusClosed:
			stats.Closed = row.Count
		}
	}
	return stats, nil
}

// UpdateFields applies the given fields to a bug and returns the updated
// record. Returns gorm.ErrRecordNotFound when no row matched.
func (r *BugRepository) UpdateFields(id int, fields map[string]interface{}) (models.Bug, error) {
	result := r.db.Model(&models.Bug{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return models.Bug{}, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Bug{}, gorm.ErrRecordNotFound
	}
	return r.FindByID(id)
}

// UpdateFieldsForAssignee is UpdateFields constrained to bugs assigned to the
// given user. A bug that exists but is assigned elsewhere matches zero rows,
// which callers surface as not-found.
func (r *BugRepository) UpdateFieldsForAssignee(id int, assignee string, fields map[string]interface{}) (models.Bug, error) {
	result := r.db.Model(&models.Bug{}).
		Where("id = ? AND assigned_to = ?", id, assignee).
		Updates(fields)
	if result.Error != nil {
		return models.Bug{}, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Bug{}, gorm.ErrRecordNotFound
	}
	return r.FindByID(id)
}

// Delete removes a bug. Returns gorm.ErrRecordNotFound when no row matched.
func (r *BugRepository) Delete(id int) error {
	result := r.db.Where("id = ?", id).Delete(&models.Bug{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountByProject counts bugs referencing a project. This backs the
// referential-integrity guard on project deletion.
func (r *BugRepository) CountByProject(projectID int) (int64, error) {
	var count int64
	result := r.db.Model(&models.Bug{}).Where("project_id = ?", projectID).Count(&count)
	return count, result.Error
}

// CountReportedBy counts bugs reported by a user
func (r *BugRepository) CountReportedBy(userID string) (int64, error) {
	var count int64
	result := r.db.Model(&models.Bug{}).Where("reported_by = ?", userID).Count(&count)
	return count, result.Error
}

// CountAssignedTo counts bugs assigned to a user
func (r *BugRepository) CountAssignedTo(userID string) (int64, error) {
	var count int64
	result := r.db.Model(&models.Bug{}).Where("assigned_to = ?", userID).Count(&count)
	return count, result.Error
}

// ProjectIDsForAssignee returns the distinct projects having bugs assigned to
// the given user.
func (r *BugRepository) ProjectIDsForAssignee(assignee string) ([]int, error) {
	var ids []int
	err := r.db.Model(&models.Bug{}).
		Distinct("project_id").
		Where("assigned_to = ?", assignee).
		Order("project_id").
		Pluck("project_id", &ids).Error
	return ids, err
}

// RecentForUser returns the most recently updated bugs the user reported or
// is assigned to.
func (r *BugRepository) RecentForUser(userID string, limit int) ([]models.Bug, error) {
	var bugs []models.Bug
	result := r.db.
		Where("reported_by = ? OR assigned_to = ?", userID, userID).
		Order("updated_at DESC").
		Limit(limit).
		Find(&bugs)
	return bugs, result.Error
}
