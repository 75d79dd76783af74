package repositories

import (
	"strings"

	"github.com/bugify-api/models"
	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository instance
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user into the database
func (r *UserRepository) Create(user models.User) error {
	return r.db.Create(&user).Error
}

// FindByEmail retrieves a user by email, case-insensitively.
func (r *UserRepository) FindByEmail(email string) (models.User, error) {
	var user models.User
	result := r.db.Where("email = ?", strings.ToLower(email)).First(&user)
	return user, result.Error
}

// FindByEmailAndRole retrieves a user by the (email, role) pair. The role is
// part of the lookup key: a wrong-role login is indistinguishable from a
// wrong-password one.
func (r *UserRepository) FindByEmailAndRole(email string, role models.Role) (models.User, error) {
	var user models.User
	result := r.db.Where("email = ? AND role = ?", strings.ToLower(email), role).First(&user)
	return user, result.Error
}

// FindByID retrieves a user by its ID
func (r *UserRepository) FindByID(id string) (models.User, error) {
	var user models.User
	result := r.db.Where("id = ?", id).First(&user)
	return user, result.Error
}

// FindByIDAndRole retrieves a user by ID constrained to a role. Used to
// validate bug assignees.
func (r *UserRepository) FindByIDAndRole(id string, role models.Role) (models.User, error) {
	var user models.User
	result := r.db.Where("id = ? AND role = ?", id, role).First(&user)
	return user, result.Error
}

// FindAll retrieves all users
func (r *UserRepository) FindAll() ([]models.User, error) {
	var users []models.User
	result := r.db.Order("id").Find(&users)
	return users, result.Error
}

// FindByRole retrieves all users with the given role
func (r *UserRepository) FindByRole(role models.Role) ([]models.User, error) {
	var users []models.User
	result := r.db.Where("role = ?", role).Order("id").Find(&users)
	return users, result.Error
}

// EmailTakenByOther reports whether another user already owns the email.
func (r *UserRepository) EmailTakenByOther(email, userID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).
		Where("email = ? AND id <> ?", strings.ToLower(email), userID).
		Count(&count).Error
	return count > 0, err
}

// UpdateProfile applies the given fields to a user and returns the updated
// record. Returns gorm.ErrRecordNotFound when the user does not exist.
func (r *UserRepository) UpdateProfile(id string, fields map[string]interface{}) (models.User, error) {
	result := r.db.Model(&models.User{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return models.User{}, result.Error
	}
	if result.RowsAffected == 0 {
		return models.User{}, gorm.ErrRecordNotFound
	}
	return r.FindByID(id)
}

// UpdatePassword replaces a user's password digest.
func (r *UserRepository) UpdatePassword(id, digest string) error {
	result := r.db.Model(&models.User{}).Where("id = ?", id).Update("password", digest)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
