package services

import (
	"strings"
	"time"

	"github.com/bugify-api/dto"
	"github.com/bugify-api/models"
	"github.com/bugify-api/utils"
	"golang.org/x/crypto/bcrypt"
)

// ProfileService handles self-service profile operations.
type ProfileService struct {
	users UserStore
	bugs  BugStore
}

// NewProfileService creates a new profile service instance
func NewProfileService(users UserStore, bugs BugStore) *ProfileService {
	return &ProfileService{users: users, bugs: bugs}
}

// Get retrieves the caller's profile.
func (s *ProfileService) Get(userID string) (models.User, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		if isNotFound(err) {
			return models.User{}, utils.NewNotFoundError("User not found")
		}
		return models.User{}, err
	}
	return user, nil
}

// Update changes the caller's name and/or email. A new email must not belong
// to another user.
func (s *ProfileService) Update(userID string, req dto.ProfileUpdateRequest) (models.User, error) {
	fields := map[string]interface{}{}

	if req.Name != "" {
		fields["name"] = req.Name
	}
	if req.Email != "" {
		taken, err := s.users.EmailTakenByOther(req.Email, userID)
		if err != nil {
			return models.User{}, err
		}
		if taken {
			return models.User{}, utils.NewConflictError("Email is already taken by another user")
		}
		fields["email"] = strings.ToLower(req.Email)
	}

	if len(fields) == 0 {
		return models.User{}, utils.NewConflictError("No fields to update")
	}

	user, err := s.users.UpdateProfile(userID, fields)
	if err != nil {
		if isNotFound(err) {
			return models.User{}, utils.NewNotFoundError("User not found")
		}
		return models.User{}, err
	}
	return user, nil
}

// ChangePassword replaces the caller's password. The confirmation mismatch is
// rejected before anything reaches the store; a no-op change (new password
// equal to the current one) is rejected rather than silently accepted.
func (s *ProfileService) ChangePassword(userID string, req dto.PasswordChangeRequest) error {
	if req.NewPassword != req.ConfirmPassword {
		return utils.NewValidationError("Passwords do not match")
	}

	user, err := s.users.FindByID(userID)
	if err != nil {
		if isNotFound(err) {
			return utils.NewNotFoundError("User not found")
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		return utils.NewConflictError("Current password is incorrect")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.NewPassword)); err == nil {
		return utils.NewConflictError("New password must be different from current password")
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(userID, string(digest))
}

// Stats counts the caller's reported and assigned bugs.
func (s *ProfileService) Stats(userID string) (dto.ProfileStats, error) {
	reported, err := s.bugs.CountReportedBy(userID)
	if err != nil {
		return dto.ProfileStats{}, err
	}
	assigned, err := s.bugs.CountAssignedTo(userID)
	if err != nil {
		return dto.ProfileStats{}, err
	}
	return dto.ProfileStats{BugsReported: reported, BugsAssigned: assigned}, nil
}

// Activity returns the caller's most recently updated bugs, tagged with
// whether they reported the bug or are assigned to it.
func (s *ProfileService) Activity(userID string, limit int) ([]dto.BugActivity, error) {
	bugs, err := s.bugs.RecentForUser(userID, limit)
	if err != nil {
		return nil, err
	}

	activities := make([]dto.BugActivity, 0, len(bugs))
	for _, bug := range bugs {
		activityType := "assigned"
		if bug.ReportedBy == userID {
			activityType = "reported"
		}
		activities = append(activities, dto.BugActivity{
			BugID:        bug.ID,
			Title:        bug.Title,
			Status:       string(bug.Status),
			ActivityType: activityType,
			UpdatedAt:    bug.UpdatedAt.UTC().Format(time.RFC3339),
		})
	}
	return activities, nil
}
