package dto

// ProfileUpdateRequest updates name and/or email; both optional but at least
// one must be set.
type ProfileUpdateRequest struct {
	Name  string `json:"name" binding:"omitempty,min=2,max=100"`
	Email string `json:"email" binding:"omitempty,email"`
}

// PasswordChangeRequest changes the caller's password. The confirmation
// mismatch is rejected before anything reaches the store.
type PasswordChangeRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6,max=100"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// ProfileStats summarizes the caller's bug involvement.
type ProfileStats struct {
	BugsReported int64 `json:"bugs_reported"`
	BugsAssigned int64 `json:"bugs_assigned"`
}
