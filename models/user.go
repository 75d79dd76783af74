package models

// Role represents user role types
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleDeveloper Role = "developer"
	RoleUser      Role = "user"
)

// Valid reports whether the role is one of the three known values.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleDeveloper, RoleUser:
		return true
	}
	return false
}

// User represents a registered account. Emails are stored lower-cased so the
// unique index doubles as the case-insensitive duplicate check.
type User struct {
	ID         string `json:"id" gorm:"primaryKey"`
	Name       string `json:"name" gorm:"not null"`
	Email      string `json:"email" gorm:"uniqueIndex;not null"`
	Password   string `json:"-" gorm:"not null"` // bcrypt digest, never exposed in JSON
	Role       Role   `json:"role" gorm:"type:varchar(10);not null;default:'user'"`
	JoinedDate string `json:"joined_date" gorm:"not null"`
}
