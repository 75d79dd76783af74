package models

// Project represents a product that bugs are reported against.
// Projects have no update endpoint: they are created, listed, and deleted.
type Project struct {
	ID          int    `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"uniqueIndex;not null"`
	Description string `json:"description"`
	CreatedBy   string `json:"created_by" gorm:"not null"`
	CreatedAt   string `json:"created_at" gorm:"not null"`
}
