package models

// Sequence backs the numeric id allocators for projects and bugs. Values are
// bumped with a single upsert statement so concurrent creations can never
// observe the same id, unlike a max(existing)+1 read-then-insert.
type Sequence struct {
	Name  string `gorm:"primaryKey"`
	Value int64  `gorm:"not null"`
}
