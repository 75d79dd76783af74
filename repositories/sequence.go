package repositories

import "gorm.io/gorm"

// SequenceRepository hands out monotonic numeric ids. The upsert-and-return
// runs as a single statement, so two concurrent creations can never observe
// the same value the way a max(existing)+1 read-then-insert can.
type SequenceRepository struct {
	db *gorm.DB
}

// NewSequenceRepository creates a new sequence repository instance
func NewSequenceRepository(db *gorm.DB) *SequenceRepository {
	return &SequenceRepository{db: db}
}

// Next returns the next value of the named sequence, starting at 1.
func (r *SequenceRepository) Next(name string) (int, error) {
	var value int64
	err := r.db.Raw(
		`INSERT INTO sequences (name, value) VALUES (?, 1)
		 ON CONFLICT (name) DO UPDATE SET value = sequences.value + 1
		 RETURNING value`,
		name,
	).Scan(&value).Error
	return int(value), err
}
