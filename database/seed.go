package database

import (
	"fmt"
	"log"
	"time"

	"github.com/bugify-api/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func mustHash(password string) string {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash seed password: %v", err))
	}
	return string(digest)
}

func strPtr(s string) *string { return &s }

// SeedDefaultData creates the default accounts, projects and bugs on first
// boot. It is a no-op when any users already exist.
func SeedDefaultData(db *gorm.DB) error {
	var existing int64
	if err := db.Model(&models.User{}).Count(&existing).Error; err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if existing > 0 {
		log.Printf("✓ Found %d existing users, skipping initialization", existing)
		return nil
	}

	log.Println("Creating default users...")
	users := []models.User{
		{ID: "admin1", Name: "Sarah Admin", Email: "admin@bugify.com", Password: mustHash("admin123"), Role: models.RoleAdmin, JoinedDate: "2025-09-01"},
		{ID: "dev1", Name: "John Developer", Email: "dev1@bugify.com", Password: mustHash("dev123"), Role: models.RoleDeveloper, JoinedDate: "2025-09-10"},
		{ID: "dev2", Name: "Emma Developer", Email: "dev2@bugify.com", Password: mustHash("dev123"), Role: models.RoleDeveloper, JoinedDate: "2025-09-15"},
		{ID: "user1", Name: "Mike User", Email: "user@bugify.com", Password: mustHash("user123"), Role: models.RoleUser, JoinedDate: "2025-09-20"},
	}
	if err := db.Create(&users).Error; err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	projects := []models.Project{
		{ID: 1, Name: "Bugify Dashboard", CreatedBy: "admin1", CreatedAt: "2025-09-01"},
		{ID: 2, Name: "Bugify API", CreatedBy: "admin1", CreatedAt: "2025-09-05"},
		{ID: 3, Name: "Bugify Mobile App", CreatedBy: "admin1", CreatedAt: "2025-09-10"},
	}
	if err := db.Create(&projects).Error; err != nil {
		return fmt.Errorf("failed to seed projects: %w", err)
	}

	bugs := []models.Bug{
		{
			ID:          1,
			ProjectID:   1,
			ProjectName: "Bugify Dashboard",
			Title:       "Login button not working",
			Description: "Login button on the dashboard doesn't trigger login action.",
			Status:      models.StatusOpen,
			Priority:    models.PriorityHigh,
			ReportedBy:  "user1",
			AssignedTo:  strPtr("dev1"),
			CreatedAt:   time.Date(2025, 10, 7, 10, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2025, 10, 7, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:          2,
			ProjectID:   1,
			ProjectName: "Bugify Dashboard",
			Title:       "Dark mode not saving preference",
			Description: "After refresh, the selected dark mode resets to light mode.",
			Status:      models.StatusInProgress,
			Priority:    models.PriorityMedium,
			ReportedBy:  "admin1",
			AssignedTo:  strPtr("dev1"),
			CreatedAt:   time.Date(2025, 10, 6, 12, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2025, 10, 7, 9, 30, 0, 0, time.UTC),
		},
	}
	if err := db.Create(&bugs).Error; err != nil {
		return fmt.Errorf("failed to seed bugs: %w", err)
	}

	// Prime the id sequences past the seeded rows so the allocator never
	// hands out an id that is already taken.
	sequences := []models.Sequence{
		{Name: "projects", Value: int64(len(projects))},
		{Name: "bugs", Value: int64(len(bugs))},
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&sequences).Error; err != nil {
		return fmt.Errorf("failed to seed sequences: %w", err)
	}

	log.Printf("✓ Created %d users, %d projects, %d bugs", len(users), len(projects), len(bugs))
	return nil
}
