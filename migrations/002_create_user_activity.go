package migrations

import (
	"gorm.io/gorm"

	"github.com/consensuslabs/pavilion-network/commentinfo/internal/commentinfo"
)

// UserActivityMigration creates the user_activity table and its unique index
type UserActivityMigration struct {
	db *gorm.DB
}

func NewUserActivityMigration(db *gorm.DB) *UserActivityMigration {
	return &UserActivityMigration{db: db}
}

func (m *UserActivityMigration) Up() error {
	if err := m.db.AutoMigrate(&commentinfo.UserActivity{}); err != nil {
		return err
	}

	// AutoMigrate skips index creation on an existing table with a different definition
	if !m.db.Migrator().HasIndex(&commentinfo.UserActivity{}, "idx_user_activity_unique") {
		return m.db.Migrator().CreateIndex(&commentinfo.UserActivity{}, "idx_user_activity_unique")
	}
	return nil
}

func (m *UserActivityMigration) Down() error {
	return m.db.Migrator().DropTable(&commentinfo.UserActivity{})
}
