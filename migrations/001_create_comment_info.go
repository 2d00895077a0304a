package migrations

import (
	"gorm.io/gorm"

	"github.com/consensuslabs/pavilion-network/commentinfo/internal/commentinfo"
)

// CommentInfoMigration creates the comment_info table
type CommentInfoMigration struct {
	db *gorm.DB
}

func NewCommentInfoMigration(db *gorm.DB) *CommentInfoMigration {
	return &CommentInfoMigration{db: db}
}

func (m *CommentInfoMigration) Up() error {
	return m.db.AutoMigrate(&commentinfo.CommentInfo{})
}

func (m *CommentInfoMigration) Down() error {
	return m.db.Migrator().DropTable(&commentinfo.CommentInfo{})
}
