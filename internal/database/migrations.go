package database

import (
	"fmt"
	"log"

	"github.com/yukikurage/blog/internal/models"
	"gorm.io/gorm"
)

type index struct {
	model   interface{}
	name    string
	columns string
}

// indexes lists the named indexes the listing queries rely on. Column-level
// indexes declared on the models are created by AutoMigrate already.
var indexes = []index{
	// Newest-first listing
	{&models.Post{}, "idx_posts_published_at_id", "published_at, id"},
	{&models.Post{}, "idx_posts_author_published_at", "author_id, published_at"},

	// Comments under a post, oldest first
	{&models.Comment{}, "idx_comments_post_published_at", "post_id, published_at"},
}

// AddIndexes adds the composite indexes if they do not exist yet
func AddIndexes(db *gorm.DB) error {
	migrator := db.Migrator()

	for _, idx := range indexes {
		if migrator.HasIndex(idx.model, idx.name) {
			continue
		}

		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(idx.model); err != nil {
			return fmt.Errorf("failed to parse model for index %s: %w", idx.name, err)
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, stmt.Schema.Table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		log.Printf("Created index %s on %s(%s)", idx.name, stmt.Schema.Table, idx.columns)
	}

	return nil
}
