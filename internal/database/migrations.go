package database

import (
	"fmt"

	"gorm.io/gorm"
)

// AddIndexes adds the composite indexes the feed and inbox queries depend on.
// The pg_indexes lookup is PostgreSQL-specific; MySQL deployments rely on the
// per-column indexes AutoMigrate creates from the model tags.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		// Feed queries sort by timestamp with an id tie-break
		{"equations", "idx_equations_user_created", "user_id, created_at"},
		{"equations", "idx_equations_created_id", "created_at, id"},

		// Inbox listing and unread counting
		{"messages", "idx_messages_recipient_created", "recipient_id, created_at"},

		// Upsert-by-name notification lookups
		{"notifications", "idx_notifications_user_name", "user_id, name"},

		// Reverse edge lookups (follower counts)
		{"follows", "idx_follows_followed_id", "followed_id"},
	}

	for _, idx := range indexes {
		var count int64
		err := db.Raw(`
			SELECT COUNT(*)
			FROM pg_indexes
			WHERE tablename = ? AND indexname = ?
		`, idx.table, idx.name).Count(&count).Error

		if err != nil {
			return fmt.Errorf("failed to check index %s: %w", idx.name, err)
		}

		if count > 0 {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		fmt.Printf("Created index %s on %s(%s)\n", idx.name, idx.table, idx.columns)
	}

	return nil
}
