package repository

import (
	"github.com/hiromasa-dev/mathfeed/internal/models"
	"gorm.io/gorm"
)

// GormNotificationRepository is a GORM implementation of NotificationRepository
type GormNotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new NotificationRepository
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &GormNotificationRepository{db: db}
}

// Upsert replaces any notification with the same (user, name) pair. The
// delete and insert run in one transaction so a failed insert never leaves
// the user without their previous notification.
func (r *GormNotificationRepository) Upsert(userID uint64, name, payloadJSON string, timestamp float64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.
			Where("user_id = ? AND name = ?", userID, name).
			Delete(&models.Notification{}).Error
		if err != nil {
			return err
		}

		notification := &models.Notification{
			Name:        name,
			UserID:      userID,
			Timestamp:   timestamp,
			PayloadJSON: payloadJSON,
		}
		return tx.Create(notification).Error
	})
}

// ListSince returns notifications strictly newer than since, ascending by
// timestamp.
func (r *GormNotificationRepository) ListSince(userID uint64, since float64) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.
		Where("user_id = ? AND timestamp > ?", userID, since).
		Order("timestamp ASC").
		Find(&notifications).Error
	return notifications, err
}
