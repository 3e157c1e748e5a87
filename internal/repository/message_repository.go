package repository

import (
	"time"

	"github.com/hiromasa-dev/mathfeed/internal/database"
	"github.com/hiromasa-dev/mathfeed/internal/models"
	"github.com/hiromasa-dev/mathfeed/internal/utils"
	"gorm.io/gorm"
)

// GormMessageRepository is a GORM implementation of MessageRepository
type GormMessageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &GormMessageRepository{db: db}
}

// Create persists a new message
func (r *GormMessageRepository) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

// ListReceived returns a user's received messages, newest first
func (r *GormMessageRepository) ListReceived(userID uint64, params utils.PaginationParams) ([]models.Message, int64, error) {
	query := r.db.Model(&models.Message{}).Where("recipient_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var messages []models.Message
	err := query.
		Order("created_at DESC, id DESC").
		Scopes(database.Paginate(params)).
		Preload("Sender").
		Find(&messages).Error
	if err != nil {
		return nil, 0, err
	}

	return messages, total, nil
}

// CountReceivedAfter counts received messages newer than the cutoff
func (r *GormMessageRepository) CountReceivedAfter(userID uint64, cutoff time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Message{}).
		Where("recipient_id = ? AND created_at > ?", userID, cutoff).
		Count(&count).Error
	return count, err
}
