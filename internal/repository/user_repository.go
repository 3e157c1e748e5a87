package repository

import (
	"time"

	"github.com/hiromasa-dev/mathfeed/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUsername finds a user by username
func (r *GormUserRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a user by email
func (r *GormUserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUsername renames the user
func (r *GormUserRepository) UpdateUsername(id uint64, username string) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).
		Update("username", username).Error
}

// UpdatePasswordHash replaces the stored password hash
func (r *GormUserRepository) UpdatePasswordHash(id uint64, hash string) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).
		Update("password_hash", hash).Error
}

// UpdateLastSeen records request activity
func (r *GormUserRepository) UpdateLastSeen(id uint64, t time.Time) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).
		Update("last_seen", t).Error
}

// UpdateLastMessageReadTime marks the inbox as read up to t
func (r *GormUserRepository) UpdateLastMessageReadTime(id uint64, t time.Time) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).
		Update("last_message_read_time", t).Error
}
