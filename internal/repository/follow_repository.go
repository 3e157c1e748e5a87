package repository

import (
	"github.com/hiromasa-dev/mathfeed/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormFollowRepository is a GORM implementation of FollowRepository
type GormFollowRepository struct {
	db *gorm.DB
}

// NewFollowRepository creates a new FollowRepository
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &GormFollowRepository{db: db}
}

// Create adds a follow edge. Following twice is a no-op: the composite
// primary key conflicts and the insert is dropped.
func (r *GormFollowRepository) Create(followerID, followedID uint64) error {
	edge := &models.Follow{FollowerID: followerID, FollowedID: followedID}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(edge).Error
}

// Delete removes a follow edge; removing a missing edge is a no-op
func (r *GormFollowRepository) Delete(followerID, followedID uint64) error {
	return r.db.
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&models.Follow{}).Error
}

// Exists reports whether follower follows followed
func (r *GormFollowRepository) Exists(followerID, followedID uint64) (bool, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountFollowers counts users following the given user
func (r *GormFollowRepository) CountFollowers(userID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).
		Where("followed_id = ?", userID).
		Count(&count).Error
	return count, err
}

// CountFollowed counts users the given user follows
func (r *GormFollowRepository) CountFollowed(userID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).
		Where("follower_id = ?", userID).
		Count(&count).Error
	return count, err
}
