package dto

import (
	"time"

	"github.com/hiromasa-dev/mathfeed/internal/constants"
	"github.com/hiromasa-dev/mathfeed/internal/models"
	"github.com/hiromasa-dev/mathfeed/internal/services"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID        uint64 `json:"id"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`
}

// ProfileDTO represents a full profile page
type ProfileDTO struct {
	UserDTO
	LastSeen      time.Time `json:"last_seen"`
	EquationCount int64     `json:"equation_count"`
	FollowerCount int64     `json:"follower_count"`
	FollowedCount int64     `json:"followed_count"`
	IsFollowing   bool      `json:"is_following"`
}

// PopupDTO is the compact profile card shown on username hover
type PopupDTO struct {
	UserDTO
	LastSeen      time.Time `json:"last_seen"`
	FollowerCount int64     `json:"follower_count"`
	IsFollowing   bool      `json:"is_following"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Username:  user.Username,
		AvatarURL: user.AvatarURL(constants.AvatarSizeSmall),
	}
}

// ToProfileDTO converts a user plus profile counters to ProfileDTO
func ToProfileDTO(user models.User, stats *services.ProfileStats, isFollowing bool) ProfileDTO {
	return ProfileDTO{
		UserDTO: UserDTO{
			ID:        user.ID,
			Username:  user.Username,
			AvatarURL: user.AvatarURL(constants.AvatarSizeProfile),
		},
		LastSeen:      user.LastSeen,
		EquationCount: stats.EquationCount,
		FollowerCount: stats.FollowerCount,
		FollowedCount: stats.FollowedCount,
		IsFollowing:   isFollowing,
	}
}

// ToPopupDTO converts a user plus follower count to PopupDTO
func ToPopupDTO(user models.User, followerCount int64, isFollowing bool) PopupDTO {
	return PopupDTO{
		UserDTO:       ToUserDTO(user),
		LastSeen:      user.LastSeen,
		FollowerCount: followerCount,
		IsFollowing:   isFollowing,
	}
}
