package repository

import (
	"time"

	"github.com/hiromasa-dev/mathfeed/internal/models"
	"github.com/hiromasa-dev/mathfeed/internal/utils"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// UpdateUsername renames the user
	UpdateUsername(id uint64, username string) error

	// UpdatePasswordHash replaces the stored password hash
	UpdatePasswordHash(id uint64, hash string) error

	// UpdateLastSeen records request activity
	UpdateLastSeen(id uint64, t time.Time) error

	// UpdateLastMessageReadTime marks the inbox as read up to t
	UpdateLastMessageReadTime(id uint64, t time.Time) error
}

// FollowRepository defines the interface for the follower adjacency relation
type FollowRepository interface {
	// Create adds a follow edge; adding an existing edge is a no-op
	Create(followerID, followedID uint64) error

	// Delete removes a follow edge; removing a missing edge is a no-op
	Delete(followerID, followedID uint64) error

	// Exists reports whether follower follows followed
	Exists(followerID, followedID uint64) (bool, error)

	// CountFollowers counts users following the given user
	CountFollowers(userID uint64) (int64, error)

	// CountFollowed counts users the given user follows
	CountFollowed(userID uint64) (int64, error)
}

// EquationRepository defines the interface for equation data access
type EquationRepository interface {
	// Create persists a new equation with its derived fields
	Create(equation *models.Equation) error

	// ListFollowed returns equations authored by the user or anyone the user
	// follows, newest first
	ListFollowed(userID uint64, params utils.PaginationParams) ([]models.Equation, int64, error)

	// ListAll returns every equation, newest first
	ListAll(params utils.PaginationParams) ([]models.Equation, int64, error)

	// ListByUser returns a single author's equations, newest first
	ListByUser(userID uint64, params utils.PaginationParams) ([]models.Equation, int64, error)

	// CountByUser counts a single author's equations
	CountByUser(userID uint64) (int64, error)
}

// MessageRepository defines the interface for private message data access
type MessageRepository interface {
	// Create persists a new message
	Create(message *models.Message) error

	// ListReceived returns a user's received messages, newest first
	ListReceived(userID uint64, params utils.PaginationParams) ([]models.Message, int64, error)

	// CountReceivedAfter counts received messages newer than the cutoff
	CountReceivedAfter(userID uint64, cutoff time.Time) (int64, error)
}

// NotificationRepository defines the interface for notification data access
type NotificationRepository interface {
	// Upsert replaces any notification with the same (user, name) pair
	Upsert(userID uint64, name, payloadJSON string, timestamp float64) error

	// ListSince returns notifications strictly newer than since, ascending
	ListSince(userID uint64, since float64) ([]models.Notification, error)
}
