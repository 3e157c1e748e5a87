package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hiromasa-dev/mathfeed/internal/models"
	"github.com/hiromasa-dev/mathfeed/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrSelfFollow   = errors.New("cannot follow yourself")
	ErrSelfUnfollow = errors.New("cannot unfollow yourself")
)

// UserService handles profile management and the social graph.
type UserService struct {
	userRepo     repository.UserRepository
	followRepo   repository.FollowRepository
	equationRepo repository.EquationRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository, followRepo repository.FollowRepository, equationRepo repository.EquationRepository) *UserService {
	return &UserService{
		userRepo:     userRepo,
		followRepo:   followRepo,
		equationRepo: equationRepo,
	}
}

// GetUserByUsername retrieves a user by username.
func (s *UserService) GetUserByUsername(username string) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// EditProfile renames the user. The taken-by-another-user check is
// read-then-write; the unique index on username is the backstop when two
// renames race.
func (s *UserService) EditProfile(userID uint64, newUsername string) (*models.User, error) {
	username := strings.TrimSpace(newUsername)
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}

	existing, err := s.userRepo.FindByUsername(username)
	if err == nil && existing.ID != userID {
		return nil, ErrUsernameTaken
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	if err := s.userRepo.UpdateUsername(userID, username); err != nil {
		return nil, fmt.Errorf("failed to rename user: %w", err)
	}

	return s.GetUser(userID)
}

// GetUser retrieves a user by ID.
func (s *UserService) GetUser(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// TouchLastSeen records request activity for the user.
func (s *UserService) TouchLastSeen(userID uint64) error {
	return s.userRepo.UpdateLastSeen(userID, time.Now())
}

// Follow adds a follow edge. Following an already-followed user is a no-op.
func (s *UserService) Follow(actorID, targetID uint64) error {
	if actorID == targetID {
		return ErrSelfFollow
	}
	if err := s.followRepo.Create(actorID, targetID); err != nil {
		return fmt.Errorf("failed to follow: %w", err)
	}
	return nil
}

// Unfollow removes a follow edge. Unfollowing a non-followed user is a no-op.
func (s *UserService) Unfollow(actorID, targetID uint64) error {
	if actorID == targetID {
		return ErrSelfUnfollow
	}
	if err := s.followRepo.Delete(actorID, targetID); err != nil {
		return fmt.Errorf("failed to unfollow: %w", err)
	}
	return nil
}

// IsFollowing reports whether actor follows target.
func (s *UserService) IsFollowing(actorID, targetID uint64) (bool, error) {
	return s.followRepo.Exists(actorID, targetID)
}

// ProfileStats carries the counters shown on a profile page.
type ProfileStats struct {
	EquationCount int64
	FollowerCount int64
	FollowedCount int64
}

// GetProfileStats collects the profile counters for a user.
func (s *UserService) GetProfileStats(userID uint64) (*ProfileStats, error) {
	equations, err := s.equationRepo.CountByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count equations: %w", err)
	}
	followers, err := s.followRepo.CountFollowers(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count followers: %w", err)
	}
	followed, err := s.followRepo.CountFollowed(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count followed: %w", err)
	}

	return &ProfileStats{
		EquationCount: equations,
		FollowerCount: followers,
		FollowedCount: followed,
	}, nil
}
