package models

import "time"

// Follow is the directed edge "follower's feed includes followed's
// equations". The composite primary key makes duplicate follows impossible at
// the schema level.
type Follow struct {
	FollowerID uint64    `gorm:"primarykey" json:"follower_id"`
	FollowedID uint64    `gorm:"primarykey" json:"followed_id"`
	CreatedAt  time.Time `json:"created_at"`

	// Relations
	Follower User `gorm:"foreignKey:FollowerID" json:"-"`
	Followed User `gorm:"foreignKey:FollowedID" json:"-"`
}

func (Follow) TableName() string { return "follows" }
