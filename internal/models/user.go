package models

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

type User struct {
	ID           uint64 `gorm:"primarykey" json:"id"`
	Username     string `gorm:"type:varchar(64);uniqueIndex;not null" json:"username"`
	Email        string `gorm:"type:varchar(120);uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`

	LastSeen time.Time `json:"last_seen"`
	// LastMessageReadTime is nil until the user opens their inbox for the
	// first time; unread counting then falls back to a beginning-of-time
	// sentinel.
	LastMessageReadTime *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Equations        []Equation     `gorm:"foreignKey:UserID" json:"-"`
	Notifications    []Notification `gorm:"foreignKey:UserID" json:"-"`
	MessagesSent     []Message      `gorm:"foreignKey:SenderID" json:"-"`
	MessagesReceived []Message      `gorm:"foreignKey:RecipientID" json:"-"`
}

// MessageReadCutoff returns the timestamp messages must be newer than to
// count as unread.
func (u *User) MessageReadCutoff() time.Time {
	if u.LastMessageReadTime != nil {
		return *u.LastMessageReadTime
	}
	return time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)
}

// AvatarURL derives a deterministic gravatar URL from the user's email.
func (u *User) AvatarURL(size int) string {
	normalized := strings.TrimSpace(strings.ToLower(u.Email))
	digest := md5.Sum([]byte(normalized))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%s?d=identicon&s=%d",
		hex.EncodeToString(digest[:]), size)
}
