package models

import "time"

// Message is a private note between two users. Rows are immutable once
// created.
type Message struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	SenderID    uint64    `gorm:"not null;index" json:"sender_id"`
	RecipientID uint64    `gorm:"not null;index" json:"recipient_id"`
	Body        string    `gorm:"type:varchar(140);not null" json:"body"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`

	// Relations
	Sender    User `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	Recipient User `gorm:"foreignKey:RecipientID" json:"-"`
}
