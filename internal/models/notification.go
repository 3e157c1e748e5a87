package models

import "encoding/json"

// Notification holds at most one live row per (user, name) pair; creating a
// new one replaces any prior row with the same name. Timestamp is epoch
// seconds so it can be compared directly against the float `since` cursor
// clients poll with.
type Notification struct {
	ID          uint64  `gorm:"primarykey" json:"id"`
	Name        string  `gorm:"type:varchar(128);index;not null" json:"name"`
	UserID      uint64  `gorm:"not null;index" json:"user_id"`
	Timestamp   float64 `gorm:"index" json:"timestamp"`
	PayloadJSON string  `gorm:"type:text" json:"-"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// Data deserializes the stored payload.
func (n *Notification) Data() (interface{}, error) {
	var data interface{}
	if err := json.Unmarshal([]byte(n.PayloadJSON), &data); err != nil {
		return nil, err
	}
	return data, nil
}
