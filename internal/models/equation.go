package models

import "time"

type Equation struct {
	ID       uint64  `gorm:"primarykey" json:"id"`
	XVar     float64 `gorm:"not null" json:"x_var"`
	YVar     float64 `gorm:"not null" json:"y_var"`
	Operator string  `gorm:"type:varchar(1);not null" json:"operator"`

	// Result and EquationStr are derived from x, y, and operator once at
	// submission time and never recomputed afterwards.
	Result      float64 `gorm:"not null" json:"result"`
	EquationStr string  `gorm:"type:varchar(255);not null" json:"equation_str"`

	UserID    uint64    `gorm:"not null;index" json:"user_id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`

	// Relations
	Author User `gorm:"foreignKey:UserID" json:"author,omitempty"`
}
