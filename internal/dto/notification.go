package dto

import "github.com/hiromasa-dev/mathfeed/internal/models"

// NotificationDTO is one element of the notification poll response.
type NotificationDTO struct {
	Name      string      `json:"name"`
	Data      interface{} `json:"data"`
	Timestamp float64     `json:"timestamp"`
}

// ToNotificationDTOs converts notifications, deserializing each payload.
// Payloads that fail to parse are passed through as raw strings rather than
// dropping the notification.
func ToNotificationDTOs(notifications []models.Notification) []NotificationDTO {
	items := make([]NotificationDTO, len(notifications))
	for i, n := range notifications {
		data, err := n.Data()
		if err != nil {
			data = n.PayloadJSON
		}
		items[i] = NotificationDTO{
			Name:      n.Name,
			Data:      data,
			Timestamp: n.Timestamp,
		}
	}
	return items
}
