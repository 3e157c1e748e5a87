package dto

import (
	"time"

	"github.com/hiromasa-dev/mathfeed/internal/models"
	"github.com/hiromasa-dev/mathfeed/internal/utils"
)

// MessageDTO represents a private message in API responses
type MessageDTO struct {
	ID        uint64    `json:"id"`
	Body      string    `json:"body"`
	Timestamp time.Time `json:"timestamp"`
	Sender    *UserDTO  `json:"sender,omitempty"`
}

// MessageListResponse represents a paginated inbox page
type MessageListResponse struct {
	Messages   []MessageDTO             `json:"messages"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

// ToMessageDTO converts a Message model to MessageDTO
func ToMessageDTO(message models.Message) MessageDTO {
	dto := MessageDTO{
		ID:        message.ID,
		Body:      message.Body,
		Timestamp: message.CreatedAt,
	}
	if message.Sender.ID != 0 {
		sender := ToUserDTO(message.Sender)
		dto.Sender = &sender
	}
	return dto
}

// ToMessageListResponse converts an inbox page to its response shape
func ToMessageListResponse(messages []models.Message, params utils.PaginationParams, total int64) MessageListResponse {
	items := make([]MessageDTO, len(messages))
	for i, message := range messages {
		items[i] = ToMessageDTO(message)
	}
	return MessageListResponse{
		Messages:   items,
		Pagination: utils.NewPaginationResponse(params, total),
	}
}
