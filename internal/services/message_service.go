package services

import (
	"errors"
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/hiromasa-dev/mathfeed/internal/constants"
	"github.com/hiromasa-dev/mathfeed/internal/models"
	"github.com/hiromasa-dev/mathfeed/internal/repository"
	"github.com/hiromasa-dev/mathfeed/internal/utils"
)

var (
	ErrMessageEmpty   = errors.New("message body is required")
	ErrMessageTooLong = errors.New("message body exceeds 140 characters")
)

// MessageService handles private messages and the notification poll feed.
type MessageService struct {
	messageRepo      repository.MessageRepository
	notificationRepo repository.NotificationRepository
	userRepo         repository.UserRepository
}

// NewMessageService creates a new MessageService.
func NewMessageService(messageRepo repository.MessageRepository, notificationRepo repository.NotificationRepository, userRepo repository.UserRepository) *MessageService {
	return &MessageService{
		messageRepo:      messageRepo,
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
	}
}

// SendInput represents a new private message.
type SendInput struct {
	SenderID  uint64
	Recipient *models.User
	Body      string
}

// Send persists the message, then recomputes the recipient's unread count and
// upserts their unread_message_count notification.
func (s *MessageService) Send(input SendInput) (*models.Message, error) {
	if input.Body == "" {
		return nil, ErrMessageEmpty
	}
	if utf8.RuneCountInString(input.Body) > constants.MaxMessageLength {
		return nil, ErrMessageTooLong
	}

	message := &models.Message{
		SenderID:    input.SenderID,
		RecipientID: input.Recipient.ID,
		Body:        input.Body,
	}
	if err := s.messageRepo.Create(message); err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	count, err := s.messageRepo.CountReceivedAfter(input.Recipient.ID, input.Recipient.MessageReadCutoff())
	if err != nil {
		return nil, fmt.Errorf("failed to count unread messages: %w", err)
	}

	err = s.notificationRepo.Upsert(
		input.Recipient.ID,
		constants.NotificationUnreadMessageCount,
		strconv.FormatInt(count, 10),
		epochNow(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert notification: %w", err)
	}

	return message, nil
}

// ListMessages marks the inbox as read, resets the unread_message_count
// notification to 0, then returns the user's received messages newest first.
func (s *MessageService) ListMessages(userID uint64, params utils.PaginationParams) ([]models.Message, int64, error) {
	now := time.Now()
	if err := s.userRepo.UpdateLastMessageReadTime(userID, now); err != nil {
		return nil, 0, fmt.Errorf("failed to mark messages read: %w", err)
	}

	err := s.notificationRepo.Upsert(userID, constants.NotificationUnreadMessageCount, "0", epochNow())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to reset notification: %w", err)
	}

	messages, total, err := s.messageRepo.ListReceived(userID, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list messages: %w", err)
	}

	return messages, total, nil
}

// UnreadCount counts received messages newer than the user's last inbox read.
func (s *MessageService) UnreadCount(user *models.User) (int64, error) {
	return s.messageRepo.CountReceivedAfter(user.ID, user.MessageReadCutoff())
}

// PollNotifications returns the user's notifications strictly newer than the
// since cursor, ascending.
func (s *MessageService) PollNotifications(userID uint64, since float64) ([]models.Notification, error) {
	notifications, err := s.notificationRepo.ListSince(userID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

func epochNow() float64 {
	return float64(time.Now().UnixNano()) / 1e9
}
