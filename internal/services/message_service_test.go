package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/hiromasa-dev/mathfeed/internal/constants"
	"github.com/hiromasa-dev/mathfeed/internal/models"
	"github.com/hiromasa-dev/mathfeed/internal/repository"
	"github.com/hiromasa-dev/mathfeed/internal/utils"
)

func newMessageService(db *gorm.DB) (*MessageService, repository.UserRepository) {
	userRepo := repository.NewUserRepository(db)
	svc := NewMessageService(
		repository.NewMessageRepository(db),
		repository.NewNotificationRepository(db),
		userRepo,
	)
	return svc, userRepo
}

func sendTestMessage(t *testing.T, svc *MessageService, userRepo repository.UserRepository, senderID, recipientID uint64, body string) *models.Message {
	t.Helper()

	// fetch fresh so the unread cutoff reflects the latest inbox read
	recipient, err := userRepo.FindByID(recipientID)
	require.NoError(t, err)

	message, err := svc.Send(SendInput{
		SenderID:  senderID,
		Recipient: recipient,
		Body:      body,
	})
	require.NoError(t, err)
	return message
}

func TestMessageService_SendIncrementsUnreadCount(t *testing.T) {
	db := setupTestDB(t)
	svc, userRepo := newMessageService(db)
	sender := createTestUser(t, db, "sender", "sender@example.com")
	recipient := createTestUser(t, db, "recipient", "recipient@example.com")

	for i := 1; i <= 3; i++ {
		sendTestMessage(t, svc, userRepo, sender.ID, recipient.ID, "hello")

		fresh, err := userRepo.FindByID(recipient.ID)
		require.NoError(t, err)
		count, err := svc.UnreadCount(fresh)
		require.NoError(t, err)
		require.EqualValues(t, i, count)
	}
}

func TestMessageService_SendUpsertsNotification(t *testing.T) {
	db := setupTestDB(t)
	svc, userRepo := newMessageService(db)
	sender := createTestUser(t, db, "sender", "sender@example.com")
	recipient := createTestUser(t, db, "recipient", "recipient@example.com")

	sendTestMessage(t, svc, userRepo, sender.ID, recipient.ID, "one")
	sendTestMessage(t, svc, userRepo, sender.ID, recipient.ID, "two")

	// upsert-by-name: still a single live notification carrying the count
	var notifications []models.Notification
	require.NoError(t, db.
		Where("user_id = ? AND name = ?", recipient.ID, constants.NotificationUnreadMessageCount).
		Find(&notifications).Error)
	require.Len(t, notifications, 1)

	data, err := notifications[0].Data()
	require.NoError(t, err)
	require.EqualValues(t, 2, data)
}

func TestMessageService_SendValidatesBody(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newMessageService(db)
	sender := createTestUser(t, db, "sender", "sender@example.com")
	recipient := createTestUser(t, db, "recipient", "recipient@example.com")

	_, err := svc.Send(SendInput{SenderID: sender.ID, Recipient: recipient, Body: ""})
	require.ErrorIs(t, err, ErrMessageEmpty)

	long := make([]byte, 141)
	for i := range long {
		long[i] = 'a'
	}
	_, err = svc.Send(SendInput{SenderID: sender.ID, Recipient: recipient, Body: string(long)})
	require.ErrorIs(t, err, ErrMessageTooLong)

	var count int64
	require.NoError(t, db.Model(&models.Message{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestMessageService_ListMessagesResetsUnread(t *testing.T) {
	db := setupTestDB(t)
	svc, userRepo := newMessageService(db)
	sender := createTestUser(t, db, "sender", "sender@example.com")
	recipient := createTestUser(t, db, "recipient", "recipient@example.com")

	sendTestMessage(t, svc, userRepo, sender.ID, recipient.ID, "first")
	sendTestMessage(t, svc, userRepo, sender.ID, recipient.ID, "second")

	messages, total, err := svc.ListMessages(recipient.ID, utils.PaginationParams{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
	require.Len(t, messages, 2)
	// newest first
	require.Equal(t, "second", messages[0].Body)
	require.Equal(t, "first", messages[1].Body)

	fresh, err := userRepo.FindByID(recipient.ID)
	require.NoError(t, err)
	require.NotNil(t, fresh.LastMessageReadTime)

	count, err := svc.UnreadCount(fresh)
	require.NoError(t, err)
	require.Zero(t, count)

	// the notification was reset to 0 as well
	var notification models.Notification
	require.NoError(t, db.
		Where("user_id = ? AND name = ?", recipient.ID, constants.NotificationUnreadMessageCount).
		First(&notification).Error)
	data, err := notification.Data()
	require.NoError(t, err)
	require.EqualValues(t, 0, data)

	// a new message after reading counts again
	time.Sleep(10 * time.Millisecond)
	sendTestMessage(t, svc, userRepo, sender.ID, recipient.ID, "third")
	fresh, err = userRepo.FindByID(recipient.ID)
	require.NoError(t, err)
	count, err = svc.UnreadCount(fresh)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
}

func TestMessageService_PollNotificationsSinceIsStrict(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newMessageService(db)
	user := createTestUser(t, db, "poller", "poller@example.com")

	notificationRepo := repository.NewNotificationRepository(db)
	require.NoError(t, notificationRepo.Upsert(user.ID, "a", "1", 1.0))
	require.NoError(t, notificationRepo.Upsert(user.ID, "b", "2", 2.0))
	require.NoError(t, notificationRepo.Upsert(user.ID, "c", "3", 3.0))

	notifications, err := svc.PollNotifications(user.ID, 2.0)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	require.Equal(t, "c", notifications[0].Name)

	notifications, err = svc.PollNotifications(user.ID, 0)
	require.NoError(t, err)
	require.Len(t, notifications, 3)
	// ascending by timestamp
	require.Equal(t, "a", notifications[0].Name)
	require.Equal(t, "c", notifications[2].Name)
}
