package repository

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return db, mock
}

// The upsert must delete any prior notification with the same (user, name)
// pair and insert the replacement inside a single transaction.
func TestNotificationRepository_UpsertReplacesByName(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewNotificationRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `notifications` WHERE user_id = ? AND name = ?")).
		WithArgs(7, "unread_message_count").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `notifications`").
		WithArgs("unread_message_count", 7, 12.5, "3").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.Upsert(7, "unread_message_count", "3", 12.5)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepository_UpsertRollsBackOnInsertFailure(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewNotificationRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `notifications` WHERE user_id = ? AND name = ?")).
		WithArgs(7, "unread_message_count").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `notifications`").
		WillReturnError(gorm.ErrInvalidData)
	mock.ExpectRollback()

	err := repo.Upsert(7, "unread_message_count", "3", 12.5)
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepository_ListSince(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewNotificationRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "user_id", "timestamp", "payload_json"}).
		AddRow(1, "unread_message_count", 7, 20.0, "2")
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT * FROM `notifications` WHERE user_id = ? AND timestamp > ? ORDER BY timestamp ASC")).
		WithArgs(7, 10.0).
		WillReturnRows(rows)

	notifications, err := repo.ListSince(7, 10.0)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	require.Equal(t, "unread_message_count", notifications[0].Name)
	require.Equal(t, 20.0, notifications[0].Timestamp)
	require.NoError(t, mock.ExpectationsWereMet())
}
