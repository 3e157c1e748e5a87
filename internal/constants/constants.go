package constants

// Session
const (
	SessionCookieName = "mathfeed_session"
	ContextKeyUserID  = "user_id"
)

// ContextKeyProfileUser is where middleware stores the user resolved from a
// :username path parameter.
const ContextKeyProfileUser = "profile_user"

// Validation limits
const (
	MinPasswordLength = 8
	MaxUsernameLength = 64
	MaxEmailLength    = 120
	MaxMessageLength  = 140
)

// Pagination bounds
const (
	MinPageSize     = 1
	DefaultPageSize = 25
	MaxPageSize     = 100
)

// Operators accepted by the equation dispatcher.
var Operators = []string{"+", "-", "*", "/"}

// NotificationUnreadMessageCount is the upsert-by-name key for the unread
// message counter pushed to message recipients.
const NotificationUnreadMessageCount = "unread_message_count"

// Avatar sizes used in API responses.
const (
	AvatarSizeSmall   = 36
	AvatarSizeProfile = 128
)
