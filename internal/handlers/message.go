package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hiromasa-dev/mathfeed/internal/dto"
	apierrors "github.com/hiromasa-dev/mathfeed/internal/errors"
	"github.com/hiromasa-dev/mathfeed/internal/middleware"
	"github.com/hiromasa-dev/mathfeed/internal/services"
	"github.com/hiromasa-dev/mathfeed/internal/utils"
)

// MessageHandler coordinates private messages and notification polling.
type MessageHandler struct {
	messageService  *services.MessageService
	messagesPerPage int
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(messageService *services.MessageService, messagesPerPage int) *MessageHandler {
	return &MessageHandler{
		messageService:  messageService,
		messagesPerPage: messagesPerPage,
	}
}

// GetSendMessage returns the recipient the compose form is addressed to.
func (h *MessageHandler) GetSendMessage(c *gin.Context) {
	recipient, ok := middleware.GetParamUser(c)
	if !ok {
		apierrors.NotFound(c, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recipient": dto.ToUserDTO(recipient),
	})
}

// SendMessage delivers a private message to the recipient from the URL.
func (h *MessageHandler) SendMessage(c *gin.Context) {
	type SendMessageRequest struct {
		Body string `json:"body" binding:"required"`
	}

	recipient, ok := middleware.GetParamUser(c)
	if !ok {
		apierrors.NotFound(c, "User not found")
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	senderID, _ := middleware.GetUserID(c)
	message, err := h.messageService.Send(services.SendInput{
		SenderID:  senderID,
		Recipient: &recipient,
		Body:      req.Body,
	})
	if err != nil {
		respondMessageError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToMessageDTO(*message))
}

// ListMessages marks the inbox read and returns received messages.
func (h *MessageHandler) ListMessages(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	params := utils.GetPaginationParams(c, h.messagesPerPage)
	messages, total, err := h.messageService.ListMessages(userID, params)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToMessageListResponse(messages, params, total))
}

// Notifications returns the user's notifications newer than ?since=.
func (h *MessageHandler) Notifications(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	since := 0.0
	if raw := c.Query("since"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid since parameter")
			return
		}
		since = parsed
	}

	notifications, err := h.messageService.PollNotifications(userID, since)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToNotificationDTOs(notifications))
}

func respondMessageError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMessageEmpty),
		errors.Is(err, services.ErrMessageTooLong):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
