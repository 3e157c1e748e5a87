package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hiromasa-dev/mathfeed/internal/dto"
	apierrors "github.com/hiromasa-dev/mathfeed/internal/errors"
	"github.com/hiromasa-dev/mathfeed/internal/middleware"
	"github.com/hiromasa-dev/mathfeed/internal/services"
	"github.com/hiromasa-dev/mathfeed/internal/utils"
)

// UserHandler coordinates profile and social-graph HTTP handlers.
type UserHandler struct {
	userService      *services.UserService
	equationService  *services.EquationService
	equationsPerPage int
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService, equationService *services.EquationService, equationsPerPage int) *UserHandler {
	return &UserHandler{
		userService:      userService,
		equationService:  equationService,
		equationsPerPage: equationsPerPage,
	}
}

// GetProfile returns a user's profile with their paginated equations.
func (h *UserHandler) GetProfile(c *gin.Context) {
	profileUser, ok := middleware.GetParamUser(c)
	if !ok {
		apierrors.NotFound(c, "User not found")
		return
	}
	viewerID, _ := middleware.GetUserID(c)

	stats, err := h.userService.GetProfileStats(profileUser.ID)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	isFollowing := false
	if viewerID != 0 && viewerID != profileUser.ID {
		isFollowing, err = h.userService.IsFollowing(viewerID, profileUser.ID)
		if err != nil {
			apierrors.InternalError(c, "")
			return
		}
	}

	params := utils.GetPaginationParams(c, h.equationsPerPage)
	equations, total, err := h.equationService.UserFeed(profileUser.ID, params)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":      dto.ToProfileDTO(profileUser, stats, isFollowing),
		"equations": dto.ToEquationListResponse(equations, params, total),
	})
}

// GetPopup returns the compact profile card shown on username hover.
func (h *UserHandler) GetPopup(c *gin.Context) {
	profileUser, ok := middleware.GetParamUser(c)
	if !ok {
		apierrors.NotFound(c, "User not found")
		return
	}
	viewerID, _ := middleware.GetUserID(c)

	stats, err := h.userService.GetProfileStats(profileUser.ID)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	isFollowing := false
	if viewerID != 0 && viewerID != profileUser.ID {
		isFollowing, err = h.userService.IsFollowing(viewerID, profileUser.ID)
		if err != nil {
			apierrors.InternalError(c, "")
			return
		}
	}

	c.JSON(http.StatusOK, dto.ToPopupDTO(profileUser, stats.FollowerCount, isFollowing))
}

// GetEditProfile returns the current profile values for the edit form.
func (h *UserHandler) GetEditProfile(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	user, err := h.userService.GetUser(userID)
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"username": user.Username,
	})
}

// EditProfile renames the authenticated user.
func (h *UserHandler) EditProfile(c *gin.Context) {
	type EditProfileRequest struct {
		Username string `json:"username" binding:"required,max=64"`
	}

	var req EditProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	userID, _ := middleware.GetUserID(c)
	user, err := h.userService.EditProfile(userID, req.Username)
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// Follow adds a follow edge from the authenticated user to the target.
func (h *UserHandler) Follow(c *gin.Context) {
	target, ok := middleware.GetParamUser(c)
	if !ok {
		apierrors.NotFound(c, "User not found")
		return
	}
	actorID, _ := middleware.GetUserID(c)

	if err := h.userService.Follow(actorID, target.ID); err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "You are now following " + target.Username,
	})
}

// Unfollow removes the follow edge from the authenticated user to the target.
func (h *UserHandler) Unfollow(c *gin.Context) {
	target, ok := middleware.GetParamUser(c)
	if !ok {
		apierrors.NotFound(c, "User not found")
		return
	}
	actorID, _ := middleware.GetUserID(c)

	if err := h.userService.Unfollow(actorID, target.ID); err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "You are no longer following " + target.Username,
	})
}

func respondUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrSelfFollow),
		errors.Is(err, services.ErrSelfUnfollow):
		apierrors.BadRequestCode(c, apierrors.ErrCodeSelfAction, err.Error())
	case errors.Is(err, services.ErrUsernameTaken):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
