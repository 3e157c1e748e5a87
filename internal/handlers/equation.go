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

// EquationHandler coordinates equation submission and the feeds.
type EquationHandler struct {
	equationService  *services.EquationService
	equationsPerPage int
}

// NewEquationHandler creates a new EquationHandler.
func NewEquationHandler(equationService *services.EquationService, equationsPerPage int) *EquationHandler {
	return &EquationHandler{
		equationService:  equationService,
		equationsPerPage: equationsPerPage,
	}
}

// Index returns the authenticated user's followed feed.
func (h *EquationHandler) Index(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	params := utils.GetPaginationParams(c, h.equationsPerPage)
	equations, total, err := h.equationService.FollowedFeed(userID, params)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToEquationListResponse(equations, params, total))
}

// Submit validates and stores a new equation.
func (h *EquationHandler) Submit(c *gin.Context) {
	type SubmitRequest struct {
		XVar     *float64 `json:"x_var" binding:"required"`
		YVar     *float64 `json:"y_var" binding:"required"`
		Operator string   `json:"operator" binding:"required"`
	}

	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	userID, _ := middleware.GetUserID(c)
	equation, err := h.equationService.Submit(services.SubmitInput{
		XVar:     *req.XVar,
		YVar:     *req.YVar,
		Operator: req.Operator,
		AuthorID: userID,
	})
	if err != nil {
		respondEquationError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEquationDTO(*equation))
}

// Explore returns every equation, newest first.
func (h *EquationHandler) Explore(c *gin.Context) {
	params := utils.GetPaginationParams(c, h.equationsPerPage)
	equations, total, err := h.equationService.Explore(params)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToEquationListResponse(equations, params, total))
}

func respondEquationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrDivisionByZero):
		apierrors.BadRequestCode(c, apierrors.ErrCodeDivisionByZero, err.Error())
	case errors.Is(err, services.ErrInvalidOperator):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
