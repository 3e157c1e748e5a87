package services

import (
	"errors"
	"fmt"

	"github.com/hiromasa-dev/mathfeed/internal/models"
	"github.com/hiromasa-dev/mathfeed/internal/repository"
	"github.com/hiromasa-dev/mathfeed/internal/utils"
)

var (
	ErrInvalidOperator = errors.New("operator must be one of + - * /")
	ErrDivisionByZero  = errors.New("cannot divide by zero")
)

// EquationService handles equation submission and the feeds.
type EquationService struct {
	equationRepo repository.EquationRepository
}

// NewEquationService creates a new EquationService.
func NewEquationService(equationRepo repository.EquationRepository) *EquationService {
	return &EquationService{equationRepo: equationRepo}
}

// SubmitInput represents a new equation.
type SubmitInput struct {
	XVar     float64
	YVar     float64
	Operator string
	AuthorID uint64
}

// Submit validates the operator, rejects division by zero before anything is
// persisted, then stores the equation together with its derived result and
// formatted string.
func (s *EquationService) Submit(input SubmitInput) (*models.Equation, error) {
	result, err := Evaluate(input.XVar, input.YVar, input.Operator)
	if err != nil {
		return nil, err
	}

	equation := &models.Equation{
		XVar:     input.XVar,
		YVar:     input.YVar,
		Operator: input.Operator,
		Result:   result,
		EquationStr: fmt.Sprintf("%.2f %s %.2f = %.2f",
			input.XVar, input.Operator, input.YVar, result),
		UserID: input.AuthorID,
	}

	if err := s.equationRepo.Create(equation); err != nil {
		return nil, fmt.Errorf("failed to create equation: %w", err)
	}

	return equation, nil
}

// Evaluate is the four-branch arithmetic dispatcher.
func Evaluate(x, y float64, operator string) (float64, error) {
	switch operator {
	case "+":
		return x + y, nil
	case "-":
		return x - y, nil
	case "*":
		return x * y, nil
	case "/":
		if y == 0 {
			return 0, ErrDivisionByZero
		}
		return x / y, nil
	default:
		return 0, ErrInvalidOperator
	}
}

// FollowedFeed returns equations by the user and everyone the user follows.
func (s *EquationService) FollowedFeed(userID uint64, params utils.PaginationParams) ([]models.Equation, int64, error) {
	equations, total, err := s.equationRepo.ListFollowed(userID, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list followed equations: %w", err)
	}
	return equations, total, nil
}

// Explore returns every equation, newest first.
func (s *EquationService) Explore(params utils.PaginationParams) ([]models.Equation, int64, error) {
	equations, total, err := s.equationRepo.ListAll(params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list equations: %w", err)
	}
	return equations, total, nil
}

// UserFeed returns a single author's equations, newest first.
func (s *EquationService) UserFeed(userID uint64, params utils.PaginationParams) ([]models.Equation, int64, error) {
	equations, total, err := s.equationRepo.ListByUser(userID, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list user equations: %w", err)
	}
	return equations, total, nil
}
