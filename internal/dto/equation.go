package dto

import (
	"time"

	"github.com/hiromasa-dev/mathfeed/internal/models"
	"github.com/hiromasa-dev/mathfeed/internal/utils"
)

// EquationDTO represents an equation in API responses
type EquationDTO struct {
	ID          uint64    `json:"id"`
	XVar        float64   `json:"x_var"`
	YVar        float64   `json:"y_var"`
	Operator    string    `json:"operator"`
	Result      float64   `json:"result"`
	EquationStr string    `json:"equation_str"`
	Timestamp   time.Time `json:"timestamp"`
	Author      *UserDTO  `json:"author,omitempty"`
}

// EquationListResponse represents a paginated feed page
type EquationListResponse struct {
	Equations  []EquationDTO            `json:"equations"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

// ToEquationDTO converts an Equation model to EquationDTO
func ToEquationDTO(equation models.Equation) EquationDTO {
	dto := EquationDTO{
		ID:          equation.ID,
		XVar:        equation.XVar,
		YVar:        equation.YVar,
		Operator:    equation.Operator,
		Result:      equation.Result,
		EquationStr: equation.EquationStr,
		Timestamp:   equation.CreatedAt,
	}
	if equation.Author.ID != 0 {
		author := ToUserDTO(equation.Author)
		dto.Author = &author
	}
	return dto
}

// ToEquationListResponse converts a feed page to its response shape
func ToEquationListResponse(equations []models.Equation, params utils.PaginationParams, total int64) EquationListResponse {
	items := make([]EquationDTO, len(equations))
	for i, equation := range equations {
		items[i] = ToEquationDTO(equation)
	}
	return EquationListResponse{
		Equations:  items,
		Pagination: utils.NewPaginationResponse(params, total),
	}
}
