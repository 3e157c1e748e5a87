package repository

import (
	"github.com/hiromasa-dev/mathfeed/internal/database"
	"github.com/hiromasa-dev/mathfeed/internal/models"
	"github.com/hiromasa-dev/mathfeed/internal/utils"
	"gorm.io/gorm"
)

// GormEquationRepository is a GORM implementation of EquationRepository
type GormEquationRepository struct {
	db *gorm.DB
}

// NewEquationRepository creates a new EquationRepository
func NewEquationRepository(db *gorm.DB) EquationRepository {
	return &GormEquationRepository{db: db}
}

// Create persists a new equation with its derived fields
func (r *GormEquationRepository) Create(equation *models.Equation) error {
	return r.db.Create(equation).Error
}

// ListFollowed returns equations authored by the user or anyone the user
// follows. Equivalent to the union of the two author sets; the OR against the
// edge subquery dedupes for free. Ordered by created_at descending with an id
// tie-break so pagination stays stable when timestamps collide.
func (r *GormEquationRepository) ListFollowed(userID uint64, params utils.PaginationParams) ([]models.Equation, int64, error) {
	followedIDs := r.db.Model(&models.Follow{}).
		Select("followed_id").
		Where("follower_id = ?", userID)

	query := r.db.Model(&models.Equation{}).
		Where("user_id = ? OR user_id IN (?)", userID, followedIDs)

	return r.list(query, params)
}

// ListAll returns every equation, newest first
func (r *GormEquationRepository) ListAll(params utils.PaginationParams) ([]models.Equation, int64, error) {
	return r.list(r.db.Model(&models.Equation{}), params)
}

// ListByUser returns a single author's equations, newest first
func (r *GormEquationRepository) ListByUser(userID uint64, params utils.PaginationParams) ([]models.Equation, int64, error) {
	query := r.db.Model(&models.Equation{}).Where("user_id = ?", userID)
	return r.list(query, params)
}

// CountByUser counts a single author's equations
func (r *GormEquationRepository) CountByUser(userID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Equation{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *GormEquationRepository) list(query *gorm.DB, params utils.PaginationParams) ([]models.Equation, int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var equations []models.Equation
	err := query.
		Order("created_at DESC, id DESC").
		Scopes(database.Paginate(params)).
		Preload("Author").
		Find(&equations).Error
	if err != nil {
		return nil, 0, err
	}

	return equations, total, nil
}
