package restaurantrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRestaurantRepository implements ports.RestaurantRepository using GORM.
type GormRestaurantRepository struct {
	db *gorm.DB
}

func NewGormRestaurantRepository(db *gorm.DB) *GormRestaurantRepository {
	return &GormRestaurantRepository{db: db}
}

func (r *GormRestaurantRepository) Get(ctx context.Context, id kernel.UUID) (ports.RestaurantTerms, error) {
	if err := id.Validate(); err != nil {
		return ports.RestaurantTerms{}, err
	}

	var dto RestaurantDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.RestaurantTerms{}, errs.NewObjectNotFoundError("restaurant", id.String())
		}
		return ports.RestaurantTerms{}, err
	}

	return toDomain(dto)
}

// Save inserts the terms or replaces every column of an existing row.
func (r *GormRestaurantRepository) Save(ctx context.Context, terms ports.RestaurantTerms) error {
	if err := terms.RestaurantID.Validate(); err != nil {
		return err
	}

	dto := fromDomain(terms)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&dto).Error
}
