// Package restaurantrepo stores restaurant terms synced from the menu
// collaborator.
package restaurantrepo

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RestaurantDTO struct {
	ID           uuid.UUID           `gorm:"type:uuid;primaryKey"`
	Name         string              `gorm:"type:varchar(255);not null"`
	MinimumOrder decimal.NullDecimal `gorm:"type:numeric(18,2)"`
	ClientScope  string              `gorm:"type:varchar(64);not null;default:''"`
	Zone         int                 `gorm:"not null;default:0"`
}

func (RestaurantDTO) TableName() string {
	return "restaurants"
}

func fromDomain(terms ports.RestaurantTerms) RestaurantDTO {
	dto := RestaurantDTO{
		ID:          terms.RestaurantID.Bytes(),
		Name:        terms.Name,
		ClientScope: terms.ClientScope,
		Zone:        terms.Zone,
	}
	if terms.MinimumOrder != nil {
		dto.MinimumOrder = decimal.NewNullDecimal(terms.MinimumOrder.Decimal())
	}
	return dto
}

func toDomain(dto RestaurantDTO) (ports.RestaurantTerms, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.RestaurantTerms{}, err
	}

	terms := ports.RestaurantTerms{
		RestaurantID: id,
		Name:         dto.Name,
		ClientScope:  dto.ClientScope,
		Zone:         dto.Zone,
	}
	if dto.MinimumOrder.Valid {
		minimum := kernel.MoneyFromDecimal(dto.MinimumOrder.Decimal)
		terms.MinimumOrder = &minimum
	}
	return terms, nil
}
