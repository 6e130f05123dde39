package repository

import "github.com/hygia/crm-backend/internal/domain/entity"

// RegionRepository define el puerto de persistencia para Region.
// Las regiones solo se crean vía seed; no hay borrado.
type RegionRepository interface {
	Create(region *entity.Region) error
	GetByID(id string) (*entity.Region, error)
	ListOrderByName() ([]*entity.Region, error)
	Count() (int64, error)
}
