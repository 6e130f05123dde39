package usecase

import (
	"github.com/hygia/crm-backend/internal/application/dto"
	"github.com/hygia/crm-backend/internal/domain/repository"
)

// RegionUseCase listado de regiones (solo lectura; el alta es vía seed).
type RegionUseCase struct {
	repo repository.RegionRepository
}

// NewRegionUseCase construye el caso de uso.
func NewRegionUseCase(repo repository.RegionRepository) *RegionUseCase {
	return &RegionUseCase{repo: repo}
}

// List devuelve todas las regiones ordenadas por nombre ascendente.
func (uc *RegionUseCase) List() ([]dto.RegionResponse, error) {
	regions, err := uc.repo.ListOrderByName()
	if err != nil {
		return nil, err
	}
	out := make([]dto.RegionResponse, 0, len(regions))
	for _, r := range regions {
		out = append(out, dto.RegionResponse{ID: r.ID, Name: r.Name, State: r.State})
	}
	return out, nil
}
