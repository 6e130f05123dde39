package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/hygia/crm-backend/internal/domain"
	"github.com/hygia/crm-backend/internal/domain/entity"
	"github.com/hygia/crm-backend/internal/domain/repository"
)

var _ repository.RegionRepository = (*RegionRepo)(nil)

// RegionRepo implementación de RegionRepository.
type RegionRepo struct {
	q Querier
}

// NewRegionRepository construye el adaptador.
func NewRegionRepository(q Querier) *RegionRepo {
	return &RegionRepo{q: q}
}

// Create persiste una región (solo la usa el seed de desarrollo).
func (r *RegionRepo) Create(region *entity.Region) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO region (id, name, state) VALUES ($1, $2, $3)`,
		region.ID, region.Name, region.State,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert region: %w", err)
	}
	return nil
}

// GetByID obtiene una región por ID. Un id malformado se trata como
// inexistente.
func (r *RegionRepo) GetByID(id string) (*entity.Region, error) {
	if !validUUID(id) {
		return nil, nil
	}
	var region entity.Region
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, state FROM region WHERE id = $1`, id,
	).Scan(&region.ID, &region.Name, &region.State)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get region: %w", err)
	}
	return &region, nil
}

// ListOrderByName devuelve todas las regiones por nombre ascendente.
func (r *RegionRepo) ListOrderByName() ([]*entity.Region, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, state FROM region ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list regions: %w", err)
	}
	defer rows.Close()

	var list []*entity.Region
	for rows.Next() {
		var region entity.Region
		if err := rows.Scan(&region.ID, &region.Name, &region.State); err != nil {
			return nil, fmt.Errorf("scan region: %w", err)
		}
		list = append(list, &region)
	}
	return list, rows.Err()
}

// Count devuelve el total de regiones.
func (r *RegionRepo) Count() (int64, error) {
	var total int64
	if err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM region`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count regions: %w", err)
	}
	return total, nil
}
