package postgres

import (
	"context"
	"fmt"

	"github.com/hygia/crm-backend/internal/domain"
	"github.com/hygia/crm-backend/internal/domain/entity"
	"github.com/hygia/crm-backend/internal/domain/repository"
)

var _ repository.VisitLogRepository = (*VisitLogRepo)(nil)

// Campos de ordenamiento expuestos por el API de visitas y su columna.
var visitSortColumns = map[string]string{
	"id":             "id",
	"visitAt":        "visit_at",
	"type":           "type",
	"result":         "result",
	"nextFollowUpAt": "next_follow_up_at",
}

// VisitLogRepo implementación de VisitLogRepository.
type VisitLogRepo struct {
	q Querier
}

// NewVisitLogRepository construye el adaptador.
func NewVisitLogRepository(q Querier) *VisitLogRepo {
	return &VisitLogRepo{q: q}
}

// Create persiste una visita.
func (r *VisitLogRepo) Create(visit *entity.VisitLog) error {
	query := `
		INSERT INTO visit_log (id, customer_id, visit_at, type, result, notes,
			next_follow_up_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		visit.ID, visit.CustomerID, visit.VisitAt, visit.Type, visit.Result,
		visit.Notes, visit.NextFollowUpAt, visit.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert visit log: %w", err)
	}
	return nil
}

// ListByCustomer devuelve la página de visitas del cliente y el total.
func (r *VisitLogRepo) ListByCustomer(customerID string, page repository.PageQuery) ([]*entity.VisitLog, int64, error) {
	col, ok := visitSortColumns[page.SortField]
	if !ok {
		return nil, 0, fmt.Errorf("%w: %s", domain.ErrInvalidSortField, page.SortField)
	}
	dir := "ASC"
	if page.Desc {
		dir = "DESC"
	}

	var total int64
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM visit_log WHERE customer_id = $1`, customerID,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count visit logs: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, customer_id, visit_at, type, result, notes, next_follow_up_at, created_at
		FROM visit_log WHERE customer_id = $1
		ORDER BY %s %s LIMIT $2 OFFSET $3`, col, dir)
	rows, err := r.q.Query(context.Background(), query, customerID, page.Limit, page.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list visit logs: %w", err)
	}
	defer rows.Close()

	var list []*entity.VisitLog
	for rows.Next() {
		var v entity.VisitLog
		if err := rows.Scan(
			&v.ID, &v.CustomerID, &v.VisitAt, &v.Type, &v.Result, &v.Notes,
			&v.NextFollowUpAt, &v.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan visit log: %w", err)
		}
		list = append(list, &v)
	}
	return list, total, rows.Err()
}
