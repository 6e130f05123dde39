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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `c.id, c.name_std, c.is_prospect, c.region_id, r.name, r.state,
	c.address_text, c.phone, c.email, c.payment_terms, c.notes, c.tier, c.created_at, c.updated_at`

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo cliente.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customer (id, name_std, is_prospect, region_id, address_text, phone, email,
			payment_terms, notes, tier, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.NameStd, customer.IsProspect, customer.RegionID,
		customer.AddressText, customer.Phone, customer.Email,
		customer.PaymentTerms, customer.Notes, customer.Tier,
		customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID con su región. Un id malformado se trata
// como inexistente.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	if !validUUID(id) {
		return nil, nil
	}
	query := `
		SELECT ` + customerColumns + `
		FROM customer c JOIN region r ON r.id = c.region_id
		WHERE c.id = $1`
	c, err := scanCustomer(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

// ExistsByNameStd verifica si ya hay un cliente con ese nombre estandarizado.
func (r *CustomerRepo) ExistsByNameStd(nameStd string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM customer WHERE name_std = $1)`, nameStd,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists customer by name_std: %w", err)
	}
	return exists, nil
}

// List aplica el filtro dinámico, el ordenamiento y la paginación, y devuelve
// además el total de clientes que satisfacen el filtro.
func (r *CustomerRepo) List(filter repository.CustomerFilter, page repository.PageQuery) ([]*entity.Customer, int64, error) {
	where, args := buildCustomerFilter(filter)
	orderBy, err := customerOrderBy(page)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	countQuery := `SELECT count(*) FROM customer c` + where
	if err := r.q.QueryRow(context.Background(), countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count customers: %w", err)
	}

	listQuery := `SELECT ` + customerColumns + `
		FROM customer c JOIN region r ON r.id = c.region_id` +
		where + orderBy +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	listArgs := append(append([]any{}, args...), page.Limit, page.Offset)

	rows, err := r.q.Query(context.Background(), listQuery, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var list []*entity.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, c)
	}
	return list, total, rows.Err()
}

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	var region entity.Region
	err := row.Scan(
		&c.ID, &c.NameStd, &c.IsProspect, &c.RegionID, &region.Name, &region.State,
		&c.AddressText, &c.Phone, &c.Email, &c.PaymentTerms, &c.Notes, &c.Tier,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	region.ID = c.RegionID
	c.Region = &region
	return &c, nil
}
