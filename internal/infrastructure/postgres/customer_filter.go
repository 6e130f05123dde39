package postgres

import (
	"fmt"
	"strings"

	"github.com/hygia/crm-backend/internal/domain"
	"github.com/hygia/crm-backend/internal/domain/repository"
)

// Campos de ordenamiento expuestos por el API de clientes y su columna.
// Un campo fuera de esta lista se rechaza con domain.ErrInvalidSortField:
// mejor un 400 explícito que heredar el error del motor.
var customerSortColumns = map[string]string{
	"id":         "c.id",
	"nameStd":    "c.name_std",
	"tier":       "c.tier",
	"email":      "c.email",
	"phone":      "c.phone",
	"isProspect": "c.is_prospect",
}

// buildCustomerFilter compone la cláusula WHERE a partir de los criterios
// presentes del filtro (AND entre criterios, OR dentro de la búsqueda de
// texto). Filtro vacío devuelve cláusula vacía. La condición de follow-up usa
// EXISTS sobre visit_log para conservar semántica de conjunto: un cliente con
// varias visitas vencidas aparece una sola vez.
func buildCustomerFilter(f repository.CustomerFilter) (string, []any) {
	var clauses []string
	var args []any

	if f.RegionID != "" {
		if validUUID(f.RegionID) {
			args = append(args, f.RegionID)
			clauses = append(clauses, fmt.Sprintf("c.region_id = $%d", len(args)))
		} else {
			// Región malformada: ninguna fila coincide, igual que una región
			// válida pero inexistente.
			clauses = append(clauses, "FALSE")
		}
	}
	if f.Tier != "" {
		args = append(args, f.Tier)
		clauses = append(clauses, fmt.Sprintf("c.tier = $%d", len(args)))
	}
	if f.IsProspect != nil {
		args = append(args, *f.IsProspect)
		clauses = append(clauses, fmt.Sprintf("c.is_prospect = $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, "%"+strings.ToLower(f.Search)+"%")
		n := len(args)
		clauses = append(clauses, fmt.Sprintf(
			"(lower(c.name_std) LIKE $%d OR (c.phone IS NOT NULL AND lower(c.phone) LIKE $%d))", n, n))
	}
	if f.FollowupDue {
		clauses = append(clauses,
			"EXISTS (SELECT 1 FROM visit_log v WHERE v.customer_id = c.id"+
				" AND v.next_follow_up_at IS NOT NULL AND v.next_follow_up_at <= now())")
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

// customerOrderBy traduce el campo de ordenamiento del API a la cláusula
// ORDER BY, validando contra la lista de columnas permitidas.
func customerOrderBy(page repository.PageQuery) (string, error) {
	col, ok := customerSortColumns[page.SortField]
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrInvalidSortField, page.SortField)
	}
	dir := "ASC"
	if page.Desc {
		dir = "DESC"
	}
	return fmt.Sprintf(" ORDER BY %s %s", col, dir), nil
}
