package repository

import "github.com/hygia/crm-backend/internal/domain/entity"

// CustomerFilter combinación arbitraria de criterios opcionales para el listado
// de clientes. Campo en cero = sin restricción. Los criterios presentes se
// combinan con AND; dentro de Search aplica OR (nameStd o phone).
type CustomerFilter struct {
	RegionID    string
	Tier        string // ya validado contra el conjunto de tiers por el caller
	IsProspect  *bool
	Search      string // substring, sin distinción de mayúsculas
	FollowupDue bool   // clientes con alguna visita cuyo next_follow_up_at <= now()
}

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	ExistsByNameStd(nameStd string) (bool, error)
	// List aplica el filtro dinámico y la paginación; devuelve la página y el
	// total de elementos que satisfacen el filtro (sin paginar). El resultado
	// nunca duplica clientes aunque existan varias visitas que califiquen.
	List(filter CustomerFilter, page PageQuery) ([]*entity.Customer, int64, error)
}
