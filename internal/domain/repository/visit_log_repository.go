package repository

import "github.com/hygia/crm-backend/internal/domain/entity"

// VisitLogRepository define el puerto de persistencia para VisitLog.
type VisitLogRepository interface {
	Create(visit *entity.VisitLog) error
	// ListByCustomer devuelve la página de visitas del cliente y el total.
	ListByCustomer(customerID string, page PageQuery) ([]*entity.VisitLog, int64, error)
}
