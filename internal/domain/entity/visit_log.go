package entity

import "time"

// VisitLog representa una visita comercial a un cliente.
// NextFollowUpAt es opcional; si ambos timestamps están presentes debe cumplirse
// NextFollowUpAt >= VisitAt (se valida al crear).
type VisitLog struct {
	ID             string
	CustomerID     string
	VisitAt        time.Time // con offset, precisión de segundos
	Type           string
	Result         string
	Notes          string
	NextFollowUpAt *time.Time
	CreatedAt      time.Time
}
