package entity

import (
	"strings"
	"time"
)

// Tiers comerciales válidos. Conjunto único compartido: la validación de
// creación y la de filtros usan exactamente esta lista.
const (
	TierA         = "A"
	TierB         = "B"
	TierC         = "C"
	TierPotential = "Potential"
)

// ValidTier verifica pertenencia al conjunto {A, B, C, Potential}
// (sensible a mayúsculas, como el valor almacenado).
func ValidTier(tier string) bool {
	switch tier {
	case TierA, TierB, TierC, TierPotential:
		return true
	}
	return false
}

// Customer representa un cliente del CRM.
// IsProspect es derivado de Tier y nunca se acepta del cliente HTTP.
type Customer struct {
	ID           string
	NameStd      string // nombre estandarizado, único
	IsProspect   bool
	RegionID     string
	Region       *Region // poblado por el repositorio en lecturas
	AddressText  string
	Phone        string
	Email        string
	PaymentTerms string
	Notes        string
	Tier         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RecomputeProspect deriva IsProspect a partir de Tier. Debe invocarse en toda
// ruta que persista un Customer (creación hoy; cualquier actualización futura),
// igual que un hook de ciclo de vida: IsProspect = (Tier == "Potential"),
// comparación sin distinción de mayúsculas. Tier vacío deriva en false.
func (c *Customer) RecomputeProspect() {
	c.IsProspect = strings.EqualFold(c.Tier, TierPotential)
}
