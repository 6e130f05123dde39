package dto

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hygia/crm-backend/internal/domain/repository"
)

// Formatos de fecha del contrato HTTP: timestamps con offset y precisión de
// segundos (yyyy-MM-dd'T'HH:mm:ssXXX) y fechas sin hora.
const (
	dateTimeLayout = "2006-01-02T15:04:05Z07:00"
	dateLayout     = "2006-01-02"
)

// ErrorResponse cuerpo de error HTTP: {code, message}.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// DateTime timestamp con offset serializado con el patrón fijo del API.
// El formato de salida trunca a segundos; la entrada rechaza cualquier otra
// forma (incluyendo fracciones de segundo).
type DateTime struct {
	time.Time
}

// NewDateTime trunca a segundos conservando el offset.
func NewDateTime(t time.Time) DateTime {
	return DateTime{t.Truncate(time.Second)}
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.Format(dateTimeLayout))), nil
}

func (d *DateTime) UnmarshalJSON(b []byte) error {
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return fmt.Errorf("timestamp inválido: %s", string(b))
	}
	t, err := time.Parse(dateTimeLayout, s)
	if err != nil {
		return fmt.Errorf("timestamp inválido %q: se espera yyyy-MM-dd'T'HH:mm:ssXXX", s)
	}
	d.Time = t
	return nil
}

// DateOnly fecha sin hora (yyyy-MM-dd), como la fecha de factura.
type DateOnly struct {
	time.Time
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.Format(dateLayout))), nil
}

func (d *DateOnly) UnmarshalJSON(b []byte) error {
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return fmt.Errorf("fecha inválida: %s", string(b))
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("fecha inválida %q: se espera yyyy-MM-dd", s)
	}
	d.Time = t
	return nil
}

// PageRequest parámetros de paginación y ordenamiento de los listados.
// Sort viene como "<campo>,<dirección>"; la dirección solo es descendente
// cuando el token es "desc" (sin distinción de mayúsculas), cualquier otro
// token o su ausencia resulta en ascendente.
type PageRequest struct {
	Page int    `query:"page"`
	Size int    `query:"size"`
	Sort string `query:"sort"`
}

// Defaults aplica page=0 y size=20 cuando faltan o son inválidos.
func (p *PageRequest) Defaults() {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size <= 0 {
		p.Size = 20
	}
}

// Query resuelve el PageQuery del dominio. defaultSort tiene la misma forma
// "<campo>,<dirección>" y se usa completo cuando el parámetro sort está vacío.
func (p PageRequest) Query(defaultSort string) repository.PageQuery {
	sort := strings.TrimSpace(p.Sort)
	if sort == "" {
		sort = defaultSort
	}
	parts := strings.SplitN(sort, ",", 2)
	field := strings.TrimSpace(parts[0])
	if field == "" {
		field = strings.SplitN(defaultSort, ",", 2)[0]
	}
	desc := len(parts) == 2 && strings.EqualFold(strings.TrimSpace(parts[1]), "desc")
	return repository.PageQuery{
		Offset:    p.Page * p.Size,
		Limit:     p.Size,
		SortField: field,
		Desc:      desc,
	}
}

// PageMeta metadatos del envelope de página: totales más page/size ecoados.
type PageMeta struct {
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

// NewPageMeta calcula TotalPages = ceil(total/size).
func NewPageMeta(page, size int, total int64) PageMeta {
	pages := int((total + int64(size) - 1) / int64(size))
	return PageMeta{Page: page, Size: size, TotalElements: total, TotalPages: pages}
}
