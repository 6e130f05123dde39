package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrRegionNotFound   = errors.New("región no encontrada")
	ErrCustomerNotFound = errors.New("cliente no encontrado")
	ErrProductNotFound  = errors.New("producto no encontrado")
	ErrInvoiceNotFound  = errors.New("factura no encontrada")
	ErrCustomerExists   = errors.New("ya existe un cliente con ese nombre")
	ErrProductExists    = errors.New("ya existe un producto con ese código")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrInvalidTier      = errors.New("tier inválido")
	ErrInvalidSortField = errors.New("campo de ordenamiento no soportado")
	ErrDuplicate        = errors.New("recurso duplicado")

	// ErrFollowUpBeforeVisit: nextFollowUpAt no puede ser anterior a visitAt.
	ErrFollowUpBeforeVisit = errors.New("nextFollowUpAt debe ser mayor o igual a visitAt")
)

// UnitPriceRequiredError indica que una línea de factura no trae precio unitario
// y el producto tampoco tiene precio por defecto. Conserva el código del
// producto para que el mensaje HTTP lo nombre.
type UnitPriceRequiredError struct {
	ItemCode string
}

func (e *UnitPriceRequiredError) Error() string {
	return fmt.Sprintf("el producto %s no tiene precio unitario ni precio por defecto", e.ItemCode)
}

// ProductNotFoundError conserva el ID del producto inexistente para que el
// mensaje HTTP lo nombre. Se desenvuelve en ErrProductNotFound.
type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("producto %s no encontrado", e.ProductID)
}

func (e *ProductNotFoundError) Unwrap() error { return ErrProductNotFound }
