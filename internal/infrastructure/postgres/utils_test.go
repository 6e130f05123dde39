package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/hygia/crm-backend/internal/domain/repository"
)

func TestIsUniqueViolation(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505"}
	assert.True(t, isUniqueViolation(unique))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert customer: %w", unique)),
		"también detecta el error envuelto")

	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}), "foreign key no es unique")
	assert.False(t, isUniqueViolation(errors.New("otro error")))
}

func TestValidUUID(t *testing.T) {
	assert.True(t, validUUID("7b6a1c1e-0000-4000-8000-000000000001"))
	assert.False(t, validUUID("no-existe"))
	assert.False(t, validUUID(""))
	assert.False(t, validUUID("7b6a1c1e-0000-4000-8000"))
}

// Los repos se construyen con Querier nil: si el guard de id malformado no
// corta antes de consultar, el test entra en pánico al tocar la conexión.
func TestGetByID_IDMalformadoSeTrataComoInexistente(t *testing.T) {
	customer, err := NewCustomerRepository(nil).GetByID("no-existe")
	require.NoError(t, err)
	assert.Nil(t, customer)

	product, err := NewProductRepository(nil).GetByID("no-existe")
	require.NoError(t, err)
	assert.Nil(t, product)

	invoice, err := NewInvoiceRepository(nil).GetByID("no-existe")
	require.NoError(t, err)
	assert.Nil(t, invoice)

	region, err := NewRegionRepository(nil).GetByID("no-existe")
	require.NoError(t, err)
	assert.Nil(t, region)
}

func TestBuildCustomerFilter_RegionMalformadaNoCoincideConNada(t *testing.T) {
	where, args := buildCustomerFilter(repository.CustomerFilter{RegionID: "no-existe"})
	assert.Equal(t, " WHERE FALSE", where)
	assert.Empty(t, args, "el valor malformado nunca llega como argumento SQL")
}
