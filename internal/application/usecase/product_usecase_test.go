package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/hygia/crm-backend/internal/application/dto"
	"github.com/hygia/crm-backend/internal/application/usecase"
	"github.com/hygia/crm-backend/internal/domain"
)

func TestProductCreate_ActivoPorDefecto(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	price := decimal.RequireFromString("15.50")
	out, err := uc.Create(dto.CreateProductRequest{
		ItemCode:         "SKU-001",
		Description:      "Guantes de nitrilo",
		DefaultUnitPrice: &price,
	})
	require.NoError(t, err)
	assert.True(t, out.Active)
	require.NotNil(t, out.DefaultUnitPrice)
	assert.True(t, out.DefaultUnitPrice.Equal(price))
	assert.NotEmpty(t, out.ID)
}

func TestProductCreate_SinPrecioPorDefectoEsValido(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	out, err := uc.Create(dto.CreateProductRequest{ItemCode: "SKU-002"})
	require.NoError(t, err)
	assert.Nil(t, out.DefaultUnitPrice)
}

func TestProductCreate_CodigoDuplicado(t *testing.T) {
	repo := newFakeProductRepo()
	repo.codes["SKU-001"] = true
	uc := usecase.NewProductUseCase(repo)

	_, err := uc.Create(dto.CreateProductRequest{ItemCode: "SKU-001"})
	assert.ErrorIs(t, err, domain.ErrProductExists)
	assert.Empty(t, repo.created)
}

func TestProductCreate_CarreraDeDuplicadoEnInsert(t *testing.T) {
	repo := newFakeProductRepo()
	repo.createErr = domain.ErrDuplicate
	uc := usecase.NewProductUseCase(repo)

	_, err := uc.Create(dto.CreateProductRequest{ItemCode: "SKU-001"})
	assert.ErrorIs(t, err, domain.ErrProductExists)
}
