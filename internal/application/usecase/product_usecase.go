package usecase

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hygia/crm-backend/internal/application/dto"
	"github.com/hygia/crm-backend/internal/domain"
	"github.com/hygia/crm-backend/internal/domain/entity"
	"github.com/hygia/crm-backend/internal/domain/repository"
)

// ProductUseCase casos de uso para productos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto. Active inicia en true.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	exists, err := uc.repo.ExistsByItemCode(in.ItemCode)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrProductExists
	}

	now := time.Now()
	product := &entity.Product{
		ID:               uuid.New().String(),
		ItemCode:         in.ItemCode,
		Description:      in.Description,
		DefaultUnitPrice: in.DefaultUnitPrice,
		CompanyTag:       in.CompanyTag,
		ProductType:      in.ProductType,
		Barcode:          in.Barcode,
		Active:           true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(product); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.ErrProductExists
		}
		return nil, err
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// List devuelve todos los productos ordenados por itemCode ascendente.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	products, err := uc.repo.ListOrderByItemCode()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:               p.ID,
		ItemCode:         p.ItemCode,
		Description:      p.Description,
		DefaultUnitPrice: p.DefaultUnitPrice,
		CompanyTag:       p.CompanyTag,
		ProductType:      p.ProductType,
		Barcode:          p.Barcode,
		Active:           p.Active,
	}
}
