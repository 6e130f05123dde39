package repository

import "github.com/hygia/crm-backend/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	ExistsByItemCode(itemCode string) (bool, error)
	ListOrderByItemCode() ([]*entity.Product, error)
}
