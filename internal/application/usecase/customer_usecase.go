package usecase

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hygia/crm-backend/internal/application/dto"
	"github.com/hygia/crm-backend/internal/domain"
	"github.com/hygia/crm-backend/internal/domain/entity"
	"github.com/hygia/crm-backend/internal/domain/repository"
)

// Ordenamiento por defecto del listado de clientes.
const defaultCustomerSort = "nameStd,asc"

// CustomerUseCase casos de uso para clientes del CRM.
type CustomerUseCase struct {
	customerRepo repository.CustomerRepository
	regionRepo   repository.RegionRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(customerRepo repository.CustomerRepository, regionRepo repository.RegionRepository) *CustomerUseCase {
	return &CustomerUseCase{customerRepo: customerRepo, regionRepo: regionRepo}
}

// Create crea un cliente. El isProspect del request se ignora siempre: se
// deriva del tier antes de persistir (RecomputeProspect). Tier ausente
// aplica el default "Potential".
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	exists, err := uc.customerRepo.ExistsByNameStd(in.NameStd)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrCustomerExists
	}

	region, err := uc.regionRepo.GetByID(in.RegionID)
	if err != nil {
		return nil, err
	}
	if region == nil {
		return nil, domain.ErrRegionNotFound
	}

	tier := in.Tier
	if tier == "" {
		tier = entity.TierPotential
	}
	if !entity.ValidTier(tier) {
		return nil, domain.ErrInvalidTier
	}

	now := time.Now()
	customer := &entity.Customer{
		ID:           uuid.New().String(),
		NameStd:      in.NameStd,
		RegionID:     region.ID,
		Region:       region,
		AddressText:  in.AddressText,
		Phone:        in.Phone,
		Email:        in.Email,
		PaymentTerms: in.PaymentTerms,
		Notes:        in.Notes,
		Tier:         tier,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	customer.RecomputeProspect()

	if err := uc.customerRepo.Create(customer); err != nil {
		// Carrera contra otro create con el mismo nombre: el constraint único
		// decide y el perdedor recibe el conflicto.
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.ErrCustomerExists
		}
		return nil, err
	}
	resp := toCustomerResponse(customer)
	return &resp, nil
}

// List lista clientes aplicando el filtro dinámico y la paginación.
// El tier del filtro se valida contra el mismo conjunto que la creación.
func (uc *CustomerUseCase) List(q dto.CustomerListQuery, pr dto.PageRequest) (*dto.CustomerPage, error) {
	if q.Tier != "" && !entity.ValidTier(q.Tier) {
		return nil, domain.ErrInvalidTier
	}

	filter := repository.CustomerFilter{
		RegionID:    q.RegionID,
		Tier:        q.Tier,
		IsProspect:  q.IsProspect,
		Search:      q.Q,
		FollowupDue: strings.EqualFold(q.Followup, "due"),
	}

	pr.Defaults()
	customers, total, err := uc.customerRepo.List(filter, pr.Query(defaultCustomerSort))
	if err != nil {
		return nil, err
	}

	content := make([]dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		content = append(content, toCustomerResponse(c))
	}
	return &dto.CustomerPage{
		Content:  content,
		PageMeta: dto.NewPageMeta(pr.Page, pr.Size, total),
	}, nil
}

func toCustomerResponse(c *entity.Customer) dto.CustomerResponse {
	resp := dto.CustomerResponse{
		ID:           c.ID,
		NameStd:      c.NameStd,
		IsProspect:   c.IsProspect,
		AddressText:  c.AddressText,
		Phone:        c.Phone,
		Email:        c.Email,
		PaymentTerms: c.PaymentTerms,
		Tier:         c.Tier,
	}
	if c.Region != nil {
		resp.Region = &dto.CustomerRegionRef{ID: c.Region.ID, Name: c.Region.Name}
	}
	return resp
}
