package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/hygia/crm-backend/internal/application/dto"
	"github.com/hygia/crm-backend/internal/domain"
	"github.com/hygia/crm-backend/internal/domain/entity"
	"github.com/hygia/crm-backend/internal/domain/repository"
)

// Ordenamiento por defecto del listado de visitas: la más reciente primero.
const defaultVisitSort = "visitAt,desc"

// VisitUseCase casos de uso para bitácora de visitas.
type VisitUseCase struct {
	visitRepo    repository.VisitLogRepository
	customerRepo repository.CustomerRepository
}

// NewVisitUseCase construye el caso de uso.
func NewVisitUseCase(visitRepo repository.VisitLogRepository, customerRepo repository.CustomerRepository) *VisitUseCase {
	return &VisitUseCase{visitRepo: visitRepo, customerRepo: customerRepo}
}

// Create registra una visita para el cliente. Si nextFollowUpAt está presente
// debe ser mayor o igual a visitAt (timestamps iguales son válidos).
func (uc *VisitUseCase) Create(customerID string, in dto.CreateVisitRequest) (*dto.VisitResponse, error) {
	if in.VisitAt == nil {
		return nil, domain.ErrInvalidInput
	}
	if in.NextFollowUpAt != nil && in.NextFollowUpAt.Time.Before(in.VisitAt.Time) {
		return nil, domain.ErrFollowUpBeforeVisit
	}

	customer, err := uc.customerRepo.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrCustomerNotFound
	}

	visit := &entity.VisitLog{
		ID:         uuid.New().String(),
		CustomerID: customer.ID,
		VisitAt:    in.VisitAt.Time,
		Type:       in.Type,
		Result:     in.Result,
		Notes:      in.Notes,
		CreatedAt:  time.Now(),
	}
	if in.NextFollowUpAt != nil {
		t := in.NextFollowUpAt.Time
		visit.NextFollowUpAt = &t
	}
	if err := uc.visitRepo.Create(visit); err != nil {
		return nil, err
	}
	resp := toVisitResponse(visit)
	return &resp, nil
}

// List lista las visitas del cliente paginadas, por defecto visitAt descendente.
func (uc *VisitUseCase) List(customerID string, pr dto.PageRequest) (*dto.VisitPage, error) {
	customer, err := uc.customerRepo.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrCustomerNotFound
	}

	pr.Defaults()
	visits, total, err := uc.visitRepo.ListByCustomer(customerID, pr.Query(defaultVisitSort))
	if err != nil {
		return nil, err
	}

	content := make([]dto.VisitResponse, 0, len(visits))
	for _, v := range visits {
		content = append(content, toVisitResponse(v))
	}
	return &dto.VisitPage{
		Content:  content,
		PageMeta: dto.NewPageMeta(pr.Page, pr.Size, total),
	}, nil
}

func toVisitResponse(v *entity.VisitLog) dto.VisitResponse {
	resp := dto.VisitResponse{
		ID:      v.ID,
		VisitAt: dto.NewDateTime(v.VisitAt),
		Type:    v.Type,
		Result:  v.Result,
		Notes:   v.Notes,
	}
	if v.NextFollowUpAt != nil {
		dt := dto.NewDateTime(*v.NextFollowUpAt)
		resp.NextFollowUpAt = &dt
	}
	return resp
}
