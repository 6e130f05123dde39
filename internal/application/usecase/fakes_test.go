package usecase_test

import (
	"github.com/hygia/crm-backend/internal/domain/entity"
	"github.com/hygia/crm-backend/internal/domain/repository"
)

// Fakes en memoria de los puertos de persistencia.

type fakeCustomerRepo struct {
	byID       map[string]*entity.Customer
	names      map[string]bool
	created    []*entity.Customer
	createErr  error
	lastFilter repository.CustomerFilter
	lastPage   repository.PageQuery
	listResult []*entity.Customer
	listTotal  int64
	listCalled bool
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{byID: map[string]*entity.Customer{}, names: map[string]bool{}}
}

func (f *fakeCustomerRepo) Create(customer *entity.Customer) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, customer)
	f.byID[customer.ID] = customer
	f.names[customer.NameStd] = true
	return nil
}

func (f *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return f.byID[id], nil
}

func (f *fakeCustomerRepo) ExistsByNameStd(nameStd string) (bool, error) {
	return f.names[nameStd], nil
}

func (f *fakeCustomerRepo) List(filter repository.CustomerFilter, page repository.PageQuery) ([]*entity.Customer, int64, error) {
	f.listCalled = true
	f.lastFilter = filter
	f.lastPage = page
	return f.listResult, f.listTotal, nil
}

type fakeRegionRepo struct {
	byID map[string]*entity.Region
}

func newFakeRegionRepo(regions ...*entity.Region) *fakeRegionRepo {
	f := &fakeRegionRepo{byID: map[string]*entity.Region{}}
	for _, r := range regions {
		f.byID[r.ID] = r
	}
	return f
}

func (f *fakeRegionRepo) Create(region *entity.Region) error {
	f.byID[region.ID] = region
	return nil
}

func (f *fakeRegionRepo) GetByID(id string) (*entity.Region, error) {
	return f.byID[id], nil
}

func (f *fakeRegionRepo) ListOrderByName() ([]*entity.Region, error) {
	out := make([]*entity.Region, 0, len(f.byID))
	for _, r := range f.byID {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRegionRepo) Count() (int64, error) {
	return int64(len(f.byID)), nil
}

type fakeProductRepo struct {
	byID      map[string]*entity.Product
	codes     map[string]bool
	created   []*entity.Product
	createErr error
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{byID: map[string]*entity.Product{}, codes: map[string]bool{}}
}

func (f *fakeProductRepo) Create(product *entity.Product) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, product)
	f.byID[product.ID] = product
	f.codes[product.ItemCode] = true
	return nil
}

func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return f.byID[id], nil
}

func (f *fakeProductRepo) ExistsByItemCode(itemCode string) (bool, error) {
	return f.codes[itemCode], nil
}

func (f *fakeProductRepo) ListOrderByItemCode() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(f.byID))
	for _, p := range f.byID {
		out = append(out, p)
	}
	return out, nil
}

type fakeVisitRepo struct {
	created    []*entity.VisitLog
	lastPage   repository.PageQuery
	listResult []*entity.VisitLog
	listTotal  int64
}

func (f *fakeVisitRepo) Create(visit *entity.VisitLog) error {
	f.created = append(f.created, visit)
	return nil
}

func (f *fakeVisitRepo) ListByCustomer(customerID string, page repository.PageQuery) ([]*entity.VisitLog, int64, error) {
	f.lastPage = page
	return f.listResult, f.listTotal, nil
}
