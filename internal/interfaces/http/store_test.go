package http_test

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/hygia/crm-backend/internal/domain"
	"github.com/hygia/crm-backend/internal/domain/entity"
	"github.com/hygia/crm-backend/internal/domain/repository"
)

// memStore agrupa repos en memoria con la semántica mínima que ejercitan los
// handlers: filtros, ordenamiento validado y paginación.
type memStore struct {
	regions   *memRegionRepo
	customers *memCustomerRepo
	products  *memProductRepo
	visits    *memVisitRepo
	invoices  *memInvoiceRepo
	txRunner  *memTxRunner
}

func newMemStore() *memStore {
	s := &memStore{
		regions: &memRegionRepo{byID: map[string]*entity.Region{
			seattleID: {ID: seattleID, Name: "Seattle", State: "WA"},
			"r2":      {ID: "r2", Name: "Tacoma", State: "WA"},
		}},
		customers: &memCustomerRepo{byID: map[string]*entity.Customer{}},
		products:  &memProductRepo{byID: map[string]*entity.Product{}},
		visits:    &memVisitRepo{},
		invoices:  &memInvoiceRepo{itemsByInvoice: map[string][]*entity.InvoiceItem{}},
	}
	s.txRunner = &memTxRunner{repo: s.invoices}
	return s
}

type memRegionRepo struct {
	byID map[string]*entity.Region
}

func (m *memRegionRepo) Create(region *entity.Region) error {
	m.byID[region.ID] = region
	return nil
}

func (m *memRegionRepo) GetByID(id string) (*entity.Region, error) {
	return m.byID[id], nil
}

func (m *memRegionRepo) ListOrderByName() ([]*entity.Region, error) {
	out := make([]*entity.Region, 0, len(m.byID))
	for _, r := range m.byID {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memRegionRepo) Count() (int64, error) {
	return int64(len(m.byID)), nil
}

var memCustomerSortFields = map[string]bool{
	"id": true, "nameStd": true, "tier": true, "email": true, "phone": true, "isProspect": true,
}

type memCustomerRepo struct {
	byID    map[string]*entity.Customer
	created []*entity.Customer
}

func (m *memCustomerRepo) Create(customer *entity.Customer) error {
	m.byID[customer.ID] = customer
	m.created = append(m.created, customer)
	return nil
}

func (m *memCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return m.byID[id], nil
}

func (m *memCustomerRepo) ExistsByNameStd(nameStd string) (bool, error) {
	for _, c := range m.byID {
		if c.NameStd == nameStd {
			return true, nil
		}
	}
	return false, nil
}

func (m *memCustomerRepo) List(filter repository.CustomerFilter, page repository.PageQuery) ([]*entity.Customer, int64, error) {
	if !memCustomerSortFields[page.SortField] {
		return nil, 0, fmt.Errorf("%w: %s", domain.ErrInvalidSortField, page.SortField)
	}
	var all []*entity.Customer
	for _, c := range m.byID {
		if filter.RegionID != "" && c.RegionID != filter.RegionID {
			continue
		}
		if filter.Tier != "" && c.Tier != filter.Tier {
			continue
		}
		if filter.IsProspect != nil && c.IsProspect != *filter.IsProspect {
			continue
		}
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(c.NameStd), needle) &&
				!strings.Contains(strings.ToLower(c.Phone), needle) {
				continue
			}
		}
		all = append(all, c)
	}
	sort.Slice(all, func(i, j int) bool {
		if page.Desc {
			return all[i].NameStd > all[j].NameStd
		}
		return all[i].NameStd < all[j].NameStd
	})
	total := int64(len(all))
	if page.Offset >= len(all) {
		return nil, total, nil
	}
	end := page.Offset + page.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[page.Offset:end], total, nil
}

type memProductRepo struct {
	byID map[string]*entity.Product
}

func (m *memProductRepo) Create(product *entity.Product) error {
	m.byID[product.ID] = product
	return nil
}

func (m *memProductRepo) GetByID(id string) (*entity.Product, error) {
	return m.byID[id], nil
}

func (m *memProductRepo) ExistsByItemCode(itemCode string) (bool, error) {
	for _, p := range m.byID {
		if p.ItemCode == itemCode {
			return true, nil
		}
	}
	return false, nil
}

func (m *memProductRepo) ListOrderByItemCode() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(m.byID))
	for _, p := range m.byID {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemCode < out[j].ItemCode })
	return out, nil
}

var memVisitSortFields = map[string]bool{
	"id": true, "visitAt": true, "type": true, "result": true, "nextFollowUpAt": true,
}

type memVisitRepo struct {
	visits []*entity.VisitLog
}

func (m *memVisitRepo) Create(visit *entity.VisitLog) error {
	m.visits = append(m.visits, visit)
	return nil
}

func (m *memVisitRepo) ListByCustomer(customerID string, page repository.PageQuery) ([]*entity.VisitLog, int64, error) {
	if !memVisitSortFields[page.SortField] {
		return nil, 0, fmt.Errorf("%w: %s", domain.ErrInvalidSortField, page.SortField)
	}
	var all []*entity.VisitLog
	for _, v := range m.visits {
		if v.CustomerID == customerID {
			all = append(all, v)
		}
	}
	sort.Slice(all, func(i, j int) bool {
		if page.Desc {
			return all[i].VisitAt.After(all[j].VisitAt)
		}
		return all[i].VisitAt.Before(all[j].VisitAt)
	})
	total := int64(len(all))
	if page.Offset >= len(all) {
		return nil, total, nil
	}
	end := page.Offset + page.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[page.Offset:end], total, nil
}

type memInvoiceRepo struct {
	invoices       []*entity.Invoice
	itemsByInvoice map[string][]*entity.InvoiceItem
}

func (m *memInvoiceRepo) Create(invoice *entity.Invoice) error {
	for _, inv := range m.invoices {
		if inv.InvoiceNumber == invoice.InvoiceNumber && inv.CustomerID == invoice.CustomerID {
			return domain.ErrDuplicate
		}
	}
	m.invoices = append(m.invoices, invoice)
	return nil
}

func (m *memInvoiceRepo) CreateItem(item *entity.InvoiceItem) error {
	m.itemsByInvoice[item.InvoiceID] = append(m.itemsByInvoice[item.InvoiceID], item)
	return nil
}

func (m *memInvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	for _, inv := range m.invoices {
		if inv.ID == id {
			return inv, nil
		}
	}
	return nil, nil
}

func (m *memInvoiceRepo) ListByCustomer(customerID string) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, inv := range m.invoices {
		if inv.CustomerID == customerID {
			out = append(out, inv)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].InvoiceDate.After(out[j].InvoiceDate) })
	return out, nil
}

func (m *memInvoiceRepo) ItemsByInvoice(invoiceID string) ([]*entity.InvoiceItem, error) {
	return m.itemsByInvoice[invoiceID], nil
}

type memTxRunner struct {
	repo *memInvoiceRepo
}

func (m *memTxRunner) Run(ctx context.Context, fn func(invoiceRepo repository.InvoiceRepository) error) error {
	return fn(m.repo)
}
