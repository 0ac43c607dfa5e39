package service

import (
	"context"

	"github.com/Enstrokes/whisk-whisk-pastry-shop/internal/apierror"
	"github.com/Enstrokes/whisk-whisk-pastry-shop/internal/dto"
	"github.com/Enstrokes/whisk-whisk-pastry-shop/internal/model"
	"github.com/Enstrokes/whisk-whisk-pastry-shop/internal/repository"

	"github.com/google/uuid"
)

// CustomerService owns customer records and the resolution step of invoice
// issuance.
type CustomerService interface {
	List(ctx context.Context, skip, limit int) (*dto.CustomerListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.CustomerResponse, error)

	// Resolve returns the canonical identity for an invoice draft: either the
	// referenced existing customer, or a freshly inserted one built from the
	// inline fields. Inline submissions always insert — there is deliberately
	// no dedup against existing customers with the same name/phone, so
	// duplicates can and do accumulate.
	Resolve(ctx context.Context, draft dto.InvoiceDraft) (uuid.UUID, string, error)
}

type customerService struct {
	repo repository.CustomerRepository
}

func NewCustomerService(repo repository.CustomerRepository) CustomerService {
	return &customerService{repo: repo}
}

func (s *customerService) List(ctx context.Context, skip, limit int) (*dto.CustomerListResponse, error) {
	if limit < 1 {
		limit = 10
	}
	customers, total, err := s.repo.List(ctx, skip, limit)
	if err != nil {
		return nil, err
	}
	results := make([]dto.CustomerResponse, 0, len(customers))
	for i := range customers {
		results = append(results, *customerToResponse(&customers[i]))
	}
	return &dto.CustomerListResponse{Results: results, Total: total}, nil
}

func (s *customerService) GetByID(ctx context.Context, id uuid.UUID) (*dto.CustomerResponse, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Customer not found")
	}
	return customerToResponse(customer), nil
}

func (s *customerService) Resolve(ctx context.Context, draft dto.InvoiceDraft) (uuid.UUID, string, error) {
	if strVal(draft.CustomerID) != "" {
		id, err := uuid.Parse(*draft.CustomerID)
		if err != nil {
			return uuid.Nil, "", apierror.InvalidInput("Invalid customer id")
		}
		customer, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return uuid.Nil, "", apierror.NotFound("Customer not found")
		}
		return customer.ID, customer.Name, nil
	}

	// Inline path. Some clients still send "phone" instead of "customerPhone".
	phone := strVal(draft.CustomerPhone)
	if phone == "" {
		phone = strVal(draft.Phone)
	}
	name := strVal(draft.CustomerName)
	if name == "" || phone == "" {
		return uuid.Nil, "", apierror.InvalidInput("Missing new customer details (name and phone required)")
	}

	customer := &model.Customer{
		Name:        name,
		Email:       strVal(draft.CustomerEmail),
		Phone:       phone,
		Address:     strVal(draft.CustomerAddress),
		Birthday:    strVal(draft.CustomerBirthday),
		Anniversary: strVal(draft.CustomerAnniversary),
	}
	if err := s.repo.Create(ctx, customer); err != nil {
		return uuid.Nil, "", err
	}
	return customer.ID, customer.Name, nil
}

func customerToResponse(c *model.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		Email:       c.Email,
		Phone:       c.Phone,
		Address:     c.Address,
		Birthday:    c.Birthday,
		Anniversary: c.Anniversary,
	}
}

func strVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
