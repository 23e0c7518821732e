package storage

import (
	"context"
	"sort"

	"github.com/runwayhq/backend/internal/model"
)

// CustomerRepo provides operations for Customer records.
type CustomerRepo struct {
	repo
}

// NewCustomerRepo creates a new customer repository.
func NewCustomerRepo(s Store) *CustomerRepo {
	return &CustomerRepo{repo: newRepo(s)}
}

// List retrieves all customers, newest first.
func (r *CustomerRepo) List(ctx context.Context) ([]model.Customer, error) {
	customers, err := GetAllByPrefix[model.Customer](ctx, r.store, model.PrefixCustomer+":")
	if err != nil {
		return nil, err
	}
	sort.SliceStable(customers, func(i, j int) bool {
		return customers[i].CreatedAt.After(customers[j].CreatedAt)
	})
	return customers, nil
}

// Create adds a customer, active by default, with the legal name falling
// back to the display name and the join date stamped to the creation day.
func (r *CustomerRepo) Create(ctx context.Context, in model.CustomerInput) (model.Customer, error) {
	now := r.now().UTC()

	customer := model.Customer{
		ID:             model.NewKey(model.PrefixCustomer, now),
		Name:           in.Name,
		LegalName:      in.LegalName,
		BillingAddress: in.BillingAddress,
		Country:        in.Country,
		Email:          in.Email,
		Phone:          in.Phone,
		Status:         in.Status,
		JoinDate:       model.DateOnly(now),
		IsActive:       true,
		MonthlyRevenue: in.MonthlyRevenue.Float(),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if customer.LegalName == "" {
		customer.LegalName = in.Name
	}
	if customer.Country == "" {
		customer.Country = model.DefaultCustomerCountry
	}
	if customer.Status == "" {
		customer.Status = model.DefaultCustomerStatus
	}

	if err := r.store.Set(ctx, customer.ID, customer); err != nil {
		return model.Customer{}, err
	}
	return customer, nil
}

// Update merges the payload over an existing customer. Omitted optional
// fields keep their prior values, except the legal name, which falls
// back to the incoming display name. Deactivating stamps LastActiveDate
// with the current day. Returns ErrKeyNotFound when the customer does
// not exist.
func (r *CustomerRepo) Update(ctx context.Context, id string, in model.CustomerInput) (model.Customer, error) {
	var customer model.Customer
	if err := r.store.Get(ctx, id, &customer); err != nil {
		return model.Customer{}, err
	}

	now := r.now().UTC()
	customer.Name = in.Name
	customer.Email = in.Email
	customer.MonthlyRevenue = in.MonthlyRevenue.Float()
	if in.LegalName != "" {
		customer.LegalName = in.LegalName
	} else {
		customer.LegalName = in.Name
	}
	if in.BillingAddress != "" {
		customer.BillingAddress = in.BillingAddress
	}
	if in.Country != "" {
		customer.Country = in.Country
	}
	if in.Phone != "" {
		customer.Phone = in.Phone
	}
	if in.Status != "" {
		customer.Status = in.Status
	}
	if in.IsActive != nil {
		customer.IsActive = *in.IsActive
		if !*in.IsActive {
			customer.LastActiveDate = model.DateOnly(now)
		}
	}
	customer.UpdatedAt = now

	if err := r.store.Set(ctx, id, customer); err != nil {
		return model.Customer{}, err
	}
	return customer, nil
}

// Delete removes a customer unconditionally.
func (r *CustomerRepo) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, id)
}
