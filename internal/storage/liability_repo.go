package storage

import (
	"context"
	"sort"

	"github.com/runwayhq/backend/internal/model"
)

// LiabilityRepo provides operations for Liability records.
type LiabilityRepo struct {
	repo
}

// NewLiabilityRepo creates a new liability repository.
func NewLiabilityRepo(s Store) *LiabilityRepo {
	return &LiabilityRepo{repo: newRepo(s)}
}

// List retrieves all liabilities, newest first.
func (r *LiabilityRepo) List(ctx context.Context) ([]model.Liability, error) {
	liabilities, err := GetAllByPrefix[model.Liability](ctx, r.store, model.PrefixLiability+":")
	if err != nil {
		return nil, err
	}
	sort.SliceStable(liabilities, func(i, j int) bool {
		return liabilities[i].CreatedAt.After(liabilities[j].CreatedAt)
	})
	return liabilities, nil
}

// Create adds a liability. CreatedAt and UpdatedAt start equal.
func (r *LiabilityRepo) Create(ctx context.Context, in model.ValuationInput) (model.Liability, error) {
	now := r.now().UTC()

	liability := model.Liability{
		ID:        model.NewKey(model.PrefixLiability, now),
		Name:      in.Name,
		Value:     in.Value.Float(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := r.store.Set(ctx, liability.ID, liability); err != nil {
		return model.Liability{}, err
	}
	return liability, nil
}

// Update merges the payload over an existing liability. Returns
// ErrKeyNotFound when the liability does not exist.
func (r *LiabilityRepo) Update(ctx context.Context, id string, in model.ValuationInput) (model.Liability, error) {
	var liability model.Liability
	if err := r.store.Get(ctx, id, &liability); err != nil {
		return model.Liability{}, err
	}

	liability.Name = in.Name
	liability.Value = in.Value.Float()
	liability.UpdatedAt = r.now().UTC()

	if err := r.store.Set(ctx, id, liability); err != nil {
		return model.Liability{}, err
	}
	return liability, nil
}

// Delete removes a liability unconditionally.
func (r *LiabilityRepo) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, id)
}
