package storage

import (
	"context"

	"github.com/runwayhq/backend/internal/model"
)

// ColleagueRepo provides operations for Colleague records.
type ColleagueRepo struct {
	repo
}

// NewColleagueRepo creates a new colleague repository.
func NewColleagueRepo(s Store) *ColleagueRepo {
	return &ColleagueRepo{repo: newRepo(s)}
}

// List retrieves all colleagues in store order.
func (r *ColleagueRepo) List(ctx context.Context) ([]model.Colleague, error) {
	return GetAllByPrefix[model.Colleague](ctx, r.store, model.PrefixColleague+":")
}

// Create adds a colleague, defaulting the role when none is given.
func (r *ColleagueRepo) Create(ctx context.Context, in model.ColleagueInput) (model.Colleague, error) {
	now := r.now().UTC()
	role := in.Role
	if role == "" {
		role = model.DefaultColleagueRole
	}

	colleague := model.Colleague{
		ID:      model.NewKey(model.PrefixColleague, now),
		Name:    in.Name,
		Email:   in.Email,
		Role:    role,
		AddedAt: now,
	}

	if err := r.store.Set(ctx, colleague.ID, colleague); err != nil {
		return model.Colleague{}, err
	}
	return colleague, nil
}
