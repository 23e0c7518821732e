package storage

import (
	"context"
	"sort"

	"github.com/runwayhq/backend/internal/model"
)

// AssetRepo provides operations for Asset records.
type AssetRepo struct {
	repo
}

// NewAssetRepo creates a new asset repository.
func NewAssetRepo(s Store) *AssetRepo {
	return &AssetRepo{repo: newRepo(s)}
}

// List retrieves all assets, newest first.
func (r *AssetRepo) List(ctx context.Context) ([]model.Asset, error) {
	assets, err := GetAllByPrefix[model.Asset](ctx, r.store, model.PrefixAsset+":")
	if err != nil {
		return nil, err
	}
	sort.SliceStable(assets, func(i, j int) bool {
		return assets[i].CreatedAt.After(assets[j].CreatedAt)
	})
	return assets, nil
}

// Create adds an asset. CreatedAt and UpdatedAt start equal.
func (r *AssetRepo) Create(ctx context.Context, in model.ValuationInput) (model.Asset, error) {
	now := r.now().UTC()

	asset := model.Asset{
		ID:        model.NewKey(model.PrefixAsset, now),
		Name:      in.Name,
		Value:     in.Value.Float(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := r.store.Set(ctx, asset.ID, asset); err != nil {
		return model.Asset{}, err
	}
	return asset, nil
}

// Update merges the payload over an existing asset and refreshes
// UpdatedAt. Returns ErrKeyNotFound when the asset does not exist;
// nothing is written in that case.
func (r *AssetRepo) Update(ctx context.Context, id string, in model.ValuationInput) (model.Asset, error) {
	var asset model.Asset
	if err := r.store.Get(ctx, id, &asset); err != nil {
		return model.Asset{}, err
	}

	asset.Name = in.Name
	asset.Value = in.Value.Float()
	asset.UpdatedAt = r.now().UTC()

	if err := r.store.Set(ctx, id, asset); err != nil {
		return model.Asset{}, err
	}
	return asset, nil
}

// Delete removes an asset unconditionally; deleting an unknown id
// succeeds.
func (r *AssetRepo) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, id)
}
