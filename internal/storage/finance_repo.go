package storage

import (
	"context"

	"github.com/runwayhq/backend/internal/model"
)

// FinanceRepo provides operations for the two singleton balances: the
// cash position and the other-expenses bucket. Each lives under a fixed
// key and is overwritten whole on update.
type FinanceRepo struct {
	repo
}

// NewFinanceRepo creates a new finance repository.
func NewFinanceRepo(s Store) *FinanceRepo {
	return &FinanceRepo{repo: newRepo(s)}
}

// GetCash returns the stored cash balance, or nil when none has been
// recorded yet.
func (r *FinanceRepo) GetCash(ctx context.Context) (*model.Balance, error) {
	return r.get(ctx, model.KeyCashAsset)
}

// PutCash overwrites the cash balance with the given amount.
func (r *FinanceRepo) PutCash(ctx context.Context, amount float64) (model.Balance, error) {
	return r.put(ctx, model.KeyCashAsset, amount)
}

// GetOtherExpenses returns the stored other-expenses balance, or nil
// when none has been recorded yet.
func (r *FinanceRepo) GetOtherExpenses(ctx context.Context) (*model.Balance, error) {
	return r.get(ctx, model.KeyOtherExpenses)
}

// PutOtherExpenses overwrites the other-expenses balance.
func (r *FinanceRepo) PutOtherExpenses(ctx context.Context, amount float64) (model.Balance, error) {
	return r.put(ctx, model.KeyOtherExpenses, amount)
}

func (r *FinanceRepo) get(ctx context.Context, key string) (*model.Balance, error) {
	var balance model.Balance
	if err := r.store.Get(ctx, key, &balance); err != nil {
		if IsErrKeyNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &balance, nil
}

func (r *FinanceRepo) put(ctx context.Context, key string, amount float64) (model.Balance, error) {
	balance := model.Balance{
		Amount:    amount,
		UpdatedAt: r.now().UTC(),
	}
	if err := r.store.Set(ctx, key, balance); err != nil {
		return model.Balance{}, err
	}
	return balance, nil
}
