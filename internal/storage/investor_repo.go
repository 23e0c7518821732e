package storage

import (
	"context"
	"sort"
	"time"

	"github.com/runwayhq/backend/internal/model"
)

// InvestorRepo provides operations for Investor records. Investors are
// append-only: rounds are recorded, never edited or removed.
type InvestorRepo struct {
	repo
}

// NewInvestorRepo creates a new investor repository.
func NewInvestorRepo(s Store) *InvestorRepo {
	return &InvestorRepo{repo: newRepo(s)}
}

// List retrieves all investors, most recent round date first.
func (r *InvestorRepo) List(ctx context.Context) ([]model.Investor, error) {
	investors, err := GetAllByPrefix[model.Investor](ctx, r.store, model.PrefixInvestor+":")
	if err != nil {
		return nil, err
	}
	sort.SliceStable(investors, func(i, j int) bool {
		return parseRoundDate(investors[i].Date).After(parseRoundDate(investors[j].Date))
	})
	return investors, nil
}

// Create records an investor.
func (r *InvestorRepo) Create(ctx context.Context, in model.InvestorInput) (model.Investor, error) {
	now := r.now().UTC()

	investor := model.Investor{
		ID:        model.NewKey(model.PrefixInvestor, now),
		Name:      in.Name,
		Round:     in.Round,
		Amount:    in.Amount.Float(),
		Date:      in.Date,
		Equity:    in.Equity.Float(),
		CreatedAt: now,
	}

	if err := r.store.Set(ctx, investor.ID, investor); err != nil {
		return model.Investor{}, err
	}
	return investor, nil
}

// parseRoundDate parses the client-supplied round date. Unparseable
// dates sort last.
func parseRoundDate(s string) time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	return time.Time{}
}
