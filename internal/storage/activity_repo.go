package storage

import (
	"context"
	"sort"
	"time"

	"github.com/runwayhq/backend/internal/model"
	"github.com/runwayhq/backend/internal/timeutil"
)

// ActivityRepo provides operations for Activity records and the
// per-user last-seen markers driving the notification feed.
type ActivityRepo struct {
	repo
}

// NewActivityRepo creates a new activity repository.
func NewActivityRepo(s Store) *ActivityRepo {
	return &ActivityRepo{repo: newRepo(s)}
}

// List retrieves all activities, newest first.
func (r *ActivityRepo) List(ctx context.Context) ([]model.Activity, error) {
	activities, err := GetAllByPrefix[model.Activity](ctx, r.store, model.PrefixActivity+":")
	if err != nil {
		return nil, err
	}
	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].CreatedAt.After(activities[j].CreatedAt)
	})
	return activities, nil
}

// Create records an activity, stamping the creation instant and its
// relative-time rendering.
func (r *ActivityRepo) Create(ctx context.Context, in model.ActivityInput) (model.Activity, error) {
	now := r.now().UTC()

	activity := model.Activity{
		ID:          model.NewKey(model.PrefixActivity, now),
		Type:        in.Type,
		Title:       in.Title,
		Description: in.Description,
		CreatedAt:   now,
		Date:        timeutil.Relative(now, now),
	}

	if err := r.store.Set(ctx, activity.ID, activity); err != nil {
		return model.Activity{}, err
	}
	return activity, nil
}

// Unseen returns the activities created strictly after the user's
// last-seen marker, in store order. A user with no marker sees
// everything. A concurrent Create racing a MarkSeen can land on either
// side of the marker; the store offers no multi-key atomicity and the
// feed tolerates the miss.
func (r *ActivityRepo) Unseen(ctx context.Context, userID string) ([]model.Activity, error) {
	lastSeen := time.Unix(0, 0).UTC()
	var marker string
	err := r.store.Get(ctx, model.LastSeenKey(userID), &marker)
	switch {
	case err == nil:
		if t, perr := time.Parse(time.RFC3339Nano, marker); perr == nil {
			lastSeen = t
		}
	case !IsErrKeyNotFound(err):
		return nil, err
	}

	activities, err := GetAllByPrefix[model.Activity](ctx, r.store, model.PrefixActivity+":")
	if err != nil {
		return nil, err
	}

	unseen := make([]model.Activity, 0, len(activities))
	for _, a := range activities {
		if a.CreatedAt.After(lastSeen) {
			unseen = append(unseen, a)
		}
	}
	return unseen, nil
}

// MarkSeen moves the user's last-seen marker to the current instant.
func (r *ActivityRepo) MarkSeen(ctx context.Context, userID string) error {
	return r.store.Set(ctx, model.LastSeenKey(userID), r.now().UTC().Format(time.RFC3339Nano))
}
