package storage

import "time"

// repo holds what every repository shares: the backing store and a
// clock. Tests swap the clock for deterministic keys and timestamps;
// production uses time.Now.
type repo struct {
	store Store
	now   func() time.Time
}

func newRepo(s Store) repo {
	return repo{store: s, now: time.Now}
}
