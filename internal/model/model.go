// Package model defines the domain records stored by the Runway backend.
package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Key prefixes for database key generation. Every per-instance record is
// addressed as "<prefix>:<epoch-millis>"; singletons use fixed keys.
const (
	PrefixColleague = "colleague"
	PrefixActivity  = "activity"
	PrefixAsset     = "asset"
	PrefixLiability = "liability"
	PrefixProject   = "project"
	PrefixCustomer  = "customer"
	PrefixInvestor  = "investor"
	PrefixLastSeen  = "lastseen"

	KeyCashAsset     = "cash_asset"
	KeyOtherExpenses = "other_expenses"
)

// NewKey mints a record identifier from a kind prefix and a creation
// instant. Identifiers are immutable once minted. Two creations within
// the same millisecond collide; this matches the deployed system and is
// accepted for its single-tenant data volumes.
func NewKey(prefix string, t time.Time) string {
	return fmt.Sprintf("%s:%d", prefix, t.UnixMilli())
}

// LastSeenKey returns the notification marker key for a user.
func LastSeenKey(userID string) string {
	return PrefixLastSeen + ":" + userID
}

// Number is a float64 that also accepts numeric JSON strings, so payloads
// may send `"1200"` or `1200` interchangeably. Values are always stored
// as numbers, never as the raw input string.
type Number float64

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid number %s", string(data))
	}
	*n = Number(f)
	return nil
}

// Float returns the value of a possibly-nil Number pointer.
func (n *Number) Float() float64 {
	if n == nil {
		return 0
	}
	return float64(*n)
}

// DateOnly formats an instant as a calendar date (yyyy-mm-dd).
func DateOnly(t time.Time) string {
	return t.Format("2006-01-02")
}
