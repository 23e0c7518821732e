package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKey(t *testing.T) {
	at := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "asset:1749988800000", NewKey(PrefixAsset, at))
	assert.Equal(t, "activity:1749988800000", NewKey(PrefixActivity, at))

	t.Run("distinct instants mint distinct keys", func(t *testing.T) {
		assert.NotEqual(t, NewKey(PrefixAsset, at), NewKey(PrefixAsset, at.Add(time.Millisecond)))
	})
}

func TestLastSeenKey(t *testing.T) {
	assert.Equal(t, "lastseen:user1", LastSeenKey("user1"))
}

func TestNumber_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"integer", `1200`, 1200},
		{"float", `12.5`, 12.5},
		{"numeric string", `"1200"`, 1200},
		{"float string", `"12.5"`, 12.5},
		{"negative", `-5`, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n Number
			require.NoError(t, json.Unmarshal([]byte(tt.input), &n))
			assert.Equal(t, tt.want, float64(n))
		})
	}

	t.Run("rejects non-numeric strings", func(t *testing.T) {
		var n Number
		assert.Error(t, json.Unmarshal([]byte(`"laptop"`), &n))
	})

	t.Run("null leaves the value untouched", func(t *testing.T) {
		n := Number(7)
		require.NoError(t, json.Unmarshal([]byte(`null`), &n))
		assert.Equal(t, Number(7), n)
	})

	t.Run("absent field leaves pointer nil", func(t *testing.T) {
		var in ValuationInput
		require.NoError(t, json.Unmarshal([]byte(`{"name":"Laptop"}`), &in))
		assert.Nil(t, in.Value)
	})

	t.Run("zero is present, not missing", func(t *testing.T) {
		var in ValuationInput
		require.NoError(t, json.Unmarshal([]byte(`{"name":"Laptop","value":0}`), &in))
		require.NotNil(t, in.Value)
		assert.Equal(t, float64(0), in.Value.Float())
	})
}

func TestNumber_Float(t *testing.T) {
	var nilNumber *Number
	assert.Equal(t, float64(0), nilNumber.Float())

	n := Number(42)
	assert.Equal(t, float64(42), n.Float())
}

func TestDateOnly(t *testing.T) {
	at := time.Date(2025, 6, 15, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, "2025-06-15", DateOnly(at))
}
