package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptional_DistinguishesAbsentNullAndValue(t *testing.T) {
	var req UpdateTransactionRequest
	require.NoError(t, json.Unmarshal([]byte(`{"amount": "100.25", "to_asset_id": null}`), &req))

	assert.True(t, req.Amount.Set)
	require.NotNil(t, req.Amount.Value)
	assert.True(t, decimal.RequireFromString("100.25").Equal(*req.Amount.Value))

	assert.True(t, req.ToAssetID.Set)
	assert.True(t, req.ToAssetID.IsNull())

	assert.False(t, req.FromAssetID.Set)
	assert.False(t, req.TxnType.Set)
}

func TestOptional_Merge(t *testing.T) {
	current := int64(5)

	var absent Optional[int64]
	assert.Equal(t, &current, absent.Merge(&current))

	cleared := Null[int64]()
	assert.Nil(t, cleared.Merge(&current))

	replaced := Some[int64](9)
	assert.Equal(t, int64(9), *replaced.Merge(&current))
}

func TestOptional_RejectsWrongType(t *testing.T) {
	var req UpdateTransactionRequest
	err := json.Unmarshal([]byte(`{"from_asset_id": "abc"}`), &req)
	assert.Error(t, err)
}

func TestDate_RoundTripAndLenientParse(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-02-29"`), &d))
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), d.Time)

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-02-29"`, string(out))

	require.NoError(t, json.Unmarshal([]byte(`"2024-03-01T18:30:00Z"`), &d))
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), d.Time)

	assert.Error(t, json.Unmarshal([]byte(`"01/03/2024"`), &d))
}
