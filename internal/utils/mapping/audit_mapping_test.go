package mapping

import (
	"encoding/json"
	"sort"
	"testing"
	"time"

	"github.com/SscSPs/personal_os/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keysOf(t *testing.T, v any) []string {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func TestTransactionSnapshotAllowlist(t *testing.T) {
	to := int64(3)
	snap := ToTransactionSnapshot(domain.Transaction{
		ID:           1,
		TxnType:      domain.TxnIncome,
		Amount:       decimal.NewFromInt(500),
		Category:     "salary",
		TransactedAt: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		AccountRefs:  domain.AccountRefs{ToAssetID: &to},
	})

	assert.Equal(t, []string{
		"amount", "category", "created_at", "description", "from_asset_id", "id", "liability_id",
		"payment_mode", "recurring_id", "to_asset_id", "transacted_at", "txn_type", "updated_at",
	}, keysOf(t, snap))
}

func TestAssetSnapshotAllowlist(t *testing.T) {
	assert.Equal(t, []string{
		"asset_subtype", "asset_type", "balance", "created_at", "currency", "id", "is_primary",
		"name", "notes", "updated_at",
	}, keysOf(t, ToAssetSnapshot(domain.Asset{ID: 1, Name: "Wallet"})))
}

func TestGoalSnapshotFormatsTargetDate(t *testing.T) {
	d := time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)
	snap := ToGoalSnapshot(domain.Goal{ID: 2, TargetDate: &d})
	require.NotNil(t, snap.TargetDate)
	assert.Equal(t, "2025-06-30", *snap.TargetDate)
}
