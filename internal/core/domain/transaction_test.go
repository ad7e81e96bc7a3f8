package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/personal_os/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestTxnType_IsValid(t *testing.T) {
	tests := []struct {
		name string
		in   domain.TxnType
		want bool
	}{
		{name: "income", in: domain.TxnIncome, want: true},
		{name: "expense", in: domain.TxnExpense, want: true},
		{name: "transfer", in: domain.TxnTransfer, want: true},
		{name: "liability payment", in: domain.TxnLiabilityPayment, want: true},
		{name: "empty", in: "", want: false},
		{name: "unknown", in: "refund", want: false},
		{name: "case sensitive", in: "Income", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.IsValid())
		})
	}
}

func TestTxnType_IsExpenseLike(t *testing.T) {
	assert.True(t, domain.TxnExpense.IsExpenseLike())
	assert.True(t, domain.TxnLiabilityPayment.IsExpenseLike())
	assert.False(t, domain.TxnIncome.IsExpenseLike())
	assert.False(t, domain.TxnTransfer.IsExpenseLike())
}

func TestMonthStart(t *testing.T) {
	in := time.Date(2024, time.March, 17, 22, 10, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), domain.MonthStart(in))
}
