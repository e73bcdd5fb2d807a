package accounting_test

import (
	"testing"

	"github.com/SscSPs/ap_reconciliation_app/internal/core/domain"
	"github.com/SscSPs/ap_reconciliation_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCompareWithinTolerance(t *testing.T) {
	tests := []struct {
		name     string
		actual   string
		expected string
		want     bool
	}{
		{name: "exact match", actual: "10000", expected: "10000", want: true},
		{name: "upper boundary is inclusive", actual: "10200", expected: "10000", want: true},
		{name: "lower boundary is inclusive", actual: "9800", expected: "10000", want: true},
		{name: "just above band", actual: "10200.01", expected: "10000", want: false},
		{name: "well above band", actual: "10300", expected: "10000", want: false},
		{name: "below band", actual: "9799.99", expected: "10000", want: false},
		{name: "zero expected and zero actual", actual: "0", expected: "0", want: true},
		{name: "zero expected and positive actual", actual: "0.01", expected: "0", want: false},
		{name: "negative expected only matches exactly", actual: "-5", expected: "-5", want: true},
		{name: "negative expected with nearby actual", actual: "-5.01", expected: "-5", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := accounting.CompareWithinTolerance(d(tt.actual), d(tt.expected), accounting.DefaultMatchTolerance)
			assert.Equal(t, tt.want, got.Match)
			if tt.want {
				assert.Empty(t, got.Discrepancy)
			} else {
				assert.NotEmpty(t, got.Discrepancy)
			}
		})
	}
}

func TestCompareWithinTolerance_DiscrepancyText(t *testing.T) {
	got := accounting.CompareWithinTolerance(d("10300"), d("10000"), accounting.DefaultMatchTolerance)

	require.False(t, got.Match)
	assert.Equal(t, "Invoice amount (10300) differs from PO amount (10000)", got.Discrepancy)
	assert.Contains(t, got.Discrepancy, "10300")
	assert.Contains(t, got.Discrepancy, "10000")
}

func TestCompareWithinTolerance_RelativeProperty(t *testing.T) {
	expected := d("1234.56")
	for cents := int64(-5000); cents <= 5000; cents += 37 {
		actual := expected.Add(decimal.New(cents, -2))
		ratio := actual.Sub(expected).Abs().Div(expected)
		want := ratio.LessThanOrEqual(accounting.DefaultMatchTolerance)

		got := accounting.CompareWithinTolerance(actual, expected, accounting.DefaultMatchTolerance)
		assert.Equal(t, want, got.Match, "actual=%s", actual)
	}
}

func TestValidateTolerance(t *testing.T) {
	assert.NoError(t, accounting.ValidateTolerance(d("0")))
	assert.NoError(t, accounting.ValidateTolerance(d("0.02")))
	assert.Error(t, accounting.ValidateTolerance(d("-0.01")))
	assert.Error(t, accounting.ValidateTolerance(d("1")))
}

func TestValidatePayment(t *testing.T) {
	tests := []struct {
		name       string
		invoice    string
		paid       string
		amount     string
		wantStatus domain.InvoiceStatus
		wantErr    string
	}{
		{name: "partial payment", invoice: "1000", paid: "0", amount: "400", wantStatus: domain.InvoicePartial},
		{name: "final payment", invoice: "1000", paid: "600", amount: "400", wantStatus: domain.InvoicePaid},
		{name: "overpayment rejected", invoice: "1000", paid: "600", amount: "400.01", wantErr: "exceeds remaining balance of 400"},
		{name: "zero payment rejected", invoice: "1000", paid: "0", amount: "0", wantErr: "must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := accounting.ValidatePayment(d(tt.invoice), d(tt.paid), d(tt.amount))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, status)
		})
	}
}

func TestRemainingBalance_IgnoresIncompletePayments(t *testing.T) {
	payments := []domain.Payment{
		{Amount: d("100"), Status: domain.PaymentCompleted},
		{Amount: d("250.50"), Status: domain.PaymentCompleted},
		{Amount: d("999"), Status: domain.PaymentFailed},
	}

	got := accounting.RemainingBalance(d("1000"), payments)
	assert.True(t, got.Equal(d("649.50")), "got %s", got)
}
