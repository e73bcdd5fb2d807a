package accounting

import (
	"fmt"

	"github.com/SscSPs/ap_reconciliation_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DefaultMatchTolerance is the relative variance allowed between an invoice and its PO (2%).
var DefaultMatchTolerance = decimal.New(2, -2)

// ToleranceResult is the outcome of comparing two amounts within a tolerance band.
type ToleranceResult struct {
	Match       bool
	Discrepancy string // Empty when Match is true
}

// CompareWithinTolerance checks |actual - expected| <= expected * tolerance.
// A non-positive expected amount only matches an identical actual amount.
func CompareWithinTolerance(actual, expected, tolerance decimal.Decimal) ToleranceResult {
	if !expected.IsPositive() {
		if actual.Equal(expected) {
			return ToleranceResult{Match: true}
		}
		return ToleranceResult{Discrepancy: amountDiscrepancy(actual, expected)}
	}

	band := expected.Mul(tolerance)
	if actual.Sub(expected).Abs().LessThanOrEqual(band) {
		return ToleranceResult{Match: true}
	}
	return ToleranceResult{Discrepancy: amountDiscrepancy(actual, expected)}
}

func amountDiscrepancy(actual, expected decimal.Decimal) string {
	return fmt.Sprintf("Invoice amount (%s) differs from PO amount (%s)", actual.String(), expected.String())
}

// ValidateTolerance rejects tolerances outside [0, 1).
func ValidateTolerance(tolerance decimal.Decimal) error {
	if tolerance.IsNegative() || tolerance.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return fmt.Errorf("match tolerance must be in [0, 1), got %s", tolerance.String())
	}
	return nil
}

// RemainingBalance returns amount minus the completed payments already made.
func RemainingBalance(invoiceAmount decimal.Decimal, payments []domain.Payment) decimal.Decimal {
	return invoiceAmount.Sub(domain.SumCompleted(payments))
}

// ValidatePayment checks that paying amount against an invoice keeps its balance non-negative.
// It returns the status the invoice moves to once the payment is recorded.
func ValidatePayment(invoiceAmount, paidSoFar, amount decimal.Decimal) (domain.InvoiceStatus, error) {
	if !amount.IsPositive() {
		return "", fmt.Errorf("payment amount must be positive, got %s", amount.String())
	}
	remaining := invoiceAmount.Sub(paidSoFar)
	if amount.GreaterThan(remaining) {
		return "", fmt.Errorf("payment amount exceeds remaining balance of %s", remaining.String())
	}
	if paidSoFar.Add(amount).GreaterThanOrEqual(invoiceAmount) {
		return domain.InvoicePaid, nil
	}
	return domain.InvoicePartial, nil
}
