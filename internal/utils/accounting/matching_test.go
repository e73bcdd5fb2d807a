package accounting_test

import (
	"testing"

	"github.com/SscSPs/ap_reconciliation_app/internal/core/domain"
	"github.com/SscSPs/ap_reconciliation_app/internal/utils/accounting"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func invoiceWithLines(amount string, lines ...domain.InvoiceLineItem) domain.Invoice {
	return domain.Invoice{InvoiceID: "inv-1", Amount: d(amount), LineItems: lines}
}

func invLine(poLineID string, qty int64) domain.InvoiceLineItem {
	return domain.InvoiceLineItem{POLineID: poLineID, Quantity: decimal.NewFromInt(qty)}
}

func recLine(poLineID string, qty int64) domain.ReceiptLineItem {
	return domain.ReceiptLineItem{POLineID: poLineID, QuantityReceived: decimal.NewFromInt(qty), Condition: domain.ConditionGood}
}

func TestThreeWayMatch_NoPurchaseOrderNoReceipt(t *testing.T) {
	got := accounting.ThreeWayMatch(accounting.MatchInput{Invoice: invoiceWithLines("500")}, accounting.DefaultMatchTolerance)

	assert.Equal(t, []string{"No purchase order linked", "No receipt recorded"}, got.Discrepancies)
	assert.False(t, got.POMatch)
	assert.False(t, got.ReceiptMatch)
	assert.False(t, got.AutoApprove)
	assert.Equal(t, domain.MatchException, got.MatchStatus())
	assert.Equal(t, domain.InvoicePendingReview, got.InvoiceStatus())
}

func TestThreeWayMatch_FullMatchAutoApproves(t *testing.T) {
	in := accounting.MatchInput{
		Invoice:       invoiceWithLines("10000", invLine("l1", 5), invLine("l2", 3)),
		PurchaseOrder: &domain.PurchaseOrder{TotalAmount: d("10000")},
		Receipt:       &domain.Receipt{LineItems: []domain.ReceiptLineItem{recLine("l2", 3), recLine("l1", 5)}},
	}

	got := accounting.ThreeWayMatch(in, accounting.DefaultMatchTolerance)

	assert.True(t, got.POMatch)
	assert.True(t, got.PriceMatch)
	assert.True(t, got.ReceiptMatch)
	assert.True(t, got.QuantityMatch)
	assert.True(t, got.AutoApprove)
	assert.Empty(t, got.Discrepancies)
	assert.NotNil(t, got.Discrepancies)
	assert.Equal(t, domain.MatchMatched, got.MatchStatus())
	assert.Equal(t, domain.InvoiceApproved, got.InvoiceStatus())
}

func TestThreeWayMatch_AmountOnBoundaryMatches(t *testing.T) {
	in := accounting.MatchInput{
		Invoice:       invoiceWithLines("10200"),
		PurchaseOrder: &domain.PurchaseOrder{TotalAmount: d("10000")},
		Receipt:       &domain.Receipt{},
	}

	got := accounting.ThreeWayMatch(in, accounting.DefaultMatchTolerance)

	assert.True(t, got.POMatch)
	assert.True(t, got.AutoApprove)
}

func TestThreeWayMatch_AmountOutsideBand(t *testing.T) {
	in := accounting.MatchInput{
		Invoice:       invoiceWithLines("10300"),
		PurchaseOrder: &domain.PurchaseOrder{TotalAmount: d("10000")},
		Receipt:       &domain.Receipt{},
	}

	got := accounting.ThreeWayMatch(in, accounting.DefaultMatchTolerance)

	assert.False(t, got.POMatch)
	assert.False(t, got.PriceMatch)
	assert.True(t, got.ReceiptMatch)
	assert.False(t, got.AutoApprove)
	if assert.Len(t, got.Discrepancies, 1) {
		assert.Contains(t, got.Discrepancies[0], "10300")
		assert.Contains(t, got.Discrepancies[0], "10000")
	}
}

func TestThreeWayMatch_Quantities(t *testing.T) {
	po := &domain.PurchaseOrder{TotalAmount: d("100")}
	tests := []struct {
		name         string
		invoiceLines []domain.InvoiceLineItem
		receiptLines []domain.ReceiptLineItem
		want         bool
	}{
		{name: "no invoice lines", receiptLines: []domain.ReceiptLineItem{recLine("l1", 1)}, want: true},
		{name: "no receipt lines", invoiceLines: []domain.InvoiceLineItem{invLine("l1", 1)}, want: true},
		{name: "equal quantities", invoiceLines: []domain.InvoiceLineItem{invLine("l1", 2)}, receiptLines: []domain.ReceiptLineItem{recLine("l1", 2)}, want: true},
		{name: "short receipt", invoiceLines: []domain.InvoiceLineItem{invLine("l1", 2)}, receiptLines: []domain.ReceiptLineItem{recLine("l1", 1)}, want: false},
		{name: "line not received", invoiceLines: []domain.InvoiceLineItem{invLine("l1", 2), invLine("l9", 1)}, receiptLines: []domain.ReceiptLineItem{recLine("l1", 2)}, want: false},
		{name: "invoice line without po line", invoiceLines: []domain.InvoiceLineItem{invLine("", 2)}, receiptLines: []domain.ReceiptLineItem{recLine("l1", 2)}, want: false},
		{name: "extra receipt lines are ignored", invoiceLines: []domain.InvoiceLineItem{invLine("l1", 2)}, receiptLines: []domain.ReceiptLineItem{recLine("l1", 2), recLine("l2", 7)}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := accounting.MatchInput{
				Invoice:       invoiceWithLines("100", tt.invoiceLines...),
				PurchaseOrder: po,
				Receipt:       &domain.Receipt{LineItems: tt.receiptLines},
			}

			got := accounting.ThreeWayMatch(in, accounting.DefaultMatchTolerance)

			assert.Equal(t, tt.want, got.QuantityMatch)
			assert.Equal(t, tt.want, got.AutoApprove)
			if tt.want {
				assert.NotContains(t, got.Discrepancies, accounting.DiscrepancyQuantityMismatch)
			} else {
				assert.Contains(t, got.Discrepancies, accounting.DiscrepancyQuantityMismatch)
			}
		})
	}
}

func TestThreeWayMatch_Idempotent(t *testing.T) {
	in := accounting.MatchInput{
		Invoice:       invoiceWithLines("10300", invLine("l1", 4)),
		PurchaseOrder: &domain.PurchaseOrder{TotalAmount: d("10000")},
		Receipt:       &domain.Receipt{LineItems: []domain.ReceiptLineItem{recLine("l1", 3)}},
	}

	first := accounting.ThreeWayMatch(in, accounting.DefaultMatchTolerance)
	second := accounting.ThreeWayMatch(in, accounting.DefaultMatchTolerance)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("ThreeWayMatch not idempotent (-first +second):\n%s", diff)
	}
}
