package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/ap_reconciliation_app/internal/core/domain"
	"github.com/SscSPs/ap_reconciliation_app/internal/models"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoiceMapping_JSONBColumns(t *testing.T) {
	po := "po-1"
	at := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	in := domain.Invoice{
		InvoiceID:       "inv-1",
		VendorID:        "ven-1",
		InvoiceNumber:   "A-100",
		Amount:          decimal.RequireFromString("120.50"),
		PurchaseOrderID: &po,
		LineItems: []domain.InvoiceLineItem{
			{Description: "Widgets", Quantity: decimal.NewFromInt(5), POLineID: "l1"},
		},
		Status:      domain.InvoicePendingReview,
		MatchStatus: domain.MatchException,
		MatchResult: &domain.MatchResult{POMatch: true, Discrepancies: []string{"No receipt recorded"}},
		MatchedAt:   &at,
		Version:     3,
	}

	m, err := ToModelInvoice(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"poMatch":true,"receiptMatch":false,"priceMatch":false,"quantityMatch":false,"autoApprove":false,"discrepancies":["No receipt recorded"]}`, string(m.MatchResult))

	out, err := ToDomainInvoice(m)
	require.NoError(t, err)

	opt := cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })
	if diff := cmp.Diff(in, out, opt); diff != "" {
		t.Errorf("invoice changed through mapping (-in +out):\n%s", diff)
	}
}

func TestInvoiceMapping_EmptyColumns(t *testing.T) {
	m, err := ToModelInvoice(domain.Invoice{InvoiceID: "inv-2"})
	require.NoError(t, err)
	assert.Equal(t, "[]", string(m.LineItems))
	assert.Nil(t, m.MatchResult)

	out, err := ToDomainInvoice(m)
	require.NoError(t, err)
	assert.NotNil(t, out.LineItems)
	assert.Empty(t, out.LineItems)
	assert.Nil(t, out.MatchResult)
}

func TestToDomainReceipt_BadLineItems(t *testing.T) {
	_, err := ToDomainReceipt(models.Receipt{ReceiptID: "r-1", LineItems: []byte(`{"not":"a list"}`)})
	assert.Error(t, err)
}
