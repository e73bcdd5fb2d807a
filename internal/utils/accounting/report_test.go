package accounting_test

import (
	"testing"
	"time"

	"github.com/SscSPs/ap_reconciliation_app/internal/core/domain"
	"github.com/SscSPs/ap_reconciliation_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openInvoice(id, amount string, due time.Time) domain.InvoiceBalance {
	inv := domain.Invoice{
		InvoiceID:     id,
		InvoiceNumber: "INV-" + id,
		Amount:        d(amount),
		DueDate:       due,
		Status:        domain.InvoicePending,
	}
	return domain.NewInvoiceBalance(inv, decimal.Zero, now)
}

func TestBuildAgingReport_Buckets(t *testing.T) {
	invoices := []domain.InvoiceBalance{
		openInvoice("a", "100.10", now.Add(48*time.Hour)),
		openInvoice("b", "200.20", daysAgo(10)),
		openInvoice("c", "300.30", daysAgo(45)),
		openInvoice("d", "400.40", daysAgo(75)),
		openInvoice("e", "500.50", daysAgo(120)),
		openInvoice("f", "0.01", daysAgo(45)),
	}

	report := accounting.BuildAgingReport(invoices, now, accounting.DefaultAgingPolicy())

	assert.Equal(t, 1, report.Buckets[domain.BucketCurrent].Count)
	assert.Equal(t, 1, report.Buckets[domain.Bucket1To30].Count)
	assert.Equal(t, 2, report.Buckets[domain.Bucket31To60].Count)
	assert.Equal(t, 1, report.Buckets[domain.Bucket61To90].Count)
	assert.Equal(t, 1, report.Buckets[domain.BucketOver90].Count)
	assert.True(t, report.Buckets[domain.Bucket31To60].Amount.Equal(d("300.31")))

	assert.Equal(t, 6, report.Summary.TotalInvoices)
	assert.True(t, report.Summary.TotalOutstanding.Equal(d("1501.51")), "got %s", report.Summary.TotalOutstanding)
	assert.True(t, report.Summary.OverdueAmount.Equal(d("1401.41")), "got %s", report.Summary.OverdueAmount)
	assert.True(t, report.Summary.OverduePercentage.Equal(d("93.33")), "got %s", report.Summary.OverduePercentage)

	c := report.Buckets[domain.Bucket31To60].Invoices[0]
	assert.Equal(t, "c", c.InvoiceID)
	assert.Equal(t, 45, c.DaysOverdue)
}

func TestBuildAgingReport_SumLaw(t *testing.T) {
	var invoices []domain.InvoiceBalance
	expected := decimal.Zero
	for i := 0; i < 250; i++ {
		amount := decimal.New(int64(i*7919%100000)+1, -2)
		expected = expected.Add(amount)
		invoices = append(invoices, openInvoice(string(rune('a'+i%26)), amount.String(), daysAgo(i-50)))
	}

	report := accounting.BuildAgingReport(invoices, now, accounting.DefaultAgingPolicy())

	sum := decimal.Zero
	count := 0
	for _, b := range domain.AgingBuckets {
		sum = sum.Add(report.Buckets[b].Amount)
		count += report.Buckets[b].Count
		require.Len(t, report.Buckets[b].Invoices, report.Buckets[b].Count)
	}
	assert.Equal(t, len(invoices), count)
	assert.True(t, sum.Equal(expected), "bucket sum %s != invoice sum %s", sum, expected)
	assert.True(t, report.Summary.TotalOutstanding.Equal(expected))
}

func TestBuildAgingReport_Empty(t *testing.T) {
	report := accounting.BuildAgingReport(nil, now, accounting.DefaultAgingPolicy())

	require.Len(t, report.Buckets, len(domain.AgingBuckets))
	for _, b := range domain.AgingBuckets {
		assert.Equal(t, 0, report.Buckets[b].Count)
		assert.NotNil(t, report.Buckets[b].Invoices)
	}
	assert.True(t, report.Summary.TotalOutstanding.IsZero())
	assert.True(t, report.Summary.OverduePercentage.IsZero())
}

func TestBuildAgingReport_ByBalance(t *testing.T) {
	partly := domain.NewInvoiceBalance(domain.Invoice{InvoiceID: "p", Amount: d("1000"), DueDate: daysAgo(40), Status: domain.InvoicePartial}, d("600"), now)
	settled := domain.NewInvoiceBalance(domain.Invoice{InvoiceID: "s", Amount: d("50"), DueDate: daysAgo(5), Status: domain.InvoicePartial}, d("50"), now)

	report := accounting.BuildAgingReport([]domain.InvoiceBalance{partly, settled}, now, accounting.DefaultAgingPolicy(), accounting.AgeByBalance())

	assert.Equal(t, 1, report.Summary.TotalInvoices)
	assert.Equal(t, 0, report.Buckets[domain.Bucket1To30].Count)
	assert.True(t, report.Buckets[domain.Bucket31To60].Amount.Equal(d("400")))
	assert.True(t, report.Summary.OverduePercentage.Equal(d("100")))
}
