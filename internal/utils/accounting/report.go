package accounting

import (
	"time"

	"github.com/SscSPs/ap_reconciliation_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type reportOptions struct {
	byBalance bool
}

// ReportOption configures BuildAgingReport.
type ReportOption func(*reportOptions)

// AgeByBalance ages the balance due instead of the invoice amount and skips
// invoices that are already fully paid.
func AgeByBalance() ReportOption {
	return func(o *reportOptions) {
		o.byBalance = true
	}
}

// NewAgingReport returns a report with all five buckets present and empty.
func NewAgingReport() domain.AgingReport {
	buckets := make(map[domain.AgingBucket]*domain.AgingBucketTotal, len(domain.AgingBuckets))
	for _, b := range domain.AgingBuckets {
		buckets[b] = &domain.AgingBucketTotal{Amount: decimal.Zero, Invoices: []domain.AgedInvoice{}}
	}
	return domain.AgingReport{
		Buckets: buckets,
		Summary: domain.AgingSummary{
			TotalOutstanding:  decimal.Zero,
			OverdueAmount:     decimal.Zero,
			OverduePercentage: decimal.Zero,
		},
	}
}

// BuildAgingReport folds invoices into aging buckets as of now.
// Every aged invoice lands in exactly one bucket and TotalOutstanding is the exact
// sum of the aged amounts.
func BuildAgingReport(invoices []domain.InvoiceBalance, now time.Time, policy AgingPolicy, opts ...ReportOption) domain.AgingReport {
	var o reportOptions
	for _, opt := range opts {
		opt(&o)
	}

	report := NewAgingReport()
	for _, inv := range invoices {
		amount := inv.Amount
		if o.byBalance {
			amount = inv.BalanceDue
			if !amount.IsPositive() {
				continue
			}
		}

		age := policy.Age(inv.DueDate, now)
		bucket := report.Buckets[age.Bucket]
		bucket.Count++
		bucket.Amount = bucket.Amount.Add(amount)
		bucket.Invoices = append(bucket.Invoices, domain.AgedInvoice{
			InvoiceID:     inv.InvoiceID,
			VendorID:      inv.VendorID,
			InvoiceNumber: inv.InvoiceNumber,
			Amount:        amount,
			DueDate:       inv.DueDate,
			Status:        inv.Status,
			DaysOverdue:   age.DaysOverdue,
		})
		report.Summary.TotalInvoices++
	}

	for _, b := range domain.AgingBuckets {
		amount := report.Buckets[b].Amount
		report.Summary.TotalOutstanding = report.Summary.TotalOutstanding.Add(amount)
		if b != domain.BucketCurrent {
			report.Summary.OverdueAmount = report.Summary.OverdueAmount.Add(amount)
		}
	}

	if report.Summary.TotalOutstanding.IsPositive() {
		report.Summary.OverduePercentage = report.Summary.OverdueAmount.
			Mul(hundred).
			Div(report.Summary.TotalOutstanding).
			Round(2)
	}
	return report
}
