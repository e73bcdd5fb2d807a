package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AgingBucket is a day-range classification of overdue payables.
type AgingBucket string

const (
	BucketCurrent AgingBucket = "current"
	Bucket1To30   AgingBucket = "days_1_30"
	Bucket31To60  AgingBucket = "days_31_60"
	Bucket61To90  AgingBucket = "days_61_90"
	BucketOver90  AgingBucket = "over_90"
)

// AgingBuckets lists every bucket in ascending age order.
var AgingBuckets = []AgingBucket{BucketCurrent, Bucket1To30, Bucket31To60, Bucket61To90, BucketOver90}

// AgedInvoice is an invoice decorated with its age at report time.
type AgedInvoice struct {
	InvoiceID     string          `json:"invoiceID"`
	VendorID      string          `json:"vendorID"`
	InvoiceNumber string          `json:"invoiceNumber"`
	Amount        decimal.Decimal `json:"amount"` // The amount aged: invoice amount or balance due
	DueDate       time.Time       `json:"dueDate"`
	Status        InvoiceStatus   `json:"status"`
	DaysOverdue   int             `json:"daysOverdue"`
}

// AgingBucketTotal accumulates the invoices that fell into one bucket.
type AgingBucketTotal struct {
	Count    int             `json:"count"`
	Amount   decimal.Decimal `json:"amount"`
	Invoices []AgedInvoice   `json:"invoices"`
}

// AgingSummary totals an aging report.
type AgingSummary struct {
	TotalOutstanding  decimal.Decimal `json:"totalOutstanding"`
	TotalInvoices     int             `json:"totalInvoices"`
	OverdueAmount     decimal.Decimal `json:"overdueAmount"` // Everything outside the current bucket
	OverduePercentage decimal.Decimal `json:"overduePercentage"`
}

// AgingReport holds all five buckets and their summary.
type AgingReport struct {
	Buckets map[AgingBucket]*AgingBucketTotal `json:"buckets"`
	Summary AgingSummary                      `json:"summary"`
}

// PayablesSummary is the default AP dashboard.
type PayablesSummary struct {
	PendingInvoices int             `json:"pendingInvoices"`
	PendingAmount   decimal.Decimal `json:"pendingAmount"`
	OverdueInvoices int             `json:"overdueInvoices"`
	OverdueAmount   decimal.Decimal `json:"overdueAmount"`
	PaidThisMonth   decimal.Decimal `json:"paidThisMonth"`
	PaidLast30Days  decimal.Decimal `json:"paidLast30Days"`
}
