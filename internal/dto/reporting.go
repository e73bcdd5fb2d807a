package dto

import (
	"github.com/SscSPs/ap_reconciliation_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AgedInvoiceResponse is an invoice inside an aging bucket.
type AgedInvoiceResponse struct {
	ID            string          `json:"id"`
	VendorID      string          `json:"vendor_id"`
	InvoiceNumber string          `json:"invoice_number"`
	Amount        decimal.Decimal `json:"amount"`
	DueDate       string          `json:"due_date"`
	Status        string          `json:"status"`
	DaysOverdue   int             `json:"days_overdue"`
}

// AgingBucketResponse holds the invoices of one aging bucket.
type AgingBucketResponse struct {
	Count    int                   `json:"count"`
	Amount   decimal.Decimal       `json:"amount"`
	Invoices []AgedInvoiceResponse `json:"invoices"`
}

// AgingBucketsResponse lists the five buckets in age order.
type AgingBucketsResponse struct {
	Current    AgingBucketResponse `json:"current"`
	Days1To30  AgingBucketResponse `json:"days_1_30"`
	Days31To60 AgingBucketResponse `json:"days_31_60"`
	Days61To90 AgingBucketResponse `json:"days_61_90"`
	Over90     AgingBucketResponse `json:"over_90"`
}

// AgingSummaryResponse totals an aging report.
type AgingSummaryResponse struct {
	TotalOutstanding  decimal.Decimal `json:"total_outstanding"`
	TotalInvoices     int             `json:"total_invoices"`
	OverdueAmount     decimal.Decimal `json:"overdue_amount"`
	OverduePercentage decimal.Decimal `json:"overdue_percentage"`
}

// AgingReportResponse is the aging view.
type AgingReportResponse struct {
	AsOf    string               `json:"as_of"`
	Aging   AgingBucketsResponse `json:"aging"`
	Summary AgingSummaryResponse `json:"summary"`
}

// PayablesSummaryResponse is the default AP dashboard view.
type PayablesSummaryResponse struct {
	Summary struct {
		PendingInvoices int             `json:"pending_invoices"`
		PendingAmount   decimal.Decimal `json:"pending_amount"`
		OverdueInvoices int             `json:"overdue_invoices"`
		OverdueAmount   decimal.Decimal `json:"overdue_amount"`
		PaidThisMonth   decimal.Decimal `json:"paid_this_month"`
		PaidLast30Days  decimal.Decimal `json:"paid_last_30_days"`
	} `json:"summary"`
}

func toAgingBucketResponse(b *domain.AgingBucketTotal) AgingBucketResponse {
	if b == nil {
		return AgingBucketResponse{Amount: decimal.Zero, Invoices: []AgedInvoiceResponse{}}
	}
	invoices := make([]AgedInvoiceResponse, len(b.Invoices))
	for i, inv := range b.Invoices {
		invoices[i] = AgedInvoiceResponse{
			ID:            inv.InvoiceID,
			VendorID:      inv.VendorID,
			InvoiceNumber: inv.InvoiceNumber,
			Amount:        inv.Amount,
			DueDate:       inv.DueDate.Format(DateLayout),
			Status:        string(inv.Status),
			DaysOverdue:   inv.DaysOverdue,
		}
	}
	return AgingBucketResponse{Count: b.Count, Amount: b.Amount, Invoices: invoices}
}

// ToAgingReportResponse converts a domain.AgingReport to its DTO.
func ToAgingReportResponse(r domain.AgingReport, asOf string) AgingReportResponse {
	return AgingReportResponse{
		AsOf: asOf,
		Aging: AgingBucketsResponse{
			Current:    toAgingBucketResponse(r.Buckets[domain.BucketCurrent]),
			Days1To30:  toAgingBucketResponse(r.Buckets[domain.Bucket1To30]),
			Days31To60: toAgingBucketResponse(r.Buckets[domain.Bucket31To60]),
			Days61To90: toAgingBucketResponse(r.Buckets[domain.Bucket61To90]),
			Over90:     toAgingBucketResponse(r.Buckets[domain.BucketOver90]),
		},
		Summary: AgingSummaryResponse{
			TotalOutstanding:  r.Summary.TotalOutstanding,
			TotalInvoices:     r.Summary.TotalInvoices,
			OverdueAmount:     r.Summary.OverdueAmount,
			OverduePercentage: r.Summary.OverduePercentage,
		},
	}
}

// ToPayablesSummaryResponse converts a domain.PayablesSummary to its DTO.
func ToPayablesSummaryResponse(s *domain.PayablesSummary) PayablesSummaryResponse {
	var resp PayablesSummaryResponse
	resp.Summary.PendingInvoices = s.PendingInvoices
	resp.Summary.PendingAmount = s.PendingAmount
	resp.Summary.OverdueInvoices = s.OverdueInvoices
	resp.Summary.OverdueAmount = s.OverdueAmount
	resp.Summary.PaidThisMonth = s.PaidThisMonth
	resp.Summary.PaidLast30Days = s.PaidLast30Days
	return resp
}
