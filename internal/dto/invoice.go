package dto

import (
	"time"

	"github.com/SscSPs/ap_reconciliation_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InvoiceLineItemResponse is a billed invoice line.
type InvoiceLineItemResponse struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Amount      decimal.Decimal `json:"amount"`
	POLineID    string          `json:"po_line_id,omitempty"`
}

// MatchResultResponse is the outcome of a 3-way match.
type MatchResultResponse struct {
	POMatch       bool     `json:"po_match"`
	ReceiptMatch  bool     `json:"receipt_match"`
	PriceMatch    bool     `json:"price_match"`
	QuantityMatch bool     `json:"quantity_match"`
	Discrepancies []string `json:"discrepancies"`
	AutoApprove   bool     `json:"auto_approve"`
}

// InvoiceResponse defines the data returned for a vendor invoice.
type InvoiceResponse struct {
	ID              string                    `json:"id"`
	VendorID        string                    `json:"vendor_id"`
	InvoiceNumber   string                    `json:"invoice_number"`
	InvoiceDate     string                    `json:"invoice_date"`
	DueDate         string                    `json:"due_date"`
	Amount          decimal.Decimal           `json:"amount"`
	Currency        string                    `json:"currency"`
	Description     string                    `json:"description"`
	Status          string                    `json:"status"`
	PurchaseOrderID *string                   `json:"purchase_order_id"`
	ReceiptID       *string                   `json:"receipt_id"`
	MatchStatus     string                    `json:"match_status"`
	MatchResult     *MatchResultResponse      `json:"match_result"`
	MatchedAt       *time.Time                `json:"matched_at"`
	LineItems       []InvoiceLineItemResponse `json:"line_items"`
	ApprovedBy      *string                   `json:"approved_by,omitempty"`
	ApprovedAt      *time.Time                `json:"approved_at,omitempty"`
	RejectionReason *string                   `json:"rejection_reason,omitempty"`
	RejectedBy      *string                   `json:"rejected_by,omitempty"`
	RejectedAt      *time.Time                `json:"rejected_at,omitempty"`
	VoidReason      *string                   `json:"void_reason,omitempty"`
	VoidedAt        *time.Time                `json:"voided_at,omitempty"`
	PaidDate        *time.Time                `json:"paid_date,omitempty"`
	Version         int64                     `json:"version"`
	CreatedAt       time.Time                 `json:"created_at"`
	CreatedBy       string                    `json:"created_by"`
	LastUpdatedAt   time.Time                 `json:"updated_at"`
}

// InvoiceBalanceResponse is an invoice enriched with its payment position.
type InvoiceBalanceResponse struct {
	InvoiceResponse
	PaidAmount decimal.Decimal `json:"paid_amount"`
	BalanceDue decimal.Decimal `json:"balance_due"`
	IsOverdue  bool            `json:"is_overdue"`
}

// ListInvoicesResponse is the invoices view.
type ListInvoicesResponse struct {
	Invoices []InvoiceBalanceResponse `json:"invoices"`
	Total    int                      `json:"total"`
	Page     int                      `json:"page"`
	Limit    int                      `json:"limit"`
}

// InvoiceEnvelope wraps a single invoice.
type InvoiceEnvelope struct {
	Invoice InvoiceResponse `json:"invoice"`
}

// PerformMatchResponse is returned by the perform_3way_match action.
type PerformMatchResponse struct {
	MatchResult  MatchResultResponse `json:"match_result"`
	NewStatus    string              `json:"new_status"`
	AutoApproved bool                `json:"auto_approved"`
}

// PendingMatchResponse is one invoice of the pending_match view with its preview result.
type PendingMatchResponse struct {
	InvoiceID     string              `json:"invoice_id"`
	InvoiceNumber string              `json:"invoice_number"`
	VendorID      string              `json:"vendor_id"`
	MatchResult   MatchResultResponse `json:"match_result"`
}

// ListPendingMatchesResponse is the pending_match view.
type ListPendingMatchesResponse struct {
	PendingMatches []PendingMatchResponse `json:"pending_matches"`
	Total          int                    `json:"total"`
}

// SuccessResponse acknowledges an operation with no other payload.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// ToMatchResultResponse converts a domain.MatchResult to its DTO.
func ToMatchResultResponse(r domain.MatchResult) MatchResultResponse {
	discrepancies := r.Discrepancies
	if discrepancies == nil {
		discrepancies = []string{}
	}
	return MatchResultResponse{
		POMatch:       r.POMatch,
		ReceiptMatch:  r.ReceiptMatch,
		PriceMatch:    r.PriceMatch,
		QuantityMatch: r.QuantityMatch,
		Discrepancies: discrepancies,
		AutoApprove:   r.AutoApprove,
	}
}

// ToPerformMatchResponse builds the perform_3way_match response from the stored result.
func ToPerformMatchResponse(r domain.MatchResult) PerformMatchResponse {
	return PerformMatchResponse{
		MatchResult:  ToMatchResultResponse(r),
		NewStatus:    string(r.InvoiceStatus()),
		AutoApproved: r.AutoApprove,
	}
}

// ToInvoiceResponse converts a domain.Invoice to InvoiceResponse DTO.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	lines := make([]InvoiceLineItemResponse, len(inv.LineItems))
	for i, l := range inv.LineItems {
		lines[i] = InvoiceLineItemResponse{
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Amount:      l.Amount,
			POLineID:    l.POLineID,
		}
	}
	var match *MatchResultResponse
	if inv.MatchResult != nil {
		m := ToMatchResultResponse(*inv.MatchResult)
		match = &m
	}
	return InvoiceResponse{
		ID:              inv.InvoiceID,
		VendorID:        inv.VendorID,
		InvoiceNumber:   inv.InvoiceNumber,
		InvoiceDate:     inv.InvoiceDate.Format(DateLayout),
		DueDate:         inv.DueDate.Format(DateLayout),
		Amount:          inv.Amount,
		Currency:        inv.CurrencyCode,
		Description:     inv.Description,
		Status:          string(inv.Status),
		PurchaseOrderID: inv.PurchaseOrderID,
		ReceiptID:       inv.ReceiptID,
		MatchStatus:     string(inv.MatchStatus),
		MatchResult:     match,
		MatchedAt:       inv.MatchedAt,
		LineItems:       lines,
		ApprovedBy:      inv.ApprovedBy,
		ApprovedAt:      inv.ApprovedAt,
		RejectionReason: inv.RejectionReason,
		RejectedBy:      inv.RejectedBy,
		RejectedAt:      inv.RejectedAt,
		VoidReason:      inv.VoidReason,
		VoidedAt:        inv.VoidedAt,
		PaidDate:        inv.PaidDate,
		Version:         inv.Version,
		CreatedAt:       inv.CreatedAt,
		CreatedBy:       inv.CreatedBy,
		LastUpdatedAt:   inv.LastUpdatedAt,
	}
}

// ToInvoiceBalanceResponses converts invoice balances to their DTOs.
func ToInvoiceBalanceResponses(bs []domain.InvoiceBalance) []InvoiceBalanceResponse {
	out := make([]InvoiceBalanceResponse, len(bs))
	for i := range bs {
		out[i] = InvoiceBalanceResponse{
			InvoiceResponse: ToInvoiceResponse(&bs[i].Invoice),
			PaidAmount:      bs[i].PaidAmount,
			BalanceDue:      bs[i].BalanceDue,
			IsOverdue:       bs[i].IsOverdue,
		}
	}
	return out
}

// ToPendingMatchResponses converts match previews to their DTOs.
func ToPendingMatchResponses(as []domain.MatchAnalysis) []PendingMatchResponse {
	out := make([]PendingMatchResponse, len(as))
	for i, a := range as {
		out[i] = PendingMatchResponse{
			InvoiceID:     a.InvoiceID,
			InvoiceNumber: a.InvoiceNumber,
			VendorID:      a.VendorID,
			MatchResult:   ToMatchResultResponse(a.MatchResult),
		}
	}
	return out
}
