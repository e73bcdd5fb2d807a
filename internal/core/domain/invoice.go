package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the payment lifecycle state of a vendor invoice.
type InvoiceStatus string

const (
	InvoicePending       InvoiceStatus = "pending"
	InvoiceApproved      InvoiceStatus = "approved"
	InvoicePaid          InvoiceStatus = "paid"
	InvoiceOverdue       InvoiceStatus = "overdue"
	InvoiceVoided        InvoiceStatus = "voided"
	InvoicePartial       InvoiceStatus = "partial"
	InvoicePendingReview InvoiceStatus = "pending_review" // Set when 3-way match finds an exception
	InvoiceRejected      InvoiceStatus = "rejected"
)

// OpenInvoiceStatuses are the statuses that still carry an outstanding balance for aging.
var OpenInvoiceStatuses = []InvoiceStatus{InvoicePending, InvoiceApproved, InvoicePartial}

// MatchStatus is the 3-way match state of a vendor invoice.
type MatchStatus string

const (
	MatchPending       MatchStatus = "pending"
	MatchReadyForMatch MatchStatus = "ready_for_match" // Both PO and receipt are linked
	MatchMatched       MatchStatus = "matched"
	MatchException     MatchStatus = "exception"
)

// InvoiceLineItem is a single billed line on a vendor invoice.
type InvoiceLineItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Amount      decimal.Decimal `json:"amount"`
	POLineID    string          `json:"poLineID,omitempty"` // Links the line to a PO line and its receipt line
}

// Invoice represents a vendor invoice in accounts payable.
type Invoice struct {
	InvoiceID       string            `json:"invoiceID"`
	VendorID        string            `json:"vendorID"`
	InvoiceNumber   string            `json:"invoiceNumber"`
	InvoiceDate     time.Time         `json:"invoiceDate"`
	DueDate         time.Time         `json:"dueDate"`
	Amount          decimal.Decimal   `json:"amount"`
	CurrencyCode    string            `json:"currencyCode"`
	Description     string            `json:"description"`
	LineItems       []InvoiceLineItem `json:"lineItems"`
	PurchaseOrderID *string           `json:"purchaseOrderID"`
	ReceiptID       *string           `json:"receiptID"`
	Status          InvoiceStatus     `json:"status"`
	MatchStatus     MatchStatus       `json:"matchStatus"`
	MatchResult     *MatchResult      `json:"matchResult"`
	MatchedAt       *time.Time        `json:"matchedAt"`
	ApprovedBy      *string           `json:"approvedBy"`
	ApprovedAt      *time.Time        `json:"approvedAt"`
	RejectionReason *string           `json:"rejectionReason"`
	RejectedBy      *string           `json:"rejectedBy"`
	RejectedAt      *time.Time        `json:"rejectedAt"`
	VoidReason      *string           `json:"voidReason"`
	VoidedAt        *time.Time        `json:"voidedAt"`
	PaidDate        *time.Time        `json:"paidDate"`
	Version         int64             `json:"version"` // Optimistic concurrency token, bumped on every write
	AuditFields
}

// IsVoided reports whether the invoice has been voided. Voided invoices are immutable.
func (i *Invoice) IsVoided() bool {
	return i.Status == InvoiceVoided
}

// InitialMatchStatus returns the match status a freshly submitted invoice starts in.
func InitialMatchStatus(purchaseOrderID, receiptID *string) MatchStatus {
	if purchaseOrderID != nil && *purchaseOrderID != "" && receiptID != nil && *receiptID != "" {
		return MatchReadyForMatch
	}
	return MatchPending
}

// InvoiceBalance is an invoice together with what has been paid against it.
type InvoiceBalance struct {
	Invoice
	PaidAmount decimal.Decimal `json:"paidAmount"`
	BalanceDue decimal.Decimal `json:"balanceDue"`
	IsOverdue  bool            `json:"isOverdue"`
}

// NewInvoiceBalance derives the balance view of an invoice from its completed payment total.
func NewInvoiceBalance(inv Invoice, paid decimal.Decimal, now time.Time) InvoiceBalance {
	return InvoiceBalance{
		Invoice:    inv,
		PaidAmount: paid,
		BalanceDue: inv.Amount.Sub(paid),
		IsOverdue:  inv.DueDate.Before(now) && inv.Status != InvoicePaid,
	}
}

// InvoiceFilter narrows invoice and payment listings.
type InvoiceFilter struct {
	VendorID string
	Status   string
	Limit    int
	Offset   int
}
