package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is a row of the vendor_invoices table.
// LineItems and MatchResult are stored as JSONB and kept raw here.
type Invoice struct {
	InvoiceID       string          `db:"invoice_id"`
	VendorID        string          `db:"vendor_id"`
	InvoiceNumber   string          `db:"invoice_number"`
	InvoiceDate     time.Time       `db:"invoice_date"`
	DueDate         time.Time       `db:"due_date"`
	Amount          decimal.Decimal `db:"amount"`
	CurrencyCode    string          `db:"currency_code"`
	Description     string          `db:"description"`
	LineItems       []byte          `db:"line_items"`
	PurchaseOrderID *string         `db:"purchase_order_id"`
	ReceiptID       *string         `db:"receipt_id"`
	Status          string          `db:"status"`
	MatchStatus     string          `db:"match_status"`
	MatchResult     []byte          `db:"match_result"` // Nullable
	MatchedAt       *time.Time      `db:"matched_at"`
	ApprovedBy      *string         `db:"approved_by"`
	ApprovedAt      *time.Time      `db:"approved_at"`
	RejectionReason *string         `db:"rejection_reason"`
	RejectedBy      *string         `db:"rejected_by"`
	RejectedAt      *time.Time      `db:"rejected_at"`
	VoidReason      *string         `db:"void_reason"`
	VoidedAt        *time.Time      `db:"voided_at"`
	PaidDate        *time.Time      `db:"paid_date"`
	Version         int64           `db:"version"`
	AuditFields
}
