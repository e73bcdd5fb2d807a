package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format accepted by every date field of the API.
const DateLayout = "2006-01-02"

// PayablesActionRequest is the envelope of POST /accounts-payable. Data is decoded
// into the request type named by Action.
type PayablesActionRequest struct {
	Action string          `json:"action" binding:"required"`
	Data   json.RawMessage `json:"data" swaggertype:"object"`
}

// PerformMatchRequest is the data of the perform_3way_match action.
type PerformMatchRequest struct {
	InvoiceID string `json:"invoice_id" binding:"required"`
}

// InvoiceLineItemRequest is a billed line submitted with an invoice.
type InvoiceLineItemRequest struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity" binding:"dgte0"`
	UnitPrice   decimal.Decimal `json:"unit_price" binding:"dgte0"`
	Amount      decimal.Decimal `json:"amount" binding:"dgte0"`
	POLineID    string          `json:"po_line_id"`
}

// CreateInvoiceRequest is the data of the create_invoice action.
type CreateInvoiceRequest struct {
	VendorID        string                   `json:"vendor_id" binding:"required,uuid"`
	InvoiceNumber   string                   `json:"invoice_number" binding:"required,max=64"`
	InvoiceDate     string                   `json:"invoice_date" binding:"required,datetime=2006-01-02"`
	DueDate         string                   `json:"due_date" binding:"required,datetime=2006-01-02"`
	Amount          decimal.Decimal          `json:"amount" binding:"dpositive"`
	Currency        string                   `json:"currency" binding:"omitempty,len=3"`
	Description     string                   `json:"description"`
	PurchaseOrderID *string                  `json:"purchase_order_id" binding:"omitempty,uuid"`
	ReceiptID       *string                  `json:"receipt_id" binding:"omitempty,uuid"`
	LineItems       []InvoiceLineItemRequest `json:"line_items" binding:"omitempty,dive"`
}

// ReceiptLineItemRequest records the quantity received against one PO line.
type ReceiptLineItemRequest struct {
	POLineID         string          `json:"po_line_id" binding:"required"`
	QuantityReceived decimal.Decimal `json:"quantity_received" binding:"dgte0"`
	Condition        string          `json:"condition" binding:"omitempty,oneof=good damaged partial rejected"`
	Notes            string          `json:"notes"`
}

// CreateReceiptRequest is the data of the create_receipt action.
type CreateReceiptRequest struct {
	PurchaseOrderID    string                   `json:"purchase_order_id" binding:"required,uuid"`
	ReceivedDate       string                   `json:"received_date" binding:"omitempty,datetime=2006-01-02"`
	LineItems          []ReceiptLineItemRequest `json:"line_items" binding:"required,min=1,dive"`
	DeliveryNoteNumber string                   `json:"delivery_note_number"`
	Carrier            string                   `json:"carrier"`
	Notes              string                   `json:"notes"`
}

// RecordPaymentRequest is the data of the record_payment action.
type RecordPaymentRequest struct {
	InvoiceID       string          `json:"invoice_id" binding:"required"`
	Amount          decimal.Decimal `json:"amount" binding:"dpositive"`
	PaymentMethod   string          `json:"payment_method" binding:"required,oneof=ach wire check credit_card other"`
	PaymentDate     string          `json:"payment_date" binding:"omitempty,datetime=2006-01-02"`
	ReferenceNumber string          `json:"reference_number"`
	Notes           string          `json:"notes"`
}

// UpdateInvoiceRequest is the body of PATCH /accounts-payable.
// Action selects approve or reject; any other value applies the general field update.
type UpdateInvoiceRequest struct {
	ID          string  `json:"id" binding:"required"`
	Action      string  `json:"action"`
	ApprovedBy  string  `json:"approved_by"`
	Reason      string  `json:"reason"`
	RejectedBy  string  `json:"rejected_by"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
}

// POLineItemRequest is an ordered line submitted with a purchase order.
type POLineItemRequest struct {
	POLineID    string          `json:"po_line_id" binding:"required"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity" binding:"dpositive"`
	UnitPrice   decimal.Decimal `json:"unit_price" binding:"dgte0"`
}

// CreatePurchaseOrderRequest is the body of POST /purchase-orders.
type CreatePurchaseOrderRequest struct {
	PONumber    string              `json:"po_number" binding:"required,max=64"`
	VendorID    string              `json:"vendor_id" binding:"required,uuid"`
	TotalAmount decimal.Decimal     `json:"total_amount" binding:"dgte0"`
	LineItems   []POLineItemRequest `json:"line_items" binding:"omitempty,dive"`
}

// ListParams are the paging and filter query parameters shared by the list views.
type ListParams struct {
	Page     int    `form:"page,default=1" binding:"min=1"`
	Limit    int    `form:"limit,default=50" binding:"min=1,max=500"`
	VendorID string `form:"vendor_id"`
	Status   string `form:"status"`
}

// Offset returns the row offset of the requested page.
func (p ListParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// ParseDate parses a calendar date in DateLayout as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
