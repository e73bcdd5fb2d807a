package dto

import (
	"time"

	"github.com/SscSPs/ap_reconciliation_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// POLineItemResponse is an ordered purchase order line.
type POLineItemResponse struct {
	POLineID    string          `json:"po_line_id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// PurchaseOrderResponse defines the data returned for a purchase order.
type PurchaseOrderResponse struct {
	ID            string               `json:"id"`
	PONumber      string               `json:"po_number"`
	VendorID      string               `json:"vendor_id"`
	TotalAmount   decimal.Decimal      `json:"total_amount"`
	ReceiptStatus string               `json:"receipt_status"`
	LineItems     []POLineItemResponse `json:"line_items"`
	CreatedAt     time.Time            `json:"created_at"`
	CreatedBy     string               `json:"created_by"`
}

// ReceiptLineItemResponse is a received line.
type ReceiptLineItemResponse struct {
	POLineID         string          `json:"po_line_id"`
	QuantityReceived decimal.Decimal `json:"quantity_received"`
	Condition        string          `json:"condition"`
	Notes            string          `json:"notes,omitempty"`
}

// ReceiptResponse defines the data returned for a goods receipt.
type ReceiptResponse struct {
	ID                 string                    `json:"id"`
	PurchaseOrderID    string                    `json:"purchase_order_id"`
	ReceivedBy         string                    `json:"received_by"`
	ReceivedDate       string                    `json:"received_date"`
	LineItems          []ReceiptLineItemResponse `json:"line_items"`
	DeliveryNoteNumber string                    `json:"delivery_note_number,omitempty"`
	Carrier            string                    `json:"carrier,omitempty"`
	Notes              string                    `json:"notes,omitempty"`
	Status             string                    `json:"status"`
	CreatedAt          time.Time                 `json:"created_at"`
}

// CreateReceiptResponse is returned by the create_receipt action.
type CreateReceiptResponse struct {
	Receipt        ReceiptResponse `json:"receipt"`
	LinkedInvoices int64           `json:"linked_invoices"`
}

// ListReceiptsResponse is the receipts view.
type ListReceiptsResponse struct {
	Receipts []ReceiptResponse `json:"receipts"`
	Total    int               `json:"total"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
}

// PaymentResponse defines the data returned for an invoice payment.
type PaymentResponse struct {
	ID              string          `json:"id"`
	InvoiceID       string          `json:"invoice_id"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentMethod   string          `json:"payment_method"`
	PaymentDate     string          `json:"payment_date"`
	ReferenceNumber string          `json:"reference_number,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	CreatedBy       string          `json:"created_by"`
}

// PaymentHistoryResponse is a payment joined with its invoice.
type PaymentHistoryResponse struct {
	PaymentResponse
	InvoiceNumber string          `json:"invoice_number"`
	VendorID      string          `json:"vendor_id"`
	InvoiceAmount decimal.Decimal `json:"invoice_amount"`
}

// ListPaymentsResponse is the payments view.
type ListPaymentsResponse struct {
	Payments []PaymentHistoryResponse `json:"payments"`
	Total    int                      `json:"total"`
	Page     int                      `json:"page"`
	Limit    int                      `json:"limit"`
}

// RecordPaymentResponse is returned by the record_payment action.
type RecordPaymentResponse struct {
	Payment       PaymentResponse `json:"payment"`
	InvoiceStatus string          `json:"invoice_status"`
}

// ToPurchaseOrderResponse converts a domain.PurchaseOrder to its DTO.
func ToPurchaseOrderResponse(po *domain.PurchaseOrder) PurchaseOrderResponse {
	lines := make([]POLineItemResponse, len(po.LineItems))
	for i, l := range po.LineItems {
		lines[i] = POLineItemResponse{POLineID: l.POLineID, Description: l.Description, Quantity: l.Quantity, UnitPrice: l.UnitPrice}
	}
	return PurchaseOrderResponse{
		ID:            po.PurchaseOrderID,
		PONumber:      po.PONumber,
		VendorID:      po.VendorID,
		TotalAmount:   po.TotalAmount,
		ReceiptStatus: string(po.ReceiptStatus),
		LineItems:     lines,
		CreatedAt:     po.CreatedAt,
		CreatedBy:     po.CreatedBy,
	}
}

// ToReceiptResponse converts a domain.Receipt to its DTO.
func ToReceiptResponse(r *domain.Receipt) ReceiptResponse {
	lines := make([]ReceiptLineItemResponse, len(r.LineItems))
	for i, l := range r.LineItems {
		lines[i] = ReceiptLineItemResponse{POLineID: l.POLineID, QuantityReceived: l.QuantityReceived, Condition: string(l.Condition), Notes: l.Notes}
	}
	return ReceiptResponse{
		ID:                 r.ReceiptID,
		PurchaseOrderID:    r.PurchaseOrderID,
		ReceivedBy:         r.ReceivedBy,
		ReceivedDate:       r.ReceivedDate.Format(DateLayout),
		LineItems:          lines,
		DeliveryNoteNumber: r.DeliveryNoteNumber,
		Carrier:            r.Carrier,
		Notes:              r.Notes,
		Status:             r.Status,
		CreatedAt:          r.CreatedAt,
	}
}

// ToReceiptResponses converts a slice of receipts to their DTOs.
func ToReceiptResponses(rs []domain.Receipt) []ReceiptResponse {
	out := make([]ReceiptResponse, len(rs))
	for i := range rs {
		out[i] = ToReceiptResponse(&rs[i])
	}
	return out
}

// ToPaymentResponse converts a domain.Payment to its DTO.
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:              p.PaymentID,
		InvoiceID:       p.InvoiceID,
		Amount:          p.Amount,
		PaymentMethod:   string(p.PaymentMethod),
		PaymentDate:     p.PaymentDate.Format(DateLayout),
		ReferenceNumber: p.ReferenceNumber,
		Notes:           p.Notes,
		Status:          string(p.Status),
		CreatedAt:       p.CreatedAt,
		CreatedBy:       p.CreatedBy,
	}
}

// ToPaymentHistoryResponses converts joined payment rows to their DTOs.
func ToPaymentHistoryResponses(ps []domain.PaymentWithInvoice) []PaymentHistoryResponse {
	out := make([]PaymentHistoryResponse, len(ps))
	for i := range ps {
		out[i] = PaymentHistoryResponse{
			PaymentResponse: ToPaymentResponse(&ps[i].Payment),
			InvoiceNumber:   ps[i].InvoiceNumber,
			VendorID:        ps[i].VendorID,
			InvoiceAmount:   ps[i].InvoiceAmount,
		}
	}
	return out
}
