package domain

import "github.com/shopspring/decimal"

// ReceiptStatus tracks whether goods for a purchase order have arrived.
type ReceiptStatus string

const (
	ReceiptStatusPending  ReceiptStatus = "pending"
	ReceiptStatusReceived ReceiptStatus = "received"
)

// POLineItem is an ordered line on a purchase order.
type POLineItem struct {
	POLineID    string          `json:"poLineID"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// PurchaseOrder is read-only input to 3-way matching.
type PurchaseOrder struct {
	PurchaseOrderID string          `json:"purchaseOrderID"`
	PONumber        string          `json:"poNumber"`
	VendorID        string          `json:"vendorID"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	LineItems       []POLineItem    `json:"lineItems"`
	ReceiptStatus   ReceiptStatus   `json:"receiptStatus"`
	AuditFields
}
