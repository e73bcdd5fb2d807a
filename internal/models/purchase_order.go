package models

import "github.com/shopspring/decimal"

// PurchaseOrder is a row of the purchase_orders table.
type PurchaseOrder struct {
	PurchaseOrderID string          `db:"purchase_order_id"`
	PONumber        string          `db:"po_number"`
	VendorID        string          `db:"vendor_id"`
	TotalAmount     decimal.Decimal `db:"total_amount"`
	LineItems       []byte          `db:"line_items"`
	ReceiptStatus   string          `db:"receipt_status"`
	AuditFields
}
