package models

import "time"

// Receipt is a row of the receipts table.
type Receipt struct {
	ReceiptID          string    `db:"receipt_id"`
	PurchaseOrderID    string    `db:"purchase_order_id"`
	ReceivedBy         string    `db:"received_by"`
	ReceivedDate       time.Time `db:"received_date"`
	LineItems          []byte    `db:"line_items"`
	DeliveryNoteNumber string    `db:"delivery_note_number"`
	Carrier            string    `db:"carrier"`
	Notes              string    `db:"notes"`
	Status             string    `db:"status"`
	AuditFields
}
