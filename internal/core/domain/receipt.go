package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReceiptCondition describes the state goods arrived in.
type ReceiptCondition string

const (
	ConditionGood     ReceiptCondition = "good"
	ConditionDamaged  ReceiptCondition = "damaged"
	ConditionPartial  ReceiptCondition = "partial"
	ConditionRejected ReceiptCondition = "rejected"
)

// ReceiptLineItem records the quantity received against one PO line.
type ReceiptLineItem struct {
	POLineID         string           `json:"poLineID"`
	QuantityReceived decimal.Decimal  `json:"quantityReceived"`
	Condition        ReceiptCondition `json:"condition"`
	Notes            string           `json:"notes,omitempty"`
}

// Receipt is a goods receipt against a purchase order.
type Receipt struct {
	ReceiptID          string            `json:"receiptID"`
	PurchaseOrderID    string            `json:"purchaseOrderID"`
	ReceivedBy         string            `json:"receivedBy"`
	ReceivedDate       time.Time         `json:"receivedDate"`
	LineItems          []ReceiptLineItem `json:"lineItems"`
	DeliveryNoteNumber string            `json:"deliveryNoteNumber"`
	Carrier            string            `json:"carrier"`
	Notes              string            `json:"notes"`
	Status             string            `json:"status"`
	AuditFields
}
