package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is a row of the invoice_payments table.
type Payment struct {
	PaymentID       string          `db:"payment_id"`
	InvoiceID       string          `db:"invoice_id"`
	Amount          decimal.Decimal `db:"amount"`
	PaymentMethod   string          `db:"payment_method"`
	PaymentDate     time.Time       `db:"payment_date"`
	ReferenceNumber string          `db:"reference_number"`
	Notes           string          `db:"notes"`
	Status          string          `db:"status"`
	AuditFields
}
