package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is how an invoice payment was made.
type PaymentMethod string

const (
	PaymentACH        PaymentMethod = "ach"
	PaymentWire       PaymentMethod = "wire"
	PaymentCheck      PaymentMethod = "check"
	PaymentCreditCard PaymentMethod = "credit_card"
	PaymentOther      PaymentMethod = "other"
)

// PaymentStatus is the settlement state of a payment. Only completed payments reduce a balance.
type PaymentStatus string

const (
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

// Payment is appended against an invoice and never mutated.
type Payment struct {
	PaymentID       string          `json:"paymentID"`
	InvoiceID       string          `json:"invoiceID"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentMethod   PaymentMethod   `json:"paymentMethod"`
	PaymentDate     time.Time       `json:"paymentDate"`
	ReferenceNumber string          `json:"referenceNumber"`
	Notes           string          `json:"notes"`
	Status          PaymentStatus   `json:"status"`
	AuditFields
}

// PaymentWithInvoice is a payment joined with the invoice it settles, used by payment history.
type PaymentWithInvoice struct {
	Payment
	InvoiceNumber string          `json:"invoiceNumber"`
	VendorID      string          `json:"vendorID"`
	InvoiceAmount decimal.Decimal `json:"invoiceAmount"`
}

// SumCompleted totals the completed payments in ps.
func SumCompleted(ps []Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range ps {
		if p.Status == PaymentCompleted {
			total = total.Add(p.Amount)
		}
	}
	return total
}
