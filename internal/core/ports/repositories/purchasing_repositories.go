package repositories

import (
	"context"

	"github.com/SscSPs/ap_reconciliation_app/internal/core/domain"
)

// PurchaseOrderRepositoryFacade defines persistence operations for purchase orders.
type PurchaseOrderRepositoryFacade interface {
	SavePurchaseOrder(ctx context.Context, po domain.PurchaseOrder) error
	FindPurchaseOrderByID(ctx context.Context, purchaseOrderID string) (*domain.PurchaseOrder, error)
}

// ReceiptReader defines read operations for goods receipts
type ReceiptReader interface {
	FindReceiptByID(ctx context.Context, receiptID string) (*domain.Receipt, error)
	// ListReceipts returns a page of receipts, newest first, and the total count.
	ListReceipts(ctx context.Context, limit, offset int) ([]domain.Receipt, int, error)
}

// ReceiptWriter defines write operations for goods receipts
type ReceiptWriter interface {
	// SaveReceipt inserts the receipt, marks its purchase order received and, in the same
	// database transaction, links it to every invoice on that order still in match status
	// pending, moving them to ready_for_match. It returns the number of invoices linked.
	SaveReceipt(ctx context.Context, receipt domain.Receipt) (int64, error)
}

// ReceiptRepositoryFacade combines all receipt-related repository interfaces
type ReceiptRepositoryFacade interface {
	ReceiptReader
	ReceiptWriter
}

// PaymentRepositoryFacade defines persistence operations for invoice payments.
type PaymentRepositoryFacade interface {
	// ListPaymentsByInvoice retrieves every payment recorded against an invoice.
	ListPaymentsByInvoice(ctx context.Context, invoiceID string) ([]domain.Payment, error)

	// ListPayments retrieves payment history joined with invoice data, newest first.
	ListPayments(ctx context.Context, filter domain.InvoiceFilter) ([]domain.PaymentWithInvoice, int, error)

	// SavePayment inserts payment and applies the invoice status change in one database
	// transaction. The invoice write carries the same version check as InvoiceWriter.UpdateInvoice.
	SavePayment(ctx context.Context, payment domain.Payment, invoice domain.Invoice) (*domain.Invoice, error)
}
