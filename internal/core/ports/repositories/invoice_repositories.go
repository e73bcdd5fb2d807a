package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/ap_reconciliation_app/internal/core/domain"
)

// InvoiceReader defines read operations for vendor invoice data
type InvoiceReader interface {
	// FindInvoiceByID retrieves a specific invoice by its unique identifier.
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// FindInvoiceByNumber retrieves the invoice a vendor issued under invoiceNumber.
	FindInvoiceByNumber(ctx context.Context, vendorID, invoiceNumber string) (*domain.Invoice, error)

	// ListInvoices retrieves a page of invoices together with their completed payment totals.
	// IsOverdue is left for the caller to derive. It also returns the total count matching the filter.
	ListInvoices(ctx context.Context, filter domain.InvoiceFilter) ([]domain.InvoiceBalance, int, error)

	// ListInvoicesByMatchStatus retrieves every invoice currently in the given match status.
	ListInvoicesByMatchStatus(ctx context.Context, status domain.MatchStatus) ([]domain.Invoice, error)

	// ListOpenInvoices retrieves every invoice whose status is one of statuses, with payment totals.
	ListOpenInvoices(ctx context.Context, statuses []domain.InvoiceStatus) ([]domain.InvoiceBalance, error)
}

// InvoiceWriter defines write operations for vendor invoice data
type InvoiceWriter interface {
	// SaveInvoice inserts a new invoice. A duplicate vendor/invoice number returns apperrors.ErrDuplicate.
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error

	// UpdateInvoice writes every mutable column of invoice if the stored version still equals
	// invoice.Version, and bumps the version. A stale version returns apperrors.ErrConflict.
	UpdateInvoice(ctx context.Context, invoice domain.Invoice) (*domain.Invoice, error)

	// UpdateMatchResult stores the outcome of a 3-way match under the same version check as UpdateInvoice.
	UpdateMatchResult(ctx context.Context, invoiceID string, expectedVersion int64, result domain.MatchResult, matchedAt time.Time, userID string) (*domain.Invoice, error)
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}

// InvoiceRepositoryWithTx extends InvoiceRepositoryFacade with transaction capabilities
type InvoiceRepositoryWithTx interface {
	InvoiceRepositoryFacade
	TransactionManager
}
