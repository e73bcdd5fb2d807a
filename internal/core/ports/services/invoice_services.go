package services

import (
	"context"

	"github.com/SscSPs/ap_reconciliation_app/internal/core/domain"
	"github.com/SscSPs/ap_reconciliation_app/internal/dto"
)

// InvoiceReaderSvc defines read operations for vendor invoices
type InvoiceReaderSvc interface {
	// GetInvoiceByID retrieves a specific invoice by its ID.
	GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoices retrieves a page of invoices enriched with paid amount, balance due and overdue flag.
	ListInvoices(ctx context.Context, params dto.ListParams) ([]domain.InvoiceBalance, int, error)
}

// InvoiceWriterSvc defines write operations for vendor invoices
type InvoiceWriterSvc interface {
	// CreateInvoice validates and stores a new vendor invoice.
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, userID string) (*domain.Invoice, error)

	// ApproveInvoice moves an invoice to approved.
	ApproveInvoice(ctx context.Context, invoiceID, approvedBy, userID string) (*domain.Invoice, error)

	// RejectInvoice moves an invoice to rejected with a reason.
	RejectInvoice(ctx context.Context, invoiceID, reason, rejectedBy, userID string) (*domain.Invoice, error)

	// UpdateInvoice applies a general field update.
	UpdateInvoice(ctx context.Context, req dto.UpdateInvoiceRequest, userID string) (*domain.Invoice, error)

	// VoidInvoice voids an invoice that has no completed payments.
	VoidInvoice(ctx context.Context, invoiceID, reason, userID string) error
}

// InvoiceSvcFacade combines all invoice-related service interfaces
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
	InvoiceWriterSvc
}
