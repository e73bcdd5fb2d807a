package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/SscSPs/ap_reconciliation_app/internal/apperrors"
	"github.com/SscSPs/ap_reconciliation_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ap_reconciliation_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ap_reconciliation_app/internal/core/ports/services"
	"github.com/SscSPs/ap_reconciliation_app/internal/dto"
)

const defaultCurrency = "USD"

// invoiceService manages the vendor invoice lifecycle.
type invoiceService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	paymentRepo portsrepo.PaymentRepositoryFacade
}

// NewInvoiceService creates a new invoice service.
func NewInvoiceService(invoiceRepo portsrepo.InvoiceRepositoryFacade, paymentRepo portsrepo.PaymentRepositoryFacade, options ...Option) portssvc.InvoiceSvcFacade {
	svc := &invoiceService{
		invoiceRepo: invoiceRepo,
		paymentRepo: paymentRepo,
	}
	svc.apply(options)
	return svc
}

// Ensure invoiceService implements the InvoiceSvcFacade interface
var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, userID string) (*domain.Invoice, error) {
	invoiceDate, err := dto.ParseDate(req.InvoiceDate)
	if err != nil {
		return nil, apperrors.NewValidationError("invoice_date must be a YYYY-MM-DD date")
	}
	dueDate, err := dto.ParseDate(req.DueDate)
	if err != nil {
		return nil, apperrors.NewValidationError("due_date must be a YYYY-MM-DD date")
	}
	if dueDate.Before(invoiceDate) {
		return nil, apperrors.NewValidationError("due_date cannot be before invoice_date")
	}
	if !req.Amount.IsPositive() {
		return nil, apperrors.NewValidationError("amount must be positive")
	}

	existing, err := s.invoiceRepo.FindInvoiceByNumber(ctx, req.VendorID, req.InvoiceNumber)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check for duplicate invoice", slog.String("vendor_id", req.VendorID))
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: invoice number %s already exists for this vendor", apperrors.ErrDuplicate, req.InvoiceNumber)
	}

	currency := strings.ToUpper(req.Currency)
	if currency == "" {
		currency = defaultCurrency
	}

	lines := make([]domain.InvoiceLineItem, len(req.LineItems))
	for i, l := range req.LineItems {
		lines[i] = domain.InvoiceLineItem{
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Amount:      l.Amount,
			POLineID:    l.POLineID,
		}
	}

	now := s.Now()
	invoice := domain.Invoice{
		InvoiceID:       uuid.NewString(),
		VendorID:        req.VendorID,
		InvoiceNumber:   req.InvoiceNumber,
		InvoiceDate:     invoiceDate,
		DueDate:         dueDate,
		Amount:          req.Amount,
		CurrencyCode:    currency,
		Description:     req.Description,
		LineItems:       lines,
		PurchaseOrderID: blankToNil(req.PurchaseOrderID),
		ReceiptID:       blankToNil(req.ReceiptID),
		Status:          domain.InvoicePending,
		Version:         1,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	invoice.MatchStatus = domain.InitialMatchStatus(invoice.PurchaseOrderID, invoice.ReceiptID)

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		s.LogError(ctx, err, "Failed to save invoice", slog.String("invoice_number", invoice.InvoiceNumber))
		return nil, err
	}

	s.LogInfo(ctx, "Invoice created",
		slog.String("invoice_id", invoice.InvoiceID),
		slog.String("vendor_id", invoice.VendorID),
		slog.String("match_status", string(invoice.MatchStatus)))
	return &invoice, nil
}

func (s *invoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, notFound(err, "invoice", invoiceID)
	}
	return invoice, nil
}

func (s *invoiceService) ListInvoices(ctx context.Context, params dto.ListParams) ([]domain.InvoiceBalance, int, error) {
	filter := domain.InvoiceFilter{
		VendorID: params.VendorID,
		Status:   params.Status,
		Limit:    params.Limit,
		Offset:   params.Offset(),
	}
	rows, total, err := s.invoiceRepo.ListInvoices(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoices")
		return nil, 0, err
	}

	now := s.Now()
	for i := range rows {
		rows[i] = domain.NewInvoiceBalance(rows[i].Invoice, rows[i].PaidAmount, now)
	}
	return rows, total, nil
}

// loadMutable fetches an invoice that is about to change and refuses voided ones.
func (s *invoiceService) loadMutable(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	invoice, err := s.GetInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice.IsVoided() {
		return nil, apperrors.NewValidationError("invoice %s is voided and cannot be modified", invoiceID)
	}
	return invoice, nil
}

func (s *invoiceService) save(ctx context.Context, invoice *domain.Invoice, userID string) (*domain.Invoice, error) {
	invoice.LastUpdatedAt = s.Now()
	invoice.LastUpdatedBy = userID
	updated, err := s.invoiceRepo.UpdateInvoice(ctx, *invoice)
	if err != nil {
		s.LogError(ctx, err, "Failed to update invoice", slog.String("invoice_id", invoice.InvoiceID))
		return nil, err
	}
	return updated, nil
}

func (s *invoiceService) ApproveInvoice(ctx context.Context, invoiceID, approvedBy, userID string) (*domain.Invoice, error) {
	invoice, err := s.loadMutable(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice.Status == domain.InvoicePaid {
		return nil, apperrors.NewValidationError("invoice %s is already paid", invoiceID)
	}
	if approvedBy == "" {
		approvedBy = userID
	}

	now := s.Now()
	invoice.Status = domain.InvoiceApproved
	invoice.ApprovedBy = &approvedBy
	invoice.ApprovedAt = &now
	return s.save(ctx, invoice, userID)
}

func (s *invoiceService) RejectInvoice(ctx context.Context, invoiceID, reason, rejectedBy, userID string) (*domain.Invoice, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, apperrors.NewValidationError("a reason is required to reject an invoice")
	}
	invoice, err := s.loadMutable(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice.Status == domain.InvoicePaid {
		return nil, apperrors.NewValidationError("invoice %s is already paid", invoiceID)
	}
	if rejectedBy == "" {
		rejectedBy = userID
	}

	now := s.Now()
	invoice.Status = domain.InvoiceRejected
	invoice.RejectionReason = &reason
	invoice.RejectedBy = &rejectedBy
	invoice.RejectedAt = &now
	return s.save(ctx, invoice, userID)
}

func (s *invoiceService) UpdateInvoice(ctx context.Context, req dto.UpdateInvoiceRequest, userID string) (*domain.Invoice, error) {
	if req.Description == nil && req.DueDate == nil {
		return nil, apperrors.NewValidationError("no updatable fields provided")
	}
	invoice, err := s.loadMutable(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		invoice.Description = *req.Description
	}
	if req.DueDate != nil {
		due, err := dto.ParseDate(*req.DueDate)
		if err != nil {
			return nil, apperrors.NewValidationError("due_date must be a YYYY-MM-DD date")
		}
		if due.Before(invoice.InvoiceDate) {
			return nil, apperrors.NewValidationError("due_date cannot be before invoice_date")
		}
		invoice.DueDate = due
	}
	return s.save(ctx, invoice, userID)
}

func (s *invoiceService) VoidInvoice(ctx context.Context, invoiceID, reason, userID string) error {
	invoice, err := s.loadMutable(ctx, invoiceID)
	if err != nil {
		return err
	}

	payments, err := s.paymentRepo.ListPaymentsByInvoice(ctx, invoiceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load payments for void", slog.String("invoice_id", invoiceID))
		return err
	}
	if domain.SumCompleted(payments).IsPositive() {
		return apperrors.NewValidationError("cannot void invoice %s with completed payments", invoiceID)
	}

	now := s.Now()
	invoice.Status = domain.InvoiceVoided
	invoice.VoidReason = &reason
	invoice.VoidedAt = &now
	if _, err := s.save(ctx, invoice, userID); err != nil {
		return err
	}

	s.LogInfo(ctx, "Invoice voided", slog.String("invoice_id", invoiceID), slog.String("reason", reason))
	return nil
}

func blankToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
