package services

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/SscSPs/ap_reconciliation_app/internal/apperrors"
	"github.com/SscSPs/ap_reconciliation_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ap_reconciliation_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ap_reconciliation_app/internal/core/ports/services"
	"github.com/SscSPs/ap_reconciliation_app/internal/dto"
	"github.com/SscSPs/ap_reconciliation_app/internal/utils/accounting"
)

// paymentService records payments against vendor invoices.
type paymentService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceReader
	paymentRepo portsrepo.PaymentRepositoryFacade
}

// NewPaymentService creates a new payment service.
func NewPaymentService(invoiceRepo portsrepo.InvoiceReader, paymentRepo portsrepo.PaymentRepositoryFacade, options ...Option) portssvc.PaymentSvcFacade {
	svc := &paymentService{invoiceRepo: invoiceRepo, paymentRepo: paymentRepo}
	svc.apply(options)
	return svc
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

func (s *paymentService) RecordPayment(ctx context.Context, req dto.RecordPaymentRequest, userID string) (*domain.Payment, domain.InvoiceStatus, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, req.InvoiceID)
	if err != nil {
		return nil, "", notFound(err, "invoice", req.InvoiceID)
	}
	if invoice.IsVoided() {
		return nil, "", apperrors.NewValidationError("cannot record a payment on voided invoice %s", req.InvoiceID)
	}

	existing, err := s.paymentRepo.ListPaymentsByInvoice(ctx, req.InvoiceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load payments", slog.String("invoice_id", req.InvoiceID))
		return nil, "", err
	}
	newStatus, err := accounting.ValidatePayment(invoice.Amount, domain.SumCompleted(existing), req.Amount)
	if err != nil {
		return nil, "", apperrors.NewValidationError("%s", err.Error())
	}

	now := s.Now()
	paymentDate := now
	if req.PaymentDate != "" {
		d, err := dto.ParseDate(req.PaymentDate)
		if err != nil {
			return nil, "", apperrors.NewValidationError("payment_date must be a YYYY-MM-DD date")
		}
		paymentDate = d
	}

	payment := domain.Payment{
		PaymentID:       uuid.NewString(),
		InvoiceID:       invoice.InvoiceID,
		Amount:          req.Amount,
		PaymentMethod:   domain.PaymentMethod(req.PaymentMethod),
		PaymentDate:     paymentDate,
		ReferenceNumber: req.ReferenceNumber,
		Notes:           req.Notes,
		Status:          domain.PaymentCompleted,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	invoice.Status = newStatus
	if newStatus == domain.InvoicePaid {
		invoice.PaidDate = &paymentDate
	}
	invoice.LastUpdatedAt = now
	invoice.LastUpdatedBy = userID

	updated, err := s.paymentRepo.SavePayment(ctx, payment, *invoice)
	if err != nil {
		s.LogError(ctx, err, "Failed to record payment", slog.String("invoice_id", invoice.InvoiceID))
		return nil, "", err
	}

	s.LogInfo(ctx, "Payment recorded",
		slog.String("payment_id", payment.PaymentID),
		slog.String("invoice_id", invoice.InvoiceID),
		slog.String("invoice_status", string(updated.Status)))
	return &payment, updated.Status, nil
}

func (s *paymentService) ListPayments(ctx context.Context, params dto.ListParams) ([]domain.PaymentWithInvoice, int, error) {
	filter := domain.InvoiceFilter{VendorID: params.VendorID, Limit: params.Limit, Offset: params.Offset()}
	payments, total, err := s.paymentRepo.ListPayments(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments")
		return nil, 0, err
	}
	return payments, total, nil
}
