package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/ap_reconciliation_app/internal/apperrors"
	"github.com/SscSPs/ap_reconciliation_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ap_reconciliation_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ap_reconciliation_app/internal/core/ports/services"
	"github.com/SscSPs/ap_reconciliation_app/internal/utils/accounting"
)

// EventInvoiceMatched is the analytics event sent after a 3-way match is stored.
const EventInvoiceMatched = "invoice_3way_matched"

// matchingService loads the documents of an invoice and runs the 3-way match over them.
type matchingService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	poRepo      portsrepo.PurchaseOrderRepositoryFacade
	receiptRepo portsrepo.ReceiptReader
	tolerance   decimal.Decimal
}

// NewMatchingService creates a new matching service comparing amounts within tolerance.
func NewMatchingService(
	invoiceRepo portsrepo.InvoiceRepositoryFacade,
	poRepo portsrepo.PurchaseOrderRepositoryFacade,
	receiptRepo portsrepo.ReceiptReader,
	tolerance decimal.Decimal,
	options ...Option,
) portssvc.MatchingSvc {
	svc := &matchingService{
		invoiceRepo: invoiceRepo,
		poRepo:      poRepo,
		receiptRepo: receiptRepo,
		tolerance:   tolerance,
	}
	svc.apply(options)
	return svc
}

var _ portssvc.MatchingSvc = (*matchingService)(nil)

// matchInput resolves the purchase order and receipt linked to invoice. A link to a
// document that no longer exists is treated as no link.
func (s *matchingService) matchInput(ctx context.Context, invoice domain.Invoice) (accounting.MatchInput, error) {
	in := accounting.MatchInput{Invoice: invoice}

	if invoice.PurchaseOrderID != nil {
		po, err := s.poRepo.FindPurchaseOrderByID(ctx, *invoice.PurchaseOrderID)
		switch {
		case err == nil:
			in.PurchaseOrder = po
		case !errors.Is(err, apperrors.ErrNotFound):
			return in, err
		}
	}

	if invoice.ReceiptID != nil {
		receipt, err := s.receiptRepo.FindReceiptByID(ctx, *invoice.ReceiptID)
		switch {
		case err == nil:
			in.Receipt = receipt
		case !errors.Is(err, apperrors.ErrNotFound):
			return in, err
		}
	}
	return in, nil
}

func (s *matchingService) PerformMatch(ctx context.Context, invoiceID, userID string) (*domain.MatchResult, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, notFound(err, "invoice", invoiceID)
	}
	if invoice.IsVoided() {
		return nil, apperrors.NewValidationError("invoice %s is voided and cannot be matched", invoiceID)
	}

	in, err := s.matchInput(ctx, *invoice)
	if err != nil {
		s.LogError(ctx, err, "Failed to load match documents", slog.String("invoice_id", invoiceID))
		return nil, err
	}

	result := accounting.ThreeWayMatch(in, s.tolerance)

	if _, err := s.invoiceRepo.UpdateMatchResult(ctx, invoiceID, invoice.Version, result, s.Now(), userID); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			s.LogInfo(ctx, "Match result lost a concurrent write", slog.String("invoice_id", invoiceID))
		} else {
			s.LogError(ctx, err, "Failed to store match result", slog.String("invoice_id", invoiceID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Invoice matched",
		slog.String("invoice_id", invoiceID),
		slog.String("match_status", string(result.MatchStatus())),
		slog.Bool("auto_approved", result.AutoApprove),
		slog.Int("discrepancies", len(result.Discrepancies)))
	s.Track(userID, EventInvoiceMatched, map[string]any{
		"invoice_id":    invoiceID,
		"auto_approved": result.AutoApprove,
		"discrepancies": len(result.Discrepancies),
	})
	return &result, nil
}

func (s *matchingService) ListPendingMatches(ctx context.Context) ([]domain.MatchAnalysis, error) {
	invoices, err := s.invoiceRepo.ListInvoicesByMatchStatus(ctx, domain.MatchPending)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoices pending match")
		return nil, err
	}

	analyses := make([]domain.MatchAnalysis, 0, len(invoices))
	for _, invoice := range invoices {
		in, err := s.matchInput(ctx, invoice)
		if err != nil {
			s.LogError(ctx, err, "Failed to load match documents", slog.String("invoice_id", invoice.InvoiceID))
			return nil, err
		}
		analyses = append(analyses, domain.MatchAnalysis{
			InvoiceID:     invoice.InvoiceID,
			InvoiceNumber: invoice.InvoiceNumber,
			VendorID:      invoice.VendorID,
			MatchResult:   accounting.ThreeWayMatch(in, s.tolerance),
		})
	}
	return analyses, nil
}
