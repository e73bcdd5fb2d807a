package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/ap_reconciliation_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ap_reconciliation_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ap_reconciliation_app/internal/core/ports/services"
	"github.com/SscSPs/ap_reconciliation_app/internal/utils/accounting"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	invoiceRepo   portsrepo.InvoiceReader
	reportingRepo portsrepo.ReportingRepository
	policy        accounting.AgingPolicy
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(invoiceRepo portsrepo.InvoiceReader, reportingRepo portsrepo.ReportingRepository, policy accounting.AgingPolicy, options ...Option) portssvc.ReportingService {
	svc := &reportingService{
		invoiceRepo:   invoiceRepo,
		reportingRepo: reportingRepo,
		policy:        policy,
	}
	svc.apply(options)
	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// GetAgingReport buckets pending, approved and partially paid invoices by their invoice amount.
func (s *reportingService) GetAgingReport(ctx context.Context, asOf time.Time) (*domain.AgingReport, error) {
	invoices, err := s.invoiceRepo.ListOpenInvoices(ctx, domain.OpenInvoiceStatuses)
	if err != nil {
		s.LogError(ctx, err, "Failed to load open invoices for aging report")
		return nil, err
	}

	report := accounting.BuildAgingReport(invoices, asOf, s.policy)

	s.LogDebug(ctx, "Aging report built",
		slog.Time("as_of", asOf),
		slog.Int("invoices", report.Summary.TotalInvoices),
		slog.String("total_outstanding", report.Summary.TotalOutstanding.String()))
	return &report, nil
}

// GetPayablesSummary returns the AP dashboard totals.
func (s *reportingService) GetPayablesSummary(ctx context.Context, asOf time.Time) (*domain.PayablesSummary, error) {
	summary, err := s.reportingRepo.GetPayablesSummary(ctx, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to load payables summary")
		return nil, err
	}
	return summary, nil
}
