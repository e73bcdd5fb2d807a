package services

import (
	"context"
	"time"

	"github.com/SscSPs/ap_reconciliation_app/internal/core/domain"
)

// ReportingService defines operations for generating payables reports
type ReportingService interface {
	// GetAgingReport buckets every open invoice by days overdue as of asOf.
	GetAgingReport(ctx context.Context, asOf time.Time) (*domain.AgingReport, error)

	// GetPayablesSummary returns the AP dashboard totals as of asOf.
	GetPayablesSummary(ctx context.Context, asOf time.Time) (*domain.PayablesSummary, error)
}
