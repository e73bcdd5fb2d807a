package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/ap_reconciliation_app/internal/core/domain"
)

// ReportingRepository defines operations for retrieving payables dashboard data
type ReportingRepository interface {
	// GetPayablesSummary aggregates pending, overdue and paid totals as of now.
	GetPayablesSummary(ctx context.Context, now time.Time) (*domain.PayablesSummary, error)
}
