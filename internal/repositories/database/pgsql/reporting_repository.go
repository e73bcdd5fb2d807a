package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/ap_reconciliation_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ap_reconciliation_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// GetPayablesSummary aggregates the AP dashboard figures in a single round trip.
func (r *reportingRepository) GetPayablesSummary(ctx context.Context, now time.Time) (*domain.PayablesSummary, error) {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	last30 := now.Add(-30 * 24 * time.Hour)

	query := `
		SELECT
			(SELECT COUNT(*) FROM vendor_invoices WHERE status IN ('pending', 'approved')),
			(SELECT COALESCE(SUM(amount), 0) FROM vendor_invoices WHERE status IN ('pending', 'approved')),
			(SELECT COUNT(*) FROM vendor_invoices WHERE status IN ('pending', 'approved') AND due_date < $1),
			(SELECT COALESCE(SUM(amount), 0) FROM vendor_invoices WHERE status IN ('pending', 'approved') AND due_date < $1),
			(SELECT COALESCE(SUM(amount), 0) FROM vendor_invoices WHERE status = 'paid' AND paid_date >= $2),
			(SELECT COALESCE(SUM(amount), 0) FROM invoice_payments WHERE status = 'completed' AND payment_date >= $3)
	`

	var s domain.PayablesSummary
	err := r.Pool.QueryRow(ctx, query, now, monthStart, last30).Scan(
		&s.PendingInvoices,
		&s.PendingAmount,
		&s.OverdueInvoices,
		&s.OverdueAmount,
		&s.PaidThisMonth,
		&s.PaidLast30Days,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying payables summary: %w", err)
	}
	return &s, nil
}
