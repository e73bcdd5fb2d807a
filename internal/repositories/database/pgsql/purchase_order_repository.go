package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/ap_reconciliation_app/internal/apperrors"
	"github.com/SscSPs/ap_reconciliation_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ap_reconciliation_app/internal/core/ports/repositories"
	"github.com/SscSPs/ap_reconciliation_app/internal/models"
	"github.com/SscSPs/ap_reconciliation_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPurchaseOrderRepository struct {
	BaseRepository
}

func newPgxPurchaseOrderRepository(pool *pgxpool.Pool) portsrepo.PurchaseOrderRepositoryFacade {
	return &PgxPurchaseOrderRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PurchaseOrderRepositoryFacade = (*PgxPurchaseOrderRepository)(nil)

// SavePurchaseOrder inserts a new purchase order.
func (r *PgxPurchaseOrderRepository) SavePurchaseOrder(ctx context.Context, po domain.PurchaseOrder) error {
	m, err := mapping.ToModelPurchaseOrder(po)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO purchase_orders (
			purchase_order_id, po_number, vendor_id, total_amount, line_items, receipt_status,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = r.Pool.Exec(ctx, query,
		m.PurchaseOrderID, m.PONumber, m.VendorID, m.TotalAmount, m.LineItems, m.ReceiptStatus,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return fmt.Errorf("%w: purchase order %s already exists for this vendor", apperrors.ErrDuplicate, m.PONumber)
		}
		return apperrors.NewAppError(500, "failed to insert purchase order "+m.PurchaseOrderID, err)
	}
	return nil
}

// FindPurchaseOrderByID retrieves a purchase order by its ID.
func (r *PgxPurchaseOrderRepository) FindPurchaseOrderByID(ctx context.Context, purchaseOrderID string) (*domain.PurchaseOrder, error) {
	query := `
		SELECT purchase_order_id, po_number, vendor_id, total_amount, line_items, receipt_status,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM purchase_orders
		WHERE purchase_order_id = $1;
	`
	var m models.PurchaseOrder
	err := r.Pool.QueryRow(ctx, query, purchaseOrderID).Scan(
		&m.PurchaseOrderID, &m.PONumber, &m.VendorID, &m.TotalAmount, &m.LineItems, &m.ReceiptStatus,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find purchase order %s: %w", purchaseOrderID, err)
	}

	po, err := mapping.ToDomainPurchaseOrder(m)
	if err != nil {
		return nil, err
	}
	return &po, nil
}
