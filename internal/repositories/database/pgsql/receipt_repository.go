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

const receiptColumns = `
	receipt_id, purchase_order_id, received_by, received_date, line_items, delivery_note_number,
	carrier, notes, status, created_at, created_by, last_updated_at, last_updated_by`

type PgxReceiptRepository struct {
	BaseRepository
}

func newPgxReceiptRepository(pool *pgxpool.Pool) portsrepo.ReceiptRepositoryFacade {
	return &PgxReceiptRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ReceiptRepositoryFacade = (*PgxReceiptRepository)(nil)

func scanReceipt(row pgx.Row) (domain.Receipt, error) {
	var m models.Receipt
	if err := row.Scan(
		&m.ReceiptID, &m.PurchaseOrderID, &m.ReceivedBy, &m.ReceivedDate, &m.LineItems, &m.DeliveryNoteNumber,
		&m.Carrier, &m.Notes, &m.Status, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	); err != nil {
		return domain.Receipt{}, err
	}
	return mapping.ToDomainReceipt(m)
}

// SaveReceipt stores a goods receipt and links it to the invoices waiting on its purchase order.
func (r *PgxReceiptRepository) SaveReceipt(ctx context.Context, receipt domain.Receipt) (int64, error) {
	m, err := mapping.ToModelReceipt(receipt)
	if err != nil {
		return 0, err
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx)

	// 1. Insert the receipt
	_, err = tx.Exec(ctx, `
		INSERT INTO receipts (`+receiptColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);`,
		m.ReceiptID, m.PurchaseOrderID, m.ReceivedBy, m.ReceivedDate, m.LineItems, m.DeliveryNoteNumber,
		m.Carrier, m.Notes, m.Status, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return 0, fmt.Errorf("%w: purchase order %s", apperrors.ErrNotFound, m.PurchaseOrderID)
		}
		return 0, apperrors.NewAppError(500, "failed to insert receipt "+m.ReceiptID, err)
	}

	// 2. Mark the purchase order received
	_, err = tx.Exec(ctx, `
		UPDATE purchase_orders
		SET receipt_status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE purchase_order_id = $1;`,
		m.PurchaseOrderID, string(domain.ReceiptStatusReceived), m.CreatedAt, m.CreatedBy,
	)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to mark purchase order "+m.PurchaseOrderID+" received", err)
	}

	// 3. Link waiting invoices and make them ready for matching
	tag, err := tx.Exec(ctx, `
		UPDATE vendor_invoices
		SET receipt_id = $2, match_status = $3, version = version + 1,
		    last_updated_at = $5, last_updated_by = $6
		WHERE purchase_order_id = $1 AND match_status = $4 AND status <> 'voided';`,
		m.PurchaseOrderID, m.ReceiptID, string(domain.MatchReadyForMatch), string(domain.MatchPending),
		m.CreatedAt, m.CreatedBy,
	)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to link receipt "+m.ReceiptID+" to invoices", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// FindReceiptByID retrieves a receipt by its ID.
func (r *PgxReceiptRepository) FindReceiptByID(ctx context.Context, receiptID string) (*domain.Receipt, error) {
	rec, err := scanReceipt(r.Pool.QueryRow(ctx, `SELECT `+receiptColumns+` FROM receipts WHERE receipt_id = $1;`, receiptID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find receipt %s: %w", receiptID, err)
	}
	return &rec, nil
}

// ListReceipts retrieves a page of receipts, most recently received first.
func (r *PgxReceiptRepository) ListReceipts(ctx context.Context, limit, offset int) ([]domain.Receipt, int, error) {
	var total int
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM receipts`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count receipts: %w", err)
	}
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.Pool.Query(ctx, `SELECT `+receiptColumns+` FROM receipts
		ORDER BY received_date DESC, created_at DESC LIMIT $1 OFFSET $2;`, limit, offset)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to query receipts", err)
	}
	defer rows.Close()

	result := []domain.Receipt{}
	for rows.Next() {
		rec, err := scanReceipt(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning receipt row: %w", err)
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating receipt rows: %w", err)
	}
	return result, total, nil
}
