package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/ap_reconciliation_app/internal/apperrors"
	"github.com/SscSPs/ap_reconciliation_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ap_reconciliation_app/internal/core/ports/repositories"
	"github.com/SscSPs/ap_reconciliation_app/internal/models"
	"github.com/SscSPs/ap_reconciliation_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// invoiceColumns is the select list shared by every invoice query. Queries alias vendor_invoices as i.
const invoiceColumns = `
	i.invoice_id, i.vendor_id, i.invoice_number, i.invoice_date, i.due_date, i.amount, i.currency_code,
	i.description, i.line_items, i.purchase_order_id, i.receipt_id, i.status, i.match_status,
	i.match_result, i.matched_at, i.approved_by, i.approved_at, i.rejection_reason, i.rejected_by,
	i.rejected_at, i.void_reason, i.voided_at, i.paid_date, i.version,
	i.created_at, i.created_by, i.last_updated_at, i.last_updated_by`

// paidAmountColumn sums completed payments for the invoice row in scope.
const paidAmountColumn = `
	COALESCE((SELECT SUM(p.amount) FROM invoice_payments p
	          WHERE p.invoice_id = i.invoice_id AND p.status = 'completed'), 0) AS paid_amount`

type PgxInvoiceRepository struct {
	BaseRepository
}

// newPgxInvoiceRepository creates a new repository for vendor invoice data.
func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryWithTx {
	return &PgxInvoiceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxInvoiceRepository implements portsrepo.InvoiceRepositoryWithTx
var _ portsrepo.InvoiceRepositoryWithTx = (*PgxInvoiceRepository)(nil)

func scanInvoice(row pgx.Row, extra ...any) (domain.Invoice, error) {
	var m models.Invoice
	dest := []any{
		&m.InvoiceID, &m.VendorID, &m.InvoiceNumber, &m.InvoiceDate, &m.DueDate, &m.Amount, &m.CurrencyCode,
		&m.Description, &m.LineItems, &m.PurchaseOrderID, &m.ReceiptID, &m.Status, &m.MatchStatus,
		&m.MatchResult, &m.MatchedAt, &m.ApprovedBy, &m.ApprovedAt, &m.RejectionReason, &m.RejectedBy,
		&m.RejectedAt, &m.VoidReason, &m.VoidedAt, &m.PaidDate, &m.Version,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return domain.Invoice{}, err
	}
	return mapping.ToDomainInvoice(m)
}

func scanInvoiceBalances(rows pgx.Rows) ([]domain.InvoiceBalance, error) {
	defer rows.Close()
	result := []domain.InvoiceBalance{}
	for rows.Next() {
		var paid decimal.Decimal
		inv, err := scanInvoice(rows, &paid)
		if err != nil {
			return nil, fmt.Errorf("error scanning invoice row: %w", err)
		}
		result = append(result, domain.InvoiceBalance{
			Invoice:    inv,
			PaidAmount: paid,
			BalanceDue: inv.Amount.Sub(paid),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invoice rows: %w", err)
	}
	return result, nil
}

// SaveInvoice inserts a new vendor invoice.
func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	m, err := mapping.ToModelInvoice(invoice)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO vendor_invoices (
			invoice_id, vendor_id, invoice_number, invoice_date, due_date, amount, currency_code,
			description, line_items, purchase_order_id, receipt_id, status, match_status, version,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err = r.Pool.Exec(ctx, query,
		m.InvoiceID, m.VendorID, m.InvoiceNumber, m.InvoiceDate, m.DueDate, m.Amount, m.CurrencyCode,
		m.Description, m.LineItems, m.PurchaseOrderID, m.ReceiptID, m.Status, m.MatchStatus, m.Version,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return fmt.Errorf("%w: invoice number %s already exists for this vendor", apperrors.ErrDuplicate, m.InvoiceNumber)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: linked purchase order or receipt does not exist", apperrors.ErrValidation)
		}
		return apperrors.NewAppError(500, "failed to insert invoice "+m.InvoiceID, err)
	}
	return nil
}

// FindInvoiceByID retrieves an invoice by its ID.
func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM vendor_invoices i WHERE i.invoice_id = $1;`
	inv, err := scanInvoice(r.Pool.QueryRow(ctx, query, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice %s: %w", invoiceID, err)
	}
	return &inv, nil
}

// FindInvoiceByNumber retrieves an invoice by vendor and invoice number.
func (r *PgxInvoiceRepository) FindInvoiceByNumber(ctx context.Context, vendorID, invoiceNumber string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM vendor_invoices i WHERE i.vendor_id = $1 AND i.invoice_number = $2;`
	inv, err := scanInvoice(r.Pool.QueryRow(ctx, query, vendorID, invoiceNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice %s for vendor %s: %w", invoiceNumber, vendorID, err)
	}
	return &inv, nil
}

// invoiceFilterClause builds the WHERE clause for filter, numbering placeholders from 1.
func invoiceFilterClause(filter domain.InvoiceFilter) (string, []any) {
	var conds []string
	var args []any
	if filter.VendorID != "" {
		args = append(args, filter.VendorID)
		conds = append(conds, "i.vendor_id = $"+strconv.Itoa(len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, "i.status = $"+strconv.Itoa(len(args)))
	}
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// ListInvoices retrieves a page of invoices, newest invoice date first.
func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context, filter domain.InvoiceFilter) ([]domain.InvoiceBalance, int, error) {
	where, args := invoiceFilterClause(filter)

	var total int
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM vendor_invoices i`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count invoices: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	query := `SELECT ` + invoiceColumns + `,` + paidAmountColumn + ` FROM vendor_invoices i` + where +
		` ORDER BY i.invoice_date DESC, i.created_at DESC` +
		` LIMIT $` + strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2) + `;`
	args = append(args, limit, filter.Offset)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to query invoices", err)
	}
	result, err := scanInvoiceBalances(rows)
	if err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

// ListInvoicesByMatchStatus retrieves all invoices in a match status, oldest first.
func (r *PgxInvoiceRepository) ListInvoicesByMatchStatus(ctx context.Context, status domain.MatchStatus) ([]domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM vendor_invoices i
		WHERE i.match_status = $1 AND i.status <> 'voided'
		ORDER BY i.created_at ASC;`
	rows, err := r.Pool.Query(ctx, query, string(status))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query invoices by match status", err)
	}
	defer rows.Close()

	result := []domain.Invoice{}
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning invoice row: %w", err)
		}
		result = append(result, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invoice rows: %w", err)
	}
	return result, nil
}

// ListOpenInvoices retrieves every invoice in one of statuses, earliest due date first.
func (r *PgxInvoiceRepository) ListOpenInvoices(ctx context.Context, statuses []domain.InvoiceStatus) ([]domain.InvoiceBalance, error) {
	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = string(s)
	}
	query := `SELECT ` + invoiceColumns + `,` + paidAmountColumn + ` FROM vendor_invoices i
		WHERE i.status = ANY($1)
		ORDER BY i.due_date ASC;`
	rows, err := r.Pool.Query(ctx, query, names)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query open invoices", err)
	}
	return scanInvoiceBalances(rows)
}

// UpdateInvoice writes the mutable columns of invoice under an optimistic version check.
func (r *PgxInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) (*domain.Invoice, error) {
	return updateInvoice(ctx, r.Pool, invoice)
}

// UpdateMatchResult stores a 3-way match outcome under an optimistic version check.
func (r *PgxInvoiceRepository) UpdateMatchResult(ctx context.Context, invoiceID string, expectedVersion int64, result domain.MatchResult, matchedAt time.Time, userID string) (*domain.Invoice, error) {
	raw, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to encode match result: %w", err)
	}

	query := `
		UPDATE vendor_invoices i SET
			match_status = $3, status = $4, match_result = $5, matched_at = $6,
			version = i.version + 1, last_updated_at = $6, last_updated_by = $7
		WHERE i.invoice_id = $1 AND i.version = $2
		RETURNING ` + invoiceColumns + `;`
	inv, err := scanInvoice(r.Pool.QueryRow(ctx, query,
		invoiceID, expectedVersion,
		string(result.MatchStatus()), string(result.InvoiceStatus()), raw, matchedAt, userID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, versionMissError(ctx, r.Pool, invoiceID, expectedVersion)
		}
		return nil, apperrors.NewAppError(500, "failed to store match result for invoice "+invoiceID, err)
	}
	return &inv, nil
}

func updateInvoice(ctx context.Context, q querier, invoice domain.Invoice) (*domain.Invoice, error) {
	m, err := mapping.ToModelInvoice(invoice)
	if err != nil {
		return nil, err
	}

	query := `
		UPDATE vendor_invoices i SET
			due_date = $3, description = $4, line_items = $5, purchase_order_id = $6, receipt_id = $7,
			status = $8, match_status = $9, match_result = $10, matched_at = $11,
			approved_by = $12, approved_at = $13, rejection_reason = $14, rejected_by = $15, rejected_at = $16,
			void_reason = $17, voided_at = $18, paid_date = $19,
			version = i.version + 1, last_updated_at = $20, last_updated_by = $21
		WHERE i.invoice_id = $1 AND i.version = $2
		RETURNING ` + invoiceColumns + `;`
	updated, err := scanInvoice(q.QueryRow(ctx, query,
		m.InvoiceID, m.Version,
		m.DueDate, m.Description, m.LineItems, m.PurchaseOrderID, m.ReceiptID,
		m.Status, m.MatchStatus, m.MatchResult, m.MatchedAt,
		m.ApprovedBy, m.ApprovedAt, m.RejectionReason, m.RejectedBy, m.RejectedAt,
		m.VoidReason, m.VoidedAt, m.PaidDate,
		m.LastUpdatedAt, m.LastUpdatedBy,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, versionMissError(ctx, q, m.InvoiceID, m.Version)
		}
		return nil, apperrors.NewAppError(500, "failed to update invoice "+m.InvoiceID, err)
	}
	return &updated, nil
}

// versionMissError tells a missing invoice apart from a stale version after an UPDATE matched no row.
func versionMissError(ctx context.Context, q querier, invoiceID string, expectedVersion int64) error {
	var current int64
	err := q.QueryRow(ctx, `SELECT version FROM vendor_invoices WHERE invoice_id = $1`, invoiceID).Scan(&current)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to read version of invoice %s: %w", invoiceID, err)
	}
	return fmt.Errorf("%w: invoice %s is at version %d, expected %d", apperrors.ErrConflict, invoiceID, current, expectedVersion)
}
