package pgsql

import (
	"context"
	"fmt"
	"strconv"

	"github.com/SscSPs/ap_reconciliation_app/internal/apperrors"
	"github.com/SscSPs/ap_reconciliation_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ap_reconciliation_app/internal/core/ports/repositories"
	"github.com/SscSPs/ap_reconciliation_app/internal/models"
	"github.com/SscSPs/ap_reconciliation_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

const paymentColumns = `
	p.payment_id, p.invoice_id, p.amount, p.payment_method, p.payment_date, p.reference_number,
	p.notes, p.status, p.created_at, p.created_by, p.last_updated_at, p.last_updated_by`

type PgxPaymentRepository struct {
	BaseRepository
}

func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

func paymentDest(m *models.Payment) []any {
	return []any{
		&m.PaymentID, &m.InvoiceID, &m.Amount, &m.PaymentMethod, &m.PaymentDate, &m.ReferenceNumber,
		&m.Notes, &m.Status, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	}
}

// SavePayment records payment and writes the invoice's new status in one transaction.
func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment, invoice domain.Invoice) (*domain.Invoice, error) {
	m := mapping.ToModelPayment(payment)

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	_, err = tx.Exec(ctx, `
		INSERT INTO invoice_payments (
			payment_id, invoice_id, amount, payment_method, payment_date, reference_number,
			notes, status, created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);`,
		m.PaymentID, m.InvoiceID, m.Amount, m.PaymentMethod, m.PaymentDate, m.ReferenceNumber,
		m.Notes, m.Status, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert payment "+m.PaymentID, err)
	}

	// The version check makes two concurrent payments on one invoice serialize: the loser rolls back.
	updated, err := updateInvoice(ctx, tx, invoice)
	if err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return updated, nil
}

// ListPaymentsByInvoice retrieves every payment on an invoice, oldest first.
func (r *PgxPaymentRepository) ListPaymentsByInvoice(ctx context.Context, invoiceID string) ([]domain.Payment, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+paymentColumns+` FROM invoice_payments p
		WHERE p.invoice_id = $1 ORDER BY p.payment_date ASC;`, invoiceID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query payments for invoice "+invoiceID, err)
	}
	defer rows.Close()

	var ms []models.Payment
	for rows.Next() {
		var m models.Payment
		if err := rows.Scan(paymentDest(&m)...); err != nil {
			return nil, fmt.Errorf("error scanning payment row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", err)
	}
	return mapping.ToDomainPaymentSlice(ms), nil
}

// ListPayments retrieves payment history joined with the invoices it settled.
func (r *PgxPaymentRepository) ListPayments(ctx context.Context, filter domain.InvoiceFilter) ([]domain.PaymentWithInvoice, int, error) {
	where := ""
	var args []any
	if filter.VendorID != "" {
		args = append(args, filter.VendorID)
		where = " WHERE i.vendor_id = $1"
	}
	from := ` FROM invoice_payments p JOIN vendor_invoices i ON i.invoice_id = p.invoice_id` + where

	var total int
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*)`+from, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payments: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	query := `SELECT ` + paymentColumns + `, i.invoice_number, i.vendor_id, i.amount` + from +
		` ORDER BY p.payment_date DESC LIMIT $` + strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2) + `;`
	args = append(args, limit, filter.Offset)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to query payments", err)
	}
	defer rows.Close()

	result := []domain.PaymentWithInvoice{}
	for rows.Next() {
		var m models.Payment
		var row domain.PaymentWithInvoice
		dest := append(paymentDest(&m), &row.InvoiceNumber, &row.VendorID, &row.InvoiceAmount)
		if err := rows.Scan(dest...); err != nil {
			return nil, 0, fmt.Errorf("error scanning payment row: %w", err)
		}
		row.Payment = mapping.ToDomainPayment(m)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating payment rows: %w", err)
	}
	return result, total, nil
}
