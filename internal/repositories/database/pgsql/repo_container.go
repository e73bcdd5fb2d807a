package pgsql

import (
	portsrepo "github.com/SscSPs/ap_reconciliation_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		InvoiceRepo:       newPgxInvoiceRepository(dbPool),
		PurchaseOrderRepo: newPgxPurchaseOrderRepository(dbPool),
		ReceiptRepo:       newPgxReceiptRepository(dbPool),
		PaymentRepo:       newPgxPaymentRepository(dbPool),
		ReportingRepo:     newReportingRepository(dbPool),
	}
}
