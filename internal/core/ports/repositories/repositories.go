package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	InvoiceRepo       InvoiceRepositoryFacade
	PurchaseOrderRepo PurchaseOrderRepositoryFacade
	ReceiptRepo       ReceiptRepositoryFacade
	PaymentRepo       PaymentRepositoryFacade
	ReportingRepo     ReportingRepository
}
