package services

import (
	portsrepo "github.com/SscSPs/ap_reconciliation_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ap_reconciliation_app/internal/core/ports/services"
	"github.com/SscSPs/ap_reconciliation_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, options ...Option) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Invoice:       NewInvoiceService(repos.InvoiceRepo, repos.PaymentRepo, options...),
		PurchaseOrder: NewPurchaseOrderService(repos.PurchaseOrderRepo, options...),
		Receipt:       NewReceiptService(repos.ReceiptRepo, repos.PurchaseOrderRepo, options...),
		Payment:       NewPaymentService(repos.InvoiceRepo, repos.PaymentRepo, options...),
		Matching:      NewMatchingService(repos.InvoiceRepo, repos.PurchaseOrderRepo, repos.ReceiptRepo, cfg.MatchTolerance, options...),
		Reporting:     NewReportingService(repos.InvoiceRepo, repos.ReportingRepo, cfg.AgingPolicy, options...),
	}
}
