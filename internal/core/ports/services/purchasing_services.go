package services

import (
	"context"

	"github.com/SscSPs/ap_reconciliation_app/internal/core/domain"
	"github.com/SscSPs/ap_reconciliation_app/internal/dto"
)

// PurchaseOrderSvcFacade defines operations on purchase orders
type PurchaseOrderSvcFacade interface {
	CreatePurchaseOrder(ctx context.Context, req dto.CreatePurchaseOrderRequest, userID string) (*domain.PurchaseOrder, error)
	GetPurchaseOrderByID(ctx context.Context, purchaseOrderID string) (*domain.PurchaseOrder, error)
}

// ReceiptSvcFacade defines operations on goods receipts
type ReceiptSvcFacade interface {
	// CreateReceipt stores a receipt and returns it with the number of invoices it was linked to.
	CreateReceipt(ctx context.Context, req dto.CreateReceiptRequest, userID string) (*domain.Receipt, int64, error)
	ListReceipts(ctx context.Context, params dto.ListParams) ([]domain.Receipt, int, error)
}

// PaymentSvcFacade defines operations on invoice payments
type PaymentSvcFacade interface {
	// RecordPayment stores a completed payment and returns it with the invoice's new status.
	RecordPayment(ctx context.Context, req dto.RecordPaymentRequest, userID string) (*domain.Payment, domain.InvoiceStatus, error)
	ListPayments(ctx context.Context, params dto.ListParams) ([]domain.PaymentWithInvoice, int, error)
}
