package services

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/SscSPs/ap_reconciliation_app/internal/apperrors"
	"github.com/SscSPs/ap_reconciliation_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ap_reconciliation_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ap_reconciliation_app/internal/core/ports/services"
	"github.com/SscSPs/ap_reconciliation_app/internal/dto"
)

const receiptCompleted = "completed"

// purchaseOrderService stores the purchase orders invoices are matched against.
type purchaseOrderService struct {
	BaseService
	poRepo portsrepo.PurchaseOrderRepositoryFacade
}

// NewPurchaseOrderService creates a new purchase order service.
func NewPurchaseOrderService(poRepo portsrepo.PurchaseOrderRepositoryFacade, options ...Option) portssvc.PurchaseOrderSvcFacade {
	svc := &purchaseOrderService{poRepo: poRepo}
	svc.apply(options)
	return svc
}

var _ portssvc.PurchaseOrderSvcFacade = (*purchaseOrderService)(nil)

func (s *purchaseOrderService) CreatePurchaseOrder(ctx context.Context, req dto.CreatePurchaseOrderRequest, userID string) (*domain.PurchaseOrder, error) {
	if req.TotalAmount.IsNegative() {
		return nil, apperrors.NewValidationError("total_amount cannot be negative")
	}
	seen := make(map[string]bool, len(req.LineItems))
	lines := make([]domain.POLineItem, len(req.LineItems))
	for i, l := range req.LineItems {
		if seen[l.POLineID] {
			return nil, apperrors.NewValidationError("duplicate po_line_id %s", l.POLineID)
		}
		seen[l.POLineID] = true
		lines[i] = domain.POLineItem{
			POLineID:    l.POLineID,
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
		}
	}

	now := s.Now()
	po := domain.PurchaseOrder{
		PurchaseOrderID: uuid.NewString(),
		PONumber:        req.PONumber,
		VendorID:        req.VendorID,
		TotalAmount:     req.TotalAmount,
		LineItems:       lines,
		ReceiptStatus:   domain.ReceiptStatusPending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.poRepo.SavePurchaseOrder(ctx, po); err != nil {
		s.LogError(ctx, err, "Failed to save purchase order", slog.String("po_number", po.PONumber))
		return nil, err
	}
	s.LogInfo(ctx, "Purchase order created", slog.String("purchase_order_id", po.PurchaseOrderID))
	return &po, nil
}

func (s *purchaseOrderService) GetPurchaseOrderByID(ctx context.Context, purchaseOrderID string) (*domain.PurchaseOrder, error) {
	po, err := s.poRepo.FindPurchaseOrderByID(ctx, purchaseOrderID)
	if err != nil {
		return nil, notFound(err, "purchase order", purchaseOrderID)
	}
	return po, nil
}

// receiptService records goods receipts.
type receiptService struct {
	BaseService
	receiptRepo portsrepo.ReceiptRepositoryFacade
	poRepo      portsrepo.PurchaseOrderRepositoryFacade
}

// NewReceiptService creates a new receipt service.
func NewReceiptService(receiptRepo portsrepo.ReceiptRepositoryFacade, poRepo portsrepo.PurchaseOrderRepositoryFacade, options ...Option) portssvc.ReceiptSvcFacade {
	svc := &receiptService{receiptRepo: receiptRepo, poRepo: poRepo}
	svc.apply(options)
	return svc
}

var _ portssvc.ReceiptSvcFacade = (*receiptService)(nil)

func (s *receiptService) CreateReceipt(ctx context.Context, req dto.CreateReceiptRequest, userID string) (*domain.Receipt, int64, error) {
	if len(req.LineItems) == 0 {
		return nil, 0, apperrors.NewValidationError("a receipt needs at least one line item")
	}
	if _, err := s.poRepo.FindPurchaseOrderByID(ctx, req.PurchaseOrderID); err != nil {
		return nil, 0, notFound(err, "purchase order", req.PurchaseOrderID)
	}

	now := s.Now()
	receivedDate := now
	if req.ReceivedDate != "" {
		d, err := dto.ParseDate(req.ReceivedDate)
		if err != nil {
			return nil, 0, apperrors.NewValidationError("received_date must be a YYYY-MM-DD date")
		}
		receivedDate = d
	}

	lines := make([]domain.ReceiptLineItem, len(req.LineItems))
	for i, l := range req.LineItems {
		if l.QuantityReceived.IsNegative() {
			return nil, 0, apperrors.NewValidationError("quantity_received cannot be negative")
		}
		condition := domain.ReceiptCondition(l.Condition)
		if condition == "" {
			condition = domain.ConditionGood
		}
		lines[i] = domain.ReceiptLineItem{
			POLineID:         l.POLineID,
			QuantityReceived: l.QuantityReceived,
			Condition:        condition,
			Notes:            l.Notes,
		}
	}

	receipt := domain.Receipt{
		ReceiptID:          uuid.NewString(),
		PurchaseOrderID:    req.PurchaseOrderID,
		ReceivedBy:         userID,
		ReceivedDate:       receivedDate,
		LineItems:          lines,
		DeliveryNoteNumber: req.DeliveryNoteNumber,
		Carrier:            req.Carrier,
		Notes:              req.Notes,
		Status:             receiptCompleted,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	linked, err := s.receiptRepo.SaveReceipt(ctx, receipt)
	if err != nil {
		s.LogError(ctx, err, "Failed to save receipt", slog.String("purchase_order_id", req.PurchaseOrderID))
		return nil, 0, notFound(err, "purchase order", req.PurchaseOrderID)
	}

	s.LogInfo(ctx, "Receipt recorded",
		slog.String("receipt_id", receipt.ReceiptID),
		slog.String("purchase_order_id", receipt.PurchaseOrderID),
		slog.Int64("linked_invoices", linked))
	return &receipt, linked, nil
}

func (s *receiptService) ListReceipts(ctx context.Context, params dto.ListParams) ([]domain.Receipt, int, error) {
	receipts, total, err := s.receiptRepo.ListReceipts(ctx, params.Limit, params.Offset())
	if err != nil {
		s.LogError(ctx, err, "Failed to list receipts")
		return nil, 0, err
	}
	return receipts, total, nil
}
