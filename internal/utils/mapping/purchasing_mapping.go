package mapping

import (
	"github.com/SscSPs/ap_reconciliation_app/internal/core/domain"
	"github.com/SscSPs/ap_reconciliation_app/internal/models"
)

// ToModelPurchaseOrder converts a domain PurchaseOrder to a model PurchaseOrder
func ToModelPurchaseOrder(d domain.PurchaseOrder) (models.PurchaseOrder, error) {
	lines, err := marshalLines(d.LineItems)
	if err != nil {
		return models.PurchaseOrder{}, err
	}
	return models.PurchaseOrder{
		PurchaseOrderID: d.PurchaseOrderID,
		PONumber:        d.PONumber,
		VendorID:        d.VendorID,
		TotalAmount:     d.TotalAmount,
		LineItems:       lines,
		ReceiptStatus:   string(d.ReceiptStatus),
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}, nil
}

// ToDomainPurchaseOrder converts a model PurchaseOrder to a domain PurchaseOrder
func ToDomainPurchaseOrder(m models.PurchaseOrder) (domain.PurchaseOrder, error) {
	lines, err := unmarshalLines[domain.POLineItem](m.LineItems)
	if err != nil {
		return domain.PurchaseOrder{}, err
	}
	return domain.PurchaseOrder{
		PurchaseOrderID: m.PurchaseOrderID,
		PONumber:        m.PONumber,
		VendorID:        m.VendorID,
		TotalAmount:     m.TotalAmount,
		LineItems:       lines,
		ReceiptStatus:   domain.ReceiptStatus(m.ReceiptStatus),
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}, nil
}

// ToModelReceipt converts a domain Receipt to a model Receipt
func ToModelReceipt(d domain.Receipt) (models.Receipt, error) {
	lines, err := marshalLines(d.LineItems)
	if err != nil {
		return models.Receipt{}, err
	}
	return models.Receipt{
		ReceiptID:          d.ReceiptID,
		PurchaseOrderID:    d.PurchaseOrderID,
		ReceivedBy:         d.ReceivedBy,
		ReceivedDate:       d.ReceivedDate,
		LineItems:          lines,
		DeliveryNoteNumber: d.DeliveryNoteNumber,
		Carrier:            d.Carrier,
		Notes:              d.Notes,
		Status:             d.Status,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}, nil
}

// ToDomainReceipt converts a model Receipt to a domain Receipt
func ToDomainReceipt(m models.Receipt) (domain.Receipt, error) {
	lines, err := unmarshalLines[domain.ReceiptLineItem](m.LineItems)
	if err != nil {
		return domain.Receipt{}, err
	}
	return domain.Receipt{
		ReceiptID:          m.ReceiptID,
		PurchaseOrderID:    m.PurchaseOrderID,
		ReceivedBy:         m.ReceivedBy,
		ReceivedDate:       m.ReceivedDate,
		LineItems:          lines,
		DeliveryNoteNumber: m.DeliveryNoteNumber,
		Carrier:            m.Carrier,
		Notes:              m.Notes,
		Status:             m.Status,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}, nil
}

// ToModelPayment converts a domain Payment to a model Payment
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:       d.PaymentID,
		InvoiceID:       d.InvoiceID,
		Amount:          d.Amount,
		PaymentMethod:   string(d.PaymentMethod),
		PaymentDate:     d.PaymentDate,
		ReferenceNumber: d.ReferenceNumber,
		Notes:           d.Notes,
		Status:          string(d.Status),
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPayment converts a model Payment to a domain Payment
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:       m.PaymentID,
		InvoiceID:       m.InvoiceID,
		Amount:          m.Amount,
		PaymentMethod:   domain.PaymentMethod(m.PaymentMethod),
		PaymentDate:     m.PaymentDate,
		ReferenceNumber: m.ReferenceNumber,
		Notes:           m.Notes,
		Status:          domain.PaymentStatus(m.Status),
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPaymentSlice converts a slice of model Payments to a slice of domain Payments
func ToDomainPaymentSlice(ms []models.Payment) []domain.Payment {
	ds := make([]domain.Payment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayment(m)
	}
	return ds
}
