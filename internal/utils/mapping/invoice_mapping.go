package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/ap_reconciliation_app/internal/core/domain"
	"github.com/SscSPs/ap_reconciliation_app/internal/models"
)

// ToModelInvoice converts a domain Invoice to a model Invoice
func ToModelInvoice(d domain.Invoice) (models.Invoice, error) {
	lines, err := marshalLines(d.LineItems)
	if err != nil {
		return models.Invoice{}, err
	}
	var matchResult []byte
	if d.MatchResult != nil {
		if matchResult, err = json.Marshal(d.MatchResult); err != nil {
			return models.Invoice{}, fmt.Errorf("failed to encode match result: %w", err)
		}
	}
	return models.Invoice{
		InvoiceID:       d.InvoiceID,
		VendorID:        d.VendorID,
		InvoiceNumber:   d.InvoiceNumber,
		InvoiceDate:     d.InvoiceDate,
		DueDate:         d.DueDate,
		Amount:          d.Amount,
		CurrencyCode:    d.CurrencyCode,
		Description:     d.Description,
		LineItems:       lines,
		PurchaseOrderID: d.PurchaseOrderID,
		ReceiptID:       d.ReceiptID,
		Status:          string(d.Status),
		MatchStatus:     string(d.MatchStatus),
		MatchResult:     matchResult,
		MatchedAt:       d.MatchedAt,
		ApprovedBy:      d.ApprovedBy,
		ApprovedAt:      d.ApprovedAt,
		RejectionReason: d.RejectionReason,
		RejectedBy:      d.RejectedBy,
		RejectedAt:      d.RejectedAt,
		VoidReason:      d.VoidReason,
		VoidedAt:        d.VoidedAt,
		PaidDate:        d.PaidDate,
		Version:         d.Version,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}, nil
}

// ToDomainInvoice converts a model Invoice to a domain Invoice
func ToDomainInvoice(m models.Invoice) (domain.Invoice, error) {
	lines, err := unmarshalLines[domain.InvoiceLineItem](m.LineItems)
	if err != nil {
		return domain.Invoice{}, err
	}
	var matchResult *domain.MatchResult
	if len(m.MatchResult) > 0 {
		matchResult = &domain.MatchResult{}
		if err := json.Unmarshal(m.MatchResult, matchResult); err != nil {
			return domain.Invoice{}, fmt.Errorf("failed to decode match result for invoice %s: %w", m.InvoiceID, err)
		}
	}
	return domain.Invoice{
		InvoiceID:       m.InvoiceID,
		VendorID:        m.VendorID,
		InvoiceNumber:   m.InvoiceNumber,
		InvoiceDate:     m.InvoiceDate,
		DueDate:         m.DueDate,
		Amount:          m.Amount,
		CurrencyCode:    m.CurrencyCode,
		Description:     m.Description,
		LineItems:       lines,
		PurchaseOrderID: m.PurchaseOrderID,
		ReceiptID:       m.ReceiptID,
		Status:          domain.InvoiceStatus(m.Status),
		MatchStatus:     domain.MatchStatus(m.MatchStatus),
		MatchResult:     matchResult,
		MatchedAt:       m.MatchedAt,
		ApprovedBy:      m.ApprovedBy,
		ApprovedAt:      m.ApprovedAt,
		RejectionReason: m.RejectionReason,
		RejectedBy:      m.RejectedBy,
		RejectedAt:      m.RejectedAt,
		VoidReason:      m.VoidReason,
		VoidedAt:        m.VoidedAt,
		PaidDate:        m.PaidDate,
		Version:         m.Version,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}, nil
}
