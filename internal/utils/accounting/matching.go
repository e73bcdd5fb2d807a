package accounting

import (
	"github.com/SscSPs/ap_reconciliation_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Discrepancy messages reported by ThreeWayMatch.
const (
	DiscrepancyNoPurchaseOrder  = "No purchase order linked"
	DiscrepancyNoReceipt        = "No receipt recorded"
	DiscrepancyQuantityMismatch = "Quantity mismatch between invoice and receipt"
)

// MatchInput is an invoice with its optionally linked purchase order and goods receipt.
type MatchInput struct {
	Invoice       domain.Invoice
	PurchaseOrder *domain.PurchaseOrder
	Receipt       *domain.Receipt
}

// ThreeWayMatch reconciles an invoice against its purchase order and receipt.
// Missing documents are reported as discrepancies, never as errors, and the result
// depends only on its inputs.
func ThreeWayMatch(in MatchInput, tolerance decimal.Decimal) domain.MatchResult {
	result := domain.MatchResult{Discrepancies: []string{}}

	if in.PurchaseOrder != nil {
		cmp := CompareWithinTolerance(in.Invoice.Amount, in.PurchaseOrder.TotalAmount, tolerance)
		result.POMatch = cmp.Match
		result.PriceMatch = cmp.Match
		if !cmp.Match {
			result.Discrepancies = append(result.Discrepancies, cmp.Discrepancy)
		}
	} else {
		result.Discrepancies = append(result.Discrepancies, DiscrepancyNoPurchaseOrder)
	}

	if in.Receipt != nil {
		result.ReceiptMatch = true
		result.QuantityMatch = quantitiesMatch(in.Invoice.LineItems, in.Receipt.LineItems)
		if !result.QuantityMatch {
			result.Discrepancies = append(result.Discrepancies, DiscrepancyQuantityMismatch)
		}
	} else {
		result.Discrepancies = append(result.Discrepancies, DiscrepancyNoReceipt)
	}

	result.AutoApprove = result.POMatch && result.ReceiptMatch && result.PriceMatch && result.QuantityMatch
	return result
}

// quantitiesMatch requires every invoice line to find the receipt line for the same PO line
// with an equal quantity. With no lines on either side there is nothing to contradict.
func quantitiesMatch(invoiceLines []domain.InvoiceLineItem, receiptLines []domain.ReceiptLineItem) bool {
	if len(invoiceLines) == 0 || len(receiptLines) == 0 {
		return true
	}

	received := make(map[string]decimal.Decimal, len(receiptLines))
	for _, rl := range receiptLines {
		received[rl.POLineID] = rl.QuantityReceived
	}

	for _, il := range invoiceLines {
		if il.POLineID == "" {
			return false
		}
		qty, ok := received[il.POLineID]
		if !ok || !qty.Equal(il.Quantity) {
			return false
		}
	}
	return true
}
