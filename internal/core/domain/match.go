package domain

// MatchResult is the outcome of a 3-way match. It is recomputed on every run and
// overwrites the previous result stored on the invoice.
type MatchResult struct {
	POMatch       bool     `json:"poMatch"`
	ReceiptMatch  bool     `json:"receiptMatch"`
	PriceMatch    bool     `json:"priceMatch"` // Mirrors POMatch; both come from the same amount comparison
	QuantityMatch bool     `json:"quantityMatch"`
	AutoApprove   bool     `json:"autoApprove"`
	Discrepancies []string `json:"discrepancies"`
}

// MatchStatus returns the match status the result should be persisted with.
func (r MatchResult) MatchStatus() MatchStatus {
	if r.AutoApprove {
		return MatchMatched
	}
	return MatchException
}

// InvoiceStatus returns the invoice status the result should be persisted with.
func (r MatchResult) InvoiceStatus() InvoiceStatus {
	if r.AutoApprove {
		return InvoiceApproved
	}
	return InvoicePendingReview
}

// MatchAnalysis is a read-only match preview for an invoice still waiting on matching.
type MatchAnalysis struct {
	InvoiceID     string `json:"invoiceID"`
	InvoiceNumber string `json:"invoiceNumber"`
	VendorID      string `json:"vendorID"`
	MatchResult
}
