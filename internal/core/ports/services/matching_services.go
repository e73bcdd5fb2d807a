package services

import (
	"context"

	"github.com/SscSPs/ap_reconciliation_app/internal/core/domain"
)

// MatchingSvc runs 3-way matching for vendor invoices
type MatchingSvc interface {
	// PerformMatch matches an invoice against its PO and receipt and persists the outcome.
	PerformMatch(ctx context.Context, invoiceID, userID string) (*domain.MatchResult, error)

	// ListPendingMatches previews the match outcome of every invoice in match status pending without writing.
	ListPendingMatches(ctx context.Context) ([]domain.MatchAnalysis, error)
}
