package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/SscSPs/ap_reconciliation_app/internal/core/domain"
	"github.com/SscSPs/ap_reconciliation_app/internal/dto"
	"github.com/SscSPs/ap_reconciliation_app/internal/utils/accounting"
)

type matchFile struct {
	Invoice struct {
		Amount    string `yaml:"amount"`
		LineItems []struct {
			POLineID string `yaml:"po_line_id"`
			Quantity string `yaml:"quantity"`
		} `yaml:"line_items"`
	} `yaml:"invoice"`
	PurchaseOrder *struct {
		TotalAmount string `yaml:"total_amount"`
	} `yaml:"purchase_order"`
	Receipt *struct {
		LineItems []struct {
			POLineID         string `yaml:"po_line_id"`
			QuantityReceived string `yaml:"quantity_received"`
		} `yaml:"line_items"`
	} `yaml:"receipt"`
}

type matchOutput struct {
	dto.MatchResultResponse
	MatchStatus   string `json:"match_status"`
	InvoiceStatus string `json:"invoice_status"`
}

func parseAmount(field, s string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s %q", field, s)
	}
	return v, nil
}

func (f matchFile) toInput() (accounting.MatchInput, error) {
	var in accounting.MatchInput

	amount, err := parseAmount("invoice.amount", f.Invoice.Amount)
	if err != nil {
		return in, err
	}
	in.Invoice.Amount = amount
	for i, l := range f.Invoice.LineItems {
		qty, err := parseAmount(fmt.Sprintf("invoice.line_items[%d].quantity", i), l.Quantity)
		if err != nil {
			return in, err
		}
		in.Invoice.LineItems = append(in.Invoice.LineItems, domain.InvoiceLineItem{POLineID: l.POLineID, Quantity: qty})
	}

	if f.PurchaseOrder != nil {
		total, err := parseAmount("purchase_order.total_amount", f.PurchaseOrder.TotalAmount)
		if err != nil {
			return in, err
		}
		in.PurchaseOrder = &domain.PurchaseOrder{TotalAmount: total}
	}

	if f.Receipt != nil {
		in.Receipt = &domain.Receipt{}
		for i, l := range f.Receipt.LineItems {
			qty, err := parseAmount(fmt.Sprintf("receipt.line_items[%d].quantity_received", i), l.QuantityReceived)
			if err != nil {
				return in, err
			}
			in.Receipt.LineItems = append(in.Receipt.LineItems, domain.ReceiptLineItem{POLineID: l.POLineID, QuantityReceived: qty})
		}
	}
	return in, nil
}

func newMatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "match",
		Short:   "Run the 3-way match for one invoice, purchase order and receipt",
		Example: `  apctl match --file case.yaml --tolerance 0.05`,
		RunE:    runMatch,
	}
	cmd.Flags().StringP("file", "f", "", "Match case file (JSON or YAML)")
	cmd.Flags().String("tolerance", accounting.DefaultMatchTolerance.String(), "Relative amount tolerance")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func runMatch(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("file")
	toleranceStr, _ := cmd.Flags().GetString("tolerance")

	tolerance, err := parseAmount("tolerance", toleranceStr)
	if err != nil {
		return err
	}
	if err := accounting.ValidateTolerance(tolerance); err != nil {
		return err
	}

	var doc matchFile
	if err := readDocument(path, &doc); err != nil {
		return err
	}
	in, err := doc.toInput()
	if err != nil {
		return err
	}

	result := accounting.ThreeWayMatch(in, tolerance)
	return writeJSON(cmd.OutOrStdout(), matchOutput{
		MatchResultResponse: dto.ToMatchResultResponse(result),
		MatchStatus:         string(result.MatchStatus()),
		InvoiceStatus:       string(result.InvoiceStatus()),
	})
}
