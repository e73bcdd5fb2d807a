package main

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/SscSPs/ap_reconciliation_app/internal/core/domain"
	"github.com/SscSPs/ap_reconciliation_app/internal/dto"
	"github.com/SscSPs/ap_reconciliation_app/internal/utils/accounting"
)

type agingFile struct {
	Invoices []agingInvoice `yaml:"invoices"`
}

type agingInvoice struct {
	ID            string `yaml:"id"`
	VendorID      string `yaml:"vendor_id"`
	InvoiceNumber string `yaml:"invoice_number"`
	Amount        string `yaml:"amount"`
	PaidAmount    string `yaml:"paid_amount"`
	DueDate       string `yaml:"due_date"`
	Status        string `yaml:"status"`
}

func (a agingInvoice) toBalance(now time.Time) (domain.InvoiceBalance, error) {
	amount, err := decimal.NewFromString(a.Amount)
	if err != nil {
		return domain.InvoiceBalance{}, fmt.Errorf("invoice %s: invalid amount %q", a.ID, a.Amount)
	}
	paid := decimal.Zero
	if a.PaidAmount != "" {
		if paid, err = decimal.NewFromString(a.PaidAmount); err != nil {
			return domain.InvoiceBalance{}, fmt.Errorf("invoice %s: invalid paid_amount %q", a.ID, a.PaidAmount)
		}
	}
	due, err := dto.ParseDate(a.DueDate)
	if err != nil {
		return domain.InvoiceBalance{}, fmt.Errorf("invoice %s: invalid due_date %q", a.ID, a.DueDate)
	}
	status := domain.InvoiceStatus(a.Status)
	if status == "" {
		status = domain.InvoicePending
	}

	inv := domain.Invoice{
		InvoiceID:     a.ID,
		VendorID:      a.VendorID,
		InvoiceNumber: a.InvoiceNumber,
		Amount:        amount,
		DueDate:       due,
		Status:        status,
	}
	return domain.NewInvoiceBalance(inv, paid, now), nil
}

func isOpen(status domain.InvoiceStatus) bool {
	for _, s := range domain.OpenInvoiceStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func newAgingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aging",
		Short: "Bucket open invoices by days overdue",
		Example: `  apctl aging --file invoices.yaml
  apctl aging --file invoices.json --as-of 2025-06-30 --buckets 15,45,90`,
		RunE: runAging,
	}
	cmd.Flags().StringP("file", "f", "", "Invoice file (JSON or YAML)")
	cmd.Flags().String("as-of", "", "Report date (format: YYYY-MM-DD, default: today)")
	cmd.Flags().String("buckets", "30,60,90", "Upper day edges of the first three overdue buckets")
	cmd.Flags().Bool("by-balance", false, "Age the balance due instead of the invoice amount")
	cmd.Flags().Bool("all-statuses", false, "Include invoices that are not pending, approved or partial")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func runAging(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("file")
	asOfStr, _ := cmd.Flags().GetString("as-of")
	bucketsStr, _ := cmd.Flags().GetString("buckets")
	byBalance, _ := cmd.Flags().GetBool("by-balance")
	allStatuses, _ := cmd.Flags().GetBool("all-statuses")

	now := time.Now().UTC()
	if asOfStr != "" {
		parsed, err := dto.ParseDate(asOfStr)
		if err != nil {
			return fmt.Errorf("invalid as-of date format. Use YYYY-MM-DD: %w", err)
		}
		now = parsed
	}

	policy, err := accounting.ParseAgingPolicy(bucketsStr)
	if err != nil {
		return err
	}

	var doc agingFile
	if err := readDocument(path, &doc); err != nil {
		return err
	}

	balances := make([]domain.InvoiceBalance, 0, len(doc.Invoices))
	for _, raw := range doc.Invoices {
		b, err := raw.toBalance(now)
		if err != nil {
			return err
		}
		if !allStatuses && !isOpen(b.Status) {
			continue
		}
		balances = append(balances, b)
	}

	var opts []accounting.ReportOption
	if byBalance {
		opts = append(opts, accounting.AgeByBalance())
	}
	report := accounting.BuildAgingReport(balances, now, policy, opts...)

	return writeJSON(cmd.OutOrStdout(), dto.ToAgingReportResponse(report, now.Format(dto.DateLayout)))
}
