package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/ap_reconciliation_app/internal/dto"
)

const agingYAML = `
invoices:
  - id: a
    invoice_number: INV-A
    amount: "100.10"
    due_date: "2025-06-20"
    status: pending
  - id: b
    invoice_number: INV-B
    amount: "200.20"
    due_date: "2025-06-05"
    status: approved
  - id: c
    invoice_number: INV-C
    amount: "300"
    paid_amount: "100"
    due_date: "2025-05-01"
    status: partial
  - id: d
    invoice_number: INV-D
    amount: "999"
    due_date: "2025-01-01"
    status: paid
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAgingCommand(t *testing.T) {
	path := writeFile(t, "invoices.yaml", agingYAML)

	out, err := run(t, "aging", "--file", path, "--as-of", "2025-06-15")
	require.NoError(t, err)

	var got dto.AgingReportResponse
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	assert.Equal(t, "2025-06-15", got.AsOf)
	assert.Equal(t, 1, got.Aging.Current.Count)
	assert.Equal(t, 1, got.Aging.Days1To30.Count)
	assert.Equal(t, 1, got.Aging.Days31To60.Count)
	assert.Equal(t, 0, got.Aging.Over90.Count)
	assert.Equal(t, 45, got.Aging.Days31To60.Invoices[0].DaysOverdue)
	assert.Equal(t, 3, got.Summary.TotalInvoices)
	assert.True(t, got.Summary.TotalOutstanding.Equal(dec("600.30")), "got %s", got.Summary.TotalOutstanding)
	assert.True(t, got.Summary.OverdueAmount.Equal(dec("500.20")), "got %s", got.Summary.OverdueAmount)
}

func TestAgingCommand_ByBalanceAndJSON(t *testing.T) {
	path := writeFile(t, "invoices.json", `{"invoices":[{"id":"c","amount":"300","paid_amount":"100","due_date":"2025-05-01","status":"partial"}]}`)

	out, err := run(t, "aging", "-f", path, "--as-of", "2025-06-15", "--by-balance")
	require.NoError(t, err)

	var got dto.AgingReportResponse
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.True(t, got.Aging.Days31To60.Amount.Equal(dec("200")), "got %s", got.Aging.Days31To60.Amount)
}

func TestAgingCommand_CustomBuckets(t *testing.T) {
	path := writeFile(t, "invoices.yaml", agingYAML)

	out, err := run(t, "aging", "--file", path, "--as-of", "2025-06-15", "--buckets", "5,10,20")
	require.NoError(t, err)

	var got dto.AgingReportResponse
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 1, got.Aging.Days31To60.Count, "10 days late lands in the second overdue bucket")
	assert.Equal(t, 1, got.Aging.Over90.Count, "45 days late is past the last edge")
}

func TestAgingCommand_Errors(t *testing.T) {
	path := writeFile(t, "invoices.yaml", agingYAML)

	_, err := run(t, "aging", "--file", path, "--as-of", "15/06/2025")
	assert.ErrorContains(t, err, "YYYY-MM-DD")

	_, err = run(t, "aging", "--file", path, "--buckets", "60,30,90")
	assert.Error(t, err)

	_, err = run(t, "aging", "--file", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read")

	bad := writeFile(t, "bad.yaml", "invoices:\n  - id: x\n    amount: lots\n    due_date: \"2025-01-01\"\n")
	_, err = run(t, "aging", "--file", bad)
	assert.ErrorContains(t, err, `invalid amount "lots"`)

	_, err = run(t, "aging")
	assert.Error(t, err)
}

func TestMatchCommand(t *testing.T) {
	tests := []struct {
		name          string
		doc           string
		args          []string
		wantAuto      bool
		wantInvoice   string
		wantDiscCount int
	}{
		{
			name: "within tolerance",
			doc: `
invoice:
  amount: "10200"
  line_items:
    - po_line_id: l1
      quantity: "5"
purchase_order:
  total_amount: "10000"
receipt:
  line_items:
    - po_line_id: l1
      quantity_received: "5"
`,
			wantAuto:    true,
			wantInvoice: "approved",
		},
		{
			name: "outside tolerance",
			doc: `
invoice:
  amount: "10300"
purchase_order:
  total_amount: "10000"
receipt: {}
`,
			wantInvoice:   "pending_review",
			wantDiscCount: 1,
		},
		{
			name: "wider tolerance accepts it",
			doc: `
invoice:
  amount: "10300"
purchase_order:
  total_amount: "10000"
receipt: {}
`,
			args:        []string{"--tolerance", "0.05"},
			wantAuto:    true,
			wantInvoice: "approved",
		},
		{
			name:          "nothing linked",
			doc:           `{"invoice":{"amount":"50"}}`,
			wantInvoice:   "pending_review",
			wantDiscCount: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "case.yaml", tt.doc)

			out, err := run(t, append([]string{"match", "--file", path}, tt.args...)...)
			require.NoError(t, err)

			var got matchOutput
			require.NoError(t, json.Unmarshal([]byte(out), &got))
			assert.Equal(t, tt.wantAuto, got.AutoApprove)
			assert.Equal(t, tt.wantInvoice, got.InvoiceStatus)
			assert.Len(t, got.Discrepancies, tt.wantDiscCount)
		})
	}
}

func TestMatchCommand_InvalidTolerance(t *testing.T) {
	path := writeFile(t, "case.yaml", `{"invoice":{"amount":"50"}}`)

	_, err := run(t, "match", "--file", path, "--tolerance", "1.5")
	assert.ErrorContains(t, err, "match tolerance")
}
