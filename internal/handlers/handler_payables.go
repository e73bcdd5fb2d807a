package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/ap_reconciliation_app/internal/core/domain"
	portssvc "github.com/SscSPs/ap_reconciliation_app/internal/core/ports/services"
	"github.com/SscSPs/ap_reconciliation_app/internal/dto"
	"github.com/SscSPs/ap_reconciliation_app/internal/middleware"
)

// GET ?type= views.
const (
	viewInvoices     = "invoices"
	viewPendingMatch = "pending_match"
	viewAging        = "aging"
	viewPayments     = "payments"
	viewReceipts     = "receipts"
	viewSummary      = "summary"
)

// POST actions.
const (
	actionCreateInvoice = "create_invoice"
	actionCreateReceipt = "create_receipt"
	actionRecordPayment = "record_payment"
	actionPerformMatch  = "perform_3way_match"
)

// PATCH actions; anything else is a general update.
const (
	patchApprove = "approve"
	patchReject  = "reject"
)

// payablesHandler serves the accounts payable resource, dispatching on ?type= for reads
// and on the action field for writes.
type payablesHandler struct {
	invoiceService   portssvc.InvoiceSvcFacade
	receiptService   portssvc.ReceiptSvcFacade
	paymentService   portssvc.PaymentSvcFacade
	matchingService  portssvc.MatchingSvc
	reportingService portssvc.ReportingService
	clock            func() time.Time
}

// PayablesOption configures the accounts payable handler.
type PayablesOption func(*payablesHandler)

// WithHandlerClock replaces the wall clock used when a request does not pin asOf.
func WithHandlerClock(clock func() time.Time) PayablesOption {
	return func(h *payablesHandler) {
		h.clock = clock
	}
}

func newPayablesHandler(services *portssvc.ServiceContainer, options ...PayablesOption) *payablesHandler {
	h := &payablesHandler{
		invoiceService:   services.Invoice,
		receiptService:   services.Receipt,
		paymentService:   services.Payment,
		matchingService:  services.Matching,
		reportingService: services.Reporting,
		clock:            time.Now,
	}
	for _, option := range options {
		option(h)
	}
	return h
}

// RegisterPayablesRoutes registers the /accounts-payable resource.
func RegisterPayablesRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer, options ...PayablesOption) {
	RegisterValidators()
	h := newPayablesHandler(services, options...)

	ap := rg.Group("/accounts-payable")
	{
		ap.GET("", h.getPayables)
		ap.POST("", h.postPayables)
		ap.PATCH("", h.patchPayables)
		ap.DELETE("", h.voidInvoice)
	}
}

func (h *payablesHandler) now() time.Time {
	return h.clock().UTC()
}

// getPayables godoc
// @Summary Read an accounts payable view
// @Description Dispatches on type: invoices, pending_match, aging, payments, receipts. Any other value returns the AP summary.
// @Tags accounts-payable
// @Produce json
// @Param type query string false "View" Enums(invoices, pending_match, aging, payments, receipts, summary)
// @Param asOf query string false "Report date for the aging view (YYYY-MM-DD)"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(50)
// @Param vendor_id query string false "Filter by vendor"
// @Param status query string false "Filter invoices by status"
// @Success 200 {object} dto.AgingReportResponse "For type=aging; see the other dto.*Response types for the other views"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /accounts-payable [get]
func (h *payablesHandler) getPayables(c *gin.Context) {
	view := c.DefaultQuery("type", viewSummary)
	middleware.SetOperation(c, view)

	switch view {
	case viewInvoices:
		h.listInvoices(c)
	case viewPendingMatch:
		h.listPendingMatches(c)
	case viewAging:
		h.getAgingReport(c)
	case viewPayments:
		h.listPayments(c)
	case viewReceipts:
		h.listReceipts(c)
	default:
		h.getSummary(c)
	}
}

func bindListParams(c *gin.Context) (dto.ListParams, bool) {
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Invalid list parameters", slog.String("error", err.Error()))
		respondBindError(c, err)
		return params, false
	}
	return params, true
}

func (h *payablesHandler) listInvoices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params, ok := bindListParams(c)
	if !ok {
		return
	}

	invoices, total, err := h.invoiceService.ListInvoices(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to fetch invoices")
		return
	}
	c.JSON(http.StatusOK, dto.ListInvoicesResponse{
		Invoices: dto.ToInvoiceBalanceResponses(invoices),
		Total:    total,
		Page:     params.Page,
		Limit:    params.Limit,
	})
}

func (h *payablesHandler) listPendingMatches(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	analyses, err := h.matchingService.ListPendingMatches(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to fetch pending matches")
		return
	}
	c.JSON(http.StatusOK, dto.ListPendingMatchesResponse{
		PendingMatches: dto.ToPendingMatchResponses(analyses),
		Total:          len(analyses),
	})
}

func (h *payablesHandler) getAgingReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	asOf := h.now()
	if raw := c.Query("asOf"); raw != "" {
		parsed, err := dto.ParseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error:   "Validation failed",
				Details: []dto.FieldError{{Field: "asOf", Message: "must be a date in YYYY-MM-DD format"}},
			})
			return
		}
		asOf = parsed
	}

	report, err := h.reportingService.GetAgingReport(c.Request.Context(), asOf)
	if err != nil {
		respondError(c, logger, err, "Failed to build aging report")
		return
	}
	c.JSON(http.StatusOK, dto.ToAgingReportResponse(*report, asOf.Format(dto.DateLayout)))
}

func (h *payablesHandler) listPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params, ok := bindListParams(c)
	if !ok {
		return
	}

	payments, total, err := h.paymentService.ListPayments(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to fetch payments")
		return
	}
	c.JSON(http.StatusOK, dto.ListPaymentsResponse{
		Payments: dto.ToPaymentHistoryResponses(payments),
		Total:    total,
		Page:     params.Page,
		Limit:    params.Limit,
	})
}

func (h *payablesHandler) listReceipts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params, ok := bindListParams(c)
	if !ok {
		return
	}

	receipts, total, err := h.receiptService.ListReceipts(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to fetch receipts")
		return
	}
	c.JSON(http.StatusOK, dto.ListReceiptsResponse{
		Receipts: dto.ToReceiptResponses(receipts),
		Total:    total,
		Page:     params.Page,
		Limit:    params.Limit,
	})
}

func (h *payablesHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	summary, err := h.reportingService.GetPayablesSummary(c.Request.Context(), h.now())
	if err != nil {
		respondError(c, logger, err, "Failed to fetch payables summary")
		return
	}
	c.JSON(http.StatusOK, dto.ToPayablesSummaryResponse(summary))
}

// postPayables godoc
// @Summary Run an accounts payable action
// @Description Dispatches on action: create_invoice, create_receipt, record_payment, perform_3way_match. The shape of data depends on the action.
// @Tags accounts-payable
// @Accept json
// @Produce json
// @Param request body dto.PayablesActionRequest true "Action and its data"
// @Success 200 {object} dto.PerformMatchResponse "perform_3way_match"
// @Success 201 {object} dto.InvoiceEnvelope "create_invoice"
// @Failure 400 {object} dto.ErrorResponse "Validation failed or Invalid action"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Invoice, purchase order or receipt not found"
// @Failure 409 {object} dto.ErrorResponse "Duplicate invoice number or concurrent modification"
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /accounts-payable [post]
func (h *payablesHandler) postPayables(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.PayablesActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind accounts payable action", slog.String("error", err.Error()))
		respondBindError(c, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("action", req.Action))
	middleware.SetOperation(c, req.Action)

	switch req.Action {
	case actionCreateInvoice:
		h.createInvoice(c, logger, req, userID)
	case actionCreateReceipt:
		h.createReceipt(c, logger, req, userID)
	case actionRecordPayment:
		h.recordPayment(c, logger, req, userID)
	case actionPerformMatch:
		h.performMatch(c, logger, req, userID)
	default:
		logger.Warn("Unknown accounts payable action")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid action"})
	}
}

func (h *payablesHandler) createInvoice(c *gin.Context, logger *slog.Logger, req dto.PayablesActionRequest, userID string) {
	var data dto.CreateInvoiceRequest
	if err := decodeAndValidate(req.Data, &data); err != nil {
		respondBindError(c, err)
		return
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), data, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create invoice")
		return
	}
	c.JSON(http.StatusCreated, dto.InvoiceEnvelope{Invoice: dto.ToInvoiceResponse(invoice)})
}

func (h *payablesHandler) createReceipt(c *gin.Context, logger *slog.Logger, req dto.PayablesActionRequest, userID string) {
	var data dto.CreateReceiptRequest
	if err := decodeAndValidate(req.Data, &data); err != nil {
		respondBindError(c, err)
		return
	}

	receipt, linked, err := h.receiptService.CreateReceipt(c.Request.Context(), data, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create receipt")
		return
	}
	c.JSON(http.StatusCreated, dto.CreateReceiptResponse{
		Receipt:        dto.ToReceiptResponse(receipt),
		LinkedInvoices: linked,
	})
}

func (h *payablesHandler) recordPayment(c *gin.Context, logger *slog.Logger, req dto.PayablesActionRequest, userID string) {
	var data dto.RecordPaymentRequest
	if err := decodeAndValidate(req.Data, &data); err != nil {
		respondBindError(c, err)
		return
	}

	payment, status, err := h.paymentService.RecordPayment(c.Request.Context(), data, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to record payment")
		return
	}
	c.JSON(http.StatusCreated, dto.RecordPaymentResponse{
		Payment:       dto.ToPaymentResponse(payment),
		InvoiceStatus: string(status),
	})
}

func (h *payablesHandler) performMatch(c *gin.Context, logger *slog.Logger, req dto.PayablesActionRequest, userID string) {
	var data dto.PerformMatchRequest
	if err := decodeAndValidate(req.Data, &data); err != nil {
		respondBindError(c, err)
		return
	}

	logger = logger.With(slog.String("invoice_id", data.InvoiceID))
	result, err := h.matchingService.PerformMatch(c.Request.Context(), data.InvoiceID, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to perform 3-way match")
		return
	}
	logger.Info("3-way match completed", slog.Bool("auto_approved", result.AutoApprove))
	c.JSON(http.StatusOK, dto.ToPerformMatchResponse(*result))
}

// patchPayables godoc
// @Summary Approve, reject or update an invoice
// @Description action=approve uses approved_by, action=reject requires reason. Any other action updates description and due_date.
// @Tags accounts-payable
// @Accept json
// @Produce json
// @Param request body dto.UpdateInvoiceRequest true "Invoice update"
// @Success 200 {object} dto.InvoiceEnvelope
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Concurrent modification"
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /accounts-payable [patch]
func (h *payablesHandler) patchPayables(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind invoice update", slog.String("error", err.Error()))
		respondBindError(c, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("invoice_id", req.ID), slog.String("action", req.Action))
	middleware.SetOperation(c, req.Action)

	var (
		invoice *domain.Invoice
		err     error
	)
	switch req.Action {
	case patchApprove:
		invoice, err = h.invoiceService.ApproveInvoice(c.Request.Context(), req.ID, req.ApprovedBy, userID)
	case patchReject:
		invoice, err = h.invoiceService.RejectInvoice(c.Request.Context(), req.ID, req.Reason, req.RejectedBy, userID)
	default:
		invoice, err = h.invoiceService.UpdateInvoice(c.Request.Context(), req, userID)
	}
	if err != nil {
		respondError(c, logger, err, "Failed to update invoice")
		return
	}

	logger.Info("Invoice updated", slog.String("status", string(invoice.Status)))
	c.JSON(http.StatusOK, dto.InvoiceEnvelope{Invoice: dto.ToInvoiceResponse(invoice)})
}

// voidInvoice godoc
// @Summary Void an invoice
// @Description Voids an invoice that has no completed payments. Voided invoices cannot change again.
// @Tags accounts-payable
// @Produce json
// @Param id query string true "Invoice ID"
// @Param reason query string false "Void reason"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse "Missing id or invoice has completed payments"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /accounts-payable [delete]
func (h *payablesHandler) voidInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	invoiceID := c.Query("id")
	if invoiceID == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invoice ID is required"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("invoice_id", invoiceID))
	if err := h.invoiceService.VoidInvoice(c.Request.Context(), invoiceID, c.Query("reason"), userID); err != nil {
		respondError(c, logger, err, "Failed to void invoice")
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}
