package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vhrodriguesv/clinicfin/internal/apperrors"
	"github.com/vhrodriguesv/clinicfin/internal/core/domain"
	portssvc "github.com/vhrodriguesv/clinicfin/internal/core/ports/services"
	"github.com/vhrodriguesv/clinicfin/internal/dto"
	"github.com/vhrodriguesv/clinicfin/internal/middleware"
	"github.com/vhrodriguesv/clinicfin/internal/utils/dateutil"
)

// transactionHandler handles HTTP requests for transactions and installments.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(transactionService portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{
		transactionService: transactionService,
	}
}

// createTransaction godoc
// @Summary Register a receivable or payable
// @Description Computes fees and the installment schedule and persists everything atomically
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateTransactionRequest true "Transaction"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Payment method not found"
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID, _ := middleware.GetTenantIDFromContext(c)

	createReq := dto.CreateTransactionRequest{}
	if err := c.ShouldBindJSON(&createReq); err != nil {
		logger.Error("Failed to bind JSON for CreateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	creatorUserID := middleware.GetUserIDFromContext(c)

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), tenantID, createReq, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation),
			errors.Is(err, apperrors.ErrInvalidAmount),
			errors.Is(err, apperrors.ErrInvalidInstallmentCount):
			logger.Warn("Validation error creating transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrMethodNotFound):
			logger.Warn("Payment method not found", slog.String("error", err.Error()))
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create transaction"})
		}
		return
	}

	logger.Info("Transaction created", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn, dateutil.Today()))
}

// getTransaction godoc
// @Summary Get a transaction with its installment schedule
// @Description Statuses are derived for today on every read
// @Tags transactions
// @Produce  json
// @Param   transactionID path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string "Transaction not found"
// @Router /transactions/{transactionID} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID, _ := middleware.GetTenantIDFromContext(c)
	transactionID := c.Param("transactionID")

	txn, err := h.transactionService.GetTransaction(c.Request.Context(), tenantID, transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
			return
		}
		logger.Error("Failed to get transaction", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve transaction"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn, dateutil.Today()))
}

// listTransactions godoc
// @Summary List transactions
// @Description Optional filters: direction, due date range and a fuzzy free-text query over description and notes
// @Tags transactions
// @Produce  json
// @Param   direction query string false "RECEITA or DESPESA"
// @Param   from query string false "Due date lower bound (YYYY-MM-DD)"
// @Param   to query string false "Due date upper bound (YYYY-MM-DD)"
// @Param   q query string false "Free-text query"
// @Success 200 {array} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID, _ := middleware.GetTenantIDFromContext(c)

	filter := dto.ListTransactionsFilter{Query: c.Query("q")}
	if raw := c.Query("direction"); raw != "" {
		direction := domain.Direction(raw)
		if !direction.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "direction must be RECEITA or DESPESA"})
			return
		}
		filter.Direction = &direction
	}
	if raw := c.Query("from"); raw != "" {
		from, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'from' date, expected YYYY-MM-DD"})
			return
		}
		filter.From = &from
	}
	if raw := c.Query("to"); raw != "" {
		to, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'to' date, expected YYYY-MM-DD"})
			return
		}
		filter.To = &to
	}

	txns, err := h.transactionService.ListTransactions(c.Request.Context(), tenantID, filter)
	if err != nil {
		logger.Error("Failed to list transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponses(txns, dateutil.Today()))
}

// updateTransaction godoc
// @Summary Edit a transaction and reconcile its schedule
// @Description Paid installments are preserved; a shrink below the paid history is refused
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transactionID path string true "Transaction ID"
// @Param   transaction body dto.UpdateTransactionRequest true "New values"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 409 {object} map[string]string "Schedule conflicts with paid installments"
// @Router /transactions/{transactionID} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID, _ := middleware.GetTenantIDFromContext(c)
	transactionID := c.Param("transactionID")

	updateReq := dto.UpdateTransactionRequest{}
	if err := c.ShouldBindJSON(&updateReq); err != nil {
		logger.Error("Failed to bind JSON for UpdateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	updaterUserID := middleware.GetUserIDFromContext(c)

	txn, err := h.transactionService.UpdateTransaction(c.Request.Context(), tenantID, transactionID, updateReq, updaterUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		case errors.Is(err, apperrors.ErrMethodNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrScheduleConflict):
			logger.Warn("Schedule conflict updating transaction", slog.String("transaction_id", transactionID))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrValidation),
			errors.Is(err, apperrors.ErrInvalidAmount),
			errors.Is(err, apperrors.ErrInvalidInstallmentCount):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update transaction", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update transaction"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn, dateutil.Today()))
}

// deleteTransaction godoc
// @Summary Delete a transaction and its schedule
// @Description Refused while any installment is paid
// @Tags transactions
// @Produce  json
// @Param   transactionID path string true "Transaction ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 409 {object} map[string]string "Transaction has paid installments"
// @Router /transactions/{transactionID} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID, _ := middleware.GetTenantIDFromContext(c)
	transactionID := c.Param("transactionID")

	err := h.transactionService.DeleteTransaction(c.Request.Context(), tenantID, transactionID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		case errors.Is(err, apperrors.ErrHasPaidInstallments):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to delete transaction", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete transaction"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// cancelTransaction godoc
// @Summary Cancel a transaction
// @Description Flags every unpaid installment as canceled; paid history stays intact
// @Tags transactions
// @Produce  json
// @Param   transactionID path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string "Transaction not found"
// @Router /transactions/{transactionID}/cancel [post]
func (h *transactionHandler) cancelTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID, _ := middleware.GetTenantIDFromContext(c)
	transactionID := c.Param("transactionID")
	updaterUserID := middleware.GetUserIDFromContext(c)

	if err := h.transactionService.CancelTransaction(c.Request.Context(), tenantID, transactionID, updaterUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
			return
		}
		logger.Error("Failed to cancel transaction", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel transaction"})
		return
	}

	txn, err := h.transactionService.GetTransaction(c.Request.Context(), tenantID, transactionID)
	if err != nil {
		logger.Error("Failed to reload canceled transaction", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve transaction"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn, dateutil.Today()))
}

// payInstallment godoc
// @Summary Mark an installment paid
// @Description Records payment date, late fee, late interest and discount; an installment can only be paid once
// @Tags installments
// @Accept  json
// @Produce  json
// @Param   installmentID path string true "Installment ID"
// @Param   payment body dto.PayInstallmentRequest true "Payment"
// @Success 200 {object} dto.InstallmentResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Installment not found"
// @Failure 409 {object} map[string]string "Installment already paid"
// @Router /installments/{installmentID}/pay [post]
func (h *transactionHandler) payInstallment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID, _ := middleware.GetTenantIDFromContext(c)
	installmentID := c.Param("installmentID")

	payReq := dto.PayInstallmentRequest{}
	if err := c.ShouldBindJSON(&payReq); err != nil {
		logger.Error("Failed to bind JSON for PayInstallment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	payerUserID := middleware.GetUserIDFromContext(c)

	inst, err := h.transactionService.PayInstallment(c.Request.Context(), tenantID, installmentID, payReq, payerUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Installment not found"})
		case errors.Is(err, apperrors.ErrAlreadyPaid):
			c.JSON(http.StatusConflict, gin.H{"error": "Installment already paid"})
		default:
			logger.Error("Failed to pay installment", slog.String("error", err.Error()), slog.String("installment_id", installmentID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to pay installment"})
		}
		return
	}

	logger.Info("Installment paid", slog.String("installment_id", installmentID))
	c.JSON(http.StatusOK, dto.ToInstallmentResponse(inst, dateutil.Today()))
}

// registerTransactionRoutes registers transaction and installment routes
func registerTransactionRoutes(group *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	handler := newTransactionHandler(transactionService)

	transactions := group.Group("/transactions")
	{
		transactions.POST("", handler.createTransaction)
		transactions.GET("", handler.listTransactions)
		transactions.GET("/:transactionID", handler.getTransaction)
		transactions.PUT("/:transactionID", handler.updateTransaction)
		transactions.DELETE("/:transactionID", handler.deleteTransaction)
		transactions.POST("/:transactionID/cancel", handler.cancelTransaction)
	}

	installments := group.Group("/installments")
	{
		installments.POST("/:installmentID/pay", handler.payInstallment)
	}
}
