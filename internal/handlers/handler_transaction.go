package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/personal_os/internal/core/domain"
	portssvc "github.com/SscSPs/personal_os/internal/core/ports/services"
	"github.com/SscSPs/personal_os/internal/dto"
	"github.com/SscSPs/personal_os/internal/middleware"
	"github.com/gin-gonic/gin"
)

type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{transactionService: ts}
}

// registerTransactionRoutes registers the transaction manager routes.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)

	txns := rg.Group("/transactions")
	{
		txns.GET("", h.listTransactions)
		txns.POST("", h.createTransaction)
		txns.GET("/:txnID", h.getTransaction)
		txns.PATCH("/:txnID", h.updateTransaction)
		txns.DELETE("/:txnID", h.deleteTransaction)
	}
}

// listTransactions godoc
// @Summary List transactions
// @Description Lists transactions newest first. end_date is inclusive.
// @Tags transactions
// @Produce json
// @Param start_date query string false "First day (YYYY-MM-DD)"
// @Param end_date query string false "Last day (YYYY-MM-DD)"
// @Param txn_type query string false "income, expense, transfer or liability_payment"
// @Param category query string false "Exact category"
// @Success 200 {array} dto.TransactionResponse
// @Failure 400 {object} errorResponse
// @Router /expense/transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	filter := domain.TransactionFilter{
		TxnType:  domain.TxnType(strings.TrimSpace(params.TxnType)),
		Category: strings.TrimSpace(params.Category),
	}
	if params.StartDate != "" {
		d, err := dto.ParseDate(params.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "start_date: " + err.Error()})
			return
		}
		filter.StartDate = d.TimePtr()
	}
	if params.EndDate != "" {
		d, err := dto.ParseDate(params.EndDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "end_date: " + err.Error()})
			return
		}
		filter.EndDate = d.TimePtr()
	}

	txns, err := h.transactionService.ListTransactions(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTransactionResponse(txns))
}

// createTransaction godoc
// @Summary Post a transaction
// @Description Records a transaction and applies its balance effect. Missing default accounts resolve to the primary asset.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} errorResponse "Validation error or invalid balance effect"
// @Failure 500 {object} errorResponse
// @Router /expense/transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create transaction")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Transaction posted",
		slog.Int64("transaction_id", txn.ID), slog.String("txn_type", string(txn.TxnType)))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// getTransaction godoc
// @Summary Get a transaction by ID
// @Tags transactions
// @Produce json
// @Param txnID path int true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} errorResponse
// @Router /expense/transactions/{txnID} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	txnID, ok := idParam(c, "txnID")
	if !ok {
		return
	}
	txn, err := h.transactionService.GetTransactionByID(c.Request.Context(), txnID)
	if err != nil {
		respondError(c, err, "Failed to get transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// updateTransaction godoc
// @Summary Update a transaction
// @Description Reverses the stored effect and applies the updated one atomically.
// @Tags transactions
// @Accept json
// @Produce json
// @Param txnID path int true "Transaction ID"
// @Param transaction body dto.UpdateTransactionRequest true "Fields to change"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /expense/transactions/{txnID} [patch]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	txnID, ok := idParam(c, "txnID")
	if !ok {
		return
	}
	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	txn, err := h.transactionService.UpdateTransaction(c.Request.Context(), txnID, req)
	if err != nil {
		respondError(c, err, "Failed to update transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Description Reverses the transaction's balance effect and removes it.
// @Tags transactions
// @Param txnID path int true "Transaction ID"
// @Success 204
// @Failure 404 {object} errorResponse
// @Router /expense/transactions/{txnID} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	txnID, ok := idParam(c, "txnID")
	if !ok {
		return
	}
	if err := h.transactionService.DeleteTransaction(c.Request.Context(), txnID); err != nil {
		respondError(c, err, "Failed to delete transaction")
		return
	}
	c.Status(http.StatusNoContent)
}
