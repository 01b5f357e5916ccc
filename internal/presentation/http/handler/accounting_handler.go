package handler

import (
	"github.com/billerone/billerone-web/internal/application/service"
	"github.com/billerone/billerone-web/internal/domain/entity"
	"github.com/billerone/billerone-web/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// AccountingHandler handles billing entries
type AccountingHandler struct {
	accountingService *service.AccountingService
}

// NewAccountingHandler creates a new accounting handler
func NewAccountingHandler(accountingService *service.AccountingService) *AccountingHandler {
	return &AccountingHandler{accountingService: accountingService}
}

// Suggest prefills an entry from an invoice
func (h *AccountingHandler) Suggest(c *gin.Context) {
	ws := mustWorkspace(c)
	if ws == nil {
		return
	}

	invoiceID, err := parseID(c, "invoice_id")
	if err != nil {
		response.Error(c, err)
		return
	}

	suggestion, err := h.accountingService.Suggest(c.Request.Context(), ws, invoiceID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Entry suggested", suggestion)
}

// Submit posts an entry to the accounting module
func (h *AccountingHandler) Submit(c *gin.Context) {
	ws := mustWorkspace(c)
	if ws == nil {
		return
	}

	var req entity.EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	resp, err := h.accountingService.Submit(c.Request.Context(), ws, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Entry posted successfully", resp.Data)
}
