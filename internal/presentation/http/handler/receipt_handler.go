package handler

import (
	"github.com/billerone/billerone-web/internal/application/service"
	"github.com/billerone/billerone-web/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// ReceiptHandler handles receipt printing requests.
type ReceiptHandler struct {
	receiptService *service.ReceiptService
}

// NewReceiptHandler creates a new receipt handler.
func NewReceiptHandler(receiptService *service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService}
}

// Status returns the configured printer and whether it answers.
func (h *ReceiptHandler) Status(c *gin.Context) {
	response.OK(c, "Printer status retrieved", h.receiptService.Status(c.Request.Context()))
}

// Print sends one invoice to the receipt printer.
func (h *ReceiptHandler) Print(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	receipt, err := h.receiptService.PrintInvoice(c.Request.Context(), id)
	if err != nil {
		// The layout is still useful to the caller when only the printer failed.
		if receipt != nil {
			response.OK(c, "Receipt generated but printing failed", gin.H{
				"receipt": receipt,
				"warning": err.Error(),
			})
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt printed", gin.H{"receipt": receipt})
}
