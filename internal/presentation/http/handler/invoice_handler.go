package handler

import (
	"fmt"

	"github.com/billerone/billerone-web/internal/application/service"
	"github.com/billerone/billerone-web/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	pdfContentType  = "application/pdf"
)

// InvoiceHandler handles invoice reads and documents
type InvoiceHandler struct {
	invoiceService *service.InvoiceService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService *service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// Get handles getting one invoice with its lines
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	detail, err := h.invoiceService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Invoice retrieved successfully", detail)
}

// Export downloads the invoice list as a workbook
func (h *InvoiceHandler) Export(c *gin.Context) {
	ws := mustWorkspace(c)
	if ws == nil {
		return
	}

	data, err := h.invoiceService.ExportXLSX(c.Request.Context(), ws)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, xlsxContentType, "invoices.xlsx", data)
}

// PDF downloads one invoice as a PDF document
func (h *InvoiceHandler) PDF(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	data, err := h.invoiceService.RenderPDF(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, pdfContentType, fmt.Sprintf("invoice-%d.pdf", id), data)
}
