package handler

import (
	"github.com/billerone/billerone-web/internal/application/service"
	"github.com/billerone/billerone-web/internal/presentation/http/dto/request"
	"github.com/billerone/billerone-web/internal/presentation/http/dto/response"
	"github.com/billerone/billerone-web/pkg/apperror"
	"github.com/gin-gonic/gin"
)

// DraftHandler handles the invoice being built in the session workspace
type DraftHandler struct {
	invoiceService *service.InvoiceService
}

// NewDraftHandler creates a new draft handler
func NewDraftHandler(invoiceService *service.InvoiceService) *DraftHandler {
	return &DraftHandler{invoiceService: invoiceService}
}

// Get returns the draft with its totals
func (h *DraftHandler) Get(c *gin.Context) {
	ws := mustWorkspace(c)
	if ws == nil {
		return
	}
	response.OK(c, "Draft retrieved successfully", ws.Draft.Snapshot())
}

// SetHeader selects client, seller and comment
func (h *DraftHandler) SetHeader(c *gin.Context) {
	ws := mustWorkspace(c)
	if ws == nil {
		return
	}

	var req request.DraftHeaderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	ws.Draft.SetHeader(req.ClientID, req.SellerID, req.Comment)
	response.OK(c, "Draft updated successfully", ws.Draft.Snapshot())
}

// Reset discards the draft
func (h *DraftHandler) Reset(c *gin.Context) {
	ws := mustWorkspace(c)
	if ws == nil {
		return
	}
	ws.Draft.Reset()
	response.OK(c, "Draft cleared", ws.Draft.Snapshot())
}

// SearchProducts returns the active articles matching ?q=
func (h *DraftHandler) SearchProducts(c *gin.Context) {
	ws := mustWorkspace(c)
	if ws == nil {
		return
	}
	if err := ws.Articles.EnsureLoaded(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}

	results := ws.Draft.SearchProducts(c.Query("q"), ws.Articles.Items())
	response.OK(c, "Articles retrieved successfully", results)
}

// AddItem adds one unit of an active article
func (h *DraftHandler) AddItem(c *gin.Context) {
	ws := mustWorkspace(c)
	if ws == nil {
		return
	}

	var req request.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "productId is required")
		return
	}

	if err := ws.Articles.EnsureLoaded(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}

	article, ok := ws.Articles.Find(req.ProductID)
	if !ok {
		response.Error(c, apperror.NewNotFoundError("Article"))
		return
	}
	if !article.IsActive() {
		response.Error(c, apperror.NewBadRequestError("Article is inactive"))
		return
	}

	ws.Draft.AddProduct(article)
	response.OK(c, "Item added", ws.Draft.Snapshot())
}

// SetQuantity replaces a line's quantity; zero or less removes it
func (h *DraftHandler) SetQuantity(c *gin.Context) {
	ws := mustWorkspace(c)
	if ws == nil {
		return
	}

	var req request.SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "quantity is required")
		return
	}

	ws.Draft.SetQuantity(c.Param("key"), *req.Quantity)
	response.OK(c, "Draft updated successfully", ws.Draft.Snapshot())
}

// RemoveItem drops a line
func (h *DraftHandler) RemoveItem(c *gin.Context) {
	ws := mustWorkspace(c)
	if ws == nil {
		return
	}
	ws.Draft.RemoveItem(c.Param("key"))
	response.OK(c, "Item removed", ws.Draft.Snapshot())
}

// Submit creates the invoice
func (h *DraftHandler) Submit(c *gin.Context) {
	ws := mustWorkspace(c)
	if ws == nil {
		return
	}

	if err := h.invoiceService.SubmitDraft(c.Request.Context(), ws); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Invoice created successfully", ws.Draft.Snapshot())
}
