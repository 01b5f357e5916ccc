package handler

import (
	"net/http"
	"strconv"

	"github.com/billerone/billerone-web/internal/application/service"
	"github.com/billerone/billerone-web/internal/presentation/http/dto/request"
	"github.com/billerone/billerone-web/internal/presentation/http/dto/response"
	"github.com/billerone/billerone-web/pkg/pagination"
	"github.com/gin-gonic/gin"
)

// ResourceHandler serves one cached collection of the session workspace
type ResourceHandler[T any] struct {
	list func(*service.Workspace) *service.ResourceList[T]
}

// NewResourceHandler creates a handler for the list picked by list
func NewResourceHandler[T any](list func(*service.Workspace) *service.ResourceList[T]) *ResourceHandler[T] {
	return &ResourceHandler[T]{list: list}
}

// List handles listing records, filtered by search and paginated
func (h *ResourceHandler[T]) List(c *gin.Context) {
	ws := mustWorkspace(c)
	if ws == nil {
		return
	}
	list := h.list(ws)

	var req request.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	ctx := c.Request.Context()
	var err error
	if req.Refresh {
		err = list.Load(ctx)
	} else {
		err = list.EnsureLoaded(ctx)
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.Paginate(list.Filter(req.Search), &pagination.PaginationParams{
		Page:    req.Page,
		PerPage: req.PerPage,
	})
	response.SuccessWithPagination(c, http.StatusOK, list.Definition().PluralTitle()+" retrieved successfully", result)
}

// Form opens the create form, or the edit form when ?id= is given
func (h *ResourceHandler[T]) Form(c *gin.Context) {
	ws := mustWorkspace(c)
	if ws == nil {
		return
	}
	list := h.list(ws)

	var id *int
	if raw := c.Query("id"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(c, "Invalid id")
			return
		}
		if err := list.EnsureLoaded(c.Request.Context()); err != nil {
			response.Error(c, err)
			return
		}
		id = &v
	}

	form, err := list.OpenForm(id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Form opened", form)
}

// CloseForm discards the open form and its input
func (h *ResourceHandler[T]) CloseForm(c *gin.Context) {
	ws := mustWorkspace(c)
	if ws == nil {
		return
	}
	list := h.list(ws)

	list.CloseForm()
	response.OK(c, "Form closed", list.Form())
}

// Create handles creating a record
func (h *ResourceHandler[T]) Create(c *gin.Context) {
	h.save(c, false)
}

// Update handles updating a record
func (h *ResourceHandler[T]) Update(c *gin.Context) {
	h.save(c, true)
}

func (h *ResourceHandler[T]) save(c *gin.Context, update bool) {
	ws := mustWorkspace(c)
	if ws == nil {
		return
	}
	list := h.list(ws)
	ctx := c.Request.Context()

	var editingID *int
	if update {
		id, err := parseID(c, "id")
		if err != nil {
			response.Error(c, err)
			return
		}
		editingID = &id
	}

	var values T
	if err := c.ShouldBindJSON(&values); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := list.Save(ctx, values, editingID); err != nil {
		response.Error(c, err)
		return
	}

	singular := list.Definition().Title()
	if update {
		response.OK(c, singular+" updated successfully", nil)
		return
	}
	response.Created(c, singular+" created successfully", nil)
}

// Delete handles deleting a record
func (h *ResourceHandler[T]) Delete(c *gin.Context) {
	ws := mustWorkspace(c)
	if ws == nil {
		return
	}
	list := h.list(ws)
	ctx := c.Request.Context()

	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := list.EnsureLoaded(ctx); err != nil {
		response.Error(c, err)
		return
	}

	if err := list.Remove(ctx, id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, list.Definition().Title()+" deleted successfully", nil)
}
