package handlers

import (
	"restaurant-management-api/middleware"
	"restaurant-management-api/resp"
	"restaurant-management-api/services"

	"github.com/gin-gonic/gin"
)

// ── Menu Categories ─────────────────────────────────────────────────────────

func (h *Handler) AddCategory(c *gin.Context) {
	var req services.CategoryInput
	if !h.bindJSON(c, &req) {
		return
	}
	cat, err := h.svc.Categories.Add(c.Request.Context(), middleware.CurrentAdmin(c), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Category added successfully", "category": cat})
}

// ListCategories takes restaurantId from the query string or the JSON body
func (h *Handler) ListCategories(c *gin.Context) {
	restaurantID, ok := h.lookupID(c, "restaurantId")
	if !ok {
		return
	}
	cats, err := h.svc.Categories.List(c.Request.Context(), middleware.CurrentAdmin(c), restaurantID)
	if err != nil {
		h.fail(c, err)
		return
	}
	resp.OK(c, gin.H{"categories": cats})
}

func (h *Handler) EditCategory(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	var req map[string]any
	if !h.bindJSON(c, &req) {
		return
	}
	cat, err := h.svc.Categories.Edit(c.Request.Context(), middleware.CurrentAdmin(c), id, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Category updated successfully", "category": cat})
}

func (h *Handler) DeleteCategory(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	cat, err := h.svc.Categories.Delete(c.Request.Context(), middleware.CurrentAdmin(c), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Category deleted successfully", "category": cat})
}
