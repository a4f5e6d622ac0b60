package handlers

import (
	"restaurant-management-api/middleware"
	"restaurant-management-api/resp"
	"restaurant-management-api/services"

	"github.com/gin-gonic/gin"
)

// ── Menu Items ──────────────────────────────────────────────────────────────

func (h *Handler) AddItem(c *gin.Context) {
	var req services.ItemInput
	if !h.bindJSON(c, &req) {
		return
	}
	item, err := h.svc.Items.Add(c.Request.Context(), middleware.CurrentAdmin(c), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Item added successfully", "item": item})
}

// ListItems takes categoryId from the query string or the JSON body
func (h *Handler) ListItems(c *gin.Context) {
	categoryID, ok := h.lookupID(c, "categoryId")
	if !ok {
		return
	}
	items, err := h.svc.Items.List(c.Request.Context(), middleware.CurrentAdmin(c), categoryID)
	if err != nil {
		h.fail(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// EditItem accepts name, description, price, image and vegType only
func (h *Handler) EditItem(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	var req map[string]any
	if !h.bindJSON(c, &req) {
		return
	}
	item, err := h.svc.Items.Edit(c.Request.Context(), middleware.CurrentAdmin(c), id, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Item updated successfully", "item": item})
}

func (h *Handler) DeleteItem(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	item, err := h.svc.Items.Delete(c.Request.Context(), middleware.CurrentAdmin(c), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Item deleted successfully", "item": item})
}
