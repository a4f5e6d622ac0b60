package handlers

import (
	"restaurant-management-api/middleware"
	"restaurant-management-api/resp"
	"restaurant-management-api/services"

	"github.com/gin-gonic/gin"
)

// ── Restaurant Management ────────────────────────────────────────────────────

// CreateRestaurant registers a restaurant owned by the logged-in admin
func (h *Handler) CreateRestaurant(c *gin.Context) {
	var req services.RestaurantInput
	if !h.bindJSON(c, &req) {
		return
	}
	rest, err := h.svc.Restaurants.Create(c.Request.Context(), middleware.CurrentAdmin(c), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	resp.Created(c, gin.H{"message": "Restaurant created successfully", "restaurant": rest})
}

// ListRestaurants returns every restaurant the admin owns
func (h *Handler) ListRestaurants(c *gin.Context) {
	rests, err := h.svc.Restaurants.ListOwned(c.Request.Context(), middleware.CurrentAdmin(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	resp.OK(c, gin.H{"restaurants": rests})
}

func (h *Handler) GetRestaurant(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	rest, err := h.svc.Restaurants.Get(c.Request.Context(), middleware.CurrentAdmin(c), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	resp.OK(c, gin.H{"restaurant": rest})
}

// UpdateRestaurant applies a partial update; only safe fields are accepted
func (h *Handler) UpdateRestaurant(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	var req map[string]any
	if !h.bindJSON(c, &req) {
		return
	}
	rest, err := h.svc.Restaurants.Update(c.Request.Context(), middleware.CurrentAdmin(c), id, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Restaurant updated", "restaurant": rest})
}
