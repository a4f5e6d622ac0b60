package handlers

import (
	"database/sql"
	"net/http"

	"restaurant-management-api/resp"

	"github.com/gin-gonic/gin"
)

// GetMenu returns the menu behind a restaurant's QR code (public)
func (h *Handler) GetMenu(c *gin.Context) {
	// Optional filter: ?vegType=veg|non-veg
	menu, err := h.svc.Menus.ByQRCode(c.Request.Context(), c.Param("qrcodeId"), c.Query("vegType"))
	if err != nil {
		h.fail(c, err)
		return
	}
	resp.OK(c, gin.H{"menu": menu})
}

// Health reports whether the service and its store are reachable
func Health(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": "database unreachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Restaurant Management API",
			"version": "1.0.0",
		})
	}
}
