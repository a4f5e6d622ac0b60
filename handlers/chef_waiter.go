package handlers

import (
	"restaurant-management-api/middleware"
	"restaurant-management-api/resp"
	"restaurant-management-api/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) StaffLogin(c *gin.Context) {
	var req services.LoginInput
	if !h.bindJSON(c, &req) {
		return
	}
	cw, token, err := h.svc.Staff.Login(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.setSession(c, middleware.StaffCookie, token, true)
	resp.OK(c, gin.H{"message": "Login successful", "token": token, "chefWaiter": cw})
}

func (h *Handler) StaffLogout(c *gin.Context) {
	h.clearSession(c, middleware.StaffCookie, true)
	resp.OK(c, gin.H{"message": "Logged out successfully"})
}

func (h *Handler) StaffProfile(c *gin.Context) {
	resp.OK(c, gin.H{"chefWaiter": middleware.CurrentStaff(c)})
}
