package handlers

import (
	"restaurant-management-api/middleware"
	"restaurant-management-api/resp"
	"restaurant-management-api/services"

	"github.com/gin-gonic/gin"
)

// Signup registers an admin and starts their session.
func (h *Handler) Signup(c *gin.Context) {
	var req services.SignupInput
	if !h.bindJSON(c, &req) {
		return
	}
	admin, token, err := h.svc.Admins.Signup(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.setSession(c, middleware.AdminCookie, token, false)
	resp.OK(c, gin.H{"message": "Admin registered successfully", "token": token, "admin": admin})
}

func (h *Handler) Login(c *gin.Context) {
	var req services.LoginInput
	if !h.bindJSON(c, &req) {
		return
	}
	admin, token, err := h.svc.Admins.Login(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.setSession(c, middleware.AdminCookie, token, false)
	resp.OK(c, gin.H{"message": "Login successful", "token": token, "admin": admin})
}

// Logout always succeeds, with or without a session.
func (h *Handler) Logout(c *gin.Context) {
	h.clearSession(c, middleware.AdminCookie, false)
	resp.OK(c, gin.H{"message": "Logged out successfully"})
}

func (h *Handler) Profile(c *gin.Context) {
	resp.OK(c, gin.H{"admin": middleware.CurrentAdmin(c)})
}

// CreateChefWaiter adds a staff account and sets its session cookie.
func (h *Handler) CreateChefWaiter(c *gin.Context) {
	var req services.CreateChefWaiterInput
	if !h.bindJSON(c, &req) {
		return
	}
	cw, token, err := h.svc.Admins.CreateChefWaiter(c.Request.Context(), middleware.CurrentAdmin(c), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.setSession(c, middleware.StaffCookie, token, true)
	resp.Created(c, gin.H{"message": string(cw.Role) + " created successfully", "token": token, "chefWaiter": cw})
}

func (h *Handler) DeleteChefWaiter(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	cw, err := h.svc.Admins.DeleteChefWaiter(c.Request.Context(), middleware.CurrentAdmin(c), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Chef/waiter deleted successfully", "chefWaiter": cw})
}
