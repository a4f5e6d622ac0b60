// Package handlers translates HTTP requests into service calls and service
// results into JSON responses.
package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"restaurant-management-api/apperr"
	"restaurant-management-api/config"
	"restaurant-management-api/resp"
	"restaurant-management-api/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	svc *services.Services
	cfg *config.Config
	log *zap.Logger
}

func New(svc *services.Services, cfg *config.Config, log *zap.Logger) *Handler {
	return &Handler{svc: svc, cfg: cfg, log: log}
}

func (h *Handler) fail(c *gin.Context, err error) {
	resp.Error(c, h.log, err)
}

// bindJSON decodes the request body into dst. Validation happens in the
// services; only malformed JSON is rejected here.
func (h *Handler) bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		h.fail(c, apperr.Wrap(err, apperr.CodeValidationFailed, "invalid request body"))
		return false
	}
	return true
}

// idParam parses the :id path parameter.
func (h *Handler) idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		h.fail(c, apperr.New(apperr.CodeInvalidID, "invalid id %q", c.Param("id")))
		return 0, false
	}
	return uint(id), true
}

// lookupID reads an id from the query string, falling back to the JSON
// body. A missing id yields 0; the service reports it.
func (h *Handler) lookupID(c *gin.Context, key string) (uint, bool) {
	if raw := c.Query(key); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			h.fail(c, apperr.New(apperr.CodeInvalidID, "invalid %s %q", key, raw))
			return 0, false
		}
		return uint(id), true
	}

	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		if errors.Is(err, io.EOF) {
			return 0, true
		}
		h.fail(c, apperr.Wrap(err, apperr.CodeValidationFailed, "invalid request body"))
		return 0, false
	}
	switch v := body[key].(type) {
	case nil:
		return 0, true
	case float64:
		if v < 0 || v != float64(uint(v)) {
			break
		}
		return uint(v), true
	case string:
		if id, err := strconv.ParseUint(v, 10, 64); err == nil {
			return uint(id), true
		}
	}
	h.fail(c, apperr.New(apperr.CodeInvalidID, "invalid %s", key))
	return 0, false
}

func (h *Handler) setSession(c *gin.Context, name, token string, httpOnly bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, token, int(h.cfg.CookieTTL.Seconds()), "/", "", h.cfg.CookieSecure, httpOnly)
}

func (h *Handler) clearSession(c *gin.Context, name string, httpOnly bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, "", -1, "/", "", h.cfg.CookieSecure, httpOnly)
}
