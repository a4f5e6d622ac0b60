// Package resp writes JSON responses in the shape every endpoint shares.
package resp

import (
	"net/http"

	"restaurant-management-api/apperr"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func OK(c *gin.Context, body gin.H) {
	c.JSON(http.StatusOK, body)
}

func Created(c *gin.Context, body gin.H) {
	c.JSON(http.StatusCreated, body)
}

// Error writes err as {"error": message, "code": CODE} with the status of its
// code and aborts the chain. Internal errors are logged and their cause is
// never sent to the client.
func Error(c *gin.Context, log *zap.Logger, err error) {
	e := apperr.From(err)
	if e.Kind() == apperr.KindInternal {
		log.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err))
	}
	c.AbortWithStatusJSON(e.Status(), gin.H{"error": e.Message, "code": e.Code})
}
