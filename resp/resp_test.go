package resp

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"restaurant-management-api/apperr"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		err    error
		status int
		body   string
		logged int
	}{
		{
			name:   "coded",
			err:    apperr.New(apperr.CodeDuplicateName, "name taken"),
			status: http.StatusConflict,
			body:   `{"error":"name taken","code":"DUPLICATE_NAME"}`,
		},
		{
			name:   "internal keeps cause out of the body",
			err:    apperr.Internal(errors.New("disk on fire"), "failed to save item"),
			status: http.StatusInternalServerError,
			body:   `{"error":"failed to save item","code":"INTERNAL"}`,
			logged: 1,
		},
		{
			name:   "plain error",
			err:    errors.New("boom"),
			status: http.StatusInternalServerError,
			body:   `{"error":"something went wrong","code":"INTERNAL"}`,
			logged: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zap.ErrorLevel)
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			Error(c, zap.New(core), tt.err)

			assert.Equal(t, tt.status, rec.Code)
			assert.JSONEq(t, tt.body, rec.Body.String())
			assert.True(t, c.IsAborted())
			assert.Equal(t, tt.logged, logs.Len())
		})
	}
}
