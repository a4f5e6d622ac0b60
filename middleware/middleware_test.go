package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"restaurant-management-api/apperr"
	"restaurant-management-api/auth"
	"restaurant-management-api/models"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeAdmins map[uint]*models.Admin

func (f fakeAdmins) Get(_ context.Context, id uint) (*models.Admin, error) {
	if a, ok := f[id]; ok {
		return a, nil
	}
	return nil, apperr.New(apperr.CodeNotFound, "admin %d not found", id)
}

type fakeStaff map[uint]*models.ChefWaiter

func (f fakeStaff) Get(_ context.Context, id uint) (*models.ChefWaiter, error) {
	if cw, ok := f[id]; ok {
		return cw, nil
	}
	return nil, apperr.New(apperr.CodeNotFound, "chef/waiter %d not found", id)
}

func testCreds() *auth.Credentials {
	return auth.NewCredentials([]byte("test-secret"), 24*time.Hour, bcrypt.MinCost)
}

func token(t *testing.T, creds *auth.Credentials, id uint, role models.Role) string {
	t.Helper()
	tok, err := creds.IssueToken(id, role)
	require.NoError(t, err)
	return tok
}

func serve(r *gin.Engine, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	code, _ := body["code"].(string)
	return code
}

func adminRouter(creds *auth.Credentials, admins fakeAdmins) *gin.Engine {
	r := gin.New()
	r.GET("/", RequireAdmin(creds, admins, zap.NewNop()), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": CurrentAdmin(c).ID})
	})
	return r
}

func TestRequireAdmin(t *testing.T) {
	creds := testCreds()
	admins := fakeAdmins{1: {ID: 1, Name: "Ana", Role: models.RoleAdmin}}
	r := adminRouter(creds, admins)

	expired := token(t, creds.WithClock(func() time.Time { return time.Now().Add(-48 * time.Hour) }), 1, models.RoleAdmin)

	tests := []struct {
		name   string
		cookie *http.Cookie
		status int
		code   string
	}{
		{"no cookie", nil, http.StatusUnauthorized, "UNAUTHENTICATED"},
		{"empty cookie", &http.Cookie{Name: AdminCookie, Value: ""}, http.StatusUnauthorized, "UNAUTHENTICATED"},
		{"garbage", &http.Cookie{Name: AdminCookie, Value: "not-a-jwt"}, http.StatusUnauthorized, "INVALID_TOKEN"},
		{"expired", &http.Cookie{Name: AdminCookie, Value: expired}, http.StatusUnauthorized, "INVALID_TOKEN"},
		{"staff token", &http.Cookie{Name: AdminCookie, Value: token(t, creds, 1, models.RoleChef)}, http.StatusForbidden, "FORBIDDEN"},
		{"deleted admin", &http.Cookie{Name: AdminCookie, Value: token(t, creds, 99, models.RoleAdmin)}, http.StatusUnauthorized, "PRINCIPAL_NOT_FOUND"},
		{"wrong cookie name", &http.Cookie{Name: StaffCookie, Value: token(t, creds, 1, models.RoleAdmin)}, http.StatusUnauthorized, "UNAUTHENTICATED"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(r, tt.cookie)
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.code, errorCode(t, rec))
		})
	}

	rec := serve(r, &http.Cookie{Name: AdminCookie, Value: token(t, creds, 1, models.RoleAdmin)})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1}`, rec.Body.String())
}

func TestRequireAdminTokenFromOtherSecret(t *testing.T) {
	creds := testCreds()
	other := auth.NewCredentials([]byte("other-secret"), time.Hour, bcrypt.MinCost)
	r := adminRouter(creds, fakeAdmins{1: {ID: 1, Role: models.RoleAdmin}})

	rec := serve(r, &http.Cookie{Name: AdminCookie, Value: token(t, other, 1, models.RoleAdmin)})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_TOKEN", errorCode(t, rec))
}

func TestRequireStaff(t *testing.T) {
	creds := testCreds()
	staff := fakeStaff{
		1: {ID: 1, Role: models.RoleChef, RestaurantID: 3},
		2: {ID: 2, Role: models.RoleWaiter, RestaurantID: 3},
	}
	r := gin.New()
	r.GET("/", RequireStaff(creds, staff, zap.NewNop(), models.RoleChef), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": CurrentStaff(c).ID})
	})

	rec := serve(r, &http.Cookie{Name: StaffCookie, Value: token(t, creds, 1, models.RoleChef)})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(r, &http.Cookie{Name: StaffCookie, Value: token(t, creds, 2, models.RoleWaiter)})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", errorCode(t, rec))

	rec = serve(r, &http.Cookie{Name: StaffCookie, Value: token(t, creds, 1, models.RoleAdmin)})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = serve(r, &http.Cookie{Name: StaffCookie, Value: token(t, creds, 7, models.RoleChef)})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "PRINCIPAL_NOT_FOUND", errorCode(t, rec))

	rec = serve(r, &http.Cookie{Name: AdminCookie, Value: token(t, creds, 1, models.RoleChef)})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHENTICATED", errorCode(t, rec))
}

func TestRateLimit(t *testing.T) {
	rl := NewRateLimiter(0.001, 2)
	r := gin.New()
	r.GET("/", RateLimit(rl, zap.NewNop()), func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, serve(r, nil).Code)
	assert.Equal(t, http.StatusOK, serve(r, nil).Code)
	rec := serve(r, nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "RATE_LIMITED", errorCode(t, rec))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.9:1234"
	other := httptest.NewRecorder()
	r.ServeHTTP(other, req)
	assert.Equal(t, http.StatusOK, other.Code, "limits are per client")
}

func TestRateLimiterCleanup(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	rl.Allow("a")
	rl.Cleanup(time.Hour)
	assert.Len(t, rl.clients, 1)
	rl.Cleanup(0)
	assert.Empty(t, rl.clients)
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	r := gin.New()
	r.Use(m.Handler())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	serve(r, nil)
	serve(r, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "unmatched", "404")))

	n, err := testutil.GatherAndCount(reg, "http_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestRequestLoggerPassesThrough(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger(zap.NewNop()))
	r.GET("/", func(c *gin.Context) { c.String(http.StatusTeapot, "short and stout") })

	rec := serve(r, nil)
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "short"))
}
