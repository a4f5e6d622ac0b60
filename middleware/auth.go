package middleware

import (
	"context"
	"slices"

	"restaurant-management-api/apperr"
	"restaurant-management-api/auth"
	"restaurant-management-api/models"
	"restaurant-management-api/resp"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Cookie names carrying the session tokens.
const (
	AdminCookie = "token"
	StaffCookie = "chefWaiter_token"
)

const (
	adminKey = "admin"
	staffKey = "chefWaiter"
)

type AdminLoader interface {
	Get(ctx context.Context, id uint) (*models.Admin, error)
}

type StaffLoader interface {
	Get(ctx context.Context, id uint) (*models.ChefWaiter, error)
}

// RequireAdmin authenticates the admin session cookie and loads the admin
// into the request context.
func RequireAdmin(creds *auth.Credentials, admins AdminLoader, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := sessionClaims(c, creds, AdminCookie)
		if err != nil {
			resp.Error(c, log, err)
			return
		}
		if claims.Role != models.RoleAdmin {
			resp.Error(c, log, apperr.New(apperr.CodeForbidden, "admin access required"))
			return
		}

		admin, err := admins.Get(c.Request.Context(), claims.PrincipalID)
		if err != nil {
			resp.Error(c, log, principalError(err, "admin not found"))
			return
		}
		c.Set(adminKey, admin)
		c.Next()
	}
}

// RequireStaff authenticates the staff session cookie and admits only the
// given roles.
func RequireStaff(creds *auth.Credentials, staff StaffLoader, log *zap.Logger, roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := sessionClaims(c, creds, StaffCookie)
		if err != nil {
			resp.Error(c, log, err)
			return
		}
		if !slices.Contains(roles, claims.Role) {
			resp.Error(c, log, apperr.New(apperr.CodeForbidden, "access denied for role %s", claims.Role))
			return
		}

		cw, err := staff.Get(c.Request.Context(), claims.PrincipalID)
		if err != nil {
			resp.Error(c, log, principalError(err, "user not found"))
			return
		}
		if !slices.Contains(roles, cw.Role) {
			resp.Error(c, log, apperr.New(apperr.CodeForbidden, "access denied for role %s", cw.Role))
			return
		}
		c.Set(staffKey, cw)
		c.Next()
	}
}

func sessionClaims(c *gin.Context, creds *auth.Credentials, cookie string) (*auth.Claims, error) {
	token, err := c.Cookie(cookie)
	if err != nil || token == "" {
		return nil, apperr.New(apperr.CodeUnauthenticated, "unauthorized")
	}
	claims, err := creds.VerifyToken(token)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeInvalidToken, "invalid or expired token")
	}
	return claims, nil
}

// principalError turns a failed principal lookup into PRINCIPAL_NOT_FOUND,
// keeping internal failures as they are.
func principalError(err error, msg string) error {
	if apperr.HasCode(err, apperr.CodeNotFound) {
		return apperr.New(apperr.CodePrincipalNotFound, "%s", msg)
	}
	return err
}

// CurrentAdmin returns the admin stored by RequireAdmin.
func CurrentAdmin(c *gin.Context) *models.Admin {
	v, _ := c.Get(adminKey)
	admin, _ := v.(*models.Admin)
	return admin
}

// CurrentStaff returns the chef or waiter stored by RequireStaff.
func CurrentStaff(c *gin.Context) *models.ChefWaiter {
	v, _ := c.Get(staffKey)
	cw, _ := v.(*models.ChefWaiter)
	return cw
}
