package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	autherrors "github.com/ifzc/easy-record-working-api/internal/auth/errors"
	"github.com/ifzc/easy-record-working-api/internal/shared/contextutil"
	"github.com/ifzc/easy-record-working-api/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware verifies the bearer token and places the caller's
// tenant/user identity into the gin context and the request context.
// Every tenant-scoped route depends on tenant_id being set here.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token not found", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			errObj := autherrors.ErrInvalidToken
			if err != nil && strings.Contains(err.Error(), "expired") {
				errObj = autherrors.ErrTokenExpired
			}
			response.Error(c, errObj.HTTPStatus, errObj.Code, errObj.Message, nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid token claims", nil)
			c.Abort()
			return
		}

		userID, ok := claims["user_id"].(string)
		if !ok || userID == "" {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "User ID not found in token", nil)
			c.Abort()
			return
		}

		tenantIDClaim, ok := claims["tenant_id"].(string)
		if !ok || tenantIDClaim == "" {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Tenant ID not found in token", nil)
			c.Abort()
			return
		}

		account, _ := claims["account"].(string)
		role, _ := claims["role"].(string)

		c.Set("user_id", userID)
		c.Set("tenant_id", tenantIDClaim)
		c.Set("account", account)
		c.Set("role", role)

		ctx := c.Request.Context()
		ctx = contextutil.WithUserID(ctx, userID)
		ctx = contextutil.WithTenantID(ctx, tenantIDClaim)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
