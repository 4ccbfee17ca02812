package middleware

import (
	"net/http"
	"strings"

	"shop-service/internal/service"
	"shop-service/internal/transport/http/dto"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func injectClaims(c *gin.Context, claims *service.Claims) {
	ctx := service.WithUserID(c.Request.Context(), claims.UserID)
	ctx = service.WithRole(ctx, claims.Role)
	c.Request = c.Request.WithContext(ctx)
}

// Auth требует валидный access-токен.
func Auth(auth service.AuthService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tok := bearerToken(c)
		if tok == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewError("missing bearer token"))
			return
		}

		claims, err := auth.Authenticate(c.Request.Context(), tok)
		if err != nil {
			log.Warn("invalid access token", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewError("invalid or expired token"))
			return
		}

		injectClaims(c, claims)
		c.Next()
	}
}

// OptionalAuth подставляет claims, если токен есть; гостей пропускает.
func OptionalAuth(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tok := bearerToken(c); tok != "" {
			if claims, err := auth.Authenticate(c.Request.Context(), tok); err == nil {
				injectClaims(c, claims)
			}
		}
		c.Next()
	}
}

// RequireAdmin ставится после Auth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := service.RoleFromContext(c.Request.Context())
		if !ok || role != service.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewError("admin role required"))
			return
		}
		c.Next()
	}
}
