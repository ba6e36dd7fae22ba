package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"notely/pkg/context"
	"notely/pkg/jwt"
	"notely/pkg/response"
)

// Auth 解析 Bearer access 令牌，把用户身份写入请求上下文。
// 临近过期时在响应头里带上新令牌。
func Auth(secret []byte, accessExpire time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "missing Authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Abort(c, http.StatusUnauthorized, "invalid Authorization header")
			return
		}

		claims, err := jwt.ParseToken(secret, "access", parts[1])
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		if jwt.ShouldRotate(claims, 5*time.Minute) {
			if newToken, err := jwt.GenerateToken(secret, claims.UserID, claims.Username, "access", accessExpire); err == nil {
				c.Header("X-New-Access-Token", newToken)
			}
		}

		c.Set(context.CtxUserID, claims.UserID)
		c.Set(context.CtxUsername, claims.Username)
		c.Next()
	}
}
