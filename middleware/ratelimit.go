package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"notely/config"
	"notely/dao/cache"
	"notely/pkg/context"
	"notely/pkg/response"
)

// RateLimit 按分钟窗口限流。已认证请求按用户计，匿名请求按来源 IP 计。
// 计数存 redis，redis 不可用时放行。
func RateLimit(store *cache.RateStorage, conf *config.RateLimitConfig, group string) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := conf.Limit(group)
		if limit <= 0 {
			c.Next()
			return
		}
		if c.GetBool(CtxIsAdmin) {
			c.Next()
			return
		}

		ident := "ip_" + c.ClientIP()
		if userID, err := context.GetUserID(c); err == nil {
			ident = fmt.Sprintf("user_%d", userID)
		}

		count, err := store.Incr(c.Request.Context(), ident, group)
		if err == nil && count > int64(limit) {
			response.Abort(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			return
		}
		c.Next()
	}
}
