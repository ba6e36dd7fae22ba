package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"notely/dao"
	"notely/pkg/authz"
	"notely/pkg/context"
	"notely/pkg/response"
)

// CtxIsAdmin 管理员标记，RequireAdmin 通过后写入
const CtxIsAdmin = "is_admin"

// RequireAdmin 管理端路由守卫，需在 Auth 之后挂载
func RequireAdmin(users *dao.Users) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := context.GetUserID(c)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "authentication required")
			return
		}

		user, err := users.FindWithProfile(c.Request.Context(), userID)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "authentication required")
			return
		}

		actor := &authz.Actor{
			ID:          user.ID,
			Username:    user.Username,
			IsSuperuser: user.IsSuperuser,
			IsStaff:     user.IsStaff,
		}
		if user.Profile != nil {
			actor.IsAdmin = user.Profile.IsAdmin
		}
		if err := authz.RequireRole(actor, authz.RoleAdmin); err != nil {
			response.Abort(c, http.StatusForbidden, "admin privileges required")
			return
		}

		c.Set(CtxIsAdmin, true)
		c.Next()
	}
}
