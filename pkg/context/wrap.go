package context

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"notely/pkg/log"
	"notely/pkg/response"
	"notely/pkg/validate"
)

const (
	CtxUserID   = "user_id"
	CtxUsername = "username"
)

type HandlerFunc func(*gin.Context) error

func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}

			// 配额错误：附带 current/max
			var qe *validate.QuotaError
			if errors.As(err, &qe) {
				c.JSON(http.StatusBadRequest, response.Response{
					Code: http.StatusBadRequest,
					Msg:  qe.Message,
					Data: gin.H{
						"field":   qe.Field,
						"code":    qe.Code(),
						"current": qe.Current,
						"max":     qe.Max,
					},
				})
				return
			}

			// 字段级校验错误
			var fe *validate.FieldError
			if errors.As(err, &fe) {
				c.JSON(http.StatusBadRequest, response.Response{
					Code: http.StatusBadRequest,
					Msg:  fe.Message,
					Data: gin.H{
						"field": fe.Field,
						"code":  fe.Code,
					},
				})
				return
			}

			// 业务错误
			var be *response.BizError
			if errors.As(err, &be) {
				status := http.StatusOK
				if be.Code >= 400 && be.Code < 600 {
					status = be.Code
				}
				c.JSON(status, response.Response{
					Code: be.Code,
					Msg:  be.Msg,
				})
				return
			}
			// 兜底错误只记日志，细节不回给客户端
			log.L.Error("request failed",
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.Error(err))
			c.JSON(http.StatusInternalServerError, response.Response{
				Code: 500,
				Msg:  "internal server error",
			})
		}
	}
}

func GetUserID(c *gin.Context) (int64, error) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, errors.New("user_id not found in context")
	}

	uid, ok := v.(int64)
	if !ok {
		return 0, errors.New("user_id has unexpected type")
	}

	return uid, nil
}

func GetUsername(c *gin.Context) string {
	return c.GetString(CtxUsername)
}
