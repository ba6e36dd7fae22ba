package context

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"notely/pkg/response"
	"notely/pkg/validate"
)

func runWrapped(h func(*gin.Context) error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/v1/notes", nil)
	Wrap(h)(c)
	return w
}

// 兜底 500 不能把底层错误细节带给客户端
func TestWrapHidesInternalErrors(t *testing.T) {
	w := runWrapped(func(c *gin.Context) error {
		return errors.New("dial tcp 10.0.0.5:3306: connect: connection refused")
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "10.0.0.5")
	assert.NotContains(t, w.Body.String(), "dial tcp")
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestWrapMapsBizError(t *testing.T) {
	w := runWrapped(func(c *gin.Context) error {
		return response.NotFound("note not found")
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "note not found")
}

func TestWrapQuotaErrorPayload(t *testing.T) {
	w := runWrapped(func(c *gin.Context) error {
		return validate.NewQuotaError("notes", 1000, 1000)
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"quota_exceeded"`)
	assert.Contains(t, w.Body.String(), `"current":1000`)
	assert.Contains(t, w.Body.String(), `"max":1000`)
}
