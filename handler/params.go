package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"notely/pkg/response"
)

func pathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, response.NewError(400, "invalid "+name)
	}
	return id, nil
}
