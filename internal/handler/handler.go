package handler

import (
	"strconv"

	"volunteer-platform/internal/response"

	"github.com/cloudwego/hertz/pkg/app"
)

// pathParamInt64 解析路径参数为int64
func pathParamInt64(c *app.RequestContext, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, response.ErrInvalidParams.WithDetails("invalid " + name)
	}
	return id, nil
}
