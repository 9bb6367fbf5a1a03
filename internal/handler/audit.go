package handler

import (
	"context"

	"volunteer-platform/internal/api"
	"volunteer-platform/internal/response"
	"volunteer-platform/internal/service"

	"github.com/cloudwego/hertz/pkg/app"
)

func ListAuditRecords(ctx context.Context, c *app.RequestContext) {
	var req api.AuditRecordListRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.Fail(c, err)
		return
	}
	data, err := service.NewAuditService(ctx, c).ListRecords(&req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, data)
}
