package handler

import (
	"context"

	"volunteer-platform/internal/api"
	"volunteer-platform/internal/response"
	"volunteer-platform/internal/service"

	"github.com/cloudwego/hertz/pkg/app"
)

func RunMatching(ctx context.Context, c *app.RequestContext) {
	taskID, err := pathParamInt64(c, "id")
	if err != nil {
		response.Fail(c, err)
		return
	}
	var req api.RunMatchingRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.Fail(c, err)
		return
	}
	data, err := service.NewMatchingService(ctx, c).RunMatching(taskID, &req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, data)
}

func RecommendationHistory(ctx context.Context, c *app.RequestContext) {
	taskID, err := pathParamInt64(c, "id")
	if err != nil {
		response.Fail(c, err)
		return
	}
	data, err := service.NewMatchingService(ctx, c).RecommendationHistory(taskID)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, data)
}
