package handler

import (
	"context"

	"volunteer-platform/internal/api"
	"volunteer-platform/internal/response"
	"volunteer-platform/internal/service"

	"github.com/cloudwego/hertz/pkg/app"
)

func CreateTask(ctx context.Context, c *app.RequestContext) {
	var req api.CreateTaskRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.Fail(c, err)
		return
	}
	data, err := service.NewTaskService(ctx, c).CreateTask(&req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, data)
}

func GetTask(ctx context.Context, c *app.RequestContext) {
	taskID, err := pathParamInt64(c, "id")
	if err != nil {
		response.Fail(c, err)
		return
	}
	data, err := service.NewTaskService(ctx, c).GetTask(taskID)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, data)
}

func ListTasks(ctx context.Context, c *app.RequestContext) {
	var req api.TaskListRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.Fail(c, err)
		return
	}
	data, err := service.NewTaskService(ctx, c).ListTasks(&req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, data)
}

func CancelTask(ctx context.Context, c *app.RequestContext) {
	taskID, err := pathParamInt64(c, "id")
	if err != nil {
		response.Fail(c, err)
		return
	}
	if err := service.NewTaskService(ctx, c).CancelTask(taskID); err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, nil)
}
