package handler

import (
	"context"

	"volunteer-platform/internal/api"
	"volunteer-platform/internal/response"
	"volunteer-platform/internal/service"

	"github.com/cloudwego/hertz/pkg/app"
)

func MyAssignments(ctx context.Context, c *app.RequestContext) {
	var req api.MyAssignmentsRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.Fail(c, err)
		return
	}
	data, err := service.NewAssignmentService(ctx, c).MyAssignments(&req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, data)
}

func AcceptAssignment(ctx context.Context, c *app.RequestContext) {
	respondAssignment(ctx, c, service.NewAssignmentService(ctx, c).Accept)
}

func RejectAssignment(ctx context.Context, c *app.RequestContext) {
	respondAssignment(ctx, c, service.NewAssignmentService(ctx, c).Reject)
}

func StartAssignment(ctx context.Context, c *app.RequestContext) {
	respondAssignment(ctx, c, service.NewAssignmentService(ctx, c).Start)
}

func CompleteAssignment(ctx context.Context, c *app.RequestContext) {
	respondAssignment(ctx, c, service.NewAssignmentService(ctx, c).MarkCompleted)
}

// respondAssignment 志愿者侧指派状态流转的公共处理
func respondAssignment(_ context.Context, c *app.RequestContext, fn func(int64) (*api.AssignmentInfo, error)) {
	assignmentID, err := pathParamInt64(c, "id")
	if err != nil {
		response.Fail(c, err)
		return
	}
	data, err := fn(assignmentID)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, data)
}

func VerifyAssignment(ctx context.Context, c *app.RequestContext) {
	assignmentID, err := pathParamInt64(c, "id")
	if err != nil {
		response.Fail(c, err)
		return
	}
	var req api.VerifyAssignmentRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.Fail(c, err)
		return
	}
	data, err := service.NewCompletionService(ctx, c).CompleteAssignment(assignmentID, &req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, data)
}
