package router

import (
	"volunteer-platform/internal/handler"
	"volunteer-platform/internal/middleware"

	"github.com/cloudwego/hertz/pkg/route"
)

func RegisterAssignmentRouter(r *route.RouterGroup) {
	assignments := r.Group("/assignments")

	assignments.GET("/my", handler.MyAssignments)
	assignments.POST("/:id/accept", handler.AcceptAssignment)
	assignments.POST("/:id/reject", handler.RejectAssignment)
	assignments.POST("/:id/start", handler.StartAssignment)
	assignments.POST("/:id/complete", handler.CompleteAssignment)

	// 核验由指派所属组织的成员或管理员发起
	assignments.POST("/:id/verify",
		middleware.RequireRoles("organization", "admin"), handler.VerifyAssignment)
}
