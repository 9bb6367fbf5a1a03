package router

import (
	"volunteer-platform/internal/handler"
	"volunteer-platform/internal/middleware"

	"github.com/cloudwego/hertz/pkg/route"
)

func RegisterTaskRouter(r *route.RouterGroup) {
	tasks := r.Group("/tasks")

	tasks.GET("", handler.ListTasks)
	tasks.GET("/:id", handler.GetTask)

	// 任务的创建、取消与匹配只开放给组织身份与管理员
	orgOnly := tasks.Group("", middleware.RequireRoles("organization", "admin"))
	orgOnly.POST("", handler.CreateTask)
	orgOnly.POST("/:id/cancel", handler.CancelTask)
	orgOnly.POST("/:id/match", handler.RunMatching)
	orgOnly.GET("/:id/recommendations", handler.RecommendationHistory)
}
