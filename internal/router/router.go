package router

import (
	"volunteer-platform/internal/handler"
	"volunteer-platform/internal/middleware"

	"github.com/cloudwego/hertz/pkg/app/server"
)

func RegisterRouter(r *server.Hertz) {

	// 全局中间件
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())

	//分组
	api := r.Group("/api")

	// 注册统一注册路由（无需认证）
	api.POST("/register", handler.UserRegister)

	// 注册登录路由（无需认证）
	RegisterLoginRouter(api)

	// 创建需要认证的路由组
	authApi := api.Group("", middleware.Auth())

	// 任务与匹配
	RegisterTaskRouter(authApi)
	// 指派生命周期与核验
	RegisterAssignmentRouter(authApi)
	// 积分、排行榜与徽章
	RegisterGamificationRouter(authApi)
	// 志愿者档案
	RegisterVolunteerRouter(authApi)
	// 组织与成员
	RegisterOrganizationRouter(authApi)
	// 审计记录
	RegisterAuditRouter(authApi)
}
