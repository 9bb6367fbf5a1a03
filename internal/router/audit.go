package router

import (
	"volunteer-platform/internal/handler"
	"volunteer-platform/internal/middleware"

	"github.com/cloudwego/hertz/pkg/route"
)

func RegisterAuditRouter(r *route.RouterGroup) {
	r.GET("/audits", middleware.RequireRoles("organization", "admin"), handler.ListAuditRecords)
}
