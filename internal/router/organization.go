package router

import (
	"volunteer-platform/internal/handler"

	"github.com/cloudwego/hertz/pkg/route"
)

func RegisterOrganizationRouter(r *route.RouterGroup) {
	orgs := r.Group("/orgs")

	orgs.GET("/:id", handler.GetOrganization)
	orgs.GET("/:id/members", handler.ListOrgMembers)
	orgs.POST("/:id/members", handler.AddOrgMember)
	orgs.DELETE("/:id/members/:account_id", handler.RemoveOrgMember)
}
