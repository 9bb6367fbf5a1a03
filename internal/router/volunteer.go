package router

import (
	"volunteer-platform/internal/handler"

	"github.com/cloudwego/hertz/pkg/route"
)

func RegisterVolunteerRouter(r *route.RouterGroup) {
	volunteers := r.Group("/volunteers")

	volunteers.GET("/my", handler.MyVolunteerProfile)
	volunteers.PUT("/my", handler.UpdateMyVolunteerProfile)
	volunteers.GET("/:id", handler.GetVolunteerProfile)
	volunteers.GET("/:id/badges", handler.VolunteerBadges)
}
