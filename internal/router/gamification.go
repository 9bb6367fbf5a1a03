package router

import (
	"volunteer-platform/internal/handler"

	"github.com/cloudwego/hertz/pkg/route"
)

func RegisterGamificationRouter(r *route.RouterGroup) {
	r.GET("/points/my", handler.MyPointLedger)
	r.GET("/leaderboard", handler.Leaderboard)
	r.GET("/badges", handler.BadgeCatalog)
	r.GET("/badges/my", handler.MyBadges)
}
