package handler

import (
	"context"

	"volunteer-platform/internal/api"
	"volunteer-platform/internal/response"
	"volunteer-platform/internal/service"

	"github.com/cloudwego/hertz/pkg/app"
)

func MyPointLedger(ctx context.Context, c *app.RequestContext) {
	var req api.PointLedgerRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.Fail(c, err)
		return
	}
	data, err := service.NewPointService(ctx, c).MyLedger(&req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, data)
}

func Leaderboard(ctx context.Context, c *app.RequestContext) {
	var req api.LeaderboardRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.Fail(c, err)
		return
	}
	data, err := service.NewLeaderboardService(ctx, c).Leaderboard(&req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, data)
}

func BadgeCatalog(ctx context.Context, c *app.RequestContext) {
	data, err := service.NewBadgeService(ctx, c).Catalog()
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, data)
}

func MyBadges(ctx context.Context, c *app.RequestContext) {
	data, err := service.NewBadgeService(ctx, c).MyBadges()
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, data)
}

func VolunteerBadges(ctx context.Context, c *app.RequestContext) {
	volunteerID, err := pathParamInt64(c, "id")
	if err != nil {
		response.Fail(c, err)
		return
	}
	data, err := service.NewBadgeService(ctx, c).VolunteerBadges(volunteerID)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, data)
}
