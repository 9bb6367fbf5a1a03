package handler

import (
	"context"

	"volunteer-platform/internal/api"
	"volunteer-platform/internal/response"
	"volunteer-platform/internal/service"

	"github.com/cloudwego/hertz/pkg/app"
)

func MyVolunteerProfile(ctx context.Context, c *app.RequestContext) {
	data, err := service.NewVolunteerService(ctx, c).MyProfile()
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, data)
}

func GetVolunteerProfile(ctx context.Context, c *app.RequestContext) {
	volunteerID, err := pathParamInt64(c, "id")
	if err != nil {
		response.Fail(c, err)
		return
	}
	data, err := service.NewVolunteerService(ctx, c).GetProfile(volunteerID)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, data)
}

func UpdateMyVolunteerProfile(ctx context.Context, c *app.RequestContext) {
	var req api.UpdateVolunteerProfileRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.Fail(c, err)
		return
	}
	data, err := service.NewVolunteerService(ctx, c).UpdateMyProfile(&req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, data)
}
