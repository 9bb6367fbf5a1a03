package handler

import (
	"context"

	"volunteer-platform/internal/api"
	"volunteer-platform/internal/response"
	"volunteer-platform/internal/service"

	"github.com/cloudwego/hertz/pkg/app"
)

func GetOrganization(ctx context.Context, c *app.RequestContext) {
	orgID, err := pathParamInt64(c, "id")
	if err != nil {
		response.Fail(c, err)
		return
	}
	data, err := service.NewOrganizationService(ctx, c).GetOrg(orgID)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, data)
}

func AddOrgMember(ctx context.Context, c *app.RequestContext) {
	orgID, err := pathParamInt64(c, "id")
	if err != nil {
		response.Fail(c, err)
		return
	}
	var req api.AddOrgMemberRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.Fail(c, err)
		return
	}
	if err := service.NewOrganizationService(ctx, c).AddMember(orgID, &req); err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, nil)
}

func RemoveOrgMember(ctx context.Context, c *app.RequestContext) {
	orgID, err := pathParamInt64(c, "id")
	if err != nil {
		response.Fail(c, err)
		return
	}
	accountID, err := pathParamInt64(c, "account_id")
	if err != nil {
		response.Fail(c, err)
		return
	}
	if err := service.NewOrganizationService(ctx, c).RemoveMember(orgID, accountID); err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, nil)
}

func ListOrgMembers(ctx context.Context, c *app.RequestContext) {
	orgID, err := pathParamInt64(c, "id")
	if err != nil {
		response.Fail(c, err)
		return
	}
	data, err := service.NewOrganizationService(ctx, c).ListMembers(orgID)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, data)
}
