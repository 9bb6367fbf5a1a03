package service

import (
	"context"

	"volunteer-platform/internal/api"
	"volunteer-platform/internal/model"
	"volunteer-platform/internal/repository"
	"volunteer-platform/pkg/logger"

	"github.com/cloudwego/hertz/pkg/app"
)

var log = logger.GetLogger()

type Service struct {
	ctx  context.Context
	c    *app.RequestContext
	repo *repository.Repository
}

// NewService 创建新的服务实例
func NewService(ctx context.Context, c *app.RequestContext) *Service {
	return &Service{
		ctx:  ctx,
		c:    c,
		repo: repository.NewRepository(ctx, c),
	}
}

// convertAccountToUserInfo 系统账户转登录态用户信息
func convertAccountToUserInfo(account *model.SysAccount) *api.UserInfo {
	if account == nil {
		return nil
	}
	return &api.UserInfo{
		ID:       account.ID,
		Username: account.Username,
		Email:    account.Email,
		Identity: model.GetIdentityTypeName(account.IdentityType),
		Status:   account.Status,
	}
}
