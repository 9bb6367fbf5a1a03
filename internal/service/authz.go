package service

import (
	"volunteer-platform/internal/middleware"
	"volunteer-platform/internal/model"
	"volunteer-platform/internal/response"
)

// requesterAccount 从请求上下文解析当前账户
func (s *Service) requesterAccount() (*model.SysAccount, error) {
	accountID, err := middleware.GetUserIDInt(s.c)
	if err != nil {
		return nil, response.ErrUnauthorized
	}

	account, err := s.repo.FindByID(s.repo.DB, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, response.ErrUserNotFound
	}
	return account, nil
}

// authorizeOrgAction 校验账户是否有权操作指定组织的资源
// 平台管理员放行，其余要求为该组织的正式成员
func (s *Service) authorizeOrgAction(account *model.SysAccount, orgID int64) error {
	if account.IdentityType == model.IdentityAdmin {
		return nil
	}

	isMember, err := s.repo.IsMemberOf(s.repo.DB, orgID, account.ID)
	if err != nil {
		return err
	}
	if !isMember {
		return response.ErrNotOrgMember
	}
	return nil
}

// requesterVolunteer 解析当前账户对应的志愿者档案
func (s *Service) requesterVolunteer() (*model.SysAccount, *model.Volunteer, error) {
	account, err := s.requesterAccount()
	if err != nil {
		return nil, nil, err
	}

	volunteer, err := s.repo.GetVolunteerByAccountID(s.repo.DB, account.ID)
	if err != nil {
		return nil, nil, err
	}
	if volunteer == nil {
		return nil, nil, response.ErrVolunteerNotFound
	}
	return account, volunteer, nil
}
