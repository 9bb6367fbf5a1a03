package service

import (
	"context"
	"time"

	"volunteer-platform/internal/api"
	"volunteer-platform/internal/model"
	"volunteer-platform/internal/repository"
	"volunteer-platform/internal/response"
	"volunteer-platform/pkg/util"

	"github.com/cloudwego/hertz/pkg/app"
)

type OrganizationService struct {
	Service
}

func NewOrganizationService(ctx context.Context, c *app.RequestContext) *OrganizationService {
	if ctx == nil {
		ctx = context.Background()
	}
	return &OrganizationService{
		Service: Service{
			ctx:  ctx,
			c:    c,
			repo: repository.NewRepository(ctx, c),
		},
	}
}

// GetOrg 查询组织信息
func (s *OrganizationService) GetOrg(orgID int64) (*api.OrgInfo, error) {
	org, err := s.repo.GetOrgByID(s.repo.DB, orgID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, response.ErrOrgNotFound
	}

	return &api.OrgInfo{
		ID:            org.ID,
		AccountID:     org.AccountID,
		OrgName:       org.OrgName,
		ContactPerson: org.ContactPerson,
		CreatedAt:     org.CreatedAt,
	}, nil
}

// AddMember 添加组织成员，仅组织成员或管理员可操作
func (s *OrganizationService) AddMember(orgID int64, req *api.AddOrgMemberRequest) error {
	account, err := s.requesterAccount()
	if err != nil {
		return err
	}

	org, err := s.repo.GetOrgByID(s.repo.DB, orgID)
	if err != nil {
		return err
	}
	if org == nil {
		return response.ErrOrgNotFound
	}
	if err := s.authorizeOrgAction(account, org.ID); err != nil {
		return err
	}

	target, err := s.repo.FindByID(s.repo.DB, req.AccountID)
	if err != nil {
		return err
	}
	if target == nil {
		return response.ErrUserNotFound
	}

	existing, err := s.repo.GetOrgMember(s.repo.DB, org.ID, target.ID)
	if err != nil {
		return err
	}
	if existing != nil {
		// 已退出的成员重新激活
		if existing.Status == model.MemberStatusActive {
			return response.ErrUserExists.WithDetails("account is already a member")
		}
		if err := s.repo.UpdateOrgMemberStatus(s.repo.DB, org.ID, target.ID, model.MemberStatusActive); err != nil {
			return err
		}
		log.Info("组织成员重新激活: org_id=%d, account_id=%d", org.ID, target.ID)
		return nil
	}

	now := time.Now()
	member := &model.OrgMember{
		OrgID:     org.ID,
		AccountID: target.ID,
		Status:    model.MemberStatusActive,
		JoinedAt:  &now,
	}
	if err := s.repo.CreateOrgMember(s.repo.DB, member); err != nil {
		if util.IsDuplicateEntryErr(err) {
			return response.ErrUserExists.WithDetails("account is already a member")
		}
		log.Error("添加组织成员失败: %v, org_id=%d, account_id=%d", err, org.ID, target.ID)
		return err
	}

	log.Info("组织成员已添加: org_id=%d, account_id=%d, operator_id=%d", org.ID, target.ID, account.ID)
	return nil
}

// RemoveMember 移除组织成员（标记退出）
func (s *OrganizationService) RemoveMember(orgID, accountID int64) error {
	account, err := s.requesterAccount()
	if err != nil {
		return err
	}

	org, err := s.repo.GetOrgByID(s.repo.DB, orgID)
	if err != nil {
		return err
	}
	if org == nil {
		return response.ErrOrgNotFound
	}
	// 成员可以自行退出，移除他人需要组织授权
	if accountID != account.ID {
		if err := s.authorizeOrgAction(account, org.ID); err != nil {
			return err
		}
	}

	member, err := s.repo.GetOrgMember(s.repo.DB, org.ID, accountID)
	if err != nil {
		return err
	}
	if member == nil || member.Status != model.MemberStatusActive {
		return response.ErrNotOrgMember
	}

	if err := s.repo.UpdateOrgMemberStatus(s.repo.DB, org.ID, accountID, model.MemberStatusLeft); err != nil {
		return err
	}
	log.Info("组织成员已退出: org_id=%d, account_id=%d, operator_id=%d", org.ID, accountID, account.ID)
	return nil
}

// ListMembers 查询组织成员列表
func (s *OrganizationService) ListMembers(orgID int64) (*api.OrgMemberListResponse, error) {
	account, err := s.requesterAccount()
	if err != nil {
		return nil, err
	}

	org, err := s.repo.GetOrgByID(s.repo.DB, orgID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, response.ErrOrgNotFound
	}
	if err := s.authorizeOrgAction(account, org.ID); err != nil {
		return nil, err
	}

	members, err := s.repo.ListOrgMembers(s.repo.DB, org.ID)
	if err != nil {
		log.Error("查询组织成员失败: %v, org_id=%d", err, org.ID)
		return nil, err
	}

	// 补充用户名
	ids := make([]int64, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.AccountID)
	}
	accounts, err := s.repo.ListAccountsByIDs(s.repo.DB, ids)
	if err != nil {
		return nil, err
	}
	usernames := make(map[int64]string, len(accounts))
	for _, a := range accounts {
		usernames[a.ID] = a.Username
	}

	items := make([]api.OrgMemberInfo, 0, len(members))
	for _, m := range members {
		items = append(items, api.OrgMemberInfo{
			AccountID: m.AccountID,
			Username:  usernames[m.AccountID],
			Status:    m.Status,
			JoinedAt:  m.JoinedAt,
		})
	}
	return &api.OrgMemberListResponse{OrgID: org.ID, Members: items}, nil
}
