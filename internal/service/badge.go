package service

import (
	"context"

	"volunteer-platform/internal/api"
	"volunteer-platform/internal/model"
	"volunteer-platform/internal/repository"
	"volunteer-platform/internal/response"

	"github.com/cloudwego/hertz/pkg/app"
)

type BadgeService struct {
	Service
}

func NewBadgeService(ctx context.Context, c *app.RequestContext) *BadgeService {
	if ctx == nil {
		ctx = context.Background()
	}
	return &BadgeService{
		Service: Service{
			ctx:  ctx,
			c:    c,
			repo: repository.NewRepository(ctx, c),
		},
	}
}

// Catalog 查询徽章目录
func (s *BadgeService) Catalog() (*api.BadgeCatalogResponse, error) {
	badges, err := s.repo.ListBadges(s.repo.DB)
	if err != nil {
		log.Error("查询徽章目录失败: %v", err)
		return nil, err
	}

	items := make([]api.BadgeInfo, 0, len(badges))
	for _, b := range badges {
		items = append(items, convertBadgeInfo(&b))
	}
	return &api.BadgeCatalogResponse{Badges: items}, nil
}

// MyBadges 查询当前志愿者持有的徽章
func (s *BadgeService) MyBadges() (*api.VolunteerBadgesResponse, error) {
	_, volunteer, err := s.requesterVolunteer()
	if err != nil {
		return nil, err
	}
	return s.volunteerBadges(volunteer.ID)
}

// VolunteerBadges 查询指定志愿者持有的徽章
func (s *BadgeService) VolunteerBadges(volunteerID int64) (*api.VolunteerBadgesResponse, error) {
	volunteer, err := s.repo.GetVolunteerByID(s.repo.DB, volunteerID)
	if err != nil {
		return nil, err
	}
	if volunteer == nil {
		return nil, response.ErrVolunteerNotFound
	}
	return s.volunteerBadges(volunteer.ID)
}

// volunteerBadges 授予记录关联徽章目录后组装响应
func (s *BadgeService) volunteerBadges(volunteerID int64) (*api.VolunteerBadgesResponse, error) {
	awards, err := s.repo.ListVolunteerBadges(s.repo.DB, volunteerID)
	if err != nil {
		log.Error("查询志愿者徽章失败: %v, volunteer_id=%d", err, volunteerID)
		return nil, err
	}

	catalog, err := s.repo.ListBadges(s.repo.DB)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]*model.Badge, len(catalog))
	for i := range catalog {
		byID[catalog[i].ID] = &catalog[i]
	}

	items := make([]api.VolunteerBadgeInfo, 0, len(awards))
	for _, award := range awards {
		item := api.VolunteerBadgeInfo{
			MintStatus: award.MintStatus,
			TokenID:    award.TokenID,
			AwardedAt:  award.AwardedAt,
		}
		if badge := byID[award.BadgeID]; badge != nil {
			item.BadgeInfo = convertBadgeInfo(badge)
		} else {
			item.BadgeInfo = api.BadgeInfo{ID: award.BadgeID}
		}
		if award.AssignmentID > 0 {
			assignmentID := award.AssignmentID
			item.AssignmentID = &assignmentID
		}
		items = append(items, item)
	}

	return &api.VolunteerBadgesResponse{VolunteerID: volunteerID, Badges: items}, nil
}

// convertBadgeInfo 徽章目录项转DTO
func convertBadgeInfo(b *model.Badge) api.BadgeInfo {
	return api.BadgeInfo{
		ID:          b.ID,
		Code:        b.Code,
		Name:        b.Name,
		Description: b.Description,
		IconURL:     b.IconURL,
	}
}
