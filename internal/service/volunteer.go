package service

import (
	"context"

	"volunteer-platform/internal/api"
	"volunteer-platform/internal/model"
	"volunteer-platform/internal/repository"
	"volunteer-platform/internal/response"

	"github.com/cloudwego/hertz/pkg/app"
)

type VolunteerService struct {
	Service
}

func NewVolunteerService(ctx context.Context, c *app.RequestContext) *VolunteerService {
	if ctx == nil {
		ctx = context.Background()
	}
	return &VolunteerService{
		Service: Service{
			ctx:  ctx,
			c:    c,
			repo: repository.NewRepository(ctx, c),
		},
	}
}

// MyProfile 查询当前志愿者的档案
func (s *VolunteerService) MyProfile() (*api.VolunteerProfileResponse, error) {
	_, volunteer, err := s.requesterVolunteer()
	if err != nil {
		return nil, err
	}
	return s.profileWithStats(volunteer), nil
}

// GetProfile 查询指定志愿者的档案
func (s *VolunteerService) GetProfile(volunteerID int64) (*api.VolunteerProfileResponse, error) {
	volunteer, err := s.repo.GetVolunteerByID(s.repo.DB, volunteerID)
	if err != nil {
		return nil, err
	}
	if volunteer == nil {
		return nil, response.ErrVolunteerNotFound
	}
	return s.profileWithStats(volunteer), nil
}

// profileWithStats 档案附带已核验完成次数
func (s *VolunteerService) profileWithStats(v *model.Volunteer) *api.VolunteerProfileResponse {
	profile := convertVolunteerProfile(v)
	verified, err := s.repo.CountVerifiedByVolunteer(s.repo.DB, v.ID)
	if err != nil {
		log.Warn("统计已核验指派失败: %v, volunteer_id=%d", err, v.ID)
		return profile
	}
	profile.VerifiedCount = verified
	return profile
}

// UpdateMyProfile 更新当前志愿者的档案，仅更新请求中携带的字段
func (s *VolunteerService) UpdateMyProfile(req *api.UpdateVolunteerProfileRequest) (*api.VolunteerProfileResponse, error) {
	_, volunteer, err := s.requesterVolunteer()
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.RealName != "" {
		updates["real_name"] = req.RealName
	}
	if req.Skills != nil {
		updates["skills"] = model.EncodeSkills(req.Skills)
	}
	if req.City != "" {
		updates["city"] = req.City
	}
	if req.Latitude != nil {
		updates["latitude"] = *req.Latitude
	}
	if req.Longitude != nil {
		updates["longitude"] = *req.Longitude
	}
	if req.Status != 0 {
		if req.Status != model.VolunteerStatusActive && req.Status != model.VolunteerStatusInactive {
			return nil, response.ErrInvalidParams.WithDetails("invalid status")
		}
		updates["status"] = req.Status
	}

	if len(updates) > 0 {
		if err := s.repo.UpdateVolunteerProfile(s.repo.DB, volunteer.ID, updates); err != nil {
			log.Error("更新志愿者档案失败: %v, volunteer_id=%d", err, volunteer.ID)
			return nil, err
		}
	}

	updated, err := s.repo.GetVolunteerByID(s.repo.DB, volunteer.ID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, response.ErrVolunteerNotFound
	}

	log.Info("志愿者档案已更新: volunteer_id=%d, 字段数=%d", volunteer.ID, len(updates))
	return s.profileWithStats(updated), nil
}

// convertVolunteerProfile 志愿者档案转DTO
func convertVolunteerProfile(v *model.Volunteer) *api.VolunteerProfileResponse {
	return &api.VolunteerProfileResponse{
		ID:          v.ID,
		AccountID:   v.AccountID,
		RealName:    v.RealName,
		Status:      v.Status,
		Skills:      v.SkillList(),
		City:        v.City,
		Latitude:    v.Latitude,
		Longitude:   v.Longitude,
		TotalPoints: v.TotalPoints,
		Level:       v.Level,
		Reputation:  v.Reputation,
	}
}
