package service

import (
	"context"

	"volunteer-platform/internal/api"
	"volunteer-platform/internal/model"
	"volunteer-platform/internal/repository"
	"volunteer-platform/internal/response"

	"github.com/cloudwego/hertz/pkg/app"
)

type AuditService struct {
	Service
}

func NewAuditService(ctx context.Context, c *app.RequestContext) *AuditService {
	if ctx == nil {
		ctx = context.Background()
	}
	return &AuditService{
		Service: Service{
			ctx:  ctx,
			c:    c,
			repo: repository.NewRepository(ctx, c),
		},
	}
}

// ListRecords 查询审计记录，仅组织身份与管理员可见
func (s *AuditService) ListRecords(req *api.AuditRecordListRequest) (*api.AuditRecordListResponse, error) {
	account, err := s.requesterAccount()
	if err != nil {
		return nil, err
	}
	if account.IdentityType != model.IdentityAdmin && account.IdentityType != model.IdentityOrganization {
		return nil, response.ErrPermissionDenied
	}

	if req.TargetType != 0 &&
		req.TargetType != model.AuditTargetAssignment &&
		req.TargetType != model.AuditTargetMatching {
		return nil, response.ErrInvalidParams.WithDetails("invalid target_type")
	}

	req.Normalize()
	records, total, err := s.repo.ListAuditRecords(s.repo.DB, req.TargetType, req.TargetID, req.Offset(), req.PageSize)
	if err != nil {
		log.Error("查询审计记录失败: %v", err)
		return nil, err
	}

	items := make([]api.AuditRecordInfo, 0, len(records))
	for _, r := range records {
		items = append(items, api.AuditRecordInfo{
			ID:         r.ID,
			TargetType: r.TargetType,
			TargetID:   r.TargetID,
			OperatorID: r.OperatorID,
			Detail:     r.Detail,
			CreatedAt:  r.CreatedAt,
		})
	}
	return &api.AuditRecordListResponse{Total: total, Records: items}, nil
}
