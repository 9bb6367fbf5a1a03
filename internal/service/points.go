package service

import (
	"context"

	"volunteer-platform/internal/api"
	"volunteer-platform/internal/model"
	"volunteer-platform/internal/repository"
	"volunteer-platform/internal/response"

	"github.com/cloudwego/hertz/pkg/app"
)

type PointService struct {
	Service
}

func NewPointService(ctx context.Context, c *app.RequestContext) *PointService {
	if ctx == nil {
		ctx = context.Background()
	}
	return &PointService{
		Service: Service{
			ctx:  ctx,
			c:    c,
			repo: repository.NewRepository(ctx, c),
		},
	}
}

// MyLedger 查询当前志愿者的积分流水
func (s *PointService) MyLedger(req *api.PointLedgerRequest) (*api.PointLedgerResponse, error) {
	_, volunteer, err := s.requesterVolunteer()
	if err != nil {
		return nil, err
	}

	if req.TxType != 0 && !model.IsValidPointTxType(req.TxType) {
		return nil, response.ErrInvalidParams.WithDetails("invalid tx_type")
	}

	req.Normalize()
	txs, total, err := s.repo.ListPointTransactions(s.repo.DB, volunteer.ID, req.TxType, req.Offset(), req.PageSize)
	if err != nil {
		log.Error("查询积分流水失败: %v, volunteer_id=%d", err, volunteer.ID)
		return nil, err
	}

	items := make([]api.PointLedgerItem, 0, len(txs))
	for _, tx := range txs {
		item := api.PointLedgerItem{
			ID:           tx.ID,
			TxType:       tx.TxType,
			Amount:       tx.Amount,
			BeforePoints: tx.BeforePoints,
			AfterPoints:  tx.AfterPoints,
			Remark:       tx.Reason,
			CreatedAt:    tx.CreatedAt,
		}
		if tx.AssignmentID > 0 {
			assignmentID := tx.AssignmentID
			item.AssignmentID = &assignmentID
		}
		items = append(items, item)
	}

	return &api.PointLedgerResponse{
		Total:       total,
		TotalPoints: volunteer.TotalPoints,
		Level:       volunteer.Level,
		Items:       items,
	}, nil
}
