package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"volunteer-platform/config"
	"volunteer-platform/internal/api"
	"volunteer-platform/internal/model"
	"volunteer-platform/internal/repository"
	"volunteer-platform/internal/response"
	"volunteer-platform/pkg/chain"
	"volunteer-platform/pkg/util"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const maxPointsPerVerification = 1000

// errDuplicateCompletion 同一幂等键的核验已入账，由调用方回读首次结果
var errDuplicateCompletion = errors.New("completion already recorded")

type CompletionService struct {
	Service
}

func NewCompletionService(ctx context.Context, c *app.RequestContext) *CompletionService {
	if ctx == nil {
		ctx = context.Background()
	}
	return &CompletionService{
		Service: Service{
			ctx:  ctx,
			c:    c,
			repo: repository.NewRepository(ctx, c),
		},
	}
}

// CompleteAssignment 核验完成一次指派
// 指派状态、积分、等级、信誉与积分流水在同一事务内落库；
// 徽章授予记录在事务内创建（PENDING），上链在事务提交后尽力而为
func (s *CompletionService) CompleteAssignment(assignmentID int64, req *api.VerifyAssignmentRequest) (*api.VerifyAssignmentResponse, error) {
	account, err := s.requesterAccount()
	if err != nil {
		return nil, err
	}

	if req.Rating < 1 || req.Rating > 5 {
		return nil, response.ErrInvalidRating
	}
	if req.PointsAwarded < 0 || req.PointsAwarded > maxPointsPerVerification {
		return nil, response.ErrInvalidParams.WithDetails("points_awarded must be between 0 and 1000")
	}

	// 幂等保护：同一键的重复调用返回首次入账结果
	idempotencyKey := req.IdempotencyKey
	if idempotencyKey == "" {
		idempotencyKey = uuid.New().String()
	} else {
		existing, err := s.repo.GetPointTransactionByKey(s.repo.DB, idempotencyKey)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			log.Info("核验重复提交，返回首次结果: idempotency_key=%s, assignment_id=%d", idempotencyKey, existing.AssignmentID)
			return s.replayCompletion(existing)
		}
	}

	var (
		resp          api.VerifyAssignmentResponse
		pendingAwards []*model.VolunteerBadge
		awardBadges   map[int64]*model.Badge
		volunteerID   int64
	)

	err = s.withTransaction(func(tx *gorm.DB) error {
		pendingAwards = pendingAwards[:0]

		// 行锁重读指派，拒绝非法流转
		assignment, err := s.repo.GetAssignmentByIDForUpdate(tx, assignmentID)
		if err != nil {
			return err
		}
		if assignment == nil {
			return response.ErrAssignmentNotFound
		}
		if assignment.Status == model.AssignmentStatusVerified {
			return response.ErrAlreadyVerified
		}
		if !model.CanAssignmentTransition(assignment.Status, model.AssignmentStatusVerified) {
			return response.ErrInvalidTransition
		}

		// 鉴权：管理员或指派所属组织的成员
		if err := s.authorizeOrgAction(account, assignment.OrgID); err != nil {
			return err
		}

		// 行锁重读志愿者档案，防止并发核验丢失积分更新
		volunteer, err := s.repo.GetVolunteerByIDForUpdate(tx, assignment.VolunteerID)
		if err != nil {
			return err
		}
		if volunteer == nil {
			return response.ErrVolunteerNotFound
		}
		volunteerID = volunteer.ID

		beforePoints := volunteer.TotalPoints
		newTotal := beforePoints + req.PointsAwarded
		newLevel := model.LevelForPoints(newTotal)
		newReputation := model.NextReputation(volunteer.Reputation, req.Rating)

		// 1. 指派进入已核验终态
		now := time.Now()
		if err := s.repo.UpdateAssignment(tx, assignment.ID, map[string]interface{}{
			"status":             model.AssignmentStatusVerified,
			"completed_at":       now,
			"rating":             req.Rating,
			"feedback":           req.Feedback,
			"verification_notes": req.VerificationNotes,
		}); err != nil {
			return err
		}

		// 2. 更新志愿者积分、等级与信誉
		if err := s.repo.UpdateVolunteerGamification(tx, volunteer.ID, newTotal, newLevel, newReputation); err != nil {
			return err
		}

		// 3. 积分流水入账（幂等键唯一索引兜底并发重复提交）
		pointTx := newEarnTransaction(volunteer.ID, assignment.ID, account.ID, req.PointsAwarded, beforePoints, idempotencyKey)
		if err := s.repo.CreatePointTransaction(tx, pointTx); err != nil {
			if util.IsDuplicateEntryErr(err) {
				return errDuplicateCompletion
			}
			return err
		}

		// 4. 徽章授予（目录中不存在的编码静默跳过）
		awards, badges, err := s.awardBadges(tx, volunteer.ID, assignment.ID, req.BadgeCodes)
		if err != nil {
			return err
		}
		pendingAwards = awards
		awardBadges = badges

		// 5. 核验审计
		detail := mustMarshal(map[string]interface{}{
			"assignment_id": assignment.ID,
			"volunteer_id":  volunteer.ID,
			"rating":        req.Rating,
			"points":        req.PointsAwarded,
			"badge_codes":   req.BadgeCodes,
			"new_level":     newLevel,
		})
		if err := s.repo.CreateAuditRecord(tx, &model.AuditRecord{
			TargetType: model.AuditTargetAssignment,
			TargetID:   assignment.ID,
			OperatorID: account.ID,
			Detail:     detail,
		}); err != nil {
			return err
		}

		resp = api.VerifyAssignmentResponse{
			AssignmentID:  assignment.ID,
			Status:        model.AssignmentStatusVerified,
			PointsAwarded: req.PointsAwarded,
			TotalPoints:   newTotal,
			Level:         newLevel,
			LevelChanged:  newLevel != volunteer.Level,
			Reputation:    newReputation,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, errDuplicateCompletion) {
			existing, rerr := s.repo.GetPointTransactionByKey(s.repo.DB, idempotencyKey)
			if rerr != nil || existing == nil {
				return nil, err
			}
			return s.replayCompletion(existing)
		}
		log.Error("核验 - 事务执行失败: %v, assignment_id=%d", err, assignmentID)
		return nil, err
	}

	// 上链在事务提交后执行：失败只标记FAILED，不回滚积分与状态
	resp.BadgesAwarded = s.mintAwards(volunteerID, pendingAwards, awardBadges)

	log.Info("指派核验完成: assignment_id=%d, volunteer_id=%d, 积分+%d, 等级=%s, 信誉=%.0f, 徽章=%d",
		assignmentID, volunteerID, resp.PointsAwarded, resp.Level, resp.Reputation, len(resp.BadgesAwarded))
	return &resp, nil
}

// newEarnTransaction 构造核验入账的积分流水
// 不变式：AfterPoints = BeforePoints + Amount，流水金额之和始终等于档案总积分
func newEarnTransaction(volunteerID, assignmentID, operatorID, amount, beforePoints int64, idempotencyKey string) *model.PointTransaction {
	return &model.PointTransaction{
		VolunteerID:    volunteerID,
		AssignmentID:   assignmentID,
		TxType:         model.PointTxEarn,
		Amount:         amount,
		BeforePoints:   beforePoints,
		AfterPoints:    beforePoints + amount,
		Reason:         fmt.Sprintf("任务指派核验完成: assignment_id=%d", assignmentID),
		OperatorID:     operatorID,
		IdempotencyKey: idempotencyKey,
	}
}

// awardBadges 在事务内创建徽章授予记录
// 同一（志愿者、徽章、指派）组合的重复授予由唯一索引拦截并静默跳过
func (s *CompletionService) awardBadges(tx *gorm.DB, volunteerID, assignmentID int64, codes []string) ([]*model.VolunteerBadge, map[int64]*model.Badge, error) {
	if len(codes) == 0 {
		return nil, nil, nil
	}

	badges, err := s.repo.FindBadgesByCodes(tx, codes)
	if err != nil {
		return nil, nil, err
	}
	if len(badges) < len(codes) {
		log.Warn("部分徽章编码不在目录中，已跳过: 请求=%v, 命中=%d", codes, len(badges))
	}

	awards := make([]*model.VolunteerBadge, 0, len(badges))
	byID := make(map[int64]*model.Badge, len(badges))
	now := time.Now()

	for i := range badges {
		badge := &badges[i]
		award := &model.VolunteerBadge{
			VolunteerID:  volunteerID,
			BadgeID:      badge.ID,
			AssignmentID: assignmentID,
			MintStatus:   model.MintStatusPending,
			AwardedAt:    now,
		}
		if err := s.repo.CreateVolunteerBadge(tx, award); err != nil {
			if util.IsDuplicateEntryErr(err) {
				log.Warn("徽章已授予，跳过: volunteer_id=%d, badge=%s, assignment_id=%d",
					volunteerID, badge.Code, assignmentID)
				continue
			}
			return nil, nil, err
		}
		awards = append(awards, award)
		byID[badge.ID] = badge
	}
	return awards, byID, nil
}

// mintAwards 对已创建的授予记录逐一发起上链，失败记录FAILED
func (s *CompletionService) mintAwards(volunteerID int64, awards []*model.VolunteerBadge, badges map[int64]*model.Badge) []api.AwardedBadge {
	results := make([]api.AwardedBadge, 0, len(awards))
	if len(awards) == 0 {
		return results
	}

	// 上链未启用时授予记录保持PENDING，等待后续补偿任务处理
	cfg := config.GetConfig()
	var client *chain.Client
	if cfg != nil && cfg.Chain != nil && cfg.Chain.Enabled {
		client = chain.NewClient(*cfg.Chain)
	}

	for _, award := range awards {
		badge := badges[award.BadgeID]
		result := api.AwardedBadge{
			AwardID:    award.ID,
			MintStatus: model.MintStatusPending,
		}
		if badge != nil {
			result.Code = badge.Code
			result.Name = badge.Name
		}

		if client == nil {
			results = append(results, result)
			continue
		}

		mintResult, err := client.Mint(s.ctx, chain.MintRequest{
			RequestID: uuid.New().String(),
			BadgeCode: result.Code,
			Recipient: fmt.Sprintf("volunteer:%d", volunteerID),
			Metadata: map[string]string{
				"assignment_id": fmt.Sprintf("%d", award.AssignmentID),
			},
		})
		if err != nil {
			log.Warn("徽章上链失败: %v, award_id=%d, badge=%s", err, award.ID, result.Code)
			result.MintStatus = model.MintStatusFailed
			if uerr := s.repo.UpdateVolunteerBadgeMint(s.repo.DB, award.ID, model.MintStatusFailed, "", err.Error()); uerr != nil {
				log.Error("更新徽章上链状态失败: %v, award_id=%d", uerr, award.ID)
			}
		} else {
			result.MintStatus = model.MintStatusMinted
			result.TokenID = mintResult.TokenID
			if uerr := s.repo.UpdateVolunteerBadgeMint(s.repo.DB, award.ID, model.MintStatusMinted, mintResult.TokenID, ""); uerr != nil {
				log.Error("更新徽章上链状态失败: %v, award_id=%d", uerr, award.ID)
			}
		}
		results = append(results, result)
	}
	return results
}

// replayCompletion 根据已入账的积分流水回放核验结果
func (s *CompletionService) replayCompletion(pointTx *model.PointTransaction) (*api.VerifyAssignmentResponse, error) {
	assignment, err := s.repo.GetAssignmentByID(s.repo.DB, pointTx.AssignmentID)
	if err != nil {
		return nil, err
	}
	volunteer, err := s.repo.GetVolunteerByID(s.repo.DB, pointTx.VolunteerID)
	if err != nil {
		return nil, err
	}

	resp := &api.VerifyAssignmentResponse{
		AssignmentID:  pointTx.AssignmentID,
		Status:        model.AssignmentStatusVerified,
		PointsAwarded: pointTx.Amount,
		TotalPoints:   pointTx.AfterPoints,
		Level:         model.LevelForPoints(pointTx.AfterPoints),
		BadgesAwarded: []api.AwardedBadge{},
	}
	if volunteer != nil {
		resp.Reputation = volunteer.Reputation
	}
	if assignment != nil {
		resp.Status = assignment.Status
	}
	return resp, nil
}
