package service

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"volunteer-platform/config"
	"volunteer-platform/internal/api"
	"volunteer-platform/internal/model"
	"volunteer-platform/internal/repository"
	"volunteer-platform/internal/response"
	"volunteer-platform/pkg/ai"
	"volunteer-platform/pkg/match"
	"volunteer-platform/pkg/notify"

	"github.com/cloudwego/hertz/pkg/app"
	"gorm.io/gorm"
)

const (
	defaultMatchLimit       = 10
	maxMatchLimit           = 100
	defaultCandidatePoolMax = 200
)

type MatchingService struct {
	Service
}

func NewMatchingService(ctx context.Context, c *app.RequestContext) *MatchingService {
	if ctx == nil {
		ctx = context.Background()
	}
	return &MatchingService{
		Service: Service{
			ctx:  ctx,
			c:    c,
			repo: repository.NewRepository(ctx, c),
		},
	}
}

// RunMatching 对任务执行一次匹配运行
// 流程：鉴权 -> 任务状态校验 -> 候选人筛选 -> 启发式打分 -> AI融合（尽力而为）
// -> 持久化不可变推荐记录 -> 可选自动指派 -> 指派通知
func (s *MatchingService) RunMatching(taskID int64, req *api.RunMatchingRequest) (*api.RunMatchingResponse, error) {
	account, err := s.requesterAccount()
	if err != nil {
		return nil, err
	}

	task, err := s.repo.GetTaskByID(s.repo.DB, taskID)
	if err != nil {
		log.Error("匹配 - 查询任务失败: %v, task_id=%d", err, taskID)
		return nil, err
	}
	if task == nil {
		return nil, response.ErrTaskNotFound
	}

	// 鉴权：管理员或任务所属组织的成员
	if err := s.authorizeOrgAction(account, task.OrgID); err != nil {
		log.Warn("匹配 - 鉴权失败: account_id=%d, org_id=%d", account.ID, task.OrgID)
		return nil, err
	}

	// 任务状态校验：不可指派的任务视为业务冲突而非权限问题
	if !model.IsTaskMatchable(task.Status) {
		log.Warn("匹配 - 任务状态不可匹配: task_id=%d, status=%d", taskID, task.Status)
		return nil, response.ErrTaskNotMatchable
	}

	limit := normalizeMatchLimit(req.Limit)

	// 候选人筛选：排除该任务下所有未被拒绝的指派对象
	excludeIDs, err := s.repo.ListNonRejectedVolunteerIDs(s.repo.DB, taskID)
	if err != nil {
		log.Error("匹配 - 查询已指派志愿者失败: %v, task_id=%d", err, taskID)
		return nil, err
	}

	candidates, err := s.repo.ListActiveVolunteers(s.repo.DB, excludeIDs, candidatePoolMax())
	if err != nil {
		log.Error("匹配 - 查询候选志愿者失败: %v, task_id=%d", err, taskID)
		return nil, err
	}

	// 启发式打分：工作量聚合是核心评分输入，失败直接终止本次匹配
	heuristic, err := s.scoreCandidates(task, candidates)
	if err != nil {
		log.Error("匹配 - 工作量聚合失败: %v, task_id=%d", err, taskID)
		return nil, err
	}
	if len(heuristic) > limit {
		heuristic = heuristic[:limit]
	}

	// AI融合：单次调用，限时，失败降级为纯启发式
	aiResp := s.requestAIRanking(task, candidates, heuristic)

	final := match.Blend(heuristic, aiResp)

	confidence := model.ConfidenceHeuristicOnly
	if aiResp != nil {
		confidence = model.ConfidenceWithAI
	}

	rec := &model.MatchRecommendation{
		TaskID:      taskID,
		OrgID:       task.OrgID,
		RequestedBy: account.ID,
		ResultLimit: int32(limit),
		AutoAssign:  req.AutoAssign,
		Confidence:  confidence,
	}
	rec.HeuristicJSON = mustMarshal(heuristic)
	rec.FinalJSON = mustMarshal(final)
	if aiResp != nil {
		rec.AIResponseJSON = mustMarshal(aiResp)
	}

	var assignedIDs []int64
	var notices []*notify.AssignmentNotice

	err = s.withTransaction(func(tx *gorm.DB) error {
		assignedIDs = assignedIDs[:0]
		notices = notices[:0]

		// 推荐记录本身在事务内落库，保证与自动指派同生共死
		if err := s.repo.CreateRecommendation(tx, rec); err != nil {
			return err
		}

		if req.AutoAssign && len(final) > 0 {
			ids, ns, err := s.autoAssign(tx, account.ID, taskID, final)
			if err != nil {
				return err
			}
			assignedIDs = ids
			notices = ns
		}

		// 匹配运行审计
		detail := mustMarshal(map[string]interface{}{
			"task_id":     taskID,
			"limit":       limit,
			"auto_assign": req.AutoAssign,
			"candidates":  len(candidates),
			"confidence":  confidence,
			"assigned":    assignedIDs,
		})
		return s.repo.CreateAuditRecord(tx, &model.AuditRecord{
			TargetType: model.AuditTargetMatching,
			TargetID:   taskID,
			OperatorID: account.ID,
			Detail:     detail,
		})
	})
	if err != nil {
		log.Error("匹配 - 事务执行失败: %v, task_id=%d", err, taskID)
		return nil, err
	}

	// 指派通知在事务提交后发送，尽力而为
	for _, notice := range notices {
		notify.NotifyVolunteerAssignment(s.ctx, notice)
	}

	log.Info("匹配运行完成: task_id=%d, 推荐数=%d, 置信度=%.1f, 自动指派=%d",
		taskID, len(final), confidence, len(assignedIDs))

	return s.buildMatchingResponse(rec, task, final, aiResp != nil, assignedIDs)
}

// scoreCandidates 对候选人执行启发式打分并按分数降序排序
// 全平台工作量按志愿者聚合统计，不限于当前任务；聚合失败向上传播，不允许降级打分
func (s *MatchingService) scoreCandidates(task *model.Task, candidates []model.Volunteer) ([]match.Ranked, error) {
	ids := make([]int64, 0, len(candidates))
	for _, cand := range candidates {
		ids = append(ids, cand.ID)
	}

	workloads, err := s.repo.CountActiveWorkloads(s.repo.DB, ids)
	if err != nil {
		return nil, err
	}

	return rankByScore(task, candidates, workloads), nil
}

// rankByScore 按启发式得分对候选人降序排序，相同得分保持输入顺序
func rankByScore(task *model.Task, candidates []model.Volunteer, workloads map[int64]int) []match.Ranked {
	taskInput := match.TaskInput{
		RequiredSkills: task.SkillList(),
		Latitude:       task.Latitude,
		Longitude:      task.Longitude,
	}

	ranked := make([]match.Ranked, 0, len(candidates))
	for _, cand := range candidates {
		score, breakdown := match.Score(taskInput, match.Candidate{
			VolunteerID: cand.ID,
			Skills:      cand.SkillList(),
			Latitude:    cand.Latitude,
			Longitude:   cand.Longitude,
			Reputation:  cand.Reputation,
			TotalPoints: cand.TotalPoints,
			Workload:    workloads[cand.ID],
		})
		ranked = append(ranked, match.Ranked{
			VolunteerID: cand.ID,
			Score:       score,
			Breakdown:   breakdown,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// requestAIRanking 发起单次AI重排请求，任何失败都降级为nil
func (s *MatchingService) requestAIRanking(task *model.Task, candidates []model.Volunteer, heuristic []match.Ranked) *match.AIResponse {
	cfg := config.GetConfig()
	if cfg == nil || cfg.AI == nil || !cfg.AI.Enabled {
		return nil
	}
	if len(heuristic) == 0 {
		return nil
	}

	byID := make(map[int64]*model.Volunteer, len(candidates))
	for i := range candidates {
		byID[candidates[i].ID] = &candidates[i]
	}

	summaries := make([]ai.CandidateSummary, 0, len(heuristic))
	for _, r := range heuristic {
		cand, ok := byID[r.VolunteerID]
		if !ok {
			continue
		}
		summaries = append(summaries, ai.CandidateSummary{
			VolunteerID:    cand.ID,
			Skills:         cand.SkillList(),
			Reputation:     cand.Reputation,
			TotalPoints:    cand.TotalPoints,
			Workload:       r.Breakdown.Workload,
			HeuristicScore: r.Score,
		})
	}

	timeout := time.Duration(cfg.AI.TimeoutMs) * time.Millisecond
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(s.ctx, timeout)
	defer cancel()

	client := ai.NewClient(*cfg.AI)
	resp, err := client.RequestRecommendations(ctx, ai.TaskSummary{
		TaskID:         task.ID,
		Title:          task.Title,
		Urgency:        task.Urgency,
		RequiredSkills: task.SkillList(),
	}, summaries)
	if err != nil {
		log.Warn("匹配 - AI重排失败，降级为启发式排名: %v, task_id=%d", err, task.ID)
		return nil
	}
	return resp
}

// autoAssign 按最终排名自动创建PENDING指派，名额不足时截断
func (s *MatchingService) autoAssign(tx *gorm.DB, operatorID, taskID int64, final []match.Ranked) ([]int64, []*notify.AssignmentNotice, error) {
	// 行锁重读任务，避免并发匹配超额指派
	task, err := s.repo.GetTaskByIDForUpdate(tx, taskID)
	if err != nil {
		return nil, nil, err
	}
	if task == nil {
		return nil, nil, response.ErrTaskNotFound
	}
	if !model.IsTaskMatchable(task.Status) {
		return nil, nil, response.ErrTaskNotMatchable
	}

	activeCount, err := s.repo.CountActiveByTask(tx, taskID)
	if err != nil {
		return nil, nil, err
	}

	availableSlots := assignableSlots(task.VolunteersNeeded, activeCount, len(final))
	if availableSlots == 0 {
		return nil, nil, nil
	}

	now := time.Now()
	assignedIDs := make([]int64, 0, availableSlots)
	notices := make([]*notify.AssignmentNotice, 0, availableSlots)

	for _, r := range final[:availableSlots] {
		assignment := &model.Assignment{
			TaskID:      taskID,
			OrgID:       task.OrgID,
			VolunteerID: r.VolunteerID,
			AssignerID:  operatorID,
			Status:      model.AssignmentStatusPending,
			AssignedAt:  now,
		}
		if err := s.repo.CreateAssignment(tx, assignment); err != nil {
			return nil, nil, err
		}
		assignedIDs = append(assignedIDs, r.VolunteerID)
		notices = append(notices, &notify.AssignmentNotice{
			AssignmentID: assignment.ID,
			TaskID:       taskID,
			TaskTitle:    task.Title,
			VolunteerID:  r.VolunteerID,
			AssignedAt:   now,
		})
	}

	// 首批指派创建后任务进入已指派状态
	if task.Status == model.TaskStatusPending && len(assignedIDs) > 0 {
		if err := s.repo.UpdateTaskStatus(tx, taskID, model.TaskStatusAssigned); err != nil {
			return nil, nil, err
		}
	}

	return assignedIDs, notices, nil
}

// assignableSlots 计算本次自动指派可创建的指派数
// 剩余名额 = max(需求人数 - 活跃指派数, 0)，再按排名列表长度截断
func assignableSlots(needed int32, active int64, rankedCount int) int {
	slots := int(needed) - int(active)
	if slots < 0 {
		slots = 0
	}
	if slots > rankedCount {
		slots = rankedCount
	}
	return slots
}

// buildMatchingResponse 组装匹配响应，补充志愿者姓名
func (s *MatchingService) buildMatchingResponse(rec *model.MatchRecommendation, task *model.Task, final []match.Ranked, aiUsed bool, assignedIDs []int64) (*api.RunMatchingResponse, error) {
	ids := make([]int64, 0, len(final))
	for _, r := range final {
		ids = append(ids, r.VolunteerID)
	}

	names := make(map[int64]string, len(ids))
	volunteers, err := s.repo.ListVolunteersByIDs(s.repo.DB, ids)
	if err != nil {
		log.Warn("匹配 - 查询志愿者姓名失败: %v", err)
	} else {
		for _, v := range volunteers {
			names[v.ID] = v.RealName
		}
	}

	items := make([]api.RecommendationItem, 0, len(final))
	for _, r := range final {
		items = append(items, api.RecommendationItem{
			VolunteerID:     r.VolunteerID,
			RealName:        names[r.VolunteerID],
			Score:           r.Score,
			Breakdown:       r.Breakdown,
			AIJustification: r.AIJustification,
			AIPriority:      r.AIPriority,
		})
	}

	return &api.RunMatchingResponse{
		RecommendationID: rec.ID,
		TaskID:           task.ID,
		Confidence:       rec.Confidence,
		AIUsed:           aiUsed,
		Items:            items,
		AssignedIDs:      assignedIDs,
	}, nil
}

// RecommendationHistory 查询任务的历史匹配记录
func (s *MatchingService) RecommendationHistory(taskID int64) (*api.RecommendationHistoryResponse, error) {
	account, err := s.requesterAccount()
	if err != nil {
		return nil, err
	}

	task, err := s.repo.GetTaskByID(s.repo.DB, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, response.ErrTaskNotFound
	}
	if err := s.authorizeOrgAction(account, task.OrgID); err != nil {
		return nil, err
	}

	recs, err := s.repo.ListRecommendationsByTask(s.repo.DB, taskID, 10)
	if err != nil {
		log.Error("查询匹配历史失败: %v, task_id=%d", err, taskID)
		return nil, err
	}

	records := make([]api.RunMatchingResponse, 0, len(recs))
	for _, rec := range recs {
		var final []match.Ranked
		if rec.FinalJSON != "" {
			if err := json.Unmarshal([]byte(rec.FinalJSON), &final); err != nil {
				log.Warn("匹配记录解析失败: %v, recommendation_id=%d", err, rec.ID)
				continue
			}
		}
		resp, err := s.buildMatchingResponse(&rec, task, final, rec.AIResponseJSON != "", nil)
		if err != nil {
			continue
		}
		records = append(records, *resp)
	}

	return &api.RecommendationHistoryResponse{Records: records}, nil
}

// normalizeMatchLimit 规范化推荐人数上限
func normalizeMatchLimit(limit int) int {
	cfg := config.GetConfig()
	def, max := defaultMatchLimit, maxMatchLimit
	if cfg != nil && cfg.Matching != nil {
		if cfg.Matching.DefaultLimit > 0 {
			def = cfg.Matching.DefaultLimit
		}
		if cfg.Matching.MaxLimit > 0 {
			max = cfg.Matching.MaxLimit
		}
	}

	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}

// candidatePoolMax 参与打分的候选人数量上限
func candidatePoolMax() int {
	cfg := config.GetConfig()
	if cfg != nil && cfg.Matching != nil && cfg.Matching.CandidatePoolMax > 0 {
		return cfg.Matching.CandidatePoolMax
	}
	return defaultCandidatePoolMax
}

// mustMarshal JSON序列化，失败时返回空串（调用方均为可容忍缺失的快照字段）
func mustMarshal(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}
