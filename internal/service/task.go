package service

import (
	"context"

	"volunteer-platform/internal/api"
	"volunteer-platform/internal/model"
	"volunteer-platform/internal/repository"
	"volunteer-platform/internal/response"
	"volunteer-platform/pkg/util"

	"github.com/cloudwego/hertz/pkg/app"
	"gorm.io/gorm"
)

type TaskService struct {
	Service
}

func NewTaskService(ctx context.Context, c *app.RequestContext) *TaskService {
	if ctx == nil {
		ctx = context.Background()
	}
	return &TaskService{
		Service: Service{
			ctx:  ctx,
			c:    c,
			repo: repository.NewRepository(ctx, c),
		},
	}
}

// CreateTask 创建任务
func (s *TaskService) CreateTask(req *api.CreateTaskRequest) (*api.TaskInfo, error) {
	account, err := s.requesterAccount()
	if err != nil {
		return nil, err
	}

	if req.Title == "" {
		return nil, response.ErrInvalidParams.WithDetails("title is required")
	}
	if req.VolunteersNeeded < 1 {
		return nil, response.ErrInvalidParams.WithDetails("volunteers_needed must be at least 1")
	}
	if req.Urgency != 0 && !model.IsValidUrgency(req.Urgency) {
		return nil, response.ErrInvalidParams.WithDetails("invalid urgency")
	}

	org, err := s.repo.GetOrgByID(s.repo.DB, req.OrgID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, response.ErrOrgNotFound
	}
	if err := s.authorizeOrgAction(account, org.ID); err != nil {
		return nil, err
	}

	urgency := req.Urgency
	if urgency == 0 {
		urgency = model.UrgencyMedium
	}

	task := &model.Task{
		OrgID:            org.ID,
		CreatorID:        account.ID,
		Title:            req.Title,
		Description:      req.Description,
		Status:           model.TaskStatusPending,
		Urgency:          urgency,
		SkillsRequired:   model.EncodeSkills(req.SkillsRequired),
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
		Address:          req.Address,
		VolunteersNeeded: req.VolunteersNeeded,
	}
	if req.StartAt != "" {
		scheduledAt, err := util.ParseDateTime(req.StartAt)
		if err != nil {
			return nil, response.ErrInvalidParams.WithDetails("invalid start_at")
		}
		task.ScheduledAt = &scheduledAt
	}

	if err := s.repo.CreateTask(s.repo.DB, task); err != nil {
		log.Error("创建任务失败: %v, org_id=%d", err, org.ID)
		return nil, err
	}

	log.Info("任务创建成功: task_id=%d, org_id=%d, 标题=%s", task.ID, org.ID, task.Title)
	info := s.convertTaskInfo(task)
	return &info, nil
}

// GetTask 查询任务详情
func (s *TaskService) GetTask(taskID int64) (*api.TaskInfo, error) {
	task, err := s.repo.GetTaskByID(s.repo.DB, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, response.ErrTaskNotFound
	}

	info := s.convertTaskInfo(task)
	return &info, nil
}

// ListTasks 查询任务列表
func (s *TaskService) ListTasks(req *api.TaskListRequest) (*api.TaskListResponse, error) {
	req.Normalize()
	tasks, total, err := s.repo.ListTasks(s.repo.DB, req)
	if err != nil {
		log.Error("查询任务列表失败: %v", err)
		return nil, err
	}

	items := make([]api.TaskInfo, 0, len(tasks))
	for i := range tasks {
		items = append(items, s.convertTaskInfo(&tasks[i]))
	}
	return &api.TaskListResponse{Total: total, Tasks: items}, nil
}

// CancelTask 取消任务
func (s *TaskService) CancelTask(taskID int64) error {
	account, err := s.requesterAccount()
	if err != nil {
		return err
	}

	return s.withTransaction(func(tx *gorm.DB) error {
		task, err := s.repo.GetTaskByIDForUpdate(tx, taskID)
		if err != nil {
			return err
		}
		if task == nil {
			return response.ErrTaskNotFound
		}
		if err := s.authorizeOrgAction(account, task.OrgID); err != nil {
			return err
		}
		if !model.CanTaskTransition(task.Status, model.TaskStatusCancelled) {
			return response.ErrInvalidTransition
		}

		if err := s.repo.UpdateTaskStatus(tx, taskID, model.TaskStatusCancelled); err != nil {
			return err
		}
		log.Info("任务已取消: task_id=%d, operator_id=%d", taskID, account.ID)
		return nil
	})
}

// convertTaskInfo 任务实体转DTO，附带当前剩余名额
func (s *TaskService) convertTaskInfo(task *model.Task) api.TaskInfo {
	info := api.TaskInfo{
		ID:               task.ID,
		OrgID:            task.OrgID,
		Title:            task.Title,
		Description:      task.Description,
		SkillsRequired:   task.SkillList(),
		Urgency:          task.Urgency,
		Status:           task.Status,
		Latitude:         task.Latitude,
		Longitude:        task.Longitude,
		Address:          task.Address,
		VolunteersNeeded: task.VolunteersNeeded,
		CreatedAt:        task.CreatedAt,
	}

	activeCount, err := s.repo.CountActiveByTask(s.repo.DB, task.ID)
	if err != nil {
		log.Warn("统计任务活跃指派失败: %v, task_id=%d", err, task.ID)
		return info
	}

	slots := task.VolunteersNeeded - int32(activeCount)
	if slots < 0 {
		slots = 0
	}
	info.AvailableSlots = slots
	return info
}
