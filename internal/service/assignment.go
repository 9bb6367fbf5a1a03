package service

import (
	"context"
	"time"

	"volunteer-platform/internal/api"
	"volunteer-platform/internal/model"
	"volunteer-platform/internal/repository"
	"volunteer-platform/internal/response"

	"github.com/cloudwego/hertz/pkg/app"
	"gorm.io/gorm"
)

type AssignmentService struct {
	Service
}

func NewAssignmentService(ctx context.Context, c *app.RequestContext) *AssignmentService {
	if ctx == nil {
		ctx = context.Background()
	}
	return &AssignmentService{
		Service: Service{
			ctx:  ctx,
			c:    c,
			repo: repository.NewRepository(ctx, c),
		},
	}
}

// MyAssignments 查询当前志愿者的指派列表
func (s *AssignmentService) MyAssignments(req *api.MyAssignmentsRequest) (*api.AssignmentListResponse, error) {
	_, volunteer, err := s.requesterVolunteer()
	if err != nil {
		return nil, err
	}

	req.Normalize()
	assignments, total, err := s.repo.ListAssignmentsByVolunteer(s.repo.DB, volunteer.ID, req.Status, req.Offset(), req.PageSize)
	if err != nil {
		log.Error("查询指派列表失败: %v, volunteer_id=%d", err, volunteer.ID)
		return nil, err
	}

	// 补充任务标题
	taskIDs := make([]int64, 0, len(assignments))
	for _, a := range assignments {
		taskIDs = append(taskIDs, a.TaskID)
	}
	titles := s.taskTitles(taskIDs)

	items := make([]api.AssignmentInfo, 0, len(assignments))
	for _, a := range assignments {
		items = append(items, convertAssignmentInfo(&a, titles[a.TaskID]))
	}

	return &api.AssignmentListResponse{Total: total, Assignments: items}, nil
}

// Accept 志愿者接受指派
func (s *AssignmentService) Accept(assignmentID int64) (*api.AssignmentInfo, error) {
	return s.respond(assignmentID, model.AssignmentStatusAccepted)
}

// Reject 志愿者拒绝指派
func (s *AssignmentService) Reject(assignmentID int64) (*api.AssignmentInfo, error) {
	return s.respond(assignmentID, model.AssignmentStatusRejected)
}

// Start 志愿者开始执行指派
func (s *AssignmentService) Start(assignmentID int64) (*api.AssignmentInfo, error) {
	return s.respond(assignmentID, model.AssignmentStatusInProgress)
}

// MarkCompleted 志愿者标记指派完成，等待组织核验
func (s *AssignmentService) MarkCompleted(assignmentID int64) (*api.AssignmentInfo, error) {
	return s.respond(assignmentID, model.AssignmentStatusCompleted)
}

// respond 志愿者侧状态流转，按流转表校验
func (s *AssignmentService) respond(assignmentID int64, target int32) (*api.AssignmentInfo, error) {
	_, volunteer, err := s.requesterVolunteer()
	if err != nil {
		return nil, err
	}

	var result *model.Assignment
	err = s.withTransaction(func(tx *gorm.DB) error {
		assignment, err := s.repo.GetAssignmentByIDForUpdate(tx, assignmentID)
		if err != nil {
			return err
		}
		if assignment == nil {
			return response.ErrAssignmentNotFound
		}
		// 只有被指派的志愿者本人可以响应
		if assignment.VolunteerID != volunteer.ID {
			return response.ErrPermissionDenied
		}
		if !model.CanAssignmentTransition(assignment.Status, target) {
			return response.ErrInvalidTransition
		}

		now := time.Now()
		updates := map[string]interface{}{"status": target}
		switch target {
		case model.AssignmentStatusAccepted, model.AssignmentStatusRejected:
			updates["responded_at"] = now
		case model.AssignmentStatusCompleted:
			updates["completed_at"] = now
		}

		if err := s.repo.UpdateAssignment(tx, assignment.ID, updates); err != nil {
			return err
		}

		assignment.Status = target
		switch target {
		case model.AssignmentStatusAccepted, model.AssignmentStatusRejected:
			assignment.RespondedAt = &now
		case model.AssignmentStatusCompleted:
			assignment.CompletedAt = &now
		}
		result = assignment
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("指派状态更新: assignment_id=%d, volunteer_id=%d, status=%d", assignmentID, volunteer.ID, target)
	info := convertAssignmentInfo(result, "")
	return &info, nil
}

// taskTitles 批量查询任务标题
func (s *AssignmentService) taskTitles(taskIDs []int64) map[int64]string {
	titles := make(map[int64]string, len(taskIDs))
	if len(taskIDs) == 0 {
		return titles
	}

	var tasks []model.Task
	if err := s.repo.DB.Where("id IN ?", taskIDs).Find(&tasks).Error; err != nil {
		log.Warn("批量查询任务标题失败: %v", err)
		return titles
	}
	for _, t := range tasks {
		titles[t.ID] = t.Title
	}
	return titles
}

// convertAssignmentInfo 指派实体转DTO
func convertAssignmentInfo(a *model.Assignment, taskTitle string) api.AssignmentInfo {
	info := api.AssignmentInfo{
		ID:          a.ID,
		TaskID:      a.TaskID,
		TaskTitle:   taskTitle,
		VolunteerID: a.VolunteerID,
		Status:      a.Status,
		AssignedAt:  a.AssignedAt,
		CompletedAt: a.CompletedAt,
	}
	if a.Rating > 0 {
		rating := a.Rating
		info.Rating = &rating
	}
	if a.Status == model.AssignmentStatusVerified {
		info.VerifiedAt = a.CompletedAt
	}
	return info
}
