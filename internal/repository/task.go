package repository

import (
	"errors"

	"volunteer-platform/internal/api"
	"volunteer-platform/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateTask 创建任务
func (r *Repository) CreateTask(db *gorm.DB, task *model.Task) error {
	return db.Create(task).Error
}

// GetTaskByID 根据ID查询任务
func (r *Repository) GetTaskByID(db *gorm.DB, id int64) (*model.Task, error) {
	var task model.Task
	err := db.Where("id = ?", id).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

// GetTaskByIDForUpdate 根据ID查询任务并加行锁（FOR UPDATE）
func (r *Repository) GetTaskByIDForUpdate(db *gorm.DB, id int64) (*model.Task, error) {
	var task model.Task
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

// ListTasks 分页查询任务列表
func (r *Repository) ListTasks(db *gorm.DB, req *api.TaskListRequest) ([]model.Task, int64, error) {
	query := db.Model(&model.Task{})
	if req.OrgID > 0 {
		query = query.Where("org_id = ?", req.OrgID)
	}
	if req.Status > 0 {
		query = query.Where("status = ?", req.Status)
	}
	if req.Urgency > 0 {
		query = query.Where("urgency = ?", req.Urgency)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tasks []model.Task
	err := query.Order("created_at DESC").
		Offset(req.Offset()).
		Limit(req.PageSize).
		Find(&tasks).Error
	return tasks, total, err
}

// UpdateTaskStatus 更新任务状态
func (r *Repository) UpdateTaskStatus(db *gorm.DB, id int64, status int32) error {
	return db.Model(&model.Task{}).Where("id = ?", id).Update("status", status).Error
}
