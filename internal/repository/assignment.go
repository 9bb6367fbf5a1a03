package repository

import (
	"errors"

	"volunteer-platform/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateAssignment 创建指派
func (r *Repository) CreateAssignment(db *gorm.DB, assignment *model.Assignment) error {
	return db.Create(assignment).Error
}

// GetAssignmentByID 根据ID查询指派
func (r *Repository) GetAssignmentByID(db *gorm.DB, id int64) (*model.Assignment, error) {
	var assignment model.Assignment
	err := db.Where("id = ?", id).First(&assignment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &assignment, nil
}

// GetAssignmentByIDForUpdate 根据ID查询指派并加行锁（FOR UPDATE）
func (r *Repository) GetAssignmentByIDForUpdate(db *gorm.DB, id int64) (*model.Assignment, error) {
	var assignment model.Assignment
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).First(&assignment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &assignment, nil
}

// UpdateAssignment 更新指派字段
func (r *Repository) UpdateAssignment(db *gorm.DB, id int64, updates map[string]interface{}) error {
	return db.Model(&model.Assignment{}).Where("id = ?", id).Updates(updates).Error
}

// ListAssignmentsByVolunteer 分页查询志愿者的指派记录
func (r *Repository) ListAssignmentsByVolunteer(db *gorm.DB, volunteerID int64, status int32, offset, limit int) ([]model.Assignment, int64, error) {
	query := db.Model(&model.Assignment{}).Where("volunteer_id = ?", volunteerID)
	if status > 0 {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var assignments []model.Assignment
	err := query.Order("assigned_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&assignments).Error
	return assignments, total, err
}

// ListNonRejectedVolunteerIDs 查询任务下所有未被拒绝的指派志愿者ID
// 用于匹配时排除已指派的候选人
func (r *Repository) ListNonRejectedVolunteerIDs(db *gorm.DB, taskID int64) ([]int64, error) {
	var ids []int64
	err := db.Model(&model.Assignment{}).
		Where("task_id = ? AND status != ?", taskID, model.AssignmentStatusRejected).
		Pluck("volunteer_id", &ids).Error
	return ids, err
}

// CountActiveByTask 统计任务下活跃（占用名额）的指派数
func (r *Repository) CountActiveByTask(db *gorm.DB, taskID int64) (int64, error) {
	var count int64
	err := db.Model(&model.Assignment{}).
		Where("task_id = ? AND status IN ?", taskID, model.ActiveAssignmentStatuses()).
		Count(&count).Error
	return count, err
}

// VolunteerWorkload 志愿者当前活跃指派数
type VolunteerWorkload struct {
	VolunteerID int64
	Count       int
}

// CountActiveWorkloads 按志愿者聚合全平台活跃指派数（GROUP BY volunteer_id）
// 返回 map，无活跃指派的志愿者不在结果中
func (r *Repository) CountActiveWorkloads(db *gorm.DB, volunteerIDs []int64) (map[int64]int, error) {
	result := make(map[int64]int, len(volunteerIDs))
	if len(volunteerIDs) == 0 {
		return result, nil
	}

	var rows []VolunteerWorkload
	err := db.Model(&model.Assignment{}).
		Select("volunteer_id, COUNT(*) AS count").
		Where("volunteer_id IN ? AND status IN ?", volunteerIDs, model.ActiveAssignmentStatuses()).
		Group("volunteer_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		result[row.VolunteerID] = row.Count
	}
	return result, nil
}

// CountVerifiedByVolunteer 统计志愿者已核验完成的指派总数
func (r *Repository) CountVerifiedByVolunteer(db *gorm.DB, volunteerID int64) (int64, error) {
	var count int64
	err := db.Model(&model.Assignment{}).
		Where("volunteer_id = ? AND status = ?", volunteerID, model.AssignmentStatusVerified).
		Count(&count).Error
	return count, err
}
