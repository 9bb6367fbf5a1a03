package repository

import (
	"errors"

	"volunteer-platform/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateVolunteer 创建志愿者档案
func (r *Repository) CreateVolunteer(db *gorm.DB, volunteer *model.Volunteer) error {
	return db.Create(volunteer).Error
}

// GetVolunteerByID 根据ID查询志愿者档案
func (r *Repository) GetVolunteerByID(db *gorm.DB, id int64) (*model.Volunteer, error) {
	var volunteer model.Volunteer
	err := db.Where("id = ?", id).First(&volunteer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &volunteer, nil
}

// GetVolunteerByIDForUpdate 根据ID查询志愿者档案并加行锁（FOR UPDATE）
func (r *Repository) GetVolunteerByIDForUpdate(db *gorm.DB, id int64) (*model.Volunteer, error) {
	var volunteer model.Volunteer
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).First(&volunteer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &volunteer, nil
}

// GetVolunteerByAccountID 根据账户ID查询志愿者档案
func (r *Repository) GetVolunteerByAccountID(db *gorm.DB, accountID int64) (*model.Volunteer, error) {
	var volunteer model.Volunteer
	err := db.Where("account_id = ?", accountID).First(&volunteer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &volunteer, nil
}

// UpdateVolunteerProfile 更新志愿者档案字段
func (r *Repository) UpdateVolunteerProfile(db *gorm.DB, id int64, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	return db.Model(&model.Volunteer{}).Where("id = ?", id).Updates(updates).Error
}

// UpdateVolunteerGamification 事务内更新积分、等级与信誉
func (r *Repository) UpdateVolunteerGamification(db *gorm.DB, id int64, totalPoints int64, level string, reputation float64) error {
	return db.Model(&model.Volunteer{}).Where("id = ?", id).Updates(map[string]interface{}{
		"total_points": totalPoints,
		"level":        level,
		"reputation":   reputation,
	}).Error
}

// ListActiveVolunteers 查询活跃志愿者档案，排除指定ID
func (r *Repository) ListActiveVolunteers(db *gorm.DB, excludeIDs []int64, limit int) ([]model.Volunteer, error) {
	query := db.Where("status = ?", model.VolunteerStatusActive)
	if len(excludeIDs) > 0 {
		query = query.Where("id NOT IN ?", excludeIDs)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var volunteers []model.Volunteer
	err := query.Order("id ASC").Find(&volunteers).Error
	return volunteers, err
}

// ListVolunteersByIDs 批量查询志愿者档案
func (r *Repository) ListVolunteersByIDs(db *gorm.DB, ids []int64) ([]model.Volunteer, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var volunteers []model.Volunteer
	err := db.Where("id IN ?", ids).Find(&volunteers).Error
	return volunteers, err
}

// ListTopVolunteers 按生涯总积分降序查询志愿者，平分时信誉高者在前
func (r *Repository) ListTopVolunteers(db *gorm.DB, limit int) ([]model.Volunteer, error) {
	var volunteers []model.Volunteer
	err := db.Where("status = ?", model.VolunteerStatusActive).
		Order("total_points DESC, reputation DESC, id ASC").
		Limit(limit).
		Find(&volunteers).Error
	return volunteers, err
}
