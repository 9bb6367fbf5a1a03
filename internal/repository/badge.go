package repository

import (
	"errors"
	"time"

	"volunteer-platform/internal/model"

	"gorm.io/gorm"
)

// ListBadges 查询徽章目录
func (r *Repository) ListBadges(db *gorm.DB) ([]model.Badge, error) {
	var badges []model.Badge
	err := db.Order("id ASC").Find(&badges).Error
	return badges, err
}

// FindBadgesByCodes 根据编码批量查询徽章，不存在的编码直接缺失于结果
func (r *Repository) FindBadgesByCodes(db *gorm.DB, codes []string) ([]model.Badge, error) {
	if len(codes) == 0 {
		return nil, nil
	}
	var badges []model.Badge
	err := db.Where("code IN ?", codes).Find(&badges).Error
	return badges, err
}

// CreateVolunteerBadge 创建徽章授予记录
func (r *Repository) CreateVolunteerBadge(db *gorm.DB, vb *model.VolunteerBadge) error {
	return db.Create(vb).Error
}

// GetVolunteerBadge 查询某次授予记录
func (r *Repository) GetVolunteerBadge(db *gorm.DB, volunteerID, badgeID, assignmentID int64) (*model.VolunteerBadge, error) {
	var vb model.VolunteerBadge
	err := db.Where("volunteer_id = ? AND badge_id = ? AND assignment_id = ?",
		volunteerID, badgeID, assignmentID).First(&vb).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vb, nil
}

// ListVolunteerBadges 查询志愿者持有的全部徽章
func (r *Repository) ListVolunteerBadges(db *gorm.DB, volunteerID int64) ([]model.VolunteerBadge, error) {
	var vbs []model.VolunteerBadge
	err := db.Where("volunteer_id = ?", volunteerID).
		Order("awarded_at DESC").
		Find(&vbs).Error
	return vbs, err
}

// UpdateVolunteerBadgeMint 更新授予记录的上链结果
func (r *Repository) UpdateVolunteerBadgeMint(db *gorm.DB, id int64, mintStatus int32, tokenID, mintError string) error {
	return db.Model(&model.VolunteerBadge{}).Where("id = ?", id).Updates(map[string]interface{}{
		"mint_status": mintStatus,
		"token_id":    tokenID,
		"mint_error":  mintError,
		"updated_at":  time.Now(),
	}).Error
}
