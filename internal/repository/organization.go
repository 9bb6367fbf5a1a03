package repository

import (
	"errors"

	"volunteer-platform/internal/model"

	"gorm.io/gorm"
)

// CreateOrganization 创建组织档案
func (r *Repository) CreateOrganization(db *gorm.DB, org *model.Organization) error {
	return db.Create(org).Error
}

// GetOrgByID 根据ID查询组织
func (r *Repository) GetOrgByID(db *gorm.DB, id int64) (*model.Organization, error) {
	var org model.Organization
	err := db.Where("id = ?", id).First(&org).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &org, nil
}

// GetOrgByAccountID 根据账户ID查询组织
func (r *Repository) GetOrgByAccountID(db *gorm.DB, accountID int64) (*model.Organization, error) {
	var org model.Organization
	err := db.Where("account_id = ?", accountID).First(&org).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &org, nil
}

// CreateOrgMember 创建组织成员关系
func (r *Repository) CreateOrgMember(db *gorm.DB, member *model.OrgMember) error {
	return db.Create(member).Error
}

// GetOrgMember 查询组织成员关系
func (r *Repository) GetOrgMember(db *gorm.DB, orgID, accountID int64) (*model.OrgMember, error) {
	var member model.OrgMember
	err := db.Where("org_id = ? AND account_id = ?", orgID, accountID).First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

// IsMemberOf 判断账户是否为组织的正式成员
func (r *Repository) IsMemberOf(db *gorm.DB, orgID, accountID int64) (bool, error) {
	var count int64
	err := db.Model(&model.OrgMember{}).
		Where("org_id = ? AND account_id = ? AND status = ?", orgID, accountID, model.MemberStatusActive).
		Count(&count).Error
	return count > 0, err
}

// ListOrgMembers 查询组织全部成员
func (r *Repository) ListOrgMembers(db *gorm.DB, orgID int64) ([]model.OrgMember, error) {
	var members []model.OrgMember
	err := db.Where("org_id = ?", orgID).Order("id ASC").Find(&members).Error
	return members, err
}

// UpdateOrgMemberStatus 更新成员状态
func (r *Repository) UpdateOrgMemberStatus(db *gorm.DB, orgID, accountID int64, status int32) error {
	return db.Model(&model.OrgMember{}).
		Where("org_id = ? AND account_id = ?", orgID, accountID).
		Update("status", status).Error
}
