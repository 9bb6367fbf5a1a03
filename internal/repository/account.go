package repository

import (
	"errors"
	"time"

	"volunteer-platform/internal/model"

	"gorm.io/gorm"
)

// CreateAccount 创建系统账户
func (r *Repository) CreateAccount(db *gorm.DB, account *model.SysAccount) error {
	return db.Create(account).Error
}

// FindByID 根据ID查找账户
func (r *Repository) FindByID(db *gorm.DB, id int64) (*model.SysAccount, error) {
	var account model.SysAccount
	err := db.Where("id = ?", id).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

// FindByMobile 根据手机号哈希查找账户
func (r *Repository) FindByMobile(db *gorm.DB, mobileHash string) (*model.SysAccount, error) {
	var account model.SysAccount
	err := db.Where("mobile_hash = ?", mobileHash).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

// FindByEmail 根据邮箱查找账户
func (r *Repository) FindByEmail(db *gorm.DB, email string) (*model.SysAccount, error) {
	var account model.SysAccount
	err := db.Where("email = ?", email).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

// CheckMobileExists 检查手机号哈希是否已存在
func (r *Repository) CheckMobileExists(db *gorm.DB, mobileHash string) (bool, error) {
	var count int64
	err := db.Model(&model.SysAccount{}).Where("mobile_hash = ?", mobileHash).Count(&count).Error
	return count > 0, err
}

// CheckEmailExists 检查邮箱是否已存在
func (r *Repository) CheckEmailExists(db *gorm.DB, email string) (bool, error) {
	var count int64
	err := db.Model(&model.SysAccount{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// UpdateLastLoginTime 更新最后登录时间
func (r *Repository) UpdateLastLoginTime(db *gorm.DB, accountID int64) error {
	now := time.Now()
	return db.Model(&model.SysAccount{}).
		Where("id = ?", accountID).
		Update("last_login_at", now).Error
}

// ListAccountsByIDs 批量查询账户
func (r *Repository) ListAccountsByIDs(db *gorm.DB, ids []int64) ([]model.SysAccount, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var accounts []model.SysAccount
	err := db.Where("id IN ?", ids).Find(&accounts).Error
	return accounts, err
}
