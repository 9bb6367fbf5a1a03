package model

import "time"

// SysAccount 系统账户
type SysAccount struct {
	ID           int64      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Username     string     `gorm:"column:username;size:64" json:"username"`
	Mobile       string     `gorm:"column:mobile;size:255" json:"-"` // 加密存储
	MobileHash   string     `gorm:"column:mobile_hash;size:64;index" json:"-"`
	Email        string     `gorm:"column:email;size:128;index" json:"email"`
	Password     string     `gorm:"column:password;size:128" json:"-"`
	IdentityType int32      `gorm:"column:identity_type" json:"identity_type"`
	Status       int32      `gorm:"column:status" json:"status"`
	LastLoginAt  *time.Time `gorm:"column:last_login_at" json:"last_login_at"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName 指定表名
func (SysAccount) TableName() string {
	return "sys_accounts"
}
