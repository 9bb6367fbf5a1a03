package model

import "time"

// Badge 徽章目录项
type Badge struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Code        string    `gorm:"column:code;size:64;uniqueIndex" json:"code"`
	Name        string    `gorm:"column:name;size:128" json:"name"`
	Description string    `gorm:"column:description;size:255" json:"description"`
	IconURL     string    `gorm:"column:icon_url;size:255" json:"icon_url"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName 指定表名
func (Badge) TableName() string {
	return "badges"
}

// VolunteerBadge 徽章授予记录
// 同一（志愿者、徽章、触发指派）组合只允许授予一次，由唯一索引保证
type VolunteerBadge struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	VolunteerID  int64     `gorm:"column:volunteer_id;index;uniqueIndex:uk_award" json:"volunteer_id"`
	BadgeID      int64     `gorm:"column:badge_id;uniqueIndex:uk_award" json:"badge_id"`
	AssignmentID int64     `gorm:"column:assignment_id;uniqueIndex:uk_award" json:"assignment_id"` // 0表示非指派触发
	MintStatus   int32     `gorm:"column:mint_status" json:"mint_status"`
	TokenID      string    `gorm:"column:token_id;size:128" json:"token_id"`
	MintError    string    `gorm:"column:mint_error;size:255" json:"mint_error"`
	AwardedAt    time.Time `gorm:"column:awarded_at" json:"awarded_at"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName 指定表名
func (VolunteerBadge) TableName() string {
	return "volunteer_badges"
}
