package model

import "time"

// Organization 组织档案
type Organization struct {
	ID            int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	AccountID     int64     `gorm:"column:account_id;uniqueIndex" json:"account_id"`
	OrgName       string    `gorm:"column:org_name;size:128" json:"org_name"`
	ContactPerson string    `gorm:"column:contact_person;size:64" json:"contact_person"`
	ContactPhone  string    `gorm:"column:contact_phone;size:255" json:"-"` // 加密存储
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName 指定表名
func (Organization) TableName() string {
	return "organizations"
}

// OrgMember 组织成员关系，匹配与核验的组织授权依据
type OrgMember struct {
	ID        int64      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	OrgID     int64      `gorm:"column:org_id;index" json:"org_id"`
	AccountID int64      `gorm:"column:account_id;index" json:"account_id"`
	Status    int32      `gorm:"column:status" json:"status"`
	JoinedAt  *time.Time `gorm:"column:joined_at" json:"joined_at"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName 指定表名
func (OrgMember) TableName() string {
	return "org_members"
}
