package model

import "time"

// Volunteer 志愿者档案
// TotalPoints 只允许通过积分流水一致的事务更新，任何时刻等于该档案全部流水金额之和
type Volunteer struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	AccountID   int64     `gorm:"column:account_id;uniqueIndex" json:"account_id"`
	RealName    string    `gorm:"column:real_name;size:64" json:"real_name"`
	Status      int32     `gorm:"column:status;index" json:"status"`
	Skills      string    `gorm:"column:skills;size:512" json:"skills"` // JSON数组字符串
	Latitude    *float64  `gorm:"column:latitude" json:"latitude"`
	Longitude   *float64  `gorm:"column:longitude" json:"longitude"`
	City        string    `gorm:"column:city;size:64" json:"city"`
	TotalPoints int64     `gorm:"column:total_points" json:"total_points"`
	Level       string    `gorm:"column:level;size:16" json:"level"`
	Reputation  float64   `gorm:"column:reputation" json:"reputation"` // 0-100
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName 指定表名
func (Volunteer) TableName() string {
	return "volunteers"
}

// SkillList 解析志愿者技能列表
func (v *Volunteer) SkillList() []string {
	return ParseSkills(v.Skills)
}
