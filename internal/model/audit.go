package model

import "time"

// 审计目标类型
const (
	AuditTargetAssignment int32 = 1 // 指派核验
	AuditTargetMatching   int32 = 2 // 匹配运行
)

// AuditRecord 操作审计记录
type AuditRecord struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	TargetType int32     `gorm:"column:target_type;index" json:"target_type"`
	TargetID   int64     `gorm:"column:target_id;index" json:"target_id"`
	OperatorID int64     `gorm:"column:operator_id" json:"operator_id"`
	Detail     string    `gorm:"column:detail;type:text" json:"detail"` // JSON快照
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName 指定表名
func (AuditRecord) TableName() string {
	return "audit_records"
}
