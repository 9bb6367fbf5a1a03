package model

import "time"

// PointTransaction 积分流水，只增不改
// 记录核验前后的积分快照，幂等键防止同一次核验重复入账
type PointTransaction struct {
	ID             int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	VolunteerID    int64     `gorm:"column:volunteer_id;index" json:"volunteer_id"`
	AssignmentID   int64     `gorm:"column:assignment_id;index" json:"assignment_id"` // 0表示与指派无关的调整
	TxType         int32     `gorm:"column:tx_type;index" json:"tx_type"`
	Amount         int64     `gorm:"column:amount" json:"amount"` // 带符号积分变动
	BeforePoints   int64     `gorm:"column:before_points" json:"before_points"`
	AfterPoints    int64     `gorm:"column:after_points" json:"after_points"`
	Reason         string    `gorm:"column:reason;size:255" json:"reason"`
	OperatorID     int64     `gorm:"column:operator_id" json:"operator_id"`
	IdempotencyKey string    `gorm:"column:idempotency_key;size:64;uniqueIndex" json:"idempotency_key"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime;index" json:"created_at"`
}

// TableName 指定表名
func (PointTransaction) TableName() string {
	return "point_transactions"
}
