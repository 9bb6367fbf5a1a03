package model

import "time"

// 匹配推荐置信度：有AI响应时0.9，仅启发式时0.6
const (
	ConfidenceWithAI        = 0.9
	ConfidenceHeuristicOnly = 0.6
)

// MatchRecommendation 一次匹配运行的不可变记录
// 创建后不再修改，保留启发式排名、AI原始响应与最终排名快照
type MatchRecommendation struct {
	ID             int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	TaskID         int64     `gorm:"column:task_id;index" json:"task_id"`
	OrgID          int64     `gorm:"column:org_id" json:"org_id"`
	RequestedBy    int64     `gorm:"column:requested_by" json:"requested_by"`
	ResultLimit    int32     `gorm:"column:result_limit" json:"result_limit"`
	AutoAssign     bool      `gorm:"column:auto_assign" json:"auto_assign"`
	HeuristicJSON  string    `gorm:"column:heuristic_json;type:text" json:"heuristic_json"`
	AIResponseJSON string    `gorm:"column:ai_response_json;type:text" json:"ai_response_json"` // 空串表示AI未响应
	FinalJSON      string    `gorm:"column:final_json;type:text" json:"final_json"`
	Confidence     float64   `gorm:"column:confidence" json:"confidence"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName 指定表名
func (MatchRecommendation) TableName() string {
	return "match_recommendations"
}
