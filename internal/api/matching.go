package api

import "volunteer-platform/pkg/match"

// RunMatchingRequest 发起匹配请求
type RunMatchingRequest struct {
	Limit      int  `json:"limit"`       // 返回的推荐人数上限，0取默认值
	AutoAssign bool `json:"auto_assign"` // 是否按推荐顺序自动创建指派
}

// RecommendationItem 单条推荐结果
type RecommendationItem struct {
	VolunteerID     int64           `json:"volunteer_id"`
	RealName        string          `json:"real_name"`
	Score           int             `json:"score"`
	Breakdown       match.Breakdown `json:"breakdown"`
	AIJustification string          `json:"ai_justification,omitempty"`
	AIPriority      *int            `json:"ai_priority,omitempty"`
}

// RunMatchingResponse 匹配结果响应
type RunMatchingResponse struct {
	RecommendationID int64                `json:"recommendation_id"`
	TaskID           int64                `json:"task_id"`
	Confidence       float64              `json:"confidence"` // 0.9 AI参与 / 0.6 纯启发式
	AIUsed           bool                 `json:"ai_used"`
	Items            []RecommendationItem `json:"items"`
	AssignedIDs      []int64              `json:"assigned_volunteer_ids,omitempty"`
}

// RecommendationHistoryResponse 任务的历史匹配记录
type RecommendationHistoryResponse struct {
	Records []RunMatchingResponse `json:"records"`
}
