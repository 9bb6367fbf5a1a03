package api

import "time"

// AssignmentInfo 指派信息
type AssignmentInfo struct {
	ID          int64      `json:"id"`
	TaskID      int64      `json:"task_id"`
	TaskTitle   string     `json:"task_title,omitempty"`
	VolunteerID int64      `json:"volunteer_id"`
	Status      int32      `json:"status"`
	Rating      *int32     `json:"rating,omitempty"`
	AssignedAt  time.Time  `json:"assigned_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	VerifiedAt  *time.Time `json:"verified_at,omitempty"`
}

// MyAssignmentsRequest 我的指派列表查询
type MyAssignmentsRequest struct {
	PageRequest
	Status int32 `query:"status"`
}

// AssignmentListResponse 指派列表响应
type AssignmentListResponse struct {
	Total       int64            `json:"total"`
	Assignments []AssignmentInfo `json:"assignments"`
}

// VerifyAssignmentRequest 核验完成请求
// IdempotencyKey 为空时由服务端生成；重复提交同一键返回首次入账结果
type VerifyAssignmentRequest struct {
	Rating            int32    `json:"rating"`         // 1-5
	PointsAwarded     int64    `json:"points_awarded"` // 0-1000
	Feedback          string   `json:"feedback"`
	VerificationNotes string   `json:"verification_notes"`
	BadgeCodes        []string `json:"badge_codes"` // 目录中不存在的编码静默跳过
	IdempotencyKey    string   `json:"idempotency_key"`
}

// AwardedBadge 核验时授予的徽章结果
type AwardedBadge struct {
	AwardID    int64  `json:"award_id"`
	Code       string `json:"code"`
	Name       string `json:"name"`
	MintStatus int32  `json:"mint_status"` // 1待上链 2已上链 3上链失败
	TokenID    string `json:"token_id,omitempty"`
}

// VerifyAssignmentResponse 核验完成响应
type VerifyAssignmentResponse struct {
	AssignmentID  int64          `json:"assignment_id"`
	Status        int32          `json:"status"`
	PointsAwarded int64          `json:"points_awarded"`
	TotalPoints   int64          `json:"total_points"`
	Level         string         `json:"level"`
	LevelChanged  bool           `json:"level_changed"`
	Reputation    float64        `json:"reputation"`
	BadgesAwarded []AwardedBadge `json:"badges_awarded"`
}
