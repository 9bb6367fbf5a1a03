package api

import "time"

// CreateTaskRequest 创建任务请求
type CreateTaskRequest struct {
	OrgID            int64    `json:"org_id"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	SkillsRequired   []string `json:"skills_required"`
	Urgency          int32    `json:"urgency"` // 1低 2中 3高 4紧急
	Latitude         *float64 `json:"latitude"`
	Longitude        *float64 `json:"longitude"`
	Address          string   `json:"address"`
	VolunteersNeeded int32    `json:"volunteers_needed"`
	StartAt          string   `json:"start_at"` // YYYY-MM-DD HH:MM:SS
	EndAt            string   `json:"end_at"`
}

// TaskInfo 任务信息
type TaskInfo struct {
	ID               int64     `json:"id"`
	OrgID            int64     `json:"org_id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	SkillsRequired   []string  `json:"skills_required"`
	Urgency          int32     `json:"urgency"`
	Status           int32     `json:"status"`
	Latitude         *float64  `json:"latitude"`
	Longitude        *float64  `json:"longitude"`
	Address          string    `json:"address"`
	VolunteersNeeded int32     `json:"volunteers_needed"`
	AvailableSlots   int32     `json:"available_slots"`
	CreatedAt        time.Time `json:"created_at"`
}

// TaskListRequest 任务列表查询
type TaskListRequest struct {
	PageRequest
	OrgID   int64 `query:"org_id"`
	Status  int32 `query:"status"`
	Urgency int32 `query:"urgency"`
}

// TaskListResponse 任务列表响应
type TaskListResponse struct {
	Total int64      `json:"total"`
	Tasks []TaskInfo `json:"tasks"`
}
