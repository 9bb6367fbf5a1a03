package api

import "time"

// PointLedgerRequest 积分流水查询
type PointLedgerRequest struct {
	PageRequest
	TxType int32 `query:"tx_type"` // 0全部 1获得 2兑换 3调整
}

// PointLedgerItem 积分流水条目
type PointLedgerItem struct {
	ID           int64     `json:"id"`
	TxType       int32     `json:"tx_type"`
	Amount       int64     `json:"amount"`
	BeforePoints int64     `json:"before_points"`
	AfterPoints  int64     `json:"after_points"`
	AssignmentID *int64    `json:"assignment_id,omitempty"`
	Remark       string    `json:"remark,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// PointLedgerResponse 积分流水响应
type PointLedgerResponse struct {
	Total       int64             `json:"total"`
	TotalPoints int64             `json:"total_points"`
	Level       string            `json:"level"`
	Items       []PointLedgerItem `json:"items"`
}

// LeaderboardRequest 排行榜查询
type LeaderboardRequest struct {
	Window string `query:"window"` // all / weekly / monthly / yearly
	Limit  int    `query:"limit"`
}

// LeaderboardEntry 排行榜条目
type LeaderboardEntry struct {
	Rank         int     `json:"rank"`
	VolunteerID  int64   `json:"volunteer_id"`
	RealName     string  `json:"real_name"`
	Points       int64   `json:"points"`       // 窗口内积分（all 窗口等于 total_points）
	TotalPoints  int64   `json:"total_points"` // 生涯总积分
	Level        string  `json:"level"`
	Reputation   float64 `json:"reputation"`
}

// LeaderboardResponse 排行榜响应
type LeaderboardResponse struct {
	Window  string             `json:"window"`
	Entries []LeaderboardEntry `json:"entries"`
}

// BadgeInfo 徽章信息
type BadgeInfo struct {
	ID          int64  `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IconURL     string `json:"icon_url,omitempty"`
}

// BadgeCatalogResponse 徽章目录响应
type BadgeCatalogResponse struct {
	Badges []BadgeInfo `json:"badges"`
}

// VolunteerBadgeInfo 志愿者持有的徽章
type VolunteerBadgeInfo struct {
	BadgeInfo
	AssignmentID *int64    `json:"assignment_id,omitempty"`
	MintStatus   int32     `json:"mint_status"`
	TokenID      string    `json:"token_id,omitempty"`
	AwardedAt    time.Time `json:"awarded_at"`
}

// VolunteerBadgesResponse 志愿者徽章列表响应
type VolunteerBadgesResponse struct {
	VolunteerID int64                `json:"volunteer_id"`
	Badges      []VolunteerBadgeInfo `json:"badges"`
}
