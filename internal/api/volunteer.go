package api

// VolunteerProfileResponse 志愿者档案响应
type VolunteerProfileResponse struct {
	ID          int64    `json:"id"`
	AccountID   int64    `json:"account_id"`
	RealName    string   `json:"real_name"`
	Status      int32    `json:"status"`
	Skills      []string `json:"skills"`
	City        string   `json:"city"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	TotalPoints int64    `json:"total_points"`
	Level       string   `json:"level"`
	Reputation  float64  `json:"reputation"`

	// VerifiedCount 已核验完成的指派总数
	VerifiedCount int64 `json:"verified_count"`
}

// UpdateVolunteerProfileRequest 更新志愿者档案请求
type UpdateVolunteerProfileRequest struct {
	RealName  string   `json:"real_name,omitempty"`
	Skills    []string `json:"skills,omitempty"`
	City      string   `json:"city,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Status    int32    `json:"status,omitempty"` // 1活跃 2停用
}
