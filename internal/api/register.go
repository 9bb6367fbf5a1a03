package api

// RegisterRequest 统一注册请求
// Identity 为 volunteer 时创建志愿者档案，为 organization 时创建组织档案
type RegisterRequest struct {
	Identity string `json:"identity"` // volunteer / organization
	UserName string `json:"username"`
	Name     string `json:"name"` // 志愿者真实姓名 / 组织联系人
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Password string `json:"password"`

	// 志愿者专属字段
	Skills    []string `json:"skills,omitempty"`
	City      string   `json:"city,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	// 组织专属字段
	OrganizationName string `json:"organization_name,omitempty"`
}

// RegisterResponse 注册响应
type RegisterResponse struct {
	AccountID int64 `json:"account_id"`
}
