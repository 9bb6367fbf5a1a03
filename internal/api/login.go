package api

// LoginRequest 登录请求
type LoginRequest struct {
	LoginType  string `json:"login_type"` // phone / email
	Identifier string `json:"identifier"` // 手机号或邮箱
	Password   string `json:"password"`
	Identity   string `json:"identity"` // volunteer / organization / admin
}

// LoginResponse 登录响应
type LoginResponse struct {
	Success      bool      `json:"success"`
	Message      string    `json:"message"`
	AccessToken  string    `json:"access_token,omitempty"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	ExpiresAt    int64     `json:"expires_at,omitempty"`
	UserInfo     *UserInfo `json:"user_info,omitempty"`
}

// LogoutRequest 登出请求
type LogoutRequest struct {
	Token string `json:"token"` // refresh token
}

// LogoutResponse 登出响应
type LogoutResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// RefreshTokenRequest 刷新令牌请求
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// RefreshTokenResponse 刷新令牌响应
type RefreshTokenResponse struct {
	Success      bool      `json:"success"`
	Message      string    `json:"message"`
	Token        string    `json:"token,omitempty"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	ExpiresAt    int64     `json:"expires_at,omitempty"`
	UserInfo     *UserInfo `json:"user_info,omitempty"`
}
