package types

// RegisterRequest 注册请求
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse 令牌响应
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"` // 秒
}

// RegisterResponse 注册响应
type RegisterResponse struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

// OAuthBindRequest 外部 OAuth 登录回调，携带提供方颁发的 access token
type OAuthBindRequest struct {
	AccessToken string `json:"access_token" binding:"required"`
}

// OAuthBindResponse 绑定结果
type OAuthBindResponse struct {
	ExternalID string `json:"external_id"`
}
