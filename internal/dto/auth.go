package dto

// ── 认证模块请求/响应 ──

// StudentLoginRequest 学生登录请求
type StudentLoginRequest struct {
	RollNumber string `json:"rollNumber" binding:"required"`
	Password   string `json:"password"   binding:"required"`
}

// StudentLoginResponse 学生登录成功响应
type StudentLoginResponse struct {
	RollNumber string `json:"rollNumber"`
	Name       string `json:"name"`
}

// AdminLoginRequest 管理员登录请求
type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AdminTokenResponse 管理员登录成功响应
type AdminTokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expiresIn"` // Token 有效期（秒）
}
