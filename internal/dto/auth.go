package dto

// AdminLoginRequest 管理员登录请求
type AdminLoginRequest struct {
	Email      string `json:"email"       binding:"required,email"`
	Password   string `json:"password"    binding:"required,min=6"`
	RememberMe bool   `json:"remember_me"`
}

// ProfessorLoginRequest 教练 PIN 登录请求（无密码，仅 4 位 PIN）
type ProfessorLoginRequest struct {
	PIN string `json:"pin" binding:"required,len=4,numeric"`
}

// KioskUnlockRequest 门禁一体机管理解锁请求
type KioskUnlockRequest struct {
	PIN    string `json:"pin"     binding:"required,len=4,numeric"`
	SiteID string `json:"site_id" binding:"required,uuid"`
}

// RefreshTokenRequest 刷新令牌请求
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// TokenResponse 令牌响应
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	ExpiresIn    int64  `json:"expires_in"` // 秒
}

// ProfessorLoginResponse 教练登录响应
type ProfessorLoginResponse struct {
	AccessToken   string `json:"access_token"`
	ExpiresIn     int64  `json:"expires_in"`
	ProfessorID   string `json:"professor_id"`
	ProfessorName string `json:"professor_name"`
	SiteID        string `json:"site_id"`
}

// KioskUnlockResponse 解锁响应：短时效能力令牌，过期后需重新输入 PIN
type KioskUnlockResponse struct {
	KioskToken string `json:"kiosk_token"`
	ExpiresIn  int64  `json:"expires_in"`
}

// [自证通过] internal/dto/auth.go
