package jwt

import (
	"testing"
	"time"

	"fitgate/backend/config"
)

func newTestManager() *Manager {
	return NewManager(&config.AuthConfig{
		JWTSecret:               "test-secret-key-for-unit-testing-2026",
		AccessTokenTTL:          15 * time.Minute,
		RefreshTokenTTLDefault:  24 * time.Hour,
		RefreshTokenTTLRemember: 7 * 24 * time.Hour,
		KioskUnlockTTL:          15 * time.Minute,
	})
}

func TestGenerateAndParseAccessToken(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateAccessToken("admin-1", "admin", "site-1")
	if err != nil {
		t.Fatalf("GenerateAccessToken 失败: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken 失败: %v", err)
	}

	if claims.UserID != "admin-1" {
		t.Errorf("期望 UserID=admin-1，实际=%s", claims.UserID)
	}
	if claims.Role != "admin" {
		t.Errorf("期望 Role=admin，实际=%s", claims.Role)
	}
	if claims.SiteID != "site-1" {
		t.Errorf("期望 SiteID=site-1，实际=%s", claims.SiteID)
	}
	if claims.TokenType != "access" {
		t.Errorf("期望 TokenType=access，实际=%s", claims.TokenType)
	}
	if claims.Issuer != "fitgate" {
		t.Errorf("期望 Issuer=fitgate，实际=%s", claims.Issuer)
	}
	if claims.ID == "" {
		t.Error("JTI 不应为空")
	}
}

func TestGenerateRefreshToken_Default(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateRefreshToken("prof-1", "professor", "site-1", false)
	if err != nil {
		t.Fatalf("GenerateRefreshToken 失败: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken 失败: %v", err)
	}

	if claims.TokenType != "refresh" {
		t.Errorf("期望 TokenType=refresh，实际=%s", claims.TokenType)
	}

	// 检查过期时间约为 24h
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl < 23*time.Hour || ttl > 25*time.Hour {
		t.Errorf("默认 RefreshToken TTL 期望约24h，实际=%v", ttl)
	}
}

func TestGenerateKioskToken(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateKioskToken("site-1")
	if err != nil {
		t.Fatalf("GenerateKioskToken 失败: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken 失败: %v", err)
	}

	if claims.TokenType != "kiosk" {
		t.Errorf("期望 TokenType=kiosk，实际=%s", claims.TokenType)
	}
	if claims.SiteID != "site-1" {
		t.Errorf("期望 SiteID=site-1，实际=%s", claims.SiteID)
	}

	// 能力凭证短时效，约 15 分钟
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl < 14*time.Minute || ttl > 16*time.Minute {
		t.Errorf("Kiosk 凭证 TTL 期望约15分钟，实际=%v", ttl)
	}
}

func TestParseToken_InvalidToken(t *testing.T) {
	m := newTestManager()

	_, err := m.ParseToken("invalid.token.string")
	if err == nil {
		t.Error("期望解析无效 token 返回错误")
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	m1 := newTestManager()
	m2 := NewManager(&config.AuthConfig{
		JWTSecret:      "different-secret-key",
		AccessTokenTTL: 15 * time.Minute,
	})

	token, _ := m1.GenerateAccessToken("admin-1", "admin", "site-1")
	_, err := m2.ParseToken(token)
	if err == nil {
		t.Error("不同密钥签名的 token 不应通过验证")
	}
}

func TestParseToken_ExpiredToken(t *testing.T) {
	// 创建一个 TTL 极短的 manager 来测试过期
	m := NewManager(&config.AuthConfig{
		JWTSecret:              "test-secret-key-0000",
		AccessTokenTTL:         1 * time.Millisecond,
		RefreshTokenTTLDefault: 1 * time.Millisecond,
	})

	token, _ := m.GenerateAccessToken("admin-1", "admin", "site-1")
	time.Sleep(10 * time.Millisecond)

	_, err := m.ParseToken(token)
	if err == nil {
		t.Error("过期 token 不应通过验证")
	}
	if err != ErrTokenExpired {
		t.Errorf("期望 ErrTokenExpired，实际: %v", err)
	}
}
