package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME_PAGE_SIZE", "")
	t.Setenv("LIST_PAGE_SIZE", "")
	t.Setenv("JWT_TTL", "")
	t.Setenv("APP_LOCALE", "")

	cfg := Load()
	if cfg.HomePageSize != 3 {
		t.Errorf("HomePageSize = %d, want 3", cfg.HomePageSize)
	}
	if cfg.ListPageSize != 5 {
		t.Errorf("ListPageSize = %d, want 5", cfg.ListPageSize)
	}
	if cfg.JWTTTL != time.Hour {
		t.Errorf("JWTTTL = %v, want 1h", cfg.JWTTTL)
	}
	if cfg.Locale != "en" {
		t.Errorf("Locale = %q, want en", cfg.Locale)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HOME_PAGE_SIZE", "4")
	t.Setenv("LIST_PAGE_SIZE", "abc")
	t.Setenv("JWT_TTL", "15m")
	t.Setenv("DB_DRIVER", "sqlite")

	cfg := Load()
	if cfg.HomePageSize != 4 {
		t.Errorf("HomePageSize = %d, want 4", cfg.HomePageSize)
	}
	if cfg.ListPageSize != 5 {
		t.Errorf("invalid LIST_PAGE_SIZE should fall back, got %d", cfg.ListPageSize)
	}
	if cfg.JWTTTL != 15*time.Minute {
		t.Errorf("JWTTTL = %v, want 15m", cfg.JWTTTL)
	}
	if cfg.DBDriver != "sqlite" {
		t.Errorf("DBDriver = %q, want sqlite", cfg.DBDriver)
	}
}

func TestIsAdminEmail(t *testing.T) {
	t.Setenv("ADMIN_EMAILS", " root@example.com, ops@example.com ,")

	cfg := Load()
	if len(cfg.AdminEmails) != 2 {
		t.Fatalf("AdminEmails = %q", cfg.AdminEmails)
	}
	if !cfg.IsAdminEmail("ROOT@example.com") {
		t.Error("admin match should ignore case")
	}
	if cfg.IsAdminEmail("someone@example.com") {
		t.Error("unlisted email treated as admin")
	}
}
