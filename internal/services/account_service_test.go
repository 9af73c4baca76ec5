package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"vehireview/internal/config"
	"vehireview/internal/infra/infratest"
	"vehireview/internal/models/request_models"
	"vehireview/internal/repositories"
	"vehireview/internal/review"
	mem "vehireview/pkg/memcache"
	"vehireview/pkg/utils"
)

func newAccountService(t *testing.T) (AccountServiceInterface, *fixture, *config.Config) {
	t.Helper()
	f := newFixture(t, nil)
	cfg := &config.Config{
		JWTSecret:    "test-secret",
		JWTTTL:       time.Hour,
		AdminEmails:  []string{"root@example.com"},
		ListPageSize: 5,
	}
	svc := NewAccountService(
		repositories.NewAccountRepository(f.db),
		f.likes,
		mem.NewRevokedTokens(),
		NewPresenter(review.MessagesFor("en"), time.UTC),
		cfg,
		zap.NewNop(),
	)
	return svc, f, cfg
}

func TestAccountRegisterAndLogin(t *testing.T) {
	svc, _, cfg := newAccountService(t)
	ctx := context.Background()

	created, err := svc.CreateAccount(ctx, request_models.SignUpRequest{
		DisplayName: "Alice",
		Email:       " Alice@Example.com ",
		Password:    "secret123",
	})
	if err != nil {
		t.Fatalf("CreateAccount: %v", err)
	}
	if created.Email != "alice@example.com" || created.Role != "user" {
		t.Errorf("created = %+v", created)
	}

	_, err = svc.CreateAccount(ctx, request_models.SignUpRequest{DisplayName: "Again", Email: "alice@example.com", Password: "secret123"})
	if !errors.Is(err, utils.ErrEmailAlreadyExists) {
		t.Errorf("duplicate email err = %v", err)
	}

	login, err := svc.Login(ctx, request_models.LoginRequest{Email: "ALICE@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	claims, err := utils.ValidateToken([]byte(cfg.JWTSecret), login.Token)
	if err != nil {
		t.Fatalf("issued token invalid: %v", err)
	}
	if claims.UserID != created.ID || claims.Role != "user" {
		t.Errorf("claims = %+v", claims)
	}

	if _, err := svc.Login(ctx, request_models.LoginRequest{Email: "alice@example.com", Password: "wrong-pass"}); !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Errorf("wrong password err = %v", err)
	}
	if _, err := svc.Login(ctx, request_models.LoginRequest{Email: "nobody@example.com", Password: "secret123"}); !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Errorf("unknown email err = %v", err)
	}
}

func TestAccountAdminEmail(t *testing.T) {
	svc, _, _ := newAccountService(t)

	created, err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Root",
		Email:       "root@example.com",
		Password:    "secret123",
	})
	if err != nil {
		t.Fatalf("CreateAccount: %v", err)
	}
	if created.Role != "admin" {
		t.Errorf("role = %q, want admin", created.Role)
	}
}

func TestAccountProfileListsLikedReviews(t *testing.T) {
	svc, f, _ := newAccountService(t)
	ctx := context.Background()

	fan := infratest.CreateUser(t, f.db, "fan")
	author := infratest.CreateUser(t, f.db, "author")
	r := infratest.CreateReview(t, f.db, author, infratest.CreateVehicle(t, f.db, "cb400"), "title", "body", time.Now())
	infratest.CreateLike(t, f.db, fan, r)

	profile, err := svc.GetProfile(ctx, fan.ID, 1)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if profile.Account.Email != "" {
		t.Error("public profile must not expose the email")
	}
	if len(profile.LikedReviews.Items) != 1 || profile.LikedReviews.Items[0].ID != r.ID.String() {
		t.Errorf("liked = %+v", profile.LikedReviews)
	}

	if _, err := svc.GetProfile(ctx, uuid.New(), 1); !errors.Is(err, utils.ErrAccountNotFound) {
		t.Errorf("missing account err = %v", err)
	}

	all, err := svc.GetAllAccounts(ctx, 1)
	if err != nil {
		t.Fatalf("GetAllAccounts: %v", err)
	}
	if all.Total != 2 || len(all.Items) != 2 {
		t.Errorf("accounts = %+v", all)
	}
}
