package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"vehireview/internal/config"
	"vehireview/internal/models/db_models"
	"vehireview/internal/models/request_models"
	"vehireview/internal/models/response_models"
	"vehireview/internal/repositories"
	mem "vehireview/pkg/memcache"
	"vehireview/pkg/utils"
)

type AccountServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AccountLoginResponse, error)
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) (*response_models.AccountResponse, error)
	Logout(ctx context.Context, tokenID string, expiresAt time.Time)
	GetAccount(ctx context.Context, id uuid.UUID) (*response_models.AccountResponse, error)
	GetProfile(ctx context.Context, id uuid.UUID, page int) (*response_models.AccountDetailResponse, error)
	GetAllAccounts(ctx context.Context, page int) (*response_models.AccountPage, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	likes       LikeServiceInterface
	revoked     mem.RevokedTokenStore
	presenter   *Presenter
	cfg         *config.Config
	log         *zap.Logger
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	likes LikeServiceInterface,
	revoked mem.RevokedTokenStore,
	presenter *Presenter,
	cfg *config.Config,
	log *zap.Logger,
) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		likes:       likes,
		revoked:     revoked,
		presenter:   presenter,
		cfg:         cfg,
		log:         log,
	}
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AccountLoginResponse, error) {
	startTime := time.Now()

	account, err := a.accountRepo.FindByEmail(ctx, normalizeEmail(request.Email))
	if err != nil {
		a.log.Error("find account", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, claims, err := utils.CreateToken([]byte(a.cfg.JWTSecret), account.ID, account.Role, a.cfg.JWTTTL)
	if err != nil {
		a.log.Error("sign token", zap.Error(err))
		return nil, utils.ErrInvalidCredentials
	}

	a.log.Debug("login", zap.Stringer("user_id", account.ID), zap.Duration("took", time.Since(startTime)))

	return &response_models.AccountLoginResponse{
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time.UTC().Format(time.RFC3339),
	}, nil
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) (*response_models.AccountResponse, error) {
	email := normalizeEmail(request.Email)

	existingAccount, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		a.log.Error("find account", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		a.log.Error("hash password", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	role := db_models.RoleUser
	if a.cfg.IsAdminEmail(email) {
		role = db_models.RoleAdmin
	}

	newAccount := &db_models.User{
		Name:         strings.TrimSpace(request.DisplayName),
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         role,
	}

	if err := a.accountRepo.InsertTx(ctx, newAccount); err != nil {
		if errors.Is(err, utils.ErrEmailAlreadyExists) {
			return nil, err
		}
		a.log.Error("insert account", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	a.log.Info("account created", zap.Stringer("user_id", newAccount.ID), zap.String("role", role))
	resp := a.presenter.Account(newAccount, true)
	return &resp, nil
}

// Logout revokes the presented token for the rest of its lifetime.
func (a *AccountService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) {
	a.revoked.Revoke(tokenID, expiresAt)
	a.log.Info("token revoked", zap.String("token_id", tokenID))
}

func (a *AccountService) GetAccount(ctx context.Context, id uuid.UUID) (*response_models.AccountResponse, error) {
	account, err := a.find(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := a.presenter.Account(account, true)
	return &resp, nil
}

// GetProfile is the public account page: name plus the reviews the account liked.
func (a *AccountService) GetProfile(ctx context.Context, id uuid.UUID, page int) (*response_models.AccountDetailResponse, error) {
	account, err := a.find(ctx, id)
	if err != nil {
		return nil, err
	}

	liked, err := a.likes.ListLiked(ctx, id, page)
	if err != nil {
		return nil, err
	}

	return &response_models.AccountDetailResponse{
		Account:      a.presenter.Account(account, false),
		LikedReviews: *liked,
	}, nil
}

func (a *AccountService) GetAllAccounts(ctx context.Context, page int) (*response_models.AccountPage, error) {
	size := a.cfg.ListPageSize
	page, offset := utils.Paginate(page, size)

	accounts, total, err := a.accountRepo.List(ctx, size, offset)
	if err != nil {
		a.log.Error("list accounts", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	items := make([]response_models.AccountResponse, 0, len(accounts))
	for i := range accounts {
		items = append(items, a.presenter.Account(&accounts[i], true))
	}
	return &response_models.AccountPage{
		Items:    items,
		PageMeta: response_models.NewPageMeta(page, size, total),
	}, nil
}

func (a *AccountService) find(ctx context.Context, id uuid.UUID) (*db_models.User, error) {
	account, err := a.accountRepo.FindById(ctx, id)
	if err != nil {
		a.log.Error("find account", zap.Error(err), zap.Stringer("user_id", id))
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	return account, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
