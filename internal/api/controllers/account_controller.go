package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"vehireview/internal/models/request_models"
	"vehireview/internal/services"
	"vehireview/pkg/middleware"
	"vehireview/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
	reviewService  services.ReviewServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface, reviewService services.ReviewServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
		reviewService:  reviewService,
	}
}

// Register godoc
// @Summary Register a new account
// @Description Create a new user account
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Account registration payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /accounts/register [post]
func (a *AccountController) Register(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	account, err := a.accountService.CreateAccount(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, account, "Account created successfully")
}

// Login godoc
// @Summary Login to an account
// @Description Authenticate a user and return a token
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /accounts/login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	token, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, token, "Login successful")
}

// Logout godoc
// @Summary Logout
// @Description Revoke the bearer token used for this request
// @Tags Accounts
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /accounts/logout [post]
func (a *AccountController) Logout(c *gin.Context) {
	expiresAt, _ := c.Get(middleware.ContextTokenExp)
	exp, _ := expiresAt.(time.Time)

	a.accountService.Logout(c.Request.Context(), c.GetString(middleware.ContextTokenID), exp)
	utils.RespondSuccess(c, nil, "Logged out")
}

// Me godoc
// @Summary Current account
// @Tags Accounts
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /accounts/me [get]
func (a *AccountController) Me(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	account, err := a.accountService.GetAccount(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, account, "Account fetched successfully")
}

// MyReviews godoc
// @Summary Own reviews
// @Description Reviews written by the caller, drafts included, newest first
// @Tags Accounts
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /accounts/me/reviews [get]
func (a *AccountController) MyReviews(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req request_models.PageRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.HandleServiceError(c, utils.ErrInvalidPage)
		return
	}

	page, err := a.reviewService.ListOwn(c.Request.Context(), userID, req.Page)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, page, "Reviews fetched successfully")
}

// GetAccount godoc
// @Summary Account profile
// @Description Public account details with a page of the reviews it liked
// @Tags Accounts
// @Produce json
// @Param id path string true "Account ID"
// @Param page query int false "Page number (1-based)"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /accounts/{id} [get]
func (a *AccountController) GetAccount(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req request_models.PageRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.HandleServiceError(c, utils.ErrInvalidPage)
		return
	}

	profile, err := a.accountService.GetProfile(c.Request.Context(), id, req.Page)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "Account fetched successfully")
}

// GetAllAccounts godoc
// @Summary Get all accounts
// @Description Fetch a page of user accounts
// @Tags Accounts
// @Accept json
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /accounts [get]
func (a *AccountController) GetAllAccounts(c *gin.Context) {
	var req request_models.PageRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.HandleServiceError(c, utils.ErrInvalidPage)
		return
	}

	accounts, err := a.accountService.GetAllAccounts(c.Request.Context(), req.Page)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, accounts, "Accounts fetched successfully")
}
