package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"vehireview/internal/models/request_models"
	"vehireview/internal/services"
	"vehireview/pkg/middleware"
	"vehireview/pkg/utils"
)

type ReviewController struct {
	reviewService services.ReviewServiceInterface
	likeService   services.LikeServiceInterface
}

func NewReviewController(reviewService services.ReviewServiceInterface, likeService services.LikeServiceInterface) *ReviewController {
	return &ReviewController{
		reviewService: reviewService,
		likeService:   likeService,
	}
}

// ListReviews godoc
// @Summary Search reviews
// @Description Published reviews, newest first. Whitespace separated words in search match title or body; any word is enough.
// @Tags Reviews
// @Produce json
// @Param page query int false "Page number (1-based, 0 is the first page)"
// @Param search query string false "Search words"
// @Param vehicle_id query string false "Only reviews of this vehicle"
// @Param listing query string false "home or list; selects the page size"
// @Success 200 {object} utils.APIResponse
// @Router /reviews [get]
func (r *ReviewController) ListReviews(c *gin.Context) {
	var req request_models.ReviewSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	query := services.SearchQuery{
		Page:    utils.ParsePage(req.Page),
		Search:  req.Search,
		Listing: req.Listing,
	}
	if req.VehicleID != "" {
		// uuid.Nil is never assigned to a stored vehicle, so a bad id matches nothing.
		vehicleID, err := uuid.Parse(req.VehicleID)
		if err != nil {
			vehicleID = uuid.Nil
		}
		query.VehicleID = &vehicleID
	}

	page, err := r.reviewService.Search(c.Request.Context(), query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, page, "Reviews fetched successfully")
}

// GetReview godoc
// @Summary Review detail
// @Description A published review, or the caller's own draft. liked is set for authenticated callers.
// @Tags Reviews
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /reviews/{id} [get]
func (r *ReviewController) GetReview(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	viewerID, _ := middleware.CurrentUserID(c)

	review, err := r.reviewService.GetReview(c.Request.Context(), id, viewerID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, review, "Review fetched successfully")
}

// CheckDuplicate godoc
// @Summary Duplicate pre-check
// @Description Tells whether the caller already reviewed the vehicle, with the message the create call would return
// @Tags Reviews
// @Produce json
// @Param vehicle_id query string true "Vehicle ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /reviews/duplicate [get]
func (r *ReviewController) CheckDuplicate(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req request_models.DuplicateCheckRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "vehicle_id is required")
		return
	}

	result, err := r.reviewService.CheckDuplicate(c.Request.Context(), userID, uuid.MustParse(req.VehicleID))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Duplicate check complete")
}

// CreateReview godoc
// @Summary Post a review
// @Description Title and body are required when publishing; drafts may leave them blank
// @Tags Reviews
// @Accept json
// @Produce json
// @Param request body request_models.CreateReviewRequest true "Review payload"
// @Success 201 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Security BearerAuth
// @Router /reviews [post]
func (r *ReviewController) CreateReview(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req request_models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	review, err := r.reviewService.CreateReview(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, review, "Review created successfully")
}

// UpdateReview godoc
// @Summary Edit a review
// @Tags Reviews
// @Accept json
// @Produce json
// @Param id path string true "Review ID"
// @Param request body request_models.UpdateReviewRequest true "Review payload"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Security BearerAuth
// @Router /reviews/{id} [put]
func (r *ReviewController) UpdateReview(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req request_models.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	review, err := r.reviewService.UpdateReview(c.Request.Context(), userID, id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, review, "Review updated successfully")
}

// DeleteReview godoc
// @Summary Delete a review
// @Description Removes the review together with its likes
// @Tags Reviews
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /reviews/{id} [delete]
func (r *ReviewController) DeleteReview(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := r.reviewService.DeleteReview(c.Request.Context(), userID, c.GetString(middleware.ContextRole), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Review deleted successfully")
}

// LikeReview godoc
// @Summary Like a review
// @Tags Likes
// @Produce json
// @Param id path string true "Review ID"
// @Success 201 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /reviews/{id}/like [post]
func (r *ReviewController) LikeReview(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	like, err := r.likeService.Like(c.Request.Context(), userID, id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, like, "Review liked")
}

// UnlikeReview godoc
// @Summary Remove a like
// @Tags Likes
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /reviews/{id}/like [delete]
func (r *ReviewController) UnlikeReview(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	like, err := r.likeService.Unlike(c.Request.Context(), userID, id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, like, "Like removed")
}
