package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"vehireview/internal/models/db_models"
	"vehireview/internal/models/request_models"
	"vehireview/internal/models/response_models"
	"vehireview/internal/repositories"
	"vehireview/internal/review"
	"vehireview/pkg/utils"
)

const ListingHome = "home"

// PageSizes are the listing sizes for the home page and the full list.
type PageSizes struct {
	Home int
	List int
}

func (p PageSizes) For(listing string) int {
	if listing == ListingHome {
		return p.Home
	}
	return p.List
}

type SearchQuery struct {
	Page      int
	Search    string
	VehicleID *uuid.UUID
	Listing   string
}

type ReviewServiceInterface interface {
	Search(ctx context.Context, q SearchQuery) (*response_models.ReviewPage, error)
	ListOwn(ctx context.Context, userID uuid.UUID, page int) (*response_models.ReviewPage, error)
	GetReview(ctx context.Context, id, viewerID uuid.UUID) (*response_models.ReviewResponse, error)
	CheckDuplicate(ctx context.Context, userID, vehicleID uuid.UUID) (*response_models.DuplicateCheckResponse, error)
	CreateReview(ctx context.Context, userID uuid.UUID, req request_models.CreateReviewRequest) (*response_models.ReviewResponse, error)
	UpdateReview(ctx context.Context, userID, id uuid.UUID, req request_models.UpdateReviewRequest) (*response_models.ReviewResponse, error)
	DeleteReview(ctx context.Context, actorID uuid.UUID, role string, id uuid.UUID) error
}

type ReviewService struct {
	reviewRepo  repositories.ReviewRepository
	vehicleRepo repositories.VehicleRepository
	likeRepo    repositories.LikeRepository
	validator   *review.Validator
	presenter   *Presenter
	pageSizes   PageSizes
	log         *zap.Logger
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	vehicleRepo repositories.VehicleRepository,
	likeRepo repositories.LikeRepository,
	validator *review.Validator,
	presenter *Presenter,
	pageSizes PageSizes,
	log *zap.Logger,
) ReviewServiceInterface {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		vehicleRepo: vehicleRepo,
		likeRepo:    likeRepo,
		validator:   validator,
		presenter:   presenter,
		pageSizes:   pageSizes,
		log:         log,
	}
}

func (s *ReviewService) Search(ctx context.Context, q SearchQuery) (*response_models.ReviewPage, error) {
	size := s.pageSizes.For(q.Listing)
	page, offset := utils.Paginate(q.Page, size)

	reviews, total, err := s.reviewRepo.Search(ctx, repositories.ReviewSearch{
		Search:    q.Search,
		VehicleID: q.VehicleID,
		Limit:     size,
		Offset:    offset,
	})
	if err != nil {
		s.log.Error("search reviews", zap.Error(err), zap.String("search", q.Search))
		return nil, utils.ErrDatabaseError
	}

	return s.page(ctx, reviews, page, size, total)
}

// ListOwn pages through everything the user wrote, drafts included.
func (s *ReviewService) ListOwn(ctx context.Context, userID uuid.UUID, page int) (*response_models.ReviewPage, error) {
	size := s.pageSizes.List
	page, offset := utils.Paginate(page, size)

	reviews, total, err := s.reviewRepo.Search(ctx, repositories.ReviewSearch{
		UserID:        &userID,
		IncludeDrafts: true,
		Limit:         size,
		Offset:        offset,
	})
	if err != nil {
		s.log.Error("list own reviews", zap.Error(err), zap.Stringer("user_id", userID))
		return nil, utils.ErrDatabaseError
	}

	return s.page(ctx, reviews, page, size, total)
}

func (s *ReviewService) page(ctx context.Context, reviews []db_models.Review, page, size int, total int64) (*response_models.ReviewPage, error) {
	ids := make([]uuid.UUID, 0, len(reviews))
	for _, r := range reviews {
		ids = append(ids, r.ID)
	}
	counts, err := s.likeRepo.CountByReviews(ctx, ids)
	if err != nil {
		s.log.Error("count likes", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	items := make([]response_models.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		items = append(items, s.presenter.Review(&reviews[i], counts[reviews[i].ID], false))
	}

	return &response_models.ReviewPage{
		Items:    items,
		PageMeta: response_models.NewPageMeta(page, size, total),
	}, nil
}

// GetReview shows a review. Drafts are visible to their author only.
// viewerID is uuid.Nil for anonymous requests.
func (s *ReviewService) GetReview(ctx context.Context, id, viewerID uuid.UUID) (*response_models.ReviewResponse, error) {
	r, err := s.reviewRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("find review", zap.Error(err), zap.Stringer("review_id", id))
		return nil, utils.ErrDatabaseError
	}
	if r == nil || (r.Status != db_models.ReviewStatusPublish && r.UserID != viewerID) {
		return nil, utils.ErrReviewNotFound
	}

	count, err := s.likeRepo.CountByReview(ctx, id)
	if err != nil {
		s.log.Error("count likes", zap.Error(err), zap.Stringer("review_id", id))
		return nil, utils.ErrDatabaseError
	}

	liked := false
	if viewerID != uuid.Nil {
		like, err := s.likeRepo.FindByUserAndReview(ctx, viewerID, id)
		if err != nil {
			s.log.Error("find like", zap.Error(err), zap.Stringer("review_id", id))
			return nil, utils.ErrDatabaseError
		}
		liked = like != nil
	}

	resp := s.presenter.Review(r, count, liked)
	return &resp, nil
}

func (s *ReviewService) CheckDuplicate(ctx context.Context, userID, vehicleID uuid.UUID) (*response_models.DuplicateCheckResponse, error) {
	message, found, err := s.validator.DuplicateMessage(ctx, userID, vehicleID)
	if err != nil {
		s.log.Error("duplicate lookup", zap.Error(err), zap.Stringer("vehicle_id", vehicleID))
		return nil, utils.ErrDatabaseError
	}
	return &response_models.DuplicateCheckResponse{Duplicate: found, Message: message}, nil
}

func (s *ReviewService) CreateReview(ctx context.Context, userID uuid.UUID, req request_models.CreateReviewRequest) (*response_models.ReviewResponse, error) {
	vehicleID, err := uuid.Parse(req.VehicleID)
	if err != nil {
		return nil, fmt.Errorf("%w: vehicle_id", utils.ErrInvalidInput)
	}
	status, err := parseStatus(req.Status, db_models.ReviewStatusPublish)
	if err != nil {
		return nil, err
	}
	tags, err := parseUses(req.Uses)
	if err != nil {
		return nil, err
	}

	vehicle, err := s.vehicleRepo.FindVehicleByID(ctx, vehicleID)
	if err != nil {
		s.log.Error("find vehicle", zap.Error(err), zap.Stringer("vehicle_id", vehicleID))
		return nil, utils.ErrDatabaseError
	}
	if vehicle == nil {
		return nil, utils.ErrVehicleNotFound
	}

	r := &db_models.Review{
		Title:     req.Title,
		Body:      req.Body,
		Status:    status,
		Image:     req.Image,
		UserID:    userID,
		VehicleID: vehicleID,
	}
	review.SetTags(r, tags)

	errs, err := s.validator.Validate(ctx, r, review.ContextFor(status), review.OnCreate)
	if err != nil {
		s.log.Error("validate review", zap.Error(err), zap.Stringer("user_id", userID))
		return nil, utils.ErrDatabaseError
	}
	if errs.Any() {
		return nil, errs.Err()
	}

	if err := s.reviewRepo.Create(ctx, r); err != nil {
		if errors.Is(err, utils.ErrReviewConflict) {
			s.log.Info("review insert lost duplicate race",
				zap.Stringer("user_id", userID), zap.Stringer("vehicle_id", vehicleID))
			return nil, utils.ErrReviewConflict
		}
		s.log.Error("create review", zap.Error(err), zap.Stringer("user_id", userID))
		return nil, utils.ErrDatabaseError
	}

	s.log.Info("review created",
		zap.Stringer("review_id", r.ID),
		zap.Stringer("user_id", userID),
		zap.Stringer("status", r.Status))
	return s.GetReview(ctx, r.ID, userID)
}

func (s *ReviewService) UpdateReview(ctx context.Context, userID, id uuid.UUID, req request_models.UpdateReviewRequest) (*response_models.ReviewResponse, error) {
	r, err := s.reviewRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("find review", zap.Error(err), zap.Stringer("review_id", id))
		return nil, utils.ErrDatabaseError
	}
	if r == nil {
		return nil, utils.ErrReviewNotFound
	}
	if r.UserID != userID {
		return nil, utils.ErrForbidden
	}

	status, err := parseStatus(req.Status, r.Status)
	if err != nil {
		return nil, err
	}
	tags, err := parseUses(req.Uses)
	if err != nil {
		return nil, err
	}

	r.Title = req.Title
	r.Body = req.Body
	r.Status = status
	r.Image = req.Image
	review.SetTags(r, tags)

	errs, err := s.validator.Validate(ctx, r, review.ContextFor(status), review.OnUpdate)
	if err != nil {
		s.log.Error("validate review", zap.Error(err), zap.Stringer("review_id", id))
		return nil, utils.ErrDatabaseError
	}
	if errs.Any() {
		return nil, errs.Err()
	}

	if err := s.reviewRepo.Update(ctx, r); err != nil {
		if errors.Is(err, utils.ErrReviewNotFound) {
			return nil, err
		}
		s.log.Error("update review", zap.Error(err), zap.Stringer("review_id", id))
		return nil, utils.ErrDatabaseError
	}

	return s.GetReview(ctx, id, userID)
}

// DeleteReview removes a review and its likes. Only the author or an admin may.
func (s *ReviewService) DeleteReview(ctx context.Context, actorID uuid.UUID, role string, id uuid.UUID) error {
	r, err := s.reviewRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("find review", zap.Error(err), zap.Stringer("review_id", id))
		return utils.ErrDatabaseError
	}
	if r == nil {
		return utils.ErrReviewNotFound
	}
	if r.UserID != actorID && role != db_models.RoleAdmin {
		return utils.ErrForbidden
	}

	removed, err := s.reviewRepo.DeleteWithLikes(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrReviewNotFound) {
			return err
		}
		s.log.Error("delete review", zap.Error(err), zap.Stringer("review_id", id))
		return utils.ErrDatabaseError
	}

	s.log.Info("review deleted",
		zap.Stringer("review_id", id),
		zap.Stringer("actor_id", actorID),
		zap.Int64("likes_removed", removed))
	return nil
}

func parseStatus(s string, fallback db_models.ReviewStatus) (db_models.ReviewStatus, error) {
	if s == "" {
		return fallback, nil
	}
	status, ok := db_models.ParseReviewStatus(s)
	if !ok {
		return 0, fmt.Errorf("%w: status %q", utils.ErrInvalidInput, s)
	}
	return status, nil
}

func parseUses(values []string) ([]review.UsageTag, error) {
	tags := make([]review.UsageTag, 0, len(values))
	for _, v := range values {
		tag, ok := review.ParseUsageTag(v)
		if !ok {
			return nil, fmt.Errorf("%w: unknown use %q", utils.ErrInvalidInput, v)
		}
		tags = append(tags, tag)
	}
	return tags, nil
}
