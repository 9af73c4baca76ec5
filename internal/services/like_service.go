package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"vehireview/internal/models/db_models"
	"vehireview/internal/models/response_models"
	"vehireview/internal/repositories"
	"vehireview/pkg/utils"
)

type LikeServiceInterface interface {
	Like(ctx context.Context, userID, reviewID uuid.UUID) (*response_models.LikeResponse, error)
	Unlike(ctx context.Context, userID, reviewID uuid.UUID) (*response_models.LikeResponse, error)
	ListLiked(ctx context.Context, userID uuid.UUID, page int) (*response_models.ReviewPage, error)
}

type LikeService struct {
	likeRepo   repositories.LikeRepository
	reviewRepo repositories.ReviewRepository
	presenter  *Presenter
	pageSize   int
	log        *zap.Logger
}

func NewLikeService(
	likeRepo repositories.LikeRepository,
	reviewRepo repositories.ReviewRepository,
	presenter *Presenter,
	pageSizes PageSizes,
	log *zap.Logger,
) LikeServiceInterface {
	return &LikeService{
		likeRepo:   likeRepo,
		reviewRepo: reviewRepo,
		presenter:  presenter,
		pageSize:   pageSizes.List,
		log:        log,
	}
}

// Like records userID's like on a published review.
func (s *LikeService) Like(ctx context.Context, userID, reviewID uuid.UUID) (*response_models.LikeResponse, error) {
	r, err := s.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		s.log.Error("find review", zap.Error(err), zap.Stringer("review_id", reviewID))
		return nil, utils.ErrDatabaseError
	}
	if r == nil || r.Status != db_models.ReviewStatusPublish {
		return nil, utils.ErrReviewNotFound
	}

	err = s.likeRepo.Create(ctx, &db_models.Like{UserID: userID, ReviewID: reviewID})
	if err != nil {
		if errors.Is(err, utils.ErrAlreadyLiked) || errors.Is(err, utils.ErrReviewNotFound) {
			return nil, err
		}
		s.log.Error("create like", zap.Error(err), zap.Stringer("review_id", reviewID))
		return nil, utils.ErrDatabaseError
	}

	return s.status(ctx, reviewID, true)
}

func (s *LikeService) Unlike(ctx context.Context, userID, reviewID uuid.UUID) (*response_models.LikeResponse, error) {
	if err := s.likeRepo.Delete(ctx, userID, reviewID); err != nil {
		if errors.Is(err, utils.ErrLikeNotFound) {
			return nil, err
		}
		s.log.Error("delete like", zap.Error(err), zap.Stringer("review_id", reviewID))
		return nil, utils.ErrDatabaseError
	}

	return s.status(ctx, reviewID, false)
}

func (s *LikeService) status(ctx context.Context, reviewID uuid.UUID, liked bool) (*response_models.LikeResponse, error) {
	count, err := s.likeRepo.CountByReview(ctx, reviewID)
	if err != nil {
		s.log.Error("count likes", zap.Error(err), zap.Stringer("review_id", reviewID))
		return nil, utils.ErrDatabaseError
	}
	return &response_models.LikeResponse{
		ReviewID:  reviewID.String(),
		Liked:     liked,
		LikeCount: count,
	}, nil
}

// ListLiked pages through the reviews userID liked, most recent like first.
func (s *LikeService) ListLiked(ctx context.Context, userID uuid.UUID, page int) (*response_models.ReviewPage, error) {
	page, offset := utils.Paginate(page, s.pageSize)

	likes, total, err := s.likeRepo.ListByUser(ctx, userID, s.pageSize, offset)
	if err != nil {
		s.log.Error("list likes", zap.Error(err), zap.Stringer("user_id", userID))
		return nil, utils.ErrDatabaseError
	}

	ids := make([]uuid.UUID, 0, len(likes))
	for _, l := range likes {
		ids = append(ids, l.ReviewID)
	}
	counts, err := s.likeRepo.CountByReviews(ctx, ids)
	if err != nil {
		s.log.Error("count likes", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	items := make([]response_models.ReviewResponse, 0, len(likes))
	for i := range likes {
		r := &likes[i].Review
		items = append(items, s.presenter.Review(r, counts[r.ID], true))
	}

	return &response_models.ReviewPage{
		Items:    items,
		PageMeta: response_models.NewPageMeta(page, s.pageSize, total),
	}, nil
}
