package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"vehireview/internal/infra"
	"vehireview/internal/models/db_models"
	"vehireview/pkg/utils"
)

type LikeRepository interface {
	Create(ctx context.Context, like *db_models.Like) error
	Delete(ctx context.Context, userID, reviewID uuid.UUID) error
	FindByUserAndReview(ctx context.Context, userID, reviewID uuid.UUID) (*db_models.Like, error)
	CountByReview(ctx context.Context, reviewID uuid.UUID) (int64, error)
	CountByReviews(ctx context.Context, reviewIDs []uuid.UUID) (map[uuid.UUID]int64, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]db_models.Like, int64, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Create(ctx context.Context, like *db_models.Like) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(like).Error
	switch {
	case err == nil:
		return nil
	case infra.IsUniqueViolation(err):
		return utils.ErrAlreadyLiked
	case infra.IsForeignKeyViolation(err):
		return fmt.Errorf("%w: %v", utils.ErrReviewNotFound, err)
	default:
		return err
	}
}

func (r *likeRepository) Delete(ctx context.Context, userID, reviewID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND review_id = ?", userID, reviewID).
		Delete(&db_models.Like{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrLikeNotFound
	}
	return nil
}

func (r *likeRepository) FindByUserAndReview(ctx context.Context, userID, reviewID uuid.UUID) (*db_models.Like, error) {
	var like db_models.Like
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND review_id = ?", userID, reviewID).
		First(&like).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &like, nil
}

func (r *likeRepository) CountByReview(ctx context.Context, reviewID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Like{}).
		Where("review_id = ?", reviewID).
		Count(&count).Error
	return count, err
}

func (r *likeRepository) CountByReviews(ctx context.Context, reviewIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(reviewIDs))
	if len(reviewIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		ReviewID uuid.UUID
		Total    int64
	}
	err := r.db.WithContext(ctx).
		Model(&db_models.Like{}).
		Select("review_id, COUNT(*) AS total").
		Where("review_id IN ?", reviewIDs).
		Group("review_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.ReviewID] = row.Total
	}
	return counts, nil
}

// ListByUser pages through the published reviews a user liked, most recent
// like first. Likes on reviews moved back to draft stay stored but are not listed.
func (r *likeRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]db_models.Like, int64, error) {
	var total int64
	err := r.publishedLikes(ctx, userID).
		Model(&db_models.Like{}).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	likes := []db_models.Like{}
	if limit <= 0 || offset < 0 || int64(offset) >= total {
		return likes, total, nil
	}

	err = r.publishedLikes(ctx, userID).
		Preload("Review").
		Preload("Review.User").
		Preload("Review.Vehicle").
		Preload("Review.Vehicle.Maker").
		Order("likes.created_at DESC").
		Order("likes.id DESC").
		Limit(limit).
		Offset(offset).
		Find(&likes).Error
	if err != nil {
		return nil, 0, err
	}
	return likes, total, nil
}

func (r *likeRepository) publishedLikes(ctx context.Context, userID uuid.UUID) *gorm.DB {
	return r.db.WithContext(ctx).
		Joins("JOIN reviews ON reviews.id = likes.review_id").
		Where("likes.user_id = ?", userID).
		Where("reviews.status = ?", db_models.ReviewStatusPublish)
}
