package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"vehireview/internal/infra"
	"vehireview/internal/models/db_models"
	"vehireview/pkg/utils"
)

// ReviewSearch filters a review listing. Tokens of Search are matched as
// substrings of title or body; any single match is enough.
type ReviewSearch struct {
	Search        string
	VehicleID     *uuid.UUID
	UserID        *uuid.UUID
	IncludeDrafts bool
	Limit         int
	Offset        int
}

type ReviewRepository interface {
	Create(ctx context.Context, review *db_models.Review) error
	Update(ctx context.Context, review *db_models.Review) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Review, error)
	FindByUserAndVehicle(ctx context.Context, userID, vehicleID uuid.UUID) (*db_models.Review, error)
	Search(ctx context.Context, q ReviewSearch) ([]db_models.Review, int64, error)
	DeleteWithLikes(ctx context.Context, id uuid.UUID) (int64, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *db_models.Review) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(review).Error
	if infra.IsUniqueViolation(err) {
		return fmt.Errorf("%w: %v", utils.ErrReviewConflict, err)
	}
	return err
}

func (r *reviewRepository) Update(ctx context.Context, review *db_models.Review) error {
	review.UpdatedAt = time.Now()
	res := r.db.WithContext(ctx).
		Model(&db_models.Review{}).
		Where("id = ?", review.ID).
		Updates(map[string]interface{}{
			"title":      review.Title,
			"body":       review.Body,
			"status":     review.Status,
			"touring":    review.Touring,
			"race":       review.Race,
			"shopping":   review.Shopping,
			"commute":    review.Commute,
			"work":       review.Work,
			"other":      review.Other,
			"image":      review.Image,
			"updated_at": review.UpdatedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrReviewNotFound
	}
	return nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Review, error) {
	var review db_models.Review
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Vehicle").
		Preload("Vehicle.Maker").
		First(&review, "reviews.id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) FindByUserAndVehicle(ctx context.Context, userID, vehicleID uuid.UUID) (*db_models.Review, error) {
	var review db_models.Review
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND vehicle_id = ?", userID, vehicleID).
		First(&review).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) Search(ctx context.Context, q ReviewSearch) ([]db_models.Review, int64, error) {
	filter := func(tx *gorm.DB) *gorm.DB {
		if !q.IncludeDrafts {
			tx = tx.Where("reviews.status = ?", db_models.ReviewStatusPublish)
		}
		if q.VehicleID != nil {
			tx = tx.Where("reviews.vehicle_id = ?", *q.VehicleID)
		}
		if q.UserID != nil {
			tx = tx.Where("reviews.user_id = ?", *q.UserID)
		}
		if patterns := likePatterns(q.Search); len(patterns) > 0 {
			conds := make([]string, 0, len(patterns)*2)
			args := make([]interface{}, 0, len(patterns)*2)
			for _, p := range patterns {
				conds = append(conds, "reviews.title LIKE ? ESCAPE '!'", "reviews.body LIKE ? ESCAPE '!'")
				args = append(args, p, p)
			}
			tx = tx.Where("("+strings.Join(conds, " OR ")+")", args...)
		}
		return tx
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&db_models.Review{}).Scopes(filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	reviews := []db_models.Review{}
	if q.Limit <= 0 || q.Offset < 0 || int64(q.Offset) >= total {
		return reviews, total, nil
	}

	err := r.db.WithContext(ctx).
		Scopes(filter).
		Preload("User").
		Preload("Vehicle").
		Preload("Vehicle.Maker").
		Order("reviews.created_at DESC").
		Order("reviews.id DESC").
		Limit(q.Limit).
		Offset(q.Offset).
		Find(&reviews).Error
	if err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

// DeleteWithLikes removes the review and its likes atomically and returns
// how many likes went with it.
func (r *reviewRepository) DeleteWithLikes(ctx context.Context, id uuid.UUID) (int64, error) {
	var removed int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("review_id = ?", id).Delete(&db_models.Like{})
		if res.Error != nil {
			return res.Error
		}
		removed = res.RowsAffected

		res = tx.Delete(&db_models.Review{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return utils.ErrReviewNotFound
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// likePatterns turns whitespace separated words into contains-patterns
// escaped for `LIKE ... ESCAPE '!'`.
func likePatterns(search string) []string {
	words := strings.Fields(search)
	patterns := make([]string, 0, len(words))
	for _, w := range words {
		patterns = append(patterns, "%"+likeEscaper.Replace(w)+"%")
	}
	return patterns
}
