package services

import (
	"time"

	"vehireview/internal/models/db_models"
	"vehireview/internal/models/response_models"
	"vehireview/internal/review"
	"vehireview/pkg/utils"
)

// Presenter renders stored rows as API responses, with localized usage
// labels and timestamps in the configured zone.
type Presenter struct {
	messages review.Messages
	location *time.Location
}

func NewPresenter(messages review.Messages, location *time.Location) *Presenter {
	if location == nil {
		location = time.UTC
	}
	return &Presenter{messages: messages, location: location}
}

func (p *Presenter) Review(r *db_models.Review, likeCount int64, liked bool) response_models.ReviewResponse {
	tags := review.TagsOf(r)
	uses := make([]string, 0, len(tags))
	for _, tag := range tags {
		uses = append(uses, string(tag))
	}

	resp := response_models.ReviewResponse{
		ID:        r.ID.String(),
		Title:     r.Title,
		Body:      r.Body,
		Status:    r.Status.String(),
		Uses:      uses,
		UsesLabel: review.UsesLabel(r, p.messages),
		Image:     r.Image,
		User: response_models.UserSummary{
			ID:   r.UserID.String(),
			Name: r.User.Name,
		},
		Vehicle: response_models.VehicleSummary{
			ID:        r.VehicleID.String(),
			Name:      r.Vehicle.Name,
			MakerName: r.Vehicle.Maker.Name,
		},
		LikeCount: likeCount,
		Liked:     liked,
		CreatedAt: utils.FormatRFC3339In(r.CreatedAt, p.location),
		UpdatedAt: utils.FormatRFC3339In(r.UpdatedAt, p.location),
	}
	return resp
}

func (p *Presenter) Account(u *db_models.User, withEmail bool) response_models.AccountResponse {
	resp := response_models.AccountResponse{
		ID:        u.ID.String(),
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: utils.FormatRFC3339In(u.CreatedAt, p.location),
	}
	if withEmail {
		resp.Email = u.Email
	}
	return resp
}

func (p *Presenter) Vehicle(v *db_models.Vehicle) response_models.VehicleResponse {
	return response_models.VehicleResponse{
		ID:    v.ID.String(),
		Name:  v.Name,
		Image: db_models.NoImagePath,
		Maker: p.Maker(&v.Maker),
	}
}

func (p *Presenter) Maker(m *db_models.Maker) response_models.MakerResponse {
	return response_models.MakerResponse{
		ID:           m.ID.String(),
		Name:         m.Name,
		DisplayOrder: m.DisplayOrder,
	}
}
