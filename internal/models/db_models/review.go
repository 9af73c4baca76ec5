package db_models

import (
	"strings"

	"github.com/google/uuid"
)

type ReviewStatus int

const (
	ReviewStatusPublish ReviewStatus = 1
	ReviewStatusDraft   ReviewStatus = 2
)

func (s ReviewStatus) String() string {
	switch s {
	case ReviewStatusPublish:
		return "publish"
	case ReviewStatusDraft:
		return "draft"
	default:
		return "unknown"
	}
}

// ParseReviewStatus accepts "publish" or "draft"; anything else is reported as not ok.
func ParseReviewStatus(s string) (ReviewStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "publish":
		return ReviewStatusPublish, true
	case "draft":
		return ReviewStatusDraft, true
	default:
		return 0, false
	}
}

// Review is unique per (user, vehicle); the index backs the duplicate rule.
type Review struct {
	BaseModel
	Title  string       `gorm:"type:varchar(255)"`
	Body   string       `gorm:"type:text"`
	Status ReviewStatus `gorm:"not null;index"`

	Touring  bool `gorm:"not null;default:false"`
	Race     bool `gorm:"not null;default:false"`
	Shopping bool `gorm:"not null;default:false"`
	Commute  bool `gorm:"not null;default:false"`
	Work     bool `gorm:"not null;default:false"`
	Other    bool `gorm:"not null;default:false"`

	// Image is an opaque handle to an attachment stored elsewhere.
	Image string

	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_user_vehicle"`
	VehicleID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_user_vehicle;index"`

	User    User    `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Vehicle Vehicle `gorm:"foreignKey:VehicleID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}
