package db_models

import "github.com/google/uuid"

type Like struct {
	BaseModel
	UserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_likes_user_review"`
	ReviewID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_likes_user_review;index"`

	User   User   `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Review Review `gorm:"foreignKey:ReviewID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}
