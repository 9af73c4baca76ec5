package db_models

import "github.com/google/uuid"

// NoImagePath is the placeholder rendered for vehicles without a picture.
const NoImagePath = "vehicles/no-image.png"

type Vehicle struct {
	BaseModel
	Name    string    `gorm:"not null;index"`
	MakerID uuid.UUID `gorm:"type:uuid;not null;index"`
	Maker   Maker     `gorm:"foreignKey:MakerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}
