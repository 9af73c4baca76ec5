package db_models

type Maker struct {
	BaseModel
	Name         string `gorm:"not null"`
	DisplayOrder string
}
