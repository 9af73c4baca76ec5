// Package infratest provides a migrated throwaway database for package tests.
package infratest

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"vehireview/internal/infra"
	"vehireview/internal/models/db_models"
)

func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := infra.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := infra.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func CreateUser(t testing.TB, db *gorm.DB, name string) *db_models.User {
	t.Helper()
	user := &db_models.User{
		Name:         name,
		Email:        name + "-" + uuid.NewString()[:8] + "@example.com",
		PasswordHash: "x",
		Role:         db_models.RoleUser,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func CreateVehicle(t testing.TB, db *gorm.DB, name string) *db_models.Vehicle {
	t.Helper()
	maker := &db_models.Maker{Name: name + " maker", DisplayOrder: "1"}
	if err := db.Create(maker).Error; err != nil {
		t.Fatalf("create maker: %v", err)
	}
	vehicle := &db_models.Vehicle{Name: name, MakerID: maker.ID}
	if err := db.Create(vehicle).Error; err != nil {
		t.Fatalf("create vehicle: %v", err)
	}
	return vehicle
}

// CreateReview inserts a published review with an explicit creation time.
func CreateReview(t testing.TB, db *gorm.DB, user *db_models.User, vehicle *db_models.Vehicle, title, body string, createdAt time.Time) *db_models.Review {
	t.Helper()
	r := &db_models.Review{
		Title:     title,
		Body:      body,
		Status:    db_models.ReviewStatusPublish,
		UserID:    user.ID,
		VehicleID: vehicle.ID,
	}
	r.CreatedAt = createdAt
	if err := db.Omit("User", "Vehicle").Create(r).Error; err != nil {
		t.Fatalf("create review: %v", err)
	}
	return r
}

func CreateLike(t testing.TB, db *gorm.DB, user *db_models.User, r *db_models.Review) *db_models.Like {
	t.Helper()
	like := &db_models.Like{UserID: user.ID, ReviewID: r.ID}
	if err := db.Omit("User", "Review").Create(like).Error; err != nil {
		t.Fatalf("create like: %v", err)
	}
	return like
}
