package infra_test

import (
	"errors"
	"testing"
	"time"

	"vehireview/internal/infra"
	"vehireview/internal/infra/infratest"
	"vehireview/internal/models/db_models"
)

func TestUniqueReviewPerUserAndVehicle(t *testing.T) {
	db := infratest.NewDB(t)
	user := infratest.CreateUser(t, db, "alice")
	vehicle := infratest.CreateVehicle(t, db, "CB400")
	infratest.CreateReview(t, db, user, vehicle, "first", "body", time.Now())

	dup := &db_models.Review{Status: db_models.ReviewStatusDraft, UserID: user.ID, VehicleID: vehicle.ID}
	err := db.Omit("User", "Vehicle").Create(dup).Error
	if err == nil {
		t.Fatal("expected unique violation")
	}
	if !infra.IsUniqueViolation(err) {
		t.Errorf("IsUniqueViolation(%v) = false", err)
	}
}

func TestVehicleDeleteRestrictedByForeignKey(t *testing.T) {
	db := infratest.NewDB(t)
	user := infratest.CreateUser(t, db, "bob")
	vehicle := infratest.CreateVehicle(t, db, "SR400")
	infratest.CreateReview(t, db, user, vehicle, "t", "b", time.Now())

	err := db.Delete(&db_models.Vehicle{}, "id = ?", vehicle.ID).Error
	if err == nil {
		t.Fatal("expected foreign key violation")
	}
	if !infra.IsForeignKeyViolation(err) {
		t.Errorf("IsForeignKeyViolation(%v) = false", err)
	}

	var count int64
	db.Model(&db_models.Vehicle{}).Where("id = ?", vehicle.ID).Count(&count)
	if count != 1 {
		t.Errorf("vehicle should survive the rejected delete, count = %d", count)
	}
}

func TestConstraintHelpersIgnoreOtherErrors(t *testing.T) {
	err := errors.New("something else")
	if infra.IsUniqueViolation(err) || infra.IsForeignKeyViolation(err) {
		t.Error("plain errors must not be classified as constraint violations")
	}
}
