package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"vehireview/internal/infra"
	"vehireview/internal/models/db_models"
	"vehireview/pkg/utils"
)

type VehicleRepository interface {
	ListVehicles(ctx context.Context) ([]db_models.Vehicle, error)
	FindVehicleByID(ctx context.Context, id uuid.UUID) (*db_models.Vehicle, error)
	CreateVehicle(ctx context.Context, vehicle *db_models.Vehicle) error
	DeleteVehicle(ctx context.Context, id uuid.UUID) error

	ListMakers(ctx context.Context) ([]db_models.Maker, error)
	FindMakerByID(ctx context.Context, id uuid.UUID) (*db_models.Maker, error)
	CreateMaker(ctx context.Context, maker *db_models.Maker) error
}

type vehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) VehicleRepository {
	return &vehicleRepository{db: db}
}

func (r *vehicleRepository) ListVehicles(ctx context.Context) ([]db_models.Vehicle, error) {
	var vehicles []db_models.Vehicle
	err := r.db.WithContext(ctx).
		Preload("Maker").
		Order("name ASC").
		Find(&vehicles).Error
	return vehicles, err
}

func (r *vehicleRepository) FindVehicleByID(ctx context.Context, id uuid.UUID) (*db_models.Vehicle, error) {
	var vehicle db_models.Vehicle
	err := r.db.WithContext(ctx).Preload("Maker").First(&vehicle, "vehicles.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vehicle, nil
}

func (r *vehicleRepository) CreateVehicle(ctx context.Context, vehicle *db_models.Vehicle) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(vehicle).Error
	if infra.IsForeignKeyViolation(err) {
		return utils.ErrMakerNotFound
	}
	return err
}

// DeleteVehicle refuses to remove a vehicle that any review references. The
// check and the delete share one transaction, with the vehicle row locked
// where the dialect supports it, so a concurrent review insert cannot slip in.
func (r *vehicleRepository) DeleteVehicle(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lookup := tx
		if infra.SupportsRowLocks(tx) {
			lookup = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var vehicle db_models.Vehicle
		if err := lookup.First(&vehicle, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrVehicleNotFound
			}
			return err
		}

		var reviews int64
		if err := tx.Model(&db_models.Review{}).Where("vehicle_id = ?", id).Count(&reviews).Error; err != nil {
			return err
		}
		if reviews > 0 {
			return utils.ErrVehicleInUse
		}

		err := tx.Delete(&db_models.Vehicle{}, "id = ?", id).Error
		if infra.IsForeignKeyViolation(err) {
			return utils.ErrVehicleInUse
		}
		return err
	})
}

func (r *vehicleRepository) ListMakers(ctx context.Context) ([]db_models.Maker, error) {
	var makers []db_models.Maker
	err := r.db.WithContext(ctx).
		Order("display_order ASC").
		Order("name ASC").
		Find(&makers).Error
	return makers, err
}

func (r *vehicleRepository) FindMakerByID(ctx context.Context, id uuid.UUID) (*db_models.Maker, error) {
	var maker db_models.Maker
	err := r.db.WithContext(ctx).First(&maker, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &maker, nil
}

func (r *vehicleRepository) CreateMaker(ctx context.Context, maker *db_models.Maker) error {
	return r.db.WithContext(ctx).Create(maker).Error
}
