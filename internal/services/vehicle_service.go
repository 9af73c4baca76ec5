package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"vehireview/internal/models/db_models"
	"vehireview/internal/models/request_models"
	"vehireview/internal/models/response_models"
	"vehireview/internal/repositories"
	"vehireview/pkg/utils"
)

type VehicleServiceInterface interface {
	ListVehicles(ctx context.Context) ([]response_models.VehicleResponse, error)
	GetVehicle(ctx context.Context, id uuid.UUID) (*response_models.VehicleResponse, error)
	CreateVehicle(ctx context.Context, req request_models.CreateVehicleRequest) (*response_models.VehicleResponse, error)
	DeleteVehicle(ctx context.Context, id uuid.UUID) error

	ListMakers(ctx context.Context) ([]response_models.MakerResponse, error)
	CreateMaker(ctx context.Context, req request_models.CreateMakerRequest) (*response_models.MakerResponse, error)
}

type VehicleService struct {
	vehicleRepo repositories.VehicleRepository
	presenter   *Presenter
	log         *zap.Logger
}

func NewVehicleService(vehicleRepo repositories.VehicleRepository, presenter *Presenter, log *zap.Logger) VehicleServiceInterface {
	return &VehicleService{
		vehicleRepo: vehicleRepo,
		presenter:   presenter,
		log:         log,
	}
}

func (s *VehicleService) ListVehicles(ctx context.Context) ([]response_models.VehicleResponse, error) {
	vehicles, err := s.vehicleRepo.ListVehicles(ctx)
	if err != nil {
		s.log.Error("list vehicles", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	resp := make([]response_models.VehicleResponse, 0, len(vehicles))
	for i := range vehicles {
		resp = append(resp, s.presenter.Vehicle(&vehicles[i]))
	}
	return resp, nil
}

func (s *VehicleService) GetVehicle(ctx context.Context, id uuid.UUID) (*response_models.VehicleResponse, error) {
	vehicle, err := s.vehicleRepo.FindVehicleByID(ctx, id)
	if err != nil {
		s.log.Error("find vehicle", zap.Error(err), zap.Stringer("vehicle_id", id))
		return nil, utils.ErrDatabaseError
	}
	if vehicle == nil {
		return nil, utils.ErrVehicleNotFound
	}

	resp := s.presenter.Vehicle(vehicle)
	return &resp, nil
}

func (s *VehicleService) CreateVehicle(ctx context.Context, req request_models.CreateVehicleRequest) (*response_models.VehicleResponse, error) {
	makerID, err := uuid.Parse(req.MakerID)
	if err != nil {
		return nil, fmt.Errorf("%w: maker_id", utils.ErrInvalidInput)
	}

	maker, err := s.vehicleRepo.FindMakerByID(ctx, makerID)
	if err != nil {
		s.log.Error("find maker", zap.Error(err), zap.Stringer("maker_id", makerID))
		return nil, utils.ErrDatabaseError
	}
	if maker == nil {
		return nil, utils.ErrMakerNotFound
	}

	vehicle := &db_models.Vehicle{Name: req.Name, MakerID: makerID}
	if err := s.vehicleRepo.CreateVehicle(ctx, vehicle); err != nil {
		if errors.Is(err, utils.ErrMakerNotFound) {
			return nil, err
		}
		s.log.Error("create vehicle", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	vehicle.Maker = *maker

	s.log.Info("vehicle created", zap.Stringer("vehicle_id", vehicle.ID), zap.String("name", vehicle.Name))
	resp := s.presenter.Vehicle(vehicle)
	return &resp, nil
}

// DeleteVehicle is refused while any review, draft or published, refers to the vehicle.
func (s *VehicleService) DeleteVehicle(ctx context.Context, id uuid.UUID) error {
	err := s.vehicleRepo.DeleteVehicle(ctx, id)
	switch {
	case err == nil:
		s.log.Info("vehicle deleted", zap.Stringer("vehicle_id", id))
		return nil
	case errors.Is(err, utils.ErrVehicleNotFound), errors.Is(err, utils.ErrVehicleInUse):
		return err
	default:
		s.log.Error("delete vehicle", zap.Error(err), zap.Stringer("vehicle_id", id))
		return utils.ErrDatabaseError
	}
}

func (s *VehicleService) ListMakers(ctx context.Context) ([]response_models.MakerResponse, error) {
	makers, err := s.vehicleRepo.ListMakers(ctx)
	if err != nil {
		s.log.Error("list makers", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	resp := make([]response_models.MakerResponse, 0, len(makers))
	for i := range makers {
		resp = append(resp, s.presenter.Maker(&makers[i]))
	}
	return resp, nil
}

func (s *VehicleService) CreateMaker(ctx context.Context, req request_models.CreateMakerRequest) (*response_models.MakerResponse, error) {
	maker := &db_models.Maker{Name: req.Name, DisplayOrder: req.DisplayOrder}
	if err := s.vehicleRepo.CreateMaker(ctx, maker); err != nil {
		s.log.Error("create maker", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	resp := s.presenter.Maker(maker)
	return &resp, nil
}
