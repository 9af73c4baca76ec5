package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"vehireview/internal/models/request_models"
	"vehireview/internal/services"
	"vehireview/pkg/utils"
)

type VehicleController struct {
	vehicleService services.VehicleServiceInterface
}

func NewVehicleController(vehicleService services.VehicleServiceInterface) *VehicleController {
	return &VehicleController{vehicleService: vehicleService}
}

// ListVehicles godoc
// @Summary List vehicles
// @Description All vehicles ordered by name
// @Tags Vehicles
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /vehicles [get]
func (v *VehicleController) ListVehicles(c *gin.Context) {
	vehicles, err := v.vehicleService.ListVehicles(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, vehicles, "Vehicles fetched successfully")
}

// GetVehicle godoc
// @Summary Vehicle detail
// @Tags Vehicles
// @Produce json
// @Param id path string true "Vehicle ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /vehicles/{id} [get]
func (v *VehicleController) GetVehicle(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	vehicle, err := v.vehicleService.GetVehicle(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, vehicle, "Vehicle fetched successfully")
}

// CreateVehicle godoc
// @Summary Create a vehicle
// @Tags Vehicles
// @Accept json
// @Produce json
// @Param request body request_models.CreateVehicleRequest true "Vehicle payload"
// @Success 201 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /vehicles [post]
func (v *VehicleController) CreateVehicle(c *gin.Context) {
	var req request_models.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	vehicle, err := v.vehicleService.CreateVehicle(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, vehicle, "Vehicle created successfully")
}

// DeleteVehicle godoc
// @Summary Delete a vehicle
// @Description Refused with 409 while any review refers to the vehicle
// @Tags Vehicles
// @Produce json
// @Param id path string true "Vehicle ID"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /vehicles/{id} [delete]
func (v *VehicleController) DeleteVehicle(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := v.vehicleService.DeleteVehicle(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Vehicle deleted successfully")
}

// ListMakers godoc
// @Summary List makers
// @Tags Vehicles
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /makers [get]
func (v *VehicleController) ListMakers(c *gin.Context) {
	makers, err := v.vehicleService.ListMakers(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, makers, "Makers fetched successfully")
}

// CreateMaker godoc
// @Summary Create a maker
// @Tags Vehicles
// @Accept json
// @Produce json
// @Param request body request_models.CreateMakerRequest true "Maker payload"
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /makers [post]
func (v *VehicleController) CreateMaker(c *gin.Context) {
	var req request_models.CreateMakerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	maker, err := v.vehicleService.CreateMaker(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, maker, "Maker created successfully")
}
