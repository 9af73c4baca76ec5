package request_models

type CreateVehicleRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	MakerID string `json:"maker_id" binding:"required,uuid"`
}

type CreateMakerRequest struct {
	Name         string `json:"name" binding:"required,max=100"`
	DisplayOrder string `json:"display_order" binding:"max=20"`
}
