package response_models

type MakerResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	DisplayOrder string `json:"display_order"`
}

// VehicleResponse carries the placeholder image path until vehicles get
// pictures of their own.
type VehicleResponse struct {
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	Image string        `json:"image"`
	Maker MakerResponse `json:"maker"`
}
