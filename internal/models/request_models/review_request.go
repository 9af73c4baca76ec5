package request_models

// CreateReviewRequest is a review submission. Status is "publish" or
// "draft"; an empty status publishes. Title and body are checked by the
// review rules, not by binding, so drafts may leave them blank.
type CreateReviewRequest struct {
	VehicleID string   `json:"vehicle_id" binding:"required,uuid"`
	Title     string   `json:"title"`
	Body      string   `json:"body"`
	Status    string   `json:"status" binding:"omitempty,oneof=publish draft"`
	Uses      []string `json:"uses"`
	Image     string   `json:"image" binding:"max=255"`
}

// UpdateReviewRequest replaces the editable fields. The vehicle is fixed
// once posted; an empty status keeps the current one.
type UpdateReviewRequest struct {
	Title  string   `json:"title"`
	Body   string   `json:"body"`
	Status string   `json:"status" binding:"omitempty,oneof=publish draft"`
	Uses   []string `json:"uses"`
	Image  string   `json:"image" binding:"max=255"`
}

// ReviewSearchRequest is bound leniently: a page or vehicle_id that does not
// parse narrows the result to nothing instead of failing the request.
type ReviewSearchRequest struct {
	Page      string `form:"page"`
	Search    string `form:"search"`
	VehicleID string `form:"vehicle_id"`
	Listing   string `form:"listing"`
}

type DuplicateCheckRequest struct {
	VehicleID string `form:"vehicle_id" binding:"required,uuid"`
}
