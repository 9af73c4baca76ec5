package response_models

type UserSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type VehicleSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	MakerName string `json:"maker_name,omitempty"`
}

type ReviewResponse struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Body      string         `json:"body"`
	Status    string         `json:"status"`
	Uses      []string       `json:"uses"`
	UsesLabel string         `json:"uses_label"`
	Image     string         `json:"image,omitempty"`
	User      UserSummary    `json:"user"`
	Vehicle   VehicleSummary `json:"vehicle"`
	LikeCount int64          `json:"like_count"`
	Liked     bool           `json:"liked"`
	CreatedAt string         `json:"created_at"`
	UpdatedAt string         `json:"updated_at"`
}

type ReviewPage struct {
	Items []ReviewResponse `json:"items"`
	PageMeta
}

type DuplicateCheckResponse struct {
	Duplicate bool   `json:"duplicate"`
	Message   string `json:"message,omitempty"`
}

type LikeResponse struct {
	ReviewID  string `json:"review_id"`
	Liked     bool   `json:"liked"`
	LikeCount int64  `json:"like_count"`
}
