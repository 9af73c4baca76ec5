package response_models

type AccountLoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}

type AccountResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

// AccountDetailResponse is a profile page: the account and the reviews it liked.
type AccountDetailResponse struct {
	Account      AccountResponse `json:"account"`
	LikedReviews ReviewPage      `json:"liked_reviews"`
}

type AccountPage struct {
	Items []AccountResponse `json:"items"`
	PageMeta
}
