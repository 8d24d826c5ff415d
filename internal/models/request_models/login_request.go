package request_models

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type SignUpRequest struct {
	DisplayName   string  `json:"display_name" binding:"required,min=3,max=50"`
	Email         string  `json:"email" binding:"required,email"`
	Password      string  `json:"password" binding:"required,min=6"`
	HomeCity      string  `json:"home_city"`
	DefaultBudget float64 `json:"default_budget"`
}
