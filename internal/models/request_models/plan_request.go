package request_models

type PlanRequest struct {
	Destination   string  `json:"destination" binding:"required"`
	Budget        float64 `json:"budget" binding:"required"`
	StartDate     string  `json:"start_date" binding:"required"` // YYYY-MM-DD
	EndDate       string  `json:"end_date" binding:"required"`   // YYYY-MM-DD
	PreferredDays int     `json:"preferred_days"`
}

type ItineraryRequest struct {
	Destinations []string `json:"destinations" binding:"required,min=1"`
	Budget       float64  `json:"budget" binding:"required"`
	StartDate    string   `json:"start_date" binding:"required"`
	EndDate      string   `json:"end_date" binding:"required"`
	PickUpTime   string   `json:"pick_up_time"`
	DropOffTime  string   `json:"drop_off_time"`
}

type ParsePlanRequest struct {
	Text      string `json:"text" binding:"required"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

type SaveTripRequest struct {
	Destinations []string `json:"destinations" binding:"required,min=1"`
	StartDate    string   `json:"start_date" binding:"required"`
	EndDate      string   `json:"end_date" binding:"required"`
	Days         int      `json:"days" binding:"required"`
	HotelName    string   `json:"hotel_name"`
	CarName      string   `json:"car_name"`
	CostHotels   float64  `json:"cost_hotels"`
	CostCars     float64  `json:"cost_cars"`
	CostFood     float64  `json:"cost_food"`
	CostTotal    float64  `json:"cost_total"`
}
