package response_models

type LoginResponse struct {
	Token string `json:"token"`
}

type TripResponse struct {
	ID           string   `json:"id"`
	Destinations []string `json:"destinations"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	Days         int      `json:"days"`
	HotelName    string   `json:"hotel_name,omitempty"`
	CarName      string   `json:"car_name,omitempty"`
	CostTotal    float64  `json:"cost_total"`
}
