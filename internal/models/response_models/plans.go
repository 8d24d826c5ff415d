package response_models

// Activity kinds as they appear in a day schedule.
const (
	ActivityPickup     = "pickup"
	ActivityDropoff    = "dropoff"
	ActivityTravel     = "travel"
	ActivityStay       = "stay"
	ActivityAttraction = "attraction"
	ActivityMeal       = "meal"
	ActivityReturn     = "return"
)

// PlanActivity is one scheduled moment of a day. Immutable once placed
// into a PlanDay.
type PlanActivity struct {
	Time          string   `json:"time"`
	Kind          string   `json:"kind"`
	Name          string   `json:"name"`
	Detail        string   `json:"detail,omitempty"`
	Cost          float64  `json:"cost"`
	Rating        float64  `json:"rating,omitempty"`
	Distance      float64  `json:"distance_km,omitempty"`
	TravelMinutes float64  `json:"travel_minutes,omitempty"`
	Reviews       []string `json:"reviews,omitempty"`
}

type PlanDay struct {
	Date       string         `json:"date"`
	City       string         `json:"city,omitempty"`
	Weather    string         `json:"weather,omitempty"`
	Activities []PlanActivity `json:"activities"`
	DailyCost  float64        `json:"daily_cost"`
}

type TripPlan struct {
	Days      int         `json:"days"`
	Hotel     HotelOption `json:"hotel"`
	Car       *CarOption  `json:"car,omitempty"`
	Schedule  []PlanDay   `json:"schedule"`
	TotalCost float64     `json:"total_cost"`
}

type CostSummary struct {
	Hotels float64 `json:"hotels"`
	Cars   float64 `json:"cars"`
	Food   float64 `json:"food"`
	Total  float64 `json:"total"`
}

type ItineraryResponse struct {
	Narrative   string      `json:"narrative"`
	CostSummary CostSummary `json:"cost_summary"`
}

type ParsedTripResponse struct {
	Destination string     `json:"destination"`
	Budget      float64    `json:"budget"`
	Preferences []string   `json:"preferences"`
	Plans       []TripPlan `json:"plans"`
}
