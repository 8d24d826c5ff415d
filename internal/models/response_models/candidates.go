package response_models

// Candidate options are the typed pools the planning core consumes. Score
// is derived per request and never persisted.

type HotelOption struct {
	Name      string   `json:"name"`
	Price     float64  `json:"price"`
	Rating    float64  `json:"rating"`
	Distance  float64  `json:"distance_km"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Reviews   []string `json:"reviews"`
	Score     float64  `json:"score,omitempty"`
}

type CarOption struct {
	Name     string   `json:"name"`
	Company  string   `json:"company"`
	Price    float64  `json:"price"`
	Rating   float64  `json:"rating"`
	Distance float64  `json:"distance_km"`
	Reviews  []string `json:"reviews"`
	Score    float64  `json:"score,omitempty"`
}

type AttractionOption struct {
	Name       string   `json:"name"`
	Rating     float64  `json:"rating"`
	Distance   float64  `json:"distance_km"`
	Latitude   float64  `json:"latitude"`
	Longitude  float64  `json:"longitude"`
	IsIndoor   bool     `json:"is_indoor"`
	ImageScore float64  `json:"image_score"`
	Reviews    []string `json:"reviews"`
	Score      float64  `json:"score,omitempty"`
}

type RestaurantOption struct {
	Name      string   `json:"name"`
	Rating    float64  `json:"rating"`
	Distance  float64  `json:"distance_km"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Reviews   []string `json:"reviews"`
	Score     float64  `json:"score,omitempty"`
}
