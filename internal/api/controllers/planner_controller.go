package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripforge/internal/models/request_models"
	"tripforge/internal/models/response_models"
	"tripforge/internal/services"
	"tripforge/pkg/utils"
)

type PlannerController struct {
	geoService       services.GeoServiceInterface
	weatherService   services.WeatherServiceInterface
	catalogService   services.CatalogServiceInterface
	recommendService services.RecommendServiceInterface
	plannerService   services.PlannerServiceInterface
	itineraryService services.ItineraryServiceInterface
	promptService    services.PromptServiceInterface
	logger           *zap.Logger
}

func NewPlannerController(
	geoService services.GeoServiceInterface,
	weatherService services.WeatherServiceInterface,
	catalogService services.CatalogServiceInterface,
	recommendService services.RecommendServiceInterface,
	plannerService services.PlannerServiceInterface,
	itineraryService services.ItineraryServiceInterface,
	promptService services.PromptServiceInterface,
	logger *zap.Logger,
) *PlannerController {
	return &PlannerController{
		geoService:       geoService,
		weatherService:   weatherService,
		catalogService:   catalogService,
		recommendService: recommendService,
		plannerService:   plannerService,
		itineraryService: itineraryService,
		promptService:    promptService,
		logger:           logger,
	}
}

// BuildPlans godoc
// @Summary Build candidate trip plans
// @Description Assemble scored day-by-day plans for a single destination within budget
// @Tags Planner
// @Accept json
// @Produce json
// @Param request body request_models.PlanRequest true "Plan request payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /planner/plans [post]
func (p *PlannerController) BuildPlans(c *gin.Context) {
	var req request_models.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	start, err := utils.ParseDate(req.StartDate)
	if err != nil {
		utils.HandleServiceError(c, utils.ErrInvalidDates)
		return
	}
	end, err := utils.ParseDate(req.EndDate)
	if err != nil {
		utils.HandleServiceError(c, utils.ErrInvalidDates)
		return
	}

	plans, err := p.assemblePlans(c.Request.Context(), req.Destination, req.Budget, start, end, req.PreferredDays)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plans, "Plans built successfully")
}

// assemblePlans gathers the candidate pools and weather for one destination
// and runs the planning core over them.
func (p *PlannerController) assemblePlans(ctx context.Context, destination string, budget float64, start, end time.Time, preferredDays int) ([]response_models.TripPlan, error) {
	lat, lng, err := p.geoService.Coordinates(ctx, destination)
	if err != nil {
		p.logger.Warn("geocoding failed, continuing without coordinates",
			zap.String("destination", destination), zap.Error(err))
		lat, lng = 0, 0
	}

	hotels := p.catalogService.FetchHotels(ctx, destination, budget, start, end)
	hotelLat, hotelLng := lat, lng
	if len(hotels) > 0 {
		hotelLat, hotelLng = hotels[0].Latitude, hotels[0].Longitude
	}

	cars := p.catalogService.FetchCars(ctx, destination, budget, start, end, hotelLat, hotelLng, "", "")
	attractions := p.catalogService.FetchAttractions(ctx, destination, hotelLat, hotelLng)
	restaurants := p.catalogService.FetchRestaurants(ctx, destination, hotelLat, hotelLng)
	forecast := p.weatherService.ForecastByDate(ctx, destination, lat, lng, start, end)

	return p.plannerService.BuildPlans(services.PlanInput{
		Hotels:         hotels,
		Cars:           cars,
		Attractions:    attractions,
		Restaurants:    restaurants,
		ForecastByDate: forecast,
		Budget:         budget,
		StartDate:      start,
		EndDate:        end,
		PreferredDays:  preferredDays,
	})
}

// BuildItinerary godoc
// @Summary Build a multi-city itinerary
// @Description Render a narrative itinerary across one or more cities with a cost summary
// @Tags Planner
// @Accept json
// @Produce json
// @Param request body request_models.ItineraryRequest true "Itinerary request payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /planner/itinerary [post]
func (p *PlannerController) BuildItinerary(c *gin.Context) {
	var req request_models.ItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	start, err := utils.ParseDate(req.StartDate)
	if err != nil {
		utils.HandleServiceError(c, utils.ErrInvalidDates)
		return
	}
	end, err := utils.ParseDate(req.EndDate)
	if err != nil {
		utils.HandleServiceError(c, utils.ErrInvalidDates)
		return
	}

	ctx := c.Request.Context()
	input := services.ItineraryInput{
		Destinations:      req.Destinations,
		StartDate:         start,
		EndDate:           end,
		Budget:            req.Budget,
		PickUpTime:        req.PickUpTime,
		DropOffTime:       req.DropOffTime,
		HotelsByCity:      make(map[string][]response_models.HotelOption),
		AttractionsByCity: make(map[string][]response_models.AttractionOption),
		RestaurantsByCity: make(map[string][]response_models.RestaurantOption),
		WeatherByCity:     make(map[string]map[string]string),
	}

	for i, city := range req.Destinations {
		hotels, lat, lng := p.recommendService.RecommendHotels(ctx, city, req.Budget, start, end)
		input.HotelsByCity[city] = hotels
		input.AttractionsByCity[city] = p.recommendService.RecommendAttractions(ctx, city, lat, lng, false)
		input.RestaurantsByCity[city] = p.recommendService.RecommendRestaurants(ctx, city, lat, lng)
		input.WeatherByCity[city] = p.weatherService.ForecastByDate(ctx, city, lat, lng, start, end)

		// The rental covers the whole trip, picked up in the first city.
		if i == 0 {
			input.Cars = p.recommendService.RecommendCars(ctx, city, req.Budget, start, end, lat, lng, req.PickUpTime, req.DropOffTime)
		}
	}

	narrative, costs, err := p.itineraryService.BuildItinerary(input)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.ItineraryResponse{
		Narrative:   narrative,
		CostSummary: costs,
	}, "Itinerary built successfully")
}

// ParseAndPlan godoc
// @Summary Parse a free-text trip request and build plans
// @Description Extract destination, budget and preferences from text, then build plans
// @Tags Planner
// @Accept json
// @Produce json
// @Param request body request_models.ParsePlanRequest true "Free-text plan request"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /planner/parse [post]
func (p *PlannerController) ParseAndPlan(c *gin.Context) {
	var req request_models.ParsePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	ctx := c.Request.Context()
	parsed, err := p.promptService.ParseTripRequest(ctx, req.Text)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	start, err := utils.ParseDate(req.StartDate)
	if err != nil {
		start = time.Now().UTC()
	}
	end, err := utils.ParseDate(req.EndDate)
	if err != nil || end.Before(start) {
		end = start.AddDate(0, 0, 2)
	}

	plans, err := p.assemblePlans(ctx, parsed.Destination, parsed.Budget, start, end, 0)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.ParsedTripResponse{
		Destination: parsed.Destination,
		Budget:      parsed.Budget,
		Preferences: parsed.Preferences,
		Plans:       plans,
	}, "Plans built from prompt successfully")
}
