package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tripforge/internal/services"
	"tripforge/pkg/utils"
)

type CatalogController struct {
	recommendService services.RecommendServiceInterface
}

func NewCatalogController(recommendService services.RecommendServiceInterface) *CatalogController {
	return &CatalogController{
		recommendService: recommendService,
	}
}

type catalogQuery struct {
	Destination string  `form:"destination" binding:"required"`
	Budget      float64 `form:"budget"`
	StartDate   string  `form:"start_date"`
	EndDate     string  `form:"end_date"`
}

func (q *catalogQuery) window() (time.Time, time.Time) {
	start, err := utils.ParseDate(q.StartDate)
	if err != nil {
		start = time.Now().UTC()
	}
	end, err := utils.ParseDate(q.EndDate)
	if err != nil || end.Before(start) {
		end = start
	}
	return start, end
}

// Hotels godoc
// @Summary List recommended hotels
// @Description Return scored hotel recommendations for a destination
// @Tags Catalog
// @Produce json
// @Param destination query string true "Destination city"
// @Param budget query number false "Trip budget"
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} utils.APIResponse
// @Router /catalog/hotels [get]
func (cc *CatalogController) Hotels(c *gin.Context) {
	var q catalogQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	start, end := q.window()
	hotels, _, _ := cc.recommendService.RecommendHotels(c.Request.Context(), q.Destination, q.Budget, start, end)
	utils.RespondSuccess(c, hotels, "Hotels fetched successfully")
}

// Cars godoc
// @Summary List recommended rental cars
// @Description Return scored car recommendations for a destination
// @Tags Catalog
// @Produce json
// @Param destination query string true "Destination city"
// @Param budget query number false "Trip budget"
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} utils.APIResponse
// @Router /catalog/cars [get]
func (cc *CatalogController) Cars(c *gin.Context) {
	var q catalogQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	start, end := q.window()
	_, lat, lng := cc.recommendService.RecommendHotels(c.Request.Context(), q.Destination, q.Budget, start, end)
	cars := cc.recommendService.RecommendCars(c.Request.Context(), q.Destination, q.Budget, start, end, lat, lng, "", "")
	utils.RespondSuccess(c, cars, "Cars fetched successfully")
}

// Attractions godoc
// @Summary List recommended attractions
// @Description Return scored attraction recommendations for a destination
// @Tags Catalog
// @Produce json
// @Param destination query string true "Destination city"
// @Param budget query number false "Trip budget"
// @Param indoor query bool false "Prefer indoor attractions"
// @Success 200 {object} utils.APIResponse
// @Router /catalog/attractions [get]
func (cc *CatalogController) Attractions(c *gin.Context) {
	var q catalogQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	start, end := q.window()
	preferIndoor := c.Query("indoor") == "true"
	_, lat, lng := cc.recommendService.RecommendHotels(c.Request.Context(), q.Destination, q.Budget, start, end)
	attractions := cc.recommendService.RecommendAttractions(c.Request.Context(), q.Destination, lat, lng, preferIndoor)
	utils.RespondSuccess(c, attractions, "Attractions fetched successfully")
}

// Restaurants godoc
// @Summary List recommended restaurants
// @Description Return scored restaurant recommendations for a destination
// @Tags Catalog
// @Produce json
// @Param destination query string true "Destination city"
// @Param budget query number false "Trip budget"
// @Success 200 {object} utils.APIResponse
// @Router /catalog/restaurants [get]
func (cc *CatalogController) Restaurants(c *gin.Context) {
	var q catalogQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	start, end := q.window()
	_, lat, lng := cc.recommendService.RecommendHotels(c.Request.Context(), q.Destination, q.Budget, start, end)
	restaurants := cc.recommendService.RecommendRestaurants(c.Request.Context(), q.Destination, lat, lng)
	utils.RespondSuccess(c, restaurants, "Restaurants fetched successfully")
}
