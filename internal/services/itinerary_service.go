package services

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"tripforge/internal/config"
	"tripforge/internal/models/response_models"
	"tripforge/pkg/utils"
)

const (
	placeholderNightlyRate = 100.0
	reviewPreviewLength    = 50
	activityDuration       = 90 * time.Minute
)

// ItineraryInput is the multi-city variant's fully materialized input.
type ItineraryInput struct {
	Destinations      []string
	StartDate         time.Time
	EndDate           time.Time
	HotelsByCity      map[string][]response_models.HotelOption
	Cars              []response_models.CarOption
	AttractionsByCity map[string][]response_models.AttractionOption
	RestaurantsByCity map[string][]response_models.RestaurantOption
	WeatherByCity     map[string]map[string]string
	Budget            float64
	PickUpTime        string
	DropOffTime       string
}

type ItineraryServiceInterface interface {
	BuildItinerary(input ItineraryInput) (string, response_models.CostSummary, error)
	PartitionDays(destinations []string, totalDays int) map[string]int
}

type ItineraryService struct {
	policy config.PlannerPolicy
	logger *zap.Logger
}

func NewItineraryService(policy config.PlannerPolicy, logger *zap.Logger) ItineraryServiceInterface {
	return &ItineraryService{policy: policy, logger: logger}
}

// costAccumulator keeps the running category totals for a trip. Totals
// only ever grow; the summary is a projection taken at the end.
type costAccumulator struct {
	hotels float64
	cars   float64
	food   float64
}

func (c *costAccumulator) addHotels(amount float64) { c.hotels += amount }
func (c *costAccumulator) addCars(amount float64)   { c.cars += amount }
func (c *costAccumulator) addFood(amount float64)   { c.food += amount }

func (c *costAccumulator) summary() response_models.CostSummary {
	return response_models.CostSummary{
		Hotels: c.hotels,
		Cars:   c.cars,
		Food:   c.food,
		Total:  c.hotels + c.cars + c.food,
	}
}

// PartitionDays splits the trip as evenly as possible across the ordered
// destination list, giving each of the first totalDays%len(destinations)
// cities one extra day.
func (s *ItineraryService) PartitionDays(destinations []string, totalDays int) map[string]int {
	cityDays := make(map[string]int, len(destinations))
	if len(destinations) == 0 {
		return cityDays
	}

	base := totalDays / len(destinations)
	if base < 1 {
		base = 1
	}
	remainder := totalDays % len(destinations)

	for _, city := range destinations {
		days := base
		if remainder > 0 {
			days++
			remainder--
		}
		cityDays[city] = days
	}
	return cityDays
}

// cityForOffset maps an elapsed-day offset from the trip start to the
// owning city: the first city whose cumulative allotment exceeds it.
func cityForOffset(destinations []string, cityDays map[string]int, offset int) string {
	cumulative := 0
	for _, city := range destinations {
		cumulative += cityDays[city]
		if offset < cumulative {
			return city
		}
	}
	return destinations[0]
}

func (s *ItineraryService) BuildItinerary(input ItineraryInput) (string, response_models.CostSummary, error) {
	if len(input.Destinations) == 0 {
		return "", response_models.CostSummary{}, utils.ErrNoDestinations
	}
	if input.Budget <= 0 {
		return "", response_models.CostSummary{}, utils.ErrInvalidBudget
	}
	if input.EndDate.Before(input.StartDate) {
		return "", response_models.CostSummary{}, utils.ErrInvalidDates
	}

	totalDays := utils.DaysBetween(input.StartDate, input.EndDate)
	cityDays := s.PartitionDays(input.Destinations, totalDays)

	costs := &costAccumulator{}
	costs.addFood(s.policy.FoodPerDay * float64(totalDays))

	var car *response_models.CarOption
	if len(input.Cars) > 0 {
		car = &input.Cars[0]
		costs.addCars(car.Price)
	}

	days := make([]response_models.PlanDay, 0, totalDays)
	for offset := 0; offset < totalDays; offset++ {
		date := input.StartDate.AddDate(0, 0, offset)
		city := cityForOffset(input.Destinations, cityDays, offset)

		hotel := PlaceholderHotel()
		if pool := input.HotelsByCity[city]; len(pool) > 0 {
			hotel = pool[0]
		}

		weather := ForecastClear
		if byDate := input.WeatherByCity[city]; byDate != nil {
			if label, ok := byDate[utils.DateKey(date)]; ok {
				weather = label
			}
		}

		nightly := hotel.Price
		if nightly <= 0 {
			nightly = placeholderNightlyRate
		}
		costs.addHotels(nightly)

		attractions := input.AttractionsByCity[city]
		if IsPrecipitation(weather) {
			attractions = attractionsForForecast(attractions, weather)
		}

		day := s.buildNarrativeDay(narrativeDayInput{
			date:        date,
			city:        city,
			weather:     weather,
			hotel:       hotel,
			nightly:     nightly,
			car:         car,
			attractions: attractions,
			restaurants: input.RestaurantsByCity[city],
			cityDayLen:  cityDays[city],
			dayInCity:   dayIndexInCity(input.Destinations, cityDays, offset),
			isFirstDay:  offset == 0,
			isLastDay:   offset == totalDays-1,
			pickUpTime:  input.PickUpTime,
			dropOffTime: input.DropOffTime,
		})
		days = append(days, day)
	}

	return renderDays(days), costs.summary(), nil
}

// dayIndexInCity counts how many of the preceding trip days already
// belonged to the offset's city.
func dayIndexInCity(destinations []string, cityDays map[string]int, offset int) int {
	cumulative := 0
	for _, city := range destinations {
		next := cumulative + cityDays[city]
		if offset < next {
			return offset - cumulative
		}
		cumulative = next
	}
	return 0
}

type narrativeDayInput struct {
	date        time.Time
	city        string
	weather     string
	hotel       response_models.HotelOption
	nightly     float64
	car         *response_models.CarOption
	attractions []response_models.AttractionOption
	restaurants []response_models.RestaurantOption
	cityDayLen  int
	dayInCity   int
	isFirstDay  bool
	isLastDay   bool
	pickUpTime  string
	dropOffTime string
}

func (s *ItineraryService) buildNarrativeDay(in narrativeDayInput) response_models.PlanDay {
	day := response_models.PlanDay{
		Date:    utils.DateKey(in.date),
		City:    in.city,
		Weather: in.weather,
	}

	day.Activities = append(day.Activities, response_models.PlanActivity{
		Kind:   response_models.ActivityStay,
		Name:   in.hotel.Name,
		Cost:   in.nightly,
		Rating: in.hotel.Rating,
	})
	day.DailyCost += in.nightly

	if in.car != nil {
		switch {
		case in.isFirstDay:
			day.Activities = append(day.Activities, response_models.PlanActivity{
				Time:   in.pickUpTime,
				Kind:   response_models.ActivityPickup,
				Name:   in.car.Name,
				Detail: in.car.Company,
				Cost:   in.car.Price,
			})
		case in.isLastDay:
			day.Activities = append(day.Activities, response_models.PlanActivity{
				Time:   in.dropOffTime,
				Kind:   response_models.ActivityDropoff,
				Name:   in.car.Name,
				Detail: in.car.Company,
			})
		default:
			day.Activities = append(day.Activities, response_models.PlanActivity{
				Kind:   response_models.ActivityTravel,
				Name:   in.car.Name,
				Detail: in.car.Company,
				Cost:   in.car.Price,
			})
		}
	}

	// Per-day slices walk the city's pool so consecutive days in the
	// same city see different candidates.
	perDay := perDayCount(len(in.attractions), in.cityDayLen)
	dayAttractions := sliceWindowAttractions(in.attractions, in.dayInCity*perDay, perDay)
	if len(dayAttractions) == 0 {
		dayAttractions = []response_models.AttractionOption{PlaceholderAttraction()}
	}

	start := utils.ParseClock(firstDayClock(in.isFirstDay, in.pickUpTime, s.policy.DayStart), s.policy.DayStart)
	for _, attr := range dayAttractions {
		travel := utils.EstimateTravelMinutes(attr.Distance, s.policy.AssumedSpeedKmh)
		day.Activities = append(day.Activities, response_models.PlanActivity{
			Time:          utils.FormatClock(start),
			Kind:          response_models.ActivityAttraction,
			Name:          attr.Name,
			Rating:        attr.Rating,
			Distance:      attr.Distance,
			TravelMinutes: travel,
			Reviews:       attr.Reviews,
		})
		start = start.Add(activityDuration + time.Duration(travel)*time.Minute)
	}

	perDayRest := perDayCount(len(in.restaurants), in.cityDayLen)
	dayRestaurants := sliceWindowRestaurants(in.restaurants, in.dayInCity*perDayRest, perDayRest)
	if len(dayRestaurants) == 0 {
		dayRestaurants = []response_models.RestaurantOption{PlaceholderRestaurant()}
	}

	start = utils.ParseClock(s.policy.DinnerStart, "18:00")
	for _, rest := range dayRestaurants {
		travel := utils.EstimateTravelMinutes(rest.Distance, s.policy.AssumedSpeedKmh)
		day.Activities = append(day.Activities, response_models.PlanActivity{
			Time:          utils.FormatClock(start),
			Kind:          response_models.ActivityMeal,
			Name:          rest.Name,
			Rating:        rest.Rating,
			Distance:      rest.Distance,
			TravelMinutes: travel,
			Reviews:       rest.Reviews,
		})
		start = start.Add(activityDuration + time.Duration(travel)*time.Minute)
	}

	return day
}

func firstDayClock(isFirstDay bool, pickUpTime, dayStart string) string {
	if isFirstDay && pickUpTime != "" {
		return pickUpTime
	}
	return dayStart
}

func perDayCount(total, cityDays int) int {
	if total == 0 || cityDays == 0 {
		return 1
	}
	per := total / cityDays
	if per < 1 {
		per = 1
	}
	return per
}

func sliceWindowAttractions(pool []response_models.AttractionOption, start, count int) []response_models.AttractionOption {
	if start >= len(pool) {
		return nil
	}
	end := start + count
	if end > len(pool) {
		end = len(pool)
	}
	return pool[start:end]
}

func sliceWindowRestaurants(pool []response_models.RestaurantOption, start, count int) []response_models.RestaurantOption {
	if start >= len(pool) {
		return nil
	}
	end := start + count
	if end > len(pool) {
		end = len(pool)
	}
	return pool[start:end]
}

// renderDays is the single narrative renderer shared by the single- and
// multi-city flows.
func renderDays(days []response_models.PlanDay) string {
	var b strings.Builder
	for i, day := range days {
		if i > 0 {
			b.WriteString("\n")
		}
		renderDay(&b, day)
	}
	return b.String()
}

func renderDay(b *strings.Builder, day response_models.PlanDay) {
	if day.City != "" {
		fmt.Fprintf(b, "**Day %s in %s**\n", day.Date, day.City)
	} else {
		fmt.Fprintf(b, "**Day %s**\n", day.Date)
	}
	fmt.Fprintf(b, "- **Weather Forecast**: %s\n", day.Weather)

	attractionHeader := false
	mealHeader := false
	for _, act := range day.Activities {
		switch act.Kind {
		case response_models.ActivityStay:
			fmt.Fprintf(b, "- **Stay at**: %s ($%.1f)\n", act.Name, act.Cost)
		case response_models.ActivityPickup:
			fmt.Fprintf(b, "- **Pick up car at %s**: %s from %s ($%.1f)\n", act.Time, act.Name, act.Detail, act.Cost)
		case response_models.ActivityDropoff:
			fmt.Fprintf(b, "- **Drop off car at %s**: %s from %s\n", act.Time, act.Name, act.Detail)
		case response_models.ActivityTravel:
			fmt.Fprintf(b, "- **Travel with**: %s from %s ($%.1f)\n", act.Name, act.Detail, act.Cost)
		case response_models.ActivityAttraction:
			if !attractionHeader {
				b.WriteString("- **Attractions to Visit:**\n")
				attractionHeader = true
			}
			fmt.Fprintf(b, "  - %s - %s (Rating: %.1f, Distance: %.1f km, Travel: ~%.0f min)\n",
				act.Time, act.Name, act.Rating, act.Distance, act.TravelMinutes)
			renderReviews(b, act.Reviews)
		case response_models.ActivityMeal:
			if !mealHeader {
				b.WriteString("- **Restaurants to Dine at:**\n")
				mealHeader = true
			}
			fmt.Fprintf(b, "  - %s - %s (Rating: %.1f, Distance: %.1f km, Travel: ~%.0f min)\n",
				act.Time, act.Name, act.Rating, act.Distance, act.TravelMinutes)
			renderReviews(b, act.Reviews)
		case response_models.ActivityReturn:
			fmt.Fprintf(b, "- **Return to**: %s\n", act.Name)
		}
	}
}

func renderReviews(b *strings.Builder, reviews []string) {
	for _, review := range reviews {
		preview := review
		if len(preview) > reviewPreviewLength {
			preview = preview[:reviewPreviewLength]
		}
		fmt.Fprintf(b, "    - Review: %s...\n", preview)
	}
}

// RenderCostSummary formats the category totals the way the narrative
// endpoints present them.
func RenderCostSummary(cs response_models.CostSummary) string {
	return fmt.Sprintf(
		"**Cost Summary:**\n- Hotels: $%.1f\n- Car Rental: $%.1f\n- Estimated Food: $%.1f\n- **Total Estimated Cost**: $%.1f\n",
		cs.Hotels, cs.Cars, cs.Food, cs.Total)
}
