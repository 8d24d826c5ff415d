package services

import (
	"math"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"tripforge/internal/config"
	"tripforge/internal/models/response_models"
	"tripforge/pkg/utils"
)

// Slot labels of the fixed five-slot day template.
const (
	slotPickupTime    = "09:00 AM"
	slotMorningTime   = "09:30 AM"
	slotLunchTime     = "12:30 PM"
	slotAfternoonTime = "02:00 PM"
	slotReturnTime    = "07:00 PM"
)

var candidatePlanLengths = []int{1, 2, 3}

// PlanInput is everything BuildPlans needs, fully materialized before
// planning begins. The core never fetches or persists.
type PlanInput struct {
	Hotels         []response_models.HotelOption
	Cars           []response_models.CarOption
	Attractions    []response_models.AttractionOption
	Restaurants    []response_models.RestaurantOption
	ForecastByDate map[string]string
	Budget         float64
	StartDate      time.Time
	EndDate        time.Time
	PreferredDays  int // 0 means try lengths 1..3
}

type PlannerServiceInterface interface {
	BuildPlans(input PlanInput) ([]response_models.TripPlan, error)
}

type PlannerService struct {
	policy config.PlannerPolicy
	logger *zap.Logger
}

func NewPlannerService(policy config.PlannerPolicy, logger *zap.Logger) PlannerServiceInterface {
	return &PlannerService{policy: policy, logger: logger}
}

// budgetEnvelope is the per-length spending split. The remaining budget it
// is derived from uses unit lodging and transport prices; the realized
// plan total still charges both per day, and the ceiling check at the end
// is what ultimately rejects overruns.
type budgetEnvelope struct {
	foodBudget     float64
	maxAttractions int
}

// usedSets track scheduled candidates for exactly one plan-length attempt
// so nothing repeats within a plan. Reset between attempts.
type usedSets struct {
	attractions map[string]bool
	restaurants map[string]bool
}

func newUsedSets() *usedSets {
	return &usedSets{
		attractions: make(map[string]bool),
		restaurants: make(map[string]bool),
	}
}

func (p *PlannerService) BuildPlans(input PlanInput) ([]response_models.TripPlan, error) {
	if input.Budget <= 0 {
		return nil, utils.ErrInvalidBudget
	}
	if input.EndDate.Before(input.StartDate) {
		return nil, utils.ErrInvalidDates
	}

	plans := []response_models.TripPlan{}
	if len(input.Hotels) == 0 {
		// Lodging is the one hard prerequisite.
		p.logger.Warn("no lodging candidates, returning no plans")
		return plans, nil
	}

	totalDays := utils.DaysBetween(input.StartDate, input.EndDate)

	attractions := make([]response_models.AttractionOption, len(input.Attractions))
	copy(attractions, input.Attractions)
	sort.SliceStable(attractions, func(i, j int) bool {
		if attractions[i].Rating != attractions[j].Rating {
			return attractions[i].Rating > attractions[j].Rating
		}
		return attractions[i].Distance < attractions[j].Distance
	})

	restaurants := make([]response_models.RestaurantOption, len(input.Restaurants))
	copy(restaurants, input.Restaurants)
	sort.SliceStable(restaurants, func(i, j int) bool {
		if restaurants[i].Rating != restaurants[j].Rating {
			return restaurants[i].Rating > restaurants[j].Rating
		}
		return restaurants[i].Distance < restaurants[j].Distance
	})

	hotel := selectHotel(input.Hotels, input.Budget)
	car := p.selectCar(input.Cars, input.Budget, totalDays)

	for _, days := range p.planLengths(input.PreferredDays, totalDays) {
		plan := p.buildPlanOfLength(days, hotel, car, attractions, restaurants, input)
		ceiling := input.Budget * p.policy.CeilingFactor
		if plan.TotalCost > ceiling {
			p.logger.Debug("plan length infeasible, dropping",
				zap.Int("days", days),
				zap.Float64("total", plan.TotalCost),
				zap.Float64("ceiling", ceiling))
			continue
		}
		plans = append(plans, plan)
	}
	return plans, nil
}

func (p *PlannerService) planLengths(preferredDays, totalDays int) []int {
	if preferredDays > 0 {
		if preferredDays > totalDays {
			preferredDays = totalDays
		}
		return []int{preferredDays}
	}
	lengths := make([]int, 0, len(candidatePlanLengths))
	for _, l := range candidatePlanLengths {
		if l <= totalDays {
			lengths = append(lengths, l)
		}
	}
	return lengths
}

// selectHotel takes the first candidate affordable at face value, or the
// cheapest one when nothing fits.
func selectHotel(hotels []response_models.HotelOption, budget float64) response_models.HotelOption {
	for _, h := range hotels {
		if h.Price <= budget {
			return h
		}
	}
	cheapest := hotels[0]
	for _, h := range hotels[1:] {
		if h.Price < cheapest.Price {
			cheapest = h
		}
	}
	return cheapest
}

// selectCar is tolerant of an empty pool: plans simply proceed without
// transport.
func (p *PlannerService) selectCar(cars []response_models.CarOption, budget float64, totalDays int) *response_models.CarOption {
	if len(cars) == 0 {
		return nil
	}
	limit := p.policy.TransportBudgetShare * budget
	for _, c := range cars {
		if c.Price*float64(totalDays) <= limit {
			car := c
			return &car
		}
	}
	cheapest := cars[0]
	for _, c := range cars[1:] {
		if c.Price < cheapest.Price {
			cheapest = c
		}
	}
	return &cheapest
}

func (p *PlannerService) computeEnvelope(days int, hotel response_models.HotelOption, car *response_models.CarOption, budget float64) budgetEnvelope {
	carPrice := 0.0
	if car != nil {
		carPrice = car.Price
	}
	remaining := budget - hotel.Price - carPrice

	foodBudget := p.policy.FoodPerDay * float64(days)
	if foodBudget > remaining {
		// Halve what's left; the other half stays available for
		// attractions.
		foodBudget = remaining / 2
	}
	if foodBudget < 0 {
		foodBudget = 0
	}

	activityBudget := remaining - foodBudget
	if activityBudget < 0 {
		activityBudget = 0
	}
	return budgetEnvelope{
		foodBudget:     foodBudget,
		maxAttractions: int(math.Floor(activityBudget / p.policy.AttractionUnitCost)),
	}
}

func (p *PlannerService) buildPlanOfLength(
	days int,
	hotel response_models.HotelOption,
	car *response_models.CarOption,
	attractions []response_models.AttractionOption,
	restaurants []response_models.RestaurantOption,
	input PlanInput,
) response_models.TripPlan {
	env := p.computeEnvelope(days, hotel, car, input.Budget)
	used := newUsedSets()

	lunchCost := math.Min(p.policy.FoodPerDay, env.foodBudget/float64(days))

	plan := response_models.TripPlan{
		Days:  days,
		Hotel: hotel,
		Car:   car,
	}

	for i := 0; i < days; i++ {
		date := input.StartDate.AddDate(0, 0, i)
		label := input.ForecastByDate[utils.DateKey(date)]
		if label == "" {
			label = ForecastClear
		}

		dayPool := attractionsForForecast(attractions, label)

		day := response_models.PlanDay{
			Date:    utils.DateKey(date),
			Weather: label,
		}

		if car != nil {
			day.Activities = append(day.Activities, response_models.PlanActivity{
				Time:     slotPickupTime,
				Kind:     response_models.ActivityPickup,
				Name:     car.Name,
				Detail:   car.Company,
				Cost:     car.Price,
				Rating:   car.Rating,
				Distance: car.Distance,
				Reviews:  car.Reviews,
			})
			day.DailyCost += car.Price
		}

		if a, ok := nextAttraction(dayPool, used, env.maxAttractions); ok {
			day.Activities = append(day.Activities, attractionActivity(slotMorningTime, a, p.policy.AttractionUnitCost))
			day.DailyCost += p.policy.AttractionUnitCost
		}

		if r, ok := nextRestaurant(restaurants, used); ok {
			day.Activities = append(day.Activities, response_models.PlanActivity{
				Time:     slotLunchTime,
				Kind:     response_models.ActivityMeal,
				Name:     r.Name,
				Cost:     lunchCost,
				Rating:   r.Rating,
				Distance: r.Distance,
				Reviews:  r.Reviews,
			})
			day.DailyCost += lunchCost
		}

		if a, ok := nextAttraction(dayPool, used, env.maxAttractions); ok {
			day.Activities = append(day.Activities, attractionActivity(slotAfternoonTime, a, p.policy.AttractionUnitCost))
			day.DailyCost += p.policy.AttractionUnitCost
		}

		day.Activities = append(day.Activities, response_models.PlanActivity{
			Time: slotReturnTime,
			Kind: response_models.ActivityReturn,
			Name: hotel.Name,
		})

		// Nightly lodging is charged whether or not any slot filled.
		day.DailyCost += hotel.Price

		plan.Schedule = append(plan.Schedule, day)
		plan.TotalCost += day.DailyCost
	}

	return plan
}

func attractionActivity(slot string, a response_models.AttractionOption, cost float64) response_models.PlanActivity {
	return response_models.PlanActivity{
		Time:     slot,
		Kind:     response_models.ActivityAttraction,
		Name:     a.Name,
		Cost:     cost,
		Rating:   a.Rating,
		Distance: a.Distance,
		Reviews:  a.Reviews,
	}
}

// nextAttraction consumes the sorted pool greedily, skipping anything
// already scheduled in this plan attempt.
func nextAttraction(pool []response_models.AttractionOption, used *usedSets, maxAttractions int) (response_models.AttractionOption, bool) {
	if len(used.attractions) >= maxAttractions {
		return response_models.AttractionOption{}, false
	}
	for _, a := range pool {
		if !used.attractions[a.Name] {
			used.attractions[a.Name] = true
			return a, true
		}
	}
	return response_models.AttractionOption{}, false
}

func nextRestaurant(pool []response_models.RestaurantOption, used *usedSets) (response_models.RestaurantOption, bool) {
	for _, r := range pool {
		if !used.restaurants[r.Name] {
			used.restaurants[r.Name] = true
			return r, true
		}
	}
	return response_models.RestaurantOption{}, false
}

// precipitationIndicators match the labels the forecast feed emits for
// wet or stormy days.
var precipitationIndicators = []string{"Rain", "Drizzle", "Thunderstorm", "Snow", "Storm"}

func IsPrecipitation(label string) bool {
	for _, ind := range precipitationIndicators {
		if strings.Contains(label, ind) {
			return true
		}
	}
	return false
}

// attractionsForForecast applies the weather contingency: wet days are
// restricted to indoor candidates, reverting to the full pool when no
// indoor option exists.
func attractionsForForecast(pool []response_models.AttractionOption, label string) []response_models.AttractionOption {
	if !IsPrecipitation(label) {
		return pool
	}
	indoor := make([]response_models.AttractionOption, 0, len(pool))
	for _, a := range pool {
		if a.IsIndoor {
			indoor = append(indoor, a)
		}
	}
	if len(indoor) == 0 {
		return pool
	}
	return indoor
}
