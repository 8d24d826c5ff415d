package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tripforge/internal/config"
	"tripforge/internal/models/response_models"
	"tripforge/pkg/utils"
)

func newTestPlanner() *PlannerService {
	return &PlannerService{policy: config.DefaultPlannerPolicy(), logger: zap.NewNop()}
}

func testWindow(days int) (time.Time, time.Time) {
	start := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, days-1)
}

func cheapHotel() response_models.HotelOption {
	return response_models.HotelOption{Name: "Bay Inn", Price: 50, Rating: 4.2, Distance: 1.0}
}

func sampleAttractions() []response_models.AttractionOption {
	return []response_models.AttractionOption{
		{Name: "City Museum", Rating: 4.8, Distance: 1.2, IsIndoor: true},
		{Name: "Riverwalk", Rating: 4.6, Distance: 0.8},
		{Name: "Aquarium", Rating: 4.5, Distance: 2.0, IsIndoor: true},
		{Name: "Botanical Garden", Rating: 4.3, Distance: 3.1},
		{Name: "Science Center", Rating: 4.1, Distance: 2.4, IsIndoor: true},
		{Name: "Pier Park", Rating: 3.9, Distance: 4.0},
	}
}

func sampleRestaurants() []response_models.RestaurantOption {
	return []response_models.RestaurantOption{
		{Name: "Harbor Grill", Rating: 4.7, Distance: 0.5},
		{Name: "Casa Verde", Rating: 4.4, Distance: 1.1},
		{Name: "Noodle House", Rating: 4.2, Distance: 1.9},
	}
}

func TestBuildPlans_InvalidBudget(t *testing.T) {
	start, end := testWindow(3)
	_, err := newTestPlanner().BuildPlans(PlanInput{
		Hotels:    []response_models.HotelOption{cheapHotel()},
		Budget:    0,
		StartDate: start,
		EndDate:   end,
	})
	assert.ErrorIs(t, err, utils.ErrInvalidBudget)
}

func TestBuildPlans_InvalidDates(t *testing.T) {
	start, end := testWindow(3)
	_, err := newTestPlanner().BuildPlans(PlanInput{
		Hotels:    []response_models.HotelOption{cheapHotel()},
		Budget:    500,
		StartDate: end,
		EndDate:   start,
	})
	assert.ErrorIs(t, err, utils.ErrInvalidDates)
}

func TestBuildPlans_NoLodging_ReturnsNoPlans(t *testing.T) {
	start, end := testWindow(3)
	plans, err := newTestPlanner().BuildPlans(PlanInput{
		Budget:    500,
		StartDate: start,
		EndDate:   end,
	})
	require.NoError(t, err)
	assert.Empty(t, plans)
}

func TestBuildPlans_DefaultLengths(t *testing.T) {
	start, end := testWindow(3)
	plans, err := newTestPlanner().BuildPlans(PlanInput{
		Hotels:      []response_models.HotelOption{cheapHotel()},
		Attractions: sampleAttractions(),
		Restaurants: sampleRestaurants(),
		Budget:      500,
		StartDate:   start,
		EndDate:     end,
	})
	require.NoError(t, err)
	require.Len(t, plans, 3)
	for i, plan := range plans {
		assert.Equal(t, i+1, plan.Days)
		assert.Len(t, plan.Schedule, i+1)
	}
}

func TestBuildPlans_ShortWindowLimitsLengths(t *testing.T) {
	start, end := testWindow(2)
	plans, err := newTestPlanner().BuildPlans(PlanInput{
		Hotels:    []response_models.HotelOption{cheapHotel()},
		Budget:    500,
		StartDate: start,
		EndDate:   end,
	})
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, 1, plans[0].Days)
	assert.Equal(t, 2, plans[1].Days)
}

func TestBuildPlans_PreferredDaysCappedAtWindow(t *testing.T) {
	start, end := testWindow(3)
	plans, err := newTestPlanner().BuildPlans(PlanInput{
		Hotels:        []response_models.HotelOption{cheapHotel()},
		Budget:        500,
		StartDate:     start,
		EndDate:       end,
		PreferredDays: 5,
	})
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, 3, plans[0].Days)
}

func TestBuildPlans_CeilingRejectsUnaffordableLodging(t *testing.T) {
	start, end := testWindow(3)
	plans, err := newTestPlanner().BuildPlans(PlanInput{
		Hotels:    []response_models.HotelOption{{Name: "Grand Palace", Price: 150, Rating: 5.0, Distance: 0.3}},
		Budget:    100,
		StartDate: start,
		EndDate:   end,
	})
	require.NoError(t, err)
	// Even one night at 150 exceeds the 120 ceiling.
	assert.Empty(t, plans)
}

func TestBuildPlans_TotalsWithinCeiling(t *testing.T) {
	start, end := testWindow(3)
	budget := 500.0
	plans, err := newTestPlanner().BuildPlans(PlanInput{
		Hotels:      []response_models.HotelOption{cheapHotel()},
		Cars:        []response_models.CarOption{{Name: "Compact", Company: "Sunline", Price: 30}},
		Attractions: sampleAttractions(),
		Restaurants: sampleRestaurants(),
		Budget:      budget,
		StartDate:   start,
		EndDate:     end,
	})
	require.NoError(t, err)
	require.NotEmpty(t, plans)
	for _, plan := range plans {
		assert.LessOrEqual(t, plan.TotalCost, budget*1.2)
	}
}

func TestBuildPlans_NoCars_NoPickupSlots(t *testing.T) {
	start, end := testWindow(2)
	plans, err := newTestPlanner().BuildPlans(PlanInput{
		Hotels:      []response_models.HotelOption{cheapHotel()},
		Attractions: sampleAttractions(),
		Budget:      500,
		StartDate:   start,
		EndDate:     end,
	})
	require.NoError(t, err)
	require.NotEmpty(t, plans)
	for _, plan := range plans {
		assert.Nil(t, plan.Car)
		for _, day := range plan.Schedule {
			for _, act := range day.Activities {
				assert.NotEqual(t, response_models.ActivityPickup, act.Kind)
			}
		}
	}
}

func TestBuildPlans_NoRepeatsWithinPlan(t *testing.T) {
	start, end := testWindow(3)
	plans, err := newTestPlanner().BuildPlans(PlanInput{
		Hotels:      []response_models.HotelOption{cheapHotel()},
		Attractions: sampleAttractions(),
		Restaurants: sampleRestaurants(),
		Budget:      500,
		StartDate:   start,
		EndDate:     end,
	})
	require.NoError(t, err)
	for _, plan := range plans {
		seenAttractions := map[string]bool{}
		seenRestaurants := map[string]bool{}
		for _, day := range plan.Schedule {
			for _, act := range day.Activities {
				switch act.Kind {
				case response_models.ActivityAttraction:
					assert.False(t, seenAttractions[act.Name], "attraction %q repeated", act.Name)
					seenAttractions[act.Name] = true
				case response_models.ActivityMeal:
					assert.False(t, seenRestaurants[act.Name], "restaurant %q repeated", act.Name)
					seenRestaurants[act.Name] = true
				}
			}
		}
	}
}

func TestBuildPlans_RainRestrictsToIndoor(t *testing.T) {
	start, end := testWindow(1)
	plans, err := newTestPlanner().BuildPlans(PlanInput{
		Hotels:         []response_models.HotelOption{cheapHotel()},
		Attractions:    sampleAttractions(),
		ForecastByDate: map[string]string{utils.DateKey(start): "Rain"},
		Budget:         500,
		StartDate:      start,
		EndDate:        end,
	})
	require.NoError(t, err)
	require.Len(t, plans, 1)

	indoor := map[string]bool{"City Museum": true, "Aquarium": true, "Science Center": true}
	scheduled := 0
	for _, act := range plans[0].Schedule[0].Activities {
		if act.Kind == response_models.ActivityAttraction {
			scheduled++
			assert.True(t, indoor[act.Name], "outdoor attraction %q scheduled on a rainy day", act.Name)
		}
	}
	assert.Greater(t, scheduled, 0)
}

func TestBuildPlans_RainWithoutIndoorFallsBack(t *testing.T) {
	start, end := testWindow(1)
	outdoorOnly := []response_models.AttractionOption{
		{Name: "Riverwalk", Rating: 4.6, Distance: 0.8},
		{Name: "Pier Park", Rating: 3.9, Distance: 4.0},
	}
	plans, err := newTestPlanner().BuildPlans(PlanInput{
		Hotels:         []response_models.HotelOption{cheapHotel()},
		Attractions:    outdoorOnly,
		ForecastByDate: map[string]string{utils.DateKey(start): "Thunderstorm"},
		Budget:         500,
		StartDate:      start,
		EndDate:        end,
	})
	require.NoError(t, err)
	require.Len(t, plans, 1)

	scheduled := 0
	for _, act := range plans[0].Schedule[0].Activities {
		if act.Kind == response_models.ActivityAttraction {
			scheduled++
		}
	}
	assert.Greater(t, scheduled, 0)
}

func TestBuildPlans_MissingForecastDefaultsToClear(t *testing.T) {
	start, end := testWindow(1)
	plans, err := newTestPlanner().BuildPlans(PlanInput{
		Hotels:    []response_models.HotelOption{cheapHotel()},
		Budget:    500,
		StartDate: start,
		EndDate:   end,
	})
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, ForecastClear, plans[0].Schedule[0].Weather)
}

func TestComputeEnvelope_FoodWithinRemaining(t *testing.T) {
	p := newTestPlanner()
	car := &response_models.CarOption{Price: 60}
	env := p.computeEnvelope(3, response_models.HotelOption{Price: 100}, car, 500)

	// remaining = 500 - 100 - 60 = 340; food stays at 50*3 = 150.
	assert.InDelta(t, 150, env.foodBudget, 1e-9)
	assert.Equal(t, 9, env.maxAttractions) // floor((340-150)/20)
}

func TestComputeEnvelope_FoodHalvedWhenTight(t *testing.T) {
	p := newTestPlanner()
	car := &response_models.CarOption{Price: 40}
	env := p.computeEnvelope(3, response_models.HotelOption{Price: 120}, car, 200)

	// remaining = 40 < 150, so food halves to 20 and 20 is left for activities.
	assert.InDelta(t, 20, env.foodBudget, 1e-9)
	assert.Equal(t, 1, env.maxAttractions)
}

func TestComputeEnvelope_NeverNegative(t *testing.T) {
	p := newTestPlanner()
	env := p.computeEnvelope(2, response_models.HotelOption{Price: 300}, nil, 100)
	assert.GreaterOrEqual(t, env.foodBudget, 0.0)
	assert.GreaterOrEqual(t, env.maxAttractions, 0)
}

func TestSelectHotel_FirstAffordable(t *testing.T) {
	hotels := []response_models.HotelOption{
		{Name: "Grand Palace", Price: 400},
		{Name: "Bay Inn", Price: 90},
		{Name: "Budget Stop", Price: 40},
	}
	picked := selectHotel(hotels, 100)
	assert.Equal(t, "Bay Inn", picked.Name)
}

func TestSelectHotel_CheapestWhenNothingFits(t *testing.T) {
	hotels := []response_models.HotelOption{
		{Name: "Grand Palace", Price: 400},
		{Name: "Harbor Suites", Price: 250},
	}
	picked := selectHotel(hotels, 100)
	assert.Equal(t, "Harbor Suites", picked.Name)
}

func TestSelectCar_WithinTransportShare(t *testing.T) {
	p := newTestPlanner()
	cars := []response_models.CarOption{
		{Name: "SUV", Price: 90},
		{Name: "Compact", Price: 30},
	}
	// 0.3 * 500 = 150; SUV over 3 days costs 270, Compact 90.
	picked := p.selectCar(cars, 500, 3)
	require.NotNil(t, picked)
	assert.Equal(t, "Compact", picked.Name)
}

func TestSelectCar_EmptyPool(t *testing.T) {
	assert.Nil(t, newTestPlanner().selectCar(nil, 500, 3))
}

func TestIsPrecipitation(t *testing.T) {
	cases := []struct {
		label string
		wet   bool
	}{
		{"Rain", true},
		{"Light Rain", true},
		{"Drizzle", true},
		{"Thunderstorm", true},
		{"Snow", true},
		{"Tropical Storm", true},
		{"Clear", false},
		{"Clouds", false},
		{"Weather unavailable (future date)", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.wet, IsPrecipitation(tc.label), tc.label)
	}
}

func TestBuildPlans_LunchCostCappedAtFoodPerDay(t *testing.T) {
	start, end := testWindow(3)
	plans, err := newTestPlanner().BuildPlans(PlanInput{
		Hotels:      []response_models.HotelOption{cheapHotel()},
		Restaurants: sampleRestaurants(),
		Budget:      500,
		StartDate:   start,
		EndDate:     end,
	})
	require.NoError(t, err)
	for _, plan := range plans {
		for _, day := range plan.Schedule {
			for _, act := range day.Activities {
				if act.Kind == response_models.ActivityMeal {
					assert.LessOrEqual(t, act.Cost, 50.0)
				}
			}
		}
	}
}
