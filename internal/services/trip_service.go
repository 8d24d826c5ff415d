package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"tripforge/internal/models/db_models"
	"tripforge/internal/models/request_models"
	"tripforge/internal/models/response_models"
	"tripforge/internal/repositories"
	"tripforge/pkg/utils"
)

type TripServiceInterface interface {
	SaveTrip(ctx context.Context, accountID string, request request_models.SaveTripRequest) (string, error)
	ListTrips(ctx context.Context, accountID string, page, pageSize int) ([]response_models.TripResponse, error)
}

type TripService struct {
	tripRepo repositories.TripRepository
}

func NewTripService(tripRepo repositories.TripRepository) TripServiceInterface {
	return &TripService{tripRepo: tripRepo}
}

func (t *TripService) SaveTrip(ctx context.Context, accountID string, request request_models.SaveTripRequest) (string, error) {
	ownerID, err := uuid.Parse(accountID)
	if err != nil {
		return "", utils.ErrAccountNotFound
	}

	start, err := utils.ParseDate(request.StartDate)
	if err != nil {
		return "", utils.ErrInvalidDates
	}
	end, err := utils.ParseDate(request.EndDate)
	if err != nil || end.Before(start) {
		return "", utils.ErrInvalidDates
	}

	trip := &db_models.Trip{
		AccountID:    ownerID,
		Destinations: pq.StringArray(request.Destinations),
		StartDate:    start.Unix(),
		EndDate:      end.Unix(),
		Days:         request.Days,
		HotelName:    request.HotelName,
		CarName:      request.CarName,
		CostHotels:   request.CostHotels,
		CostCars:     request.CostCars,
		CostFood:     request.CostFood,
		CostTotal:    request.CostTotal,
	}
	if err := t.tripRepo.Insert(ctx, trip); err != nil {
		return "", utils.ErrDatabaseError
	}
	return trip.ID.String(), nil
}

func (t *TripService) ListTrips(ctx context.Context, accountID string, page, pageSize int) ([]response_models.TripResponse, error) {
	trips, err := t.tripRepo.ListByAccountId(ctx, accountID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.TripResponse, 0, len(trips))
	for _, trip := range trips {
		out = append(out, response_models.TripResponse{
			ID:           trip.ID.String(),
			Destinations: []string(trip.Destinations),
			StartDate:    utils.DateKey(time.Unix(trip.StartDate, 0).UTC()),
			EndDate:      utils.DateKey(time.Unix(trip.EndDate, 0).UTC()),
			Days:         trip.Days,
			HotelName:    trip.HotelName,
			CarName:      trip.CarName,
			CostTotal:    trip.CostTotal,
		})
	}
	return out, nil
}
