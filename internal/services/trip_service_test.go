package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripforge/internal/models/db_models"
	"tripforge/internal/models/request_models"
	"tripforge/pkg/utils"
)

type fakeTripRepo struct {
	trips []db_models.Trip
}

func (f *fakeTripRepo) Insert(ctx context.Context, trip *db_models.Trip) error {
	trip.ID = uuid.New()
	f.trips = append(f.trips, *trip)
	return nil
}

func (f *fakeTripRepo) ListByAccountId(ctx context.Context, accountID string, page, pageSize int) ([]db_models.Trip, error) {
	var out []db_models.Trip
	for _, trip := range f.trips {
		if trip.AccountID.String() == accountID {
			out = append(out, trip)
		}
	}
	return out, nil
}

func TestSaveTrip(t *testing.T) {
	repo := &fakeTripRepo{}
	svc := NewTripService(repo)
	accountID := uuid.New()

	tripID, err := svc.SaveTrip(context.Background(), accountID.String(), request_models.SaveTripRequest{
		Destinations: []string{"Tampa", "Orlando"},
		StartDate:    "2026-10-01",
		EndDate:      "2026-10-05",
		Days:         5,
		HotelName:    "Bay Inn",
		CostTotal:    430,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, tripID)
	require.Len(t, repo.trips, 1)
	assert.Equal(t, accountID, repo.trips[0].AccountID)
}

func TestSaveTrip_BadAccountID(t *testing.T) {
	svc := NewTripService(&fakeTripRepo{})
	_, err := svc.SaveTrip(context.Background(), "not-a-uuid", request_models.SaveTripRequest{
		Destinations: []string{"Tampa"},
		StartDate:    "2026-10-01",
		EndDate:      "2026-10-03",
	})
	assert.ErrorIs(t, err, utils.ErrAccountNotFound)
}

func TestSaveTrip_BadDates(t *testing.T) {
	svc := NewTripService(&fakeTripRepo{})
	_, err := svc.SaveTrip(context.Background(), uuid.NewString(), request_models.SaveTripRequest{
		Destinations: []string{"Tampa"},
		StartDate:    "2026-10-05",
		EndDate:      "2026-10-01",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidDates)
}

func TestListTrips(t *testing.T) {
	repo := &fakeTripRepo{}
	svc := NewTripService(repo)
	accountID := uuid.New()

	_, err := svc.SaveTrip(context.Background(), accountID.String(), request_models.SaveTripRequest{
		Destinations: []string{"Tampa"},
		StartDate:    "2026-10-01",
		EndDate:      "2026-10-03",
		Days:         3,
	})
	require.NoError(t, err)

	trips, err := svc.ListTrips(context.Background(), accountID.String(), 1, 10)
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, []string{"Tampa"}, trips[0].Destinations)
	assert.Equal(t, "2026-10-01", trips[0].StartDate)
	assert.Equal(t, "2026-10-03", trips[0].EndDate)
}
