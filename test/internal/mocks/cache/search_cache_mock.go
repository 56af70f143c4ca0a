package cache

import (
	"context"
	"time"

	"flight-booking/internal/model"

	"github.com/stretchr/testify/mock"
)

type SearchCacheMock struct {
	mock.Mock
}

func NewSearchCacheMock() *SearchCacheMock {
	return &SearchCacheMock{}
}

func (m *SearchCacheMock) GetResults(ctx context.Context, departureAirportID, arrivalAirportID int, day time.Time) ([]model.SearchResult, error) {
	args := m.Called(ctx, departureAirportID, arrivalAirportID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SearchResult), args.Error(1)
}

func (m *SearchCacheMock) SetResults(ctx context.Context, departureAirportID, arrivalAirportID int, day time.Time, results []model.SearchResult) error {
	args := m.Called(ctx, departureAirportID, arrivalAirportID, day, results)
	return args.Error(0)
}

func (m *SearchCacheMock) AcquireSeatHold(ctx context.Context, seatID int, ttl time.Duration) (bool, error) {
	args := m.Called(ctx, seatID, ttl)
	return args.Bool(0), args.Error(1)
}

func (m *SearchCacheMock) ReleaseSeatHold(ctx context.Context, seatID int) error {
	args := m.Called(ctx, seatID)
	return args.Error(0)
}
