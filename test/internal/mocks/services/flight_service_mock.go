package services

import (
	"context"

	"flight-booking/internal/model"

	"github.com/stretchr/testify/mock"
)

type FlightServiceMock struct {
	mock.Mock
}

func NewFlightServiceMock() *FlightServiceMock {
	return &FlightServiceMock{}
}

func (m *FlightServiceMock) Search(ctx context.Context, req model.SearchRequest) ([]model.SearchResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SearchResult), args.Error(1)
}

func (m *FlightServiceMock) GetByID(ctx context.Context, id int) (*model.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Flight), args.Error(1)
}
