package repositories

import (
	"context"
	"time"

	"flight-booking/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

type FlightRepositoryMock struct {
	mock.Mock
}

func NewFlightRepositoryMock() *FlightRepositoryMock {
	return &FlightRepositoryMock{}
}

func (m *FlightRepositoryMock) FindByID(ctx context.Context, id int) (*model.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Flight), args.Error(1)
}

func (m *FlightRepositoryMock) ListCandidates(ctx context.Context, departureAirportID int, day time.Time) ([]*model.Flight, error) {
	args := m.Called(ctx, departureAirportID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Flight), args.Error(1)
}

func (m *FlightRepositoryMock) FindClass(ctx context.Context, flightID int, classType model.ClassType) (*model.FlightClass, error) {
	args := m.Called(ctx, flightID, classType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FlightClass), args.Error(1)
}

func (m *FlightRepositoryMock) FindClassByID(ctx context.Context, id int) (*model.FlightClass, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FlightClass), args.Error(1)
}

func (m *FlightRepositoryMock) UpdateClassTotalSeats(ctx context.Context, tx pgx.Tx, flightClassID int, totalSeats int) error {
	args := m.Called(ctx, tx, flightClassID, totalSeats)
	return args.Error(0)
}
