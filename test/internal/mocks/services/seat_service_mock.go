package services

import (
	"context"

	"flight-booking/internal/model"

	"github.com/stretchr/testify/mock"
)

type SeatServiceMock struct {
	mock.Mock
}

func NewSeatServiceMock() *SeatServiceMock {
	return &SeatServiceMock{}
}

func (m *SeatServiceMock) CreateSeats(ctx context.Context, flightID int, classType model.ClassType, totalSeats int) error {
	args := m.Called(ctx, flightID, classType, totalSeats)
	return args.Error(0)
}

func (m *SeatServiceMock) ResizeSeats(ctx context.Context, flightID int, classType model.ClassType, newTotal int) error {
	args := m.Called(ctx, flightID, classType, newTotal)
	return args.Error(0)
}

func (m *SeatServiceMock) ListByFlight(ctx context.Context, flightID int) ([]*model.Seat, error) {
	args := m.Called(ctx, flightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Seat), args.Error(1)
}

func (m *SeatServiceMock) BulkSetAvailability(ctx context.Context, seatIDs []int, available bool) error {
	args := m.Called(ctx, seatIDs, available)
	return args.Error(0)
}
