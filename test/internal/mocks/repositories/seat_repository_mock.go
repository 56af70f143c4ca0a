package repositories

import (
	"context"

	"flight-booking/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

type SeatRepositoryMock struct {
	mock.Mock
}

func NewSeatRepositoryMock() *SeatRepositoryMock {
	return &SeatRepositoryMock{}
}

func (m *SeatRepositoryMock) ListByFlight(ctx context.Context, flightID int) ([]*model.Seat, error) {
	args := m.Called(ctx, flightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Seat), args.Error(1)
}

func (m *SeatRepositoryMock) CountByClass(ctx context.Context, flightClassID int) (int, error) {
	args := m.Called(ctx, flightClassID)
	return args.Int(0), args.Error(1)
}

func (m *SeatRepositoryMock) CountAvailableByClass(ctx context.Context, flightClassID int) (int, error) {
	args := m.Called(ctx, flightClassID)
	return args.Int(0), args.Error(1)
}

func (m *SeatRepositoryMock) CreateSeats(ctx context.Context, tx pgx.Tx, flightClassID int, positions []model.SeatPosition) error {
	args := m.Called(ctx, tx, flightClassID, positions)
	return args.Error(0)
}

func (m *SeatRepositoryMock) CountByClassForUpdate(ctx context.Context, tx pgx.Tx, flightClassID int) (int, error) {
	args := m.Called(ctx, tx, flightClassID)
	return args.Int(0), args.Error(1)
}

func (m *SeatRepositoryMock) TailSeatsForUpdate(ctx context.Context, tx pgx.Tx, flightClassID int, limit int) ([]*model.Seat, error) {
	args := m.Called(ctx, tx, flightClassID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Seat), args.Error(1)
}

func (m *SeatRepositoryMock) DeleteSeats(ctx context.Context, tx pgx.Tx, ids []int) error {
	args := m.Called(ctx, tx, ids)
	return args.Error(0)
}

func (m *SeatRepositoryMock) FindByIDs(ctx context.Context, tx pgx.Tx, ids []int) ([]*model.Seat, error) {
	args := m.Called(ctx, tx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Seat), args.Error(1)
}

func (m *SeatRepositoryMock) Reserve(ctx context.Context, tx pgx.Tx, id int) error {
	args := m.Called(ctx, tx, id)
	return args.Error(0)
}

func (m *SeatRepositoryMock) SetAvailability(ctx context.Context, tx pgx.Tx, ids []int, available bool) error {
	args := m.Called(ctx, tx, ids, available)
	return args.Error(0)
}
