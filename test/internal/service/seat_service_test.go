package service

import (
	"context"
	"testing"

	"flight-booking/internal/model"
	"flight-booking/internal/service"
	apperrors "flight-booking/pkg/app_errors"
	repoMocks "flight-booking/test/internal/mocks/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupSeatService() (*repoMocks.FlightRepositoryMock, *repoMocks.SeatRepositoryMock, service.SeatService) {
	flightRepo := repoMocks.NewFlightRepositoryMock()
	seatRepo := repoMocks.NewSeatRepositoryMock()
	seatService := service.NewSeatService(repoMocks.NewTxManagerStub(), flightRepo, seatRepo)
	return flightRepo, seatRepo, seatService
}

func TestSeatService_CreateSeats(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - seats fill row-major across the fixed columns", func(t *testing.T) {
		flightRepo, seatRepo, seatService := setupSeatService()

		flightRepo.On("FindClass", ctx, 1, model.ClassEconomy).
			Return(&model.FlightClass{ID: 7, FlightID: 1, ClassType: model.ClassEconomy}, nil).Once()
		seatRepo.On("CountByClassForUpdate", ctx, mock.Anything, 7).Return(0, nil).Once()
		seatRepo.On("CreateSeats", ctx, mock.Anything, 7, []model.SeatPosition{
			{Row: 1, Column: "A"}, {Row: 1, Column: "B"}, {Row: 1, Column: "C"},
			{Row: 1, Column: "D"}, {Row: 1, Column: "E"}, {Row: 1, Column: "F"},
			{Row: 2, Column: "A"}, {Row: 2, Column: "B"},
		}).Return(nil).Once()
		flightRepo.On("UpdateClassTotalSeats", ctx, mock.Anything, 7, 8).Return(nil).Once()

		err := seatService.CreateSeats(ctx, 1, model.ClassEconomy, 8)
		require.NoError(t, err)

		flightRepo.AssertExpectations(t)
		seatRepo.AssertExpectations(t)
	})

	t.Run("Failed - seats already exist", func(t *testing.T) {
		flightRepo, seatRepo, seatService := setupSeatService()

		flightRepo.On("FindClass", ctx, 1, model.ClassEconomy).
			Return(&model.FlightClass{ID: 7, FlightID: 1, ClassType: model.ClassEconomy}, nil).Once()
		seatRepo.On("CountByClassForUpdate", ctx, mock.Anything, 7).Return(6, nil).Once()

		err := seatService.CreateSeats(ctx, 1, model.ClassEconomy, 8)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		seatRepo.AssertNotCalled(t, "CreateSeats", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failed - invalid class type", func(t *testing.T) {
		_, _, seatService := setupSeatService()

		err := seatService.CreateSeats(ctx, 1, model.ClassType("premium"), 8)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("Failed - class not found", func(t *testing.T) {
		flightRepo, _, seatService := setupSeatService()

		flightRepo.On("FindClass", ctx, 1, model.ClassFirst).
			Return(nil, apperrors.ErrClassNotFound).Once()

		err := seatService.CreateSeats(ctx, 1, model.ClassFirst, 4)
		assert.ErrorIs(t, err, apperrors.ErrClassNotFound)
	})
}

func TestSeatService_ResizeSeats(t *testing.T) {
	ctx := context.Background()

	t.Run("Grow - numbering continues after the existing tail", func(t *testing.T) {
		flightRepo, seatRepo, seatService := setupSeatService()

		flightRepo.On("FindClass", ctx, 1, model.ClassEconomy).
			Return(&model.FlightClass{ID: 7, FlightID: 1, ClassType: model.ClassEconomy}, nil).Once()
		seatRepo.On("CountByClassForUpdate", ctx, mock.Anything, 7).Return(6, nil).Once()
		seatRepo.On("CreateSeats", ctx, mock.Anything, 7, []model.SeatPosition{
			{Row: 2, Column: "A"}, {Row: 2, Column: "B"}, {Row: 2, Column: "C"}, {Row: 2, Column: "D"},
		}).Return(nil).Once()
		flightRepo.On("UpdateClassTotalSeats", ctx, mock.Anything, 7, 10).Return(nil).Once()

		err := seatService.ResizeSeats(ctx, 1, model.ClassEconomy, 10)
		require.NoError(t, err)

		seatRepo.AssertExpectations(t)
		flightRepo.AssertExpectations(t)
	})

	t.Run("Shrink - removes free tail seats", func(t *testing.T) {
		flightRepo, seatRepo, seatService := setupSeatService()

		flightRepo.On("FindClass", ctx, 1, model.ClassEconomy).
			Return(&model.FlightClass{ID: 7, FlightID: 1, ClassType: model.ClassEconomy}, nil).Once()
		seatRepo.On("CountByClassForUpdate", ctx, mock.Anything, 7).Return(8, nil).Once()
		seatRepo.On("TailSeatsForUpdate", ctx, mock.Anything, 7, 2).Return([]*model.Seat{
			{ID: 18, Row: 2, Column: "B", IsAvailable: true},
			{ID: 17, Row: 2, Column: "A", IsAvailable: true},
		}, nil).Once()
		seatRepo.On("DeleteSeats", ctx, mock.Anything, []int{18, 17}).Return(nil).Once()
		flightRepo.On("UpdateClassTotalSeats", ctx, mock.Anything, 7, 6).Return(nil).Once()

		err := seatService.ResizeSeats(ctx, 1, model.ClassEconomy, 6)
		require.NoError(t, err)

		seatRepo.AssertExpectations(t)
	})

	t.Run("Shrink - rejected when a tail seat is reserved", func(t *testing.T) {
		flightRepo, seatRepo, seatService := setupSeatService()

		flightRepo.On("FindClass", ctx, 1, model.ClassEconomy).
			Return(&model.FlightClass{ID: 7, FlightID: 1, ClassType: model.ClassEconomy}, nil).Once()
		seatRepo.On("CountByClassForUpdate", ctx, mock.Anything, 7).Return(8, nil).Once()
		seatRepo.On("TailSeatsForUpdate", ctx, mock.Anything, 7, 2).Return([]*model.Seat{
			{ID: 18, Row: 2, Column: "B", IsAvailable: false},
			{ID: 17, Row: 2, Column: "A", IsAvailable: true},
		}, nil).Once()

		err := seatService.ResizeSeats(ctx, 1, model.ClassEconomy, 6)
		assert.ErrorIs(t, err, apperrors.ErrSeatOccupied)
		seatRepo.AssertNotCalled(t, "DeleteSeats", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("No-op - same total only syncs the class", func(t *testing.T) {
		flightRepo, seatRepo, seatService := setupSeatService()

		flightRepo.On("FindClass", ctx, 1, model.ClassEconomy).
			Return(&model.FlightClass{ID: 7, FlightID: 1, ClassType: model.ClassEconomy}, nil).Once()
		seatRepo.On("CountByClassForUpdate", ctx, mock.Anything, 7).Return(6, nil).Once()
		flightRepo.On("UpdateClassTotalSeats", ctx, mock.Anything, 7, 6).Return(nil).Once()

		err := seatService.ResizeSeats(ctx, 1, model.ClassEconomy, 6)
		require.NoError(t, err)

		seatRepo.AssertNotCalled(t, "CreateSeats", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		seatRepo.AssertNotCalled(t, "DeleteSeats", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failed - zero total", func(t *testing.T) {
		_, _, seatService := setupSeatService()

		err := seatService.ResizeSeats(ctx, 1, model.ClassEconomy, 0)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}

func TestSeatService_BulkSetAvailability(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		_, seatRepo, seatService := setupSeatService()

		seatRepo.On("SetAvailability", ctx, mock.Anything, []int{1, 2, 3}, false).Return(nil).Once()

		err := seatService.BulkSetAvailability(ctx, []int{1, 2, 3}, false)
		require.NoError(t, err)
		seatRepo.AssertExpectations(t)
	})

	t.Run("Failed - empty seat list", func(t *testing.T) {
		_, _, seatService := setupSeatService()

		err := seatService.BulkSetAvailability(ctx, nil, true)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("Failed - unknown seat id", func(t *testing.T) {
		_, seatRepo, seatService := setupSeatService()

		seatRepo.On("SetAvailability", ctx, mock.Anything, []int{99}, true).
			Return(apperrors.ErrSeatNotFound).Once()

		err := seatService.BulkSetAvailability(ctx, []int{99}, true)
		assert.ErrorIs(t, err, apperrors.ErrSeatNotFound)
	})
}
