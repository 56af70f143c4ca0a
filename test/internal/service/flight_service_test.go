package service

import (
	"context"
	"testing"
	"time"

	"flight-booking/internal/model"
	"flight-booking/internal/service"
	apperrors "flight-booking/pkg/app_errors"
	cacheMocks "flight-booking/test/internal/mocks/cache"
	repoMocks "flight-booking/test/internal/mocks/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func day(value string) time.Time {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return d
}

func seg(flightID, sequence, airportID int, at string) model.Segment {
	t, err := time.Parse("2006-01-02 15:04", at)
	if err != nil {
		panic(err)
	}
	return model.Segment{FlightID: flightID, Sequence: sequence, AirportID: airportID, Time: t}
}

func TestFlightService_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("Failed - malformed date", func(t *testing.T) {
		flightService := service.NewFlightService(repoMocks.NewFlightRepositoryMock(), repoMocks.NewSeatRepositoryMock(), nil)

		_, err := flightService.Search(ctx, model.SearchRequest{
			DepartureAirportID: 1, ArrivalAirportID: 2, DepartureDate: "03-09-2026",
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("Failed - same departure and arrival airport", func(t *testing.T) {
		flightService := service.NewFlightService(repoMocks.NewFlightRepositoryMock(), repoMocks.NewSeatRepositoryMock(), nil)

		_, err := flightService.Search(ctx, model.SearchRequest{
			DepartureAirportID: 1, ArrivalAirportID: 1, DepartureDate: "2026-09-03",
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("Success - multi-segment flight matched by sub-route", func(t *testing.T) {
		flightRepo := repoMocks.NewFlightRepositoryMock()
		seatRepo := repoMocks.NewSeatRepositoryMock()
		flightService := service.NewFlightService(flightRepo, seatRepo, nil)

		// CGK -> SUB -> DPS, searching SUB -> DPS.
		flight := &model.Flight{
			ID: 1, FlightNumber: "GA-204", AirlineID: 1, AirlineName: "Garuda",
			Segments: []model.Segment{
				seg(1, 1, 10, "2026-09-03 06:00"),
				seg(1, 2, 20, "2026-09-03 08:30"),
				seg(1, 3, 30, "2026-09-03 10:15"),
			},
			Classes: []model.FlightClass{
				{ID: 5, FlightID: 1, ClassType: model.ClassEconomy, Price: 120, TotalSeats: 60},
			},
		}
		flightRepo.On("ListCandidates", ctx, 20, day("2026-09-03")).Return([]*model.Flight{flight}, nil).Once()
		seatRepo.On("CountAvailableByClass", ctx, 5).Return(42, nil).Once()

		results, err := flightService.Search(ctx, model.SearchRequest{
			DepartureAirportID: 20, ArrivalAirportID: 30, DepartureDate: "2026-09-03",
		})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, 2, results[0].DepartureSegment.Sequence)
		assert.Equal(t, 3, results[0].ArrivalSegment.Sequence)
		require.Len(t, results[0].Classes, 1)
		assert.Equal(t, 42, results[0].Classes[0].AvailableSeats)
		assert.False(t, results[0].Classes[0].FullyBooked)
	})

	t.Run("Success - arrival before departure is not a route", func(t *testing.T) {
		flightRepo := repoMocks.NewFlightRepositoryMock()
		flightService := service.NewFlightService(flightRepo, repoMocks.NewSeatRepositoryMock(), nil)

		// DPS -> SUB flight cannot serve a SUB -> DPS search.
		flight := &model.Flight{
			ID: 2, FlightNumber: "QZ-110",
			Segments: []model.Segment{
				seg(2, 1, 30, "2026-09-03 06:00"),
				seg(2, 2, 20, "2026-09-03 07:45"),
			},
		}
		flightRepo.On("ListCandidates", ctx, 20, day("2026-09-03")).Return([]*model.Flight{flight}, nil).Once()

		results, err := flightService.Search(ctx, model.SearchRequest{
			DepartureAirportID: 20, ArrivalAirportID: 30, DepartureDate: "2026-09-03",
		})
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("Success - earliest departure segment wins when several match", func(t *testing.T) {
		flightRepo := repoMocks.NewFlightRepositoryMock()
		seatRepo := repoMocks.NewSeatRepositoryMock()
		flightService := service.NewFlightService(flightRepo, seatRepo, nil)

		// Circular route touches the departure airport twice on the same day.
		flight := &model.Flight{
			ID: 3, FlightNumber: "JT-330",
			Segments: []model.Segment{
				seg(3, 4, 30, "2026-09-03 18:00"),
				seg(3, 1, 20, "2026-09-03 06:00"),
				seg(3, 2, 30, "2026-09-03 08:00"),
				seg(3, 3, 20, "2026-09-03 12:00"),
			},
		}
		flightRepo.On("ListCandidates", ctx, 20, day("2026-09-03")).Return([]*model.Flight{flight}, nil).Once()

		results, err := flightService.Search(ctx, model.SearchRequest{
			DepartureAirportID: 20, ArrivalAirportID: 30, DepartureDate: "2026-09-03",
		})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, 1, results[0].DepartureSegment.Sequence)
		assert.Equal(t, 2, results[0].ArrivalSegment.Sequence)
	})

	t.Run("Success - departure on another day is skipped", func(t *testing.T) {
		flightRepo := repoMocks.NewFlightRepositoryMock()
		flightService := service.NewFlightService(flightRepo, repoMocks.NewSeatRepositoryMock(), nil)

		flight := &model.Flight{
			ID: 4, FlightNumber: "GA-700",
			Segments: []model.Segment{
				seg(4, 1, 20, "2026-09-04 06:00"),
				seg(4, 2, 30, "2026-09-04 08:00"),
			},
		}
		flightRepo.On("ListCandidates", ctx, 20, day("2026-09-03")).Return([]*model.Flight{flight}, nil).Once()

		results, err := flightService.Search(ctx, model.SearchRequest{
			DepartureAirportID: 20, ArrivalAirportID: 30, DepartureDate: "2026-09-03",
		})
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("Success - legacy fully booked sentinel", func(t *testing.T) {
		flightRepo := repoMocks.NewFlightRepositoryMock()
		seatRepo := repoMocks.NewSeatRepositoryMock()
		flightService := service.NewFlightService(flightRepo, seatRepo, nil)

		flight := &model.Flight{
			ID: 5, FlightNumber: model.FullyBookedFlightNumber,
			Segments: []model.Segment{
				seg(5, 1, 20, "2026-09-03 06:00"),
				seg(5, 2, 30, "2026-09-03 08:00"),
			},
			Classes: []model.FlightClass{
				{ID: 9, FlightID: 5, ClassType: model.ClassEconomy, Price: 100, TotalSeats: 60},
			},
		}
		flightRepo.On("ListCandidates", ctx, 20, day("2026-09-03")).Return([]*model.Flight{flight}, nil).Once()
		seatRepo.On("CountAvailableByClass", ctx, 9).Return(15, nil).Once()

		results, err := flightService.Search(ctx, model.SearchRequest{
			DepartureAirportID: 20, ArrivalAirportID: 30, DepartureDate: "2026-09-03",
		})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.True(t, results[0].Classes[0].FullyBooked)
		assert.Equal(t, 15, results[0].Classes[0].AvailableSeats)
	})

	t.Run("Success - cache hit skips the database", func(t *testing.T) {
		flightRepo := repoMocks.NewFlightRepositoryMock()
		searchCache := cacheMocks.NewSearchCacheMock()
		flightService := service.NewFlightService(flightRepo, repoMocks.NewSeatRepositoryMock(), searchCache)

		cached := []model.SearchResult{{Flight: model.Flight{ID: 1, FlightNumber: "GA-204"}}}
		searchCache.On("GetResults", ctx, 20, 30, day("2026-09-03")).Return(cached, nil).Once()

		results, err := flightService.Search(ctx, model.SearchRequest{
			DepartureAirportID: 20, ArrivalAirportID: 30, DepartureDate: "2026-09-03",
		})
		require.NoError(t, err)
		assert.Equal(t, cached, results)
		flightRepo.AssertNotCalled(t, "ListCandidates", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Success - cache miss populates the cache", func(t *testing.T) {
		flightRepo := repoMocks.NewFlightRepositoryMock()
		searchCache := cacheMocks.NewSearchCacheMock()
		flightService := service.NewFlightService(flightRepo, repoMocks.NewSeatRepositoryMock(), searchCache)

		searchCache.On("GetResults", ctx, 20, 30, day("2026-09-03")).Return(nil, nil).Once()
		flightRepo.On("ListCandidates", ctx, 20, day("2026-09-03")).Return([]*model.Flight{}, nil).Once()
		searchCache.On("SetResults", ctx, 20, 30, day("2026-09-03"), []model.SearchResult{}).Return(nil).Once()

		results, err := flightService.Search(ctx, model.SearchRequest{
			DepartureAirportID: 20, ArrivalAirportID: 30, DepartureDate: "2026-09-03",
		})
		require.NoError(t, err)
		assert.Empty(t, results)
		searchCache.AssertExpectations(t)
	})
}

func TestCanonicalAssetPath(t *testing.T) {
	cases := []struct {
		name     string
		path     string
		category service.AssetCategory
		want     string
	}{
		{"empty stays empty", "", service.AssetAirlineLogo, ""},
		{"http url passes through", "http://cdn.example.com/logo.png", service.AssetAirlineLogo, "http://cdn.example.com/logo.png"},
		{"https url passes through", "https://cdn.example.com/logo.png", service.AssetAirlineLogo, "https://cdn.example.com/logo.png"},
		{"bare file name", "garuda.png", service.AssetAirlineLogo, "storage/airlines-logos/garuda.png"},
		{"already canonical", "storage/airlines-logos/garuda.png", service.AssetAirlineLogo, "storage/airlines-logos/garuda.png"},
		{"leading slash stripped", "/storage/airlines-logos/garuda.png", service.AssetAirlineLogo, "storage/airlines-logos/garuda.png"},
		{"category folder without storage", "airlines-logos/garuda.png", service.AssetAirlineLogo, "storage/airlines-logos/garuda.png"},
		{"facility image", "wifi.png", service.AssetFacilityImage, "storage/facilities-images/wifi.png"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, service.CanonicalAssetPath(tc.path, tc.category))
		})
	}
}
