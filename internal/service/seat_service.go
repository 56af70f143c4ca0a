package service

import (
	"context"
	"fmt"

	"flight-booking/internal/model"
	"flight-booking/internal/repository"
	apperrors "flight-booking/pkg/app_errors"

	"github.com/jackc/pgx/v5"
)

// SeatService owns the seat map of a flight class: it creates the map when a
// class is set up, grows or shrinks it when total_seats changes, and serves
// the seat listing and admin availability override.
type SeatService interface {
	CreateSeats(ctx context.Context, flightID int, classType model.ClassType, totalSeats int) error
	ResizeSeats(ctx context.Context, flightID int, classType model.ClassType, newTotal int) error
	ListByFlight(ctx context.Context, flightID int) ([]*model.Seat, error)
	BulkSetAvailability(ctx context.Context, seatIDs []int, available bool) error
}

type SeatServiceImpl struct {
	txManager  repository.TxManager
	flightRepo repository.FlightRepository
	seatRepo   repository.SeatRepository
}

func NewSeatService(txManager repository.TxManager, flightRepo repository.FlightRepository, seatRepo repository.SeatRepository) SeatService {
	return &SeatServiceImpl{
		txManager:  txManager,
		flightRepo: flightRepo,
		seatRepo:   seatRepo,
	}
}

// seatPlan returns positions for seats with zero-based indexes [from, to) in
// row-major order over the fixed A-F layout: index 0 is 1A, index 6 is 2A.
// Seats are only ever removed from the tail, so the live map is always a
// prefix of this sequence and the current count alone determines where new
// seats continue.
func seatPlan(from, to int) []model.SeatPosition {
	if to <= from {
		return nil
	}
	cols := len(model.SeatColumns)
	positions := make([]model.SeatPosition, 0, to-from)
	for i := from; i < to; i++ {
		positions = append(positions, model.SeatPosition{
			Row:    i/cols + 1,
			Column: model.SeatColumns[i%cols],
		})
	}
	return positions
}

func (s *SeatServiceImpl) CreateSeats(ctx context.Context, flightID int, classType model.ClassType, totalSeats int) error {
	if !classType.IsValid() {
		return apperrors.NewValidationError("class_type", "must be economy, business or first")
	}
	if totalSeats < 1 {
		return apperrors.NewValidationError("total_seats", "must be at least 1")
	}

	class, err := s.flightRepo.FindClass(ctx, flightID, classType)
	if err != nil {
		return err
	}

	return s.txManager.WithinTx(ctx, func(tx pgx.Tx) error {
		count, err := s.seatRepo.CountByClassForUpdate(ctx, tx, class.ID)
		if err != nil {
			return err
		}
		if count > 0 {
			return apperrors.NewValidationError("class_type", "seats already exist for this class")
		}

		if err := s.seatRepo.CreateSeats(ctx, tx, class.ID, seatPlan(0, totalSeats)); err != nil {
			return err
		}
		return s.flightRepo.UpdateClassTotalSeats(ctx, tx, class.ID, totalSeats)
	})
}

// ResizeSeats brings the seat count of (flight, class) to newTotal. Growth
// continues numbering after the highest existing seat; shrink removes from the
// tail of the map, ordered by row then column descending. A shrink that would
// delete a reserved seat fails whole with ErrSeatOccupied.
func (s *SeatServiceImpl) ResizeSeats(ctx context.Context, flightID int, classType model.ClassType, newTotal int) error {
	if !classType.IsValid() {
		return apperrors.NewValidationError("class_type", "must be economy, business or first")
	}
	if newTotal < 1 {
		return apperrors.NewValidationError("total_seats", "must be at least 1")
	}

	class, err := s.flightRepo.FindClass(ctx, flightID, classType)
	if err != nil {
		return err
	}

	return s.txManager.WithinTx(ctx, func(tx pgx.Tx) error {
		current, err := s.seatRepo.CountByClassForUpdate(ctx, tx, class.ID)
		if err != nil {
			return err
		}

		delta := newTotal - current
		switch {
		case delta > 0:
			if err := s.seatRepo.CreateSeats(ctx, tx, class.ID, seatPlan(current, newTotal)); err != nil {
				return err
			}
		case delta < 0:
			tail, err := s.seatRepo.TailSeatsForUpdate(ctx, tx, class.ID, -delta)
			if err != nil {
				return err
			}
			if len(tail) != -delta {
				return fmt.Errorf("expected %d tail seats, found %d", -delta, len(tail))
			}
			ids := make([]int, 0, len(tail))
			for _, seat := range tail {
				if !seat.IsAvailable {
					return apperrors.ErrSeatOccupied
				}
				ids = append(ids, seat.ID)
			}
			if err := s.seatRepo.DeleteSeats(ctx, tx, ids); err != nil {
				return err
			}
		}

		return s.flightRepo.UpdateClassTotalSeats(ctx, tx, class.ID, newTotal)
	})
}

func (s *SeatServiceImpl) ListByFlight(ctx context.Context, flightID int) ([]*model.Seat, error) {
	return s.seatRepo.ListByFlight(ctx, flightID)
}

// BulkSetAvailability is the admin override. It bypasses bookings but still
// funnels through the same seat state-transition path everything else uses.
func (s *SeatServiceImpl) BulkSetAvailability(ctx context.Context, seatIDs []int, available bool) error {
	if len(seatIDs) == 0 {
		return apperrors.NewValidationError("seat_ids", "must not be empty")
	}

	return s.txManager.WithinTx(ctx, func(tx pgx.Tx) error {
		return s.seatRepo.SetAvailability(ctx, tx, seatIDs, available)
	})
}

var _ SeatService = (*SeatServiceImpl)(nil)
