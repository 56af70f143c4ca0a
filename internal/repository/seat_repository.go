package repository

import (
	"context"
	"time"

	"flight-booking/internal/model"
	apperrors "flight-booking/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SeatRepository interface {
	ListByFlight(ctx context.Context, flightID int) ([]*model.Seat, error)
	CountByClass(ctx context.Context, flightClassID int) (int, error)
	CountAvailableByClass(ctx context.Context, flightClassID int) (int, error)

	// Transaction methods
	CreateSeats(ctx context.Context, tx pgx.Tx, flightClassID int, positions []model.SeatPosition) error
	CountByClassForUpdate(ctx context.Context, tx pgx.Tx, flightClassID int) (int, error)
	TailSeatsForUpdate(ctx context.Context, tx pgx.Tx, flightClassID int, limit int) ([]*model.Seat, error)
	DeleteSeats(ctx context.Context, tx pgx.Tx, ids []int) error
	FindByIDs(ctx context.Context, tx pgx.Tx, ids []int) ([]*model.Seat, error)
	Reserve(ctx context.Context, tx pgx.Tx, id int) error
	SetAvailability(ctx context.Context, tx pgx.Tx, ids []int, available bool) error
}

type SeatRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewSeatRepository(pool *pgxpool.Pool) SeatRepository {
	return &SeatRepositoryImpl{pool: pool}
}

func (r *SeatRepositoryImpl) ListByFlight(ctx context.Context, flightID int) ([]*model.Seat, error) {
	query := `
		SELECT s.id, s.flight_class_id, s.seat_row, s.seat_column, s.is_available,
		       s.created_at, s.updated_at, c.flight_id, c.class_type
		FROM seats s
		JOIN flight_classes c ON c.id = s.flight_class_id
		WHERE c.flight_id = $1
		ORDER BY c.id, s.seat_row, s.seat_column
	`

	rows, err := r.pool.Query(ctx, query, flightID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seats := make([]*model.Seat, 0)
	for rows.Next() {
		var seat model.Seat
		err := rows.Scan(
			&seat.ID,
			&seat.FlightClassID,
			&seat.Row,
			&seat.Column,
			&seat.IsAvailable,
			&seat.CreatedAt,
			&seat.UpdatedAt,
			&seat.FlightID,
			&seat.ClassType,
		)
		if err != nil {
			return nil, err
		}
		seats = append(seats, &seat)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return seats, nil
}

func (r *SeatRepositoryImpl) CountByClass(ctx context.Context, flightClassID int) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM seats WHERE flight_class_id = $1`, flightClassID,
	).Scan(&count)
	return count, err
}

func (r *SeatRepositoryImpl) CountAvailableByClass(ctx context.Context, flightClassID int) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM seats WHERE flight_class_id = $1 AND is_available = true`, flightClassID,
	).Scan(&count)
	return count, err
}

func (r *SeatRepositoryImpl) CreateSeats(ctx context.Context, tx pgx.Tx, flightClassID int, positions []model.SeatPosition) error {
	if len(positions) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, p := range positions {
		batch.Queue(`
			INSERT INTO seats (flight_class_id, seat_row, seat_column, is_available)
			VALUES ($1, $2, $3, true)
		`, flightClassID, p.Row, p.Column)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for range positions {
		if _, err := results.Exec(); err != nil {
			return err
		}
	}
	return nil
}

// CountByClassForUpdate locks the class row so concurrent resizes of the same
// class serialize instead of both reading a stale count.
func (r *SeatRepositoryImpl) CountByClassForUpdate(ctx context.Context, tx pgx.Tx, flightClassID int) (int, error) {
	var id int
	err := tx.QueryRow(ctx,
		`SELECT id FROM flight_classes WHERE id = $1 FOR UPDATE`, flightClassID,
	).Scan(&id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return 0, apperrors.ErrClassNotFound
		}
		return 0, err
	}

	var count int
	err = tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM seats WHERE flight_class_id = $1`, flightClassID,
	).Scan(&count)
	return count, err
}

func (r *SeatRepositoryImpl) TailSeatsForUpdate(ctx context.Context, tx pgx.Tx, flightClassID int, limit int) ([]*model.Seat, error) {
	query := `
		SELECT id, flight_class_id, seat_row, seat_column, is_available, created_at, updated_at
		FROM seats
		WHERE flight_class_id = $1
		ORDER BY seat_row DESC, seat_column DESC
		LIMIT $2
		FOR UPDATE
	`

	rows, err := tx.Query(ctx, query, flightClassID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seats := make([]*model.Seat, 0, limit)
	for rows.Next() {
		var seat model.Seat
		err := rows.Scan(
			&seat.ID,
			&seat.FlightClassID,
			&seat.Row,
			&seat.Column,
			&seat.IsAvailable,
			&seat.CreatedAt,
			&seat.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		seats = append(seats, &seat)
	}
	return seats, rows.Err()
}

func (r *SeatRepositoryImpl) DeleteSeats(ctx context.Context, tx pgx.Tx, ids []int) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := tx.Exec(ctx, `DELETE FROM seats WHERE id = ANY($1)`, ids)
	return err
}

func (r *SeatRepositoryImpl) FindByIDs(ctx context.Context, tx pgx.Tx, ids []int) ([]*model.Seat, error) {
	query := `
		SELECT s.id, s.flight_class_id, s.seat_row, s.seat_column, s.is_available,
		       s.created_at, s.updated_at, c.flight_id, c.class_type
		FROM seats s
		JOIN flight_classes c ON c.id = s.flight_class_id
		WHERE s.id = ANY($1)
	`

	rows, err := tx.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seats := make([]*model.Seat, 0, len(ids))
	for rows.Next() {
		var seat model.Seat
		err := rows.Scan(
			&seat.ID,
			&seat.FlightClassID,
			&seat.Row,
			&seat.Column,
			&seat.IsAvailable,
			&seat.CreatedAt,
			&seat.UpdatedAt,
			&seat.FlightID,
			&seat.ClassType,
		)
		if err != nil {
			return nil, err
		}
		seats = append(seats, &seat)
	}
	return seats, rows.Err()
}

// Reserve flips a seat to unavailable only if it is still available. The
// affected-row check is the whole concurrency story: the first booking to
// reach the seat wins, every other one gets ErrSeatConflict.
func (r *SeatRepositoryImpl) Reserve(ctx context.Context, tx pgx.Tx, id int) error {
	result, err := tx.Exec(ctx, `
		UPDATE seats
		SET is_available = false, updated_at = $1
		WHERE id = $2 AND is_available = true
	`, time.Now().UTC(), id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrSeatConflict
	}
	return nil
}

// SetAvailability is the single seat state-transition path. Booking, payment
// status changes and the admin bulk override all go through it.
func (r *SeatRepositoryImpl) SetAvailability(ctx context.Context, tx pgx.Tx, ids []int, available bool) error {
	if len(ids) == 0 {
		return nil
	}

	result, err := tx.Exec(ctx, `
		UPDATE seats
		SET is_available = $1, updated_at = $2
		WHERE id = ANY($3)
	`, available, time.Now().UTC(), ids)
	if err != nil {
		return err
	}

	if result.RowsAffected() != int64(len(ids)) {
		return apperrors.ErrSeatNotFound
	}
	return nil
}

var _ SeatRepository = (*SeatRepositoryImpl)(nil)
