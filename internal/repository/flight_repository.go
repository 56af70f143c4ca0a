package repository

import (
	"context"
	"time"

	"flight-booking/internal/model"
	apperrors "flight-booking/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FlightRepository interface {
	FindByID(ctx context.Context, id int) (*model.Flight, error)
	// ListCandidates returns flights that have at least one segment at the
	// departure airport on the given day, with segments and classes loaded.
	ListCandidates(ctx context.Context, departureAirportID int, day time.Time) ([]*model.Flight, error)
	FindClass(ctx context.Context, flightID int, classType model.ClassType) (*model.FlightClass, error)
	FindClassByID(ctx context.Context, id int) (*model.FlightClass, error)

	// Transaction methods
	UpdateClassTotalSeats(ctx context.Context, tx pgx.Tx, flightClassID int, totalSeats int) error
}

type FlightRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewFlightRepository(pool *pgxpool.Pool) FlightRepository {
	return &FlightRepositoryImpl{pool: pool}
}

func (r *FlightRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Flight, error) {
	query := `
		SELECT f.id, f.flight_number, f.airline_id, a.name, a.logo, f.created_at, f.updated_at
		FROM flights f
		JOIN airlines a ON a.id = f.airline_id
		WHERE f.id = $1
	`

	var flight model.Flight
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&flight.ID,
		&flight.FlightNumber,
		&flight.AirlineID,
		&flight.AirlineName,
		&flight.AirlineLogo,
		&flight.CreatedAt,
		&flight.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrFlightNotFound
		}
		return nil, err
	}

	if err := r.attachSegmentsAndClasses(ctx, []*model.Flight{&flight}); err != nil {
		return nil, err
	}

	return &flight, nil
}

func (r *FlightRepositoryImpl) ListCandidates(ctx context.Context, departureAirportID int, day time.Time) ([]*model.Flight, error) {
	query := `
		SELECT DISTINCT f.id, f.flight_number, f.airline_id, a.name, a.logo, f.created_at, f.updated_at
		FROM flights f
		JOIN airlines a ON a.id = f.airline_id
		JOIN flight_segments s ON s.flight_id = f.id
		WHERE s.airport_id = $1 AND s.time::date = $2::date
		ORDER BY f.id
	`

	rows, err := r.pool.Query(ctx, query, departureAirportID, day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]*model.Flight, 0)
	for rows.Next() {
		var flight model.Flight
		err := rows.Scan(
			&flight.ID,
			&flight.FlightNumber,
			&flight.AirlineID,
			&flight.AirlineName,
			&flight.AirlineLogo,
			&flight.CreatedAt,
			&flight.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		flights = append(flights, &flight)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachSegmentsAndClasses(ctx, flights); err != nil {
		return nil, err
	}

	return flights, nil
}

func (r *FlightRepositoryImpl) FindClass(ctx context.Context, flightID int, classType model.ClassType) (*model.FlightClass, error) {
	query := `
		SELECT id, flight_id, class_type, price, total_seats
		FROM flight_classes
		WHERE flight_id = $1 AND class_type = $2
	`

	var class model.FlightClass
	err := r.pool.QueryRow(ctx, query, flightID, classType).Scan(
		&class.ID,
		&class.FlightID,
		&class.ClassType,
		&class.Price,
		&class.TotalSeats,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrClassNotFound
		}
		return nil, err
	}

	return &class, nil
}

func (r *FlightRepositoryImpl) FindClassByID(ctx context.Context, id int) (*model.FlightClass, error) {
	query := `
		SELECT id, flight_id, class_type, price, total_seats
		FROM flight_classes
		WHERE id = $1
	`

	var class model.FlightClass
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&class.ID,
		&class.FlightID,
		&class.ClassType,
		&class.Price,
		&class.TotalSeats,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrClassNotFound
		}
		return nil, err
	}

	return &class, nil
}

func (r *FlightRepositoryImpl) UpdateClassTotalSeats(ctx context.Context, tx pgx.Tx, flightClassID int, totalSeats int) error {
	result, err := tx.Exec(ctx,
		`UPDATE flight_classes SET total_seats = $1 WHERE id = $2`, totalSeats, flightClassID,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrClassNotFound
	}
	return nil
}

func (r *FlightRepositoryImpl) attachSegmentsAndClasses(ctx context.Context, flights []*model.Flight) error {
	if len(flights) == 0 {
		return nil
	}

	ids := make([]int, 0, len(flights))
	byID := make(map[int]*model.Flight, len(flights))
	for _, f := range flights {
		ids = append(ids, f.ID)
		byID[f.ID] = f
	}

	segQuery := `
		SELECT id, flight_id, sequence, airport_id, time
		FROM flight_segments
		WHERE flight_id = ANY($1)
		ORDER BY flight_id, sequence
	`
	rows, err := r.pool.Query(ctx, segQuery, ids)
	if err != nil {
		return err
	}
	for rows.Next() {
		var s model.Segment
		if err := rows.Scan(&s.ID, &s.FlightID, &s.Sequence, &s.AirportID, &s.Time); err != nil {
			rows.Close()
			return err
		}
		byID[s.FlightID].Segments = append(byID[s.FlightID].Segments, s)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	classQuery := `
		SELECT id, flight_id, class_type, price, total_seats
		FROM flight_classes
		WHERE flight_id = ANY($1)
		ORDER BY flight_id, id
	`
	rows, err = r.pool.Query(ctx, classQuery, ids)
	if err != nil {
		return err
	}
	classByID := make(map[int]*model.FlightClass)
	classIDs := make([]int, 0)
	for rows.Next() {
		var c model.FlightClass
		if err := rows.Scan(&c.ID, &c.FlightID, &c.ClassType, &c.Price, &c.TotalSeats); err != nil {
			rows.Close()
			return err
		}
		flight := byID[c.FlightID]
		flight.Classes = append(flight.Classes, c)
		classByID[c.ID] = &flight.Classes[len(flight.Classes)-1]
		classIDs = append(classIDs, c.ID)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	if len(classIDs) == 0 {
		return nil
	}

	facQuery := `
		SELECT cf.flight_class_id, fa.id, fa.name, fa.image
		FROM flight_class_facilities cf
		JOIN facilities fa ON fa.id = cf.facility_id
		WHERE cf.flight_class_id = ANY($1)
		ORDER BY cf.flight_class_id, fa.id
	`
	rows, err = r.pool.Query(ctx, facQuery, classIDs)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var classID int
		var f model.Facility
		if err := rows.Scan(&classID, &f.ID, &f.Name, &f.Image); err != nil {
			return err
		}
		if c, ok := classByID[classID]; ok {
			c.Facilities = append(c.Facilities, f)
		}
	}
	return rows.Err()
}
