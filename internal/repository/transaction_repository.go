package repository

import (
	"context"
	"fmt"
	"time"

	"flight-booking/internal/model"
	apperrors "flight-booking/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TransactionRepository interface {
	FindByID(ctx context.Context, id int) (*model.Transaction, error)
	FindByCode(ctx context.Context, code string) (*model.Transaction, error)
	ListPassengers(ctx context.Context, transactionID int) ([]model.Passenger, error)

	// Transaction methods
	Create(ctx context.Context, tx pgx.Tx, txn *model.Transaction) (*model.Transaction, error)
	CreatePassengers(ctx context.Context, tx pgx.Tx, transactionID int, passengers []model.Passenger) ([]model.Passenger, error)
	FindByIDForUpdate(ctx context.Context, tx pgx.Tx, id int) (*model.Transaction, error)
	UpdatePaymentStatus(ctx context.Context, tx pgx.Tx, id int, status model.PaymentStatus, reference *string) (*model.Transaction, error)
	SeatIDs(ctx context.Context, tx pgx.Tx, transactionID int) ([]int, error)
}

type TransactionRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewTransactionRepository(pool *pgxpool.Pool) TransactionRepository {
	return &TransactionRepositoryImpl{pool: pool}
}

const transactionColumns = `id, code, flight_id, flight_class_id, promo_code_id,
	payment_status, payment_method, payment_reference, subtotal, grand_total,
	created_at, updated_at`

func scanTransaction(row pgx.Row) (*model.Transaction, error) {
	var txn model.Transaction
	err := row.Scan(
		&txn.ID,
		&txn.Code,
		&txn.FlightID,
		&txn.FlightClassID,
		&txn.PromoCodeID,
		&txn.PaymentStatus,
		&txn.PaymentMethod,
		&txn.PaymentReference,
		&txn.Subtotal,
		&txn.GrandTotal,
		&txn.CreatedAt,
		&txn.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, err
	}
	return &txn, nil
}

func (r *TransactionRepositoryImpl) Create(ctx context.Context, tx pgx.Tx, txn *model.Transaction) (*model.Transaction, error) {
	query := fmt.Sprintf(`
		INSERT INTO transactions (
			code, flight_id, flight_class_id, promo_code_id,
			payment_status, payment_method, subtotal, grand_total
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING %s
	`, transactionColumns)

	row := tx.QueryRow(ctx, query,
		txn.Code, txn.FlightID, txn.FlightClassID, txn.PromoCodeID,
		txn.PaymentStatus, txn.PaymentMethod, txn.Subtotal, txn.GrandTotal,
	)

	created, err := scanTransaction(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	return created, nil
}

func (r *TransactionRepositoryImpl) CreatePassengers(ctx context.Context, tx pgx.Tx, transactionID int, passengers []model.Passenger) ([]model.Passenger, error) {
	query := `
		INSERT INTO passengers (transaction_id, seat_id, first_name, last_name, email, phone, date_of_birth)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	created := make([]model.Passenger, 0, len(passengers))
	for _, p := range passengers {
		p.TransactionID = transactionID
		err := tx.QueryRow(ctx, query,
			transactionID, p.SeatID, p.FirstName, p.LastName, p.Email, p.Phone, p.DateOfBirth,
		).Scan(&p.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to create passenger: %w", err)
		}
		created = append(created, p)
	}
	return created, nil
}

func (r *TransactionRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Transaction, error) {
	query := fmt.Sprintf(`SELECT %s FROM transactions WHERE id = $1`, transactionColumns)
	return scanTransaction(r.pool.QueryRow(ctx, query, id))
}

func (r *TransactionRepositoryImpl) FindByCode(ctx context.Context, code string) (*model.Transaction, error) {
	query := fmt.Sprintf(`SELECT %s FROM transactions WHERE code = $1`, transactionColumns)
	return scanTransaction(r.pool.QueryRow(ctx, query, code))
}

func (r *TransactionRepositoryImpl) FindByIDForUpdate(ctx context.Context, tx pgx.Tx, id int) (*model.Transaction, error) {
	query := fmt.Sprintf(`SELECT %s FROM transactions WHERE id = $1 FOR UPDATE`, transactionColumns)
	return scanTransaction(tx.QueryRow(ctx, query, id))
}

func (r *TransactionRepositoryImpl) UpdatePaymentStatus(ctx context.Context, tx pgx.Tx, id int, status model.PaymentStatus, reference *string) (*model.Transaction, error) {
	query := fmt.Sprintf(`
		UPDATE transactions
		SET payment_status = $1,
		    payment_reference = COALESCE($2, payment_reference),
		    updated_at = $3
		WHERE id = $4
		RETURNING %s
	`, transactionColumns)

	updated, err := scanTransaction(tx.QueryRow(ctx, query, status, reference, time.Now().UTC(), id))
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *TransactionRepositoryImpl) ListPassengers(ctx context.Context, transactionID int) ([]model.Passenger, error) {
	query := `
		SELECT p.id, p.transaction_id, p.seat_id, p.first_name, p.last_name,
		       p.email, p.phone, p.date_of_birth,
		       s.id, s.flight_class_id, s.seat_row, s.seat_column, s.is_available,
		       s.created_at, s.updated_at, c.flight_id, c.class_type
		FROM passengers p
		JOIN seats s ON s.id = p.seat_id
		JOIN flight_classes c ON c.id = s.flight_class_id
		WHERE p.transaction_id = $1
		ORDER BY p.id
	`

	rows, err := r.pool.Query(ctx, query, transactionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	passengers := make([]model.Passenger, 0)
	for rows.Next() {
		var p model.Passenger
		var seat model.Seat
		err := rows.Scan(
			&p.ID, &p.TransactionID, &p.SeatID, &p.FirstName, &p.LastName,
			&p.Email, &p.Phone, &p.DateOfBirth,
			&seat.ID, &seat.FlightClassID, &seat.Row, &seat.Column, &seat.IsAvailable,
			&seat.CreatedAt, &seat.UpdatedAt, &seat.FlightID, &seat.ClassType,
		)
		if err != nil {
			return nil, err
		}
		p.Seat = &seat
		passengers = append(passengers, p)
	}
	return passengers, rows.Err()
}

func (r *TransactionRepositoryImpl) SeatIDs(ctx context.Context, tx pgx.Tx, transactionID int) ([]int, error) {
	rows, err := tx.Query(ctx,
		`SELECT seat_id FROM passengers WHERE transaction_id = $1 ORDER BY id`, transactionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]int, 0)
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

var _ TransactionRepository = (*TransactionRepositoryImpl)(nil)
