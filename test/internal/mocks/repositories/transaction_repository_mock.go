package repositories

import (
	"context"

	"flight-booking/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

type TransactionRepositoryMock struct {
	mock.Mock
}

func NewTransactionRepositoryMock() *TransactionRepositoryMock {
	return &TransactionRepositoryMock{}
}

func (m *TransactionRepositoryMock) FindByID(ctx context.Context, id int) (*model.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transaction), args.Error(1)
}

func (m *TransactionRepositoryMock) FindByCode(ctx context.Context, code string) (*model.Transaction, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transaction), args.Error(1)
}

func (m *TransactionRepositoryMock) ListPassengers(ctx context.Context, transactionID int) ([]model.Passenger, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Passenger), args.Error(1)
}

func (m *TransactionRepositoryMock) Create(ctx context.Context, tx pgx.Tx, txn *model.Transaction) (*model.Transaction, error) {
	args := m.Called(ctx, tx, txn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transaction), args.Error(1)
}

func (m *TransactionRepositoryMock) CreatePassengers(ctx context.Context, tx pgx.Tx, transactionID int, passengers []model.Passenger) ([]model.Passenger, error) {
	args := m.Called(ctx, tx, transactionID, passengers)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Passenger), args.Error(1)
}

func (m *TransactionRepositoryMock) FindByIDForUpdate(ctx context.Context, tx pgx.Tx, id int) (*model.Transaction, error) {
	args := m.Called(ctx, tx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transaction), args.Error(1)
}

func (m *TransactionRepositoryMock) UpdatePaymentStatus(ctx context.Context, tx pgx.Tx, id int, status model.PaymentStatus, reference *string) (*model.Transaction, error) {
	args := m.Called(ctx, tx, id, status, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transaction), args.Error(1)
}

func (m *TransactionRepositoryMock) SeatIDs(ctx context.Context, tx pgx.Tx, transactionID int) ([]int, error) {
	args := m.Called(ctx, tx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}
