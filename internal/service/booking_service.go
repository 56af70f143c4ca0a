package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"flight-booking/internal/cache"
	"flight-booking/internal/kafka"
	"flight-booking/internal/model"
	"flight-booking/internal/queue"
	"flight-booking/internal/repository"
	apperrors "flight-booking/pkg/app_errors"
	"flight-booking/pkg/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const dateOfBirthLayout = "2006-01-02"

// BookingService coordinates the booking transaction: seat validation, atomic
// reservation, transaction + passenger persistence, promo consumption, and the
// payment status state machine.
type BookingService interface {
	CreateBooking(ctx context.Context, req model.CreateTransactionRequest) (*model.Transaction, error)
	UpdatePaymentStatus(ctx context.Context, transactionID int, status model.PaymentStatus, paymentReference string) (*model.Transaction, error)
	GetTransaction(ctx context.Context, id int) (*model.Transaction, error)
}

// EventPublisher is what the service needs from the kafka producer.
type EventPublisher interface {
	Publish(ctx context.Context, topic, key string, payload interface{}) error
}

type BookingServiceImpl struct {
	txManager    repository.TxManager
	transactions repository.TransactionRepository
	flights      repository.FlightRepository
	seats        repository.SeatRepository
	promos       repository.PromoRepository
	promoService PromoService
	cache        cache.SearchCache
	producer     EventPublisher
	paymentQueue queue.PaymentQueue
	eventsTopic  string
	holdTTL      time.Duration
}

type BookingServiceOption func(*BookingServiceImpl)

// WithSeatHolds enables the advisory Redis seat holds taken before the
// database transaction. The conditional update inside the transaction remains
// the source of truth.
func WithSeatHolds(c cache.SearchCache, ttl time.Duration) BookingServiceOption {
	return func(s *BookingServiceImpl) {
		s.cache = c
		s.holdTTL = ttl
	}
}

func WithEvents(producer EventPublisher, topic string) BookingServiceOption {
	return func(s *BookingServiceImpl) {
		s.producer = producer
		s.eventsTopic = topic
	}
}

func WithPaymentQueue(q queue.PaymentQueue) BookingServiceOption {
	return func(s *BookingServiceImpl) {
		s.paymentQueue = q
	}
}

func NewBookingService(
	txManager repository.TxManager,
	transactions repository.TransactionRepository,
	flights repository.FlightRepository,
	seats repository.SeatRepository,
	promos repository.PromoRepository,
	promoService PromoService,
	opts ...BookingServiceOption,
) *BookingServiceImpl {
	service := &BookingServiceImpl{
		txManager:    txManager,
		transactions: transactions,
		flights:      flights,
		seats:        seats,
		promos:       promos,
		promoService: promoService,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// CreateBooking validates the request, then runs the whole reservation as one
// database transaction: nothing persists unless every seat flips and every row
// inserts. A seat lost to a concurrent booking surfaces as ErrSeatConflict and
// rolls back everything.
func (s *BookingServiceImpl) CreateBooking(ctx context.Context, req model.CreateTransactionRequest) (*model.Transaction, error) {
	passengers, seatIDs, err := validatePassengers(req.Passengers)
	if err != nil {
		return nil, err
	}
	classType := model.ClassType(strings.ToLower(req.ClassType))
	if !classType.IsValid() {
		return nil, apperrors.NewValidationError("class_type", "must be economy, business or first")
	}
	if req.PaymentMethod == "" {
		return nil, apperrors.NewValidationError("payment_method", "is required")
	}

	flight, err := s.flights.FindByID(ctx, req.FlightID)
	if err != nil {
		return nil, err
	}
	class, err := s.flights.FindClass(ctx, flight.ID, classType)
	if err != nil {
		return nil, err
	}

	var promo *model.PromoCode
	if req.PromoCode != "" {
		promo, err = s.promoService.Resolve(ctx, req.PromoCode)
		if err != nil {
			return nil, err
		}
	}

	subtotal := float64(len(passengers)) * class.Price
	grandTotal := s.promoService.Apply(subtotal, promo)

	held, err := s.acquireSeatHolds(ctx, seatIDs)
	if err != nil {
		return nil, err
	}
	defer s.releaseSeatHolds(ctx, held)

	txn := &model.Transaction{
		Code:          generateTransactionCode(),
		FlightID:      flight.ID,
		FlightClassID: class.ID,
		PaymentStatus: model.PaymentStatusPending,
		PaymentMethod: req.PaymentMethod,
		Subtotal:      subtotal,
		GrandTotal:    grandTotal,
	}
	if promo != nil {
		txn.PromoCodeID = &promo.ID
	}

	err = s.txManager.WithinTx(ctx, func(tx pgx.Tx) error {
		seats, err := s.seats.FindByIDs(ctx, tx, seatIDs)
		if err != nil {
			return err
		}
		if err := checkSeatsBelong(seats, seatIDs, flight.ID, classType); err != nil {
			return err
		}

		created, err := s.transactions.Create(ctx, tx, txn)
		if err != nil {
			return err
		}
		txn = created

		createdPassengers, err := s.transactions.CreatePassengers(ctx, tx, txn.ID, passengers)
		if err != nil {
			return err
		}
		txn.Passengers = createdPassengers
		attachSeats(txn.Passengers, seats)

		for _, seatID := range seatIDs {
			if err := s.seats.Reserve(ctx, tx, seatID); err != nil {
				return err
			}
		}

		if promo != nil {
			if err := s.promos.MarkUsed(ctx, tx, promo.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	txn.Promo = promo
	s.publishEvent(ctx, "transaction_created", txn)

	if s.paymentQueue != nil {
		job := &model.PaymentJob{
			TransactionID:  txn.ID,
			Code:           txn.Code,
			PaymentMethod:  req.PaymentMethod,
			PaymentDetails: req.PaymentDetails,
			Amount:         txn.GrandTotal,
		}
		if err := s.paymentQueue.PublishPayment(ctx, job); err != nil {
			// The booking stands; payment just needs the manual status route.
			logger.WithComponent("booking").Warn("failed to enqueue payment job",
				zap.String("code", txn.Code), zap.Error(err))
		}
	}

	return txn, nil
}

// UpdatePaymentStatus applies the payment state machine under a row lock.
// Entering paid re-asserts the seats reserved; entering failed or refunded
// releases them. Re-applying the current status is a no-op with the same seat
// state, so retries and duplicate worker deliveries are safe.
func (s *BookingServiceImpl) UpdatePaymentStatus(ctx context.Context, transactionID int, status model.PaymentStatus, paymentReference string) (*model.Transaction, error) {
	if !status.IsValid() {
		return nil, apperrors.NewValidationError("payment_status", "must be pending, paid, failed or refunded")
	}

	var ref *string
	if paymentReference != "" {
		ref = &paymentReference
	}

	var updated *model.Transaction
	err := s.txManager.WithinTx(ctx, func(tx pgx.Tx) error {
		current, err := s.transactions.FindByIDForUpdate(ctx, tx, transactionID)
		if err != nil {
			return err
		}
		if !current.PaymentStatus.CanTransitionTo(status) {
			return apperrors.ErrInvalidTransition
		}

		updated, err = s.transactions.UpdatePaymentStatus(ctx, tx, transactionID, status, ref)
		if err != nil {
			return err
		}

		seatIDs, err := s.transactions.SeatIDs(ctx, tx, transactionID)
		if err != nil {
			return err
		}

		switch {
		case status == model.PaymentStatusPaid:
			return s.seats.SetAvailability(ctx, tx, seatIDs, false)
		case status.ReleasesSeats():
			return s.seats.SetAvailability(ctx, tx, seatIDs, true)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, "payment_updated", updated)
	return updated, nil
}

func (s *BookingServiceImpl) GetTransaction(ctx context.Context, id int) (*model.Transaction, error) {
	txn, err := s.transactions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	passengers, err := s.transactions.ListPassengers(ctx, id)
	if err != nil {
		return nil, err
	}
	txn.Passengers = passengers

	if txn.PromoCodeID != nil {
		promo, err := s.promos.FindByID(ctx, *txn.PromoCodeID)
		if err != nil {
			return nil, err
		}
		txn.Promo = promo
	}
	return txn, nil
}

func (s *BookingServiceImpl) acquireSeatHolds(ctx context.Context, seatIDs []int) ([]int, error) {
	if s.cache == nil {
		return nil, nil
	}

	held := make([]int, 0, len(seatIDs))
	for _, id := range seatIDs {
		ok, err := s.cache.AcquireSeatHold(ctx, id, s.holdTTL)
		if err != nil {
			s.releaseSeatHolds(ctx, held)
			return nil, err
		}
		if !ok {
			s.releaseSeatHolds(ctx, held)
			return nil, apperrors.ErrSeatConflict
		}
		held = append(held, id)
	}
	return held, nil
}

func (s *BookingServiceImpl) releaseSeatHolds(ctx context.Context, seatIDs []int) {
	if s.cache == nil {
		return
	}
	for _, id := range seatIDs {
		_ = s.cache.ReleaseSeatHold(ctx, id)
	}
}

func (s *BookingServiceImpl) publishEvent(ctx context.Context, eventType string, txn *model.Transaction) {
	if s.producer == nil || s.eventsTopic == "" {
		return
	}
	event := kafka.TransactionEvent{
		Type:          eventType,
		Code:          txn.Code,
		TransactionID: txn.ID,
		FlightID:      txn.FlightID,
		PaymentStatus: string(txn.PaymentStatus),
		GrandTotal:    txn.GrandTotal,
		OccurredAt:    time.Now().UTC(),
	}
	if err := s.producer.Publish(ctx, s.eventsTopic, txn.Code, event); err != nil {
		logger.WithComponent("booking").Warn("failed to publish transaction event",
			zap.String("type", eventType), zap.String("code", txn.Code), zap.Error(err))
	}
}

// validatePassengers checks every passenger field and the seat set before any
// mutation happens. Duplicated seat ids are rejected so the distinct seat
// count always equals the passenger count.
func validatePassengers(inputs []model.PassengerInput) ([]model.Passenger, []int, error) {
	if len(inputs) < 1 {
		return nil, nil, apperrors.NewValidationError("passengers", "at least one passenger is required")
	}

	passengers := make([]model.Passenger, 0, len(inputs))
	seatIDs := make([]int, 0, len(inputs))
	seen := make(map[int]bool, len(inputs))

	for i, in := range inputs {
		field := func(name string) string { return fmt.Sprintf("passengers[%d].%s", i, name) }
		if in.SeatID <= 0 {
			return nil, nil, apperrors.NewValidationError(field("seat_id"), "is required")
		}
		if seen[in.SeatID] {
			return nil, nil, apperrors.NewValidationError(field("seat_id"), "duplicate seat")
		}
		if in.FirstName == "" {
			return nil, nil, apperrors.NewValidationError(field("first_name"), "is required")
		}
		if in.LastName == "" {
			return nil, nil, apperrors.NewValidationError(field("last_name"), "is required")
		}
		if in.Email == "" {
			return nil, nil, apperrors.NewValidationError(field("email"), "is required")
		}
		if in.Phone == "" {
			return nil, nil, apperrors.NewValidationError(field("phone"), "is required")
		}
		dob, err := time.Parse(dateOfBirthLayout, in.DateOfBirth)
		if err != nil {
			return nil, nil, apperrors.NewValidationError(field("date_of_birth"), "must be formatted YYYY-MM-DD")
		}

		seen[in.SeatID] = true
		seatIDs = append(seatIDs, in.SeatID)
		passengers = append(passengers, model.Passenger{
			SeatID:      in.SeatID,
			FirstName:   in.FirstName,
			LastName:    in.LastName,
			Email:       in.Email,
			Phone:       in.Phone,
			DateOfBirth: dob,
		})
	}
	return passengers, seatIDs, nil
}

func checkSeatsBelong(seats []*model.Seat, seatIDs []int, flightID int, classType model.ClassType) error {
	if len(seats) != len(seatIDs) {
		return apperrors.ErrSeatNotFound
	}
	for _, seat := range seats {
		if seat.FlightID != flightID {
			return apperrors.NewValidationError("seat_id", fmt.Sprintf("seat %s does not belong to this flight", seat.SeatName()))
		}
		if seat.ClassType != classType {
			return apperrors.NewValidationError("seat_id", fmt.Sprintf("seat %s does not belong to class %s", seat.SeatName(), classType))
		}
	}
	return nil
}

func attachSeats(passengers []model.Passenger, seats []*model.Seat) {
	byID := make(map[int]*model.Seat, len(seats))
	for _, seat := range seats {
		byID[seat.ID] = seat
	}
	for i := range passengers {
		if seat, ok := byID[passengers[i].SeatID]; ok {
			reserved := *seat
			reserved.IsAvailable = false
			passengers[i].Seat = &reserved
		}
	}
}

func generateTransactionCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "TRX-" + strings.ToUpper(raw[:10])
}

var _ BookingService = (*BookingServiceImpl)(nil)
