package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flight-booking/config"
	"flight-booking/internal/cache"
	"flight-booking/internal/database"
	"flight-booking/internal/handler"
	"flight-booking/internal/kafka"
	"flight-booking/internal/queue"
	"flight-booking/internal/repository"
	"flight-booking/internal/service"
	"flight-booking/internal/worker"
	"flight-booking/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	log := logger.WithComponent("main")

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatal("Failed to load config", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer pool.Close()

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatal("Failed to initialize redis", zap.Error(err))
	}
	defer rdb.Close()

	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	paymentQueue, err := queue.NewRedisStreamPaymentQueue(rdb, uuid.NewString(), nil)
	if err != nil {
		log.Fatal("Failed to initialize payment queue", zap.Error(err))
	}

	txManager := repository.NewTxManager(pool)
	flightRepo := repository.NewFlightRepository(pool)
	seatRepo := repository.NewSeatRepository(pool)
	promoRepo := repository.NewPromoRepository(pool)
	transactionRepo := repository.NewTransactionRepository(pool)

	searchCache := cache.NewRedisSearchCache(rdb, time.Duration(cfg.Search.CacheTTLSeconds)*time.Second)

	promoService := service.NewPromoService(promoRepo)
	flightService := service.NewFlightService(flightRepo, seatRepo, searchCache)
	seatService := service.NewSeatService(txManager, flightRepo, seatRepo)
	bookingService := service.NewBookingService(
		txManager,
		transactionRepo,
		flightRepo,
		seatRepo,
		promoRepo,
		promoService,
		service.WithSeatHolds(searchCache, time.Duration(cfg.Payment.SeatHoldTTLSeconds)*time.Second),
		service.WithEvents(producer, cfg.Kafka.TransactionsTopic),
		service.WithPaymentQueue(paymentQueue),
	)

	gateway := service.NewSimulatedGateway(500 * time.Millisecond)
	paymentWorker := worker.NewPaymentWorker(
		bookingService,
		gateway,
		paymentQueue,
		time.Duration(cfg.Payment.GatewayTimeoutSeconds)*time.Second,
	)
	go func() {
		if err := paymentWorker.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("Payment worker stopped", zap.Error(err))
		}
	}()

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	handler.NewFlightHandler(flightService).RegisterRoutes(router)
	handler.NewSeatHandler(seatService).RegisterRoutes(router)
	handler.NewTransactionHandler(bookingService).RegisterRoutes(router)

	server := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	go func() {
		log.Info("Starting server", zap.String("address", cfg.HTTP.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}
}
