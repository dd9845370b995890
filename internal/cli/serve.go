package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	computeEndTimeHandler "github.com/reservely/reservation-service/internal/api/handlers/compute_end_time"
	createReservationHandler "github.com/reservely/reservation-service/internal/api/handlers/create_reservation"
	getAvailableSlotsHandler "github.com/reservely/reservation-service/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/reservely/reservation-service/internal/api/handlers/get_booking"
	getRestaurantBookingsHandler "github.com/reservely/reservation-service/internal/api/handlers/get_restaurant_bookings"
	getRestaurantHoursHandler "github.com/reservely/reservation-service/internal/api/handlers/get_restaurant_hours"
	updateBookingStatusHandler "github.com/reservely/reservation-service/internal/api/handlers/update_booking_status"
	validateReservationHandler "github.com/reservely/reservation-service/internal/api/handlers/validate_reservation"
	"github.com/reservely/reservation-service/internal/api/middleware"
	"github.com/reservely/reservation-service/internal/config"
	"github.com/reservely/reservation-service/internal/infra/lock"
	bookingRepo "github.com/reservely/reservation-service/internal/infra/storage/booking"
	restaurantRepo "github.com/reservely/reservation-service/internal/infra/storage/restaurant"
	tableRepo "github.com/reservely/reservation-service/internal/infra/storage/table"
	"github.com/reservely/reservation-service/internal/integrations/events"
	"github.com/reservely/reservation-service/internal/migrations"
	bookingsService "github.com/reservely/reservation-service/internal/service/bookings"
	restaurantsService "github.com/reservely/reservation-service/internal/service/restaurants"
	createReservationUC "github.com/reservely/reservation-service/internal/usecase/create_reservation"
	getAvailableSlotsUC "github.com/reservely/reservation-service/internal/usecase/get_available_slots"
	validateReservationUC "github.com/reservely/reservation-service/internal/usecase/validate_reservation"
	"github.com/reservely/reservation-service/pkg/logger"
	"github.com/reservely/reservation-service/pkg/metrics"
	"github.com/reservely/reservation-service/pkg/tracing"
	"github.com/reservely/reservation-service/pkg/txmanager"
)

// Publisher события бронирований с освобождением ресурсов
type Publisher interface {
	createReservationUC.EventPublisher
	bookingsService.EventPublisher
	Close() error
}

func newServeCmd(configPath *string) *cobra.Command {
	var migrateUp bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadRuntime(*configPath)
			if err != nil {
				return err
			}
			defer log.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg, log, migrateUp)
		},
	}

	cmd.Flags().BoolVar(&migrateUp, "migrate", false, "apply database migrations before starting")

	return cmd
}

func serve(ctx context.Context, cfg *config.Config, log *logger.Logger, migrateUp bool) error {
	log.Info("Starting reservely %s...", Version)

	// Трейсинг
	shutdownTracing, err := tracing.Setup(ctx, tracing.Config{
		Enabled:      cfg.Tracing.Enabled,
		ServiceName:  cfg.Metrics.ServiceName,
		OTLPEndpoint: cfg.Tracing.OTLPEndpoint,
		SampleRatio:  cfg.Tracing.SampleRatio,
	})
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Warn("Tracing shutdown failed: %v", err)
		}
	}()

	// База данных
	db, err := openDB(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	txManager := txmanager.NewTransactionManager(db)

	if migrateUp {
		if err := migrations.Up(ctx, db, txManager, log); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	// Метрики (nil-коллектор безопасен для вызова)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		if err := metricsCollector.RegisterDB(db, cfg.Database.DBName); err != nil {
			log.Warn("Failed to register DB stats collector: %v", err)
		}
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Блокировка на ресторан: Redis для нескольких экземпляров, иначе внутри процесса
	var locker createReservationUC.Locker
	if cfg.Redis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("ping redis: %w", err)
		}
		locker = lock.NewRedis(redisClient, time.Duration(cfg.Redis.LockTTL)*time.Millisecond, log)
		log.Info("Using Redis lock (addr=%s)", cfg.Redis.Addr)
	} else {
		locker = lock.NewLocal()
		log.Info("Using in-process lock")
	}

	// События
	var publisher Publisher = events.NoopPublisher{}
	if len(cfg.Kafka.Brokers) > 0 {
		publisher = events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		log.Info("Publishing events to Kafka (topic=%s)", cfg.Kafka.Topic)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Warn("Publisher close failed: %v", err)
		}
	}()

	// Репозитории
	restaurants := restaurantRepo.NewRepository(db)
	tables := tableRepo.NewRepository(db)
	bookingRepository := bookingRepo.NewRepository(db)

	// Use cases и сервисы
	validateUseCase := validateReservationUC.NewUseCase(restaurants, tables, bookingRepository, nil, metricsCollector, log)
	createUseCase := createReservationUC.NewUseCase(
		validateUseCase,
		bookingRepository,
		txManager,
		locker,
		publisher,
		metricsCollector,
		cfg.Reservations.CreateAttempts,
		log,
	)
	slotsUseCase := getAvailableSlotsUC.NewUseCase(restaurants, tables, bookingRepository, nil, log)
	bookingSvc := bookingsService.NewService(bookingRepository, txManager, publisher, log)
	restaurantSvc := restaurantsService.NewService(restaurants, nil, log)

	router := newRouter(cfg, log, metricsCollector, routes{
		validate:           validateReservationHandler.NewHandler(validateUseCase, log),
		create:             createReservationHandler.NewHandler(createUseCase, log),
		slots:              getAvailableSlotsHandler.NewHandler(slotsUseCase, log),
		hours:              getRestaurantHoursHandler.NewHandler(restaurantSvc, log),
		restaurantBookings: getRestaurantBookingsHandler.NewHandler(bookingSvc, log),
		booking:            getBookingHandler.NewHandler(bookingSvc, log),
		updateStatus:       updateBookingStatusHandler.NewHandler(bookingSvc, log),
		endTime:            computeEndTimeHandler.NewHandler(log),
	})

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      otelhttp.NewHandler(router, "reservely"),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		return err
	}

	log.Info("Server stopped gracefully")
	return nil
}

type routes struct {
	validate           *validateReservationHandler.Handler
	create             *createReservationHandler.Handler
	slots              *getAvailableSlotsHandler.Handler
	hours              *getRestaurantHoursHandler.Handler
	restaurantBookings *getRestaurantBookingsHandler.Handler
	booking            *getBookingHandler.Handler
	updateStatus       *updateBookingStatusHandler.Handler
	endTime            *computeEndTimeHandler.Handler
}

func newRouter(cfg *config.Config, log *logger.Logger, metricsCollector *metrics.Metrics, h routes) *mux.Router {
	r := mux.NewRouter()

	if metricsCollector != nil {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Бронирования ---
	api.HandleFunc("/reservations/validate", h.validate.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations", h.create.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", h.booking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/status", h.updateStatus.Handle).Methods(http.MethodPatch)

	// --- Рестораны ---
	api.HandleFunc("/restaurants/{restaurantId}/available-slots", h.slots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/restaurants/{restaurantId}/hours", h.hours.Handle).Methods(http.MethodGet)
	api.HandleFunc("/restaurants/{restaurantId}/bookings", h.restaurantBookings.Handle).Methods(http.MethodGet)

	// --- Утилиты ---
	api.HandleFunc("/end-time", h.endTime.Handle).Methods(http.MethodGet)

	return r
}
