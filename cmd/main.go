package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	applySelectionHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/apply_selection"
	cancelBookingHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/create_booking"
	getAvailableDatesHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/get_available_dates"
	getBlackoutDatesHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/get_blackout_dates"
	getBookingHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/get_booking"
	getDaySlotsHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/get_day_slots"
	getUserBookingsHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/get_user_bookings"
	getVenueSlotsHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/get_venue_slots"
	quotePriceHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/quote_price"
	"github.com/m04kA/SMC-CourtService/internal/api/middleware"
	"github.com/m04kA/SMC-CourtService/internal/config"
	bookingsRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/bookings"
	courtsRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/courts"
	slotsRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/slots"
	bookingsService "github.com/m04kA/SMC-CourtService/internal/service/bookings"
	"github.com/m04kA/SMC-CourtService/internal/service/slotfeed"
	blackoutDatesUC "github.com/m04kA/SMC-CourtService/internal/usecase/blackout_dates"
	createBookingUC "github.com/m04kA/SMC-CourtService/internal/usecase/create_booking"
	getAvailableDatesUC "github.com/m04kA/SMC-CourtService/internal/usecase/get_available_dates"
	getDaySlotsUC "github.com/m04kA/SMC-CourtService/internal/usecase/get_day_slots"
	quotePriceUC "github.com/m04kA/SMC-CourtService/internal/usecase/quote_price"
	selectSlotUC "github.com/m04kA/SMC-CourtService/internal/usecase/select_slot"
	venueAvailabilityUC "github.com/m04kA/SMC-CourtService/internal/usecase/venue_availability"
	"github.com/m04kA/SMC-CourtService/pkg/cache"
	"github.com/m04kA/SMC-CourtService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtService/pkg/logger"
	"github.com/m04kA/SMC-CourtService/pkg/metrics"
	"github.com/m04kA/SMC-CourtService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-CourtService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-CourtService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Подключаемся к Redis (если включен)
	var blackoutCache blackoutDatesUC.Cache
	if cfg.Redis.Enabled {
		redisClient, err := cache.New(cache.Config{
			Address:  cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal("Failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
		blackoutCache = redisClient
		log.Info("Successfully connected to redis (address=%s)", cfg.Redis.Address)
	} else {
		log.Info("Redis cache disabled, blackout dates are computed on every request")
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		slotRepository    *slotsRepo.Repository
		courtRepository   *courtsRepo.Repository
		bookingRepository *bookingsRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		slotRepository = slotsRepo.NewRepository(wrappedDB)
		courtRepository = courtsRepo.NewRepository(wrappedDB)
		bookingRepository = bookingsRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		slotRepository = slotsRepo.NewRepository(db)
		courtRepository = courtsRepo.NewRepository(db)
		bookingRepository = bookingsRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	feed := slotfeed.NewFeed(slotRepository, log)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		slotRepository,
		txMgr,
		log,
	)

	// Инициализируем use cases
	getAvailableDatesUseCase := getAvailableDatesUC.NewUseCase(slotRepository, courtRepository, log)
	getDaySlotsUseCase := getDaySlotsUC.NewUseCase(slotRepository, courtRepository, cfg.Booking.LeadTimeHours, log)
	selectSlotUseCase := selectSlotUC.NewUseCase(slotRepository, cfg.Booking.LeadTimeHours, log)
	quotePriceUseCase := quotePriceUC.NewUseCase(slotRepository, courtRepository, log)
	venueAvailabilityUseCase := venueAvailabilityUC.NewUseCase(
		feed,
		courtRepository,
		cfg.Booking.LeadTimeHours,
		cfg.Booking.PerCourtCapacity,
		log,
	)
	blackoutDatesUseCase := blackoutDatesUC.NewUseCase(
		slotRepository,
		courtRepository,
		blackoutCache,
		time.Duration(cfg.Redis.TTL)*time.Second,
		cfg.Booking.LeadTimeHours,
		cfg.Booking.PerCourtCapacity,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		slotRepository,
		courtRepository,
		bookingRepository,
		txMgr,
		cfg.Booking.LeadTimeHours,
		log,
	)

	// Инициализируем handlers
	getAvailableDates := getAvailableDatesHandler.NewHandler(getAvailableDatesUseCase, log)
	getDaySlots := getDaySlotsHandler.NewHandler(getDaySlotsUseCase, log)
	applySelection := applySelectionHandler.NewHandler(selectSlotUseCase, log)
	quotePrice := quotePriceHandler.NewHandler(quotePriceUseCase, log)
	getVenueSlots := getVenueSlotsHandler.NewHandler(venueAvailabilityUseCase, log)
	getBlackoutDates := getBlackoutDatesHandler.NewHandler(blackoutDatesUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Даты корта, где есть хотя бы один свободный слот
	api.HandleFunc("/courts/{courtId}/available-dates",
		getAvailableDates.Handle).Methods(http.MethodGet)

	// Слоты корта на дату (с учетом lead time)
	api.HandleFunc("/courts/{courtId}/slots",
		getDaySlots.Handle).Methods(http.MethodGet)

	// Применение клика к выбору слотов
	api.HandleFunc("/selection/apply", applySelection.Handle).Methods(http.MethodPost)

	// Расчет стоимости выбранного блока
	api.HandleFunc("/price/quote", quotePrice.Handle).Methods(http.MethodPost)

	// Доступность площадки на дату с почасовой сеткой
	api.HandleFunc("/venues/{venueId}/slots",
		getVenueSlots.Handle).Methods(http.MethodGet)

	// Даты, когда площадка не может принять запрошенную вместимость
	api.HandleFunc("/venues/{venueId}/blackout-dates",
		getBlackoutDates.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
