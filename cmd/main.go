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

	cancelBookingHandler "github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/api/handlers/cancel_booking"
	checkDateFullHandler "github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/api/handlers/check_date_full"
	createBookingHandler "github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/api/handlers/create_booking"
	getAvailableTimesHandler "github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/api/handlers/get_available_times"
	getBookingHandler "github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/api/handlers/get_booking"
	getTourBookingsHandler "github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/api/handlers/get_tour_bookings"
	getTourConfigHandler "github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/api/handlers/get_tour_config"
	getUserBookingsHandler "github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/api/handlers/get_user_bookings"
	nextAvailableDateHandler "github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/api/handlers/next_available_date"
	preloadAvailabilityHandler "github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/api/handlers/preload_availability"
	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/api/middleware"
	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/config"
	availabilityCache "github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/infra/cache/availability"
	bookingRepo "github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/infra/storage/booking"
	timeslotRepo "github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/infra/storage/timeslot"
	bokunClient "github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/integrations/bokun"
	availabilityService "github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/service/availability"
	bookingsService "github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/service/bookings"
	toursService "github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/service/tours"
	checkDateFullUC "github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/usecase/check_date_full"
	createBookingUC "github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/usecase/create_booking"
	findNextAvailableDateUC "github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/usecase/find_next_available_date"
	getAvailableTimesUC "github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/usecase/get_available_times"
	preloadAvailabilityUC "github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/usecase/preload_availability"
	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/pkg/dbmetrics"
	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/pkg/logger"
	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/pkg/metrics"
	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/pkg/simpletxmanager"
	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/pkg/txmanager"
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

	log.Info("Starting tomodachitours availability service...")
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

	// Загружаем статическую конфигурацию туров
	tourProvider, err := toursService.NewProvider(cfg.Tours)
	if err != nil {
		log.Fatal("Failed to load tour configuration: %v", err)
	}
	log.Info("Tour configuration loaded (%d tours)", len(tourProvider.All()))

	// Инициализируем клиент внешнего источника доступности
	bokun := bokunClient.NewClient(
		cfg.Bokun.URL,
		time.Duration(cfg.Bokun.Timeout)*time.Second,
		log,
		metricsCollector,
	)
	log.Info("Bokun client initialized (url=%s, timeout=%ds)", cfg.Bokun.URL, cfg.Bokun.Timeout)

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		timeslotRepository *timeslotRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		timeslotRepository = timeslotRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		timeslotRepository = timeslotRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем preload-кэш доступности
	cache := availabilityCache.New(time.Duration(cfg.Availability.CacheTTLSeconds) * time.Second)
	if cfg.Metrics.Enabled {
		cache = cache.WithMetrics(metricsCollector)
	}
	log.Info("Availability cache initialized (ttl=%ds)", cfg.Availability.CacheTTLSeconds)

	// Инициализируем сервисы
	adapter := availabilityService.NewAdapter(timeslotRepository, bokun, log)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		tourProvider,
		cfg.Server.AdminUserIDs,
		log,
	)

	// Инициализируем use cases
	getAvailableTimesUseCase := getAvailableTimesUC.NewUseCase(
		bookingRepository,
		tourProvider,
		cache,
		log,
	)
	checkDateFullUseCase := checkDateFullUC.NewUseCase(
		bookingRepository,
		tourProvider,
		cache,
		log,
	)
	findNextAvailableDateUseCase := findNextAvailableDateUC.NewUseCase(
		adapter,
		tourProvider,
		cfg.Availability.ScanHorizonDays,
		log,
	)
	preloadAvailabilityUseCase := preloadAvailabilityUC.NewUseCase(
		adapter,
		cache,
		tourProvider,
		cfg.Availability.PreloadMaxDays,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		tourProvider,
		adapter,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getAvailableTimes := getAvailableTimesHandler.NewHandler(getAvailableTimesUseCase, log)
	checkDateFull := checkDateFullHandler.NewHandler(checkDateFullUseCase, log)
	nextAvailableDate := nextAvailableDateHandler.NewHandler(findNextAvailableDateUseCase, log)
	preloadAvailability := preloadAvailabilityHandler.NewHandler(preloadAvailabilityUseCase, log)
	getTourConfig := getTourConfigHandler.NewHandler(tourProvider, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getTourBookings := getTourBookingsHandler.NewHandler(bookingSvc, log)

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

	// Доступные времена тура на дату
	api.HandleFunc("/tours/{tourType}/available-times",
		getAvailableTimes.Handle).Methods(http.MethodGet)

	// Проверка заполненности даты
	api.HandleFunc("/tours/{tourType}/date-full",
		checkDateFull.Handle).Methods(http.MethodGet)

	// Ближайшая дата с доступностью
	api.HandleFunc("/tours/{tourType}/next-available-date",
		nextAvailableDate.Handle).Methods(http.MethodGet)

	// Прогрев кэша доступности на диапазон дат
	api.HandleFunc("/tours/{tourType}/availability/preload",
		preloadAvailability.Handle).Methods(http.MethodPost)

	// Статическая конфигурация тура
	api.HandleFunc("/tours/{tourType}/config",
		getTourConfig.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Бэк-офис ---
	// Список бронирований тура
	protected.HandleFunc("/tours/{tourType}/bookings", getTourBookings.Handle).Methods(http.MethodGet)

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
