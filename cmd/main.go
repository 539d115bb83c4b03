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

	clearSessionHandler "github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/api/handlers/clear_session"
	commitSessionHandler "github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/api/handlers/commit_session"
	createBookingHandler "github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/api/handlers/get_available_slots"
	getBarbershopBookingsHandler "github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/api/handlers/get_barbershop_bookings"
	getBookingHandler "github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/api/handlers/get_booking"
	getClientBookingsHandler "github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/api/handlers/get_client_bookings"
	getSessionHandler "github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/api/handlers/get_session"
	setBookingStatusHandler "github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/api/handlers/set_booking_status"
	updateSessionHandler "github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/api/handlers/update_session"
	"github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/api/middleware"
	"github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/config"
	bookingRepo "github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/infra/storage/booking"
	catalogRepo "github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/infra/storage/catalog"
	notifyClient "github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/integrations/notifyservice"
	"github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/scheduler/reminders"
	bookingsService "github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/service/bookings"
	sessionsService "github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/service/sessions"
	createBookingUC "github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/usecase/get_available_slots"
	"github.com/Ibrohimov-Abdullah/navbat-booking-service/pkg/dbmetrics"
	"github.com/Ibrohimov-Abdullah/navbat-booking-service/pkg/logger"
	"github.com/Ibrohimov-Abdullah/navbat-booking-service/pkg/metrics"
	"github.com/Ibrohimov-Abdullah/navbat-booking-service/pkg/simpletxmanager"
	"github.com/Ibrohimov-Abdullah/navbat-booking-service/pkg/txmanager"
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

	log.Info("Starting navbat-booking-service...")
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

	// Клиент сервиса уведомлений
	notifier := notifyClient.NewClient(
		cfg.NotifyService.URL,
		time.Duration(cfg.NotifyService.Timeout)*time.Second,
		log,
	)
	log.Info("Notification client initialized (NotifyService=%s timeout=%ds)",
		cfg.NotifyService.URL, cfg.NotifyService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		catalogRepository *catalogRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		catalogRepository,
		notifier,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		catalogRepository,
		log,
	)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		catalogRepository,
		notifier,
		log,
	)
	sessionSvc := sessionsService.NewService(createBookingUseCase, log)

	// Планировщик напоминаний
	schedulerCtx, stopScheduler := context.WithCancel(context.Background())
	defer stopScheduler()

	if cfg.Scheduler.Enabled {
		reminderScheduler := reminders.New(
			bookingRepository,
			catalogRepository,
			notifier,
			metricsCollector,
			time.Duration(cfg.Scheduler.SweepInterval)*time.Second,
			log,
		)
		go reminderScheduler.Run(schedulerCtx)
		log.Info("Reminder scheduler started (interval=%ds)", cfg.Scheduler.SweepInterval)
	}

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	setBookingStatus := setBookingStatusHandler.NewHandler(bookingSvc, log)
	getClientBookings := getClientBookingsHandler.NewHandler(bookingSvc, log)
	getBarbershopBookings := getBarbershopBookingsHandler.NewHandler(bookingSvc, log)
	getSession := getSessionHandler.NewHandler(sessionSvc, log)
	updateSession := updateSessionHandler.NewHandler(sessionSvc, log)
	commitSession := commitSessionHandler.NewHandler(sessionSvc, log)
	clearSession := clearSessionHandler.NewHandler(sessionSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
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

	// Свободные слоты барбера на дату
	api.HandleFunc("/barbers/{barberId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

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

	// Смена статуса бронирования (confirmed / cancelled / completed)
	protected.HandleFunc("/bookings/{bookingId}/status", setBookingStatus.Handle).Methods(http.MethodPatch)

	// История бронирований клиента (активные и прошедшие)
	protected.HandleFunc("/clients/{clientId}/bookings", getClientBookings.Handle).Methods(http.MethodGet)

	// --- Барбершоп (для владельцев) ---
	// Список бронирований барбершопа
	protected.HandleFunc("/barbershops/{shopId}/bookings", getBarbershopBookings.Handle).Methods(http.MethodGet)

	// --- Сессии подбора ---
	// Текущее состояние сессии
	protected.HandleFunc("/sessions/{clientId}", getSession.Handle).Methods(http.MethodGet)

	// Пошаговое обновление выбора
	protected.HandleFunc("/sessions/{clientId}", updateSession.Handle).Methods(http.MethodPut)

	// Превращение сессии в бронирование
	protected.HandleFunc("/sessions/{clientId}/commit", commitSession.Handle).Methods(http.MethodPost)

	// Сброс сессии
	protected.HandleFunc("/sessions/{clientId}", clearSession.Handle).Methods(http.MethodDelete)

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

	// Останавливаем планировщик напоминаний
	stopScheduler()

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
