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

	cancelBookingHandler "github.com/glashaus-studio/GH-VisitService/internal/api/handlers/cancel_booking"
	createBlockHandler "github.com/glashaus-studio/GH-VisitService/internal/api/handlers/create_block"
	createBookingHandler "github.com/glashaus-studio/GH-VisitService/internal/api/handlers/create_booking"
	createSlotHandler "github.com/glashaus-studio/GH-VisitService/internal/api/handlers/create_slot"
	deleteBlockHandler "github.com/glashaus-studio/GH-VisitService/internal/api/handlers/delete_block"
	deleteSlotHandler "github.com/glashaus-studio/GH-VisitService/internal/api/handlers/delete_slot"
	getAvailableStartsHandler "github.com/glashaus-studio/GH-VisitService/internal/api/handlers/get_available_starts"
	getBookingHandler "github.com/glashaus-studio/GH-VisitService/internal/api/handlers/get_booking"
	getDayVisitsHandler "github.com/glashaus-studio/GH-VisitService/internal/api/handlers/get_day_visits"
	listBlocksHandler "github.com/glashaus-studio/GH-VisitService/internal/api/handlers/list_blocks"
	listSlotsHandler "github.com/glashaus-studio/GH-VisitService/internal/api/handlers/list_slots"
	sendReminderHandler "github.com/glashaus-studio/GH-VisitService/internal/api/handlers/send_reminder"
	setPriceHandler "github.com/glashaus-studio/GH-VisitService/internal/api/handlers/set_price"
	updatePartySizeHandler "github.com/glashaus-studio/GH-VisitService/internal/api/handlers/update_party_size"
	validateBookingHandler "github.com/glashaus-studio/GH-VisitService/internal/api/handlers/validate_booking"
	"github.com/glashaus-studio/GH-VisitService/internal/api/middleware"
	"github.com/glashaus-studio/GH-VisitService/internal/config"
	dayblockRepo "github.com/glashaus-studio/GH-VisitService/internal/infra/storage/dayblock"
	settingsRepo "github.com/glashaus-studio/GH-VisitService/internal/infra/storage/settings"
	slotRepo "github.com/glashaus-studio/GH-VisitService/internal/infra/storage/slot"
	visitRepo "github.com/glashaus-studio/GH-VisitService/internal/infra/storage/visit"
	mailerClient "github.com/glashaus-studio/GH-VisitService/internal/integrations/mailer"
	telegramClient "github.com/glashaus-studio/GH-VisitService/internal/integrations/telegram"
	"github.com/glashaus-studio/GH-VisitService/internal/notify"
	blocksService "github.com/glashaus-studio/GH-VisitService/internal/service/blocks"
	slotsService "github.com/glashaus-studio/GH-VisitService/internal/service/slots"
	visitsService "github.com/glashaus-studio/GH-VisitService/internal/service/visits"
	createBookingUC "github.com/glashaus-studio/GH-VisitService/internal/usecase/create_booking"
	getAvailableStartsUC "github.com/glashaus-studio/GH-VisitService/internal/usecase/get_available_starts"
	"github.com/glashaus-studio/GH-VisitService/pkg/dbmetrics"
	"github.com/glashaus-studio/GH-VisitService/pkg/logger"
	"github.com/glashaus-studio/GH-VisitService/pkg/metrics"
	"github.com/glashaus-studio/GH-VisitService/pkg/simpletxmanager"
	"github.com/glashaus-studio/GH-VisitService/pkg/txmanager"
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

	log.Info("Starting GH-VisitService...")
	log.Info("Configuration loaded from config.toml")

	// Собираем политику бронирования из конфигурации
	policy, err := cfg.Booking.Policy()
	if err != nil {
		log.Fatal("Invalid booking configuration: %v", err)
	}
	log.Info("Booking policy: capacity=%d, hours=%s-%s, grid=%dmin",
		policy.RoomCapacity, policy.OpeningTime, policy.ClosingTime, policy.SlotGranularityMinutes)

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

	// Инициализируем каналы уведомлений
	mailer := mailerClient.NewClient(
		cfg.Notifications.MailerURL,
		cfg.Notifications.MailFrom,
		time.Duration(cfg.Notifications.MailerTimeout)*time.Second,
		log,
	)
	telegram := telegramClient.NewClient(
		cfg.Notifications.TelegramAPIURL,
		cfg.Notifications.TelegramToken,
		cfg.Notifications.TelegramChatID,
		time.Duration(cfg.Notifications.TelegramTimeout)*time.Second,
		log,
	)
	notifier := notify.NewNotifier(
		mailer,
		telegram,
		metricsCollector,
		log,
		time.Duration(cfg.Notifications.DispatchTimeout)*time.Second,
		cfg.Notifications.Enabled,
	)
	log.Info("Notification channels initialized (enabled=%v)", cfg.Notifications.Enabled)

	// Инициализируем репозитории (с метриками или без)
	var (
		visitRepository    *visitRepo.Repository
		dayblockRepository *dayblockRepo.Repository
		slotRepository     *slotRepo.Repository
		settingsRepository *settingsRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		visitRepository = visitRepo.NewRepository(wrappedDB)
		dayblockRepository = dayblockRepo.NewRepository(wrappedDB)
		slotRepository = slotRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		visitRepository = visitRepo.NewRepository(db)
		dayblockRepository = dayblockRepo.NewRepository(db)
		slotRepository = slotRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	visitSvc := visitsService.NewService(
		visitRepository,
		txMgr,
		notifier,
		policy,
		log,
	)
	blockSvc := blocksService.NewService(
		dayblockRepository,
		log,
	)
	slotSvc := slotsService.NewService(
		slotRepository,
		settingsRepository,
		policy,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		visitRepository,
		slotRepository,
		dayblockRepository,
		settingsRepository,
		txMgr,
		notifier,
		policy,
		metricsCollector,
		nil,
		log,
	)
	getAvailableStartsUseCase := getAvailableStartsUC.NewUseCase(
		visitRepository,
		dayblockRepository,
		policy,
		nil,
		log,
	)

	// Инициализируем handlers
	getAvailableStarts := getAvailableStartsHandler.NewHandler(getAvailableStartsUseCase, log)
	validateBooking := validateBookingHandler.NewHandler(createBookingUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log, false)
	createBookingAdmin := createBookingHandler.NewHandler(createBookingUseCase, log, true)
	getBooking := getBookingHandler.NewHandler(visitSvc, log)
	getDayVisits := getDayVisitsHandler.NewHandler(visitSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(visitSvc, log)
	updatePartySize := updatePartySizeHandler.NewHandler(visitSvc, log, false)
	updatePartySizeAdmin := updatePartySizeHandler.NewHandler(visitSvc, log, true)
	sendReminder := sendReminderHandler.NewHandler(visitSvc, log)
	createBlock := createBlockHandler.NewHandler(blockSvc, log)
	listBlocks := listBlocksHandler.NewHandler(blockSvc, log)
	deleteBlock := deleteBlockHandler.NewHandler(blockSvc, log)
	createSlot := createSlotHandler.NewHandler(slotSvc, log)
	listSlots := listSlotsHandler.NewHandler(slotSvc, log)
	deleteSlot := deleteSlotHandler.NewHandler(slotSvc, log)
	setPrice := setPriceHandler.NewHandler(slotSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// Доступные времена начала визита
	api.HandleFunc("/available-starts", getAvailableStarts.Handle).Methods(http.MethodGet)

	// Предварительная проверка бронирования
	api.HandleFunc("/bookings/validate", validateBooking.Handle).Methods(http.MethodPost)

	// Создание бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	api.HandleFunc("/bookings/{visitId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	api.HandleFunc("/bookings/{visitId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Изменение размера группы
	api.HandleFunc("/bookings/{visitId}/party-size", updatePartySize.Handle).Methods(http.MethodPatch)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth(cfg.Server.AdminToken))

	// Визиты дня
	admin.HandleFunc("/days/{date}/bookings", getDayVisits.Handle).Methods(http.MethodGet)

	// Создание бронирования с adminOverride
	admin.HandleFunc("/bookings", createBookingAdmin.Handle).Methods(http.MethodPost)

	// Изменение размера группы с force
	admin.HandleFunc("/bookings/{visitId}/party-size", updatePartySizeAdmin.Handle).Methods(http.MethodPatch)

	// Напоминание о визите
	admin.HandleFunc("/bookings/{visitId}/reminder", sendReminder.Handle).Methods(http.MethodPost)

	// Блокировки дней
	admin.HandleFunc("/blocks", createBlock.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/blocks", listBlocks.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/blocks/{blockId}", deleteBlock.Handle).Methods(http.MethodDelete)

	// Слоты и базовые цены
	admin.HandleFunc("/slots", createSlot.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/slots", listSlots.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/slots/{slotId}", deleteSlot.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/settings/prices", setPrice.Handle).Methods(http.MethodPut)

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
