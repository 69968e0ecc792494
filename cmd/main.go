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

	createAssignmentHandler "github.com/m04kA/SMC-StaffScheduler/internal/api/handlers/create_assignment"
	createEmployeeHandler "github.com/m04kA/SMC-StaffScheduler/internal/api/handlers/create_employee"
	deleteAssignmentHandler "github.com/m04kA/SMC-StaffScheduler/internal/api/handlers/delete_assignment"
	deleteEmployeeHandler "github.com/m04kA/SMC-StaffScheduler/internal/api/handlers/delete_employee"
	exportScheduleHandler "github.com/m04kA/SMC-StaffScheduler/internal/api/handlers/export_employee_schedule"
	getAssignmentHandler "github.com/m04kA/SMC-StaffScheduler/internal/api/handlers/get_assignment"
	getEmployeeHandler "github.com/m04kA/SMC-StaffScheduler/internal/api/handlers/get_employee"
	getScheduleHandler "github.com/m04kA/SMC-StaffScheduler/internal/api/handlers/get_employee_schedule"
	getSettingsHandler "github.com/m04kA/SMC-StaffScheduler/internal/api/handlers/get_settings"
	getTimeSlotsHandler "github.com/m04kA/SMC-StaffScheduler/internal/api/handlers/get_time_slots"
	healthHandler "github.com/m04kA/SMC-StaffScheduler/internal/api/handlers/health"
	listAssignmentsHandler "github.com/m04kA/SMC-StaffScheduler/internal/api/handlers/list_assignments"
	listEmployeesHandler "github.com/m04kA/SMC-StaffScheduler/internal/api/handlers/list_employees"
	updateAssignmentHandler "github.com/m04kA/SMC-StaffScheduler/internal/api/handlers/update_assignment"
	updateStatusHandler "github.com/m04kA/SMC-StaffScheduler/internal/api/handlers/update_assignment_status"
	updateEmployeeHandler "github.com/m04kA/SMC-StaffScheduler/internal/api/handlers/update_employee"
	updateSettingsHandler "github.com/m04kA/SMC-StaffScheduler/internal/api/handlers/update_settings"
	"github.com/m04kA/SMC-StaffScheduler/internal/api/middleware"
	"github.com/m04kA/SMC-StaffScheduler/internal/config"
	"github.com/m04kA/SMC-StaffScheduler/internal/domain"
	assignmentRepo "github.com/m04kA/SMC-StaffScheduler/internal/infra/storage/assignment"
	employeeRepo "github.com/m04kA/SMC-StaffScheduler/internal/infra/storage/employee"
	settingsRepo "github.com/m04kA/SMC-StaffScheduler/internal/infra/storage/settings"
	"github.com/m04kA/SMC-StaffScheduler/internal/integrations/notifier"
	assignmentsService "github.com/m04kA/SMC-StaffScheduler/internal/service/assignments"
	employeesService "github.com/m04kA/SMC-StaffScheduler/internal/service/employees"
	settingsService "github.com/m04kA/SMC-StaffScheduler/internal/service/settings"
	createAssignmentUC "github.com/m04kA/SMC-StaffScheduler/internal/usecase/create_assignment"
	getScheduleUC "github.com/m04kA/SMC-StaffScheduler/internal/usecase/get_employee_schedule"
	getTimeSlotsUC "github.com/m04kA/SMC-StaffScheduler/internal/usecase/get_time_slots"
	updateAssignmentUC "github.com/m04kA/SMC-StaffScheduler/internal/usecase/update_assignment"
	"github.com/m04kA/SMC-StaffScheduler/pkg/dbmetrics"
	"github.com/m04kA/SMC-StaffScheduler/pkg/idgen"
	"github.com/m04kA/SMC-StaffScheduler/pkg/logger"
	"github.com/m04kA/SMC-StaffScheduler/pkg/metrics"
	"github.com/m04kA/SMC-StaffScheduler/pkg/txmanager"
	"github.com/m04kA/SMC-StaffScheduler/pkg/types"
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

	log.Info("Starting SMC-StaffScheduler...")

	location, err := cfg.Calendar.Location()
	if err != nil {
		log.Fatal("Invalid calendar timezone: %v", err)
	}
	log.Info("Calendar timezone: %s", location)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Настройки по умолчанию из конфигурации
	defaultHours := domain.WorkHours{
		Start: types.TimeString(cfg.Calendar.DefaultWorkStart),
		End:   types.TimeString(cfg.Calendar.DefaultWorkEnd),
	}
	defaultSettings := &domain.CalendarSettings{
		WorkStartTime:       defaultHours.Start,
		WorkEndTime:         defaultHours.End,
		SlotDurationMinutes: cfg.Calendar.DefaultSlotDuration,
	}

	// Инициализируем репозитории
	employeeRepository := employeeRepo.NewRepository(wrappedDB)
	assignmentRepository := assignmentRepo.NewRepository(wrappedDB)
	settingsRepository := settingsRepo.NewRepository(wrappedDB, defaultSettings)

	// Создаем строку настроек, если ее еще нет
	if _, err := settingsRepository.Get(context.Background()); err != nil {
		log.Fatal("Failed to initialize calendar settings: %v", err)
	}

	// Уведомления о записи (nil - отключены)
	var confirmationNotifier createAssignmentUC.Notifier
	if cfg.Notifications.Enabled {
		confirmationNotifier = notifier.NewClient(
			cfg.Notifications.From,
			cfg.Notifications.WebhookURL,
			time.Duration(cfg.Notifications.Timeout)*time.Second,
			location,
			log,
		)
		log.Info("Notifications enabled (from=%s, webhook=%t)", cfg.Notifications.From, cfg.Notifications.WebhookURL != "")
	}

	// Получатели доменных метрик (nil - метрики отключены)
	var (
		slotsRecorder      getTimeSlotsUC.SlotsRecorder
		assignmentRecorder createAssignmentUC.AssignmentRecorder
		conflictRecorder   updateAssignmentUC.ConflictRecorder
	)
	if cfg.Metrics.Enabled {
		slotsRecorder = metricsCollector
		assignmentRecorder = metricsCollector
		conflictRecorder = metricsCollector
	}

	// Инициализируем сервисы
	employeeSvc := employeesService.NewService(employeeRepository, idgen.UUIDGenerator{}, defaultHours, log)
	assignmentSvc := assignmentsService.NewService(assignmentRepository, txMgr, location, log)
	settingsSvc := settingsService.NewService(settingsRepository, log)

	// Инициализируем use cases
	getTimeSlotsUseCase := getTimeSlotsUC.NewUseCase(
		employeeRepository,
		assignmentRepository,
		settingsRepository,
		txMgr,
		slotsRecorder,
		location,
		log,
	)
	getScheduleUseCase := getScheduleUC.NewUseCase(
		employeeRepository,
		assignmentRepository,
		location,
		cfg.Calendar.ScheduleRangeDays,
		log,
	)
	createAssignmentUseCase := createAssignmentUC.NewUseCase(
		employeeRepository,
		assignmentRepository,
		txMgr,
		confirmationNotifier,
		assignmentRecorder,
		idgen.UUIDGenerator{},
		cfg.Calendar.AllowPastBookings,
		log,
	)
	updateAssignmentUseCase := updateAssignmentUC.NewUseCase(
		employeeRepository,
		assignmentRepository,
		txMgr,
		conflictRecorder,
		log,
	)

	// Инициализируем handlers
	getTimeSlots := getTimeSlotsHandler.NewHandler(getTimeSlotsUseCase, location, log)
	getSchedule := getScheduleHandler.NewHandler(getScheduleUseCase, location, log)
	exportSchedule := exportScheduleHandler.NewHandler(getScheduleUseCase, location, log)

	createEmployee := createEmployeeHandler.NewHandler(employeeSvc, log)
	listEmployees := listEmployeesHandler.NewHandler(employeeSvc, log)
	getEmployee := getEmployeeHandler.NewHandler(employeeSvc, log)
	updateEmployee := updateEmployeeHandler.NewHandler(employeeSvc, log)
	deleteEmployee := deleteEmployeeHandler.NewHandler(employeeSvc, log)

	createAssignment := createAssignmentHandler.NewHandler(createAssignmentUseCase, location, log)
	listAssignments := listAssignmentsHandler.NewHandler(assignmentSvc, location, log)
	getAssignment := getAssignmentHandler.NewHandler(assignmentSvc, log)
	updateAssignment := updateAssignmentHandler.NewHandler(updateAssignmentUseCase, location, log)
	updateStatus := updateStatusHandler.NewHandler(assignmentSvc, log)
	deleteAssignment := deleteAssignmentHandler.NewHandler(assignmentSvc, log)

	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)

	health := healthHandler.NewHandler(wrappedDB, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recover(log))
	r.Use(middleware.AccessLog(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Календарь ---
	api.HandleFunc("/calendar/slots", getTimeSlots.Handle).Methods(http.MethodGet)

	// --- Сотрудники ---
	api.HandleFunc("/employees", createEmployee.Handle).Methods(http.MethodPost)
	api.HandleFunc("/employees", listEmployees.Handle).Methods(http.MethodGet)
	api.HandleFunc("/employees/{employeeId}", getEmployee.Handle).Methods(http.MethodGet)
	api.HandleFunc("/employees/{employeeId}", updateEmployee.Handle).Methods(http.MethodPut)
	api.HandleFunc("/employees/{employeeId}", deleteEmployee.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/employees/{employeeId}/schedule", getSchedule.Handle).Methods(http.MethodGet)
	api.HandleFunc("/employees/{employeeId}/schedule.ics", exportSchedule.Handle).Methods(http.MethodGet)

	// --- Назначения ---
	api.HandleFunc("/assignments", createAssignment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/assignments", listAssignments.Handle).Methods(http.MethodGet)
	api.HandleFunc("/assignments/{assignmentId}", getAssignment.Handle).Methods(http.MethodGet)
	api.HandleFunc("/assignments/{assignmentId}", updateAssignment.Handle).Methods(http.MethodPut)
	api.HandleFunc("/assignments/{assignmentId}", deleteAssignment.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/assignments/{assignmentId}/status", updateStatus.Handle).Methods(http.MethodPatch)

	// --- Настройки ---
	api.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)

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

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	log.Info("Server stopped gracefully")
}
