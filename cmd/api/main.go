package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/peoplecore/hrm-backend-go/internal/config"
	appHTTP "github.com/peoplecore/hrm-backend-go/internal/handler/http"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/database"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/jwt"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/oauth"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/queue"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/sse"
	"github.com/peoplecore/hrm-backend-go/internal/repository/postgresql"
	redisrepo "github.com/peoplecore/hrm-backend-go/internal/repository/redis"
	attendanceService "github.com/peoplecore/hrm-backend-go/internal/service/attendance"
	authService "github.com/peoplecore/hrm-backend-go/internal/service/auth"
	leaveService "github.com/peoplecore/hrm-backend-go/internal/service/leave"
	masterService "github.com/peoplecore/hrm-backend-go/internal/service/master"
	notificationService "github.com/peoplecore/hrm-backend-go/internal/service/notification"
	personnelService "github.com/peoplecore/hrm-backend-go/internal/service/personnel"
	reportService "github.com/peoplecore/hrm-backend-go/internal/service/report"
	shiftService "github.com/peoplecore/hrm-backend-go/internal/service/shift"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "peoplecore-hrm"),
	)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		logger.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	redisClient := goredis.NewClient(&goredis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	publisher, err := queue.NewPublisher(cfg.RabbitMQ.DSN)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer publisher.Close()

	accessTTL, err := time.ParseDuration(cfg.JWT.AccessExpiration)
	if err != nil {
		logger.Error("invalid JWT access expiration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	refreshTTL, err := time.ParseDuration(cfg.JWT.RefreshExpiration)
	if err != nil {
		logger.Error("invalid JWT refresh expiration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	userRepo := postgresql.NewUserRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)
	personnelRepo := postgresql.NewPersonnelRepository(db)
	branchRepo := postgresql.NewBranchRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	leaveTypeRepo := postgresql.NewLeaveTypeRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	shiftAssignmentRepo := postgresql.NewShiftAssignmentRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)
	qrTokenStore := redisrepo.NewTokenStore(redisClient)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, accessTTL, refreshTTL)
	googleSvc := oauth.NewGoogleService(
		cfg.OAuthGoogle.ClientID,
		cfg.OAuthGoogle.ClientSecret,
		cfg.OAuthGoogle.RedirectURL,
		cfg.OAuthGoogle.Scopes,
	)
	hub := sse.NewHub()

	notificationSvc := notificationService.NewService(notificationRepo, userRepo, hub, publisher, logger)
	authSvc := authService.NewService(db, userRepo, refreshTokenRepo, jwtSvc, googleSvc)
	personnelSvc := personnelService.NewService(personnelRepo, departmentRepo, branchRepo)
	masterSvc := masterService.NewService(branchRepo, departmentRepo)
	typeSvc := leaveService.NewTypeService(leaveTypeRepo)
	balanceSvc := leaveService.NewBalanceService(leaveTypeRepo, leaveRequestRepo)
	coverageSvc := leaveService.NewCoverageService(personnelRepo, leaveRequestRepo)
	validationSvc := leaveService.NewValidationService(balanceSvc, leaveRequestRepo)
	requestSvc := leaveService.NewRequestService(db, leaveTypeRepo, leaveRequestRepo, personnelRepo, notificationSvc)
	shiftSvc := shiftService.NewService(shiftRepo, shiftAssignmentRepo, personnelRepo, leaveRequestRepo, notificationSvc)
	attendanceSvc := attendanceService.NewService(
		attendanceRepo,
		qrTokenStore,
		branchRepo,
		personnelRepo,
		cfg.Attendance.QRSecret,
		time.Duration(cfg.Attendance.QRTokenTTL)*time.Second,
	)
	reportSvc := reportService.NewService(personnelRepo, attendanceRepo, balanceSvc, leaveRequestRepo)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			AppEnv:      cfg.App.Env,
			FrontendURL: cfg.App.FrontendURL,
		},
		jwtSvc,
		appHTTP.NewAuthHandler(authSvc, jwtSvc),
		appHTTP.NewPersonnelHandler(personnelSvc),
		appHTTP.NewMasterHandler(masterSvc),
		appHTTP.NewLeaveHandler(typeSvc, requestSvc, balanceSvc, coverageSvc, validationSvc),
		appHTTP.NewShiftHandler(shiftSvc),
		appHTTP.NewAttendanceHandler(attendanceSvc),
		appHTTP.NewNotificationHandler(notificationSvc, hub, jwtSvc),
		appHTTP.NewReportHandler(reportSvc, masterSvc),
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server starting", slog.Int("port", cfg.App.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", slog.String("error", err.Error()))
	}
}
