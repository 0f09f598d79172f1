package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/peoplecore/hrm-backend-go/internal/handler/http/middleware"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/jwt"
)

type RouterConfig struct {
	AppEnv      string
	FrontendURL string
}

func NewRouter(
	cfg RouterConfig,
	jwtService jwt.Service,
	authHandler AuthHandler,
	personnelHandler PersonnelHandler,
	masterHandler MasterHandler,
	leaveHandler LeaveHandler,
	shiftHandler ShiftHandler,
	attendanceHandler AttendanceHandler,
	notificationHandler NotificationHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "peoplecore-hrm"),
		slog.String("env", cfg.AppEnv),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)
			r.Route("/oauth", func(r chi.Router) {
				r.Get("/google", authHandler.LoginWithGoogle)
				r.Get("/callback/google", authHandler.OAuthCallbackGoogle)
			})

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				r.Post("/logout", authHandler.Logout)
			})
		})

		// The SSE stream authenticates through its own short-lived token, so
		// it stays outside the access token middleware.
		r.Get("/notifications/stream", notificationHandler.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/personnel", func(r chi.Router) {
				r.Get("/", personnelHandler.List)
				r.Get("/{id}", personnelHandler.Get)
				r.Get("/{personnelID}/leave-requests", leaveHandler.ListPersonnelRequests)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", personnelHandler.Create)
					r.Put("/{id}", personnelHandler.Update)
					r.Delete("/{id}", personnelHandler.Delete)
				})
			})

			r.Route("/branches", func(r chi.Router) {
				r.Get("/", masterHandler.ListBranches)
				r.Get("/{id}", masterHandler.GetBranch)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", masterHandler.CreateBranch)
					r.Put("/{id}", masterHandler.UpdateBranch)
					r.Delete("/{id}", masterHandler.DeleteBranch)
				})
			})

			r.Route("/departments", func(r chi.Router) {
				r.Get("/", masterHandler.ListDepartments)
				r.Get("/{id}", masterHandler.GetDepartment)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", masterHandler.CreateDepartment)
					r.Put("/{id}", masterHandler.UpdateDepartment)
					r.Delete("/{id}", masterHandler.DeleteDepartment)
				})
			})

			r.Route("/leave", func(r chi.Router) {
				r.Route("/types", func(r chi.Router) {
					r.Get("/", leaveHandler.ListTypes)
					r.Get("/{id}", leaveHandler.GetType)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireAdmin)
						r.Post("/", leaveHandler.CreateType)
						r.Put("/{id}", leaveHandler.UpdateType)
						r.Delete("/{id}", leaveHandler.DeleteType)
					})
				})

				r.Route("/requests", func(r chi.Router) {
					r.Post("/", leaveHandler.Submit)
					r.Get("/my", leaveHandler.GetMyRequests)
					r.Get("/{id}", leaveHandler.GetRequest)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireManager)
						r.Get("/pending", leaveHandler.ListPending)
						r.Get("/{id}/conflicts", leaveHandler.CheckConflicts)
						r.Post("/{id}/approve", leaveHandler.Approve)
						r.Post("/{id}/reject", leaveHandler.Reject)
					})
				})

				r.Get("/balance", leaveHandler.GetBalance)
				r.Post("/validate", leaveHandler.Validate)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/coverage", leaveHandler.GetCoverage)
				})
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Get("/", shiftHandler.ListShifts)
				r.Get("/schedule/my", shiftHandler.MySchedule)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/schedule", shiftHandler.DailySchedule)
					r.Post("/assignments", shiftHandler.Assign)
					r.Delete("/assignments/{id}", shiftHandler.Unassign)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", shiftHandler.CreateShift)
					r.Put("/{id}", shiftHandler.UpdateShift)
					r.Delete("/{id}", shiftHandler.DeleteShift)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/check-in", attendanceHandler.CheckIn)
				r.Post("/check-out", attendanceHandler.CheckOut)
				r.Get("/my", attendanceHandler.MyRecords)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/daily", attendanceHandler.DailyRecords)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Get("/qr", attendanceHandler.GenerateQR)
				})
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", notificationHandler.List)
				r.Post("/sse-token", notificationHandler.SSEToken)
				r.Patch("/{id}/read", notificationHandler.MarkRead)
				r.Patch("/read-all", notificationHandler.MarkAllRead)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Use(middleware.RequireManager)
				r.Get("/attendance/monthly", reportHandler.MonthlyAttendance)
				r.Get("/leave/usage", reportHandler.DepartmentLeaveUsage)
				r.Get("/leave/usage/pdf", reportHandler.DepartmentLeaveUsagePDF)
			})
		})
	})

	return r
}
