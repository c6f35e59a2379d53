package http

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/workledger/workledger-backend-go/internal/handler/http/middleware"
	"github.com/workledger/workledger-backend-go/internal/pkg/jwt"
)

// Handlers groups every HTTP handler mounted by NewRouter.
type Handlers struct {
	Employee   EmployeeHandler
	WorkDay    WorkDayHandler
	Attendance AttendanceHandler
	Overtime   OvertimeHandler
	Payroll    PayrollHandler
	Advance    AdvanceHandler
	Dispute    DisputeHandler
	Report     ReportHandler
	Events     EventsHandler
}

type RouterOptions struct {
	Logger         *slog.Logger
	AllowedOrigins []string
}

func NewRouter(JWTService jwt.Service, h Handlers, opts RouterOptions) *chi.Mux {
	r := chi.NewRouter()
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		// SSE authenticates with its own short-lived query token
		r.Get("/events", h.Events.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			// Gateway or admin
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireGateway)

				r.Post("/employees/link", h.Employee.LinkChat)
				r.Get("/employees/by-chat/{chatID}", h.Employee.GetByChatID)
				r.Get("/employees/{id}/statement", h.Payroll.Statement)

				r.Post("/attendance/check-in", h.Attendance.CheckIn)
				r.Post("/attendance/check-out", h.Attendance.CheckOut)

				r.Post("/overtime/start", h.Overtime.Start)
				r.Post("/overtime/end", h.Overtime.End)
				r.Post("/overtime/{id}/proof", h.Overtime.AttachProof)

				r.Post("/advances", h.Advance.Create)
				r.Post("/disputes", h.Dispute.Create)
			})

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)

				r.Post("/employees", h.Employee.Create)
				r.Get("/employees", h.Employee.List)
				r.Get("/employees/{id}", h.Employee.Get)
				r.Put("/employees/{id}/rate", h.Employee.SetRate)
				r.Delete("/employees/{id}", h.Employee.Delete)

				r.Post("/work-days", h.WorkDay.Create)
				r.Get("/work-days", h.WorkDay.List)
				r.Post("/work-days/generate", h.WorkDay.Generate)
				r.Delete("/work-days/{id}", h.WorkDay.Delete)

				r.Get("/attendance", h.Attendance.List)
				r.Get("/overtime", h.Overtime.List)

				r.Route("/settings", func(r chi.Router) {
					r.Get("/rate", h.Payroll.GetRate)
					r.Put("/rate", h.Payroll.SetRate)
				})

				r.Route("/ledger", func(r chi.Router) {
					r.Post("/attendance/{id}/pay", h.Payroll.PayAttendance)
					r.Post("/overtime/{id}/pay", h.Payroll.PayOvertime)
					r.Post("/bulk-pay", h.Payroll.BulkPay)
				})

				r.Get("/advances", h.Advance.List)
				r.Post("/advances/accept", h.Advance.BulkAccept)
				r.Post("/advances/{id}/accept", h.Advance.Accept)

				r.Get("/disputes", h.Dispute.List)
				r.Post("/disputes/{id}/resolve", h.Dispute.Resolve)

				r.Post("/reports/aggregate", h.Report.Aggregate)

				r.Get("/events/token", h.Events.GetSSEToken)
			})
		})
	})

	return r
}
