package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/workledger/workledger-backend-go/internal/config"
	"github.com/workledger/workledger-backend-go/internal/domain/advance"
	"github.com/workledger/workledger-backend-go/internal/domain/attendance"
	"github.com/workledger/workledger-backend-go/internal/domain/dispute"
	"github.com/workledger/workledger-backend-go/internal/domain/employee"
	"github.com/workledger/workledger-backend-go/internal/domain/overtime"
	"github.com/workledger/workledger-backend-go/internal/domain/payroll"
	"github.com/workledger/workledger-backend-go/internal/domain/workday"
	appHTTP "github.com/workledger/workledger-backend-go/internal/handler/http"
	"github.com/workledger/workledger-backend-go/internal/pkg/clock"
	"github.com/workledger/workledger-backend-go/internal/pkg/cron"
	"github.com/workledger/workledger-backend-go/internal/pkg/database"
	"github.com/workledger/workledger-backend-go/internal/pkg/jwt"
	"github.com/workledger/workledger-backend-go/internal/pkg/sse"
	"github.com/workledger/workledger-backend-go/internal/repository/memory"
	"github.com/workledger/workledger-backend-go/internal/repository/postgresql"
	advanceService "github.com/workledger/workledger-backend-go/internal/service/advance"
	attendanceService "github.com/workledger/workledger-backend-go/internal/service/attendance"
	disputeService "github.com/workledger/workledger-backend-go/internal/service/dispute"
	employeeService "github.com/workledger/workledger-backend-go/internal/service/employee"
	overtimeService "github.com/workledger/workledger-backend-go/internal/service/overtime"
	payrollService "github.com/workledger/workledger-backend-go/internal/service/payroll"
	reportService "github.com/workledger/workledger-backend-go/internal/service/report"
	workdayService "github.com/workledger/workledger-backend-go/internal/service/workday"
)

// repositories is the storage backend selected by DB_DRIVER.
type repositories struct {
	tx         database.Transactor
	employee   employee.EmployeeRepository
	workDay    workday.WorkDayRepository
	attendance attendance.AttendanceRepository
	overtime   overtime.OvertimeRepository
	advance    advance.AdvanceRepository
	dispute    dispute.DisputeRepository
	rate       payroll.RateRepository
	close      func()
}

func openRepositories(ctx context.Context, cfg *config.Config, clk clock.Clock) (repositories, error) {
	switch cfg.Database.Driver {
	case config.DriverMemory:
		slog.Warn("using in-memory storage, data is lost on restart")
		store := memory.NewStore(clk)
		return repositories{
			tx:         store,
			employee:   memory.NewEmployeeRepository(store),
			workDay:    memory.NewWorkDayRepository(store),
			attendance: memory.NewAttendanceRepository(store),
			overtime:   memory.NewOvertimeRepository(store),
			advance:    memory.NewAdvanceRepository(store),
			dispute:    memory.NewDisputeRepository(store),
			rate:       memory.NewRateRepository(store),
			close:      func() {},
		}, nil
	default:
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
		if err != nil {
			return repositories{}, fmt.Errorf("connect to database: %w", err)
		}
		if err := db.Migrate(ctx); err != nil {
			db.Close()
			return repositories{}, err
		}
		return repositories{
			tx:         postgresql.NewTransactor(db),
			employee:   postgresql.NewEmployeeRepository(db),
			workDay:    postgresql.NewWorkDayRepository(db),
			attendance: postgresql.NewAttendanceRepository(db),
			overtime:   postgresql.NewOvertimeRepository(db),
			advance:    postgresql.NewAdvanceRepository(db),
			dispute:    postgresql.NewDisputeRepository(db),
			rate:       postgresql.NewRateRepository(db),
			close:      db.Close,
		}, nil
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	policy, err := cfg.Policy()
	if err != nil {
		log.Fatal("Invalid work day configuration: ", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	clk := clock.System()
	repos, err := openRepositories(ctx, cfg, clk)
	if err != nil {
		log.Fatal("Error opening storage: ", err)
	}
	defer repos.close()

	hub := sse.NewHub()
	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	employeeSvc := employeeService.NewEmployeeService(repos.tx, repos.employee, clk)
	workDaySvc := workdayService.NewWorkDayService(repos.workDay, clk)
	attendanceSvc := attendanceService.NewAttendanceService(repos.tx, repos.attendance, repos.employee, repos.workDay, policy, clk)
	overtimeSvc := overtimeService.NewOvertimeService(repos.tx, repos.overtime, repos.employee, repos.workDay, policy.Location, clk, hub)
	payrollSvc := payrollService.NewPayrollService(repos.tx, repos.rate, repos.employee, repos.attendance, repos.overtime, repos.advance, clk)
	advanceSvc := advanceService.NewAdvanceService(repos.advance, clk, hub)
	disputeSvc := disputeService.NewDisputeService(repos.dispute, clk, hub)
	reportSvc := reportService.NewReportService(repos.tx, repos.workDay, repos.employee, repos.attendance,
		repos.overtime, repos.advance, repos.rate, policy)

	router := appHTTP.NewRouter(JWTService, appHTTP.Handlers{
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		WorkDay:    appHTTP.NewWorkDayHandler(workDaySvc, clk, policy.Location),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Overtime:   appHTTP.NewOvertimeHandler(overtimeSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
		Advance:    appHTTP.NewAdvanceHandler(advanceSvc, payrollSvc),
		Dispute:    appHTTP.NewDisputeHandler(disputeSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
		Events:     appHTTP.NewEventsHandler(hub, JWTService),
	}, appHTTP.RouterOptions{
		Logger:         logger,
		AllowedOrigins: cfg.App.CORSAllowedOrigins,
	})

	if cfg.Cron.Enabled {
		scheduler := cron.NewScheduler()
		cron.NewLedgerJobs(workDaySvc, attendanceSvc, clk, policy.Location).RegisterJobs(scheduler)
		scheduler.Start(ctx)
		defer scheduler.Stop()
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server running", "addr", server.Addr, "env", cfg.App.Env, "driver", cfg.Database.Driver)
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown error", "error", err)
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}
}
