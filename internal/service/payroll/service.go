package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"github.com/workledger/workledger-backend-go/internal/domain/advance"
	"github.com/workledger/workledger-backend-go/internal/domain/attendance"
	"github.com/workledger/workledger-backend-go/internal/domain/employee"
	"github.com/workledger/workledger-backend-go/internal/domain/overtime"
	"github.com/workledger/workledger-backend-go/internal/domain/payroll"
	"github.com/workledger/workledger-backend-go/internal/pkg/clock"
	"github.com/workledger/workledger-backend-go/internal/pkg/database"
	"github.com/workledger/workledger-backend-go/internal/pkg/worktime"
)

type PayrollServiceImpl struct {
	tx             database.Transactor
	rateRepo       payroll.RateRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	overtimeRepo   overtime.OvertimeRepository
	advanceRepo    advance.AdvanceRepository
	clock          clock.Clock
}

func NewPayrollService(
	tx database.Transactor,
	rateRepo payroll.RateRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	overtimeRepo overtime.OvertimeRepository,
	advanceRepo advance.AdvanceRepository,
	clk clock.Clock,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		tx:             tx,
		rateRepo:       rateRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		overtimeRepo:   overtimeRepo,
		advanceRepo:    advanceRepo,
		clock:          clk,
	}
}

// ========== RATE ==========

func (s *PayrollServiceImpl) GetRate(ctx context.Context) (payroll.RateConfig, error) {
	return s.rateRepo.GetGlobalRate(ctx)
}

func (s *PayrollServiceImpl) SetRate(ctx context.Context, req payroll.SetRateRequest) (payroll.RateConfig, error) {
	if err := req.Validate(); err != nil {
		return payroll.RateConfig{}, err
	}
	return s.rateRepo.SetGlobalRate(ctx, *req.HourlyRate)
}

// ========== SESSIONS ==========

// payable is the part of a session the ledger needs.
type payable struct {
	employeeID string
	hours      decimal.Decimal
	open       bool
	paid       bool
}

func (s *PayrollServiceImpl) lockPayable(ctx context.Context, kind payroll.RecordKind, id string) (payable, error) {
	switch kind {
	case payroll.KindAttendance:
		r, err := s.attendanceRepo.GetByIDForUpdate(ctx, id)
		if err != nil {
			if errors.Is(err, attendance.ErrAttendanceNotFound) {
				return payable{}, payroll.ErrRecordNotFound
			}
			return payable{}, err
		}
		return payable{employeeID: r.EmployeeID, hours: r.Hours, open: r.IsOpen(), paid: r.Paid}, nil
	case payroll.KindOvertime:
		r, err := s.overtimeRepo.GetByIDForUpdate(ctx, id)
		if err != nil {
			if errors.Is(err, overtime.ErrOvertimeNotFound) {
				return payable{}, payroll.ErrRecordNotFound
			}
			return payable{}, err
		}
		return payable{employeeID: r.EmployeeID, hours: r.Hours, open: r.IsOpen(), paid: r.Paid}, nil
	default:
		return payable{}, payroll.ErrInvalidKind
	}
}

func (s *PayrollServiceImpl) markPaid(ctx context.Context, kind payroll.RecordKind, id string) (bool, error) {
	if kind == payroll.KindAttendance {
		return s.attendanceRepo.MarkPaid(ctx, id)
	}
	return s.overtimeRepo.MarkPaid(ctx, id)
}

// MarkPaid implements payroll.PayrollService.
func (s *PayrollServiceImpl) MarkPaid(ctx context.Context, kind payroll.RecordKind, recordID string) (payroll.LedgerEntry, error) {
	if !kind.IsValid() {
		return payroll.LedgerEntry{}, payroll.ErrInvalidKind
	}

	var entry payroll.LedgerEntry
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		record, err := s.lockPayable(ctx, kind, recordID)
		if err != nil {
			return err
		}
		if record.open {
			return payroll.ErrRecordOpen
		}
		if record.paid {
			return payroll.ErrAlreadyPaid
		}

		emp, err := s.employeeRepo.GetByIDForUpdate(ctx, record.employeeID)
		if err != nil {
			return err
		}
		cfg, err := s.rateRepo.GetGlobalRate(ctx)
		if err != nil {
			return err
		}

		rate := payroll.EffectiveRate(emp, cfg.HourlyRate)
		amount := payroll.Credit(record.hours, rate)

		flipped, err := s.markPaid(ctx, kind, recordID)
		if err != nil {
			return err
		}
		if !flipped {
			return payroll.ErrAlreadyPaid
		}

		balance, err := s.employeeRepo.AdjustBalance(ctx, emp.ID, amount)
		if err != nil {
			return err
		}

		entry = payroll.LedgerEntry{
			Kind:       kind,
			RecordID:   recordID,
			EmployeeID: emp.ID,
			Hours:      record.hours,
			Rate:       rate,
			Amount:     amount,
			Balance:    balance,
		}
		return nil
	})
	if err != nil {
		return payroll.LedgerEntry{}, err
	}

	slog.Info("session paid", "kind", kind, "record_id", recordID, "employee_id", entry.EmployeeID, "amount", entry.Amount.String())
	return entry, nil
}

// BulkMarkPaid implements payroll.PayrollService.
func (s *PayrollServiceImpl) BulkMarkPaid(ctx context.Context, req payroll.BulkPayRequest) (payroll.BulkPayResult, error) {
	result := payroll.BulkPayResult{Credited: decimal.Zero}
	if err := req.Validate(); err != nil {
		return result, err
	}

	employeeIDs := make([]string, 0, len(req.EmployeeIDs))
	seen := make(map[string]struct{}, len(req.EmployeeIDs))
	for _, id := range req.EmployeeIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		if _, err := s.employeeRepo.GetByID(ctx, id); err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				result.Skipped++
				result.UnknownEmployeeIDs = append(result.UnknownEmployeeIDs, id)
				continue
			}
			return result, err
		}
		employeeIDs = append(employeeIDs, id)
	}
	if len(employeeIDs) == 0 {
		return result, nil
	}

	closed := worktime.StateClosed
	unpaid := false

	for _, kind := range req.Kinds() {
		ids, err := s.unpaidRecordIDs(ctx, kind, employeeIDs, &closed, &unpaid)
		if err != nil {
			return result, err
		}

		for _, id := range ids {
			entry, err := s.MarkPaid(ctx, kind, id)
			if err != nil {
				if payroll.IsSkippable(err) {
					result.Skipped++
					continue
				}
				return result, fmt.Errorf("failed to pay %s record %s: %w", kind, id, err)
			}
			result.Paid++
			result.Credited = result.Credited.Add(entry.Amount)
		}
	}

	return result, nil
}

func (s *PayrollServiceImpl) unpaidRecordIDs(ctx context.Context, kind payroll.RecordKind, employeeIDs []string, state *worktime.SessionState, paid *bool) ([]string, error) {
	var ids []string
	switch kind {
	case payroll.KindAttendance:
		records, err := s.attendanceRepo.List(ctx, attendance.Filter{EmployeeIDs: employeeIDs, State: state, Paid: paid})
		if err != nil {
			return nil, fmt.Errorf("failed to list unpaid attendance: %w", err)
		}
		for _, r := range records {
			ids = append(ids, r.ID)
		}
	case payroll.KindOvertime:
		records, err := s.overtimeRepo.List(ctx, overtime.Filter{EmployeeIDs: employeeIDs, State: state, Paid: paid})
		if err != nil {
			return nil, fmt.Errorf("failed to list unpaid overtime: %w", err)
		}
		for _, r := range records {
			ids = append(ids, r.ID)
		}
	}
	return ids, nil
}

// ========== ADVANCES ==========

// AcceptAdvance implements payroll.PayrollService.
func (s *PayrollServiceImpl) AcceptAdvance(ctx context.Context, id string) (advance.AdvanceRequest, error) {
	var accepted advance.AdvanceRequest
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		req, err := s.advanceRepo.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if req.Accepted {
			return advance.ErrAlreadyAccepted
		}

		emp, err := s.employeeRepo.GetByIDForUpdate(ctx, req.EmployeeID)
		if err != nil {
			return err
		}

		now := s.clock.Now().UTC()
		flipped, err := s.advanceRepo.MarkAccepted(ctx, id, now)
		if err != nil {
			return err
		}
		if !flipped {
			return advance.ErrAlreadyAccepted
		}

		if _, err := s.employeeRepo.AdjustBalance(ctx, emp.ID, req.Amount.Neg()); err != nil {
			return err
		}

		req.Accepted = true
		req.AcceptedAt = &now
		accepted = req
		return nil
	})
	if err != nil {
		return advance.AdvanceRequest{}, err
	}

	slog.Info("advance accepted", "advance_id", id, "employee_id", accepted.EmployeeID, "amount", accepted.Amount.String())
	return accepted, nil
}

// BulkAcceptAdvances implements payroll.PayrollService.
func (s *PayrollServiceImpl) BulkAcceptAdvances(ctx context.Context, req payroll.BulkAcceptRequest) (payroll.BulkAcceptResult, error) {
	var result payroll.BulkAcceptResult
	if err := req.Validate(); err != nil {
		return result, err
	}

	seen := make(map[string]struct{}, len(req.IDs))
	for _, id := range req.IDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		_, err := s.AcceptAdvance(ctx, id)
		switch {
		case err == nil:
			result.Accepted++
		case errors.Is(err, advance.ErrAdvanceNotFound), errors.Is(err, advance.ErrAlreadyAccepted):
			result.Skipped++
		default:
			return result, fmt.Errorf("failed to accept advance %s: %w", id, err)
		}
	}

	return result, nil
}

// ========== STATEMENT ==========

// Statement implements payroll.PayrollService.
func (s *PayrollServiceImpl) Statement(ctx context.Context, employeeID string) (payroll.Statement, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return payroll.Statement{}, err
	}
	cfg, err := s.rateRepo.GetGlobalRate(ctx)
	if err != nil {
		return payroll.Statement{}, err
	}

	employees := []string{employeeID}
	records, err := s.attendanceRepo.List(ctx, attendance.Filter{EmployeeIDs: employees})
	if err != nil {
		return payroll.Statement{}, fmt.Errorf("failed to list attendance: %w", err)
	}
	sessions, err := s.overtimeRepo.List(ctx, overtime.Filter{EmployeeIDs: employees})
	if err != nil {
		return payroll.Statement{}, fmt.Errorf("failed to list overtime: %w", err)
	}
	accepted := true
	advances, err := s.advanceRepo.List(ctx, advance.Filter{EmployeeIDs: employees, Accepted: &accepted})
	if err != nil {
		return payroll.Statement{}, fmt.Errorf("failed to list advances: %w", err)
	}

	st := payroll.Statement{
		EmployeeID:            employeeID,
		PaidAttendanceHours:   decimal.Zero,
		UnpaidAttendanceHours: decimal.Zero,
		PaidOvertimeHours:     decimal.Zero,
		UnpaidOvertimeHours:   decimal.Zero,
		Rate:                  payroll.EffectiveRate(emp, cfg.HourlyRate),
		AdvancesTotal:         decimal.Zero,
		Balance:               emp.Balance,
	}
	for _, r := range records {
		if r.Paid {
			st.PaidAttendanceHours = st.PaidAttendanceHours.Add(r.Hours)
		} else {
			st.UnpaidAttendanceHours = st.UnpaidAttendanceHours.Add(r.Hours)
		}
	}
	for _, r := range sessions {
		if r.Paid {
			st.PaidOvertimeHours = st.PaidOvertimeHours.Add(r.Hours)
		} else {
			st.UnpaidOvertimeHours = st.UnpaidOvertimeHours.Add(r.Hours)
		}
	}
	for _, a := range advances {
		st.AdvancesTotal = st.AdvancesTotal.Add(a.Amount)
	}

	totalHours := decimal.Sum(st.PaidAttendanceHours, st.UnpaidAttendanceHours, st.PaidOvertimeHours, st.UnpaidOvertimeHours)
	st.TotalEarned = payroll.Credit(totalHours, st.Rate)

	return st, nil
}
