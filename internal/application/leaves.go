package application

import (
	"context"
	"math/big"

	"orgnet/internal/contract"
	"orgnet/internal/domain"
)

// RequestLeave submits a requestLeave call. Dates use YYYY-MM-DD; the end date
// must not precede the start date.
func (s *Services) RequestLeave(ctx context.Context, startDate, endDate, leaveType, reason string) (domain.Outcome, error) {
	startTS, err := parseDate(startDate)
	if err != nil {
		return domain.Outcome{}, err
	}
	endTS, err := parseDate(endDate)
	if err != nil {
		return domain.Outcome{}, err
	}
	if endTS < startTS {
		return domain.Outcome{}, domain.Errorf(domain.ErrValidation, "start date cannot be after end date")
	}
	if err := validateLeaveType(leaveType); err != nil {
		return domain.Outcome{}, err
	}

	data, err := contract.LeaveManagement.Pack("requestLeave",
		new(big.Int).SetUint64(startTS), new(big.Int).SetUint64(endTS), leaveType, reason)
	if err != nil {
		return domain.Outcome{}, domain.WrapError(domain.ErrValidation, "encoding requestLeave", err)
	}
	receipt, err := s.pipeline.Execute(ctx, domain.TransactionRequest{
		To:       s.addrs.Leave,
		Function: "requestLeave",
		Data:     data,
	})
	if err != nil {
		return domain.Outcome{}, err
	}

	leaveID := contract.LeaveManagement.ExtractEventID(receipt.Logs, "LeaveRequested", "leaveId")
	outcome := s.outcome(domain.DomainLeave, "request_leave", leaveID, receipt)
	s.publish(ctx, outcome)
	return outcome, nil
}

// UpdateLeaveStatus submits an updateLeaveStatus call. The status may be given
// by name or by index.
func (s *Services) UpdateLeaveStatus(ctx context.Context, leaveID uint64, status string) (domain.Outcome, error) {
	idx, err := statusIndex(domain.LeaveStatuses, status)
	if err != nil {
		return domain.Outcome{}, err
	}

	data, err := contract.LeaveManagement.Pack("updateLeaveStatus", new(big.Int).SetUint64(leaveID), idx)
	if err != nil {
		return domain.Outcome{}, domain.WrapError(domain.ErrValidation, "encoding updateLeaveStatus", err)
	}
	receipt, err := s.pipeline.Execute(ctx, domain.TransactionRequest{
		To:       s.addrs.Leave,
		Function: "updateLeaveStatus",
		Data:     data,
	})
	if err != nil {
		return domain.Outcome{}, err
	}

	outcome := s.outcome(domain.DomainLeave, "update_leave_status", leaveID, receipt)
	s.publish(ctx, outcome)
	return outcome, nil
}

// MyLeaves reads the sender's leave requests.
func (s *Services) MyLeaves(ctx context.Context) ([]domain.Leave, error) {
	return s.leaveList(ctx, "getMyLeaves")
}

// PendingLeaves reads every leave request still awaiting a decision.
func (s *Services) PendingLeaves(ctx context.Context) ([]domain.Leave, error) {
	return s.leaveList(ctx, "getPendingLeaves")
}

func (s *Services) leaveList(ctx context.Context, method string) ([]domain.Leave, error) {
	data, err := contract.LeaveManagement.Pack(method)
	if err != nil {
		return nil, domain.WrapError(domain.ErrValidation, "encoding "+method, err)
	}
	out, err := s.pipeline.Query(ctx, s.addrs.Leave, data)
	if err != nil {
		return nil, err
	}
	leaves, err := contract.DecodeLeaveList(method, out)
	if err != nil {
		return nil, domain.WrapError(domain.ErrDecoding, "decoding "+method+" result", err)
	}
	return leaves, nil
}

// AddHoliday submits an addHoliday call for a YYYY-MM-DD date.
func (s *Services) AddHoliday(ctx context.Context, date, description string) (domain.Outcome, error) {
	dateTS, err := parseDate(date)
	if err != nil {
		return domain.Outcome{}, err
	}

	data, err := contract.LeaveManagement.Pack("addHoliday", new(big.Int).SetUint64(dateTS), description)
	if err != nil {
		return domain.Outcome{}, domain.WrapError(domain.ErrValidation, "encoding addHoliday", err)
	}
	receipt, err := s.pipeline.Execute(ctx, domain.TransactionRequest{
		To:       s.addrs.Leave,
		Function: "addHoliday",
		Data:     data,
	})
	if err != nil {
		return domain.Outcome{}, err
	}

	outcome := s.outcome(domain.DomainLeave, "add_holiday", dateTS, receipt)
	s.publish(ctx, outcome)
	return outcome, nil
}

// Holidays reads the organization-wide holiday list.
func (s *Services) Holidays(ctx context.Context) ([]domain.Holiday, error) {
	data, err := contract.LeaveManagement.Pack("getHolidays")
	if err != nil {
		return nil, domain.WrapError(domain.ErrValidation, "encoding getHolidays", err)
	}
	out, err := s.pipeline.Query(ctx, s.addrs.Leave, data)
	if err != nil {
		return nil, err
	}
	holidays, err := contract.DecodeHolidayList(out)
	if err != nil {
		return nil, domain.WrapError(domain.ErrDecoding, "decoding getHolidays result", err)
	}
	return holidays, nil
}

// MarkAttendance submits a markAttendance call for a YYYY-MM-DD date.
func (s *Services) MarkAttendance(ctx context.Context, date string) (domain.Outcome, error) {
	dateTS, err := parseDate(date)
	if err != nil {
		return domain.Outcome{}, err
	}

	data, err := contract.LeaveManagement.Pack("markAttendance", new(big.Int).SetUint64(dateTS))
	if err != nil {
		return domain.Outcome{}, domain.WrapError(domain.ErrValidation, "encoding markAttendance", err)
	}
	receipt, err := s.pipeline.Execute(ctx, domain.TransactionRequest{
		To:       s.addrs.Leave,
		Function: "markAttendance",
		Data:     data,
	})
	if err != nil {
		return domain.Outcome{}, err
	}

	outcome := s.outcome(domain.DomainLeave, "mark_attendance", dateTS, receipt)
	s.publish(ctx, outcome)
	return outcome, nil
}

// Attendance reads the sender's attendance marks over an inclusive date range.
func (s *Services) Attendance(ctx context.Context, startDate, endDate string) ([]domain.Attendance, error) {
	startTS, err := parseDate(startDate)
	if err != nil {
		return nil, err
	}
	endTS, err := parseDate(endDate)
	if err != nil {
		return nil, err
	}
	if endTS < startTS {
		return nil, domain.Errorf(domain.ErrValidation, "start date cannot be after end date")
	}

	data, err := contract.LeaveManagement.Pack("getAttendance",
		new(big.Int).SetUint64(startTS), new(big.Int).SetUint64(endTS))
	if err != nil {
		return nil, domain.WrapError(domain.ErrValidation, "encoding getAttendance", err)
	}
	out, err := s.pipeline.Query(ctx, s.addrs.Leave, data)
	if err != nil {
		return nil, err
	}
	marks, err := contract.DecodeAttendanceList(out)
	if err != nil {
		return nil, domain.WrapError(domain.ErrDecoding, "decoding getAttendance result", err)
	}
	return marks, nil
}
