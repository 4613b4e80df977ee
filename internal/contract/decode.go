package contract

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"orgnet/internal/domain"
)

// Raw tuple layouts mirroring the contract structs. Field names and order must
// match the ABI components for ConvertType to accept them.

type rawTask struct {
	Id          *big.Int
	Description string
	Deadline    *big.Int
	Assigner    common.Address
	Assignee    common.Address
	Status      uint8
}

func (r rawTask) toDomain() domain.Task {
	return domain.Task{
		ID:          r.Id.Uint64(),
		Description: r.Description,
		Deadline:    r.Deadline.Uint64(),
		Assigner:    r.Assigner.Hex(),
		Assignee:    r.Assignee.Hex(),
		Status:      r.Status,
	}
}

type rawNotice struct {
	Id          *big.Int
	Category    string
	Description string
	Priority    uint8
	Content     string
	Sender      common.Address
	Timestamp   *big.Int
}

func (r rawNotice) toDomain() domain.Notice {
	return domain.Notice{
		ID:          r.Id.Uint64(),
		Category:    r.Category,
		Description: r.Description,
		Priority:    r.Priority,
		Content:     r.Content,
		Sender:      r.Sender.Hex(),
		Timestamp:   r.Timestamp.Uint64(),
	}
}

type rawCertificate struct {
	Id              *big.Int
	Name            string
	CertificateHash string
	Timestamp       *big.Int
	Issuer          common.Address
	IsValid         bool
}

func (r rawCertificate) toDomain() domain.Certificate {
	return domain.Certificate{
		ID:        r.Id.Uint64(),
		Name:      r.Name,
		Hash:      r.CertificateHash,
		Timestamp: r.Timestamp.Uint64(),
		Issuer:    r.Issuer.Hex(),
		Valid:     r.IsValid,
	}
}

type rawLeave struct {
	Id        *big.Int
	StartDate *big.Int
	EndDate   *big.Int
	LeaveType string
	Reason    string
	Employee  common.Address
	Status    uint8
}

func (r rawLeave) toDomain() domain.Leave {
	return domain.Leave{
		ID:        r.Id.Uint64(),
		StartDate: r.StartDate.Uint64(),
		EndDate:   r.EndDate.Uint64(),
		LeaveType: r.LeaveType,
		Reason:    r.Reason,
		Employee:  r.Employee.Hex(),
		Status:    r.Status,
	}
}

type rawHoliday struct {
	Date        *big.Int
	Description string
}

type rawAttendance struct {
	Date    *big.Int
	Present bool
}

type rawPayment struct {
	Id              *big.Int
	EmployeeName    string
	EmployeeAddress common.Address
	Description     string
	Amount          *big.Int
	Timestamp       *big.Int
	IsPaid          bool
}

func (r rawPayment) toDomain() domain.Payment {
	return domain.Payment{
		ID:              r.Id.Uint64(),
		EmployeeName:    r.EmployeeName,
		EmployeeAddress: r.EmployeeAddress.Hex(),
		Description:     r.Description,
		Amount:          r.Amount,
		Timestamp:       r.Timestamp.Uint64(),
		Paid:            r.IsPaid,
	}
}

// DecodeTask decodes a getTask call result.
func DecodeTask(data []byte) (domain.Task, error) {
	out, err := TaskTracker.abi.Unpack("getTask", data)
	if err != nil {
		return domain.Task{}, fmt.Errorf("contract: decoding getTask: %w", err)
	}
	raw := *abi.ConvertType(out[0], new(rawTask)).(*rawTask)
	return raw.toDomain(), nil
}

// DecodeTaskList decodes a getMyTasks call result.
func DecodeTaskList(data []byte) ([]domain.Task, error) {
	out, err := TaskTracker.abi.Unpack("getMyTasks", data)
	if err != nil {
		return nil, fmt.Errorf("contract: decoding getMyTasks: %w", err)
	}
	raw := *abi.ConvertType(out[0], new([]rawTask)).(*[]rawTask)
	tasks := make([]domain.Task, len(raw))
	for i, r := range raw {
		tasks[i] = r.toDomain()
	}
	return tasks, nil
}

// DecodeNotice decodes a getNotice call result.
func DecodeNotice(data []byte) (domain.Notice, error) {
	out, err := NoticeManager.abi.Unpack("getNotice", data)
	if err != nil {
		return domain.Notice{}, fmt.Errorf("contract: decoding getNotice: %w", err)
	}
	raw := *abi.ConvertType(out[0], new(rawNotice)).(*rawNotice)
	return raw.toDomain(), nil
}

// DecodeNoticeList decodes a getNoticesByCategory call result.
func DecodeNoticeList(data []byte) ([]domain.Notice, error) {
	out, err := NoticeManager.abi.Unpack("getNoticesByCategory", data)
	if err != nil {
		return nil, fmt.Errorf("contract: decoding getNoticesByCategory: %w", err)
	}
	raw := *abi.ConvertType(out[0], new([]rawNotice)).(*[]rawNotice)
	notices := make([]domain.Notice, len(raw))
	for i, r := range raw {
		notices[i] = r.toDomain()
	}
	return notices, nil
}

// DecodeCertificate decodes a getCertificate call result.
func DecodeCertificate(data []byte) (domain.Certificate, error) {
	out, err := CertificateAuthenticator.abi.Unpack("getCertificate", data)
	if err != nil {
		return domain.Certificate{}, fmt.Errorf("contract: decoding getCertificate: %w", err)
	}
	raw := *abi.ConvertType(out[0], new(rawCertificate)).(*rawCertificate)
	return raw.toDomain(), nil
}

// DecodeCertificateList decodes a getMyCertificates call result.
func DecodeCertificateList(data []byte) ([]domain.Certificate, error) {
	out, err := CertificateAuthenticator.abi.Unpack("getMyCertificates", data)
	if err != nil {
		return nil, fmt.Errorf("contract: decoding getMyCertificates: %w", err)
	}
	raw := *abi.ConvertType(out[0], new([]rawCertificate)).(*[]rawCertificate)
	certs := make([]domain.Certificate, len(raw))
	for i, r := range raw {
		certs[i] = r.toDomain()
	}
	return certs, nil
}

// DecodeVerification decodes a verifyCertificate call result.
func DecodeVerification(data []byte) (bool, error) {
	out, err := CertificateAuthenticator.abi.Unpack("verifyCertificate", data)
	if err != nil {
		return false, fmt.Errorf("contract: decoding verifyCertificate: %w", err)
	}
	valid, ok := out[0].(bool)
	if !ok {
		return false, errors.New("contract: verifyCertificate returned a non-boolean value")
	}
	return valid, nil
}

// DecodeLeaveList decodes a getMyLeaves or getPendingLeaves call result; the
// two methods share one return layout.
func DecodeLeaveList(method string, data []byte) ([]domain.Leave, error) {
	out, err := LeaveManagement.abi.Unpack(method, data)
	if err != nil {
		return nil, fmt.Errorf("contract: decoding %s: %w", method, err)
	}
	raw := *abi.ConvertType(out[0], new([]rawLeave)).(*[]rawLeave)
	leaves := make([]domain.Leave, len(raw))
	for i, r := range raw {
		leaves[i] = r.toDomain()
	}
	return leaves, nil
}

// DecodeHolidayList decodes a getHolidays call result.
func DecodeHolidayList(data []byte) ([]domain.Holiday, error) {
	out, err := LeaveManagement.abi.Unpack("getHolidays", data)
	if err != nil {
		return nil, fmt.Errorf("contract: decoding getHolidays: %w", err)
	}
	raw := *abi.ConvertType(out[0], new([]rawHoliday)).(*[]rawHoliday)
	holidays := make([]domain.Holiday, len(raw))
	for i, r := range raw {
		holidays[i] = domain.Holiday{Date: r.Date.Uint64(), Description: r.Description}
	}
	return holidays, nil
}

// DecodeAttendanceList decodes a getAttendance call result.
func DecodeAttendanceList(data []byte) ([]domain.Attendance, error) {
	out, err := LeaveManagement.abi.Unpack("getAttendance", data)
	if err != nil {
		return nil, fmt.Errorf("contract: decoding getAttendance: %w", err)
	}
	raw := *abi.ConvertType(out[0], new([]rawAttendance)).(*[]rawAttendance)
	marks := make([]domain.Attendance, len(raw))
	for i, r := range raw {
		marks[i] = domain.Attendance{Date: r.Date.Uint64(), Present: r.Present}
	}
	return marks, nil
}

// DecodePayment decodes a getPayment call result. The method returns flat
// values rather than a tuple.
func DecodePayment(data []byte) (domain.Payment, error) {
	out, err := EmployeePayment.abi.Unpack("getPayment", data)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("contract: decoding getPayment: %w", err)
	}
	if len(out) != 7 {
		return domain.Payment{}, fmt.Errorf("contract: getPayment returned %d values, want 7", len(out))
	}
	id, okID := out[0].(*big.Int)
	name, okName := out[1].(string)
	addr, okAddr := out[2].(common.Address)
	desc, okDesc := out[3].(string)
	amount, okAmount := out[4].(*big.Int)
	timestamp, okTime := out[5].(*big.Int)
	paid, okPaid := out[6].(bool)
	if !okID || !okName || !okAddr || !okDesc || !okAmount || !okTime || !okPaid {
		return domain.Payment{}, errors.New("contract: getPayment returned unexpected value types")
	}
	return domain.Payment{
		ID:              id.Uint64(),
		EmployeeName:    name,
		EmployeeAddress: addr.Hex(),
		Description:     desc,
		Amount:          amount,
		Timestamp:       timestamp.Uint64(),
		Paid:            paid,
	}, nil
}

// DecodePaymentList decodes a getMyPayments call result.
func DecodePaymentList(data []byte) ([]domain.Payment, error) {
	out, err := EmployeePayment.abi.Unpack("getMyPayments", data)
	if err != nil {
		return nil, fmt.Errorf("contract: decoding getMyPayments: %w", err)
	}
	raw := *abi.ConvertType(out[0], new([]rawPayment)).(*[]rawPayment)
	payments := make([]domain.Payment, len(raw))
	for i, r := range raw {
		payments[i] = r.toDomain()
	}
	return payments, nil
}
