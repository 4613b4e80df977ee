package application

import (
	"context"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"orgnet/internal/contract"
	"orgnet/internal/domain"
)

// CreatePayment submits a createPayment call. The amount is a positive wei
// value given as a decimal string.
func (s *Services) CreatePayment(ctx context.Context, employeeName, employeeAddress, description, amount string) (domain.Outcome, error) {
	if strings.TrimSpace(employeeName) == "" {
		return domain.Outcome{}, domain.Errorf(domain.ErrValidation, "employee name cannot be empty")
	}
	if err := validateAddress(employeeAddress); err != nil {
		return domain.Outcome{}, err
	}
	if strings.TrimSpace(description) == "" {
		return domain.Outcome{}, domain.Errorf(domain.ErrValidation, "payment description cannot be empty")
	}
	wei, err := parseAmount(amount)
	if err != nil {
		return domain.Outcome{}, err
	}

	data, err := contract.EmployeePayment.Pack("createPayment",
		employeeName, common.HexToAddress(employeeAddress), description, wei)
	if err != nil {
		return domain.Outcome{}, domain.WrapError(domain.ErrValidation, "encoding createPayment", err)
	}
	receipt, err := s.pipeline.Execute(ctx, domain.TransactionRequest{
		To:       s.addrs.Payment,
		Function: "createPayment",
		Data:     data,
	})
	if err != nil {
		return domain.Outcome{}, err
	}

	paymentID := contract.EmployeePayment.ExtractEventID(receipt.Logs, "PaymentCreated", "paymentId")
	outcome := s.outcome(domain.DomainPayment, "create_payment", paymentID, receipt)
	s.publish(ctx, outcome)
	return outcome, nil
}

// ProcessPayment submits a processPayment call carrying the payment amount as
// the transaction value.
func (s *Services) ProcessPayment(ctx context.Context, paymentID uint64, amount string) (domain.Outcome, error) {
	wei, err := parseAmount(amount)
	if err != nil {
		return domain.Outcome{}, err
	}

	data, err := contract.EmployeePayment.Pack("processPayment", new(big.Int).SetUint64(paymentID))
	if err != nil {
		return domain.Outcome{}, domain.WrapError(domain.ErrValidation, "encoding processPayment", err)
	}
	receipt, err := s.pipeline.Execute(ctx, domain.TransactionRequest{
		To:       s.addrs.Payment,
		Function: "processPayment",
		Data:     data,
		Value:    wei,
	})
	if err != nil {
		return domain.Outcome{}, err
	}

	outcome := s.outcome(domain.DomainPayment, "process_payment", paymentID, receipt)
	s.publish(ctx, outcome)
	return outcome, nil
}

// GetPayment reads one payment by id.
func (s *Services) GetPayment(ctx context.Context, paymentID uint64) (domain.Payment, error) {
	data, err := contract.EmployeePayment.Pack("getPayment", new(big.Int).SetUint64(paymentID))
	if err != nil {
		return domain.Payment{}, domain.WrapError(domain.ErrValidation, "encoding getPayment", err)
	}
	out, err := s.pipeline.Query(ctx, s.addrs.Payment, data)
	if err != nil {
		return domain.Payment{}, err
	}
	payment, err := contract.DecodePayment(out)
	if err != nil {
		return domain.Payment{}, domain.WrapError(domain.ErrDecoding, "decoding getPayment result", err)
	}
	return payment, nil
}

// MyPayments reads every payment created by the sender.
func (s *Services) MyPayments(ctx context.Context) ([]domain.Payment, error) {
	data, err := contract.EmployeePayment.Pack("getMyPayments")
	if err != nil {
		return nil, domain.WrapError(domain.ErrValidation, "encoding getMyPayments", err)
	}
	out, err := s.pipeline.Query(ctx, s.addrs.Payment, data)
	if err != nil {
		return nil, err
	}
	payments, err := contract.DecodePaymentList(out)
	if err != nil {
		return nil, domain.WrapError(domain.ErrDecoding, "decoding getMyPayments result", err)
	}
	return payments, nil
}
