package domain

import "math/big"

// Payment represents a payroll entry stored by the EmployeePayment contract.
// Amount is in wei.
type Payment struct {
	ID              uint64
	EmployeeName    string
	EmployeeAddress string
	Description     string
	Amount          *big.Int
	Timestamp       uint64
	Paid            bool
}
