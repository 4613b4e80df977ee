package domain

// LeaveStatuses are the contract's leave status codes in order.
var LeaveStatuses = []string{"Pending", "Approved", "Rejected"}

// LeaveTypes are the leave categories the contract accepts.
var LeaveTypes = []string{"Annual", "Sick", "Personal", "Maternity/Paternity", "Unpaid"}

// Leave represents a leave request stored by the LeaveManagement contract.
type Leave struct {
	ID        uint64
	StartDate uint64
	EndDate   uint64
	LeaveType string
	Reason    string
	Employee  string
	Status    uint8
}

// StatusName returns the human-readable status, or "Unknown" for codes the
// contract never assigns.
func (l Leave) StatusName() string {
	if int(l.Status) < len(LeaveStatuses) {
		return LeaveStatuses[l.Status]
	}
	return "Unknown"
}

// Holiday represents an organization-wide holiday.
type Holiday struct {
	Date        uint64
	Description string
}

// Attendance represents one attendance mark for a day.
type Attendance struct {
	Date    uint64
	Present bool
}
