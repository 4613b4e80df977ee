package domain

// TaskStatuses are the contract's status codes in order.
var TaskStatuses = []string{"Pending", "In Progress", "Completed", "Cancelled"}

// Task represents a task stored by the TaskTracker contract.
type Task struct {
	ID          uint64
	Description string
	Deadline    uint64
	Assigner    string
	Assignee    string
	Status      uint8
}

// StatusName returns the human-readable status, or "Unknown" for codes the
// contract never assigns.
func (t Task) StatusName() string {
	if int(t.Status) < len(TaskStatuses) {
		return TaskStatuses[t.Status]
	}
	return "Unknown"
}
