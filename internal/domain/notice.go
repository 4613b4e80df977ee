package domain

// PriorityLevels are the contract's notice priority codes in order.
var PriorityLevels = []string{"Low", "Medium", "High", "Urgent"}

// NoticeCategories are the recipient groups a notice may target. Categories are
// stored lowercase on chain.
var NoticeCategories = []string{
	"managers",
	"senior_employees",
	"department_heads",
	"all_employees",
	"technical_team",
	"hr_team",
	"finance_team",
}

// Notice represents a notice stored by the NoticeManager contract.
type Notice struct {
	ID          uint64
	Category    string
	Description string
	Priority    uint8
	Content     string
	Sender      string
	Timestamp   uint64
}

// PriorityName returns the human-readable priority, or "Unknown" for codes the
// contract never assigns.
func (n Notice) PriorityName() string {
	if int(n.Priority) < len(PriorityLevels) {
		return PriorityLevels[n.Priority]
	}
	return "Unknown"
}
