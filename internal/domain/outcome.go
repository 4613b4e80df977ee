package domain

// Domain names used in outcomes, journal rows, and stream messages.
const (
	DomainTask        = "task"
	DomainCertificate = "certificate"
	DomainNotice      = "notice"
	DomainLeave       = "leave"
	DomainPayment     = "payment"
)

// Outcome is the confirmed result of one state-changing domain operation.
// EntityID is the identifier decoded from the operation's defining event, or 0
// when the receipt carried no matching log.
type Outcome struct {
	Domain      string
	Action      string
	EntityID    uint64
	TxHash      string
	BlockNumber uint64
	Sender      string
	Status      uint64
	GasUsed     uint64
}

// OutcomeRecord is a journal row for a confirmed outcome.
type OutcomeRecord struct {
	ID          int64
	ChainID     uint64
	Domain      string
	Action      string
	EntityID    uint64
	TxHash      string
	BlockNumber uint64
	Sender      string
	Status      uint64
	GasUsed     uint64
	CreatedAt   string
}

// OutcomeFilter narrows journal queries. Nil fields mean unbounded.
type OutcomeFilter struct {
	Domain    string
	Action    string
	Sender    string
	EntityID  *uint64
	FromBlock *uint64
	ToBlock   *uint64
	Limit     int
}
