package domain

// Receipt represents a transaction receipt from the chain.
type Receipt struct {
	TxHash      string
	BlockNumber uint64
	BlockHash   string
	Status      uint64
	GasUsed     uint64
	Logs        []LogEntry
}

// Succeeded reports whether the transaction executed without reverting.
func (r Receipt) Succeeded() bool {
	return r.Status == 1
}
