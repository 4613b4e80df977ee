package domain

// LogEntry represents one event log carried by a receipt.
type LogEntry struct {
	BlockNumber uint64
	TxHash      string
	LogIndex    uint64
	Address     string
	Data        string
	Topics      []string
}
