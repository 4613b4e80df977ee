package domain

import "math/big"

// TransactionRequest describes one contract call to submit. Immutable once built.
type TransactionRequest struct {
	From     string
	To       string
	Function string
	Data     []byte
	Value    *big.Int
}

// TransactionPlan is a request enriched with chain parameters. Built fresh per
// submission; the nonce is the sender's transaction count at build time.
type TransactionPlan struct {
	Request  TransactionRequest
	ChainID  uint64
	GasLimit uint64
	GasPrice *big.Int
	Nonce    uint64
}

// SignedTransaction is the signed wire payload and its hash.
type SignedTransaction struct {
	Raw  []byte
	Hash string
}
