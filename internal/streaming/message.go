package streaming

import (
	"encoding/json"
	"errors"
)

type MessageType string

const (
	MessageTypeOutcome MessageType = "outcome"
)

// Message is the wire form of a confirmed outcome on the stream.
type Message struct {
	Type        MessageType `json:"type"`
	ChainID     uint64      `json:"chain_id"`
	TraceID     string      `json:"trace_id,omitempty"`
	Domain      string      `json:"domain"`
	Action      string      `json:"action"`
	EntityID    uint64      `json:"entity_id"`
	TxHash      string      `json:"tx_hash"`
	BlockNumber uint64      `json:"block_number"`
	Sender      string      `json:"sender"`
	Status      uint64      `json:"status"`
	GasUsed     uint64      `json:"gas_used"`
}

func Encode(msg Message) ([]byte, error) {
	if msg.Type == "" {
		return nil, errors.New("message type is required")
	}
	if msg.ChainID == 0 {
		return nil, errors.New("chain_id is required")
	}
	return json.Marshal(msg)
}

func Decode(payload []byte) (Message, error) {
	var msg Message
	if err := json.Unmarshal(payload, &msg); err != nil {
		return Message{}, err
	}
	if msg.Type == "" {
		return Message{}, errors.New("message type is missing")
	}
	if msg.ChainID == 0 {
		return Message{}, errors.New("chain_id is missing")
	}
	return msg, nil
}
