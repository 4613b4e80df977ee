package application

import (
	"context"
	"errors"
	"log/slog"

	"orgnet/internal/domain"
	"orgnet/internal/streaming"
)

// OutcomeRepository is the journal the recorder writes to.
type OutcomeRepository interface {
	StoreOutcome(ctx context.Context, record domain.OutcomeRecord) error
}

// ApplyMessage writes one stream message to the journal. Redelivered messages
// are absorbed by the journal's unique transaction constraint, so applying is
// safe to repeat.
func ApplyMessage(ctx context.Context, repo OutcomeRepository, msg streaming.Message) error {

	slog.Debug("consume message",
		"type", msg.Type,
		"chain_id", msg.ChainID,
		"domain", msg.Domain,
		"action", msg.Action,
		"tx_hash", msg.TxHash,
	)

	if repo == nil {
		return errors.New("outcome repository is required")
	}

	switch msg.Type {
	case streaming.MessageTypeOutcome:
		return repo.StoreOutcome(ctx, domain.OutcomeRecord{
			ChainID:     msg.ChainID,
			Domain:      msg.Domain,
			Action:      msg.Action,
			EntityID:    msg.EntityID,
			TxHash:      msg.TxHash,
			BlockNumber: msg.BlockNumber,
			Sender:      msg.Sender,
			Status:      msg.Status,
			GasUsed:     msg.GasUsed,
		})
	default:
		return errors.New("unknown message type")
	}
}
