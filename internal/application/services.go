package application

import (
	"context"
	"log/slog"

	"orgnet/internal/domain"
)

// OutcomePublisher forwards confirmed outcomes to the outcome stream.
type OutcomePublisher interface {
	PublishOutcome(ctx context.Context, outcome domain.Outcome) error
}

// Addresses holds the deployed contract addresses.
type Addresses struct {
	Task        string
	Notice      string
	Certificate string
	Leave       string
	Payment     string
}

// Services exposes the domain operations. Each state-changing operation
// validates its inputs before any network call, runs the pipeline, extracts
// the entity identifier from the receipt, and publishes the outcome.
type Services struct {
	pipeline  *Pipeline
	publisher OutcomePublisher
	addrs     Addresses
}

func NewServices(pipeline *Pipeline, publisher OutcomePublisher, addrs Addresses) *Services {
	return &Services{pipeline: pipeline, publisher: publisher, addrs: addrs}
}

// Sender returns the account the services submit from.
func (s *Services) Sender() string {
	return s.pipeline.Sender()
}

func (s *Services) outcome(domainName, action string, entityID uint64, receipt *domain.Receipt) domain.Outcome {
	return domain.Outcome{
		Domain:      domainName,
		Action:      action,
		EntityID:    entityID,
		TxHash:      receipt.TxHash,
		BlockNumber: receipt.BlockNumber,
		Sender:      s.pipeline.Sender(),
		Status:      receipt.Status,
		GasUsed:     receipt.GasUsed,
	}
}

// publish forwards the outcome to the stream. The transaction is already
// confirmed at this point, so a publish failure is logged rather than turned
// into an operation error.
func (s *Services) publish(ctx context.Context, outcome domain.Outcome) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishOutcome(ctx, outcome); err != nil {
		slog.Warn("outcome publish failed",
			"domain", outcome.Domain,
			"action", outcome.Action,
			"tx_hash", outcome.TxHash,
			"error", err,
		)
	}
}
