package kafka

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"orgnet/internal/domain"
	"orgnet/internal/infrastructure/telemetry"
	"orgnet/internal/streaming"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Producer publishes confirmed outcomes to the per-chain outcome topic.
type Producer struct {
	writer  *kafka.Writer
	prefix  string
	chainID uint64
}

type ProducerConfig struct {
	Brokers     []string
	TopicPrefix string
	ChainID     uint64
}

func NewProducer(cfg ProducerConfig) (*Producer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errors.New("kafka brokers are required")
	}
	if cfg.ChainID == 0 {
		return nil, errors.New("chain id is required")
	}
	if strings.TrimSpace(cfg.TopicPrefix) == "" {
		cfg.TopicPrefix = "orgnet-outcomes"
	}
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 500 * time.Millisecond,
	}
	return &Producer{writer: writer, prefix: cfg.TopicPrefix, chainID: cfg.ChainID}, nil
}

func (p *Producer) Close() error {
	return p.writer.Close()
}

// PublishOutcome writes one outcome message. Each message starts its own trace
// so the recorder's consume span can join it through the message headers.
func (p *Producer) PublishOutcome(ctx context.Context, outcome domain.Outcome) error {
	tracer := otel.Tracer("orgnet/kafka")

	traceCtx := ctx
	_, traceIDHex, ok := telemetry.NewTraceID()
	if ok {
		if withTrace, ok := telemetry.ContextWithTraceID(ctx, traceIDHex); ok {
			traceCtx = withTrace
		}
	} else {
		traceIDHex = ""
	}
	traceCtx, span := tracer.Start(traceCtx, "pipeline.publish_outcome", trace.WithSpanKind(trace.SpanKindProducer))
	defer span.End()
	span.SetAttributes(
		attribute.Int64("chain.id", int64(p.chainID)),
		attribute.String("outcome.domain", outcome.Domain),
		attribute.String("outcome.action", outcome.Action),
		attribute.Int64("outcome.entity_id", int64(outcome.EntityID)),
		attribute.String("tx.hash", outcome.TxHash),
		attribute.Int64("block.number", int64(outcome.BlockNumber)),
	)

	payload, err := streaming.Encode(streaming.Message{
		Type:        streaming.MessageTypeOutcome,
		ChainID:     p.chainID,
		TraceID:     traceIDHex,
		Domain:      outcome.Domain,
		Action:      outcome.Action,
		EntityID:    outcome.EntityID,
		TxHash:      outcome.TxHash,
		BlockNumber: outcome.BlockNumber,
		Sender:      outcome.Sender,
		Status:      outcome.Status,
		GasUsed:     outcome.GasUsed,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	headers := make([]kafka.Header, 0, 2)
	telemetry.InjectKafkaHeaders(traceCtx, &headers)
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic:   p.topicForChain(p.chainID),
		Key:     []byte(outcome.TxHash),
		Value:   payload,
		Headers: headers,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (p *Producer) topicForChain(chainID uint64) string {
	return fmt.Sprintf("%s-%d", p.prefix, chainID)
}
