package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"orgnet/internal/application"
	"orgnet/internal/config"
	"orgnet/internal/infrastructure/logging"
	"orgnet/internal/infrastructure/storage"
	"orgnet/internal/infrastructure/telemetry"
	"orgnet/internal/streaming"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		slog.Error("config error", "err", err)
		os.Exit(1)
	}

	logFile := cfg.LogFile
	if logFile == "" {
		logFile = "logs/recorder.log"
	}
	if _, err := logging.Init(logging.Config{
		Level:      cfg.LogLevel,
		Format:     cfg.LogFormat,
		File:       logFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
	}); err != nil {
		slog.Error("logger init error", "err", err)
	}

	journal, err := storage.Open(storage.Config{
		Driver:    cfg.DBDriver,
		DSN:       cfg.DBDSN,
		Path:      cfg.DBPath,
		RedisAddr: cfg.RedisAddr,
		CacheTTL:  cfg.CacheTTL,
	})
	if err != nil {
		slog.Error("journal error", "err", err)
		os.Exit(1)
	}
	defer journal.Close()

	shutdownTracing, err := telemetry.InitTracer(context.Background(), "orgnet-recorder", cfg.OtelEndpoint)
	if err != nil {
		slog.Warn("tracing init error", "err", err)
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdownTracing(ctx); err != nil {
				slog.Warn("tracing shutdown error", "err", err)
			}
		}()
	}

	topic := fmt.Sprintf("%s-%d", cfg.KafkaTopicPrefix, cfg.ChainID)
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.KafkaBrokers,
		GroupID:  cfg.KafkaGroupID,
		Topic:    topic,
		MinBytes: 1,
		MaxBytes: 10e6,
	})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	slog.Info("outcome recorder started",
		"topic", topic,
		"group", cfg.KafkaGroupID,
		"db_driver", cfg.DBDriver,
	)
	consumeOutcomes(ctx, reader, journal, cfg.ChainID)
	if err := reader.Close(); err != nil {
		slog.Warn("reader close error", "err", err)
	}
}

func consumeOutcomes(ctx context.Context, reader *kafka.Reader, journal storage.Journal, chainID uint64) {
	tracer := otel.Tracer("orgnet/recorder")
	var (
		messageCount uint64
		storeErrors  uint64
		lastAction   string
		lastTx       string
	)

	for {
		message, err := reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return
			}
			slog.Error("kafka fetch error", "err", err)
			time.Sleep(100 * time.Millisecond)
			continue
		}

		decoded, err := streaming.Decode(message.Value)
		if err != nil {
			slog.Warn("message decode error", "err", err)
			_ = reader.CommitMessages(ctx, message)
			continue
		}
		if decoded.ChainID != chainID {
			slog.Warn("unexpected chain id on topic", "chain_id", decoded.ChainID)
		}

		messageCtx := telemetry.ExtractKafkaHeaders(ctx, message.Headers)
		if !trace.SpanContextFromContext(messageCtx).IsValid() && decoded.TraceID != "" {
			if ctxWithTrace, ok := telemetry.ContextWithTraceID(messageCtx, decoded.TraceID); ok {
				messageCtx = ctxWithTrace
			}
		}
		messageCtx, span := tracer.Start(messageCtx, "recorder.store_outcome", trace.WithSpanKind(trace.SpanKindConsumer))
		span.SetAttributes(
			attribute.String("outcome.domain", decoded.Domain),
			attribute.String("outcome.action", decoded.Action),
			attribute.Int64("chain.id", int64(decoded.ChainID)),
		)
		if decoded.TxHash != "" {
			span.SetAttributes(attribute.String("tx.hash", decoded.TxHash))
		}

		// No commit on failure: the message is redelivered and the journal's
		// unique transaction constraint absorbs the retry.
		if err := application.ApplyMessage(messageCtx, journal, decoded); err != nil {
			storeErrors++
			slog.Error("outcome store error", "err", err)
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			span.End()
			time.Sleep(500 * time.Millisecond)
			continue
		}
		span.End()

		messageCount++
		lastAction = decoded.Action
		lastTx = decoded.TxHash
		if messageCount%100 == 0 {
			slog.Info("recorder stats",
				"messages", messageCount,
				"store_errors", storeErrors,
				"last_action", lastAction,
				"last_tx", lastTx,
			)
		}

		if err := reader.CommitMessages(ctx, message); err != nil {
			slog.Error("kafka commit error", "err", err)
		}
	}
}
