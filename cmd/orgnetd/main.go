package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"orgnet/internal/agent"
	"orgnet/internal/application"
	"orgnet/internal/config"
	"orgnet/internal/infrastructure/ethrpc"
	"orgnet/internal/infrastructure/kafka"
	"orgnet/internal/infrastructure/llm"
	"orgnet/internal/infrastructure/logging"
	"orgnet/internal/infrastructure/storage"
	"orgnet/internal/infrastructure/telemetry"
	"orgnet/internal/infrastructure/wallet"
	"orgnet/internal/interfaces/httpapi"
)

var (
	version   = "dev"
	commit    = "none"
	buildTime = "unknown"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		slog.Error("config error", "err", err)
		os.Exit(1)
	}

	logFile := cfg.LogFile
	if logFile == "" {
		logFile = "logs/orgnetd.log"
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

	shutdownTracing, err := telemetry.InitTracer(context.Background(), "orgnet-api", cfg.OtelEndpoint)
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

	rpcClient, err := ethrpc.NewClient(ethrpc.Config{URL: cfg.RPCURL})
	if err != nil {
		slog.Error("rpc error", "err", err)
		os.Exit(1)
	}

	key, err := wallet.LoadKey(cfg.PrivateKey)
	if err != nil {
		slog.Error("wallet error", "err", err)
		os.Exit(1)
	}

	metrics := httpapi.NewMetrics()

	pipeline, err := application.NewPipeline(rpcClient, key, metrics, application.PipelineConfig{
		ChainID:             cfg.ChainID,
		GasLimit:            cfg.GasLimit,
		ReceiptTimeout:      cfg.ReceiptTimeout,
		ReceiptPollInterval: cfg.ReceiptPollInterval,
	})
	if err != nil {
		slog.Error("pipeline error", "err", err)
		os.Exit(1)
	}

	producer, err := kafka.NewProducer(kafka.ProducerConfig{
		Brokers:     cfg.KafkaBrokers,
		TopicPrefix: cfg.KafkaTopicPrefix,
		ChainID:     cfg.ChainID,
	})
	if err != nil {
		slog.Error("kafka error", "err", err)
		os.Exit(1)
	}
	defer producer.Close()

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

	services := application.NewServices(pipeline, producer, application.Addresses{
		Task:        cfg.TaskContract,
		Notice:      cfg.NoticeContract,
		Certificate: cfg.CertificateContract,
		Leave:       cfg.LeaveContract,
		Payment:     cfg.PaymentContract,
	})

	llmClient, err := llm.NewClient(llm.Config{
		BaseURL: cfg.LLMAPIURL,
		APIKey:  cfg.LLMAPIKey,
		Model:   cfg.LLMModel,
		Timeout: cfg.LLMTimeout,
	})
	if err != nil {
		slog.Error("llm client error", "err", err)
		os.Exit(1)
	}

	dispatcher, err := agent.NewDispatcher(llmClient, agent.NewTools(services))
	if err != nil {
		slog.Error("dispatcher error", "err", err)
		os.Exit(1)
	}

	httpServer, err := httpapi.NewServer(cfg, dispatcher, journal, rpcClient, metrics, httpapi.BuildInfo{
		Version:   version,
		Commit:    commit,
		BuildTime: buildTime,
	}, services.Sender())
	if err != nil {
		slog.Error("http server error", "err", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	checkCtx, checkCancel := context.WithTimeout(ctx, 5*time.Second)
	nodeChainID, err := rpcClient.ChainID(checkCtx)
	checkCancel()
	if err != nil {
		slog.Warn("chain id check skipped", "err", err)
	} else if nodeChainID != cfg.ChainID {
		slog.Error("chain id mismatch", "configured", cfg.ChainID, "node", nodeChainID)
		os.Exit(1)
	}

	slog.Info("orgnet api started",
		"addr", cfg.HTTPAddr,
		"chain_id", cfg.ChainID,
		"sender", services.Sender(),
		"model", cfg.LLMModel,
		"db_driver", cfg.DBDriver,
	)
	if err := httpServer.ListenAndServe(ctx, cfg.HTTPAddr); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("http server error", "err", err)
		os.Exit(1)
	}
}
