package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"orgnet/internal/application"
	"orgnet/internal/config"
	"orgnet/internal/infrastructure/ethrpc"
	"orgnet/internal/infrastructure/kafka"
	"orgnet/internal/infrastructure/logging"
	"orgnet/internal/infrastructure/telemetry"
	"orgnet/internal/infrastructure/wallet"
)

type manifestRow struct {
	line int
	name string
	path string
}

func main() {
	manifestPath := flag.String("manifest", "", "CSV manifest of certificates to issue: name,artifact path")
	workers := flag.Int("workers", 4, "number of issuance workers")
	flag.Parse()

	if strings.TrimSpace(*manifestPath) == "" {
		fmt.Fprintln(os.Stderr, "usage: certbatch -manifest <file.csv> [-workers N]")
		os.Exit(2)
	}
	if *workers < 1 {
		*workers = 1
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		slog.Error("config error", "err", err)
		os.Exit(1)
	}

	logFile := cfg.LogFile
	if logFile == "" {
		logFile = "logs/certbatch.log"
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

	rows, err := readManifest(*manifestPath)
	if err != nil {
		slog.Error("manifest error", "err", err)
		os.Exit(1)
	}
	if len(rows) == 0 {
		slog.Error("manifest has no rows", "manifest", *manifestPath)
		os.Exit(1)
	}

	shutdownTracing, err := telemetry.InitTracer(context.Background(), "orgnet-certbatch", cfg.OtelEndpoint)
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

	pipeline, err := application.NewPipeline(rpcClient, key, nil, application.PipelineConfig{
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

	services := application.NewServices(pipeline, producer, application.Addresses{
		Certificate: cfg.CertificateContract,
	})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	slog.Info("certificate batch started",
		"manifest", *manifestPath,
		"rows", len(rows),
		"workers", *workers,
		"sender", services.Sender(),
	)

	jobs := make(chan manifestRow)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var issued, failed int

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for row := range jobs {
				if err := issueRow(ctx, services, row); err != nil {
					slog.Error("row failed",
						"line", row.line,
						"name", row.name,
						"path", row.path,
						"err", err,
					)
					mu.Lock()
					failed++
					mu.Unlock()
					continue
				}
				mu.Lock()
				issued++
				mu.Unlock()
			}
		}()
	}

feed:
	for _, row := range rows {
		select {
		case jobs <- row:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	skipped := len(rows) - issued - failed
	slog.Info("certificate batch finished",
		"issued", issued,
		"failed", failed,
		"skipped", skipped,
	)
	if failed > 0 || skipped > 0 {
		os.Exit(1)
	}
}

// issueRow issues one certificate and confirms the chain agrees before the row
// counts as done.
func issueRow(ctx context.Context, services *application.Services, row manifestRow) error {
	outcome, hash, err := services.IssueCertificateFile(ctx, row.name, row.path)
	if err != nil {
		return err
	}
	valid, err := services.VerifyCertificate(ctx, hash)
	if err != nil {
		return fmt.Errorf("verify after issue: %w", err)
	}
	if !valid {
		return fmt.Errorf("certificate %d reported invalid after issue", outcome.EntityID)
	}
	slog.Info("certificate issued",
		"line", row.line,
		"name", row.name,
		"certificate_id", outcome.EntityID,
		"hash", hash,
		"tx_hash", outcome.TxHash,
		"block_number", outcome.BlockNumber,
	)
	return nil
}

// readManifest parses the CSV manifest. Each record is "name,artifact path";
// a first record of exactly "name,path" is treated as a header and skipped.
func readManifest(path string) ([]manifestRow, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = 2
	reader.TrimLeadingSpace = true

	var rows []manifestRow
	first := true
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := reader.FieldPos(0)

		name := strings.TrimSpace(record[0])
		artifact := strings.TrimSpace(record[1])
		if first {
			first = false
			if strings.EqualFold(name, "name") && strings.EqualFold(artifact, "path") {
				continue
			}
		}
		if name == "" || artifact == "" {
			return nil, fmt.Errorf("line %d: name and path are required", line)
		}
		rows = append(rows, manifestRow{line: line, name: name, path: artifact})
	}
	return rows, nil
}
