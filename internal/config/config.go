package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	RPCURL              string
	ChainID             uint64
	PrivateKey          string
	GasLimit            uint64
	ReceiptTimeout      time.Duration
	ReceiptPollInterval time.Duration
	TaskContract        string
	NoticeContract      string
	CertificateContract string
	LeaveContract       string
	PaymentContract     string
	HTTPAddr            string
	DBDriver            string
	DBDSN               string
	DBPath              string
	RedisAddr           string
	CacheTTL            time.Duration
	KafkaBrokers        []string
	KafkaTopicPrefix    string
	KafkaGroupID        string
	OtelEndpoint        string
	LLMAPIURL           string
	LLMAPIKey           string
	LLMModel            string
	LLMTimeout          time.Duration
	LogFile             string
	LogLevel            string
	LogFormat           string
	LogMaxSizeMB        int
	LogMaxBackups       int
}

type EnvSource interface {
	Lookup(key string) (string, bool)
}

type EnvMap map[string]string

func (e EnvMap) Lookup(key string) (string, bool) {
	value, ok := e[key]
	return value, ok
}

func FromEnviron() EnvSource {
	env := make(EnvMap)
	for _, entry := range os.Environ() {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		env[parts[0]] = parts[1]
	}
	return env
}

func Load(source EnvSource) (Config, error) {
	if source == nil {
		return Config{}, errors.New("env source is required")
	}

	rpcURL, ok := source.Lookup("RPC_URL")
	if !ok || strings.TrimSpace(rpcURL) == "" {
		rpcURL = "https://testnet-rpc.monad.xyz"
	}

	chainID, err := parseUintEnv(source, "CHAIN_ID", 10143)
	if err != nil {
		return Config{}, err
	}
	if chainID == 0 {
		return Config{}, errors.New("CHAIN_ID must be nonzero")
	}

	gasLimit, err := parseUintEnv(source, "GAS_LIMIT", 2_000_000)
	if err != nil {
		return Config{}, err
	}
	if gasLimit == 0 {
		return Config{}, errors.New("GAS_LIMIT must be nonzero")
	}

	receiptTimeout, err := parseDurationEnv(source, "RECEIPT_TIMEOUT", 90*time.Second)
	if err != nil {
		return Config{}, err
	}
	receiptPoll, err := parseDurationEnv(source, "RECEIPT_POLL_INTERVAL", time.Second)
	if err != nil {
		return Config{}, err
	}

	privateKey, _ := source.Lookup("PRIVATE_KEY")
	privateKey = strings.TrimSpace(privateKey)

	taskContract, _ := source.Lookup("TASK_CONTRACT_ADDRESS")
	noticeContract, _ := source.Lookup("NOTICE_CONTRACT_ADDRESS")
	certificateContract, _ := source.Lookup("CERTIFICATE_CONTRACT_ADDRESS")
	leaveContract, _ := source.Lookup("LEAVE_CONTRACT_ADDRESS")
	paymentContract, _ := source.Lookup("PAYMENT_CONTRACT_ADDRESS")

	httpAddr := ":8080"
	if raw, ok := source.Lookup("HTTP_ADDR"); ok && raw != "" {
		httpAddr = raw
	}

	dbDriver := "mysql"
	if raw, ok := source.Lookup("DB_DRIVER"); ok && strings.TrimSpace(raw) != "" {
		dbDriver = strings.ToLower(strings.TrimSpace(raw))
	}
	if dbDriver != "mysql" && dbDriver != "sqlite" {
		return Config{}, fmt.Errorf("unsupported DB_DRIVER %q", dbDriver)
	}

	dbDSN, ok := source.Lookup("DB_DSN")
	if !ok || strings.TrimSpace(dbDSN) == "" {
		dbDSN = "root:@tcp(127.0.0.1:3306)/orgnet?parseTime=true&multiStatements=true"
	}

	dbPath, ok := source.Lookup("DB_PATH")
	if !ok || strings.TrimSpace(dbPath) == "" {
		dbPath = "orgnet.db"
	}

	redisAddr, _ := source.Lookup("REDIS_ADDR")
	redisAddr = strings.TrimSpace(redisAddr)

	cacheTTL, err := parseDurationEnv(source, "CACHE_TTL", 30*time.Second)
	if err != nil {
		return Config{}, err
	}

	kafkaBrokers, err := parseList(source, "KAFKA_BROKERS", "localhost:9092")
	if err != nil {
		return Config{}, err
	}
	kafkaTopicPrefix, ok := source.Lookup("KAFKA_TOPIC_PREFIX")
	if !ok || kafkaTopicPrefix == "" {
		kafkaTopicPrefix = "orgnet-outcomes"
	}
	kafkaGroupID, ok := source.Lookup("KAFKA_GROUP_ID")
	if !ok || kafkaGroupID == "" {
		kafkaGroupID = "orgnet-recorder"
	}

	otelEndpoint, _ := source.Lookup("OTEL_EXPORTER_OTLP_ENDPOINT")
	otelEndpoint = strings.TrimSpace(otelEndpoint)

	llmAPIURL, ok := source.Lookup("LLM_API_URL")
	if !ok || strings.TrimSpace(llmAPIURL) == "" {
		llmAPIURL = "https://api.openai.com/v1"
	}
	llmAPIKey, _ := source.Lookup("LLM_API_KEY")
	llmModel, ok := source.Lookup("LLM_MODEL")
	if !ok || strings.TrimSpace(llmModel) == "" {
		llmModel = "gpt-4o-mini"
	}
	llmTimeout, err := parseDurationEnv(source, "LLM_TIMEOUT", 30*time.Second)
	if err != nil {
		return Config{}, err
	}

	logFile, _ := source.Lookup("LOG_FILE")
	logLevel, _ := source.Lookup("LOG_LEVEL")
	logFormat, _ := source.Lookup("LOG_FORMAT")
	logMaxSize, err := parseUintEnv(source, "LOG_MAX_SIZE_MB", 0)
	if err != nil {
		return Config{}, err
	}
	logMaxBackups, err := parseUintEnv(source, "LOG_MAX_BACKUPS", 0)
	if err != nil {
		return Config{}, err
	}

	return Config{
		RPCURL:              rpcURL,
		ChainID:             chainID,
		PrivateKey:          privateKey,
		GasLimit:            gasLimit,
		ReceiptTimeout:      receiptTimeout,
		ReceiptPollInterval: receiptPoll,
		TaskContract:        strings.TrimSpace(taskContract),
		NoticeContract:      strings.TrimSpace(noticeContract),
		CertificateContract: strings.TrimSpace(certificateContract),
		LeaveContract:       strings.TrimSpace(leaveContract),
		PaymentContract:     strings.TrimSpace(paymentContract),
		HTTPAddr:            httpAddr,
		DBDriver:            dbDriver,
		DBDSN:               dbDSN,
		DBPath:              dbPath,
		RedisAddr:           redisAddr,
		CacheTTL:            cacheTTL,
		KafkaBrokers:        kafkaBrokers,
		KafkaTopicPrefix:    kafkaTopicPrefix,
		KafkaGroupID:        kafkaGroupID,
		OtelEndpoint:        otelEndpoint,
		LLMAPIURL:           strings.TrimRight(strings.TrimSpace(llmAPIURL), "/"),
		LLMAPIKey:           strings.TrimSpace(llmAPIKey),
		LLMModel:            strings.TrimSpace(llmModel),
		LLMTimeout:          llmTimeout,
		LogFile:             strings.TrimSpace(logFile),
		LogLevel:            strings.TrimSpace(logLevel),
		LogFormat:           strings.TrimSpace(logFormat),
		LogMaxSizeMB:        int(logMaxSize),
		LogMaxBackups:       int(logMaxBackups),
	}, nil
}

func parseUintEnv(source EnvSource, key string, defaultValue uint64) (uint64, error) {
	raw, ok := source.Lookup(key)
	if !ok || raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return value, nil
}

func parseDurationEnv(source EnvSource, key string, defaultValue time.Duration) (time.Duration, error) {
	raw, ok := source.Lookup(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return defaultValue, nil
	}
	duration, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if duration <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive", key)
	}
	return duration, nil
}

func parseList(source EnvSource, key string, defaultValue string) ([]string, error) {
	raw, ok := source.Lookup(key)
	if !ok || strings.TrimSpace(raw) == "" {
		raw = defaultValue
	}
	items := strings.Split(raw, ",")
	var values []string
	for _, item := range items {
		value := strings.TrimSpace(item)
		if value == "" {
			continue
		}
		values = append(values, value)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%s is required", key)
	}
	return values, nil
}
