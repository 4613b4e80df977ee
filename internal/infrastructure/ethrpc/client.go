package ethrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"orgnet/internal/domain"
)

// Client is a JSON-RPC client for an Ethereum-compatible endpoint, covering
// the calls the submission pipeline needs.
type Client struct {
	url        string
	httpClient *http.Client
	idCounter  uint64
}

type Config struct {
	URL string
}

func NewClient(cfg Config) (*Client, error) {
	if cfg.URL == "" {
		return nil, errors.New("rpc url is required")
	}
	return &Client{
		url:        cfg.URL,
		httpClient: &http.Client{},
	}, nil
}

// URL returns the configured endpoint.
func (c *Client) URL() string {
	return c.url
}

func (c *Client) ChainID(ctx context.Context) (uint64, error) {
	var result string
	if err := c.call(ctx, "eth_chainId", []any{}, &result); err != nil {
		return 0, err
	}
	return parseHexUint(result)
}

func (c *Client) LatestBlockNumber(ctx context.Context) (uint64, error) {
	var result string
	if err := c.call(ctx, "eth_blockNumber", []any{}, &result); err != nil {
		return 0, err
	}
	return parseHexUint(result)
}

// NonceAt returns the sender's current transaction count at the latest block.
func (c *Client) NonceAt(ctx context.Context, address string) (uint64, error) {
	var result string
	if err := c.call(ctx, "eth_getTransactionCount", []any{strings.ToLower(address), "latest"}, &result); err != nil {
		return 0, err
	}
	return parseHexUint(result)
}

func (c *Client) GasPrice(ctx context.Context) (*big.Int, error) {
	var result string
	if err := c.call(ctx, "eth_gasPrice", []any{}, &result); err != nil {
		return nil, err
	}
	return parseHexBig(result)
}

// SendRawTransaction submits a signed transaction and returns its hash. Node
// rejections come back as *RPCError with the node's message.
func (c *Client) SendRawTransaction(ctx context.Context, raw []byte) (string, error) {
	var hash string
	if err := c.call(ctx, "eth_sendRawTransaction", []any{hexutil.Encode(raw)}, &hash); err != nil {
		return "", err
	}
	return hash, nil
}

// TransactionReceipt returns the receipt for hash, or nil while the
// transaction is still pending.
func (c *Client) TransactionReceipt(ctx context.Context, hash string) (*domain.Receipt, error) {
	var result *rpcReceipt
	if err := c.call(ctx, "eth_getTransactionReceipt", []any{hash}, &result); err != nil {
		return nil, err
	}
	if result == nil {
		return nil, nil
	}

	blockNumber, err := parseHexUint(result.BlockNumber)
	if err != nil {
		return nil, fmt.Errorf("receipt block number: %w", err)
	}
	status, err := parseHexUint(result.Status)
	if err != nil {
		return nil, fmt.Errorf("receipt status: %w", err)
	}
	gasUsed, err := parseHexUint(result.GasUsed)
	if err != nil {
		return nil, fmt.Errorf("receipt gas used: %w", err)
	}

	logs := make([]domain.LogEntry, 0, len(result.Logs))
	for _, log := range result.Logs {
		logBlock, err := parseHexUint(log.BlockNumber)
		if err != nil {
			return nil, fmt.Errorf("log block number: %w", err)
		}
		logIndex, err := parseHexUint(log.LogIndex)
		if err != nil {
			return nil, fmt.Errorf("log index: %w", err)
		}
		logs = append(logs, domain.LogEntry{
			BlockNumber: logBlock,
			TxHash:      log.TxHash,
			LogIndex:    logIndex,
			Address:     strings.ToLower(log.Address),
			Data:        log.Data,
			Topics:      log.Topics,
		})
	}

	return &domain.Receipt{
		TxHash:      result.TxHash,
		BlockNumber: blockNumber,
		BlockHash:   result.BlockHash,
		Status:      status,
		GasUsed:     gasUsed,
		Logs:        logs,
	}, nil
}

// CallContract executes a read-only call at the latest block and returns the
// raw return data.
func (c *Client) CallContract(ctx context.Context, from, to string, data []byte) ([]byte, error) {
	msg := map[string]any{
		"to":   strings.ToLower(to),
		"data": hexutil.Encode(data),
	}
	if from != "" {
		msg["from"] = strings.ToLower(from)
	}
	var result string
	if err := c.call(ctx, "eth_call", []any{msg, "latest"}, &result); err != nil {
		return nil, err
	}
	return hexutil.Decode(result)
}

type rpcReceipt struct {
	TxHash      string   `json:"transactionHash"`
	BlockNumber string   `json:"blockNumber"`
	BlockHash   string   `json:"blockHash"`
	Status      string   `json:"status"`
	GasUsed     string   `json:"gasUsed"`
	Logs        []rpcLog `json:"logs"`
}

type rpcLog struct {
	Address     string   `json:"address"`
	Topics      []string `json:"topics"`
	Data        string   `json:"data"`
	BlockNumber string   `json:"blockNumber"`
	TxHash      string   `json:"transactionHash"`
	LogIndex    string   `json:"logIndex"`
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      uint64 `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      uint64          `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *RPCError       `json:"error"`
}

// RPCError is an error object returned by the node itself, as opposed to a
// transport failure reaching it.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// NodeMessage returns the node's message verbatim.
func (e *RPCError) NodeMessage() string {
	return e.Message
}

func (c *Client) call(ctx context.Context, method string, params []any, result any) error {
	id := atomic.AddUint64(&c.idCounter, 1)
	payload, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      id,
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("rpc status %d", resp.StatusCode)
	}

	var decoded rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return err
	}
	if decoded.Error != nil {
		return decoded.Error
	}
	if result == nil {
		return nil
	}
	if len(decoded.Result) == 0 {
		return errors.New("rpc result is empty")
	}
	return json.Unmarshal(decoded.Result, result)
}

func parseHexUint(value string) (uint64, error) {
	trimmed := strings.TrimPrefix(value, "0x")
	if trimmed == "" {
		return 0, errors.New("empty hex value")
	}
	return strconv.ParseUint(trimmed, 16, 64)
}

func parseHexBig(value string) (*big.Int, error) {
	trimmed := strings.TrimPrefix(value, "0x")
	if trimmed == "" {
		return nil, errors.New("empty hex value")
	}
	parsed, ok := new(big.Int).SetString(trimmed, 16)
	if !ok {
		return nil, fmt.Errorf("invalid hex value %q", value)
	}
	return parsed, nil
}
