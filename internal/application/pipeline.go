package application

import (
	"context"
	"errors"
	"log/slog"
	"math/big"
	"strings"
	"sync"
	"time"

	"orgnet/internal/domain"
)

// ChainClient is the chain access the pipeline needs.
type ChainClient interface {
	NonceAt(ctx context.Context, address string) (uint64, error)
	GasPrice(ctx context.Context) (*big.Int, error)
	SendRawTransaction(ctx context.Context, raw []byte) (string, error)
	TransactionReceipt(ctx context.Context, hash string) (*domain.Receipt, error)
	CallContract(ctx context.Context, from, to string, data []byte) ([]byte, error)
}

// Signer signs transaction plans for one account.
type Signer interface {
	Address() string
	SignPlan(plan domain.TransactionPlan) (domain.SignedTransaction, error)
}

// PipelineObserver receives submission lifecycle notifications.
type PipelineObserver interface {
	OnSubmitted(function string)
	OnConfirmed(function string, wait time.Duration)
	OnFailed(function string, kind domain.ErrorKind)
}

type PipelineConfig struct {
	ChainID             uint64
	GasLimit            uint64
	ReceiptTimeout      time.Duration
	ReceiptPollInterval time.Duration
}

// Pipeline turns transaction requests into confirmed receipts. Submissions
// sharing a sender address are serialized so each plan sees the nonce left by
// the previous confirmation; read-only queries run without locking.
type Pipeline struct {
	chain    ChainClient
	signer   Signer
	observer PipelineObserver
	cfg      PipelineConfig

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewPipeline(chain ChainClient, signer Signer, observer PipelineObserver, cfg PipelineConfig) (*Pipeline, error) {
	if chain == nil || signer == nil {
		return nil, errors.New("pipeline dependencies must not be nil")
	}
	if cfg.ChainID == 0 {
		return nil, errors.New("chain id must not be zero")
	}
	if cfg.GasLimit == 0 {
		cfg.GasLimit = 2_000_000
	}
	if cfg.ReceiptTimeout <= 0 {
		cfg.ReceiptTimeout = 90 * time.Second
	}
	if cfg.ReceiptPollInterval <= 0 {
		cfg.ReceiptPollInterval = time.Second
	}
	return &Pipeline{
		chain:    chain,
		signer:   signer,
		observer: observer,
		cfg:      cfg,
		locks:    make(map[string]*sync.Mutex),
	}, nil
}

// Sender returns the submitting account address.
func (p *Pipeline) Sender() string {
	return p.signer.Address()
}

// ChainID returns the chain id stamped on every plan.
func (p *Pipeline) ChainID() uint64 {
	return p.cfg.ChainID
}

// Execute submits one state-changing contract call and waits for its receipt.
// The plan is built fresh: the nonce and gas price are fetched per call, never
// cached, so a repeated call is an independent transaction.
func (p *Pipeline) Execute(ctx context.Context, req domain.TransactionRequest) (*domain.Receipt, error) {
	if req.From == "" {
		req.From = p.signer.Address()
	}
	if req.To == "" {
		return nil, p.failed(req.Function, domain.Errorf(domain.ErrValidation, "%s: contract address is not configured", req.Function))
	}

	lock := p.senderLock(strings.ToLower(req.From))
	lock.Lock()
	defer lock.Unlock()

	started := time.Now()

	nonce, err := p.chain.NonceAt(ctx, req.From)
	if err != nil {
		return nil, p.failed(req.Function, domain.WrapError(domain.ErrChainUnavailable, "fetching nonce", err))
	}
	gasPrice, err := p.chain.GasPrice(ctx)
	if err != nil {
		return nil, p.failed(req.Function, domain.WrapError(domain.ErrChainUnavailable, "fetching gas price", err))
	}

	plan := domain.TransactionPlan{
		Request:  req,
		ChainID:  p.cfg.ChainID,
		GasLimit: p.cfg.GasLimit,
		GasPrice: gasPrice,
		Nonce:    nonce,
	}
	signed, err := p.signer.SignPlan(plan)
	if err != nil {
		return nil, p.failed(req.Function, domain.WrapError(domain.ErrSigning, "signing transaction", err))
	}

	txHash, err := p.chain.SendRawTransaction(ctx, signed.Raw)
	if err != nil {
		var nodeErr domain.NodeError
		if errors.As(err, &nodeErr) {
			return nil, p.failed(req.Function, domain.WrapError(domain.ErrSubmissionRejected, nodeErr.NodeMessage(), err))
		}
		return nil, p.failed(req.Function, domain.WrapError(domain.ErrChainUnavailable, "submitting transaction", err))
	}
	if p.observer != nil {
		p.observer.OnSubmitted(req.Function)
	}
	slog.Debug("transaction submitted",
		"function", req.Function,
		"tx_hash", txHash,
		"nonce", nonce,
	)

	receipt, waitErr := p.awaitReceipt(ctx, txHash)
	if waitErr != nil {
		return nil, p.failed(req.Function, waitErr)
	}
	if p.observer != nil {
		p.observer.OnConfirmed(req.Function, time.Since(started))
	}
	slog.Info("transaction confirmed",
		"function", req.Function,
		"tx_hash", receipt.TxHash,
		"block_number", receipt.BlockNumber,
		"status", receipt.Status,
		"gas_used", receipt.GasUsed,
	)
	return receipt, nil
}

// Query runs a read-only contract call with the sender as the view context and
// returns the raw return data.
func (p *Pipeline) Query(ctx context.Context, to string, data []byte) ([]byte, error) {
	if to == "" {
		return nil, domain.Errorf(domain.ErrValidation, "contract address is not configured")
	}
	out, err := p.chain.CallContract(ctx, p.signer.Address(), to, data)
	if err != nil {
		return nil, domain.WrapError(domain.ErrQueryFailed, "contract call", err)
	}
	return out, nil
}

// awaitReceipt polls for the receipt until it appears or the timeout expires.
// Transient poll failures while the deadline is open do not abort the wait.
func (p *Pipeline) awaitReceipt(ctx context.Context, txHash string) (*domain.Receipt, *domain.Error) {
	deadline := time.NewTimer(p.cfg.ReceiptTimeout)
	defer deadline.Stop()
	ticker := time.NewTicker(p.cfg.ReceiptPollInterval)
	defer ticker.Stop()

	for {
		receipt, err := p.chain.TransactionReceipt(ctx, txHash)
		if err != nil {
			slog.Debug("receipt poll failed", "tx_hash", txHash, "error", err)
		} else if receipt != nil {
			return receipt, nil
		}

		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil, domain.WrapError(domain.ErrCanceled, "receipt wait canceled for "+txHash, ctx.Err())
			}
			return nil, domain.WrapError(domain.ErrReceiptTimeout, "receipt wait interrupted for "+txHash, ctx.Err())
		case <-deadline.C:
			return nil, domain.Errorf(domain.ErrReceiptTimeout, "no receipt for %s within %s", txHash, p.cfg.ReceiptTimeout)
		case <-ticker.C:
		}
	}
}

func (p *Pipeline) failed(function string, err *domain.Error) error {
	if p.observer != nil {
		p.observer.OnFailed(function, err.Kind)
	}
	slog.Debug("submission failed", "function", function, "kind", string(err.Kind), "error", err)
	return err
}

func (p *Pipeline) senderLock(address string) *sync.Mutex {
	p.mu.Lock()
	defer p.mu.Unlock()
	lock, ok := p.locks[address]
	if !ok {
		lock = &sync.Mutex{}
		p.locks[address] = lock
	}
	return lock
}
