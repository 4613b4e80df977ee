package wallet

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"

	"orgnet/internal/domain"
)

// Key holds the signing key for the service account.
type Key struct {
	priv    *ecdsa.PrivateKey
	address common.Address
}

// LoadKey parses a hex-encoded secp256k1 private key, with or without the 0x
// prefix.
func LoadKey(hexkey string) (*Key, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(hexkey), "0x")
	if trimmed == "" {
		return nil, errors.New("private key is required")
	}
	priv, err := crypto.HexToECDSA(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}
	return &Key{
		priv:    priv,
		address: crypto.PubkeyToAddress(priv.PublicKey),
	}, nil
}

// Address returns the account address in checksummed hex form.
func (k *Key) Address() string {
	return k.address.Hex()
}

// SignPlan signs a transaction plan for its chain id. Pure and local; no
// network access.
func (k *Key) SignPlan(plan domain.TransactionPlan) (domain.SignedTransaction, error) {
	if plan.ChainID == 0 {
		return domain.SignedTransaction{}, errors.New("chain id is required")
	}
	if plan.GasPrice == nil {
		return domain.SignedTransaction{}, errors.New("gas price is required")
	}

	to := common.HexToAddress(plan.Request.To)
	value := plan.Request.Value
	if value == nil {
		value = new(big.Int)
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    plan.Nonce,
		GasPrice: plan.GasPrice,
		Gas:      plan.GasLimit,
		To:       &to,
		Value:    value,
		Data:     plan.Request.Data,
	})

	signer := types.LatestSignerForChainID(new(big.Int).SetUint64(plan.ChainID))
	signed, err := types.SignTx(tx, signer, k.priv)
	if err != nil {
		return domain.SignedTransaction{}, fmt.Errorf("sign transaction: %w", err)
	}
	raw, err := signed.MarshalBinary()
	if err != nil {
		return domain.SignedTransaction{}, fmt.Errorf("encode transaction: %w", err)
	}
	return domain.SignedTransaction{Raw: raw, Hash: signed.Hash().Hex()}, nil
}
