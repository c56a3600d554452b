// Package chain wraps the Ethereum JSON-RPC client behind the small surface
// the payment verifier needs: transaction lookup, receipt lookup, chain id.
package chain

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"

	"jobcast/domain/model"
)

// IChain is the read-only chain RPC contract used by payment verification.
type IChain interface {
	GetTransaction(ctx context.Context, txHash string) (*model.ChainTransaction, error)
	GetReceipt(ctx context.Context, txHash string) (*model.ChainReceipt, error)
	ChainID(ctx context.Context) (int64, error)
}

// Client implements IChain over an EVM JSON-RPC endpoint.
type Client struct {
	eth *ethclient.Client

	mu      sync.Mutex
	chainID *big.Int
}

func NewClient(ctx context.Context, rpcURL string) (IChain, error) {
	if rpcURL == "" {
		return nil, fmt.Errorf("chain rpc url is required")
	}
	eth, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to dial chain rpc: %w", err)
	}
	return &Client{eth: eth}, nil
}

func (c *Client) GetTransaction(ctx context.Context, txHash string) (*model.ChainTransaction, error) {
	tx, pending, err := c.eth.TransactionByHash(ctx, common.HexToHash(txHash))
	if errors.Is(err, ethereum.NotFound) {
		return nil, model.ErrTransactionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("transaction lookup failed: %w", err)
	}
	if pending {
		// A pending transaction has no receipt yet; treat it as not found so
		// the caller retries once it is mined.
		return nil, model.ErrTransactionNotFound
	}

	chainID, err := c.chainIDBig(ctx)
	if err != nil {
		return nil, err
	}
	from, err := types.Sender(types.LatestSignerForChainID(chainID), tx)
	if err != nil {
		return nil, fmt.Errorf("sender recovery failed: %w", err)
	}

	out := &model.ChainTransaction{
		Hash:  tx.Hash().Hex(),
		From:  from.Hex(),
		Value: tx.Value().String(),
	}
	if to := tx.To(); to != nil {
		out.To = to.Hex()
	}
	return out, nil
}

func (c *Client) GetReceipt(ctx context.Context, txHash string) (*model.ChainReceipt, error) {
	receipt, err := c.eth.TransactionReceipt(ctx, common.HexToHash(txHash))
	if errors.Is(err, ethereum.NotFound) {
		return nil, model.ErrTransactionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("receipt lookup failed: %w", err)
	}
	return &model.ChainReceipt{
		Success:     receipt.Status == types.ReceiptStatusSuccessful,
		BlockNumber: receipt.BlockNumber.Uint64(),
	}, nil
}

func (c *Client) ChainID(ctx context.Context) (int64, error) {
	id, err := c.chainIDBig(ctx)
	if err != nil {
		return 0, err
	}
	return id.Int64(), nil
}

func (c *Client) chainIDBig(ctx context.Context) (*big.Int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.chainID != nil {
		return c.chainID, nil
	}
	id, err := c.eth.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("chain id lookup failed: %w", err)
	}
	c.chainID = id
	return id, nil
}
