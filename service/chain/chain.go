package chain

import (
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"

	bCtx "github.com/wallet-hq/nftflow/base/ctx"
	"github.com/wallet-hq/nftflow/base/log"
	"github.com/wallet-hq/nftflow/domain"
)

// CallParams is the chain call shape used for gas estimation
type CallParams struct {
	From  domain.Address
	To    domain.Address
	Value *big.Int
	Data  []byte
}

// Provider wraps the JSON-RPC primitives the order flow needs
type Provider interface {
	ChainId(c bCtx.Ctx) (*big.Int, error)
	SuggestGasPrice(c bCtx.Ctx) (*big.Int, error)
	EstimateGas(c bCtx.Ctx, p CallParams) (uint64, error)
	PendingNonceAt(c bCtx.Ctx, address domain.Address) (uint64, error)
	SendTransaction(c bCtx.Ctx, tx *types.Transaction) error
}

type ClientCfg struct {
	RpcUrl string
}

func NewClient(c bCtx.Ctx, cfg *ClientCfg) (Provider, error) {
	eth, err := ethclient.Dial(cfg.RpcUrl)
	if err != nil {
		c.WithFields(log.Fields{
			"rpcUrl": cfg.RpcUrl,
			"err":    err,
		}).Error("ethclient.Dial failed")
		return nil, err
	}
	return &client{eth: eth}, nil
}

type client struct {
	eth *ethclient.Client
}

func (cl *client) ChainId(c bCtx.Ctx) (*big.Int, error) {
	return cl.eth.ChainID(c)
}

func (cl *client) SuggestGasPrice(c bCtx.Ctx) (*big.Int, error) {
	return cl.eth.SuggestGasPrice(c)
}

func (cl *client) EstimateGas(c bCtx.Ctx, p CallParams) (uint64, error) {
	to := common.HexToAddress(string(p.To))
	msg := ethereum.CallMsg{
		From:  common.HexToAddress(string(p.From)),
		To:    &to,
		Value: p.Value,
		Data:  p.Data,
	}
	return cl.eth.EstimateGas(c, msg)
}

func (cl *client) PendingNonceAt(c bCtx.Ctx, address domain.Address) (uint64, error) {
	return cl.eth.PendingNonceAt(c, common.HexToAddress(string(address)))
}

func (cl *client) SendTransaction(c bCtx.Ctx, tx *types.Transaction) error {
	return cl.eth.SendTransaction(c, tx)
}
