package usecase

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"golang.org/x/xerrors"

	"github.com/wallet-hq/nftflow/base/ctx"
	"github.com/wallet-hq/nftflow/base/log"
	"github.com/wallet-hq/nftflow/domain"
	"github.com/wallet-hq/nftflow/domain/asset"
	"github.com/wallet-hq/nftflow/domain/order"
	"github.com/wallet-hq/nftflow/domain/wallet"
	"github.com/wallet-hq/nftflow/service/chain"
	"github.com/wallet-hq/nftflow/service/chain/contract"
	"github.com/wallet-hq/nftflow/service/marketplace"
)

type SubmitterCfg struct {
	Marketplace      marketplace.Client
	Chain            chain.Provider
	ChainId          domain.ChainId
	ExchangeContract domain.Address
}

type submitterImpl struct {
	marketplace      marketplace.Client
	chain            chain.Provider
	chainId          *big.Int
	exchangeContract domain.Address
}

func NewSubmitter(cfg *SubmitterCfg) order.Submitter {
	return &submitterImpl{
		marketplace:      cfg.Marketplace,
		chain:            cfg.Chain,
		chainId:          big.NewInt(int64(cfg.ChainId)),
		exchangeContract: cfg.ExchangeContract,
	}
}

// SubmitOrder posts a signed maker order to the marketplace. A failed
// post is never retried, the caller decides whether to rebuild.
func (im *submitterImpl) SubmitOrder(c ctx.Ctx, od *order.Order) (*order.Receipt, error) {
	if !od.IsSigned() {
		return nil, domain.ErrOrderNotSigned
	}
	receipt, err := im.marketplace.PostNftOrder(c, od)
	if err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"orderHash": od.OrderHash,
		}).Error("marketplace.PostNftOrder failed")
		return nil, xerrors.Errorf("%w: %v", domain.ErrSubmission, err)
	}
	return receipt, nil
}

// Fulfill broadcasts the match transaction for a resolved order pair.
// The taker side is picked by comparing the signer to the buy maker.
func (im *submitterImpl) Fulfill(c ctx.Ctx, signer *wallet.Signer, match *order.MatchingOrders, gas *order.GasData) (domain.TxHash, error) {
	if match == nil || match.Buy == nil || match.Sell == nil {
		return "", domain.ErrMatchingOrder
	}
	var (
		data  []byte
		err   error
		value = big.NewInt(0)
	)
	if signer.Address().Equals(match.Buy.Signer) {
		data, err = matchCalldata(match.Sell, func() ([]byte, error) {
			return contract.MatchAskWithTakerBid(match.Buy.OrderHash, match.Sell.OrderHash)
		})
		if err == nil && match.Sell.Currency.Equals(domain.EmptyAddress) {
			value, err = match.Sell.PriceBigInt()
		}
	} else {
		data, err = matchCalldata(match.Buy, func() ([]byte, error) {
			return contract.MatchBidWithTakerAsk(match.Buy.OrderHash, match.Sell.OrderHash)
		})
	}
	if err != nil {
		return "", xerrors.Errorf("%w: %v", domain.ErrSubmission, err)
	}
	return im.broadcast(c, signer, im.exchangeContract, value, data, gas)
}

// matchCalldata prefers the calldata the marketplace attached to the
// maker order and falls back to locally packed hashes.
func matchCalldata(maker *order.Order, pack func() ([]byte, error)) ([]byte, error) {
	if maker.Calldata != "" {
		return hexutil.Decode(maker.Calldata)
	}
	return pack()
}

func (im *submitterImpl) CancelOnChain(c ctx.Ctx, signer *wallet.Signer, od *order.Order, gas *order.GasData) (domain.TxHash, error) {
	nonce, ok := new(big.Int).SetString(od.Nonce, 10)
	if !ok {
		return "", domain.ErrInvalidNumberFormat
	}
	data, err := contract.CancelMakerOrders([]*big.Int{nonce})
	if err != nil {
		return "", xerrors.Errorf("%w: %v", domain.ErrSubmission, err)
	}
	return im.broadcast(c, signer, im.exchangeContract, big.NewInt(0), data, gas)
}

func (im *submitterImpl) Transfer(c ctx.Ctx, signer *wallet.Signer, a *asset.Asset, to domain.Address, gas *order.GasData) (domain.TxHash, error) {
	tokenId, err := a.TokenId.ToBigInt()
	if err != nil {
		return "", err
	}
	data, err := contract.Erc721TransferFrom(signer.Address(), to, tokenId)
	if err != nil {
		return "", xerrors.Errorf("%w: %v", domain.ErrSubmission, err)
	}
	return im.broadcast(c, signer, a.ContractAddress, big.NewInt(0), data, gas)
}

func (im *submitterImpl) broadcast(c ctx.Ctx, signer *wallet.Signer, to domain.Address, value *big.Int, data []byte, gas *order.GasData) (domain.TxHash, error) {
	nonce, err := im.chain.PendingNonceAt(c, signer.Address())
	if err != nil {
		c.WithError(err).Error("chain.PendingNonceAt failed")
		return "", xerrors.Errorf("%w: %v", domain.ErrSubmission, err)
	}
	tx := types.NewTransaction(nonce, common.HexToAddress(string(to)), value, gas.GasLimit, gas.GasPrice, data)
	signed, err := signer.SignTx(tx, im.chainId)
	if err != nil {
		c.WithError(err).Error("signer.SignTx failed")
		return "", xerrors.Errorf("%w: %v", domain.ErrSubmission, err)
	}
	if err := im.chain.SendTransaction(c, signed); err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"tx":  signed.Hash().Hex(),
		}).Error("chain.SendTransaction failed")
		return "", xerrors.Errorf("%w: %v", domain.ErrSubmission, err)
	}
	return domain.TxHash(signed.Hash().Hex()), nil
}
