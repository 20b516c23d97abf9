package usecase

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"golang.org/x/xerrors"

	"github.com/wallet-hq/nftflow/base/ctx"
	"github.com/wallet-hq/nftflow/base/log"
	"github.com/wallet-hq/nftflow/domain"
	"github.com/wallet-hq/nftflow/domain/order"
	"github.com/wallet-hq/nftflow/domain/wallet"
	"github.com/wallet-hq/nftflow/service/chain"
	"github.com/wallet-hq/nftflow/service/chain/contract"
	"github.com/wallet-hq/nftflow/service/marketplace"
)

type EstimatorCfg struct {
	Marketplace      marketplace.Client
	Chain            chain.Provider
	ExchangeContract domain.Address
	WrappedNative    domain.Address
}

type estimatorImpl struct {
	marketplace      marketplace.Client
	chain            chain.Provider
	exchangeContract domain.Address
	wrappedNative    domain.Address
}

func NewFeeEstimator(cfg *EstimatorCfg) order.FeeEstimator {
	return &estimatorImpl{
		marketplace:      cfg.Marketplace,
		chain:            cfg.Chain,
		exchangeContract: cfg.ExchangeContract,
		wrappedNative:    cfg.WrappedNative.ToLower(),
	}
}

// EstimateFees quotes the gas for the transaction op would broadcast.
// Every quote is computed fresh from the current chain state. Buy and
// acceptOffer resolve their matching order pair first and report a
// distinct error when no counterparty order exists.
func (im *estimatorImpl) EstimateFees(c ctx.Ctx, op order.Operation, signer *wallet.Signer, fc order.FeeContext) (*order.GasData, *order.MatchingOrders, error) {
	var (
		match *order.MatchingOrders
		err   error
	)
	switch op {
	case order.OperationBuy, order.OperationAcceptOffer:
		match, err = im.resolveMatching(c, op, signer, fc)
		if err != nil {
			return nil, nil, err
		}
	}

	params, err := im.callParams(c, op, signer, fc, match)
	if err != nil {
		return nil, nil, xerrors.Errorf("%w: %v", domain.ErrFeeEstimation, err)
	}

	gasLimit, err := im.chain.EstimateGas(c, *params)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"op":  op,
		}).Error("chain.EstimateGas failed")
		return nil, nil, xerrors.Errorf("%w: %v", domain.ErrFeeEstimation, err)
	}
	gasPrice, err := im.chain.SuggestGasPrice(c)
	if err != nil {
		c.WithError(err).Error("chain.SuggestGasPrice failed")
		return nil, nil, xerrors.Errorf("%w: %v", domain.ErrFeeEstimation, err)
	}

	total := new(big.Int).Mul(gasPrice, new(big.Int).SetUint64(gasLimit))
	return &order.GasData{
		GasLimit: gasLimit,
		GasPrice: gasPrice,
		TotalFee: total,
	}, match, nil
}

func (im *estimatorImpl) resolveMatching(c ctx.Ctx, op order.Operation, signer *wallet.Signer, fc order.FeeContext) (*order.MatchingOrders, error) {
	switch op {
	case order.OperationBuy:
		sell, err := im.lookupMakerOrder(c, fc, true)
		if err != nil {
			return nil, err
		}
		buy, err := takerOrderFor(sell, signer.Address())
		if err != nil {
			return nil, xerrors.Errorf("%w: %v", domain.ErrFeeEstimation, err)
		}
		return &order.MatchingOrders{Buy: buy, Sell: sell}, nil
	case order.OperationAcceptOffer:
		buy := fc.Order
		if buy == nil {
			var err error
			buy, err = im.lookupMakerOrder(c, fc, false)
			if err != nil {
				return nil, err
			}
		}
		sell, err := takerOrderFor(buy, signer.Address())
		if err != nil {
			return nil, xerrors.Errorf("%w: %v", domain.ErrFeeEstimation, err)
		}
		return &order.MatchingOrders{Buy: buy, Sell: sell}, nil
	}
	return nil, nil
}

func (im *estimatorImpl) lookupMakerOrder(c ctx.Ctx, fc order.FeeContext, isAsk bool) (*order.Order, error) {
	if fc.Asset == nil {
		return nil, domain.ErrMatchingOrder
	}
	resp, err := im.marketplace.GetNftOrders(c,
		marketplace.WithCollection(fc.Asset.ContractAddress),
		marketplace.WithTokenId(fc.Asset.TokenId),
		marketplace.WithIsAsk(isAsk),
	)
	if err != nil {
		c.WithFields(log.Fields{
			"err":             err,
			"contractAddress": fc.Asset.ContractAddress,
			"tokenId":         fc.Asset.TokenId,
		}).Error("marketplace.GetNftOrders failed")
		return nil, domain.ErrMatchingOrder
	}
	for _, od := range resp.Orders {
		if od.IsSigned() {
			return od, nil
		}
	}
	return nil, domain.ErrMatchingOrder
}

// takerOrderFor mirrors a maker order onto the taker side. The taker
// order is never signed, only hashed for the match call.
func takerOrderFor(maker *order.Order, taker domain.Address) (*order.Order, error) {
	od := *maker
	od.IsAsk = !maker.IsAsk
	od.Signer = taker.ToLower()
	od.V, od.R, od.S = 0, "", ""
	structHash, err := od.Hash()
	if err != nil {
		return nil, err
	}
	od.OrderHash = domain.OrderHash(hexutil.Encode(structHash))
	return &od, nil
}

func (im *estimatorImpl) callParams(c ctx.Ctx, op order.Operation, signer *wallet.Signer, fc order.FeeContext, match *order.MatchingOrders) (*chain.CallParams, error) {
	from := signer.Address()
	switch op {
	case order.OperationBuy:
		data, err := contract.MatchAskWithTakerBid(match.Buy.OrderHash, match.Sell.OrderHash)
		if err != nil {
			return nil, err
		}
		value := big.NewInt(0)
		if match.Sell.Currency.Equals(domain.EmptyAddress) {
			value, err = match.Sell.PriceBigInt()
			if err != nil {
				return nil, err
			}
		}
		return &chain.CallParams{From: from, To: im.exchangeContract, Value: value, Data: data}, nil
	case order.OperationAcceptOffer:
		data, err := contract.MatchBidWithTakerAsk(match.Buy.OrderHash, match.Sell.OrderHash)
		if err != nil {
			return nil, err
		}
		return &chain.CallParams{From: from, To: im.exchangeContract, Data: data}, nil
	case order.OperationSell:
		if fc.Asset == nil {
			return nil, domain.ErrNoAssetFound
		}
		data, err := contract.Erc721SetApprovalForAll(im.exchangeContract, true)
		if err != nil {
			return nil, err
		}
		return &chain.CallParams{From: from, To: fc.Asset.ContractAddress, Data: data}, nil
	case order.OperationCreateOffer:
		token := fc.PaymentToken.ToLower()
		if token.IsEmpty() {
			token = im.wrappedNative
		}
		amount, ok := new(big.Int).SetString(toWei(fc.Offer), 10)
		if !ok {
			return nil, domain.ErrInvalidNumberFormat
		}
		data, err := contract.Erc20Approve(im.exchangeContract, amount)
		if err != nil {
			return nil, err
		}
		return &chain.CallParams{From: from, To: token, Data: data}, nil
	case order.OperationCancel:
		if fc.Order == nil {
			return nil, domain.ErrMatchingOrder
		}
		nonce, ok := new(big.Int).SetString(fc.Order.Nonce, 10)
		if !ok {
			return nil, domain.ErrInvalidNumberFormat
		}
		data, err := contract.CancelMakerOrders([]*big.Int{nonce})
		if err != nil {
			return nil, err
		}
		return &chain.CallParams{From: from, To: im.exchangeContract, Data: data}, nil
	case order.OperationTransfer:
		if fc.Asset == nil {
			return nil, domain.ErrNoAssetFound
		}
		tokenId, err := fc.Asset.TokenId.ToBigInt()
		if err != nil {
			return nil, err
		}
		data, err := contract.Erc721TransferFrom(from, fc.To, tokenId)
		if err != nil {
			return nil, err
		}
		return &chain.CallParams{From: from, To: fc.Asset.ContractAddress, Data: data}, nil
	}
	return nil, domain.ErrBadParamInput
}
