package order

import (
	"math/big"
	"strings"
	"time"

	"github.com/wallet-hq/nftflow/base/ctx"
	"github.com/wallet-hq/nftflow/domain"
	"github.com/wallet-hq/nftflow/domain/asset"
	"github.com/wallet-hq/nftflow/domain/wallet"
)

// Operation enumerates the gas calculation / flow operations
type Operation string

const (
	OperationBuy         Operation = "buy"
	OperationSell        Operation = "sell"
	OperationCreateOffer Operation = "createOffer"
	OperationAcceptOffer Operation = "acceptOffer"
	OperationCancel      Operation = "cancel"
	OperationTransfer    Operation = "transfer"
)

// Order is a single item maker order. Lifecycle: constructed unsigned,
// signed by the wallet signer, submitted, then externally finalized or
// cancelled.
type Order struct {
	ChainId           domain.ChainId   `json:"chainId"`
	OrderHash         domain.OrderHash `json:"orderHash"`
	IsAsk             bool             `json:"isAsk"`
	Signer            domain.Address   `json:"signer"`
	Collection        domain.Address   `json:"collection"`
	TokenId           domain.TokenId   `json:"tokenId"`
	Amount            string           `json:"amount"`
	// Price in wei
	Price    string         `json:"price"`
	Currency domain.Address `json:"currency"`
	Nonce    string         `json:"nonce"`
	// unix timestamps in seconds, "0" means immediate / unset
	StartTime         string `json:"startTime"`
	EndTime           string `json:"endTime"`
	WaitForHighestBid bool   `json:"waitForHighestBid"`
	// Calldata as submitted to the exchange, embeds the maker address
	Calldata string `json:"calldata"`
	V        int    `json:"v"`
	R        string `json:"r"`
	S        string `json:"s"`
}

func (o *Order) LowerCase() {
	o.OrderHash = o.OrderHash.ToLower()
	o.Signer = o.Signer.ToLower()
	o.Collection = o.Collection.ToLower()
	o.Currency = o.Currency.ToLower()
	o.Calldata = strings.ToLower(o.Calldata)
}

func (o *Order) IsSigned() bool {
	return o.V != 0
}

func (o *Order) PriceBigInt() (*big.Int, error) {
	p, ok := new(big.Int).SetString(o.Price, 10)
	if !ok {
		return nil, domain.ErrInvalidNumberFormat
	}
	return p, nil
}

// MatchingOrders is the buy/sell pair required to compute fees and
// fulfill a trade.
type MatchingOrders struct {
	Buy  *Order `json:"buy"`
	Sell *Order `json:"sell"`
}

// GasData is a fee quote tied to one order construction attempt. It is
// recomputed per attempt and never cached across attempts.
type GasData struct {
	GasLimit uint64   `json:"gasFees"`
	GasPrice *big.Int `json:"gasPrice"`
	TotalFee *big.Int `json:"totalFees"`
}

// Receipt acknowledges a marketplace submission
type Receipt struct {
	OrderHash domain.OrderHash `json:"order_hash"`
	Status    string           `json:"status"`
}

// SellParams carries pricing and timing for a sell order. Prices are in
// ether units of the payment token, converted to wei by the builder.
type SellParams struct {
	// nil leaves the listing immediate; a past value is replaced by the
	// builder with now + 10 minutes
	ListingTime *time.Time
	// nil defaults to now + the configured offer TTL
	ExpirationTime    *time.Time
	StartPrice        float64
	EndPrice          float64
	WaitForHighestBid bool
	// empty means the chain native token
	PaymentToken domain.Address
}

// BuyParams carries pricing and timing for a buy / offer order
type BuyParams struct {
	// nil defaults to now + the configured offer TTL
	ExpirationTime *time.Time
	Amount         float64
	PaymentToken   domain.Address
}

// FeeContext supplies the operation specific inputs for fee estimation
type FeeContext struct {
	Order             *Order
	Asset             *asset.Asset
	To                domain.Address
	Offer             float64
	PaymentToken      domain.Address
	ListingTime       *time.Time
	ExpirationTime    *time.Time
	StartPrice        float64
	EndPrice          float64
	WaitForHighestBid bool
}

// Builder constructs signed maker orders. It never contacts the network
// beyond what signing requires.
type Builder interface {
	BuildSellOrder(c ctx.Ctx, a *asset.Asset, signer *wallet.Signer, p SellParams) (*Order, error)
	BuildBuyOrder(c ctx.Ctx, a *asset.Asset, signer *wallet.Signer, p BuyParams) (*Order, error)
}

// FeeEstimator computes gas data for an intended operation. Buy and
// AcceptOffer also resolve the matching order pair, returned alongside
// the quote.
type FeeEstimator interface {
	EstimateFees(c ctx.Ctx, op Operation, signer *wallet.Signer, fc FeeContext) (*GasData, *MatchingOrders, error)
}

// Submitter posts orders to the marketplace and broadcasts fulfillment,
// cancellation and transfer transactions.
type Submitter interface {
	SubmitOrder(c ctx.Ctx, od *Order) (*Receipt, error)
	Fulfill(c ctx.Ctx, signer *wallet.Signer, match *MatchingOrders, gas *GasData) (domain.TxHash, error)
	CancelOnChain(c ctx.Ctx, signer *wallet.Signer, od *Order, gas *GasData) (domain.TxHash, error)
	Transfer(c ctx.Ctx, signer *wallet.Signer, a *asset.Asset, to domain.Address, gas *GasData) (domain.TxHash, error)
}
