package usecase

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wallet-hq/nftflow/base/ctx"
	"github.com/wallet-hq/nftflow/base/log"
	"github.com/wallet-hq/nftflow/domain"
	"github.com/wallet-hq/nftflow/domain/asset"
	"github.com/wallet-hq/nftflow/domain/order"
	"github.com/wallet-hq/nftflow/domain/wallet"
)

const (
	defaultOfferTtl = 7 * 24 * time.Hour
	// a listing scheduled in the past is pushed forward this much
	listingTimeSlack = 10 * time.Minute
)

type BuilderCfg struct {
	ChainId          domain.ChainId
	ExchangeContract domain.Address
	// WrappedNative is the ERC-20 used to denominate buy side orders
	WrappedNative domain.Address
	// OfferTtl defaults to 7 days
	OfferTtl time.Duration
	// Now is replaceable in tests
	Now func() time.Time
}

type builderImpl struct {
	chainId          domain.ChainId
	exchangeContract domain.Address
	wrappedNative    domain.Address
	offerTtl         time.Duration
	now              func() time.Time
}

func NewBuilder(cfg *BuilderCfg) order.Builder {
	ttl := cfg.OfferTtl
	if ttl == 0 {
		ttl = defaultOfferTtl
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &builderImpl{
		chainId:          cfg.ChainId,
		exchangeContract: cfg.ExchangeContract,
		wrappedNative:    cfg.WrappedNative.ToLower(),
		offerTtl:         ttl,
		now:              now,
	}
}

func (im *builderImpl) BuildSellOrder(c ctx.Ctx, a *asset.Asset, signer *wallet.Signer, p order.SellParams) (*order.Order, error) {
	now := im.now()
	startTime := "0"
	if p.ListingTime != nil {
		start := *p.ListingTime
		if start.Before(now) {
			start = now.Add(listingTimeSlack)
		}
		startTime = strconv.FormatInt(start.Unix(), 10)
	}
	end := now.Add(im.offerTtl)
	if p.ExpirationTime != nil {
		end = *p.ExpirationTime
	}
	currency := p.PaymentToken.ToLower()
	if currency.IsEmpty() {
		currency = domain.EmptyAddress
	}
	od := &order.Order{
		ChainId:           im.chainId,
		IsAsk:             true,
		Signer:            signer.Address(),
		Collection:        a.ContractAddress.ToLower(),
		TokenId:           a.TokenId,
		Amount:            "1",
		Price:             toWei(p.StartPrice),
		Currency:          currency,
		Nonce:             im.nonce(now),
		StartTime:         startTime,
		EndTime:           strconv.FormatInt(end.Unix(), 10),
		WaitForHighestBid: p.WaitForHighestBid,
	}
	if err := im.sign(c, od, signer); err != nil {
		return nil, err
	}
	return od, nil
}

func (im *builderImpl) BuildBuyOrder(c ctx.Ctx, a *asset.Asset, signer *wallet.Signer, p order.BuyParams) (*order.Order, error) {
	now := im.now()
	end := now.Add(im.offerTtl)
	if p.ExpirationTime != nil {
		end = *p.ExpirationTime
	}
	currency := p.PaymentToken.ToLower()
	if currency.IsEmpty() {
		currency = im.wrappedNative
	}
	od := &order.Order{
		ChainId:    im.chainId,
		IsAsk:      false,
		Signer:     signer.Address(),
		Collection: a.ContractAddress.ToLower(),
		TokenId:    a.TokenId,
		Amount:     "1",
		Price:      toWei(p.Amount),
		Currency:   currency,
		Nonce:      im.nonce(now),
		StartTime:  strconv.FormatInt(now.Unix(), 10),
		EndTime:    strconv.FormatInt(end.Unix(), 10),
	}
	if err := im.sign(c, od, signer); err != nil {
		return nil, err
	}
	return od, nil
}

func (im *builderImpl) sign(c ctx.Ctx, od *order.Order, signer *wallet.Signer) error {
	digest, err := od.Digest(im.exchangeContract)
	if err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"order": od,
		}).Error("order.Digest failed")
		return err
	}
	sig, err := signer.SignHash(digest)
	if err != nil {
		c.WithError(err).Error("signer.SignHash failed")
		return err
	}
	if err := od.AttachSignature(sig); err != nil {
		c.WithError(err).Error("order.AttachSignature failed")
		return err
	}
	od.LowerCase()
	return nil
}

func (im *builderImpl) nonce(now time.Time) string {
	return strconv.FormatInt(now.UnixNano(), 10)
}

// toWei converts an ether denominated amount to the wei string carried on
// the wire. decimal arithmetic keeps float inputs exact to 18 places.
func toWei(amount float64) string {
	return decimal.NewFromFloat(amount).Shift(18).Truncate(0).String()
}
