package usecase

import (
	"strings"
	"sync"

	"github.com/wallet-hq/nftflow/base/ctx"
	"github.com/wallet-hq/nftflow/base/log"
	"github.com/wallet-hq/nftflow/domain"
	"github.com/wallet-hq/nftflow/domain/asset"
	"github.com/wallet-hq/nftflow/domain/notification"
	"github.com/wallet-hq/nftflow/domain/order"
	"github.com/wallet-hq/nftflow/domain/orderflow"
	"github.com/wallet-hq/nftflow/domain/token"
	"github.com/wallet-hq/nftflow/domain/wallet"
	"github.com/wallet-hq/nftflow/service/marketplace"
)

const (
	msgAcceptOfferSuccess   = "Successfully accepted offer!"
	msgCreateOfferSuccess   = "Successfully created offer!"
	msgCreateOrderSuccess   = "Successfully created order! It may take a few minutes to appear in your collection."
	msgSellOrderSuccess     = "Sell order created!"
	msgTransferSuccess      = "Transfer successful!"
	msgCancelListingSuccess = "Successfully cancelled listing!"
	msgCancelOfferSuccess   = "Successfully cancelled offer!"

	msgAcceptOfferNoFunds   = "You do not have enough funds to accept this offer."
	msgCreateOfferNoFunds   = "You do not have enough funds to create this offer."
	msgCreateOrderNoFunds   = "You do not have enough funds to create this order."
	msgSellOrderNoFunds     = "You do not have enough funds to sell this asset."
	msgTransferNoFunds      = "You do not have enough funds to transfer this asset."
	msgCancelListingNoFunds = "You do not have enough funds to cancel this listing."
	msgCancelOfferNoFunds   = "You do not have enough funds to cancel this offer."

	msgNoOfferFound     = "No offer found. It may have expired already!"
	msgOfferNeedsErc20  = "Offers must use an ERC-20 token."
	routeActivityView   = "/nfts/activity"
	routeCollectionView = "/nfts/collection"
)

type OrderFlowCfg struct {
	Marketplace marketplace.Client
	Wallet      wallet.Provider
	Address     wallet.AddressProvider
	Builder     order.Builder
	Estimator   order.FeeEstimator
	Submitter   order.Submitter
	Token       token.Usecase
	Notifier    notification.Notifier
	Modals      notification.Modals
	Router      notification.Router
}

type impl struct {
	marketplace marketplace.Client
	wallet      wallet.Provider
	address     wallet.AddressProvider
	builder     order.Builder
	estimator   order.FeeEstimator
	submitter   order.Submitter
	token       token.Usecase
	notifier    notification.Notifier
	modals      notification.Modals
	router      notification.Router

	mu    sync.Mutex
	state orderflow.State
}

func New(cfg *OrderFlowCfg) orderflow.UseCase {
	return &impl{
		marketplace: cfg.Marketplace,
		wallet:      cfg.Wallet,
		address:     cfg.Address,
		builder:     cfg.Builder,
		estimator:   cfg.Estimator,
		submitter:   cfg.Submitter,
		token:       cfg.Token,
		notifier:    cfg.Notifier,
		modals:      cfg.Modals,
		router:      cfg.Router,
		state:       orderflow.State{Step: orderflow.StepClosed},
	}
}

// Open shows the order modal and resolves the target asset. An offer
// made by the current user routes the flow straight to cancellation,
// with the active order resolved by the calldata heuristic.
func (im *impl) Open(c ctx.Ctx, p orderflow.OpenPayload) error {
	im.modals.Show(c, notification.ModalNameNftOrder)
	im.setStep(orderflow.StepAssetSelection)

	address := p.ContractAddress
	tokenId := p.TokenId
	if p.Asset != nil {
		address = p.Asset.ContractAddress
		tokenId = p.Asset.TokenId
	}

	if p.Offer != nil {
		owner, err := im.address.DefaultAddress(c)
		if err != nil {
			c.WithError(err).Error("wallet.DefaultAddress failed")
			return err
		}
		if p.Offer.FromAddress.Equals(owner) {
			offer := im.resolveOwnOffer(c, p.Offer, owner)
			im.mu.Lock()
			im.state.OfferToCancel = offer
			im.state.Step = orderflow.StepCancelOffer
			im.mu.Unlock()
		}
		address = p.Offer.Asset.ContractAddress
		tokenId = p.Offer.Asset.TokenId
	}

	if address.IsEmpty() || tokenId == "" {
		return domain.ErrNoAssetFound
	}

	a, err := im.marketplace.GetOpenSeaAsset(c, address, tokenId)
	if err != nil {
		c.WithFields(log.Fields{
			"err":             err,
			"contractAddress": address,
			"tokenId":         tokenId,
		}).Error("marketplace.GetOpenSeaAsset failed")
		return err
	}
	im.mu.Lock()
	im.state.Asset = a
	if im.state.Step == orderflow.StepAssetSelection {
		im.state.Step = orderflow.StepOrderDisplay
	}
	im.mu.Unlock()
	return nil
}

// resolveOwnOffer finds the user's active maker order behind an offer
// event. Orders carry no correlation id, the exchange calldata embeds
// the maker address so a substring scan is the only join available.
// Returns nil when nothing matches; CancelOffer reports that case.
func (im *impl) resolveOwnOffer(c ctx.Ctx, offer *asset.Offer, owner domain.Address) *order.Order {
	resp, err := im.marketplace.GetNftOrders(c,
		marketplace.WithCollection(offer.Asset.ContractAddress),
		marketplace.WithTokenId(offer.Asset.TokenId),
		marketplace.WithPaymentToken(offer.PaymentToken),
		marketplace.WithMaker(owner),
		marketplace.WithPage(0),
	)
	if err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"owner": owner,
		}).Error("marketplace.GetNftOrders failed")
		return nil
	}
	needle := owner.StripPrefix()
	for _, od := range resp.Orders {
		if strings.Contains(strings.ToLower(od.Calldata), needle) {
			return od
		}
	}
	return nil
}

func (im *impl) Close(c ctx.Ctx) {
	im.modals.CloseAll(c)
	im.mu.Lock()
	im.state = orderflow.State{Step: orderflow.StepClosed}
	im.mu.Unlock()
}

func (im *impl) State() orderflow.State {
	im.mu.Lock()
	defer im.mu.Unlock()
	return im.state
}

// FetchFees quotes gas for the pending operation and stashes the
// resolved matching pair for the terminal action.
func (im *impl) FetchFees(c ctx.Ctx, p orderflow.FetchFeesPayload) (*order.GasData, error) {
	signer, err := im.wallet.GetSigner(c)
	if err != nil {
		return nil, err
	}
	gas, match, err := im.estimator.EstimateFees(c, p.Operation, signer, order.FeeContext{
		Order:             p.Order,
		Asset:             p.Asset,
		To:                p.To,
		Offer:             p.Offer,
		PaymentToken:      p.PaymentToken,
		ListingTime:       p.ListingTime,
		ExpirationTime:    p.ExpirationTime,
		StartPrice:        p.StartPrice,
		EndPrice:          p.EndPrice,
		WaitForHighestBid: p.WaitForHighestBid,
	})
	if err != nil {
		return nil, err
	}
	im.mu.Lock()
	im.state.Matching = match
	im.mu.Unlock()
	return gas, nil
}

func (im *impl) AcceptOffer(c ctx.Ctx, p orderflow.AcceptOfferPayload) error {
	defer im.setSubmitting(false)
	im.setSubmitting(true)
	im.setStep(orderflow.StepAcceptingOffer)

	signer, err := im.wallet.GetSigner(c)
	if err != nil {
		return im.fail(c, err, msgAcceptOfferNoFunds)
	}
	match := &order.MatchingOrders{Buy: p.Buy, Sell: p.Sell}
	if _, err := im.submitter.Fulfill(c, signer, match, p.GasData); err != nil {
		return im.fail(c, err, msgAcceptOfferNoFunds)
	}

	im.modals.CloseAll(c)
	im.refreshAssets(c)
	im.notifier.DisplaySuccess(c, msgAcceptOfferSuccess)
	return nil
}

func (im *impl) CreateOffer(c ctx.Ctx, p orderflow.CreateOfferPayload) error {
	defer im.setSubmitting(false)
	im.setSubmitting(true)
	im.setStep(orderflow.StepCreateOffer)

	if p.PaymentToken.IsEmpty() || p.PaymentToken.Equals(domain.EmptyAddress) {
		err := domain.ErrBadParamInput
		im.notifier.DisplayError(c, msgOfferNeedsErc20)
		c.WithError(err).Error("offer rejected, no erc20 payment token")
		return err
	}

	signer, err := im.wallet.GetSigner(c)
	if err != nil {
		return im.fail(c, err, msgCreateOfferNoFunds)
	}
	buy, err := im.builder.BuildBuyOrder(c, p.Asset, signer, order.BuyParams{
		Amount:       p.Amount,
		PaymentToken: p.PaymentToken,
	})
	if err != nil {
		return im.fail(c, err, msgCreateOfferNoFunds)
	}
	// the token approval estimate surfaces missing funds before the
	// order hits the marketplace
	if _, _, err := im.estimator.EstimateFees(c, order.OperationCreateOffer, signer, order.FeeContext{
		Asset:        p.Asset,
		Offer:        p.Amount,
		PaymentToken: p.PaymentToken,
	}); err != nil {
		return im.fail(c, err, msgCreateOfferNoFunds)
	}
	if _, err := im.submitter.SubmitOrder(c, buy); err != nil {
		return im.fail(c, err, msgCreateOfferNoFunds)
	}

	im.modals.CloseAll(c)
	im.refreshOffersMade(c)
	im.router.Push(c, routeActivityView)
	im.notifier.DisplaySuccess(c, msgCreateOfferSuccess)
	return nil
}

func (im *impl) CreateOrder(c ctx.Ctx, p orderflow.CreateOrderPayload) error {
	defer im.setSubmitting(false)
	im.setSubmitting(true)
	im.setStep(orderflow.StepCreatingOrder)

	signer, err := im.wallet.GetSigner(c)
	if err != nil {
		return im.fail(c, err, msgCreateOrderNoFunds)
	}
	match := &order.MatchingOrders{Buy: p.Buy, Sell: p.Sell}
	if _, err := im.submitter.Fulfill(c, signer, match, p.GasData); err != nil {
		return im.fail(c, err, msgCreateOrderNoFunds)
	}

	im.modals.CloseAll(c)
	im.router.Push(c, routeCollectionView)
	im.notifier.DisplaySuccess(c, msgCreateOrderSuccess)
	return nil
}

func (im *impl) CreateSellOrder(c ctx.Ctx, p orderflow.CreateSellOrderPayload) error {
	defer im.setSubmitting(false)
	im.setSubmitting(true)
	im.setStep(orderflow.StepCreatingOrder)

	signer, err := im.wallet.GetSigner(c)
	if err != nil {
		return im.fail(c, err, msgSellOrderNoFunds)
	}
	sell, err := im.builder.BuildSellOrder(c, p.Asset, signer, order.SellParams{
		ListingTime:       p.ListingTime,
		ExpirationTime:    p.ExpirationTime,
		StartPrice:        p.StartPrice,
		EndPrice:          p.EndPrice,
		WaitForHighestBid: p.WaitForHighestBid,
		PaymentToken:      p.PaymentToken,
	})
	if err != nil {
		return im.fail(c, err, msgSellOrderNoFunds)
	}
	if _, err := im.submitter.SubmitOrder(c, sell); err != nil {
		return im.fail(c, err, msgSellOrderNoFunds)
	}

	im.refreshAssets(c)
	im.modals.CloseAll(c)
	im.notifier.DisplaySuccess(c, msgSellOrderSuccess)
	return nil
}

func (im *impl) CreateTransfer(c ctx.Ctx, p orderflow.CreateTransferPayload) error {
	defer im.setSubmitting(false)
	im.setSubmitting(true)
	im.setStep(orderflow.StepTransfer)

	signer, err := im.wallet.GetSigner(c)
	if err != nil {
		return im.fail(c, err, msgTransferNoFunds)
	}
	if _, err := im.submitter.Transfer(c, signer, p.Asset, p.To, p.GasData); err != nil {
		return im.fail(c, err, msgTransferNoFunds)
	}

	im.refreshAssets(c)
	im.modals.CloseAll(c)
	im.notifier.DisplaySuccess(c, msgTransferSuccess)
	return nil
}

func (im *impl) CancelListing(c ctx.Ctx, p orderflow.CancelListingPayload) error {
	defer im.setSubmitting(false)
	im.setSubmitting(true)

	signer, err := im.wallet.GetSigner(c)
	if err != nil {
		return im.fail(c, err, msgCancelListingNoFunds)
	}
	if _, err := im.submitter.CancelOnChain(c, signer, p.Order, p.GasData); err != nil {
		return im.fail(c, err, msgCancelListingNoFunds)
	}

	im.refreshAssets(c)
	im.modals.CloseAll(c)
	im.notifier.DisplaySuccess(c, msgCancelListingSuccess)
	return nil
}

func (im *impl) CancelOffer(c ctx.Ctx, p orderflow.CancelOfferPayload) error {
	defer im.setSubmitting(false)
	im.setSubmitting(true)
	im.setStep(orderflow.StepCancelOffer)

	if p.Order == nil {
		err := domain.ErrNotFound
		im.notifier.DisplayError(c, msgNoOfferFound)
		c.WithError(err).Error("cancel offer without resolved order")
		return err
	}
	signer, err := im.wallet.GetSigner(c)
	if err != nil {
		return im.fail(c, err, msgCancelOfferNoFunds)
	}
	if _, err := im.submitter.CancelOnChain(c, signer, p.Order, p.GasData); err != nil {
		return im.fail(c, err, msgCancelOfferNoFunds)
	}

	im.refreshOffersMade(c)
	im.modals.CloseAll(c)
	im.notifier.DisplaySuccess(c, msgCancelOfferSuccess)
	return nil
}

// fail logs the raw error and surfaces the user facing message, with
// the insufficient funds substitution applied.
func (im *impl) fail(c ctx.Ctx, err error, noFundsMsg string) error {
	c.WithError(err).Error("order flow action failed")
	msg := err.Error()
	if domain.IsInsufficientFunds(err) {
		msg = noFundsMsg
	}
	im.notifier.DisplayError(c, msg)
	return err
}

func (im *impl) refreshAssets(c ctx.Ctx) {
	if err := im.token.RefreshAssets(c); err != nil {
		c.WithError(err).Warn("token.RefreshAssets failed")
	}
}

func (im *impl) refreshOffersMade(c ctx.Ctx) {
	if err := im.token.RefreshOffersMade(c); err != nil {
		c.WithError(err).Warn("token.RefreshOffersMade failed")
	}
}

func (im *impl) setSubmitting(v bool) {
	im.mu.Lock()
	im.state.IsSubmitting = v
	im.mu.Unlock()
}

func (im *impl) setStep(s orderflow.Step) {
	im.mu.Lock()
	im.state.Step = s
	im.mu.Unlock()
}
