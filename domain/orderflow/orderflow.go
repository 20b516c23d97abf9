package orderflow

import (
	"time"

	"github.com/wallet-hq/nftflow/base/ctx"
	"github.com/wallet-hq/nftflow/domain"
	"github.com/wallet-hq/nftflow/domain/asset"
	"github.com/wallet-hq/nftflow/domain/order"
)

type Step string

const (
	StepClosed         Step = "CLOSED"
	StepAssetSelection Step = "ASSET_SELECTION"
	StepOrderDisplay   Step = "ORDER_DISPLAY"
	StepCreatingOrder  Step = "CREATING_ORDER"
	StepAcceptingOffer Step = "ACCEPTING_OFFER"
	StepCancelOffer    Step = "CANCEL_OFFER"
	StepCreateOffer    Step = "CREATE_OFFER"
	StepTransfer       Step = "TRANSFER"
)

// State is the transient session state owned exclusively by the order
// flow controller, reset on flow close. IsSubmitting is advisory, see
// the usecase for the concurrency contract.
type State struct {
	Step          Step                  `json:"step"`
	IsSubmitting  bool                  `json:"isSubmitting"`
	OfferToCancel *order.Order          `json:"offerToCancel"`
	Asset         *asset.Asset          `json:"asset"`
	Matching      *order.MatchingOrders `json:"matchingOrders"`
}

// OpenPayload resolves the target asset from either a direct asset
// reference or a (contract address, token id) pair. An Offer belonging
// to the current user routes the flow straight to offer cancellation.
type OpenPayload struct {
	Asset           *asset.Asset
	ContractAddress domain.Address
	TokenId         domain.TokenId
	Offer           *asset.Offer
}

type FetchFeesPayload struct {
	Operation         order.Operation
	Order             *order.Order
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

type AcceptOfferPayload struct {
	Buy     *order.Order
	Sell    *order.Order
	GasData *order.GasData
}

type CreateOfferPayload struct {
	Asset        *asset.Asset
	Amount       float64
	PaymentToken domain.Address
}

type CreateOrderPayload struct {
	Buy     *order.Order
	Sell    *order.Order
	GasData *order.GasData
}

type CreateSellOrderPayload struct {
	Asset             *asset.Asset
	ListingTime       *time.Time
	ExpirationTime    *time.Time
	StartPrice        float64
	EndPrice          float64
	WaitForHighestBid bool
	PaymentToken      domain.Address
	GasData           *order.GasData
}

type CreateTransferPayload struct {
	Asset   *asset.Asset
	To      domain.Address
	GasData *order.GasData
}

type CancelListingPayload struct {
	Order   *order.Order
	GasData *order.GasData
}

type CancelOfferPayload struct {
	// nil when the heuristic offer match found nothing, handled explicitly
	Order   *order.Order
	GasData *order.GasData
}

// UseCase is the order flow controller. At most one submission is in
// flight at a time; overlapping terminal actions before IsSubmitting
// resets is a caller error.
type UseCase interface {
	Open(c ctx.Ctx, p OpenPayload) error
	Close(c ctx.Ctx)
	State() State

	FetchFees(c ctx.Ctx, p FetchFeesPayload) (*order.GasData, error)

	AcceptOffer(c ctx.Ctx, p AcceptOfferPayload) error
	CreateOffer(c ctx.Ctx, p CreateOfferPayload) error
	CreateOrder(c ctx.Ctx, p CreateOrderPayload) error
	CreateSellOrder(c ctx.Ctx, p CreateSellOrderPayload) error
	CreateTransfer(c ctx.Ctx, p CreateTransferPayload) error
	CancelListing(c ctx.Ctx, p CancelListingPayload) error
	CancelOffer(c ctx.Ctx, p CancelOfferPayload) error
}
