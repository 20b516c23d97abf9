package marketplace

import (
	"errors"
	"net/http"
	"time"

	bCtx "github.com/wallet-hq/nftflow/base/ctx"
	"github.com/wallet-hq/nftflow/base/metrics"
	"github.com/wallet-hq/nftflow/domain"
	"github.com/wallet-hq/nftflow/domain/asset"
	"github.com/wallet-hq/nftflow/domain/order"
)

// PageLimit is the fixed page size of every paginated endpoint
const PageLimit = 10

var (
	ErrStatusCodeNotOk = errors.New("http.status != 200")
)

type GetOrdersOptions struct {
	Collection   *domain.Address
	TokenId      *domain.TokenId
	PaymentToken *domain.Address
	Maker        *domain.Address
	IsAsk        *bool
	Page         *int32
}

type GetOrdersOptionsFunc func(*GetOrdersOptions) error

func ParseGetOrdersOptions(opts ...GetOrdersOptionsFunc) (GetOrdersOptions, error) {
	opt := GetOrdersOptions{}
	for _, f := range opts {
		if err := f(&opt); err != nil {
			return opt, err
		}
	}
	return opt, nil
}

func WithCollection(address domain.Address) GetOrdersOptionsFunc {
	return func(opt *GetOrdersOptions) error {
		opt.Collection = &address
		return nil
	}
}

func WithTokenId(tokenId domain.TokenId) GetOrdersOptionsFunc {
	return func(opt *GetOrdersOptions) error {
		opt.TokenId = &tokenId
		return nil
	}
}

func WithPaymentToken(address domain.Address) GetOrdersOptionsFunc {
	return func(opt *GetOrdersOptions) error {
		opt.PaymentToken = &address
		return nil
	}
}

func WithMaker(address domain.Address) GetOrdersOptionsFunc {
	return func(opt *GetOrdersOptions) error {
		opt.Maker = &address
		return nil
	}
}

func WithIsAsk(isAsk bool) GetOrdersOptionsFunc {
	return func(opt *GetOrdersOptions) error {
		opt.IsAsk = &isAsk
		return nil
	}
}

func WithPage(page int32) GetOrdersOptionsFunc {
	return func(opt *GetOrdersOptions) error {
		opt.Page = &page
		return nil
	}
}

type OrdersResp struct {
	Orders []*order.Order `json:"orders"`
}

type OffersResp struct {
	AssetEvents []*asset.Offer `json:"asset_events"`
}

type GatewayStatus struct {
	Online bool `json:"online"`
}

// Client is the marketplace gateway API consumed by the order flow and
// the list views.
type Client interface {
	GetNftAssets(c bCtx.Ctx, owner domain.Address, page int32) ([]*asset.Asset, error)
	GetOffersMade(c bCtx.Ctx, owner domain.Address, page int32) ([]*asset.Offer, error)
	GetCollections(c bCtx.Ctx, page int32) ([]*asset.Collection, error)
	GetCollection(c bCtx.Ctx, slug string) (*asset.CollectionInfo, error)
	GetNftOrders(c bCtx.Ctx, opts ...GetOrdersOptionsFunc) (*OrdersResp, error)
	GetOpenSeaAsset(c bCtx.Ctx, address domain.Address, tokenId domain.TokenId) (*asset.Asset, error)
	GetOpenSeaStatus(c bCtx.Ctx) (*GatewayStatus, error)
	PostNftOrder(c bCtx.Ctx, od *order.Order) (*order.Receipt, error)
	SearchCollectionInfo(c bCtx.Ctx, query string) ([]*asset.CollectionInfo, error)
	GetAssetContract(c bCtx.Ctx, address domain.Address) (*asset.AssetContract, error)
}

type ClientCfg struct {
	HttpClient http.Client
	BaseUrl    string
	Timeout    time.Duration
	Apikey     string
	Metrics    metrics.Service
}
