package token

import (
	"github.com/wallet-hq/nftflow/base/ctx"
	"github.com/wallet-hq/nftflow/domain"
	"github.com/wallet-hq/nftflow/domain/asset"
	"github.com/wallet-hq/nftflow/domain/paging"
)

// AssetsView is a snapshot of the assets list view
type AssetsView struct {
	Cursor paging.Cursor  `json:"cursor"`
	Items  []*asset.Asset `json:"items"`
}

// OffersMadeView is a snapshot of the offers-made list view
type OffersMadeView struct {
	Cursor paging.Cursor  `json:"cursor"`
	Items  []*asset.Offer `json:"items"`
}

// CollectionsView is a snapshot of the collections list view
type CollectionsView struct {
	Cursor paging.Cursor       `json:"cursor"`
	Items  []*asset.Collection `json:"items"`
}

// Usecase maintains the three independently paginated list views. Each
// view guards itself with its own cursor bound, there is no cross view
// lock; fetches for different views may run concurrently.
type Usecase interface {
	FetchAssets(c ctx.Ctx) error
	FetchOffersMade(c ctx.Ctx) error
	FetchCollections(c ctx.Ctx) error

	ResetAssets(c ctx.Ctx)
	ResetOffersMade(c ctx.Ctx)
	ResetCollections(c ctx.Ctx)

	// RefreshAssets / RefreshOffersMade clear accumulated items and
	// fetch the first page again
	RefreshAssets(c ctx.Ctx) error
	RefreshOffersMade(c ctx.Ctx) error
	// RefreshAll refreshes all three views concurrently
	RefreshAll(c ctx.Ctx) error

	Assets() AssetsView
	OffersMade() OffersMadeView
	Collections() CollectionsView

	FetchCollection(c ctx.Ctx, slug string) (*asset.CollectionInfo, error)
	FetchOpenSeaAsset(c ctx.Ctx, address domain.Address, tokenId domain.TokenId) (*asset.Asset, error)
	SearchCollections(c ctx.Ctx, query string) ([]*asset.CollectionInfo, error)
	GetAssetContract(c ctx.Ctx, address domain.Address) (*asset.AssetContract, error)
}
