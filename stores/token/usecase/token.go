package usecase

import (
	"sync"

	"github.com/viney-shih/goroutines"

	"github.com/wallet-hq/nftflow/base/ctx"
	"github.com/wallet-hq/nftflow/base/log"
	"github.com/wallet-hq/nftflow/domain"
	"github.com/wallet-hq/nftflow/domain/asset"
	"github.com/wallet-hq/nftflow/domain/paging"
	"github.com/wallet-hq/nftflow/domain/token"
	"github.com/wallet-hq/nftflow/domain/wallet"
	"github.com/wallet-hq/nftflow/service/marketplace"
)

const excludedCollectionName = "CryptoPunks"

type TokenCfg struct {
	Marketplace marketplace.Client
	Wallet      wallet.AddressProvider
}

type impl struct {
	marketplace marketplace.Client
	wallet      wallet.AddressProvider

	assetsMu     sync.Mutex
	assetsCursor paging.Cursor
	assets       []*asset.Asset

	offersMu     sync.Mutex
	offersCursor paging.Cursor
	offers       []*asset.Offer

	collectionsMu     sync.Mutex
	collectionsCursor paging.Cursor
	collections       []*asset.Collection
}

func New(cfg *TokenCfg) token.Usecase {
	return &impl{
		marketplace: cfg.Marketplace,
		wallet:      cfg.Wallet,
	}
}

// FetchAssets appends the next page of owned assets. Once the view hit
// its bound this is a no-op until a reset.
func (im *impl) FetchAssets(c ctx.Ctx) error {
	im.assetsMu.Lock()
	defer im.assetsMu.Unlock()

	if im.assetsCursor.AtBound {
		return nil
	}
	owner, err := im.wallet.DefaultAddress(c)
	if err != nil {
		c.WithError(err).Error("wallet.DefaultAddress failed")
		return err
	}
	assets, err := im.marketplace.GetNftAssets(c, owner, im.assetsCursor.Page)
	if err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"owner": owner,
			"page":  im.assetsCursor.Page,
		}).Error("marketplace.GetNftAssets failed")
		return err
	}
	im.assets = append(im.assets, assets...)
	im.assetsCursor.Advance(len(assets), marketplace.PageLimit)
	return nil
}

func (im *impl) FetchOffersMade(c ctx.Ctx) error {
	im.offersMu.Lock()
	defer im.offersMu.Unlock()

	if im.offersCursor.AtBound {
		return nil
	}
	owner, err := im.wallet.DefaultAddress(c)
	if err != nil {
		c.WithError(err).Error("wallet.DefaultAddress failed")
		return err
	}
	offers, err := im.marketplace.GetOffersMade(c, owner, im.offersCursor.Page)
	if err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"owner": owner,
			"page":  im.offersCursor.Page,
		}).Error("marketplace.GetOffersMade failed")
		return err
	}
	im.offers = append(im.offers, offers...)
	im.offersCursor.Advance(len(offers), marketplace.PageLimit)
	return nil
}

// FetchCollections appends the next page of collections. The bound is
// advanced on the raw page size, filtering never stalls the cursor.
func (im *impl) FetchCollections(c ctx.Ctx) error {
	im.collectionsMu.Lock()
	defer im.collectionsMu.Unlock()

	if im.collectionsCursor.AtBound {
		return nil
	}
	collections, err := im.marketplace.GetCollections(c, im.collectionsCursor.Page)
	if err != nil {
		c.WithFields(log.Fields{
			"err":  err,
			"page": im.collectionsCursor.Page,
		}).Error("marketplace.GetCollections failed")
		return err
	}
	im.collections = append(im.collections, filterCollections(collections)...)
	im.collectionsCursor.Advance(len(collections), marketplace.PageLimit)
	return nil
}

// filterCollections drops entries the views cannot render, keeping the
// marketplace ordering of the rest.
func filterCollections(collections []*asset.Collection) []*asset.Collection {
	kept := make([]*asset.Collection, 0, len(collections))
	for _, col := range collections {
		if col.Name == excludedCollectionName || col.ImageUrl == "" {
			continue
		}
		kept = append(kept, col)
	}
	return kept
}

func (im *impl) ResetAssets(c ctx.Ctx) {
	im.assetsMu.Lock()
	defer im.assetsMu.Unlock()
	im.assets = nil
	im.assetsCursor.Reset()
}

func (im *impl) ResetOffersMade(c ctx.Ctx) {
	im.offersMu.Lock()
	defer im.offersMu.Unlock()
	im.offers = nil
	im.offersCursor.Reset()
}

func (im *impl) ResetCollections(c ctx.Ctx) {
	im.collectionsMu.Lock()
	defer im.collectionsMu.Unlock()
	im.collections = nil
	im.collectionsCursor.Reset()
}

func (im *impl) RefreshAssets(c ctx.Ctx) error {
	im.ResetAssets(c)
	return im.FetchAssets(c)
}

func (im *impl) RefreshOffersMade(c ctx.Ctx) error {
	im.ResetOffersMade(c)
	return im.FetchOffersMade(c)
}

func (im *impl) refreshCollections(c ctx.Ctx) error {
	im.ResetCollections(c)
	return im.FetchCollections(c)
}

// RefreshAll refreshes the three views concurrently and returns the
// first error encountered.
func (im *impl) RefreshAll(c ctx.Ctx) error {
	refreshes := []func(ctx.Ctx) error{
		im.RefreshAssets,
		im.RefreshOffersMade,
		im.refreshCollections,
	}
	b := goroutines.NewBatch(3, goroutines.WithBatchSize(len(refreshes)))
	defer b.Close()
	for _, refresh := range refreshes {
		f := refresh
		b.Queue(func() (interface{}, error) {
			return nil, f(c)
		})
	}
	b.QueueComplete()

	var anyerr error
	for ret := range b.Results() {
		if ret.Error() != nil && anyerr == nil {
			anyerr = ret.Error()
		}
	}
	return anyerr
}

func (im *impl) Assets() token.AssetsView {
	im.assetsMu.Lock()
	defer im.assetsMu.Unlock()
	items := make([]*asset.Asset, len(im.assets))
	copy(items, im.assets)
	return token.AssetsView{Cursor: im.assetsCursor, Items: items}
}

func (im *impl) OffersMade() token.OffersMadeView {
	im.offersMu.Lock()
	defer im.offersMu.Unlock()
	items := make([]*asset.Offer, len(im.offers))
	copy(items, im.offers)
	return token.OffersMadeView{Cursor: im.offersCursor, Items: items}
}

func (im *impl) Collections() token.CollectionsView {
	im.collectionsMu.Lock()
	defer im.collectionsMu.Unlock()
	items := make([]*asset.Collection, len(im.collections))
	copy(items, im.collections)
	return token.CollectionsView{Cursor: im.collectionsCursor, Items: items}
}

func (im *impl) FetchCollection(c ctx.Ctx, slug string) (*asset.CollectionInfo, error) {
	info, err := im.marketplace.GetCollection(c, slug)
	if err != nil {
		c.WithFields(log.Fields{
			"err":  err,
			"slug": slug,
		}).Error("marketplace.GetCollection failed")
		return nil, err
	}
	return info, nil
}

func (im *impl) FetchOpenSeaAsset(c ctx.Ctx, address domain.Address, tokenId domain.TokenId) (*asset.Asset, error) {
	a, err := im.marketplace.GetOpenSeaAsset(c, address, tokenId)
	if err != nil {
		c.WithFields(log.Fields{
			"err":             err,
			"contractAddress": address,
			"tokenId":         tokenId,
		}).Error("marketplace.GetOpenSeaAsset failed")
		return nil, err
	}
	return a, nil
}

func (im *impl) SearchCollections(c ctx.Ctx, query string) ([]*asset.CollectionInfo, error) {
	infos, err := im.marketplace.SearchCollectionInfo(c, query)
	if err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"query": query,
		}).Error("marketplace.SearchCollectionInfo failed")
		return nil, err
	}
	return infos, nil
}

func (im *impl) GetAssetContract(c ctx.Ctx, address domain.Address) (*asset.AssetContract, error) {
	contract, err := im.marketplace.GetAssetContract(c, address)
	if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"address": address,
		}).Error("marketplace.GetAssetContract failed")
		return nil, err
	}
	return contract, nil
}
