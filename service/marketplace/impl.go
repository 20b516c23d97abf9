package marketplace

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/coocood/freecache"

	bCtx "github.com/wallet-hq/nftflow/base/ctx"
	"github.com/wallet-hq/nftflow/base/log"
	"github.com/wallet-hq/nftflow/base/metrics"
	"github.com/wallet-hq/nftflow/domain"
	"github.com/wallet-hq/nftflow/domain/asset"
	"github.com/wallet-hq/nftflow/domain/order"
)

const (
	bearerKey = "X-API-KEY"

	// collection metadata barely moves, cache lookups briefly
	collectionCacheSize = 16 * 1024 * 1024
	collectionCacheTtl  = 60 // seconds
)

func NewClient(cfg *ClientCfg) Client {
	return &client{
		client:  cfg.HttpClient,
		baseUrl: cfg.BaseUrl,
		timeout: cfg.Timeout,
		apikey:  cfg.Apikey,
		metrics: cfg.Metrics,
		cache:   freecache.NewCache(collectionCacheSize),
	}
}

type client struct {
	client  http.Client
	baseUrl string
	timeout time.Duration
	apikey  string
	metrics metrics.Service
	cache   *freecache.Cache
}

func (c *client) GetNftAssets(ctx bCtx.Ctx, owner domain.Address, page int32) ([]*asset.Asset, error) {
	base, err := url.Parse(fmt.Sprintf("%s/nft/assets", c.baseUrl))
	if err != nil {
		return nil, err
	}
	params := url.Values{}
	params.Add("owner", owner.ToLowerStr())
	params.Add("page", strconv.FormatInt(int64(page), 10))
	params.Add("limit", strconv.Itoa(PageLimit))
	base.RawQuery = params.Encode()

	data, err := c.get(ctx, "assets", base.String())
	if err != nil {
		return nil, err
	}
	assets := []*asset.Asset{}
	if err := json.Unmarshal(data, &assets); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return nil, err
	}
	return assets, nil
}

func (c *client) GetOffersMade(ctx bCtx.Ctx, owner domain.Address, page int32) ([]*asset.Offer, error) {
	base, err := url.Parse(fmt.Sprintf("%s/nft/offers-made", c.baseUrl))
	if err != nil {
		return nil, err
	}
	params := url.Values{}
	params.Add("maker", owner.ToLowerStr())
	params.Add("page", strconv.FormatInt(int64(page), 10))
	params.Add("limit", strconv.Itoa(PageLimit))
	base.RawQuery = params.Encode()

	data, err := c.get(ctx, "offers_made", base.String())
	if err != nil {
		return nil, err
	}
	resp := OffersResp{}
	if err := json.Unmarshal(data, &resp); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return nil, err
	}
	return resp.AssetEvents, nil
}

func (c *client) GetCollections(ctx bCtx.Ctx, page int32) ([]*asset.Collection, error) {
	base, err := url.Parse(fmt.Sprintf("%s/nft/collections", c.baseUrl))
	if err != nil {
		return nil, err
	}
	params := url.Values{}
	params.Add("page", strconv.FormatInt(int64(page), 10))
	params.Add("limit", strconv.Itoa(PageLimit))
	base.RawQuery = params.Encode()

	data, err := c.get(ctx, "collections", base.String())
	if err != nil {
		return nil, err
	}
	collections := []*asset.Collection{}
	if err := json.Unmarshal(data, &collections); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return nil, err
	}
	return collections, nil
}

func (c *client) GetCollection(ctx bCtx.Ctx, slug string) (*asset.CollectionInfo, error) {
	url := fmt.Sprintf("%s/nft/collection/%s", c.baseUrl, slug)
	data, err := c.getCached(ctx, "collection", url)
	if err != nil {
		return nil, err
	}
	resp := &asset.CollectionInfo{}
	if err := json.Unmarshal(data, resp); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return nil, err
	}
	return resp, nil
}

func (c *client) GetNftOrders(ctx bCtx.Ctx, opts ...GetOrdersOptionsFunc) (*OrdersResp, error) {
	opt, err := ParseGetOrdersOptions(opts...)
	if err != nil {
		return nil, err
	}

	base, err := url.Parse(fmt.Sprintf("%s/nft/orders", c.baseUrl))
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	if opt.Collection != nil {
		params.Add("asset_contract_address", opt.Collection.ToLowerStr())
	}
	if opt.TokenId != nil {
		params.Add("token_id", opt.TokenId.String())
	}
	if opt.PaymentToken != nil {
		params.Add("payment_token_address", opt.PaymentToken.ToLowerStr())
	}
	if opt.Maker != nil {
		params.Add("maker", opt.Maker.ToLowerStr())
	}
	if opt.IsAsk != nil {
		params.Add("side", strconv.FormatBool(*opt.IsAsk))
	}
	if opt.Page != nil {
		params.Add("page", strconv.FormatInt(int64(*opt.Page), 10))
	}
	base.RawQuery = params.Encode()

	data, err := c.get(ctx, "orders", base.String())
	if err != nil {
		return nil, err
	}
	resp := &OrdersResp{}
	if err := json.Unmarshal(data, resp); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return nil, err
	}
	return resp, nil
}

func (c *client) GetOpenSeaAsset(ctx bCtx.Ctx, address domain.Address, tokenId domain.TokenId) (*asset.Asset, error) {
	url := fmt.Sprintf("%s/nft/asset/%s/%s", c.baseUrl, address.ToLowerStr(), tokenId)
	data, err := c.get(ctx, "asset", url)
	if err != nil {
		return nil, err
	}
	resp := &asset.Asset{}
	if err := json.Unmarshal(data, resp); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return nil, err
	}
	return resp, nil
}

func (c *client) GetOpenSeaStatus(ctx bCtx.Ctx) (*GatewayStatus, error) {
	url := fmt.Sprintf("%s/nft/status", c.baseUrl)
	data, err := c.get(ctx, "status", url)
	if err != nil {
		return nil, err
	}
	resp := &GatewayStatus{}
	if err := json.Unmarshal(data, resp); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return nil, err
	}
	return resp, nil
}

func (c *client) PostNftOrder(ctx bCtx.Ctx, od *order.Order) (*order.Receipt, error) {
	url := fmt.Sprintf("%s/nft/orders", c.baseUrl)
	body, err := json.Marshal(od)
	if err != nil {
		return nil, err
	}
	data, err := c.post(ctx, "post_order", url, body)
	if err != nil {
		return nil, err
	}
	resp := &order.Receipt{}
	if err := json.Unmarshal(data, resp); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return nil, err
	}
	return resp, nil
}

func (c *client) SearchCollectionInfo(ctx bCtx.Ctx, query string) ([]*asset.CollectionInfo, error) {
	base, err := url.Parse(fmt.Sprintf("%s/nft/collection-info", c.baseUrl))
	if err != nil {
		return nil, err
	}
	params := url.Values{}
	params.Add("query", query)
	base.RawQuery = params.Encode()

	data, err := c.getCached(ctx, "search_collection", base.String())
	if err != nil {
		return nil, err
	}
	infos := []*asset.CollectionInfo{}
	if err := json.Unmarshal(data, &infos); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return nil, err
	}
	return infos, nil
}

func (c *client) GetAssetContract(ctx bCtx.Ctx, address domain.Address) (*asset.AssetContract, error) {
	url := fmt.Sprintf("%s/nft/asset-contract/%s", c.baseUrl, address.ToLowerStr())
	data, err := c.getCached(ctx, "asset_contract", url)
	if err != nil {
		return nil, err
	}
	resp := &asset.AssetContract{}
	if err := json.Unmarshal(data, resp); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return nil, err
	}
	return resp, nil
}

// getCached serves from the in-process cache before hitting the gateway
func (c *client) getCached(ctx bCtx.Ctx, endpoint, url string) ([]byte, error) {
	key := []byte(url)
	if data, err := c.cache.Get(key); err == nil {
		return data, nil
	}
	data, err := c.get(ctx, endpoint, url)
	if err != nil {
		return nil, err
	}
	if err := c.cache.Set(key, data, collectionCacheTtl); err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Warn("cache.Set failed")
	}
	return data, nil
}

func (c *client) get(ctx bCtx.Ctx, endpoint, url string) ([]byte, error) {
	return c.do(ctx, endpoint, "GET", url, nil)
}

func (c *client) post(ctx bCtx.Ctx, endpoint, url string, body []byte) ([]byte, error) {
	return c.do(ctx, endpoint, "POST", url, body)
}

func (c *client) do(ctx bCtx.Ctx, endpoint, method, url string, body []byte) ([]byte, error) {
	if c.metrics != nil {
		defer c.metrics.BumpTime("latency", "endpoint", endpoint).End()
	}
	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader([]byte{})
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("NewRequestWithContext failed")
		return nil, err
	}
	req.Header.Set(bearerKey, c.apikey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.client.Do(req)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("client.Do failed")
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		ctx.WithFields(log.Fields{
			"url":        url,
			"statusCode": resp.StatusCode,
		}).Error("resp.StatusCode != 200")
		return nil, ErrStatusCodeNotOk
	}
	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("failed to read body")
		return nil, err
	}
	return data, nil
}
