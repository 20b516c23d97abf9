package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wallet-hq/nftflow/base/ctx"
	"github.com/wallet-hq/nftflow/base/delivery"
	"github.com/wallet-hq/nftflow/base/validator"
	"github.com/wallet-hq/nftflow/domain"
	"github.com/wallet-hq/nftflow/domain/token"
)

type handler struct {
	token token.Usecase
}

func New(e *echo.Echo, u token.Usecase) {
	h := &handler{token: u}

	g := e.Group("/nfts")

	g.GET("/assets", h.assets)

	g.POST("/assets/fetch", h.fetchAssets)

	g.POST("/assets/refresh", h.refreshAssets)

	g.GET("/offers-made", h.offersMade)

	g.POST("/offers-made/fetch", h.fetchOffersMade)

	g.POST("/offers-made/refresh", h.refreshOffersMade)

	g.GET("/collections", h.collections)

	g.POST("/collections/fetch", h.fetchCollections)

	g.POST("/refresh", h.refreshAll)

	g.GET("/collection/:slug", h.collection)

	g.GET("/collection-search", h.searchCollections)

	g.GET("/asset", h.asset)

	g.GET("/asset-contract/:address", h.assetContract)
}

func (h *handler) assets(c echo.Context) error {
	return delivery.MakeJsonResp(c, http.StatusOK, h.token.Assets())
}

func (h *handler) fetchAssets(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	if err := h.token.FetchAssets(ctx); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, h.token.Assets())
}

func (h *handler) refreshAssets(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	if err := h.token.RefreshAssets(ctx); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, h.token.Assets())
}

func (h *handler) offersMade(c echo.Context) error {
	return delivery.MakeJsonResp(c, http.StatusOK, h.token.OffersMade())
}

func (h *handler) fetchOffersMade(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	if err := h.token.FetchOffersMade(ctx); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, h.token.OffersMade())
}

func (h *handler) refreshOffersMade(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	if err := h.token.RefreshOffersMade(ctx); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, h.token.OffersMade())
}

func (h *handler) collections(c echo.Context) error {
	return delivery.MakeJsonResp(c, http.StatusOK, h.token.Collections())
}

func (h *handler) fetchCollections(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	if err := h.token.FetchCollections(ctx); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, h.token.Collections())
}

func (h *handler) refreshAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	if err := h.token.RefreshAll(ctx); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) collection(c echo.Context) error {
	slug := c.Param("slug")

	ctx := c.Get("ctx").(ctx.Ctx)

	if res, err := h.token.FetchCollection(ctx, slug); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) searchCollections(c echo.Context) error {
	type params struct {
		Query string `query:"query"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	ctx := c.Get("ctx").(ctx.Ctx)

	if res, err := h.token.SearchCollections(ctx, p.Query); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) asset(c echo.Context) error {
	type params struct {
		ContractAddress domain.Address `query:"contractAddress"`
		TokenId         domain.TokenId `query:"tokenId"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if !validator.IsValidAddress(string(p.ContractAddress)) {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidAddress.Error())
	}

	ctx := c.Get("ctx").(ctx.Ctx)

	if res, err := h.token.FetchOpenSeaAsset(ctx, p.ContractAddress, p.TokenId); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) assetContract(c echo.Context) error {
	address := domain.Address(c.Param("address"))

	if !validator.IsValidAddress(string(address)) {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidAddress.Error())
	}

	ctx := c.Get("ctx").(ctx.Ctx)

	if res, err := h.token.GetAssetContract(ctx, address); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}
