package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/wallet-hq/nftflow/base/ctx"
	"github.com/wallet-hq/nftflow/base/delivery"
	"github.com/wallet-hq/nftflow/domain"
	"github.com/wallet-hq/nftflow/domain/asset"
	"github.com/wallet-hq/nftflow/domain/order"
	"github.com/wallet-hq/nftflow/domain/orderflow"
)

type handler struct {
	orderflow orderflow.UseCase
}

func New(e *echo.Echo, u orderflow.UseCase) {
	h := &handler{orderflow: u}

	g := e.Group("/orderflow")

	g.GET("/state", h.state)

	g.POST("/open", h.open)

	g.POST("/close", h.close)

	g.POST("/fees", h.fetchFees)

	g.POST("/accept-offer", h.acceptOffer)

	g.POST("/create-offer", h.createOffer)

	g.POST("/create-order", h.createOrder)

	g.POST("/sell", h.createSellOrder)

	g.POST("/transfer", h.createTransfer)

	g.POST("/cancel-listing", h.cancelListing)

	g.POST("/cancel-offer", h.cancelOffer)
}

func (h *handler) state(c echo.Context) error {
	return delivery.MakeJsonResp(c, http.StatusOK, h.orderflow.State())
}

func (h *handler) open(c echo.Context) error {
	type params struct {
		Asset           *asset.Asset   `json:"asset"`
		ContractAddress domain.Address `json:"contractAddress"`
		TokenId         domain.TokenId `json:"tokenId"`
		Offer           *asset.Offer   `json:"offer"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	ctx := c.Get("ctx").(ctx.Ctx)

	if err := h.orderflow.Open(ctx, orderflow.OpenPayload{
		Asset:           p.Asset,
		ContractAddress: p.ContractAddress,
		TokenId:         p.TokenId,
		Offer:           p.Offer,
	}); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, h.orderflow.State())
}

func (h *handler) close(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	h.orderflow.Close(ctx)
	return delivery.MakeJsonResp(c, http.StatusOK, h.orderflow.State())
}

func (h *handler) fetchFees(c echo.Context) error {
	type params struct {
		Operation         order.Operation `json:"operation"`
		Order             *order.Order    `json:"order"`
		Asset             *asset.Asset    `json:"asset"`
		To                domain.Address  `json:"to"`
		Offer             float64         `json:"offer"`
		PaymentToken      domain.Address  `json:"paymentToken"`
		ListingTime       *time.Time      `json:"listingTime"`
		ExpirationTime    *time.Time      `json:"expirationTime"`
		StartPrice        float64         `json:"startPrice"`
		EndPrice          float64         `json:"endPrice"`
		WaitForHighestBid bool            `json:"waitForHighestBid"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	ctx := c.Get("ctx").(ctx.Ctx)

	if res, err := h.orderflow.FetchFees(ctx, orderflow.FetchFeesPayload{
		Operation:         p.Operation,
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
	}); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) acceptOffer(c echo.Context) error {
	type params struct {
		Buy     *order.Order   `json:"buy"`
		Sell    *order.Order   `json:"sell"`
		GasData *order.GasData `json:"gasData"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	ctx := c.Get("ctx").(ctx.Ctx)

	if err := h.orderflow.AcceptOffer(ctx, orderflow.AcceptOfferPayload{
		Buy:     p.Buy,
		Sell:    p.Sell,
		GasData: p.GasData,
	}); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) createOffer(c echo.Context) error {
	type params struct {
		Asset        *asset.Asset   `json:"asset"`
		Amount       float64        `json:"amount"`
		PaymentToken domain.Address `json:"paymentToken"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	ctx := c.Get("ctx").(ctx.Ctx)

	if err := h.orderflow.CreateOffer(ctx, orderflow.CreateOfferPayload{
		Asset:        p.Asset,
		Amount:       p.Amount,
		PaymentToken: p.PaymentToken,
	}); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) createOrder(c echo.Context) error {
	type params struct {
		Buy     *order.Order   `json:"buy"`
		Sell    *order.Order   `json:"sell"`
		GasData *order.GasData `json:"gasData"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	ctx := c.Get("ctx").(ctx.Ctx)

	if err := h.orderflow.CreateOrder(ctx, orderflow.CreateOrderPayload{
		Buy:     p.Buy,
		Sell:    p.Sell,
		GasData: p.GasData,
	}); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) createSellOrder(c echo.Context) error {
	type params struct {
		Asset             *asset.Asset   `json:"asset"`
		ListingTime       *time.Time     `json:"listingTime"`
		ExpirationTime    *time.Time     `json:"expirationTime"`
		StartPrice        float64        `json:"startPrice"`
		EndPrice          float64        `json:"endPrice"`
		WaitForHighestBid bool           `json:"waitForHighestBid"`
		PaymentToken      domain.Address `json:"paymentToken"`
		GasData           *order.GasData `json:"gasData"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	ctx := c.Get("ctx").(ctx.Ctx)

	if err := h.orderflow.CreateSellOrder(ctx, orderflow.CreateSellOrderPayload{
		Asset:             p.Asset,
		ListingTime:       p.ListingTime,
		ExpirationTime:    p.ExpirationTime,
		StartPrice:        p.StartPrice,
		EndPrice:          p.EndPrice,
		WaitForHighestBid: p.WaitForHighestBid,
		PaymentToken:      p.PaymentToken,
		GasData:           p.GasData,
	}); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) createTransfer(c echo.Context) error {
	type params struct {
		Asset   *asset.Asset   `json:"asset"`
		To      domain.Address `json:"to"`
		GasData *order.GasData `json:"gasData"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	ctx := c.Get("ctx").(ctx.Ctx)

	if err := h.orderflow.CreateTransfer(ctx, orderflow.CreateTransferPayload{
		Asset:   p.Asset,
		To:      p.To,
		GasData: p.GasData,
	}); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) cancelListing(c echo.Context) error {
	type params struct {
		Order   *order.Order   `json:"order"`
		GasData *order.GasData `json:"gasData"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	ctx := c.Get("ctx").(ctx.Ctx)

	if err := h.orderflow.CancelListing(ctx, orderflow.CancelListingPayload{
		Order:   p.Order,
		GasData: p.GasData,
	}); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) cancelOffer(c echo.Context) error {
	type params struct {
		Order   *order.Order   `json:"order"`
		GasData *order.GasData `json:"gasData"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	ctx := c.Get("ctx").(ctx.Ctx)

	if err := h.orderflow.CancelOffer(ctx, orderflow.CancelOfferPayload{
		Order:   p.Order,
		GasData: p.GasData,
	}); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}
