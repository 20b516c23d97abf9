package usecase

import (
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	bCtx "github.com/wallet-hq/nftflow/base/ctx"
	"github.com/wallet-hq/nftflow/domain"
	"github.com/wallet-hq/nftflow/domain/asset"
	"github.com/wallet-hq/nftflow/domain/notification"
	"github.com/wallet-hq/nftflow/domain/order"
	mOrder "github.com/wallet-hq/nftflow/domain/order/mocks"
	"github.com/wallet-hq/nftflow/domain/orderflow"
	"github.com/wallet-hq/nftflow/domain/wallet"
	mWallet "github.com/wallet-hq/nftflow/domain/wallet/mocks"
	"github.com/wallet-hq/nftflow/service/marketplace"
	mMarketplace "github.com/wallet-hq/nftflow/service/marketplace/mocks"
	"github.com/wallet-hq/nftflow/service/uihost"
	token_usecase "github.com/wallet-hq/nftflow/stores/token/usecase"
	wallet_usecase "github.com/wallet-hq/nftflow/stores/wallet/usecase"
)

type orderFlowTestSuite struct {
	suite.Suite

	signer *wallet.Signer
	gas    *order.GasData
}

func TestOrderFlow(t *testing.T) {
	suite.Run(t, new(orderFlowTestSuite))
}

func (s *orderFlowTestSuite) SetupSuite() {
	key, err := crypto.HexToECDSA("ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80")
	s.Require().NoError(err)
	s.signer = wallet.NewSigner(key)
	s.gas = &order.GasData{
		GasLimit: 210000,
		GasPrice: big.NewInt(2000000000),
		TotalFee: big.NewInt(420000000000000),
	}
}

// flowFixture wires the controller against mocked order components and
// real in-process ui adapters, so side effects are observable.
type flowFixture struct {
	marketplace *mMarketplace.Client
	wallet      *mWallet.Provider
	builder     *mOrder.Builder
	estimator   *mOrder.FeeEstimator
	submitter   *mOrder.Submitter
	notifier    *uihost.Notifier
	modals      *uihost.Modals
	router      *uihost.Router

	flow orderflow.UseCase
}

func (s *orderFlowTestSuite) newFixture() *flowFixture {
	f := &flowFixture{
		marketplace: &mMarketplace.Client{},
		wallet:      &mWallet.Provider{},
		builder:     &mOrder.Builder{},
		estimator:   &mOrder.FeeEstimator{},
		submitter:   &mOrder.Submitter{},
		notifier:    uihost.NewNotifier(),
		modals:      uihost.NewModals(),
		router:      uihost.NewRouter(),
	}
	tk := token_usecase.New(&token_usecase.TokenCfg{
		Marketplace: f.marketplace,
		Wallet:      wallet_usecase.NewStaticAddressProvider(s.signer.Address()),
	})
	f.flow = New(&OrderFlowCfg{
		Marketplace: f.marketplace,
		Wallet:      f.wallet,
		Address:     wallet_usecase.NewStaticAddressProvider(s.signer.Address()),
		Builder:     f.builder,
		Estimator:   f.estimator,
		Submitter:   f.submitter,
		Token:       tk,
		Notifier:    f.notifier,
		Modals:      f.modals,
		Router:      f.router,
	})
	return f
}

func (f *flowFixture) allowRefresh() {
	f.marketplace.On("GetNftAssets", mock.Anything, mock.Anything, int32(0)).
		Return([]*asset.Asset{}, nil).Maybe()
	f.marketplace.On("GetOffersMade", mock.Anything, mock.Anything, int32(0)).
		Return([]*asset.Offer{}, nil).Maybe()
}

func (s *orderFlowTestSuite) alert(f *flowFixture) uihost.Alert {
	alerts := f.notifier.Drain()
	s.Require().Len(alerts, 1)
	return alerts[0]
}

func testAsset() *asset.Asset {
	return &asset.Asset{
		ContractAddress: "0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d",
		TokenId:         "1234",
		Name:            "Ape #1234",
	}
}

func (s *orderFlowTestSuite) TestOpenResolvesAsset() {
	f := s.newFixture()
	a := testAsset()
	f.marketplace.On("GetOpenSeaAsset", mock.Anything, a.ContractAddress, a.TokenId).
		Return(a, nil)

	err := f.flow.Open(bCtx.Background(), orderflow.OpenPayload{
		ContractAddress: a.ContractAddress,
		TokenId:         a.TokenId,
	})
	s.Require().NoError(err)

	state := f.flow.State()
	s.Equal(orderflow.StepOrderDisplay, state.Step)
	s.Equal(a, state.Asset)
	s.True(f.modals.IsOpen(notification.ModalNameNftOrder))
}

func (s *orderFlowTestSuite) TestOpenWithoutTarget() {
	f := s.newFixture()

	err := f.flow.Open(bCtx.Background(), orderflow.OpenPayload{})
	s.ErrorIs(err, domain.ErrNoAssetFound)
	s.Equal(orderflow.StepAssetSelection, f.flow.State().Step)
}

func (s *orderFlowTestSuite) TestOpenOwnOfferRoutesToCancel() {
	f := s.newFixture()
	a := testAsset()
	owner := s.signer.Address()

	mine := &order.Order{
		OrderHash: "0xaaaa",
		Signer:    owner,
		Calldata:  "0xb4e4b296000000000000000000000000" + owner.StripPrefix() + "0000",
	}
	other := &order.Order{
		OrderHash: "0xbbbb",
		Calldata:  "0xb4e4b296000000000000000000000000dead",
	}
	f.marketplace.On("GetNftOrders",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&marketplace.OrdersResp{Orders: []*order.Order{other, mine}}, nil)
	f.marketplace.On("GetOpenSeaAsset", mock.Anything, a.ContractAddress, a.TokenId).
		Return(a, nil)

	err := f.flow.Open(bCtx.Background(), orderflow.OpenPayload{
		Offer: &asset.Offer{
			Asset:        *a,
			FromAddress:  owner,
			PaymentToken: "0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2",
		},
	})
	s.Require().NoError(err)

	state := f.flow.State()
	s.Equal(orderflow.StepCancelOffer, state.Step)
	s.Require().NotNil(state.OfferToCancel)
	s.Equal(mine.OrderHash, state.OfferToCancel.OrderHash)
}

func (s *orderFlowTestSuite) TestOpenOwnOfferWithoutMatch() {
	f := s.newFixture()
	a := testAsset()

	f.marketplace.On("GetNftOrders",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&marketplace.OrdersResp{}, nil)
	f.marketplace.On("GetOpenSeaAsset", mock.Anything, a.ContractAddress, a.TokenId).
		Return(a, nil)

	err := f.flow.Open(bCtx.Background(), orderflow.OpenPayload{
		Offer: &asset.Offer{Asset: *a, FromAddress: s.signer.Address()},
	})
	s.Require().NoError(err)

	state := f.flow.State()
	s.Equal(orderflow.StepCancelOffer, state.Step)
	s.Nil(state.OfferToCancel)
}

func (s *orderFlowTestSuite) TestOpenForeignOfferShowsOrderDisplay() {
	f := s.newFixture()
	a := testAsset()
	f.marketplace.On("GetOpenSeaAsset", mock.Anything, a.ContractAddress, a.TokenId).
		Return(a, nil)

	err := f.flow.Open(bCtx.Background(), orderflow.OpenPayload{
		Offer: &asset.Offer{Asset: *a, FromAddress: "0x70997970c51812dc3a010c7d01b50e0d17dc79c8"},
	})
	s.Require().NoError(err)
	s.Equal(orderflow.StepOrderDisplay, f.flow.State().Step)
	f.marketplace.AssertNotCalled(s.T(), "GetNftOrders")
}

func (s *orderFlowTestSuite) TestCloseResetsState() {
	f := s.newFixture()
	a := testAsset()
	f.marketplace.On("GetOpenSeaAsset", mock.Anything, a.ContractAddress, a.TokenId).
		Return(a, nil)
	s.Require().NoError(f.flow.Open(bCtx.Background(), orderflow.OpenPayload{
		ContractAddress: a.ContractAddress,
		TokenId:         a.TokenId,
	}))

	f.flow.Close(bCtx.Background())

	state := f.flow.State()
	s.Equal(orderflow.StepClosed, state.Step)
	s.Nil(state.Asset)
	s.False(f.modals.IsOpen(notification.ModalNameNftOrder))
}

func (s *orderFlowTestSuite) TestFetchFeesStashesMatch() {
	f := s.newFixture()
	match := &order.MatchingOrders{Buy: &order.Order{}, Sell: &order.Order{}}
	f.wallet.On("GetSigner", mock.Anything).Return(s.signer, nil)
	f.estimator.On("EstimateFees", mock.Anything, order.OperationBuy, s.signer, mock.Anything).
		Return(s.gas, match, nil)

	gas, err := f.flow.FetchFees(bCtx.Background(), orderflow.FetchFeesPayload{
		Operation: order.OperationBuy,
	})
	s.Require().NoError(err)
	s.Equal(s.gas, gas)
	s.Equal(match, f.flow.State().Matching)
}

func (s *orderFlowTestSuite) TestAcceptOffer() {
	f := s.newFixture()
	f.allowRefresh()
	f.wallet.On("GetSigner", mock.Anything).Return(s.signer, nil)
	f.submitter.On("Fulfill", mock.Anything, s.signer, mock.Anything, s.gas).
		Return(domain.TxHash("0xdead"), nil)

	err := f.flow.AcceptOffer(bCtx.Background(), orderflow.AcceptOfferPayload{
		Buy:     &order.Order{},
		Sell:    &order.Order{},
		GasData: s.gas,
	})
	s.Require().NoError(err)

	s.Equal(msgAcceptOfferSuccess, s.alert(f).Message)
	s.False(f.flow.State().IsSubmitting)
	s.False(f.modals.IsOpen(notification.ModalNameNftOrder))
}

func (s *orderFlowTestSuite) TestAcceptOfferInsufficientFunds() {
	f := s.newFixture()
	f.wallet.On("GetSigner", mock.Anything).Return(s.signer, nil)
	f.submitter.On("Fulfill", mock.Anything, s.signer, mock.Anything, s.gas).
		Return(domain.TxHash(""), errors.New("err: insufficient funds for gas * price + value"))

	err := f.flow.AcceptOffer(bCtx.Background(), orderflow.AcceptOfferPayload{
		Buy:     &order.Order{},
		Sell:    &order.Order{},
		GasData: s.gas,
	})
	s.Require().Error(err)

	alert := s.alert(f)
	s.Equal(uihost.AlertLevelError, alert.Level)
	s.Equal(msgAcceptOfferNoFunds, alert.Message)
	s.False(f.flow.State().IsSubmitting)
}

func (s *orderFlowTestSuite) TestAcceptOfferSignerFailure() {
	f := s.newFixture()
	f.wallet.On("GetSigner", mock.Anything).Return(nil, domain.ErrSigner)

	err := f.flow.AcceptOffer(bCtx.Background(), orderflow.AcceptOfferPayload{GasData: s.gas})
	s.ErrorIs(err, domain.ErrSigner)

	s.Equal(domain.ErrSigner.Error(), s.alert(f).Message)
	s.False(f.flow.State().IsSubmitting)
	f.submitter.AssertNotCalled(s.T(), "Fulfill")
}

func (s *orderFlowTestSuite) TestCreateOfferRequiresErc20() {
	f := s.newFixture()

	err := f.flow.CreateOffer(bCtx.Background(), orderflow.CreateOfferPayload{
		Asset:        testAsset(),
		Amount:       1.5,
		PaymentToken: domain.EmptyAddress,
	})
	s.ErrorIs(err, domain.ErrBadParamInput)

	s.Equal(msgOfferNeedsErc20, s.alert(f).Message)
	s.False(f.flow.State().IsSubmitting)
	f.wallet.AssertNotCalled(s.T(), "GetSigner")
}

func (s *orderFlowTestSuite) TestCreateOffer() {
	f := s.newFixture()
	f.allowRefresh()
	a := testAsset()
	weth := domain.Address("0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2")
	buy := &order.Order{IsAsk: false, Signer: s.signer.Address(), V: 27}

	f.wallet.On("GetSigner", mock.Anything).Return(s.signer, nil)
	f.builder.On("BuildBuyOrder", mock.Anything, a, s.signer,
		order.BuyParams{Amount: 1.5, PaymentToken: weth}).
		Return(buy, nil)
	f.estimator.On("EstimateFees", mock.Anything, order.OperationCreateOffer, s.signer, mock.Anything).
		Return(s.gas, nil, nil)
	f.submitter.On("SubmitOrder", mock.Anything, buy).
		Return(&order.Receipt{Status: "created"}, nil)

	err := f.flow.CreateOffer(bCtx.Background(), orderflow.CreateOfferPayload{
		Asset:        a,
		Amount:       1.5,
		PaymentToken: weth,
	})
	s.Require().NoError(err)

	s.Equal(msgCreateOfferSuccess, s.alert(f).Message)
	s.Equal(routeActivityView, f.router.Current())
	s.False(f.modals.IsOpen(notification.ModalNameNftOrder))
	f.marketplace.AssertCalled(s.T(), "GetOffersMade", mock.Anything, mock.Anything, int32(0))
}

func (s *orderFlowTestSuite) TestCreateOfferEstimateBlocksSubmission() {
	f := s.newFixture()
	a := testAsset()
	weth := domain.Address("0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2")

	f.wallet.On("GetSigner", mock.Anything).Return(s.signer, nil)
	f.builder.On("BuildBuyOrder", mock.Anything, a, s.signer, mock.Anything).
		Return(&order.Order{}, nil)
	f.estimator.On("EstimateFees", mock.Anything, order.OperationCreateOffer, s.signer, mock.Anything).
		Return(nil, nil, errors.New("err: insufficient funds for gas * price + value"))

	err := f.flow.CreateOffer(bCtx.Background(), orderflow.CreateOfferPayload{
		Asset:        a,
		Amount:       1.5,
		PaymentToken: weth,
	})
	s.Require().Error(err)

	s.Equal(msgCreateOfferNoFunds, s.alert(f).Message)
	f.submitter.AssertNotCalled(s.T(), "SubmitOrder")
}

func (s *orderFlowTestSuite) TestCreateOrder() {
	f := s.newFixture()
	f.wallet.On("GetSigner", mock.Anything).Return(s.signer, nil)
	f.submitter.On("Fulfill", mock.Anything, s.signer, mock.Anything, s.gas).
		Return(domain.TxHash("0xdead"), nil)

	err := f.flow.CreateOrder(bCtx.Background(), orderflow.CreateOrderPayload{
		Buy:     &order.Order{},
		Sell:    &order.Order{},
		GasData: s.gas,
	})
	s.Require().NoError(err)

	s.Equal(msgCreateOrderSuccess, s.alert(f).Message)
	s.Equal(routeCollectionView, f.router.Current())
	s.False(f.flow.State().IsSubmitting)
}

func (s *orderFlowTestSuite) TestCreateSellOrder() {
	f := s.newFixture()
	f.allowRefresh()
	a := testAsset()
	sell := &order.Order{IsAsk: true, Signer: s.signer.Address(), V: 27}

	f.wallet.On("GetSigner", mock.Anything).Return(s.signer, nil)
	f.builder.On("BuildSellOrder", mock.Anything, a, s.signer, mock.Anything).
		Return(sell, nil)
	f.submitter.On("SubmitOrder", mock.Anything, sell).
		Return(&order.Receipt{Status: "created"}, nil)

	err := f.flow.CreateSellOrder(bCtx.Background(), orderflow.CreateSellOrderPayload{
		Asset:      a,
		StartPrice: 1.5,
	})
	s.Require().NoError(err)

	s.Equal(msgSellOrderSuccess, s.alert(f).Message)
	s.False(f.flow.State().IsSubmitting)
	f.marketplace.AssertCalled(s.T(), "GetNftAssets", mock.Anything, mock.Anything, int32(0))
}

func (s *orderFlowTestSuite) TestCreateTransfer() {
	f := s.newFixture()
	f.allowRefresh()
	a := testAsset()
	to := domain.Address("0x70997970c51812dc3a010c7d01b50e0d17dc79c8")

	f.wallet.On("GetSigner", mock.Anything).Return(s.signer, nil)
	f.submitter.On("Transfer", mock.Anything, s.signer, a, to, s.gas).
		Return(domain.TxHash("0xdead"), nil)

	err := f.flow.CreateTransfer(bCtx.Background(), orderflow.CreateTransferPayload{
		Asset:   a,
		To:      to,
		GasData: s.gas,
	})
	s.Require().NoError(err)
	s.Equal(msgTransferSuccess, s.alert(f).Message)
}

func (s *orderFlowTestSuite) TestCancelListing() {
	f := s.newFixture()
	f.allowRefresh()
	od := &order.Order{Nonce: "42"}

	f.wallet.On("GetSigner", mock.Anything).Return(s.signer, nil)
	f.submitter.On("CancelOnChain", mock.Anything, s.signer, od, s.gas).
		Return(domain.TxHash("0xdead"), nil)

	err := f.flow.CancelListing(bCtx.Background(), orderflow.CancelListingPayload{
		Order:   od,
		GasData: s.gas,
	})
	s.Require().NoError(err)
	s.Equal(msgCancelListingSuccess, s.alert(f).Message)
}

func (s *orderFlowTestSuite) TestCancelOfferWithoutOrder() {
	f := s.newFixture()

	err := f.flow.CancelOffer(bCtx.Background(), orderflow.CancelOfferPayload{GasData: s.gas})
	s.ErrorIs(err, domain.ErrNotFound)

	alert := s.alert(f)
	s.Equal(uihost.AlertLevelError, alert.Level)
	s.Equal(msgNoOfferFound, alert.Message)
	s.False(f.flow.State().IsSubmitting)
	f.submitter.AssertNotCalled(s.T(), "CancelOnChain")
}

func (s *orderFlowTestSuite) TestCancelOffer() {
	f := s.newFixture()
	f.allowRefresh()
	od := &order.Order{Nonce: "42"}

	f.wallet.On("GetSigner", mock.Anything).Return(s.signer, nil)
	f.submitter.On("CancelOnChain", mock.Anything, s.signer, od, s.gas).
		Return(domain.TxHash("0xdead"), nil)

	err := f.flow.CancelOffer(bCtx.Background(), orderflow.CancelOfferPayload{
		Order:   od,
		GasData: s.gas,
	})
	s.Require().NoError(err)

	s.Equal(msgCancelOfferSuccess, s.alert(f).Message)
	f.marketplace.AssertCalled(s.T(), "GetOffersMade", mock.Anything, mock.Anything, int32(0))
}
