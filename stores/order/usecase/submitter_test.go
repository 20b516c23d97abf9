package usecase

import (
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	bCtx "github.com/wallet-hq/nftflow/base/ctx"
	"github.com/wallet-hq/nftflow/domain"
	"github.com/wallet-hq/nftflow/domain/asset"
	"github.com/wallet-hq/nftflow/domain/order"
	"github.com/wallet-hq/nftflow/domain/wallet"
	mChain "github.com/wallet-hq/nftflow/service/chain/mocks"
	mMarketplace "github.com/wallet-hq/nftflow/service/marketplace/mocks"
)

type submitterTestSuite struct {
	suite.Suite

	signer *wallet.Signer
	gas    *order.GasData
}

func TestSubmitter(t *testing.T) {
	suite.Run(t, new(submitterTestSuite))
}

func (s *submitterTestSuite) SetupSuite() {
	key, err := crypto.HexToECDSA("ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80")
	s.Require().NoError(err)
	s.signer = wallet.NewSigner(key)
	s.gas = &order.GasData{
		GasLimit: 210000,
		GasPrice: big.NewInt(2000000000),
		TotalFee: big.NewInt(420000000000000),
	}
}

func (s *submitterTestSuite) newSubmitter(mp *mMarketplace.Client, ch *mChain.Provider) order.Submitter {
	return NewSubmitter(&SubmitterCfg{
		Marketplace:      mp,
		Chain:            ch,
		ChainId:          domain.ChainIdMainnet,
		ExchangeContract: "0x59728544b08ab483533076417fbbb2fd0b17ce3a",
	})
}

func (s *submitterTestSuite) signedOrder(isAsk bool, signer domain.Address) *order.Order {
	return &order.Order{
		ChainId:    domain.ChainIdMainnet,
		OrderHash:  "0x1111111111111111111111111111111111111111111111111111111111111111",
		IsAsk:      isAsk,
		Signer:     signer,
		Collection: "0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d",
		TokenId:    "1234",
		Amount:     "1",
		Price:      "1000000000000000000",
		Currency:   domain.EmptyAddress,
		Nonce:      "42",
		StartTime:  "0",
		EndTime:    "1700000000",
		V:          27,
		R:          "0x01",
		S:          "0x02",
	}
}

func (s *submitterTestSuite) TestSubmitOrderRequiresSignature() {
	mp := &mMarketplace.Client{}
	ch := &mChain.Provider{}
	od := s.signedOrder(true, s.signer.Address())
	od.V = 0

	_, err := s.newSubmitter(mp, ch).SubmitOrder(bCtx.Background(), od)
	s.ErrorIs(err, domain.ErrOrderNotSigned)
	mp.AssertNotCalled(s.T(), "PostNftOrder")
}

func (s *submitterTestSuite) TestSubmitOrderNoRetry() {
	mp := &mMarketplace.Client{}
	ch := &mChain.Provider{}
	od := s.signedOrder(true, s.signer.Address())
	mp.On("PostNftOrder", mock.Anything, od).Return(nil, errors.New("boom")).Once()

	_, err := s.newSubmitter(mp, ch).SubmitOrder(bCtx.Background(), od)
	s.ErrorIs(err, domain.ErrSubmission)
	mp.AssertExpectations(s.T())
}

func (s *submitterTestSuite) TestSubmitOrder() {
	mp := &mMarketplace.Client{}
	ch := &mChain.Provider{}
	od := s.signedOrder(true, s.signer.Address())
	mp.On("PostNftOrder", mock.Anything, od).
		Return(&order.Receipt{OrderHash: od.OrderHash, Status: "created"}, nil)

	receipt, err := s.newSubmitter(mp, ch).SubmitOrder(bCtx.Background(), od)
	s.Require().NoError(err)
	s.Equal(od.OrderHash, receipt.OrderHash)
}

func (s *submitterTestSuite) TestFulfillBuySendsValue() {
	mp := &mMarketplace.Client{}
	ch := &mChain.Provider{}
	buy := s.signedOrder(false, s.signer.Address())
	sell := s.signedOrder(true, "0x70997970c51812dc3a010c7d01b50e0d17dc79c8")

	var sent *types.Transaction
	ch.On("PendingNonceAt", mock.Anything, s.signer.Address()).Return(uint64(7), nil)
	ch.On("SendTransaction", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			sent = args.Get(1).(*types.Transaction)
		}).
		Return(nil)

	txHash, err := s.newSubmitter(mp, ch).Fulfill(bCtx.Background(), s.signer, &order.MatchingOrders{Buy: buy, Sell: sell}, s.gas)
	s.Require().NoError(err)
	s.NotEmpty(txHash)

	s.Require().NotNil(sent)
	s.Equal(uint64(7), sent.Nonce())
	s.Equal(s.gas.GasLimit, sent.Gas())
	s.Equal(s.gas.GasPrice, sent.GasPrice())
	// native currency listings carry the price as tx value
	s.Equal("1000000000000000000", sent.Value().String())
}

func (s *submitterTestSuite) TestFulfillRejectsIncompletePair() {
	mp := &mMarketplace.Client{}
	ch := &mChain.Provider{}
	buy := s.signedOrder(false, s.signer.Address())

	_, err := s.newSubmitter(mp, ch).Fulfill(bCtx.Background(), s.signer, &order.MatchingOrders{Buy: buy}, s.gas)
	s.ErrorIs(err, domain.ErrMatchingOrder)
}

func (s *submitterTestSuite) TestCancelOnChain() {
	mp := &mMarketplace.Client{}
	ch := &mChain.Provider{}
	od := s.signedOrder(false, s.signer.Address())

	ch.On("PendingNonceAt", mock.Anything, s.signer.Address()).Return(uint64(1), nil)
	ch.On("SendTransaction", mock.Anything, mock.Anything).Return(nil)

	txHash, err := s.newSubmitter(mp, ch).CancelOnChain(bCtx.Background(), s.signer, od, s.gas)
	s.Require().NoError(err)
	s.NotEmpty(txHash)
	ch.AssertExpectations(s.T())
}

func (s *submitterTestSuite) TestTransferBroadcastFailure() {
	mp := &mMarketplace.Client{}
	ch := &mChain.Provider{}
	a := &asset.Asset{
		ContractAddress: "0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d",
		TokenId:         "1234",
	}
	ch.On("PendingNonceAt", mock.Anything, s.signer.Address()).Return(uint64(1), nil)
	ch.On("SendTransaction", mock.Anything, mock.Anything).
		Return(errors.New("err: insufficient funds for gas * price + value"))

	_, err := s.newSubmitter(mp, ch).Transfer(bCtx.Background(), s.signer, a, "0x70997970c51812dc3a010c7d01b50e0d17dc79c8", s.gas)
	s.ErrorIs(err, domain.ErrSubmission)
	s.True(domain.IsInsufficientFunds(err))
}
