package usecase

import (
	"strconv"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/suite"

	bCtx "github.com/wallet-hq/nftflow/base/ctx"
	"github.com/wallet-hq/nftflow/base/ptr"
	"github.com/wallet-hq/nftflow/domain"
	"github.com/wallet-hq/nftflow/domain/asset"
	"github.com/wallet-hq/nftflow/domain/order"
	"github.com/wallet-hq/nftflow/domain/wallet"
)

type builderTestSuite struct {
	suite.Suite

	now     time.Time
	signer  *wallet.Signer
	asset   *asset.Asset
	builder order.Builder
}

func TestBuilder(t *testing.T) {
	suite.Run(t, new(builderTestSuite))
}

func (s *builderTestSuite) SetupSuite() {
	key, err := crypto.HexToECDSA("ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80")
	s.Require().NoError(err)
	s.signer = wallet.NewSigner(key)
	s.now = time.Unix(1650000000, 0)
	s.asset = &asset.Asset{
		ContractAddress: "0xBC4CA0EdA7647A8aB7C2061c2E118A18a936f13D",
		TokenId:         "1234",
	}
	s.builder = NewBuilder(&BuilderCfg{
		ChainId:          domain.ChainIdMainnet,
		ExchangeContract: "0x59728544b08ab483533076417fbbb2fd0b17ce3a",
		WrappedNative:    "0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2",
		Now:              func() time.Time { return s.now },
	})
}

func (s *builderTestSuite) TestSellOrderListingTimePolicy() {
	testcases := []struct {
		desc          string
		listingTime   *time.Time
		wantStartTime string
	}{
		{
			desc:          "unset listing time starts immediately",
			listingTime:   nil,
			wantStartTime: "0",
		},
		{
			desc:          "future listing time is kept",
			listingTime:   ptr.Time(s.now.Add(time.Hour)),
			wantStartTime: strconv.FormatInt(s.now.Add(time.Hour).Unix(), 10),
		},
		{
			desc:          "past listing time is pushed forward ten minutes",
			listingTime:   ptr.Time(s.now.Add(-24 * time.Hour)),
			wantStartTime: strconv.FormatInt(s.now.Add(10*time.Minute).Unix(), 10),
		},
	}
	for _, tc := range testcases {
		od, err := s.builder.BuildSellOrder(bCtx.Background(), s.asset, s.signer, order.SellParams{
			ListingTime: tc.listingTime,
			StartPrice:  1.5,
		})
		s.NoError(err, tc.desc)
		s.Equal(tc.wantStartTime, od.StartTime, tc.desc)
	}
}

func (s *builderTestSuite) TestSellOrderDefaults() {
	od, err := s.builder.BuildSellOrder(bCtx.Background(), s.asset, s.signer, order.SellParams{
		StartPrice: 1.5,
	})
	s.Require().NoError(err)

	s.True(od.IsAsk)
	s.Equal("1500000000000000000", od.Price)
	s.Equal("1", od.Amount)
	s.Equal(s.signer.Address(), od.Signer)
	s.Equal(s.asset.ContractAddress.ToLower(), od.Collection)
	s.Equal(string(domain.EmptyAddress), string(od.Currency))
	s.Equal(strconv.FormatInt(s.now.Add(7*24*time.Hour).Unix(), 10), od.EndTime)
	s.True(od.IsSigned())
	s.Contains([]int{27, 28}, od.V)
	s.NotEmpty(od.OrderHash)
}

func (s *builderTestSuite) TestSellOrderExplicitExpiration() {
	exp := s.now.Add(48 * time.Hour)
	od, err := s.builder.BuildSellOrder(bCtx.Background(), s.asset, s.signer, order.SellParams{
		ExpirationTime: &exp,
		StartPrice:     0.05,
	})
	s.Require().NoError(err)
	s.Equal(strconv.FormatInt(exp.Unix(), 10), od.EndTime)
	s.Equal("50000000000000000", od.Price)
}

func (s *builderTestSuite) TestBuyOrderDefaults() {
	od, err := s.builder.BuildBuyOrder(bCtx.Background(), s.asset, s.signer, order.BuyParams{
		Amount: 2,
	})
	s.Require().NoError(err)

	s.False(od.IsAsk)
	s.Equal("2000000000000000000", od.Price)
	// buy orders settle in the wrapped native token by default
	s.Equal("0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2", string(od.Currency))
	s.Equal(strconv.FormatInt(s.now.Add(7*24*time.Hour).Unix(), 10), od.EndTime)
	s.True(od.IsSigned())
}

func (s *builderTestSuite) TestConfiguredOfferTtl() {
	b := NewBuilder(&BuilderCfg{
		ChainId:          domain.ChainIdMainnet,
		ExchangeContract: "0x59728544b08ab483533076417fbbb2fd0b17ce3a",
		WrappedNative:    "0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2",
		OfferTtl:         24 * time.Hour,
		Now:              func() time.Time { return s.now },
	})
	od, err := b.BuildBuyOrder(bCtx.Background(), s.asset, s.signer, order.BuyParams{Amount: 1})
	s.Require().NoError(err)
	s.Equal(strconv.FormatInt(s.now.Add(24*time.Hour).Unix(), 10), od.EndTime)
}

func (s *builderTestSuite) TestSignatureVerifies() {
	od, err := s.builder.BuildSellOrder(bCtx.Background(), s.asset, s.signer, order.SellParams{
		StartPrice: 1,
	})
	s.Require().NoError(err)

	digest, err := od.Digest("0x59728544b08ab483533076417fbbb2fd0b17ce3a")
	s.Require().NoError(err)

	sig := make([]byte, 65)
	copy(sig[0:32], hexutil.MustDecode(od.R))
	copy(sig[32:64], hexutil.MustDecode(od.S))
	sig[64] = byte(od.V - 27)
	pub, err := crypto.SigToPub(digest, sig)
	s.Require().NoError(err)
	s.Equal(s.signer.Address(), domain.Address(crypto.PubkeyToAddress(*pub).Hex()).ToLower())
}
