package contract

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	baseabi "github.com/wallet-hq/nftflow/base/abi"
	"github.com/wallet-hq/nftflow/domain"
)

// Calldata builders for the transactions the order flow broadcasts. Each
// returns the packed payload for a call against the named contract.

func Erc721TransferFrom(from, to domain.Address, tokenId *big.Int) ([]byte, error) {
	return baseabi.ERC721TokenABI.Pack(
		"transferFrom",
		common.HexToAddress(string(from)),
		common.HexToAddress(string(to)),
		tokenId,
	)
}

func Erc721SetApprovalForAll(operator domain.Address, approved bool) ([]byte, error) {
	return baseabi.ERC721TokenABI.Pack(
		"setApprovalForAll",
		common.HexToAddress(string(operator)),
		approved,
	)
}

func Erc20Approve(spender domain.Address, value *big.Int) ([]byte, error) {
	return baseabi.ERC20TokenABI.Pack(
		"approve",
		common.HexToAddress(string(spender)),
		value,
	)
}

func MatchAskWithTakerBid(buyHash, sellHash domain.OrderHash) ([]byte, error) {
	return baseabi.ExchangeABI.Pack(
		"matchAskWithTakerBid",
		common.HexToHash(string(buyHash)),
		common.HexToHash(string(sellHash)),
	)
}

func MatchBidWithTakerAsk(buyHash, sellHash domain.OrderHash) ([]byte, error) {
	return baseabi.ExchangeABI.Pack(
		"matchBidWithTakerAsk",
		common.HexToHash(string(buyHash)),
		common.HexToHash(string(sellHash)),
	)
}

func CancelMakerOrders(nonces []*big.Int) ([]byte, error) {
	return baseabi.ExchangeABI.Pack("cancelMultipleMakerOrders", nonces)
}
