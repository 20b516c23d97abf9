package abi

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

var (
	ERC721TokenABI abi.ABI
	ERC20TokenABI  abi.ABI
	ExchangeABI    abi.ABI
)

var erc721ABI = `[{"type":"function","name":"transferFrom","constant":false,"payable":false,"inputs":[{"type":"address","name":"_from"},{"type":"address","name":"_to"},{"type":"uint256","name":"_tokenId"}],"outputs":[]},{"type":"function","name":"setApprovalForAll","constant":false,"payable":false,"inputs":[{"type":"address","name":"_operator"},{"type":"bool","name":"_approved"}],"outputs":[]},{"type":"function","name":"isApprovedForAll","constant":true,"stateMutability":"view","payable":false,"inputs":[{"type":"address","name":"_owner"},{"type":"address","name":"_operator"}],"outputs":[{"type":"bool"}]},{"type":"function","name":"ownerOf","constant":true,"stateMutability":"view","payable":false,"inputs":[{"type":"uint256","name":"_tokenId"}],"outputs":[{"type":"address"}]}]`

var erc20ABI = `[{"type":"function","name":"approve","constant":false,"payable":false,"inputs":[{"type":"address","name":"_spender"},{"type":"uint256","name":"_value"}],"outputs":[{"type":"bool"}]},{"type":"function","name":"allowance","constant":true,"stateMutability":"view","payable":false,"inputs":[{"type":"address","name":"_owner"},{"type":"address","name":"_spender"}],"outputs":[{"type":"uint256"}]},{"type":"function","name":"balanceOf","constant":true,"stateMutability":"view","payable":false,"inputs":[{"type":"address","name":"_owner"}],"outputs":[{"type":"uint256"}]}]`

var exchangeABI = `[{"type":"function","name":"matchAskWithTakerBid","constant":false,"payable":true,"inputs":[{"type":"bytes32","name":"buyHash"},{"type":"bytes32","name":"sellHash"}],"outputs":[]},{"type":"function","name":"matchBidWithTakerAsk","constant":false,"payable":false,"inputs":[{"type":"bytes32","name":"buyHash"},{"type":"bytes32","name":"sellHash"}],"outputs":[]},{"type":"function","name":"cancelMultipleMakerOrders","constant":false,"payable":false,"inputs":[{"type":"uint256[]","name":"orderNonces"}],"outputs":[]}]`

func init() {
	_abi, err := abi.JSON(strings.NewReader(erc721ABI))
	if err != nil {
		panic(err)
	}
	ERC721TokenABI = _abi

	_abi, err = abi.JSON(strings.NewReader(erc20ABI))
	if err != nil {
		panic(err)
	}
	ERC20TokenABI = _abi

	_abi, err = abi.JSON(strings.NewReader(exchangeABI))
	if err != nil {
		panic(err)
	}
	ExchangeABI = _abi
}
