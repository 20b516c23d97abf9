package order

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"

	"github.com/wallet-hq/nftflow/domain"
)

const (
	PrimaryType      = "MakerOrder"
	Eip712DomainName = "EIP712Domain"
)

func GetDomainSeparator(chainId domain.ChainId, verifyingContract domain.Address) apitypes.TypedDataDomain {
	return apitypes.TypedDataDomain{
		Name:              "NftExchange",
		Version:           "1",
		ChainId:           math.NewHexOrDecimal256(int64(chainId)),
		VerifyingContract: verifyingContract.ToLowerStr(),
	}
}

var OrderTypes = apitypes.Types{
	"MakerOrder": {
		{Name: "isAsk", Type: "bool"},
		{Name: "signer", Type: "address"},
		{Name: "collection", Type: "address"},
		{Name: "tokenId", Type: "uint256"},
		{Name: "amount", Type: "uint256"},
		{Name: "price", Type: "uint256"},
		{Name: "currency", Type: "address"},
		{Name: "nonce", Type: "uint256"},
		{Name: "startTime", Type: "uint256"},
		{Name: "endTime", Type: "uint256"},
	},
	"EIP712Domain": {
		{Name: "name", Type: "string"},
		{Name: "version", Type: "string"},
		{Name: "chainId", Type: "uint256"},
		{Name: "verifyingContract", Type: "address"},
	},
}

func (o *Order) ToMessage() apitypes.TypedDataMessage {
	currency := o.Currency
	if currency.IsEmpty() {
		currency = domain.EmptyAddress
	}
	return apitypes.TypedDataMessage{
		"isAsk":      o.IsAsk,
		"signer":     o.Signer.ToLowerStr(),
		"collection": o.Collection.ToLowerStr(),
		"tokenId":    o.TokenId.String(),
		"amount":     o.Amount,
		"price":      o.Price,
		"currency":   currency.ToLowerStr(),
		"nonce":      o.Nonce,
		"startTime":  o.StartTime,
		"endTime":    o.EndTime,
	}
}

func (o *Order) ToTypedData(verifyingContract domain.Address) apitypes.TypedData {
	return apitypes.TypedData{
		Types:       OrderTypes,
		PrimaryType: PrimaryType,
		Domain:      GetDomainSeparator(o.ChainId, verifyingContract),
		Message:     o.ToMessage(),
	}
}

// Hash returns the EIP-712 struct hash of the maker order
func (o *Order) Hash() ([]byte, error) {
	typedData := o.ToTypedData(domain.EmptyAddress)
	return typedData.HashStruct(typedData.PrimaryType, typedData.Message)
}

// Digest returns the EIP-712 signing digest bound to the exchange contract
func (o *Order) Digest(verifyingContract domain.Address) ([]byte, error) {
	typedData := o.ToTypedData(verifyingContract)
	domainSeparator, err := typedData.HashStruct(Eip712DomainName, typedData.Domain.Map())
	if err != nil {
		return nil, err
	}
	structHash, err := typedData.HashStruct(typedData.PrimaryType, typedData.Message)
	if err != nil {
		return nil, err
	}
	rawData := []byte(fmt.Sprintf("\x19\x01%s%s", string(domainSeparator), string(structHash)))
	return crypto.Keccak256(rawData), nil
}

// AttachSignature splits a 65 byte [R || S || V] signature onto the order
// and stamps the order hash.
func (o *Order) AttachSignature(sig []byte) error {
	if len(sig) != 65 {
		return domain.ErrInvalidNumberFormat
	}
	structHash, err := o.Hash()
	if err != nil {
		return err
	}
	o.OrderHash = domain.OrderHash(hexutil.Encode(structHash))
	o.R = hexutil.Encode(sig[0:32])
	o.S = hexutil.Encode(sig[32:64])
	o.V = int(sig[64])
	return nil
}
